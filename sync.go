package tst

import "sync"

// synchronized guards a tree with a read-write lock.
// Add takes the write lock, every other operation the read lock.
type synchronized[T any] struct {
	lock sync.RWMutex
	tree *tree[T]
}

func (s *synchronized[T]) Add(key string, value T) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.tree.Add(key, value)
}

func (s *synchronized[T]) Get(key string) (T, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.tree.Get(key)
}

func (s *synchronized[T]) Suggest(prefix string) []T {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.tree.Suggest(prefix)
}

// Each holds the read lock while the callback runs, so the callback must not
// call Add on the same tree.
func (s *synchronized[T]) Each(cb Callback[T]) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	s.tree.Each(cb)
}

func (s *synchronized[T]) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.tree.Len()
}
