package tst

// Callback - callback function that is passed in Each.
type Callback[T any] func(key string, value T)

// Tree - ternary search tree interface.
//
// Trees returned by New are not safe for concurrent use: concurrent Add calls,
// or Add concurrent with any read, need external synchronization.
// Use NewSynchronized for a tree guarded by a read-write lock.
type Tree[T any] interface {
	Add(key string, value T) error
	Get(key string) (value T, ok bool)
	Suggest(prefix string) []T
	Each(cb Callback[T])
	Len() int
}

// New - creates a new instance of ternary search tree.
func New[T any]() Tree[T] {
	return newTST[T]()
}

// NewSynchronized - creates a ternary search tree that is safe for concurrent use.
func NewSynchronized[T any]() Tree[T] {
	return &synchronized[T]{tree: newTST[T]()}
}
