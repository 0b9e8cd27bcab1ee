package tst

// tree - ternary search tree type.
type tree[T any] struct {
	root *tstNode[T]
}

// newTST returns a tree with 0 nodes.
func newTST[T any]() *tree[T] {
	return &tree[T]{root: nil}
}

// Add associates value with key, overwriting the value of a key that is
// already present. It returns ErrEmptyKey if key is empty.
func (t *tree[T]) Add(key string, value T) error {
	if key == "" {
		return ErrEmptyKey
	}
	t.insertHelper(&t.root, keyRunes(key), value)
	return nil
}

// insertHelper is a helper function for Add. Nodes are created lazily in the
// slot traversal first finds empty.
func (t *tree[T]) insertHelper(currentRef **tstNode[T], key []rune, value T) {
	depth := 0
	for {
		c := key[depth]
		if *currentRef == nil {
			*currentRef = newTSTNode[T](c)
		}
		current := *currentRef

		if next := current.findChild(c); next != nil {
			currentRef = next
			continue
		}
		if depth+1 == len(key) {
			current.markTerminal(value)
			return
		}
		currentRef = &current.equal
		depth++
	}
}

// Get returns the value stored for key, and whether key is present.
func (t *tree[T]) Get(key string) (T, bool) {
	var zero T
	if key == "" {
		return zero, false
	}
	node := t.searchHelper(t.root, keyRunes(key))
	if node == nil || !node.isTerminal() {
		return zero, false
	}
	return node.value, true
}

// searchHelper returns the node at which the last character of prefix is
// matched, or nil if prefix is not a path in the tree. prefix must not be empty.
func (t *tree[T]) searchHelper(current *tstNode[T], prefix []rune) *tstNode[T] {
	depth := 0
	for current != nil {
		c := prefix[depth]
		if next := current.findChild(c); next != nil {
			current = *next
			continue
		}
		if depth+1 == len(prefix) {
			return current
		}
		current = current.equal
		depth++
	}

	return nil
}

// Suggest returns the values of every key that starts with prefix.
// The empty prefix matches every key.
//
// Values come in traversal order: a node's own value, then its low subtree,
// its high subtree and finally its equal subtree. The order is deterministic
// for a given insertion history but is not sorted.
func (t *tree[T]) Suggest(prefix string) []T {
	var suggestions []T
	collect := func(n *tstNode[T], _ *keyPath) {
		suggestions = append(suggestions, n.value)
	}

	if prefix == "" {
		t.eachHelper(t.root, nil, false, collect)
		return suggestions
	}

	prefixNode := t.searchHelper(t.root, keyRunes(prefix))
	if prefixNode == nil {
		return suggestions
	}
	if prefixNode.isTerminal() {
		suggestions = append(suggestions, prefixNode.value)
	}
	t.eachHelper(prefixNode.equal, nil, false, collect)

	return suggestions
}

// Each iterates the whole tree in the same order as Suggest,
// and will call the given callback for each stored key.
func (t *tree[T]) Each(callback Callback[T]) {
	t.eachHelper(t.root, nil, true, func(n *tstNode[T], key *keyPath) {
		callback(key.String(), n.value)
	})
}

// Len returns the number of keys in the tree. It walks the whole tree.
func (t *tree[T]) Len() int {
	var size int
	t.eachHelper(t.root, nil, false, func(*tstNode[T], *keyPath) {
		size++
	})
	return size
}

// frame is a pending subtree of eachHelper along with the path taken to it,
// excluding the subtree root's own character.
type frame[T any] struct {
	node   *tstNode[T]
	prefix *keyPath
}

// eachHelper is a helper function of Each, Suggest and Len. It calls visit
// with every terminal node of the subtree rooted at current. With withKeys set
// visit also gets the node's full key, built on prefix; otherwise no paths are
// allocated and key is nil.
// The walk uses an explicit stack so long low/high chains do not recurse.
func (t *tree[T]) eachHelper(current *tstNode[T], prefix *keyPath, withKeys bool, visit func(n *tstNode[T], key *keyPath)) {
	if current == nil {
		return
	}

	stack := []frame[T]{{node: current, prefix: prefix}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := top.node
		var key *keyPath
		if withKeys {
			key = top.prefix.push(n.char)
		}
		if n.isTerminal() {
			visit(n, key)
		}

		// Pushed in reverse so low is visited before high before equal.
		if n.equal != nil {
			stack = append(stack, frame[T]{node: n.equal, prefix: key})
		}
		if n.high != nil {
			stack = append(stack, frame[T]{node: n.high, prefix: top.prefix})
		}
		if n.low != nil {
			stack = append(stack, frame[T]{node: n.low, prefix: top.prefix})
		}
	}
}
