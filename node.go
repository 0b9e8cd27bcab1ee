package tst

import "unicode/utf8"

// tstNode matches one character at one position of the inserted keys.
type tstNode[T any] struct {
	char rune

	low   *tstNode[T] // keys whose character here is less than char
	high  *tstNode[T] // keys whose character here is greater than char
	equal *tstNode[T] // next position of keys matching char

	terminal bool
	value    T
}

// newTSTNode creates a non-terminal node for the passed in character.
func newTSTNode[T any](char rune) *tstNode[T] {
	return &tstNode[T]{char: char}
}

// isTerminal returns whether some key ends exactly at this node.
func (n *tstNode[T]) isTerminal() bool { return n.terminal }

// markTerminal marks the node as the end of a key and stores its value,
// overwriting any previous one.
func (n *tstNode[T]) markTerminal(value T) {
	n.terminal = true
	n.value = value
}

// findChild returns a pointer to the low or high child slot to follow for c,
// or nil if c matches the node's character.
func (n *tstNode[T]) findChild(c rune) **tstNode[T] {
	switch {
	case c < n.char:
		return &n.low
	case c > n.char:
		return &n.high
	}
	return nil
}

// A byte b that is not valid UTF-8 (always 0x80 to 0xFF) is stored as the
// rune rawByteBase+b, in U+DC80 to U+DCFF. Valid UTF-8 never decodes to a
// surrogate, so such runes can not collide with real characters.
const rawByteBase = 0xDC00

// keyRunes returns the characters of key. Unlike a []rune conversion it keeps
// invalid UTF-8 bytes distinct instead of folding them into U+FFFD.
func keyRunes(key string) []rune {
	chars := make([]rune, 0, len(key))
	for i := 0; i < len(key); {
		r, size := utf8.DecodeRuneInString(key[i:])
		if r == utf8.RuneError && size == 1 {
			r = rawByteBase + rune(key[i])
		}
		chars = append(chars, r)
		i += size
	}
	return chars
}

// keyPath is the chain of characters matched along equal links on the way to
// a subtree. Keys are only materialized for the nodes that need them.
type keyPath struct {
	char   rune
	parent *keyPath
	length int
}

// push returns the path extended by c. The receiver is left unchanged.
func (p *keyPath) push(c rune) *keyPath {
	length := 1
	if p != nil {
		length = p.length + 1
	}
	return &keyPath{char: c, parent: p, length: length}
}

// String returns the key spelled by the path, with raw bytes restored.
func (p *keyPath) String() string {
	if p == nil {
		return ""
	}
	chars := make([]rune, p.length)
	for q := p; q != nil; q = q.parent {
		chars[q.length-1] = q.char
	}

	buf := make([]byte, 0, len(chars))
	for _, c := range chars {
		if c >= rawByteBase+0x80 && c <= rawByteBase+0xFF {
			buf = append(buf, byte(c-rawByteBase))
			continue
		}
		buf = utf8.AppendRune(buf, c)
	}
	return string(buf)
}
