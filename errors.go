package tst

import "github.com/pkg/errors"

// ErrEmptyKey is returned by Add when the key has no characters.
var ErrEmptyKey = errors.New("tst: empty key")
