package hufftree

import (
	"errors"
	"fmt"
)

// ErrNoSuchKey is the sentinel wrapped by every NoSuchKeyError.  Use
// errors.Is(err, ErrNoSuchKey) to test for it without caring about the
// offending symbol.
var ErrNoSuchKey = errors.New("hufftree: no such key in encoding dictionary")

// ErrInvalidWeights is returned by BuildTree and New when the frequency
// table cannot produce a code tree.
var ErrInvalidWeights = errors.New("hufftree: invalid weights")

// NoSuchKeyError reports an input symbol that has no entry in the encoding
// dictionary.  It unwraps to ErrNoSuchKey.
type NoSuchKeyError struct {
	// Symbol is the offending symbol.
	Symbol any
}

// Error fulfills the error interface.
func (err *NoSuchKeyError) Error() string {
	return fmt.Sprintf("hufftree: no such key in encoding dictionary: %v", err.Symbol)
}

// Unwrap returns ErrNoSuchKey.
func (err *NoSuchKeyError) Unwrap() error {
	return ErrNoSuchKey
}

var _ error = (*NoSuchKeyError)(nil)
