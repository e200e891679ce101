package hufftree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Encoder implements the encoding half of a static Huffman code: a
// dictionary from symbols to the bit sequences assigned by a code tree.
//
// An Encoder is immutable after construction and safe for concurrent use.
type Encoder[T comparable] struct {
	codes  map[T]BitString
	order  []T
	minLen int
	maxLen int
}

// NewEncoder derives the encoding dictionary from t.  Walking from the root,
// descending into a left child contributes a 0 bit and descending into a
// right child contributes a 1 bit; each leaf's accumulated path becomes its
// symbol's code.
//
// A single-leaf tree has no edges to spell a code with, so its lone symbol
// is assigned the one-bit code "0".  Every symbol therefore costs at least
// one bit, and encoding stays reversible even for a one-entry table.
//
// If the same symbol appears on several leaves, the dictionary keeps the
// last code assigned in traversal order.
func NewEncoder[T comparable](t *Tree[T]) *Encoder[T] {
	e := &Encoder[T]{
		codes: make(map[T]BitString, t.syms),
		order: make([]T, 0, t.syms),
	}

	if t.root.leaf {
		var code BitString
		code.AppendBit(false)
		e.codes[t.root.sym] = code
		e.order = append(e.order, t.root.sym)
		e.minLen, e.maxLen = 1, 1
		return e
	}

	var hasMinMax bool
	visit(t, func(n *node[T], path *BitString) {
		if !n.leaf {
			return
		}
		if _, dup := e.codes[n.sym]; !dup {
			e.order = append(e.order, n.sym)
		}
		e.codes[n.sym] = path.clone()

		size := path.Len()
		if !hasMinMax {
			hasMinMax = true
			e.minLen = size
			e.maxLen = size
		} else if e.minLen > size {
			e.minLen = size
		} else if e.maxLen < size {
			e.maxLen = size
		}
	})
	return e
}

// Encode encodes data into a bitstream by looking up each symbol's code and
// concatenating them in input order.
//
// The first symbol without a dictionary entry aborts the encode with a
// *NoSuchKeyError naming it; no partial bitstream is returned.
func (e *Encoder[T]) Encode(data []T) (*BitString, error) {
	out := new(BitString)
	for _, sym := range data {
		code, found := e.codes[sym]
		if !found {
			return nil, &NoSuchKeyError{Symbol: sym}
		}
		out.Append(code)
	}
	return out, nil
}

// EncodedLen returns the exact number of bits Encode would produce for data,
// without materializing the bitstream.
func (e *Encoder[T]) EncodedLen(data []T) (int, error) {
	var total int
	for _, sym := range data {
		code, found := e.codes[sym]
		if !found {
			return 0, &NoSuchKeyError{Symbol: sym}
		}
		total += code.Len()
	}
	return total, nil
}

// EncodeTo encodes data directly into a bit stream instead of an in-memory
// BitString.  EncodeTo does not own w: it never aligns, flushes, or closes,
// and interleaved writes from other sources are permitted between calls.
func (e *Encoder[T]) EncodeTo(w *bitio.Writer, data []T) error {
	for _, sym := range data {
		code, found := e.codes[sym]
		if !found {
			return &NoSuchKeyError{Symbol: sym}
		}
		if err := code.WriteBitsTo(w); err != nil {
			return err
		}
	}
	return nil
}

// Code returns the bit sequence assigned to sym, or found=false if sym has
// no dictionary entry.  The result is a copy; appending to it does not
// disturb the dictionary.
func (e *Encoder[T]) Code(sym T) (*BitString, bool) {
	stored, found := e.codes[sym]
	if !found {
		return nil, false
	}
	code := stored.clone()
	return &code, true
}

// MinLen is the bit length of the shortest code in the dictionary.
func (e *Encoder[T]) MinLen() int {
	return e.minLen
}

// MaxLen is the bit length of the longest code in the dictionary.
func (e *Encoder[T]) MaxLen() int {
	return e.maxLen
}

// NumSymbols returns the number of entries in the dictionary.
func (e *Encoder[T]) NumSymbols() int {
	return len(e.codes)
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Symbols are listed in code-tree traversal
// order, so two Encoders built from the same weight table dump identically.
func (e *Encoder[T]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinLen() = %d\n", e.minLen)
	fmt.Fprintf(&buf, "\tMaxLen() = %d\n", e.maxLen)
	for _, sym := range e.order {
		code := e.codes[sym]
		fmt.Fprintf(&buf, "\tCode(%v) = %s\n", sym, &code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a one-line summary of the Encoder.
func (e *Encoder[T]) String() string {
	return fmt.Sprintf("(Huffman encoder with %d symbols, with code lengths of %d .. %d bits)", len(e.codes), e.minLen, e.maxLen)
}

var _ fmt.Stringer = (*Encoder[int])(nil)
