package hufftree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Decoder implements the decoding half of a static Huffman code.  It owns a
// code tree and walks it bit by bit: a 0 bit descends left, a 1 bit descends
// right, and reaching a leaf emits that leaf's symbol and restarts from the
// root.
//
// A Decoder is immutable after construction and safe for concurrent use;
// every Decode, AppendDecode, Iter, and DecodeFrom call runs an independent
// traversal.
type Decoder[T comparable] struct {
	tree *Tree[T]
}

// NewDecoder constructs a Decoder over t.  The Decoder retains t for its
// entire lifetime.
func NewDecoder[T comparable](t *Tree[T]) *Decoder[T] {
	return &Decoder[T]{tree: t}
}

// Tree returns the code tree this Decoder walks.
func (d *Decoder[T]) Tree() *Tree[T] {
	return d.tree
}

// Decode reconstructs the symbol sequence encoded in bs.
//
// Decoding an in-memory BitString cannot fail.  If bs ends while the walk
// sits on an internal node, the trailing bits are discarded with no error
// and no partial symbol, so a garbled bitstream decodes to a wrong but
// well-formed sequence rather than an error.  On a single-leaf tree every
// bit of bs emits the lone symbol once, regardless of the bit's value,
// mirroring the one-bit code such a tree encodes with.
func (d *Decoder[T]) Decode(bs *BitString) []T {
	return d.AppendDecode(nil, bs)
}

// AppendDecode appends the symbols encoded in bs to dst and returns the
// extended slice.  It follows the same rules as Decode.
func (d *Decoder[T]) AppendDecode(dst []T, bs *BitString) []T {
	root := d.tree.root
	cur := root
	for i, n := 0, bs.Len(); i < n; i++ {
		if bs.Bit(i) {
			if cur.right != nil {
				cur = cur.right
			}
		} else if cur.left != nil {
			cur = cur.left
		}
		if cur.leaf {
			dst = append(dst, cur.sym)
			cur = root
		}
	}
	return dst
}

// Iter returns a cursor that decodes bs lazily, one symbol per Next call:
//
//	it := dec.Iter(bits)
//	for it.Next() {
//		use(it.Symbol())
//	}
//
// Each call to Iter starts a fresh traversal, so the same bitstream can be
// iterated any number of times.  The cursor reads bs incrementally; the
// caller must not append to bs while iterating.
func (d *Decoder[T]) Iter(bs *BitString) *Iter[T] {
	return &Iter[T]{root: d.tree.root, cur: d.tree.root, bits: bs}
}

// DecodeFrom decodes exactly len(dst) symbols from the bit stream r,
// consuming only the bits those symbols occupy.
//
// This is the streaming counterpart of Decode for callers that know the
// symbol count up front.  Because the count is explicit, running out of bits
// before dst fills is an error here (io.ErrUnexpectedEOF) rather than
// silent truncation.  On a single-leaf tree one bit is consumed per symbol,
// mirroring EncodeTo, so surrounding stream content stays aligned.
func (d *Decoder[T]) DecodeFrom(r *bitio.Reader, dst []T) error {
	root := d.tree.root
	for i := range dst {
		cur := root
		if cur.leaf {
			if _, err := r.ReadBool(); err != nil {
				return eofToUnexpected(err)
			}
			dst[i] = cur.sym
			continue
		}
		for !cur.leaf {
			bit, err := r.ReadBool()
			if err != nil {
				return eofToUnexpected(err)
			}
			if bit {
				cur = cur.right
			} else {
				cur = cur.left
			}
		}
		dst[i] = cur.sym
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer, one line per tree node keyed by bit path.
func (d *Decoder[T]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	visit(d.tree, func(n *node[T], path *BitString) {
		if n.leaf {
			fmt.Fprintf(&buf, "\tDecode(%s) = %v\n", path, n.sym)
		} else {
			fmt.Fprintf(&buf, "\tDecode(%s) = <branch>\n", path)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a one-line summary of the Decoder.
func (d *Decoder[T]) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols)", d.tree.syms)
}

var _ fmt.Stringer = (*Decoder[int])(nil)

// Iter is a lazy decoding cursor over a bitstream.  See Decoder.Iter.
type Iter[T comparable] struct {
	root *node[T]
	cur  *node[T]
	bits *BitString
	pos  int
	sym  T
}

// Next advances the cursor to the next symbol, returning false when the
// bitstream is exhausted.  Trailing bits that do not complete a symbol are
// discarded, exactly as in Decode.
func (it *Iter[T]) Next() bool {
	for it.pos < it.bits.Len() {
		bit := it.bits.Bit(it.pos)
		it.pos++
		if bit {
			if it.cur.right != nil {
				it.cur = it.cur.right
			}
		} else if it.cur.left != nil {
			it.cur = it.cur.left
		}
		if it.cur.leaf {
			it.sym = it.cur.sym
			it.cur = it.root
			return true
		}
	}
	return false
}

// Symbol returns the symbol found by the most recent successful Next.
func (it *Iter[T]) Symbol() T {
	return it.sym
}
