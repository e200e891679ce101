package hufftree

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitString represents a sequence of bits of arbitrary length.
//
// Bits are packed MSB-first: the first bit in the sequence occupies the most
// significant bit of the first byte.  This matches the bit order used by
// bitio, so a BitString replayed through WriteBitsTo comes back out of
// bitio.Reader.ReadBool in append order.
//
// The zero value is an empty BitString ready for use.  BitString is both the
// per-symbol code unit handed out by Encoder and the bitstream consumed by
// Decoder.
type BitString struct {
	data  []byte
	nbits int
}

// ParseBitString constructs a BitString from a string of '0' and '1'
// characters, first bit first.
func ParseBitString(str string) (*BitString, error) {
	bs := new(BitString)
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			bs.AppendBit(false)
		case '1':
			bs.AppendBit(true)
		default:
			return nil, fmt.Errorf("hufftree: invalid bit character %q at index %d", str[i], i)
		}
	}
	return bs, nil
}

// Len returns the number of bits in the BitString.
func (bs *BitString) Len() int {
	return bs.nbits
}

// Bit returns the i'th bit of the BitString.  The first appended bit is
// Bit(0).
func (bs *BitString) Bit(i int) bool {
	if i < 0 || i >= bs.nbits {
		// Keep Assertf off the success path: its arguments escape, and
		// Bit runs once per bit in the encode and decode loops.
		assert.Assertf(false, "bit index %d out of range [0, %d)", i, bs.nbits)
	}
	return bs.data[i>>3]&(byte(0x80)>>uint(i&7)) != 0
}

// AppendBit appends one bit to the BitString.
func (bs *BitString) AppendBit(bit bool) {
	if bs.nbits>>3 == len(bs.data) {
		bs.data = append(bs.data, 0)
	}
	mask := byte(0x80) >> uint(bs.nbits&7)
	if bit {
		bs.data[bs.nbits>>3] |= mask
	} else {
		bs.data[bs.nbits>>3] &^= mask
	}
	bs.nbits++
}

// Append appends every bit of other to the BitString, in order.
func (bs *BitString) Append(other BitString) {
	n := other.nbits
	for i := 0; i < n; i++ {
		bs.AppendBit(other.Bit(i))
	}
}

// Bytes returns the bits packed into bytes, MSB-first.  If Len is not a
// multiple of 8, the low bits of the final byte are zero.  The returned
// slice aliases the BitString and is valid only until the next append.
func (bs *BitString) Bytes() []byte {
	return bs.data[:(bs.nbits+7)>>3]
}

// Equal reports whether bs and other hold the same bits in the same order.
func (bs *BitString) Equal(other *BitString) bool {
	if bs.nbits != other.nbits {
		return false
	}
	return bytes.Equal(bs.Bytes(), other.Bytes())
}

// WriteBitsTo replays the BitString into w, first bit first.  Whole leading
// bytes take the byte-at-a-time path; at most 7 trailing bits go out through
// WriteBits.
func (bs *BitString) WriteBitsTo(w *bitio.Writer) error {
	nb := bs.nbits >> 3
	for i := 0; i < nb; i++ {
		if err := w.WriteByte(bs.data[i]); err != nil {
			return err
		}
	}
	if rem := bs.nbits & 7; rem != 0 {
		tail := bs.data[nb] >> uint(8-rem)
		if err := w.WriteBits(uint64(tail), byte(rem)); err != nil {
			return err
		}
	}
	return nil
}

// String returns the string representation of this BitString.
func (bs *BitString) String() string {
	if bs.nbits == 0 {
		return "\"\""
	}
	raw := make([]byte, bs.nbits)
	for i := 0; i < bs.nbits; i++ {
		raw[i] = '0'
		if bs.Bit(i) {
			raw[i] = '1'
		}
	}
	return strconv.Quote(string(raw))
}

var _ fmt.Stringer = (*BitString)(nil)

// clone returns a deep copy with its own backing array, detached from any
// walker path or dictionary storage the receiver shares bytes with.
func (bs *BitString) clone() BitString {
	nb := (bs.nbits + 7) >> 3
	out := BitString{data: make([]byte, nb), nbits: bs.nbits}
	copy(out.data, bs.data)
	return out
}

// truncate shortens the BitString to n bits, clearing any dangling bits in
// the final byte so that Bytes stays zero-padded.
func (bs *BitString) truncate(n int) {
	if n < 0 || n > bs.nbits {
		assert.Assertf(false, "truncate length %d out of range [0, %d]", n, bs.nbits)
	}
	bs.nbits = n
	bs.data = bs.data[:(n+7)>>3]
	if rem := n & 7; rem != 0 {
		bs.data[len(bs.data)-1] &= byte(0xff) << uint(8-rem)
	}
}
