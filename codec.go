package hufftree

// Codec bundles the Encoder and Decoder halves of one static Huffman code,
// built from a single frequency table and sharing one code tree.
type Codec[T comparable] struct {
	enc *Encoder[T]
	dec *Decoder[T]
}

// New builds the code tree for the given weight table and wraps a matched
// Encoder and Decoder around it.  It fails only if BuildTree does, i.e. with
// ErrInvalidWeights on an empty table.
//
// Determinism is driven entirely by weights: the same table in the same
// order always produces the same codec.  See BuildTree for the tie-break
// contract.
func New[T comparable](weights []Weight[T]) (*Codec[T], error) {
	t, err := BuildTree(weights)
	if err != nil {
		return nil, err
	}
	return &Codec[T]{enc: NewEncoder(t), dec: NewDecoder(t)}, nil
}

// Encode encodes data into a bitstream.  See Encoder.Encode.
func (c *Codec[T]) Encode(data []T) (*BitString, error) {
	return c.enc.Encode(data)
}

// Decode reconstructs the symbol sequence encoded in bs.  See
// Decoder.Decode.
func (c *Codec[T]) Decode(bs *BitString) []T {
	return c.dec.Decode(bs)
}

// AppendDecode appends the symbols encoded in bs to dst and returns the
// extended slice.  See Decoder.AppendDecode.
func (c *Codec[T]) AppendDecode(dst []T, bs *BitString) []T {
	return c.dec.AppendDecode(dst, bs)
}

// Iter returns a lazy decoding cursor over bs.  See Decoder.Iter.
func (c *Codec[T]) Iter(bs *BitString) *Iter[T] {
	return c.dec.Iter(bs)
}

// Split hands out the two halves of the codec as independent values, for
// callers whose encode and decode sides live in different places.  Both
// halves are immutable and share the underlying tree; the Codec itself may
// be discarded after splitting.
func (c *Codec[T]) Split() (*Encoder[T], *Decoder[T]) {
	return c.enc, c.dec
}
