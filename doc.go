// Package hufftree implements static Huffman coding over arbitrary symbol
// alphabets.  A frequency table yields an optimal prefix-free binary code:
// the Encoder maps symbols to bit sequences, the Decoder walks the code tree
// to map bit sequences back to symbols, and Codec bundles a matched pair of
// the two.
//
// Unlike canonical-code implementations aimed at DEFLATE-style formats, the
// code tree itself is the artifact here.  Symbols may be any comparable Go
// type, codes are materialized as BitString values rather than packed
// integers, and nothing is ever serialized: an encoder and a decoder agree
// only if both were built from the same frequency table in the same order.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package hufftree
