package hufftree

// A Weight pairs a symbol with its frequency.  Symbols may be values of any
// comparable type; they are the keys of the encoding dictionary.
//
// Frequencies are relative: only their ordering matters, duplicates are
// fine, and zero is legal.  The slice order of a weight table matters too.
// When two subtrees tie on frequency during construction, the earlier-built
// one wins, so the same table in the same order always yields the same
// codes, while a reordered table may not.
type Weight[T comparable] struct {
	// Symbol is the alphabet member being weighted.
	Symbol T

	// Freq holds the symbol's frequency, i.e. its expected number of
	// occurrences relative to the other entries in the table.
	Freq uint32
}
