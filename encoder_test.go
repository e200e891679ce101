package hufftree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/icza/bitio"
)

func makeTestEncoder() *Encoder[int] {
	return NewEncoder(makeTestTree())
}

func TestEncoder_Dump(t *testing.T) {
	e := makeTestEncoder()

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinLen() = 1\n",
		"\tMaxLen() = 4\n",
		"\tCode(5) = \"0\"\n",
		"\tCode(2) = \"100\"\n",
		"\tCode(3) = \"101\"\n",
		"\tCode(0) = \"1100\"\n",
		"\tCode(1) = \"1101\"\n",
		"\tCode(4) = \"111\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestEncoder_Encode(t *testing.T) {
	e := makeTestEncoder()

	bits, err := e.Encode([]int{5, 2, 4})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if expect := "\"0100111\""; bits.String() != expect {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, bits.String())
	}

	n, err := e.EncodedLen([]int{5, 2, 4})
	if err != nil {
		t.Fatalf("EncodedLen failed: %v", err)
	}
	if n != bits.Len() {
		t.Errorf("EncodedLen disagrees with Encode: %d vs %d", n, bits.Len())
	}
}

func TestEncoder_EncodeEmpty(t *testing.T) {
	e := makeTestEncoder()

	bits, err := e.Encode(nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if bits.Len() != 0 {
		t.Errorf("expected an empty bitstream, got %s", bits)
	}
}

func TestEncoder_NoSuchKey(t *testing.T) {
	e := makeTestEncoder()

	bits, err := e.Encode([]int{5, 99})
	if bits != nil {
		t.Errorf("expected a nil BitString, got %s", bits)
	}
	if err == nil {
		t.Fatal("expected an error for an unknown symbol, got nil")
	}
	if !errors.Is(err, ErrNoSuchKey) {
		t.Errorf("expected ErrNoSuchKey, got %v", err)
	}

	var nsk *NoSuchKeyError
	if !errors.As(err, &nsk) {
		t.Fatalf("expected a *NoSuchKeyError, got %T", err)
	}
	if sym, ok := nsk.Symbol.(int); !ok || sym != 99 {
		t.Errorf("expected offending symbol 99, got %v", nsk.Symbol)
	}

	expectMessage := "hufftree: no such key in encoding dictionary: 99"
	if actualMessage := err.Error(); expectMessage != actualMessage {
		t.Errorf("wrong message:\n\texpect: %s\n\tactual: %s", expectMessage, actualMessage)
	}

	if _, err := e.EncodedLen([]int{99}); !errors.Is(err, ErrNoSuchKey) {
		t.Errorf("expected ErrNoSuchKey from EncodedLen, got %v", err)
	}
}

func TestEncoder_Code(t *testing.T) {
	e := makeTestEncoder()

	code, found := e.Code(2)
	if !found {
		t.Fatal("expected symbol 2 to have a code")
	}
	if expect := "\"100\""; code.String() != expect {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, code.String())
	}

	// The returned code is a copy; growing it must not disturb the
	// dictionary.
	code.AppendBit(true)
	again, _ := e.Code(2)
	if expect := "\"100\""; again.String() != expect {
		t.Errorf("dictionary disturbed by append:\n\texpect: %s\n\tactual: %s", expect, again.String())
	}

	if _, found := e.Code(42); found {
		t.Error("expected no code for symbol 42")
	}
}

func TestEncoder_Accessors(t *testing.T) {
	e := makeTestEncoder()

	if e.MinLen() != 1 || e.MaxLen() != 4 {
		t.Errorf("expected code lengths 1..4, got %d..%d", e.MinLen(), e.MaxLen())
	}
	if e.NumSymbols() != 6 {
		t.Errorf("expected 6 symbols, got %d", e.NumSymbols())
	}

	expectString := "(Huffman encoder with 6 symbols, with code lengths of 1 .. 4 bits)"
	if actualString := e.String(); expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestEncoder_SingleLeaf(t *testing.T) {
	tree, err := BuildTree([]Weight[string]{{Symbol: "only", Freq: 7}})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	e := NewEncoder(tree)

	if e.MinLen() != 1 || e.MaxLen() != 1 {
		t.Errorf("expected code lengths 1..1, got %d..%d", e.MinLen(), e.MaxLen())
	}

	code, found := e.Code("only")
	if !found {
		t.Fatal("expected a code for the lone symbol")
	}
	if expect := "\"0\""; code.String() != expect {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, code.String())
	}

	bits, err := e.Encode([]string{"only", "only", "only"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if expect := "\"000\""; bits.String() != expect {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, bits.String())
	}
}

func TestEncoder_DuplicateSymbol(t *testing.T) {
	tree, err := BuildTree([]Weight[string]{
		{Symbol: "z", Freq: 1},
		{Symbol: "z", Freq: 2},
	})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	// Both leaves carry "z"; the dictionary keeps the code assigned last
	// in traversal order.
	e := NewEncoder(tree)
	if e.NumSymbols() != 1 {
		t.Errorf("expected 1 dictionary entry, got %d", e.NumSymbols())
	}

	code, found := e.Code("z")
	if !found {
		t.Fatal("expected a code for symbol \"z\"")
	}
	if expect := "\"1\""; code.String() != expect {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, code.String())
	}
}

func TestEncoder_EncodeTo(t *testing.T) {
	e := makeTestEncoder()

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := e.EncodeTo(w, []int{5, 2, 4, 5}); err != nil {
		t.Fatalf("EncodeTo failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// "0" + "100" + "111" + "0" fills exactly one byte.
	expectBytes := []byte{0x4e}
	if !bytes.Equal(expectBytes, buf.Bytes()) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expectBytes, buf.Bytes())
	}
}

func TestEncoder_EncodeTo_NoSuchKey(t *testing.T) {
	e := makeTestEncoder()

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := e.EncodeTo(w, []int{5, 99}); !errors.Is(err, ErrNoSuchKey) {
		t.Errorf("expected ErrNoSuchKey, got %v", err)
	}
}
