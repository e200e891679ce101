package hufftree

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Tree is a static Huffman code tree.  Every leaf holds exactly one symbol,
// every internal node holds exactly two children and no symbol, and the path
// from the root to a leaf spells out the leaf symbol's code, with 0 meaning
// "descend left" and 1 meaning "descend right".
//
// A Tree is immutable once BuildTree returns, so a single Tree may be shared
// by an Encoder, a Decoder, and any number of goroutines.
type Tree[T comparable] struct {
	root *node[T]
	syms int
}

type node[T comparable] struct {
	freq  uint32
	sym   T
	leaf  bool
	left  *node[T]
	right *node[T]
}

// BuildTree constructs the code tree for the given frequency table using the
// classic greedy algorithm: keep merging the two lowest-frequency subtrees
// until one remains.
//
// The merge order is deterministic.  Subtrees are ranked by (frequency,
// creation order): leaves are created in table order, merged nodes continue
// the count, and on a frequency tie the earlier-created subtree wins.  Of
// the two subtrees removed per merge, the first becomes the left child and
// the second becomes the right child.  Building twice from the same table
// therefore yields the same tree, bit for bit; a reordered table may not.
//
// An empty table has no symbols to form a root and fails with a wrapped
// ErrInvalidWeights.  A single-entry table is legal and produces a tree
// whose root is itself a leaf.
func BuildTree[T comparable](weights []Weight[T]) (*Tree[T], error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: empty weight table", ErrInvalidWeights)
	}

	h := buildHeap[T]{list: make([]buildEntry[T], 0, len(weights))}
	for i, w := range weights {
		leaf := &node[T]{freq: w.Freq, sym: w.Symbol, leaf: true}
		h.list = append(h.list, buildEntry[T]{node: leaf, seq: i})
	}
	h.Init()

	seq := len(weights)
	for h.Len() > 1 {
		a := heap.Pop(&h).(buildEntry[T])
		b := heap.Pop(&h).(buildEntry[T])

		// Compute freqSum using saturating addition.
		freqSum := a.node.freq + b.node.freq
		if freqSum < a.node.freq {
			freqSum = math.MaxUint32
		}

		merged := &node[T]{freq: freqSum, left: a.node, right: b.node}
		heap.Push(&h, buildEntry[T]{node: merged, seq: seq})
		seq++
	}

	assert.Assertf(h.Len() == 1, "merge loop left %d subtrees, expected exactly 1", h.Len())
	root := heap.Pop(&h).(buildEntry[T]).node
	return &Tree[T]{root: root, syms: len(weights)}, nil
}

// NumSymbols returns the number of leaves in the tree.
func (t *Tree[T]) NumSymbols() int {
	return t.syms
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one line per node keyed by the bit path that reaches it.
func (t *Tree[T]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	visit(t, func(n *node[T], path *BitString) {
		if n.leaf {
			fmt.Fprintf(&buf, "\t%s = %v [freq %d]\n", path, n.sym, n.freq)
		} else {
			fmt.Fprintf(&buf, "\t%s = <branch> [freq %d]\n", path, n.freq)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// visit walks the tree in preorder, calling fn with each node and the bit
// path that leads to it.  The root's path is empty.
//
// The walk keeps its own stack instead of recursing, so even the worst-case
// tree shape (a stick, one leaf per level) cannot overflow the goroutine
// stack.  We use stackItem.x to keep track of where we are at each level:
//
//	x=0 → We just arrived at stackItem for the first time
//	x=1 → We have already processed the left child
//	x=2 → We have already processed both children
//
// fn must not retain path; the walker rewrites it in place.
func visit[T comparable](t *Tree[T], fn func(n *node[T], path *BitString)) {
	var path BitString
	fn(t.root, &path)
	if t.root.leaf {
		return
	}

	type stackItem struct {
		n *node[T]
		x byte
	}

	stack := make([]stackItem, 0, log2int(t.syms)+1)
	stack = append(stack, stackItem{n: t.root})
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0, 1:
			child, bit := top.n.left, false
			if x == 1 {
				child, bit = top.n.right, true
			}
			path.AppendBit(bit)
			fn(child, &path)
			if child.leaf {
				path.truncate(path.Len() - 1)
			} else {
				stack = append(stack, stackItem{n: child})
			}
		default:
			// Both children done; drop the bit that led here.  The
			// root arrived with an empty path, hence the guard.
			stack = stack[:len(stack)-1]
			if path.Len() > 0 {
				path.truncate(path.Len() - 1)
			}
		}
	}
}

// type buildEntry + type buildHeap {{{

type buildEntry[T comparable] struct {
	node *node[T]
	seq  int
}

type buildHeap[T comparable] struct {
	list []buildEntry[T]
}

func (h *buildHeap[T]) Init() {
	heap.Init(h)
}

func (h *buildHeap[T]) Len() int {
	return len(h.list)
}

func (h *buildHeap[T]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *buildHeap[T]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.freq != b.node.freq {
		return a.node.freq < b.node.freq
	}
	return a.seq < b.seq
}

func (h *buildHeap[T]) Push(x any) {
	h.list = append(h.list, x.(buildEntry[T]))
}

func (h *buildHeap[T]) Pop() any {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = buildEntry[T]{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*buildHeap[int])(nil)

// }}}
