package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"sort"
)

// node is one node of a Huffman tree.  Leaves have nil children and carry
// the coded symbol; internal nodes always have exactly two children.  On an
// internal node the symbol field holds the representative symbol of its
// leftmost descendant, which breaks weight ties during construction and has
// no meaning for decoding.
type node struct {
	left   *node
	right  *node
	symbol Symbol
	weight Weight
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

// buildTree constructs the Huffman tree for the given weights, which must be
// non-empty.  Nodes merge smallest-first, with ties between equal weights
// broken on the representative symbol, so identical weights always produce
// an identical tree.  The smaller node of each merge becomes the left child.
func buildTree(weights map[Symbol]Weight) *node {
	symbols := make([]int, 0, len(weights))
	for symbol := range weights {
		symbols = append(symbols, int(symbol))
	}
	sort.Ints(symbols)

	h := nodeHeap{list: make([]*node, 0, len(weights))}
	for _, symbol := range symbols {
		h.list = append(h.list, &node{symbol: Symbol(symbol), weight: weights[Symbol(symbol)]})
	}
	heap.Init(&h)

	for h.Len() > 1 {
		first := heap.Pop(&h).(*node)
		second := heap.Pop(&h).(*node)
		heap.Push(&h, &node{
			left:   first,
			right:  second,
			symbol: first.symbol,
			weight: satAddWeight(first.weight, second.weight),
		})
	}
	return heap.Pop(&h).(*node)
}

// codeTable maps each leaf symbol of one tree to its code.
type codeTable map[Symbol]Code

// extractCodes derives the code table by walking the tree.  The left edge
// contributes a 1 bit and the right edge a 0 bit.  A tree whose root is a
// leaf gets the fixed one-bit code "0", so that streams coding a single
// distinct symbol still spend a payload bit per occurrence and remain
// decodable by exhaustion.
func extractCodes(root *node) (codeTable, error) {
	codes := make(codeTable)
	if root.isLeaf() {
		codes[root.symbol] = MakeCode(1, 0)
		return codes, nil
	}
	if err := walkCodes(codes, root, Code{}); err != nil {
		return nil, err
	}
	return codes, nil
}

func walkCodes(codes codeTable, n *node, hc Code) error {
	if n.isLeaf() {
		codes[n.symbol] = hc
		return nil
	}
	if hc.Size == MaxCodeSize {
		return fmt.Errorf("%w: tree deeper than %d levels", ErrCodeTooLong, MaxCodeSize)
	}
	if err := walkCodes(codes, n.left, hc.Append(1)); err != nil {
		return err
	}
	return walkCodes(codes, n.right, hc.Append(0))
}

// dump writes a programmer-readable listing of the code table, sorted by
// symbol, to the given writer.
func (t codeTable) dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("codes{\n")
	symbols := make([]int, 0, len(t))
	for symbol := range t {
		symbols = append(symbols, int(symbol))
	}
	sort.Ints(symbols)
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\t%q = %s\n", symbol, t[Symbol(symbol)])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Codes builds the code table implied by the given weights without
// compressing anything.  A decoder handed the same weights out of band
// derives exactly the table CompressWithWeights would use.
func Codes(weights map[Symbol]Weight) (map[Symbol]Code, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyInput
	}
	codes, err := extractCodes(buildTree(weights))
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*node
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.symbol < b.symbol
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*node))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
