package huffman

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

// ErrMalformed means the input is not a stream produced by Compress: the
// stream ends inside the padding marker or the serialized tree.
var ErrMalformed = errors.New("huffman: malformed compressed stream")

// maxTreeDepth bounds tree deserialization.  A full binary tree over a
// 256-symbol alphabet is at most 255 levels deep, so anything deeper is not
// a tree this package could have written.
const maxTreeDepth = 255

// Decompress reverses Compress, recovering the original byte sequence from
// a compressed stream.
func Decompress(data []byte) ([]byte, error) {
	r := bitio.NewReader(bytes.NewReader(data))

	// Skip padding: zeros up to the first 1 bit.
	for {
		marker, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("%w: missing padding marker", ErrMalformed)
		}
		if marker {
			break
		}
	}

	tree, err := readTree(r, 0)
	if err != nil {
		return nil, err
	}

	var out []byte
	if tree.isLeaf() {
		// Single-symbol tree: each occurrence costs one payload bit.
		for {
			if _, err := r.ReadBool(); err != nil {
				return out, nil
			}
			out = append(out, byte(tree.symbol))
		}
	}

	for {
		n := tree
		for !n.isLeaf() {
			bit, err := r.ReadBool()
			if err != nil {
				// Out of bits: the payload is finished.  Any
				// partially decoded symbol is discarded.
				return out, nil
			}
			if bit {
				n = n.left
			} else {
				n = n.right
			}
		}
		out = append(out, byte(n.symbol))
	}
}

// readTree is the inverse of writeTree.  It consumes exactly the tree's own
// bits and leaves the reader positioned at the first payload bit.
func readTree(r *bitio.Reader, depth int) (*node, error) {
	if depth > maxTreeDepth {
		return nil, fmt.Errorf("%w: tree deeper than %d levels", ErrMalformed, maxTreeDepth)
	}
	leaf, err := r.ReadBool()
	if err != nil {
		return nil, fmt.Errorf("%w: truncated tree", ErrMalformed)
	}
	if leaf {
		symbol, err := r.ReadBits(8)
		if err != nil {
			return nil, fmt.Errorf("%w: truncated tree", ErrMalformed)
		}
		return &node{symbol: Symbol(symbol)}, nil
	}

	left, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	return &node{left: left, right: right, symbol: left.symbol}, nil
}
