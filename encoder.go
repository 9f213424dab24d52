package huffman

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

var (
	// ErrEmptyInput means Compress was given no symbols to encode.
	ErrEmptyInput = errors.New("huffman: no symbols to encode")

	// ErrUnknownSymbol means the input contains a byte the supplied
	// weights gave no code for.
	ErrUnknownSymbol = errors.New("huffman: input byte missing from the code table")

	// ErrCodeTooLong means the supplied weights force a code longer than
	// MaxCodeSize bits.
	ErrCodeTooLong = errors.New("huffman: code too long")
)

// Compress Huffman-codes data.  The code tree is serialized in front of the
// payload, so Decompress needs nothing but the returned bytes.
func Compress(data []byte) ([]byte, error) {
	return CompressWithWeights(data, nil)
}

// CompressWithWeights is Compress with a caller-chosen weight table.  The
// weights need not match the actual byte frequencies of data, which lets two
// parties agree on a code table out of band, but every distinct byte of data
// must be present in the table.  A nil weights map means count the
// frequencies of data.
func CompressWithWeights(data []byte, weights map[Symbol]Weight) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if weights == nil {
		weights = CountWeights(data)
	}
	if len(weights) == 0 {
		return nil, ErrEmptyInput
	}

	tree := buildTree(weights)
	codes, err := extractCodes(tree)
	if err != nil {
		return nil, err
	}

	// One marker bit per node plus eight symbol bits per leaf.  A full
	// binary tree with L leaves has 2L-1 nodes.
	treeBits := 10*uint64(len(codes)) - 1
	var payloadBits uint64
	for _, b := range data {
		hc, ok := codes[Symbol(b)]
		if !ok {
			return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownSymbol, b)
		}
		payloadBits += uint64(hc.Size)
	}

	// The padding marker is zeros followed by a single 1 bit, sized so
	// the stream ends on a byte boundary.  An already-aligned stream
	// gets a full marker byte.
	padBits := 8 - (treeBits+payloadBits)%8

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := w.WriteBits(1, uint8(padBits)); err != nil {
		return nil, err
	}
	if err := writeTree(w, tree); err != nil {
		return nil, err
	}
	for _, b := range data {
		hc := codes[Symbol(b)]
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeTree emits the preorder form of the tree: a 1 bit plus eight symbol
// bits per leaf, a 0 bit per internal node followed by its two children.
// The format is self-delimiting, so no length prefix is needed.
func writeTree(w *bitio.Writer, n *node) error {
	if n.isLeaf() {
		if err := w.WriteBool(true); err != nil {
			return err
		}
		return w.WriteBits(uint64(n.symbol), 8)
	}
	if err := w.WriteBool(false); err != nil {
		return err
	}
	if err := writeTree(w, n.left); err != nil {
		return err
	}
	return writeTree(w, n.right)
}
