// Package huffman implements Huffman coding of byte sequences.  The
// compressed form is self-contained: the code tree is serialized in front of
// the payload, and a unary padding marker keeps the whole stream byte-aligned
// without needing a length header anywhere.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
