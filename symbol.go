package huffman

// Symbol represents one byte of the coded alphabet.
type Symbol byte

// Weight drives tree construction: the number of occurrences of a Symbol, or
// a caller-supplied priority.
type Weight uint64

// CountWeights counts the occurrences of each distinct byte in data.  Bytes
// that never occur are absent from the result.
func CountWeights(data []byte) map[Symbol]Weight {
	var counts [256]Weight
	for _, b := range data {
		counts[b]++
	}

	weights := make(map[Symbol]Weight)
	for i, count := range counts {
		if count != 0 {
			weights[Symbol(i)] = count
		}
	}
	return weights
}
