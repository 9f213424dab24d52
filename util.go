package huffman

import (
	"math"
)

// satAddWeight sums two weights using saturating addition.
func satAddWeight(a, b Weight) Weight {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}
