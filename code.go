package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest supported code, in bits.
const MaxCodeSize = 63

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low-order bits is the first bit, so a Code can be handed
	// to an MSB-first bit writer unchanged.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one trailing bit.
func (hc Code) Append(bit byte) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code size %d has reached the %d-bit limit", hc.Size, MaxCodeSize)
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint64(bit)}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
