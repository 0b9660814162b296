package huffman

import (
	"math"
	mathbits "math/bits"
)

func bytesForBits(n int) int {
	return (n + 7) >> 3
}

// addWeights computes a + b using saturating addition.
func addWeights(a, b uint64) uint64 {
	sum, carry := mathbits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}
