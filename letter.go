package huffman

import (
	"encoding/binary"
)

// FixedLetter is the set of letter types that have a fixed-width byte
// representation, which is required to write a tree's topology.  Letters are
// written as their two's complement bit pattern, most significant bit first:
// 8 bits for a byte, 32 bits for a rune, and so on.
//
// int, uint and uintptr are excluded because their width depends on the
// platform.
//
type FixedLetter interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// LetterWidth returns the number of bits used to write one letter of type L.
func LetterWidth[L FixedLetter]() uint8 {
	var zero L
	return uint8(binary.Size(zero) * 8)
}

func letterToBits[L FixedLetter](letter L, width uint8) uint64 {
	u := uint64(letter)
	if width < 64 {
		u &= (uint64(1) << width) - 1
	}
	return u
}

func letterFromBits[L FixedLetter](u uint64) L {
	return L(u)
}
