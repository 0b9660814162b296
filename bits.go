package huffman

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Bits represents a sequence of bits.  Bits are packed most significant bit
// first: the first bit of the sequence is the high bit of the first byte.
//
// The zero value is the empty sequence.  Append and Concat always return a
// fresh copy.  WriteBool and WriteBits append in place, so a Bits value that
// has been copied must not be written to through more than one of the copies.
//
type Bits struct {
	packed []byte
	size   int
}

// BitWriter is a sink of bits, first bit first.  Both *Bits and
// *bitio.Writer satisfy it.
type BitWriter interface {
	WriteBool(b bool) error
	WriteBits(r uint64, n uint8) error
}

// BitReader is a source of bits, first bit first.  Both *BitsReader and
// *bitio.Reader satisfy it.  At end of input, ReadBool returns io.EOF and
// ReadBits returns io.EOF or io.ErrUnexpectedEOF.
type BitReader interface {
	ReadBool() (bool, error)
	ReadBits(n uint8) (uint64, error)
}

// ParseBits parses a string of '0' and '1' characters.
func ParseBits(s string) (Bits, error) {
	var b Bits
	for i, ch := range s {
		switch ch {
		case '0':
			b.push(false)
		case '1':
			b.push(true)
		default:
			return Bits{}, fmt.Errorf("huffman: invalid character %q at offset %d in bit string", ch, i)
		}
	}
	return b, nil
}

// MustParseBits is like ParseBits but panics on error.
func MustParseBits(s string) Bits {
	b, err := ParseBits(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the number of bits in the sequence.
func (b Bits) Len() int {
	return b.size
}

// Bit returns the i'th bit, counting from 0.
func (b Bits) Bit(i int) bool {
	assert.Assertf(i >= 0 && i < b.size, "bit index %d out of range [0, %d)", i, b.size)
	return b.packed[i>>3]&(0x80>>uint(i&7)) != 0
}

// Append returns a copy of b with one more bit at the end.
func (b Bits) Append(bit bool) Bits {
	out := b.clone(1)
	out.push(bit)
	return out
}

// Concat returns a copy of b followed by every bit of other.
func (b Bits) Concat(other Bits) Bits {
	out := b.clone(other.size)
	for i := 0; i < other.size; i++ {
		out.push(other.Bit(i))
	}
	return out
}

// HasPrefix reports whether the first prefix.Len() bits of b equal prefix.
func (b Bits) HasPrefix(prefix Bits) bool {
	if prefix.size > b.size {
		return false
	}
	full := prefix.size >> 3
	for i := 0; i < full; i++ {
		if b.packed[i] != prefix.packed[i] {
			return false
		}
	}
	for i := full << 3; i < prefix.size; i++ {
		if b.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// Equal reports whether b and other hold the same bits.
func (b Bits) Equal(other Bits) bool {
	return b.size == other.size && b.HasPrefix(other)
}

// Bytes returns the packed bits, with the unused low bits of the final byte
// set to zero.
func (b Bits) Bytes() []byte {
	n := bytesForBits(b.size)
	out := make([]byte, n)
	copy(out, b.packed[:n])
	if r := b.size & 7; r != 0 {
		out[n-1] &= 0xff << uint(8-r)
	}
	return out
}

// String returns the string representation of this sequence.
func (b Bits) String() string {
	if b.size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(b.size)
	for i := 0; i < b.size; i++ {
		if b.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Bits{}

// WriteBool appends one bit in place.
func (b *Bits) WriteBool(bit bool) error {
	b.push(bit)
	return nil
}

// WriteBits appends the n low bits of r in place, most significant first.
func (b *Bits) WriteBits(r uint64, n uint8) error {
	assert.Assertf(n <= 64, "n %d > 64", n)
	for i := n; i > 0; i-- {
		b.push((r>>(i-1))&1 != 0)
	}
	return nil
}

var _ BitWriter = (*Bits)(nil)

func (b *Bits) push(bit bool) {
	index := b.size >> 3
	if b.size&7 == 0 {
		b.packed = append(b.packed[:index], 0)
	}
	mask := byte(0x80) >> uint(b.size&7)
	if bit {
		b.packed[index] |= mask
	} else {
		b.packed[index] &^= mask
	}
	b.size++
}

func (b Bits) clone(extra int) Bits {
	n := bytesForBits(b.size)
	packed := make([]byte, n, bytesForBits(b.size+extra))
	copy(packed, b.packed[:n])
	return Bits{packed: packed, size: b.size}
}

// writeTo copies the sequence into w, up to 8 bits per call.
func (b Bits) writeTo(w BitWriter) error {
	for i := 0; i < b.size; i += 8 {
		n := b.size - i
		if n > 8 {
			n = 8
		}
		v := uint64(b.packed[i>>3] >> uint(8-n))
		if err := w.WriteBits(v, uint8(n)); err != nil {
			return err
		}
	}
	return nil
}

func (b Bits) isZero() bool {
	for i := 0; i < b.size; i++ {
		if b.Bit(i) {
			return false
		}
	}
	return true
}

// BitsReader reads a Bits value from front to back.
type BitsReader struct {
	bits Bits
	pos  int
}

// NewBitsReader returns a BitsReader positioned at the first bit of b.
func NewBitsReader(b Bits) *BitsReader {
	return &BitsReader{bits: b}
}

// ReadBool reads one bit.
func (r *BitsReader) ReadBool() (bool, error) {
	if r.pos >= r.bits.size {
		return false, io.EOF
	}
	bit := r.bits.Bit(r.pos)
	r.pos++
	return bit, nil
}

// ReadBits reads n bits, first bit into the most significant position.  If
// fewer than n bits remain, nothing is consumed.
func (r *BitsReader) ReadBits(n uint8) (uint64, error) {
	assert.Assertf(n <= 64, "n %d > 64", n)
	remaining := r.Remaining()
	if remaining == 0 && n > 0 {
		return 0, io.EOF
	}
	if remaining < int(n) {
		return 0, io.ErrUnexpectedEOF
	}
	var u uint64
	for i := uint8(0); i < n; i++ {
		u <<= 1
		if r.bits.Bit(r.pos) {
			u |= 1
		}
		r.pos++
	}
	return u, nil
}

// Remaining returns the number of unread bits.
func (r *BitsReader) Remaining() int {
	return r.bits.size - r.pos
}

// Rest returns a copy of the unread bits.
func (r *BitsReader) Rest() Bits {
	var out Bits
	for i := r.pos; i < r.bits.size; i++ {
		out.push(r.bits.Bit(i))
	}
	return out
}

var _ BitReader = (*BitsReader)(nil)
