package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// A compressed stream is laid out as
//
//     [tree topology, 8-bit letters]
//     [length of the original data, 64 bits]
//     [code of each byte of the original data]
//     [zero bits up to the next byte boundary]
//
// All fields are packed most significant bit first.  The length field tells
// the decoder when to stop, so padding is never mistaken for data.

const lengthBits = 64

// maxPrealloc bounds the output buffer allocated up front from an untrusted
// length field.
const maxPrealloc = 1 << 20

var (
	_ BitWriter = (*bitio.Writer)(nil)
	_ BitReader = (*bitio.Reader)(nil)
)

// Compress returns the compressed form of data.  data must not be empty.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(src []byte) ([]byte, error) {
	return Decode(bytes.NewReader(src))
}

// Encode writes the compressed form of data to w.  data must not be empty.
func Encode(w io.Writer, data []byte) error {
	t, err := NewTree[byte](CountBytes(data))
	if err != nil {
		return err
	}

	var table [256]Bits
	for letter, code := range t.codes {
		table[letter] = code
	}

	bw := bitio.NewWriter(w)
	if err := WriteTree(bw, t); err != nil {
		return err
	}
	if err := bw.WriteBits(uint64(len(data)), lengthBits); err != nil {
		return err
	}
	for _, ch := range data {
		if err := table[ch].writeTo(bw); err != nil {
			return err
		}
	}
	return bw.Close()
}

// Decode reads one compressed stream from r and returns the original data.
func Decode(r io.Reader) ([]byte, error) {
	br := bitio.NewReader(r)

	t, err := ReadTree[byte](br)
	if err != nil {
		return nil, corruptHeader(err)
	}

	n, err := br.ReadBits(lengthBits)
	if err != nil {
		return nil, fmt.Errorf("%w: missing data length: %v", ErrCorruptHeader, err)
	}

	return decodePayload(br, t.root, n)
}

// decodePayload walks the tree from root once per letter, following child 0
// for a 0 bit and child 1 for a 1 bit.  A terminal root consumes one bit per
// letter.
func decodePayload(r BitReader, root *Branch[byte], n uint64) ([]byte, error) {
	size := n
	if size > maxPrealloc {
		size = maxPrealloc
	}
	out := make([]byte, 0, size)

	for count := uint64(0); count < n; count++ {
		b := root
		if b.IsTerminal() {
			if _, err := r.ReadBool(); err != nil {
				return nil, truncatedPayload(err, count, n)
			}
		}
		for !b.IsTerminal() {
			bit, err := r.ReadBool()
			if err != nil {
				return nil, truncatedPayload(err, count, n)
			}
			if bit {
				b = &b.children[1]
			} else {
				b = &b.children[0]
			}
		}
		out = append(out, b.leaf.letter)
	}
	return out, nil
}

func corruptHeader(err error) error {
	if errors.Is(err, ErrCorruptHeader) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrCorruptHeader, err)
}

func truncatedPayload(err error, count, n uint64) error {
	if isEOF(err) {
		return fmt.Errorf("%w: decoded %d of %d bytes", ErrTruncatedPayload, count, n)
	}
	return fmt.Errorf("huffman: reading payload: %w", err)
}
