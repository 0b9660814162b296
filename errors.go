package huffman

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrEmptyAlphabet is returned when a tree is requested for a weight
	// table with no letters.
	ErrEmptyAlphabet = errors.New("huffman: empty alphabet")

	// ErrInvalidWeight is returned when a letter has a weight of zero.
	ErrInvalidWeight = errors.New("huffman: invalid weight")

	// ErrTruncatedInput is returned when a tree topology ends before the
	// tree is complete.
	ErrTruncatedInput = errors.New("huffman: truncated tree topology")

	// ErrTruncatedPayload is returned when a compressed stream ends before
	// all of its letters were decoded.
	ErrTruncatedPayload = errors.New("huffman: truncated payload")

	// ErrTrailingBits is returned alongside a valid tree when the decoded
	// topology is followed by more bits than byte padding would explain.
	ErrTrailingBits = errors.New("huffman: trailing bits after tree topology")

	// ErrCorruptHeader is returned when the header of a compressed stream
	// does not describe a usable tree.
	ErrCorruptHeader = errors.New("huffman: corrupt header")
)

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

func truncatedInput(err error, format string, args ...interface{}) error {
	if isEOF(err) {
		return fmt.Errorf("%w: %s", ErrTruncatedInput, fmt.Sprintf(format, args...))
	}
	return fmt.Errorf("huffman: reading tree topology: %w", err)
}
