package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/op/go-logging"
)

// Tree topology is written depth first, in pre-order.  An internal node is a
// 1 bit followed by its child 0 and then its child 1.  A terminal node is a 0
// bit followed by its letter, LetterWidth[L]() bits wide.  Weights are not
// written: the format only reproduces the shape of the tree and the letters
// at its terminal nodes.
//
// For example, the byte tree with codes {0xff: "0", 0xcc: "10", 0xaa: "11"}
// is written as
//
//     1 0 11111111 1 0 11001100 0 10101010
//

// WriteTree writes the topology of t to w.
func WriteTree[L FixedLetter](w BitWriter, t *Tree[L]) error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: tree has no root", ErrEmptyAlphabet)
	}
	return writeBranch(w, t.root, LetterWidth[L]())
}

func writeBranch[L FixedLetter](w BitWriter, b *Branch[L], width uint8) error {
	if b.IsTerminal() {
		if err := w.WriteBool(false); err != nil {
			return err
		}
		return w.WriteBits(letterToBits(b.leaf.letter, width), width)
	}

	if err := w.WriteBool(true); err != nil {
		return err
	}
	for i := range b.children {
		if err := writeBranch(w, &b.children[i], width); err != nil {
			return err
		}
	}
	return nil
}

// AsBin returns the topology of t as a bit sequence.  A zero Tree yields an
// empty sequence.
func AsBin[L FixedLetter](t *Tree[L]) Bits {
	var out Bits
	if t == nil || t.root == nil {
		return out
	}
	err := writeBranch(&out, t.root, LetterWidth[L]())
	assert.Assertf(err == nil, "writing to Bits failed: %v", err)
	return out
}

// ReadTree reads one tree topology from r and rebuilds its code table.  Bits
// after the end of the topology are left unread.  A topology deeper than any
// tree of distinct letters could be is rejected with ErrCorruptHeader.
//
// The returned tree has no weights and must not be merged with others.
//
func ReadTree[L FixedLetter](r BitReader) (*Tree[L], error) {
	width := LetterWidth[L]()
	root, err := readBranch[L](r, width, maxDepth(width), 0, -1)
	if err != nil {
		return nil, err
	}

	codes, minSize, maxSize, err := assignCodes(root)
	if err != nil {
		return nil, err
	}

	t := &Tree[L]{
		root:    root,
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}

	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("read %v", t)
	}
	return t, nil
}

// maxTreeDepth bounds the depth of decoded trees over wide letters.
const maxTreeDepth = 1<<16 - 1

// maxDepth is the deepest a terminal can sit in a tree of distinct letters
// of the given width: one less than the size of the alphabet.
func maxDepth(width uint8) int {
	if width >= 16 {
		return maxTreeDepth
	}
	return 1<<width - 1
}

func readBranch[L FixedLetter](r BitReader, width uint8, limit, depth int, pos int8) (*Branch[L], error) {
	internal, err := r.ReadBool()
	if err != nil {
		return nil, truncatedInput(err, "expected node tag")
	}

	if !internal {
		u, err := r.ReadBits(width)
		if err != nil {
			return nil, truncatedInput(err, "expected %d-bit letter", width)
		}
		return &Branch[L]{
			leaf: Leaf[L]{letter: letterFromBits[L](u), terminal: true},
			pos:  pos,
		}, nil
	}

	if depth >= limit {
		return nil, fmt.Errorf("%w: tree deeper than %d levels", ErrCorruptHeader, limit)
	}

	var children [2]Branch[L]
	for i := range children {
		child, err := readBranch[L](r, width, limit, depth+1, int8(i))
		if err != nil {
			return nil, err
		}
		children[i] = *child
	}
	return &Branch[L]{children: &children, pos: pos}, nil
}

// TreeFromBin rebuilds a tree from the output of AsBin.
//
// Up to 7 zero bits of padding may follow the topology.  If anything more
// follows it, TreeFromBin logs a warning and returns the tree together with
// an error wrapping ErrTrailingBits; the tree is still valid in that case.
//
func TreeFromBin[L FixedLetter](b Bits) (*Tree[L], error) {
	r := NewBitsReader(b)
	t, err := ReadTree[L](r)
	if err != nil {
		return nil, err
	}

	if rest := r.Rest(); rest.Len() >= 8 || !rest.isZero() {
		log.Warningf("%d bits follow the tree topology", rest.Len())
		return t, fmt.Errorf("%w: %d bits follow the topology", ErrTrailingBits, rest.Len())
	}
	return t, nil
}
