package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
	"github.com/op/go-logging"
)

// Leaf is the payload carried by every node of a Tree.
type Leaf[L comparable] struct {
	letter   L
	terminal bool
	weight   uint64
	code     Bits
}

// Letter returns the letter of a terminal node.  The second result is false
// for internal nodes, which carry no letter.
func (l Leaf[L]) Letter() (L, bool) {
	return l.letter, l.terminal
}

// Weight returns the total weight of the subtree.  Trees decoded from their
// topology have no weights, and Weight is always 0 for them.
func (l Leaf[L]) Weight() uint64 {
	return l.weight
}

// Code returns the path from the root to this node.
func (l Leaf[L]) Code() Bits {
	return l.code
}

// Branch is a node of a Tree.  A Branch is either terminal, holding a letter
// and no children, or internal, holding exactly two children and no letter.
// Each Branch owns its children.
type Branch[L comparable] struct {
	leaf     Leaf[L]
	children *[2]Branch[L]
	pos      int8
}

func newTerminal[L comparable](letter L, weight uint64) *Branch[L] {
	return &Branch[L]{
		leaf: Leaf[L]{letter: letter, terminal: true, weight: weight},
		pos:  -1,
	}
}

// newInternal merges a and b, which become children 0 and 1 respectively.
func newInternal[L comparable](a, b *Branch[L]) *Branch[L] {
	a.pos, b.pos = 0, 1
	return &Branch[L]{
		leaf:     Leaf[L]{weight: addWeights(a.leaf.weight, b.leaf.weight)},
		children: &[2]Branch[L]{*a, *b},
		pos:      -1,
	}
}

// Leaf returns the payload of this node.
func (b *Branch[L]) Leaf() Leaf[L] {
	return b.leaf
}

// IsTerminal reports whether this node has no children.
func (b *Branch[L]) IsTerminal() bool {
	return b.children == nil
}

// Child returns child 0 or child 1, or nil if this node is terminal.
func (b *Branch[L]) Child(index int) *Branch[L] {
	assert.Assertf(index == 0 || index == 1, "child index %d is not 0 or 1", index)
	if b.children == nil {
		return nil
	}
	return &b.children[index]
}

// PosInParent returns this node's index among its parent's children.  The
// second result is false for the root.
func (b *Branch[L]) PosInParent() (int, bool) {
	if b.pos < 0 {
		return 0, false
	}
	return int(b.pos), true
}

// Tree is a Huffman tree over letters of type L, together with the code
// table derived from its shape.
//
// A Tree is not modified after construction except by Grow.  It is safe to
// share between goroutines as long as Grow is not called concurrently.
//
type Tree[L comparable] struct {
	root    *Branch[L]
	codes   map[L]Bits
	minSize int
	maxSize int
}

// NewTree grows a new Tree from the given weights.
func NewTree[L comparable](w Weights[L]) (*Tree[L], error) {
	t := &Tree[L]{}
	if err := t.Grow(w); err != nil {
		return nil, err
	}
	return t, nil
}

// Grow replaces the contents of this Tree with a Huffman tree built from the
// given weights.  On error, the Tree is left unchanged.
func (t *Tree[L]) Grow(w Weights[L]) error {
	f, err := newForest(w)
	if err != nil {
		return err
	}

	root := reduce(f)

	codes, minSize, maxSize, err := assignCodes(root)
	assert.Assertf(err == nil, "forest held a letter twice: %v", err)

	*t = Tree[L]{
		root:    root,
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}

	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("grew %v from weight %d", t, root.leaf.weight)
	}
	return nil
}

// reduce merges the two lightest subtrees of f until only the root remains.
func reduce[L comparable](f *forest[L]) *Branch[L] {
	for f.Len() > 1 {
		a := f.popMin()
		b := f.popMin()
		f.push(newInternal(a, b))
	}
	return f.popMin()
}

// Root returns the root node, or nil for a zero Tree.
func (t *Tree[L]) Root() *Branch[L] {
	return t.root
}

// Codes returns a copy of the code table, mapping each letter to its code.
func (t *Tree[L]) Codes() map[L]Bits {
	if t.codes == nil {
		return nil
	}
	out := make(map[L]Bits, len(t.codes))
	for letter, code := range t.codes {
		out[letter] = code
	}
	return out
}

// Code returns the code of the given letter.
func (t *Tree[L]) Code(letter L) (Bits, bool) {
	code, found := t.codes[letter]
	return code, found
}

// Len returns the number of letters in the tree.
func (t *Tree[L]) Len() int {
	return len(t.codes)
}

// MinSize is the bit length of the shortest code.
func (t *Tree[L]) MinSize() int {
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t *Tree[L]) MaxSize() int {
	return t.maxSize
}

// Weight returns the weight of the root, which is the sum of the weights of
// all letters.
func (t *Tree[L]) Weight() uint64 {
	if t.root == nil {
		return 0
	}
	return t.root.leaf.weight
}

// String returns a short description of this Tree.
func (t *Tree[L]) String() string {
	if t.root == nil {
		return "(empty Huffman tree)"
	}
	return fmt.Sprintf("(Huffman tree with %d letters, with code lengths of %d .. %d bits)", len(t.codes), t.minSize, t.maxSize)
}

var _ fmt.Stringer = (*Tree[byte])(nil)

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.  Letters are listed in code order.
func (t *Tree[L]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(t.codes))
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.Weight())
	list := make(byCode[L], 0, len(t.codes))
	for letter, code := range t.codes {
		list = append(list, letterAndCode[L]{letter, code})
	}
	list.Sort()
	for _, item := range list {
		fmt.Fprintf(&buf, "\tCode(%v) = %s\n", item.letter, item.code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type letterAndCode + type byCode {{{

type letterAndCode[L comparable] struct {
	letter L
	code   Bits
}

type byCode[L comparable] []letterAndCode[L]

func (list byCode[L]) Sort() {
	sort.Sort(list)
}

func (list byCode[L]) Len() int {
	return len(list)
}

func (list byCode[L]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode[L]) Less(i, j int) bool {
	a, b := list[i].code, list[j].code
	if a.Len() != b.Len() {
		return a.Len() < b.Len()
	}
	for k := 0; k < a.Len(); k++ {
		if ab, bb := a.Bit(k), b.Bit(k); ab != bb {
			return bb
		}
	}
	return false
}

var _ sort.Interface = byCode[byte](nil)

// }}}
