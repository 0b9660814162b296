package huffman

import (
	"fmt"
)

// assignCodes walks a finished tree, stores each node's root-to-node path in
// its Leaf, and returns the code table of the terminal nodes.
//
// A root with no children gets the code "0", since no merge ever gave it a
// position.  Two terminal nodes with the same letter can only come from a
// decoded topology and are reported as ErrCorruptHeader.
//
func assignCodes[L comparable](root *Branch[L]) (codes map[L]Bits, minSize int, maxSize int, err error) {
	codes = make(map[L]Bits)

	if root.IsTerminal() {
		root.leaf.code = Bits{}.Append(false)
		codes[root.leaf.letter] = root.leaf.code
		return codes, 1, 1, nil
	}

	var hasMinMax bool
	var walk func(b *Branch[L]) error
	walk = func(b *Branch[L]) error {
		if !b.IsTerminal() {
			for i := range b.children {
				child := &b.children[i]
				child.leaf.code = b.leaf.code.Append(child.pos == 1)
				if err := walk(child); err != nil {
					return err
				}
			}
			return nil
		}

		letter := b.leaf.letter
		if _, dup := codes[letter]; dup {
			return fmt.Errorf("%w: letter %v appears more than once", ErrCorruptHeader, letter)
		}
		codes[letter] = b.leaf.code

		size := b.leaf.code.Len()
		if !hasMinMax {
			hasMinMax = true
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
		return nil
	}

	root.leaf.code = Bits{}
	if err := walk(root); err != nil {
		return nil, 0, 0, err
	}
	return codes, minSize, maxSize, nil
}
