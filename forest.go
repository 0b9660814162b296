package huffman

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// forest is the working set of not-yet-merged subtrees.  It is a min-heap
// ordered by weight; equal weights are popped in insertion order.
type forest[L comparable] struct {
	list    []forestEntry[L]
	nextSeq uint64
}

type forestEntry[L comparable] struct {
	branch *Branch[L]
	seq    uint64
}

// newForest wraps every weighted letter into a terminal branch.
func newForest[L comparable](w Weights[L]) (*forest[L], error) {
	if w == nil || w.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}

	f := &forest[L]{list: make([]forestEntry[L], 0, w.Len())}
	seen := make(map[L]struct{}, w.Len())
	var err error
	w.Range(func(letter L, weight uint64) bool {
		if weight == 0 {
			err = fmt.Errorf("%w: letter %v has weight 0", ErrInvalidWeight, letter)
			return false
		}
		if _, found := seen[letter]; found {
			err = fmt.Errorf("%w: letter %v is weighted more than once", ErrInvalidWeight, letter)
			return false
		}
		seen[letter] = struct{}{}
		f.list = append(f.list, forestEntry[L]{newTerminal(letter, weight), f.nextSeq})
		f.nextSeq++
		return true
	})
	if err != nil {
		return nil, err
	}
	if len(f.list) == 0 {
		return nil, ErrEmptyAlphabet
	}

	heap.Init(f)
	return f, nil
}

func (f *forest[L]) push(b *Branch[L]) {
	heap.Push(f, forestEntry[L]{b, f.nextSeq})
	f.nextSeq++
}

func (f *forest[L]) popMin() *Branch[L] {
	assert.Assertf(len(f.list) != 0, "pop from empty forest")
	return heap.Pop(f).(forestEntry[L]).branch
}

// heap.Interface {{{

func (f *forest[L]) Len() int {
	return len(f.list)
}

func (f *forest[L]) Swap(i, j int) {
	f.list[i], f.list[j] = f.list[j], f.list[i]
}

func (f *forest[L]) Less(i, j int) bool {
	a, b := f.list[i], f.list[j]
	aw, bw := a.branch.leaf.weight, b.branch.leaf.weight
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (f *forest[L]) Push(x interface{}) {
	f.list = append(f.list, x.(forestEntry[L]))
}

func (f *forest[L]) Pop() interface{} {
	last := uint(len(f.list)) - 1
	x := f.list[last]
	f.list[last] = forestEntry[L]{}
	f.list = f.list[:last]
	return x
}

var _ heap.Interface = (*forest[byte])(nil)

// }}}
