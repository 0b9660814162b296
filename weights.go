package huffman

// Weights supplies the weight (number of occurrences) of every letter in an
// alphabet.  Range calls fn once per letter, in an order that becomes the
// tie-break order when two subtrees have equal weight, and stops early if fn
// returns false.  A letter visited twice makes NewTree fail with
// ErrInvalidWeight.
type Weights[L comparable] interface {
	Len() int
	Range(fn func(letter L, weight uint64) bool)
}

// WeightTable is a Weights that remembers the order in which letters were
// first added.  Trees grown from a WeightTable are reproducible.
type WeightTable[L comparable] struct {
	letters []L
	weights map[L]uint64
}

// NewWeightTable returns an empty WeightTable.
func NewWeightTable[L comparable]() *WeightTable[L] {
	return &WeightTable[L]{weights: make(map[L]uint64)}
}

// CountLetters returns a WeightTable holding the number of occurrences of
// each distinct letter, in order of first occurrence.
func CountLetters[L comparable](letters []L) *WeightTable[L] {
	t := NewWeightTable[L]()
	for _, letter := range letters {
		t.Add(letter, 1)
	}
	return t
}

// Add increases the weight of letter by weight, adding letter to the table
// if it is not already present.  Adding a weight of 0 still records the
// letter, which NewTree will then reject.
func (t *WeightTable[L]) Add(letter L, weight uint64) {
	if t.weights == nil {
		t.weights = make(map[L]uint64)
	}
	old, found := t.weights[letter]
	if !found {
		t.letters = append(t.letters, letter)
	}
	t.weights[letter] = addWeights(old, weight)
}

// Weight returns the weight of letter, or 0 if it is not present.
func (t *WeightTable[L]) Weight(letter L) uint64 {
	if t == nil {
		return 0
	}
	return t.weights[letter]
}

// Len returns the number of distinct letters.
func (t *WeightTable[L]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.letters)
}

// Range visits the letters in order of first addition.
func (t *WeightTable[L]) Range(fn func(letter L, weight uint64) bool) {
	if t == nil {
		return
	}
	for _, letter := range t.letters {
		if !fn(letter, t.weights[letter]) {
			return
		}
	}
}

var _ Weights[rune] = (*WeightTable[rune])(nil)

// WeightMap is a Weights backed by a plain map.  Its Range order is Go's
// map iteration order, so ties between equal weights are broken differently
// from run to run.
type WeightMap[L comparable] map[L]uint64

// Len returns the number of distinct letters.
func (m WeightMap[L]) Len() int {
	return len(m)
}

// Range visits the letters in map iteration order.
func (m WeightMap[L]) Range(fn func(letter L, weight uint64) bool) {
	for letter, weight := range m {
		if !fn(letter, weight) {
			return
		}
	}
}

var _ Weights[rune] = WeightMap[rune](nil)

// ByteWeights is a dense weight table for the byte alphabet.  A byte with a
// weight of 0 is not part of the alphabet.
type ByteWeights [256]uint64

// CountBytes returns the number of occurrences of each byte value in data.
func CountBytes(data []byte) *ByteWeights {
	var w ByteWeights
	for _, ch := range data {
		w[ch]++
	}
	return &w
}

// Len returns the number of byte values with a non-zero weight.
func (w *ByteWeights) Len() int {
	if w == nil {
		return 0
	}
	var n int
	for _, weight := range w {
		if weight != 0 {
			n++
		}
	}
	return n
}

// Range visits the byte values with a non-zero weight in ascending order.
func (w *ByteWeights) Range(fn func(letter byte, weight uint64) bool) {
	if w == nil {
		return
	}
	for i, weight := range w {
		if weight == 0 {
			continue
		}
		if !fn(byte(i), weight) {
			return
		}
	}
}

var _ Weights[byte] = (*ByteWeights)(nil)
