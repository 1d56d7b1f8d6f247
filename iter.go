package bitvec

import (
	"iter"
	"math/bits"

	"github.com/hupe1980/bitvec/word"
)

// All returns an iterator over index/value pairs in increasing index order.
// Every call returns a new iterator.
func (s span[W]) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < s.capacity; i++ {
			if !yield(i, s.get(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the bits in increasing index order.
func (s span[W]) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < s.capacity; i++ {
			if !yield(s.get(i)) {
				return
			}
		}
	}
}

// Ones returns an iterator over the indices of the set bits.
// Each word is read once, when the iterator reaches it.
func (s span[W]) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		size := word.Size[W]()
		n := (s.capacity + size - 1) / size
		for idx, w := range s.words[:n] {
			u := uint64(w)
			for u != 0 {
				i := idx*size + bits.TrailingZeros64(u)
				if i >= s.capacity || !yield(i) {
					return
				}

				// clear the rightmost set bit
				u &= u - 1
			}
		}
	}
}
