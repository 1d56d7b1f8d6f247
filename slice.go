package bitvec

import "github.com/hupe1980/bitvec/word"

// Slice is a read-only view over a contiguous run of words.
//
// A Slice does not own its words and must not be used after the storage it
// was derived from is written through another view. Any number of
// goroutines may read the same Slice concurrently.
type Slice[W word.Word] struct {
	span[W]
}

// NewSlice returns a read-only view of the first capacity bits of words.
// It panics with an *IndexError if words cannot hold capacity bits.
func NewSlice[W word.Word](words []W, capacity int) Slice[W] {
	return Slice[W]{newSpan(words, capacity)}
}

// SplitAt returns two read-only views covering [0, k) and [k, Capacity()).
//
// It panics with a *SplitError if k is not a multiple of the word size and
// with an *IndexError if k is greater than Capacity().
func (s Slice[W]) SplitAt(k int) (Slice[W], Slice[W]) {
	left, right := s.split(k)
	return Slice[W]{left}, Slice[W]{right}
}

// Partition splits s at the given ascending bit positions, which are
// relative to the start of s, and returns len(points)+1 views.
// Every point must satisfy the same rules as SplitAt.
func (s Slice[W]) Partition(points ...int) []Slice[W] {
	spans := s.partition(points)
	out := make([]Slice[W], len(spans))
	for i, sp := range spans {
		out[i] = Slice[W]{sp}
	}
	return out
}
