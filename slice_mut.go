package bitvec

import "github.com/hupe1980/bitvec/word"

// SliceMut is a mutable view over a contiguous run of words.
//
// At most one SliceMut may be in use for any given word. SliceMut values
// obtained from SplitAtMut, Partition or Chunks satisfy this by
// construction: their split points are word-aligned, so they cover
// disjoint words and each can be handed to a different goroutine.
//
// The splitting methods consume the receiver: afterwards it is an empty
// view of capacity zero and only the returned views remain usable. Use
// Reborrow to keep a handle on the original range across a split.
type SliceMut[W word.Word] struct {
	span[W]
}

// NewSliceMut returns a mutable view of the first capacity bits of words.
// It panics with an *IndexError if words cannot hold capacity bits.
func NewSliceMut[W word.Word](words []W, capacity int) *SliceMut[W] {
	return &SliceMut[W]{newSpan(words, capacity)}
}

// Set sets the bit at index i to value. It panics with an *IndexError if i
// is outside [0, Capacity()).
func (s *SliceMut[W]) Set(i int, value bool) {
	s.set(i, value)
}

// SplitAt consumes s and returns two read-only views covering [0, k) and
// [k, Capacity()).
//
// It panics with a *SplitError if k is not a multiple of the word size and
// with an *IndexError if k is greater than Capacity(). On panic s is left
// untouched.
func (s *SliceMut[W]) SplitAt(k int) (Slice[W], Slice[W]) {
	left, right := s.split(k)
	s.consume()
	return Slice[W]{left}, Slice[W]{right}
}

// SplitAtMut consumes s and returns two mutable views covering [0, k) and
// [k, Capacity()). It panics like SplitAt.
func (s *SliceMut[W]) SplitAtMut(k int) (*SliceMut[W], *SliceMut[W]) {
	left, right := s.split(k)
	s.consume()
	return &SliceMut[W]{left}, &SliceMut[W]{right}
}

// Reborrow returns a new mutable view over the same words and capacity.
// s stays usable; the caller must not write through s while the reborrowed
// view, or any view split from it, is in use.
func (s *SliceMut[W]) Reborrow() *SliceMut[W] {
	return &SliceMut[W]{s.span}
}

// AsSlice returns a temporary read-only view over the same words.
func (s *SliceMut[W]) AsSlice() Slice[W] {
	return Slice[W]{s.span}
}

// Partition consumes s and splits it at the given ascending bit positions,
// relative to the start of s. It returns len(points)+1 views.
func (s *SliceMut[W]) Partition(points ...int) []*SliceMut[W] {
	spans := s.partition(points)
	s.consume()
	return wrapMut(spans)
}

// Chunks consumes s and splits it into at most n views of roughly equal
// capacity. Inner boundaries fall on cache-line boundaries of the backing
// array, using the line size reported by golang.org/x/sys/cpu for the target
// architecture, so writers on neighbouring chunks do not false-share. The
// first and last chunk may share a line with memory outside s. At least one
// view is returned, even for an empty s.
func (s *SliceMut[W]) Chunks(n int) []*SliceMut[W] {
	spans := s.chunks(n)
	s.consume()
	return wrapMut(spans)
}

func (s *SliceMut[W]) consume() {
	s.span = span[W]{}
}

func wrapMut[W word.Word](spans []span[W]) []*SliceMut[W] {
	out := make([]*SliceMut[W], len(spans))
	for i, sp := range spans {
		out[i] = &SliceMut[W]{sp}
	}
	return out
}
