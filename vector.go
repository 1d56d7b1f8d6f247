package bitvec

import "github.com/hupe1980/bitvec/word"

// Vector is a fixed-capacity bit array backed by a slice of words it owns.
//
// A Vector is the only way to obtain the first pair of views. While views
// returned by SplitAtMut or ViewMut are in use, the vector itself must not
// be read or written; the views own the words until they are dropped.
type Vector[W word.Word] struct {
	span[W]
	logger *Logger
}

// WithCapacity creates a vector of capacity bits, all set to fill.
func WithCapacity[W word.Word](capacity int, fill bool) *Vector[W] {
	return New[W](capacity, WithFill(fill))
}

// New creates a vector of capacity bits.
//
// It allocates capacity/Size + 1 words, one more than strictly required
// whenever capacity is a multiple of the word size. A negative capacity
// panics with an *IndexError.
func New[W word.Word](capacity int, optFns ...Option) *Vector[W] {
	if capacity < 0 {
		panic(&IndexError{Index: capacity})
	}

	opts := options{logger: NoopLogger()}
	for _, fn := range optFns {
		fn(&opts)
	}

	size := word.Size[W]()
	words := make([]W, capacity/size+1)
	if opts.fill {
		fill := word.Fill[W](true)
		for i := range words {
			words[i] = fill
		}
	}

	opts.logger.LogAlloc(capacity, len(words), size, opts.fill)

	return &Vector[W]{
		span:   span[W]{words: words, capacity: capacity},
		logger: opts.logger,
	}
}

// Set sets the bit at index i to v. It panics with an *IndexError if i is
// outside [0, Capacity()).
func (v *Vector[W]) Set(i int, value bool) {
	v.set(i, value)
}

// SplitAt returns two read-only views covering [0, k) and [k, Capacity()).
//
// It panics with a *SplitError if k is not a multiple of the word size and
// with an *IndexError if k is greater than Capacity().
func (v *Vector[W]) SplitAt(k int) (Slice[W], Slice[W]) {
	left, right := v.split(k)
	v.logger.LogSplit("shared", k, left.capacity, right.capacity)
	return Slice[W]{left}, Slice[W]{right}
}

// SplitAtMut returns two mutable views covering [0, k) and [k, Capacity()).
// The two views share no word and may be written by different goroutines.
//
// It panics like SplitAt.
func (v *Vector[W]) SplitAtMut(k int) (*SliceMut[W], *SliceMut[W]) {
	left, right := v.split(k)
	v.logger.LogSplit("exclusive", k, left.capacity, right.capacity)
	return &SliceMut[W]{left}, &SliceMut[W]{right}
}

// View returns a read-only view of the whole vector.
func (v *Vector[W]) View() Slice[W] {
	return Slice[W]{v.span}
}

// ViewMut returns a mutable view of the whole vector.
func (v *Vector[W]) ViewMut() *SliceMut[W] {
	return &SliceMut[W]{v.span}
}
