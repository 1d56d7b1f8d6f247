package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is wrapped by every IndexError.
	ErrIndexOutOfRange = errors.New("index out of bounds")

	// ErrMisalignedSplit is wrapped by every SplitError.
	ErrMisalignedSplit = errors.New("index not on storage bound")
)

// IndexError is the panic value raised when a bit index lies outside the
// capacity of a vector or view.
//
// The sentinel can be matched with errors.Is(err, ErrIndexOutOfRange).
type IndexError struct {
	Index    int
	Capacity int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bitvec: %s: capacity = %d, index = %d", ErrIndexOutOfRange, e.Capacity, e.Index)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// SplitError is the panic value raised when a split point is not a multiple
// of the word size. Splitting there would let two views share a word.
//
// The sentinel can be matched with errors.Is(err, ErrMisalignedSplit).
type SplitError struct {
	Index    int
	WordSize int
}

func (e *SplitError) Error() string {
	return fmt.Sprintf("bitvec: %s: word size = %d, index = %d", ErrMisalignedSplit, e.WordSize, e.Index)
}

func (e *SplitError) Unwrap() error { return ErrMisalignedSplit }
