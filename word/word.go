package word

import "math/bits"

// Word is the capability set a storage word must provide: the bitwise
// operators, shifts and zero/one/max values that Go defines for every
// unsigned integer type.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Size returns the bit width of W.
func Size[W Word]() int {
	return bits.Len64(uint64(^W(0)))
}

// Zero returns the word with no bit set.
func Zero[W Word]() W { return 0 }

// One returns the word with only the lowest bit set.
func One[W Word]() W { return 1 }

// Max returns the word with every bit set.
func Max[W Word]() W { return ^W(0) }

// Fill returns Max if v is true, Zero otherwise.
func Fill[W Word](v bool) W {
	if v {
		return Max[W]()
	}
	return Zero[W]()
}

// Index returns the index of the word holding bit i.
func Index[W Word](i int) int {
	return i / Size[W]()
}

// Offset returns the position of bit i inside its word.
// The result is always smaller than Size[W]().
func Offset[W Word](i int) uint {
	return uint(i % Size[W]())
}

// IndexAndOffset combines Index and Offset.
func IndexAndOffset[W Word](i int) (int, uint) {
	size := Size[W]()
	return i / size, uint(i % size)
}

// Get reports whether bit off of w is set.
func Get[W Word](w W, off uint) bool {
	return w&(One[W]()<<off) != 0
}

// Set sets or clears bit off of *w.
func Set[W Word](w *W, off uint, v bool) {
	if v {
		*w |= One[W]() << off
	} else {
		*w &^= One[W]() << off
	}
}
