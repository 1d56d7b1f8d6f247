package bitvec

import (
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/hupe1980/bitvec/word"
)

// CacheLineBits returns the number of bits in one CPU cache line, rounded
// up to a multiple of the word size of W. The line size is the one
// golang.org/x/sys/cpu reports for the target architecture (64 bytes on
// amd64, 128 on arm64), not a value measured at run time.
func CacheLineBits[W word.Word]() int {
	size := word.Size[W]()
	line := cacheLineBytes() * 8
	if line < size {
		return size
	}
	return (line + size - 1) / size * size
}

func cacheLineBytes() int {
	return int(unsafe.Sizeof(cpu.CacheLinePad{}))
}

// lineHead returns the number of bits between the first word of words and
// the next cache-line boundary in memory. It is zero when words starts on a
// boundary or is empty.
func lineHead[W word.Word](words []W) int {
	if len(words) == 0 {
		return 0
	}
	lineBytes := uintptr(cacheLineBytes())
	rem := uintptr(unsafe.Pointer(unsafe.SliceData(words))) % lineBytes //nolint:gosec // unsafe is required for memory alignment
	if rem == 0 {
		return 0
	}
	return int(lineBytes-rem) * 8
}
