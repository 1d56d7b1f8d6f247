package bitvec

import (
	"math/bits"
	"strings"

	"github.com/hupe1980/bitvec/word"
)

// span is a window of capacity bits over words. It is embedded by Vector,
// Slice and SliceMut and carries the addressing logic for all three.
//
// len(words) is always at least the number of words needed to hold
// capacity bits.
type span[W word.Word] struct {
	words    []W
	capacity int
}

func newSpan[W word.Word](words []W, capacity int) span[W] {
	if limit := len(words) * word.Size[W](); capacity < 0 || capacity > limit {
		panic(&IndexError{Index: capacity, Capacity: limit})
	}
	return span[W]{words: words, capacity: capacity}
}

// Capacity returns the number of addressable bits.
func (s span[W]) Capacity() int {
	return s.capacity
}

// Get returns the bit at index i. ok is false if i is outside
// [0, Capacity()); Get never panics.
func (s span[W]) Get(i int) (value, ok bool) {
	if !s.inBounds(i) {
		return false, false
	}
	return s.get(i), true
}

// At returns the bit at index i and panics with an *IndexError if i is
// outside [0, Capacity()).
func (s span[W]) At(i int) bool {
	s.mustBeInBounds(i)
	return s.get(i)
}

// Count returns the number of set bits.
func (s span[W]) Count() int {
	size := word.Size[W]()
	full, rem := s.capacity/size, s.capacity%size

	n := 0
	for _, w := range s.words[:full] {
		n += bits.OnesCount64(uint64(w))
	}
	if rem > 0 {
		n += bits.OnesCount64(uint64(s.words[full]) & (1<<rem - 1))
	}
	return n
}

// String renders the bits in index order as '0' and '1' characters.
func (s span[W]) String() string {
	var sb strings.Builder
	sb.Grow(s.capacity)
	for v := range s.Values() {
		if v {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (s span[W]) inBounds(i int) bool {
	return uint(i) < uint(s.capacity)
}

func (s span[W]) mustBeInBounds(i int) {
	if !s.inBounds(i) {
		panic(&IndexError{Index: i, Capacity: s.capacity})
	}
}

func (s span[W]) get(i int) bool {
	idx, off := word.IndexAndOffset[W](i)
	return word.Get(s.words[idx], off)
}

func (s span[W]) set(i int, v bool) {
	s.mustBeInBounds(i)
	idx, off := word.IndexAndOffset[W](i)
	word.Set(&s.words[idx], off, v)
}

// split partitions s at bit k. k must be a multiple of the word size and
// lie in [0, capacity]. The left words are capped so that the left span
// can never be resliced into the right one.
func (s span[W]) split(k int) (span[W], span[W]) {
	size := word.Size[W]()
	if k%size != 0 {
		panic(&SplitError{Index: k, WordSize: size})
	}
	if uint(k) > uint(s.capacity) {
		panic(&IndexError{Index: k, Capacity: s.capacity})
	}

	n := k / size
	left := span[W]{words: s.words[:n:n], capacity: k}
	right := span[W]{words: s.words[n:], capacity: s.capacity - k}
	return left, right
}

// partition splits s at ascending absolute bit positions and returns
// len(points)+1 spans.
func (s span[W]) partition(points []int) []span[W] {
	out := make([]span[W], 0, len(points)+1)
	rest, base := s, 0
	for _, p := range points {
		left, right := rest.split(p - base)
		out = append(out, left)
		rest, base = right, p
	}
	return append(out, rest)
}

// chunks splits s into at most n spans of roughly equal capacity. Inner
// boundaries are placed on cache-line boundaries of the backing array, found
// from the address of the first word, so neighbouring spans never share a
// line even when s itself starts mid-line.
func (s span[W]) chunks(n int) []span[W] {
	n = max(n, 1)
	size := word.Size[W]()
	line := CacheLineBits[W]()
	head := (lineHead(s.words) + size - 1) / size * size

	per := (s.capacity + n - 1) / n
	per = max((per+line-1)/line*line, line)

	var points []int
	for target := per; ; target += per {
		// First line boundary at or after target.
		p := head
		if target > head {
			p += (target - head + line - 1) / line * line
		}
		if p >= s.capacity {
			break
		}
		if p > 0 && (len(points) == 0 || p > points[len(points)-1]) {
			points = append(points, p)
		}
	}
	return s.partition(points)
}
