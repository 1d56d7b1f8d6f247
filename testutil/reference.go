package testutil

import (
	"github.com/bits-and-blooms/bitset"
)

// Reference is a plain bit array used as the expected model in tests.
// It wraps bits-and-blooms/bitset and is not safe for concurrent writes.
type Reference struct {
	bs *bitset.BitSet
	n  int
}

// NewReference creates a model of n bits, all set to fill.
func NewReference(n int, fill bool) *Reference {
	bs := bitset.New(uint(n))
	if fill {
		bs.FlipRange(0, uint(n))
	}
	return &Reference{bs: bs, n: n}
}

// Len returns the number of bits.
func (r *Reference) Len() int {
	return r.n
}

// Set sets bit i to v.
func (r *Reference) Set(i int, v bool) {
	r.bs.SetTo(uint(i), v)
}

// Test returns bit i.
func (r *Reference) Test(i int) bool {
	return r.bs.Test(uint(i))
}

// Count returns the number of set bits.
func (r *Reference) Count() int {
	return int(r.bs.Count())
}

// Ones returns the indices of the set bits in ascending order.
func (r *Reference) Ones() []int {
	out := make([]int, 0, r.bs.Count())
	for i, ok := r.bs.NextSet(0); ok; i, ok = r.bs.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Values returns all bits in index order.
func (r *Reference) Values() []bool {
	out := make([]bool, r.n)
	for i := range out {
		out[i] = r.bs.Test(uint(i))
	}
	return out
}
