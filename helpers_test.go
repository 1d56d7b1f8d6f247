package bitvec

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// recoverError runs f and returns the error it panicked with.
func recoverError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
	}()
	f()
	return nil
}

// pattern parses a string of '0' and '1' into bools.
func pattern(s string) []bool {
	out := make([]bool, len(s))
	for i, c := range s {
		out[i] = c == '1'
	}
	return out
}

type valuer interface {
	Capacity() int
	Get(i int) (bool, bool)
}

func values(v valuer) []bool {
	out := make([]bool, v.Capacity())
	for i := range out {
		out[i], _ = v.Get(i)
	}
	return out
}

// scenarioVector returns the 8-bit, 32-bit-capacity vector used throughout
// the tests, with bits {1,3,5,7,11,13,17,19,23,29} set.
func scenarioVector() *Vector[uint8] {
	v := WithCapacity[uint8](32, false)
	for _, i := range []int{1, 3, 5, 7, 11, 13, 17, 19, 23, 29} {
		v.Set(i, true)
	}
	return v
}

func collect(seq iter.Seq[bool]) []bool {
	return slices.Collect(seq)
}
