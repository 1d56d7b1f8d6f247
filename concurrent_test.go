package bitvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/testutil"
	"github.com/hupe1980/bitvec/word"
)

// quarters holds the expected content of the four byte-sized views used by
// the parallel tests.
var quarters = [4][8]bool{
	{true, true, false, false, true, false, true, false},
	{false, true, false, true, true, true, false, true},
	{false, false, true, false, true, false, true, true},
	{true, true, false, true, true, false, false, true},
}

func TestParallelImmutable(t *testing.T) {
	v := bitvec.WithCapacity[uint8](32, false)
	for q, bits := range quarters {
		for i, b := range bits {
			v.Set(q*8+i, b)
		}
	}

	left, right := v.SplitAt(16)
	first, second := left.SplitAt(8)
	third, fourth := right.SplitAt(8)

	var g errgroup.Group
	for q, view := range []bitvec.Slice[uint8]{first, second, third, fourth} {
		g.Go(func() error {
			for i, want := range quarters[q] {
				assert.Equal(t, want, view.At(i), "quarter %d bit %d", q, i)
			}
			return nil
		})
	}

	// All goroutines also read the shared parent concurrently.
	for range 4 {
		g.Go(func() error {
			assert.Equal(t, v.Count(), left.Count()+right.Count())
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestParallelMutable(t *testing.T) {
	v := bitvec.WithCapacity[uint8](32, false)

	{
		left, right := v.SplitAtMut(16)
		first, second := left.SplitAtMut(8)
		third, fourth := right.SplitAtMut(8)

		var g errgroup.Group
		for q, view := range []*bitvec.SliceMut[uint8]{first, second, third, fourth} {
			g.Go(func() error {
				for i, b := range quarters[q] {
					view.Set(i, b)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())
	}

	for q, bits := range quarters {
		for i, want := range bits {
			assert.Equal(t, want, v.At(q*8+i), "bit %d", q*8+i)
		}
	}
}

// writeDisjoint splits v into the given mutable views, lets one goroutine
// per view write a random pattern, and checks that the union of all writes
// is exactly what v holds afterwards.
func writeDisjoint[W word.Word](t *testing.T, v *bitvec.Vector[W], views []*bitvec.SliceMut[W], seed int64) {
	t.Helper()

	rng := testutil.NewRNG(seed)
	recs := make([]*testutil.Recorder, len(views))

	var g errgroup.Group
	offset := 0
	for n, view := range views {
		base := offset
		offset += view.Capacity()

		rec := testutil.NewRecorder()
		recs[n] = rec
		pattern := rng.Split().Bools(view.Capacity(), 0.4)

		g.Go(func() error {
			for i, b := range pattern {
				view.Set(i, b)
				if b {
					rec.Record(base + i)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, v.Capacity(), offset)

	want := testutil.Union(recs...)
	got := testutil.RecorderOf(v.Ones())

	assert.True(t, want.Equal(got), "lost or corrupted writes")
	assert.Equal(t, want.Cardinality(), v.Count())
	for i := range v.Capacity() {
		require.Equal(t, want.Contains(i), v.At(i), "bit %d", i)
	}

	// Replaying the same streams on one goroutine gives the same bits.
	rng.Reset()
	ref := testutil.NewReference(v.Capacity(), false)
	offset = 0
	for _, view := range views {
		for i, b := range rng.Split().Bools(view.Capacity(), 0.4) {
			ref.Set(offset+i, b)
		}
		offset += view.Capacity()
	}
	require.Equal(t, ref.Len(), offset)
	assert.Equal(t, ref.Ones(), got.Indices())
}

func TestParallelChunks(t *testing.T) {
	const capacity = 1<<16 + 37

	t.Run("uint8", func(t *testing.T) {
		v := bitvec.WithCapacity[uint8](capacity, true)
		writeDisjoint(t, v, v.ViewMut().Chunks(8), 1)
	})
	t.Run("uint16", func(t *testing.T) {
		v := bitvec.WithCapacity[uint16](capacity, false)
		writeDisjoint(t, v, v.ViewMut().Chunks(5), 2)
	})
	t.Run("uint64", func(t *testing.T) {
		v := bitvec.WithCapacity[uint64](capacity, true)
		writeDisjoint(t, v, v.ViewMut().Chunks(16), 3)
	})
}

func TestParallelEveryWord(t *testing.T) {
	// One goroutine per byte: neighbours write adjacent bytes of the same
	// backing array.
	const capacity = 8 * 64

	v := bitvec.WithCapacity[uint8](capacity, false)

	var points []int
	for p := 8; p < capacity; p += 8 {
		points = append(points, p)
	}
	views := v.ViewMut().Partition(points...)
	require.Len(t, views, 64)

	writeDisjoint(t, v, views, 4)
}

func TestParallelRecursiveSplit(t *testing.T) {
	v := bitvec.WithCapacity[uint32](1<<12, false)

	var split func(s *bitvec.SliceMut[uint32], depth int, g *errgroup.Group)
	split = func(s *bitvec.SliceMut[uint32], depth int, g *errgroup.Group) {
		if depth == 0 || s.Capacity() <= 32 {
			g.Go(func() error {
				for i := 0; i < s.Capacity(); i += 2 {
					s.Set(i, true)
				}
				return nil
			})
			return
		}
		half := s.Capacity() / 2 / 32 * 32
		left, right := s.SplitAtMut(half)
		split(left, depth-1, g)
		split(right, depth-1, g)
	}

	var g errgroup.Group
	split(v.ViewMut(), 6, &g)
	require.NoError(t, g.Wait())

	assert.Equal(t, 1<<11, v.Count())
	for _, i := range []int{0, 2, 4094} {
		assert.True(t, v.At(i))
	}
	assert.False(t, v.At(4095))
}
