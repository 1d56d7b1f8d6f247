package testutil

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Recorder collects the indices of bits set by one worker.
// Use one Recorder per goroutine and merge them with Union.
type Recorder struct {
	rb *roaring.Bitmap
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{rb: roaring.New()}
}

// RecorderOf collects every index yielded by seq.
func RecorderOf(seq iter.Seq[int]) *Recorder {
	r := NewRecorder()
	for i := range seq {
		r.Record(i)
	}
	return r
}

// Record adds index i.
func (r *Recorder) Record(i int) {
	r.rb.Add(uint32(i))
}

// Contains reports whether index i was recorded.
func (r *Recorder) Contains(i int) bool {
	return r.rb.Contains(uint32(i))
}

// Cardinality returns the number of distinct recorded indices.
func (r *Recorder) Cardinality() int {
	return int(r.rb.GetCardinality())
}

// Indices returns the recorded indices in ascending order.
func (r *Recorder) Indices() []int {
	arr := r.rb.ToArray()
	out := make([]int, len(arr))
	for i, v := range arr {
		out[i] = int(v)
	}
	return out
}

// Equal reports whether r and other hold the same indices.
func (r *Recorder) Equal(other *Recorder) bool {
	return r.rb.Equals(other.rb)
}

// Union merges the recorders into a new one.
func Union(recs ...*Recorder) *Recorder {
	bms := make([]*roaring.Bitmap, len(recs))
	for i, r := range recs {
		bms[i] = r.rb
	}
	return &Recorder{rb: roaring.FastOr(bms...)}
}
