package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bool returns a pseudo-random boolean.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// Bools returns n booleans, each true with probability density.
// Locks only once per call (preferred over calling Bool in a loop).
func (r *RNG) Bools(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < density
	}
	return out
}

// Indices returns k pseudo-random indices in [0,n), possibly repeated.
func (r *RNG) Indices(n, k int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, k)
	for i := range out {
		out[i] = r.rand.Intn(n)
	}
	return out
}

// Split returns a new RNG seeded from r. Use it to give each worker
// goroutine its own deterministic stream.
func (r *RNG) Split() *RNG {
	r.mu.Lock()
	defer r.mu.Unlock()
	return NewRNG(r.rand.Int63())
}
