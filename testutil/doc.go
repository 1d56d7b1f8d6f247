// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for bit patterns, a reference bit
// array to check results against, and a recorder for the bits written by
// concurrent workers.
//
// # Random Bit Patterns
//
//	rng := testutil.NewRNG(seed)
//	pattern := rng.Bools(1000, 0.5) // each bit true with probability 0.5
//
// # Reference Model
//
//	ref := testutil.NewReference(1000, false)
//	ref.Set(17, true)
//	ref.Test(17) // true
//
// # Write Recording
//
//	rec := testutil.NewRecorder() // one per worker
//	rec.Record(17)
//	all := testutil.Union(recs...)
package testutil
