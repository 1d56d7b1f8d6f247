// Package bitvec provides a word-packed bit vector that can be split into
// disjoint read-only and mutable views.
//
// # Views
//
// A Vector owns its words. SplitAt and SplitAtMut divide it into two views;
// views divide further the same way:
//
//	v := bitvec.WithCapacity[uint64](1<<20, false)
//	left, right := v.SplitAtMut(1 << 19)
//	a, b := left.SplitAtMut(1 << 18) // left is consumed
//
// Splits are only allowed at multiples of the word size. A split anywhere
// else panics with a *SplitError instead of producing two views that share
// a word.
//
// # Concurrency
//
// The package rests on a single rule: views over disjoint, word-aligned
// ranges of the same storage may be used concurrently without
// synchronization. Every split is word-aligned, so the two views returned by
// any split never address the same word, and in the Go memory model each
// word is a separate variable. Consequently:
//
//   - a Slice may be read by any number of goroutines;
//   - a SliceMut may be handed to exactly one goroutine;
//   - the children of SliceMut.SplitAtMut, Partition and Chunks may be
//     written by different goroutines at the same time.
//
// The library performs no locking and starts no goroutines. It is up to the
// caller to stop using a parent once it has been split, and to not touch a
// Vector while mutable views of it are live. The consuming split methods on
// SliceMut enforce the first rule by emptying the receiver.
//
// # Failures
//
// Programmer errors panic with an error value: *IndexError for an index
// outside the capacity, *SplitError for a misaligned split. Get never
// panics; it reports out-of-range reads with ok == false.
package bitvec
