// Package word defines the storage word abstraction used by bitvec.
//
// A word is any fixed-width unsigned integer. The package derives the
// bit-addressing arithmetic from the word type alone:
//
//	i  = 19, W = uint8 (Size 8)
//	Index(i)  = 19 / 8 = 2
//	Offset(i) = 19 % 8 = 3
//
// All functions are pure and safe for concurrent use.
package word
