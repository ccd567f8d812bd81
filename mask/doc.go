// Package mask implements Mask, a compact ordered set of non-negative
// row positions backed by 64-bit words (a bitset), used throughout
// tabulath to mark NA/NM presence within a Column.
//
// Representation:
//
//	words[i] holds bits for positions [64*i, 64*i+64).
//	size caches the total popcount so Len() is O(1).
//	Remove and the set operations trim trailing all-zero words; Add may
//	leave zero words past the highest member when it grows the backing
//	array. Equal compares word by word, treating missing words as zero,
//	so two masks holding the same set compare equal regardless of how
//	they were built.
//
// Complexity:
//
//	Contains: O(1).
//	Add/Remove: O(words); each returns a fresh copy of the backing
//	array, which Add grows to the next power-of-two word count when
//	it must grow.
//	Union/Intersect/Difference: O(words in the larger/smaller operand).
//	Foreach: O(popcount) via De Bruijn trailing-zero extraction per word.
//
// Concurrency: Mask is an immutable value once returned from any
// constructor or combinator; it may be shared freely across
// goroutines without locking. Add and Remove return a new Mask and
// never change the receiver.
package mask
