// SPDX-License-Identifier: MIT
//
// File: ops.go
// Role: set algebra over Mask — Union, Intersect, Difference.
//
// Edge cases:
//   - Intersect clips to the shorter backing array (bits beyond it are
//     implicitly zero on both sides, so truncating is exact).
//   - Union extends to the longer backing array.
//   - Difference iterates only the left operand's words.
package mask

import "math/bits"

// Union returns a new Mask containing every position in m or other.
func (m Mask) Union(other Mask) Mask {
	n := len(m.words)
	if len(other.words) > n {
		n = len(other.words)
	}
	words := make([]uint64, n)
	size := 0
	for i := 0; i < n; i++ {
		words[i] = wordAt(m.words, i) | wordAt(other.words, i)
		size += bits.OnesCount64(words[i])
	}
	return trim(Mask{words: words, size: size})
}

// Intersect returns a new Mask containing positions present in both m
// and other.
func (m Mask) Intersect(other Mask) Mask {
	n := len(m.words)
	if len(other.words) < n {
		n = len(other.words)
	}
	words := make([]uint64, n)
	size := 0
	for i := 0; i < n; i++ {
		words[i] = m.words[i] & other.words[i]
		size += bits.OnesCount64(words[i])
	}
	return trim(Mask{words: words, size: size})
}

// Difference returns a new Mask containing positions in m that are not
// in other (m -- other).
func (m Mask) Difference(other Mask) Mask {
	words := make([]uint64, len(m.words))
	size := 0
	for i := range m.words {
		words[i] = m.words[i] &^ wordAt(other.words, i)
		size += bits.OnesCount64(words[i])
	}
	return trim(Mask{words: words, size: size})
}

// Filter returns a new Mask containing only the positions of m for
// which keep returns true.
func (m Mask) Filter(keep func(n int) bool) Mask {
	var out Mask
	m.Foreach(func(n int) {
		if keep(n) {
			out = out.Add(n)
		}
	})
	return out
}
