package mask

import "math/bits"

const wordBits = 64

// Mask is a compact, ordered set of non-negative integers, stored as a
// sequence of 64-bit words. The zero value is the empty mask.
type Mask struct {
	words []uint64
	size  int // cached popcount of words
}

// Empty returns an empty Mask. Equivalent to the zero value; provided
// for readability at call sites.
func Empty() Mask { return Mask{} }

// From builds a Mask containing exactly the given non-negative
// positions (duplicates collapse, as with any set).
func From(positions ...int) Mask {
	var m Mask
	for _, p := range positions {
		m = m.Add(p)
	}
	return m
}

// Len returns the number of elements in m. O(1).
func (m Mask) Len() int { return m.size }

// Contains reports whether n is a member of m. O(1).
func (m Mask) Contains(n int) bool {
	if n < 0 {
		return false
	}
	w := n / wordBits
	if w >= len(m.words) {
		return false
	}
	return m.words[w]&(uint64(1)<<uint(n%wordBits)) != 0
}

// wordIndexFor returns the word index required to address bit n.
func wordIndexFor(n int) int { return n / wordBits }

// nextPow2 returns the smallest power of two >= n (n >= 1).
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Add returns a new Mask with n inserted. Growing the backing array
// doubles to the next power of two of the required word count.
func (m Mask) Add(n int) Mask {
	if n < 0 {
		panic("mask: Add called with negative position")
	}
	if m.Contains(n) {
		return m
	}
	w := wordIndexFor(n)
	words := m.words
	if w >= len(words) {
		grown := make([]uint64, nextPow2(w+1))
		copy(grown, words)
		words = grown
	} else {
		words = append([]uint64(nil), words...)
	}
	words[w] |= uint64(1) << uint(n%wordBits)
	return Mask{words: words, size: m.size + 1}
}

// Remove returns a new Mask with n absent; a no-op if n was not a
// member.
func (m Mask) Remove(n int) Mask {
	if !m.Contains(n) {
		return m
	}
	words := append([]uint64(nil), m.words...)
	w := wordIndexFor(n)
	words[w] &^= uint64(1) << uint(n%wordBits)
	return trim(Mask{words: words, size: m.size - 1})
}

// trim drops trailing all-zero words so masks with the same elements
// compare equal regardless of construction history.
func trim(m Mask) Mask {
	n := len(m.words)
	for n > 0 && m.words[n-1] == 0 {
		n--
	}
	m.words = m.words[:n]
	return m
}

// Foreach iterates the set bits of m in strictly ascending order.
func (m Mask) Foreach(f func(n int)) {
	for wi, w := range m.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			f(wi*wordBits + tz)
			w &= w - 1 // clear lowest set bit
		}
	}
}

// ToSlice materializes m's members in ascending order.
func (m Mask) ToSlice() []int {
	out := make([]int, 0, m.size)
	m.Foreach(func(n int) { out = append(out, n) })
	return out
}

// Min returns the smallest member of m, or ok=false if m is empty.
func (m Mask) Min() (n int, ok bool) {
	for wi, w := range m.words {
		if w != 0 {
			return wi*wordBits + bits.TrailingZeros64(w), true
		}
	}
	return 0, false
}

// Max returns the largest member of m, or ok=false if m is empty.
func (m Mask) Max() (n int, ok bool) {
	for wi := len(m.words) - 1; wi >= 0; wi-- {
		if w := m.words[wi]; w != 0 {
			return wi*wordBits + (wordBits - 1 - bits.LeadingZeros64(w)), true
		}
	}
	return 0, false
}

// Equal reports whether m and other contain the same positions. Backing
// array lengths may differ between masks with equal content (Add can
// leave trailing zero words that trim would drop), so missing words
// compare as zero.
func (m Mask) Equal(other Mask) bool {
	if m.size != other.size {
		return false
	}
	n := max(len(m.words), len(other.words))
	for i := 0; i < n; i++ {
		if wordAt(m.words, i) != wordAt(other.words, i) {
			return false
		}
	}
	return true
}

func wordAt(words []uint64, i int) uint64 {
	if i < 0 || i >= len(words) {
		return 0
	}
	return words[i]
}
