package index

import "sort"

// Order is an explicit three-way comparator for keys of type K:
// negative if a<b, zero if equal, positive if a>b. Passed explicitly
// to every operation that needs key order rather than resolved from
// an ambient instance.
type Order[K any] func(a, b K) int

// Index is the keyed mapping from logical position to (key, row).
// keys[i] is the key at position i; indices[i] is the row into the
// paired Column. Immutable once constructed; all transformations
// return a new Index.
type Index[K comparable] struct {
	keys    []K
	indices []int
	ordered bool
	order   Order[K]
	lookup  map[K]int // unordered fast path: first logical position per key
}

// FromUnordered builds an unordered Index. Get performs an O(1) map
// lookup built eagerly at construction.
func FromUnordered[K comparable](keys []K, indices []int) *Index[K] {
	mustEqualLenK(keys, indices)
	lookup := make(map[K]int, len(keys))
	for i, k := range keys {
		if _, exists := lookup[k]; !exists {
			lookup[k] = i
		}
	}
	return &Index[K]{keys: keys, indices: indices, lookup: lookup}
}

// Ordered builds an Index the caller asserts is already non-decreasing
// under order. Violating that precondition is a contract error —
// Cogroup and Get assume it silently rather than re-validating on
// every call.
func Ordered[K comparable](keys []K, indices []int, order Order[K]) *Index[K] {
	mustEqualLenK(keys, indices)
	return &Index[K]{keys: keys, indices: indices, ordered: true, order: order}
}

// mustEqualLenK validates the keys/indices length invariant.
func mustEqualLenK[K any](keys []K, indices []int) {
	if len(keys) != len(indices) {
		panic("index: keys and indices must have equal length")
	}
}

// Len reports the number of logical positions.
func (idx *Index[K]) Len() int { return len(idx.keys) }

// Ordered reports whether idx asserts non-decreasing key order.
func (idx *Index[K]) Ordered() bool { return idx.ordered }

// KeyAt returns the key at logical position i.
func (idx *Index[K]) KeyAt(i int) K { return idx.keys[i] }

// IndexAt returns the underlying column row at logical position i.
func (idx *Index[K]) IndexAt(i int) int { return idx.indices[i] }

// Keys returns the backing key slice (read-only; do not mutate).
func (idx *Index[K]) Keys() []K { return idx.keys }

// Indices returns the backing row slice (read-only; do not mutate).
func (idx *Index[K]) Indices() []int { return idx.indices }

// Get looks up the logical position of k. For an ordered Index this is
// an O(log n) binary search returning the leftmost match; for an
// unordered Index it is the O(1) lookup built at construction. Ties
// (repeated keys) resolve to the first occurrence either way.
func (idx *Index[K]) Get(k K) (pos int, ok bool) {
	if !idx.ordered {
		pos, ok = idx.lookup[k]
		return pos, ok
	}
	n := len(idx.keys)
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if idx.order(idx.keys[mid], k) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < n && idx.order(idx.keys[lo], k) == 0 {
		return lo, true
	}
	return 0, false
}

// Foreach iterates (key, row) pairs in logical position order.
func (idx *Index[K]) Foreach(f func(k K, row int)) {
	for i, k := range idx.keys {
		f(k, idx.indices[i])
	}
}

// Sorted returns a new Index, stably sorted by order, preserving
// insertion order among equal keys.
func (idx *Index[K]) Sorted(order Order[K]) *Index[K] {
	n := len(idx.keys)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return order(idx.keys[perm[a]], idx.keys[perm[b]]) < 0
	})
	keys := make([]K, n)
	indices := make([]int, n)
	for i, p := range perm {
		keys[i] = idx.keys[p]
		indices[i] = idx.indices[p]
	}
	return &Index[K]{keys: keys, indices: indices, ordered: true, order: order}
}

// Reindex returns a new Index containing only (and reordered to) the
// given logical positions: result.keys[i] = idx.keys[positions[i]],
// likewise for indices. The ordered flag and order function carry
// over; callers that reorder must re-sort or re-flag accordingly.
func (idx *Index[K]) Reindex(positions []int) *Index[K] {
	keys := make([]K, len(positions))
	indices := make([]int, len(positions))
	for i, p := range positions {
		keys[i] = idx.keys[p]
		indices[i] = idx.indices[p]
	}
	return &Index[K]{keys: keys, indices: indices, ordered: idx.ordered, order: idx.order}
}

// ResetIndices returns a new Index whose indices[i] = i, used after a
// Column has been compacted so the Index's rows line up with the
// compacted column's own rows one-for-one.
func (idx *Index[K]) ResetIndices() *Index[K] {
	indices := make([]int, len(idx.keys))
	for i := range indices {
		indices[i] = i
	}
	keys := append([]K(nil), idx.keys...)
	return &Index[K]{keys: keys, indices: indices, ordered: idx.ordered, order: idx.order}
}
