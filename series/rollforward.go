package series

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
)

// Metric measures the "distance" a caller is willing to carry a value
// forward across, from the key it was observed at to the key being
// filled. Passed explicitly rather than assumed from key type —
// callers compare timestamps in seconds, integer keys by difference,
// or anything else a domain calls for.
type Metric[K any] func(from, to K) float64

// Unbounded is the trivial Metric that always reports zero distance,
// so RollForward with Unbounded and any non-negative tolerance carries
// the last valid cell forward indefinitely.
func Unbounded[K any](_, _ K) float64 { return 0 }

// RollForward fills NA slots of s by redirecting them to the nearest
// preceding non-NA cell, provided metric(thatKey, thisKey) <= tolerance.
// "Nearest preceding non-NA cell" advances on both Value and NM rows —
// an NM is a real observation (just an undefined one), so a roll can
// surface NM, not only a cached value. NA slots outside tolerance are
// left as NA. s.idx must be ordered (roll-forward is only meaningful
// over a sequence).
func RollForward[K comparable, V any](s *Series[K, V], metric Metric[K], tolerance float64) *Series[K, V] {
	if !s.idx.Ordered() {
		panic("series: RollForward requires an ordered Index")
	}
	n := s.Len()
	out := column.NewBuilder[V]()
	out.SizeHint(n)

	var lastKey K
	var lastCell cell.Cell[V]
	haveLast := false
	for i := 0; i < n; i++ {
		k := s.idx.KeyAt(i)
		c := s.col.Get(s.idx.IndexAt(i))
		switch {
		case c.IsValue() || c.IsNM():
			out.Add(c)
			lastKey, lastCell, haveLast = k, c, true
		default: // NA
			if haveLast && metric(lastKey, k) <= tolerance {
				out.Add(lastCell)
			} else {
				out.AddNA()
			}
		}
	}
	return New(s.idx.ResetIndices(), out.Result())
}
