package joiner

import "github.com/katalvlaran/tabulath/index"

// MergeKind selects whether a Merger stops at the shorter side (Inner)
// or pads the shorter side with Skip (Outer).
type MergeKind uint8

const (
	// MergeInner stops at min(leftCount, rightCount) for a matched key.
	MergeInner MergeKind = iota
	// MergeOuter pads the shorter side with Skip for a matched key, and
	// keeps an unmatched side's rows padded with Skip on the other.
	MergeOuter
)

// Merger implements index.Cogrouper with positional alignment
// semantics: when both sides have rows for a key, row i on the left is
// paired with row i on the right (not Cartesian) for i in
// [0, max(leftCount,rightCount)); MergeOuter pads the shorter side
// with Skip, MergeInner truncates to the shorter side.
type Merger[K any] struct {
	Kind  MergeKind
	State *index.State[K]
}

// NewMerger returns a Merger accumulating into a freshly allocated
// State with storage preallocated for sizeHint emissions.
func NewMerger[K any](kind MergeKind, sizeHint int) *Merger[K] {
	return &Merger[K]{Kind: kind, State: index.NewState[K](sizeHint)}
}

// Cogroup implements index.Cogrouper.
func (m *Merger[K]) Cogroup(key K, lIdx []int, lStart, lEnd int, rIdx []int, rStart, rEnd int) {
	lCount := lEnd - lStart
	rCount := rEnd - rStart

	switch {
	case lCount > 0 && rCount > 0:
		n := lCount
		if rCount > n {
			n = rCount
		}
		if m.Kind == MergeInner {
			n = min(lCount, rCount)
		}
		for i := 0; i < n; i++ {
			lr, rr := index.Skip, index.Skip
			if i < lCount {
				lr = lIdx[lStart+i]
			}
			if i < rCount {
				rr = rIdx[rStart+i]
			}
			m.State.Append(key, lr, rr)
		}
	case lCount > 0 && rCount == 0:
		if m.Kind == MergeOuter {
			for i := lStart; i < lEnd; i++ {
				m.State.Append(key, lIdx[i], index.Skip)
			}
		}
	case lCount == 0 && rCount > 0:
		if m.Kind == MergeOuter {
			for i := rStart; i < rEnd; i++ {
				m.State.Append(key, index.Skip, rIdx[i])
			}
		}
	}
}
