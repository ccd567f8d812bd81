package joiner

import "github.com/katalvlaran/tabulath/index"

// JoinKind selects which unmatched sides a Joiner keeps.
type JoinKind uint8

const (
	// Inner keeps only keys present on both sides.
	Inner JoinKind = iota
	// Left keeps every left row, padding unmatched rights with Skip.
	Left
	// Right keeps every right row, padding unmatched lefts with Skip.
	Right
	// Outer keeps every row from either side.
	Outer
)

func (k JoinKind) leftOuter() bool  { return k == Left || k == Outer }
func (k JoinKind) rightOuter() bool { return k == Right || k == Outer }

// Joiner implements index.Cogrouper with Cartesian join semantics: when
// both sides have rows for a key, every left row is paired with every
// right row (full Cartesian product); when only one side has rows,
// that side survives alone iff Kind allows it for that side, otherwise
// the key is dropped entirely.
type Joiner[K any] struct {
	Kind  JoinKind
	State *index.State[K]
}

// NewJoiner returns a Joiner accumulating into a freshly allocated
// State with storage preallocated for sizeHint emissions.
func NewJoiner[K any](kind JoinKind, sizeHint int) *Joiner[K] {
	return &Joiner[K]{Kind: kind, State: index.NewState[K](sizeHint)}
}

// Cogroup implements index.Cogrouper.
func (j *Joiner[K]) Cogroup(key K, lIdx []int, lStart, lEnd int, rIdx []int, rStart, rEnd int) {
	lHas := lEnd > lStart
	rHas := rEnd > rStart

	switch {
	case lHas && rHas:
		for li := lStart; li < lEnd; li++ {
			for ri := rStart; ri < rEnd; ri++ {
				j.State.Append(key, lIdx[li], rIdx[ri])
			}
		}
	case lHas && !rHas:
		if j.Kind.leftOuter() {
			for li := lStart; li < lEnd; li++ {
				j.State.Append(key, lIdx[li], index.Skip)
			}
		}
	case !lHas && rHas:
		if j.Kind.rightOuter() {
			for ri := rStart; ri < rEnd; ri++ {
				j.State.Append(key, index.Skip, rIdx[ri])
			}
		}
	}
}
