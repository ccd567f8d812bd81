package reducer

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
)

// Unique returns the set of distinct present values in the window, as
// Value(set) — Value(∅) if none are present. NM anywhere in the window
// surfaces as NM — Unique is not among the NM-skipping reducers.
func Unique[A comparable]() Reducer[A, map[A]struct{}] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[map[A]struct{}] {
		if hasNM(col, indices, start, end) {
			return cell.NM[map[A]struct{}]()
		}
		set := make(map[A]struct{})
		forEachValue(col, indices, start, end, func(v A) { set[v] = struct{}{} })
		return cell.Value(set)
	}
}
