package reducer

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
)

// Exists returns Value(true) iff some present value in the window
// satisfies p. NM rows are skipped rather than poisoning the result;
// an empty window or an all-absent window both naturally fall out to
// Value(false) since "exists" over zero candidates is false.
func Exists[A any](p func(A) bool) Reducer[A, bool] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[bool] {
		found := false
		forEachValue(col, indices, start, end, func(v A) {
			if p(v) {
				found = true
			}
		})
		return cell.Value(found)
	}
}

// ForAll returns Value(true) iff every present value in the window
// satisfies p (vacuously true over zero candidates). NM rows are
// skipped rather than poisoning the result.
func ForAll[A any](p func(A) bool) Reducer[A, bool] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[bool] {
		ok := true
		forEachValue(col, indices, start, end, func(v A) {
			if !p(v) {
				ok = false
			}
		})
		return cell.Value(ok)
	}
}
