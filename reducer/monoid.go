package reducer

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
)

// Monoid folds the window's present values with op, starting from id.
// Folding zero present values naturally yields Value(id) — the same
// formula covers both the empty-window and all-absent cases without
// needing a special rule for either. NM anywhere in the window
// surfaces as NM.
func Monoid[A any](id A, op cell.Semigroup[A]) Reducer[A, A] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[A] {
		if hasNM(col, indices, start, end) {
			return cell.NM[A]()
		}
		acc := id
		forEachValue(col, indices, start, end, func(v A) { acc = op(acc, v) })
		return cell.Value(acc)
	}
}

// Semigroup folds the window's present values with op, with no
// identity to fall back on: NA if no value is present, NM if any row
// in the window is NM, otherwise the non-empty fold.
func Semigroup[A any](op cell.Semigroup[A]) Reducer[A, A] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[A] {
		if hasNM(col, indices, start, end) {
			return cell.NM[A]()
		}
		var acc A
		found := false
		forEachValue(col, indices, start, end, func(v A) {
			if !found {
				acc = v
				found = true
				return
			}
			acc = op(acc, v)
		})
		if !found {
			return cell.NA[A]()
		}
		return cell.Value(acc)
	}
}
