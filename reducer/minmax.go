package reducer

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
	"github.com/katalvlaran/tabulath/index"
)

// Max returns the extremum by order (the largest element), NA if the
// window holds no present values, NM if any row in the window is NM.
// order is an explicit strategy, not resolved from an ambient instance.
func Max[A any](order index.Order[A]) Reducer[A, A] {
	return extremum(order, 1)
}

// Min returns the smallest element by order; see Max.
func Min[A any](order index.Order[A]) Reducer[A, A] {
	return extremum(order, -1)
}

// extremum folds present values keeping whichever compares as
// sign*order(candidate, best) > 0 over the current best.
func extremum[A any](order index.Order[A], sign int) Reducer[A, A] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[A] {
		if hasNM(col, indices, start, end) {
			return cell.NM[A]()
		}
		var best A
		found := false
		forEachValue(col, indices, start, end, func(v A) {
			if !found || sign*order(v, best) > 0 {
				best = v
				found = true
			}
		})
		if !found {
			return cell.NA[A]()
		}
		return cell.Value(best)
	}
}
