package reducer

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
)

// Median returns the median of the window's present values as a
// float64 — the true average of the two middle elements for an
// even-sized sample, found by quick-select on a private copy of the
// values so the caller's column is never touched. NA if no value is
// present, NM if any row in the window is NM.
func Median[A column.Number]() Reducer[A, float64] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[float64] {
		if hasNM(col, indices, start, end) {
			return cell.NM[float64]()
		}
		values := collectValues(col, indices, start, end)
		if len(values) == 0 {
			return cell.NA[float64]()
		}
		n := len(values)
		hi := quickSelect(values, n/2)
		if n%2 == 1 {
			return cell.Value(float64(hi))
		}
		lo := quickSelect(values[:n/2], n/2-1)
		return cell.Value((float64(lo) + float64(hi)) / 2)
	}
}

// quickSelect returns the k-th smallest element (0-indexed) of values,
// partially reordering values in place (Lomuto partition scheme).
func quickSelect[A column.Number](values []A, k int) A {
	lo, hi := 0, len(values)-1
	for lo < hi {
		p := partition(values, lo, hi)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return values[p]
		}
	}
	return values[lo]
}

// partition performs a Lomuto partition around values[hi], returning
// the pivot's final index.
func partition[A column.Number](values []A, lo, hi int) int {
	pivot := values[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if values[j] < pivot {
			values[i], values[j] = values[j], values[i]
			i++
		}
	}
	values[i], values[hi] = values[hi], values[i]
	return i
}
