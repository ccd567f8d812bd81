package reducer

import (
	"sort"

	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
)

// Outliers returns the window's present values falling outside Tukey's
// fences [Q1-k*IQR, Q3+k*IQR] (k=1.5 is the classic choice), in window
// order. NA if no value is present, NM if any row in the window is NM.
func Outliers[A column.Number](k float64) Reducer[A, []A] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[[]A] {
		if hasNM(col, indices, start, end) {
			return cell.NM[[]A]()
		}
		values := collectValues(col, indices, start, end)
		if len(values) == 0 {
			return cell.NA[[]A]()
		}
		sorted := make([]float64, len(values))
		for i, v := range values {
			sorted[i] = float64(v)
		}
		sort.Float64s(sorted)

		q1 := interpolate(sorted, 0.25)
		q3 := interpolate(sorted, 0.75)
		iqr := q3 - q1
		lowFence := q1 - k*iqr
		highFence := q3 + k*iqr

		var out []A
		for _, v := range values {
			fv := float64(v)
			if fv < lowFence || fv > highFence {
				out = append(out, v)
			}
		}
		if out == nil {
			out = []A{}
		}
		return cell.Value(out)
	}
}
