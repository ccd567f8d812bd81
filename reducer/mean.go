package reducer

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
)

// Mean returns the arithmetic mean of the window's present values as a
// float64 (sum/count lifted into the field of real numbers), NA if
// none are present, NM if any row in the window is NM.
func Mean[A column.Number]() Reducer[A, float64] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[float64] {
		if hasNM(col, indices, start, end) {
			return cell.NM[float64]()
		}
		var sum float64
		count := 0
		forEachValue(col, indices, start, end, func(v A) {
			sum += float64(v)
			count++
		})
		if count == 0 {
			return cell.NA[float64]()
		}
		return cell.Value(sum / float64(count))
	}
}
