package reducer

import (
	"sort"

	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
)

// Quantile returns, for each p in ps (0<=p<=1), the linearly
// interpolated value between the two nearest sorted samples of the
// window's present values. NA if no value is present, NM if any row
// in the window is NM. The result slice has the same length and order
// as ps.
func Quantile[A column.Number](ps []float64) Reducer[A, []float64] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[[]float64] {
		if hasNM(col, indices, start, end) {
			return cell.NM[[]float64]()
		}
		values := collectValues(col, indices, start, end)
		if len(values) == 0 {
			return cell.NA[[]float64]()
		}
		sorted := make([]float64, len(values))
		for i, v := range values {
			sorted[i] = float64(v)
		}
		sort.Float64s(sorted)

		out := make([]float64, len(ps))
		for i, p := range ps {
			out[i] = interpolate(sorted, p)
		}
		return cell.Value(out)
	}
}

// interpolate linearly interpolates the p-th quantile (0<=p<=1) over a
// sorted sample.
func interpolate(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}
