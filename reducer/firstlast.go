package reducer

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
)

// First returns the first present value in the window, NA if none, NM
// if any row in the window is NM.
func First[A any]() Reducer[A, A] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[A] {
		if hasNM(col, indices, start, end) {
			return cell.NM[A]()
		}
		for i := start; i < end; i++ {
			row := indices[i]
			if col.IsValueAt(row) {
				return cell.Value(col.ValueAt(row))
			}
		}
		return cell.NA[A]()
	}
}

// Last returns the last present value in the window, NA if none, NM
// if any row in the window is NM.
func Last[A any]() Reducer[A, A] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[A] {
		if hasNM(col, indices, start, end) {
			return cell.NM[A]()
		}
		for i := end - 1; i >= start; i-- {
			row := indices[i]
			if col.IsValueAt(row) {
				return cell.Value(col.ValueAt(row))
			}
		}
		return cell.NA[A]()
	}
}

// FirstN returns the first n present values in window order, as a
// single Value([]A). NA if fewer than n values are present; NM if any
// row in the window is NM.
func FirstN[A any](n int) Reducer[A, []A] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[[]A] {
		if hasNM(col, indices, start, end) {
			return cell.NM[[]A]()
		}
		out := make([]A, 0, n)
		for i := start; i < end && len(out) < n; i++ {
			row := indices[i]
			if col.IsValueAt(row) {
				out = append(out, col.ValueAt(row))
			}
		}
		if len(out) < n {
			return cell.NA[[]A]()
		}
		return cell.Value(out)
	}
}

// LastN returns the last n present values, in their original window
// order, equivalent to running FirstN over the reversed window. NA if
// fewer than n values are present; NM if any row in the window is NM.
func LastN[A any](n int) Reducer[A, []A] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[[]A] {
		if hasNM(col, indices, start, end) {
			return cell.NM[[]A]()
		}
		rev := make([]A, 0, n)
		for i := end - 1; i >= start && len(rev) < n; i-- {
			row := indices[i]
			if col.IsValueAt(row) {
				rev = append(rev, col.ValueAt(row))
			}
		}
		if len(rev) < n {
			return cell.NA[[]A]()
		}
		out := make([]A, len(rev))
		for i, v := range rev {
			out[len(rev)-1-i] = v
		}
		return cell.Value(out)
	}
}
