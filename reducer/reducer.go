package reducer

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
)

// Reducer is a pure fold over col's window named by indices[start:end].
type Reducer[A, B any] func(col column.Column[A], indices []int, start, end int) cell.Cell[B]

// hasNM reports whether any row in the window is NM. Shared by every
// reducer that must surface NM when the window contains one.
func hasNM[A any](col column.Column[A], indices []int, start, end int) bool {
	for i := start; i < end; i++ {
		row := indices[i]
		if !col.IsValueAt(row) && col.NonValueAt(row).IsNM() {
			return true
		}
	}
	return false
}

// forEachValue invokes f for every present value in the window, in
// window order.
func forEachValue[A any](col column.Column[A], indices []int, start, end int, f func(A)) {
	for i := start; i < end; i++ {
		row := indices[i]
		if col.IsValueAt(row) {
			f(col.ValueAt(row))
		}
	}
}

// collectValues gathers every present value in the window, in window
// order, onto a fresh slice.
func collectValues[A any](col column.Column[A], indices []int, start, end int) []A {
	out := make([]A, 0, end-start)
	forEachValue(col, indices, start, end, func(a A) { out = append(out, a) })
	return out
}
