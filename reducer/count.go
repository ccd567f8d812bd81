package reducer

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
)

// Count returns the number of present (Value) rows in the window,
// ignoring NM rows entirely rather than letting them poison the
// result.
func Count[A any]() Reducer[A, int] {
	return func(col column.Column[A], indices []int, start, end int) cell.Cell[int] {
		n := 0
		for i := start; i < end; i++ {
			if col.IsValueAt(indices[i]) {
				n++
			}
		}
		return cell.Value(n)
	}
}
