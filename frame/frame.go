package frame

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/index"
	"github.com/katalvlaran/tabulath/series"
)

// Frame is a column-oriented table: one shared index.Index[K] naming
// the logical row order, and a set of named UntypedColumns each
// addressed through that same index. A Frame is not immutable:
// AddColumn adds or replaces a column in place. Select returns a new
// Frame that shares the index and the selected column values.
type Frame[K comparable] struct {
	idx   *index.Index[K]
	names []string
	cols  map[string]UntypedColumn
}

// New returns an empty Frame sharing idx as its row index.
func New[K comparable](idx *index.Index[K]) *Frame[K] {
	return &Frame[K]{idx: idx, cols: make(map[string]UntypedColumn)}
}

// Index returns the Frame's shared row index.
func (f *Frame[K]) Index() *index.Index[K] { return f.idx }

// Len reports the number of logical rows.
func (f *Frame[K]) Len() int { return f.idx.Len() }

// AddColumn adds or replaces a named column. name keeps its original
// position in ColumnNames if it already existed.
func (f *Frame[K]) AddColumn(name string, col UntypedColumn) {
	if _, exists := f.cols[name]; !exists {
		f.names = append(f.names, name)
	}
	f.cols[name] = col
}

// AddSeries adds s's column under name, trusting that s shares the
// Frame's row index (same keys, same logical order) — a Frame does
// not itself realign a Series; use series algebra first if the keys
// differ.
func AddSeries[K comparable, V any](f *Frame[K], name string, s *series.Series[K, V]) {
	f.AddColumn(name, Wrap[V](s.Column()))
}

// Column returns the named column and whether it exists.
func (f *Frame[K]) Column(name string) (UntypedColumn, bool) {
	c, ok := f.cols[name]
	return c, ok
}

// ColumnNames returns column names in insertion order.
func (f *Frame[K]) ColumnNames() []string {
	return append([]string(nil), f.names...)
}

// Select returns a new Frame over the same index, keeping only the
// named columns, in the order given.
func (f *Frame[K]) Select(names ...string) *Frame[K] {
	out := New[K](f.idx)
	for _, n := range names {
		if c, ok := f.cols[n]; ok {
			out.AddColumn(n, c)
		}
	}
	return out
}

// At reads the typed cell for column name at logical position pos. A
// missing column reads as NA; a present value of the wrong concrete
// type reads as NM (Cast's boundary contract).
func At[K comparable, A any](f *Frame[K], name string, pos int) cell.Cell[A] {
	col, ok := f.Column(name)
	if !ok {
		return cell.NA[A]()
	}
	return Cast[A](col, f.idx.IndexAt(pos))
}
