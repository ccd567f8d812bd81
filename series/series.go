package series

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
	"github.com/katalvlaran/tabulath/index"
)

// Series pairs a keyed Index[K] with a Column[V]: idx.IndexAt(i) names
// the row of col holding the value for idx.KeyAt(i).
type Series[K comparable, V any] struct {
	idx *index.Index[K]
	col column.Column[V]
}

// New pairs idx with col into a Series. Does not validate that every
// row idx addresses is in range of col — out-of-range rows simply read
// as NA (column.Column's beyond-extent rule), which is the same
// behavior a Skip-padded cogroup output relies on.
func New[K comparable, V any](idx *index.Index[K], col column.Column[V]) *Series[K, V] {
	return &Series[K, V]{idx: idx, col: col}
}

// Len reports the number of logical positions.
func (s *Series[K, V]) Len() int { return s.idx.Len() }

// Index returns the backing Index.
func (s *Series[K, V]) Index() *index.Index[K] { return s.idx }

// Column returns the backing Column.
func (s *Series[K, V]) Column() column.Column[V] { return s.col }

// At returns the key and cell at logical position i.
func (s *Series[K, V]) At(i int) (K, cell.Cell[V]) {
	return s.idx.KeyAt(i), s.col.Get(s.idx.IndexAt(i))
}

// identityIndices returns [0, 1, ..., n-1], used to address a freshly
// built output column whose rows line up one-for-one with a result
// Index's logical positions.
func identityIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
