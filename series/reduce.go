package series

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
	"github.com/katalvlaran/tabulath/index"
	"github.com/katalvlaran/tabulath/reducer"
)

// Reduce folds r over the whole series in logical-position order.
func Reduce[K comparable, A, B any](s *Series[K, A], r reducer.Reducer[A, B]) cell.Cell[B] {
	return r(s.col, s.idx.Indices(), 0, s.Len())
}

// ReduceByKey folds r over each maximal run of equal keys (s.idx must
// be ordered by order), producing one output row per distinct key. For
// a series with no duplicate keys, ReduceByKey(r) == Reduce(r) applied
// per singleton group, i.e. reduces to a per-row identity-shaped map.
func ReduceByKey[K comparable, A, B any](s *Series[K, A], order index.Order[K], r reducer.Reducer[A, B]) *Series[K, B] {
	if !s.idx.Ordered() {
		panic("series: ReduceByKey requires an ordered Index")
	}
	var keys []K
	out := column.NewBuilder[B]()
	rows := s.idx.Indices()
	s.idx.Group(func(key K, start, end int) {
		keys = append(keys, key)
		out.Add(r(s.col, rows, start, end))
	})
	n := len(keys)
	resultIdx := index.Ordered[K](keys, identityIndices(n), order)
	return New(resultIdx, out.Result())
}
