package series

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
	"github.com/katalvlaran/tabulath/index"
	"github.com/katalvlaran/tabulath/joiner"
)

// ZipMap combines a and b by key with f, keeping only keys present on
// both sides (an Inner cogroup, Cartesian on repeated keys). A slot's
// cell is Value(f(av,bv)) only when both sides hold a present value at
// that slot; if either side is NM the slot is NM; otherwise NA. This is
// stricter than Merge's rule: a key with a present right value and an
// absent left value yields NA here, not the right value alone — unlike
// Merge or OrElse.
func ZipMap[K comparable, A, B, C any](a *Series[K, A], b *Series[K, B], order index.Order[K], f func(A, B) C) *Series[K, C] {
	j := joiner.NewJoiner[K](joiner.Inner, min(a.Len(), b.Len()))
	index.Cogroup[K](a.idx, b.idx, order, j)

	n := j.State.Len()
	out := column.NewBuilder[C]()
	out.SizeHint(n)
	for i := 0; i < n; i++ {
		lc := a.col.Get(j.State.Lefts[i])
		rc := b.col.Get(j.State.Rights[i])
		out.Add(zipMapCell(lc, rc, f))
	}
	resultIdx := index.Ordered[K](j.State.Keys, identityIndices(n), order)
	return New(resultIdx, out.Result())
}

func zipMapCell[A, B, C any](l cell.Cell[A], r cell.Cell[B], f func(A, B) C) cell.Cell[C] {
	if lv, ok := l.Get(); ok {
		if rv, ok2 := r.Get(); ok2 {
			return cell.Value(f(lv, rv))
		}
	}
	if l.IsNM() || r.IsNM() {
		return cell.NM[C]()
	}
	return cell.NA[C]()
}

// Merge combines a and b position-wise per matched key (an Outer
// Merger) using the Cell monoid (cell.Combine): both present combines
// with op, one present keeps that value, neither present is NM if
// either side is NM else NA. NM absorbs even against a present value on
// the other side (left NM, right Value("z") yields NM, not "z") — this
// is the Cell monoid's ordinary absorption law, not the looser "only
// one present -> that value" rule a cursory reading might suggest.
func Merge[K comparable, V any](a, b *Series[K, V], order index.Order[K], op cell.Semigroup[V]) *Series[K, V] {
	m := joiner.NewMerger[K](joiner.MergeOuter, a.Len()+b.Len())
	index.Cogroup[K](a.idx, b.idx, order, m)

	n := m.State.Len()
	out := column.NewBuilder[V]()
	out.SizeHint(n)
	for i := 0; i < n; i++ {
		lc := a.col.Get(m.State.Lefts[i])
		rc := b.col.Get(m.State.Rights[i])
		out.Add(cell.Combine(lc, rc, op))
	}
	resultIdx := index.Ordered[K](m.State.Keys, identityIndices(n), order)
	return New(resultIdx, out.Result())
}

// OrElse fills a's NA slots from b, position-wise per matched key
// (an Outer Merger): the first non-NA side wins outright (even if it is
// NM — NM is "present but undefined", not "absent"); only when both
// sides are NA does the result fall back to NA.
func OrElse[K comparable, V any](a, b *Series[K, V], order index.Order[K]) *Series[K, V] {
	m := joiner.NewMerger[K](joiner.MergeOuter, a.Len()+b.Len())
	index.Cogroup[K](a.idx, b.idx, order, m)

	n := m.State.Len()
	out := column.NewBuilder[V]()
	out.SizeHint(n)
	for i := 0; i < n; i++ {
		lc := a.col.Get(m.State.Lefts[i])
		rc := b.col.Get(m.State.Rights[i])
		out.Add(orElseCell(lc, rc))
	}
	resultIdx := index.Ordered[K](m.State.Keys, identityIndices(n), order)
	return New(resultIdx, out.Result())
}

func orElseCell[V any](l, r cell.Cell[V]) cell.Cell[V] {
	if !l.IsNA() {
		return l
	}
	if !r.IsNA() {
		return r
	}
	return cell.NA[V]()
}

// Concat appends b's logical positions after a's, unmodified (no
// realignment, no cogroup). The result is ordered only when a and b are
// each ordered AND every key in b is >= every key in a under order;
// callers that cannot guarantee that must treat the result as
// unordered.
func Concat[K comparable, V any](a, b *Series[K, V], order index.Order[K]) *Series[K, V] {
	n := a.Len() + b.Len()
	keys := make([]K, 0, n)
	keys = append(keys, a.idx.Keys()...)
	keys = append(keys, b.idx.Keys()...)

	out := column.NewBuilder[V]()
	out.SizeHint(n)
	a.idx.Foreach(func(_ K, row int) { out.Add(a.col.Get(row)) })
	b.idx.Foreach(func(_ K, row int) { out.Add(b.col.Get(row)) })

	ordered := a.idx.Ordered() && b.idx.Ordered() && concatPreservesOrder(a, b, order)
	var resultIdx *index.Index[K]
	if ordered {
		resultIdx = index.Ordered[K](keys, identityIndices(n), order)
	} else {
		resultIdx = index.FromUnordered[K](keys, identityIndices(n))
	}
	return New(resultIdx, out.Result())
}

// concatPreservesOrder reports whether a's last key precedes or equals
// b's first key, the condition under which a++b remains non-decreasing.
func concatPreservesOrder[K comparable, V any](a, b *Series[K, V], order index.Order[K]) bool {
	if a.Len() == 0 || b.Len() == 0 {
		return true
	}
	return order(a.idx.KeyAt(a.Len()-1), b.idx.KeyAt(0)) <= 0
}
