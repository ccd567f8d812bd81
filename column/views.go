// SPDX-License-Identifier: MIT
//
// File: views.go
// Role: lazy Column views — Reindex (index indirection) and Map
// (element transform) — plus Compact/Force materialization.
package column

import "github.com/katalvlaran/tabulath/cell"

// reindexed is a lazy view: Get(i) = backing.Get(idx[i]) whenever
// 0 <= idx[i] < backing.Len(); otherwise the row reads as NA.
type reindexed[A any] struct {
	backing Column[A]
	idx     []int
}

// Reindex builds a view over backing such that view.Get(i) reads
// backing at idx[i]. Out-of-range idx[i] (negative, or >= backing's
// stored extent) reads as NA. Holds a reference to backing; Compact
// breaks the chain.
func Reindex[A any](backing Column[A], idx []int) Column[A] {
	return &reindexed[A]{backing: backing, idx: idx}
}

func (r *reindexed[A]) Len() int { return len(r.idx) }

// resolve maps a view row to a backing row, or -1 if out of range on
// either side.
func (r *reindexed[A]) resolve(row int) int {
	if row < 0 || row >= len(r.idx) {
		return -1
	}
	target := r.idx[row]
	if target < 0 || target >= r.backing.Len() {
		return -1
	}
	return target
}

func (r *reindexed[A]) Get(row int) cell.Cell[A] {
	t := r.resolve(row)
	if t < 0 {
		return cell.NA[A]()
	}
	return r.backing.Get(t)
}

func (r *reindexed[A]) IsValueAt(row int) bool {
	t := r.resolve(row)
	return t >= 0 && r.backing.IsValueAt(t)
}

func (r *reindexed[A]) ValueAt(row int) A {
	t := r.resolve(row)
	if t < 0 {
		panic("column: ValueAt called on a non-value row")
	}
	return r.backing.ValueAt(t)
}

func (r *reindexed[A]) NonValueAt(row int) cell.Cell[A] {
	t := r.resolve(row)
	if t < 0 {
		return cell.NA[A]()
	}
	return r.backing.NonValueAt(t)
}

// mapped is a lazy view applying f through cell.Map: the variant
// (Value/NA/NM) is preserved, only a present payload is transformed.
type mapped[A, B any] struct {
	backing Column[A]
	f       func(A) B
}

// Map builds a lazy view applying f to every present value of backing.
// f is never invoked for NA/NM rows.
func Map[A, B any](backing Column[A], f func(A) B) Column[B] {
	return &mapped[A, B]{backing: backing, f: f}
}

func (m *mapped[A, B]) Len() int { return m.backing.Len() }

func (m *mapped[A, B]) Get(row int) cell.Cell[B] {
	return cell.Map(m.backing.Get(row), m.f)
}

func (m *mapped[A, B]) IsValueAt(row int) bool { return m.backing.IsValueAt(row) }

func (m *mapped[A, B]) ValueAt(row int) B {
	return m.f(m.backing.ValueAt(row))
}

func (m *mapped[A, B]) NonValueAt(row int) cell.Cell[B] {
	return cell.Map(m.backing.NonValueAt(row), m.f)
}

// Compact materializes a Dense column holding exactly the cells at
// rows, in order — collapsing any Reindex/Map chain and reclaiming the
// full original backing column.
func Compact[A any](src Column[A], rows []int) Column[A] {
	b := NewBuilder[A]()
	b.SizeHint(len(rows))
	for _, r := range rows {
		b.Add(src.Get(r))
	}
	return b.Result()
}

// Force materializes src's own extent [0, src.Len()) into a Dense
// column, collapsing any view chain.
func Force[A any](src Column[A]) Column[A] {
	n := src.Len()
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return Compact(src, rows)
}
