// SPDX-License-Identifier: MIT
//
// File: algebra.go
// Role: cell-wise numeric algebra over Column[A] for a ring/field A.
//
// Add/Sub/Mul/Div combine two columns position-by-position over
// [0, n); the caller supplies n (typically an Index's row count) since
// Column itself only reports its own stored extent, not a logical
// join size — true cross-column alignment by key is Series' job
// (zipMap/merge), not Column's.
//
// Division lifts A's own zero-divisor semantics to the cell algebra:
// dividing by a zero divisor yields NM rather than panicking or
// propagating a language-level division error.
package column

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/tabulath/cell"
)

// Number is the type-set algebra.go operates over: anything with the
// usual arithmetic operators and a well-defined zero value.
type Number interface {
	constraints.Integer | constraints.Float
}

// zipCell combines a and b position-by-position over [0,n) using the
// zipMap cell rule: both present -> combine(x,y); either NM -> NM;
// otherwise NA (a single present side also yields NA).
func zipCell[A, B any](a Column[A], b Column[B], n int, combine func(A, B) cell.Cell[A]) Column[A] {
	out := NewBuilder[A]()
	out.SizeHint(n)
	for i := 0; i < n; i++ {
		av, bv := a.Get(i), b.Get(i)
		switch {
		case av.IsValue() && bv.IsValue():
			x, _ := av.Get()
			y, _ := bv.Get()
			out.Add(combine(x, y))
		case av.IsNM() || bv.IsNM():
			out.AddNM()
		default:
			out.AddNA()
		}
	}
	return out.Result()
}

// Add returns the cell-wise sum of a and b over [0,n).
func Add[A Number](a, b Column[A], n int) Column[A] {
	return zipCell(a, b, n, func(x, y A) cell.Cell[A] { return cell.Value(x + y) })
}

// Sub returns the cell-wise difference a-b over [0,n).
func Sub[A Number](a, b Column[A], n int) Column[A] {
	return zipCell(a, b, n, func(x, y A) cell.Cell[A] { return cell.Value(x - y) })
}

// Mul returns the cell-wise product of a and b over [0,n).
func Mul[A Number](a, b Column[A], n int) Column[A] {
	return zipCell(a, b, n, func(x, y A) cell.Cell[A] { return cell.Value(x * y) })
}

// Div returns the cell-wise quotient a/b over [0,n). A zero divisor
// yields NM at that row rather than panicking.
func Div[A Number](a, b Column[A], n int) Column[A] {
	return zipCell(a, b, n, func(x, y A) cell.Cell[A] {
		var zero A
		if y == zero {
			return cell.NM[A]()
		}
		return cell.Value(x / y)
	})
}
