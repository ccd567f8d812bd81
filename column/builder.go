// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Builder[A], the single-owner append surface that produces a
// Dense column.
package column

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/mask"
)

// Builder accumulates appended cells into a Dense column. Not safe for
// concurrent use by design — a Builder is owned by one caller; Result()
// transfers ownership of the finished column, which is then immutable
// and freely shareable.
type Builder[A any] struct {
	values []A
	na     mask.Mask
	nm     mask.Mask
	n      int
}

// NewBuilder returns an empty Builder.
func NewBuilder[A any]() *Builder[A] { return &Builder[A]{} }

// SizeHint preallocates backing storage for n upcoming appends. Purely
// an optimization; never required for correctness.
func (b *Builder[A]) SizeHint(n int) *Builder[A] {
	if cap(b.values)-len(b.values) < n {
		grown := make([]A, len(b.values), len(b.values)+n)
		copy(grown, b.values)
		b.values = grown
	}
	return b
}

// AddValue appends a present value.
func (b *Builder[A]) AddValue(a A) {
	b.values = append(b.values, a)
	b.n++
}

// AddNA appends an absent (not-available) row.
func (b *Builder[A]) AddNA() {
	var zero A
	b.values = append(b.values, zero)
	b.na = b.na.Add(b.n)
	b.n++
}

// AddNM appends a not-meaningful row.
func (b *Builder[A]) AddNM() {
	var zero A
	b.values = append(b.values, zero)
	b.nm = b.nm.Add(b.n)
	b.n++
}

// AddNonValue appends c, which must be NA or NM; appending a present
// Value through this entry point is a contract violation and panics
// (use AddValue or Add instead).
func (b *Builder[A]) AddNonValue(c cell.Cell[A]) {
	switch {
	case c.IsNM():
		b.AddNM()
	case c.IsNA():
		b.AddNA()
	default:
		panic("column: AddNonValue called with a present Value cell")
	}
}

// Add appends an arbitrary cell, dispatching to AddValue or
// AddNonValue.
func (b *Builder[A]) Add(c cell.Cell[A]) {
	if v, ok := c.Get(); ok {
		b.AddValue(v)
		return
	}
	b.AddNonValue(c)
}

// Len reports the number of rows appended so far.
func (b *Builder[A]) Len() int { return b.n }

// Result finalizes the Builder into an immutable Dense column. The
// Builder must not be reused afterward.
func (b *Builder[A]) Result() Column[A] {
	return &Dense[A]{values: b.values, naMask: b.na, nmMask: b.nm}
}
