// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Builder[K,V], the single-owner append surface that produces a
// Series, in both ordered and unordered flavors.
package series

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
	"github.com/katalvlaran/tabulath/index"
)

// Builder accumulates (key, cell) appends into a Series. Not safe for
// concurrent use — single owner, like column.Builder; Result()
// transfers ownership of the finished, immutable Series.
type Builder[K comparable, V any] struct {
	keys    []K
	col     *column.Builder[V]
	ordered bool
	order   index.Order[K]
}

// NewBuilder returns an empty unordered Builder.
func NewBuilder[K comparable, V any]() *Builder[K, V] {
	return &Builder[K, V]{col: column.NewBuilder[V]()}
}

// NewOrderedBuilder returns an empty Builder whose caller asserts keys
// will be appended in non-decreasing order under order — a contract
// precondition, not validated on the hot path.
func NewOrderedBuilder[K comparable, V any](order index.Order[K]) *Builder[K, V] {
	return &Builder[K, V]{col: column.NewBuilder[V](), ordered: true, order: order}
}

// SizeHint preallocates backing storage for n upcoming appends.
func (b *Builder[K, V]) SizeHint(n int) *Builder[K, V] {
	if cap(b.keys)-len(b.keys) < n {
		grown := make([]K, len(b.keys), len(b.keys)+n)
		copy(grown, b.keys)
		b.keys = grown
	}
	b.col.SizeHint(n)
	return b
}

// AppendValue appends a present value under key.
func (b *Builder[K, V]) AppendValue(key K, v V) {
	b.keys = append(b.keys, key)
	b.col.AddValue(v)
}

// AppendNonValue appends an NA/NM cell under key; c must not be a
// present Value (use AppendValue instead).
func (b *Builder[K, V]) AppendNonValue(key K, c cell.Cell[V]) {
	b.keys = append(b.keys, key)
	b.col.AddNonValue(c)
}

// Append appends an arbitrary cell under key, dispatching to
// AppendValue or AppendNonValue.
func (b *Builder[K, V]) Append(key K, c cell.Cell[V]) {
	if v, ok := c.Get(); ok {
		b.AppendValue(key, v)
		return
	}
	b.AppendNonValue(key, c)
}

// Len reports the number of rows appended so far.
func (b *Builder[K, V]) Len() int { return len(b.keys) }

// Result finalizes the Builder into an immutable Series. The Builder
// must not be reused afterward.
func (b *Builder[K, V]) Result() *Series[K, V] {
	n := len(b.keys)
	var idx *index.Index[K]
	if b.ordered {
		idx = index.Ordered[K](b.keys, identityIndices(n), b.order)
	} else {
		idx = index.FromUnordered[K](b.keys, identityIndices(n))
	}
	return New(idx, b.col.Result())
}
