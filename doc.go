// Package tabulath is an in-memory, columnar tabular data engine: a
// three-valued Cell model (present Value, absent NA, defined-as-
// undefined NM), sparse Column storage, keyed/grouped Index traversal,
// a cogroup-driven Joiner/Merger, a Reducer fold framework, and a
// Series algebra built on top of them.
//
// Everything under tabulath is organized as:
//
//	cell/     — Cell[A], the three-valued value wrapper and its monoid
//	mask/     — Mask, the bit-packed row-presence set
//	column/   — Column[A] (Dense + lazy Reindex/Map views) and Builder[A]
//	index/    — Index[K], Group, and the Cogroup algorithm
//	joiner/   — Joiner (Cartesian) and Merger (positional) cogroupers
//	reducer/  — Reducer[A,B] contract and concrete fold reducers
//	series/   — Series[K,V]: zipMap/merge/orElse/concat/rollForward/reduce
//	frame/    — Frame[K]: a column-oriented table of named Series
//
// Values are immutable once built; builders are single-owner and not
// safe for concurrent use. See SPEC_FULL.md and DESIGN.md for the full
// specification and the grounding of each package's design.
package tabulath
