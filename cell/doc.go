// Package cell defines Cell[A], the three-valued wrapper used at every
// public boundary of tabulath: a present Value, an absent NA ("not
// available"), or a defined-to-be-undefined NM ("not meaningful").
//
// Why three values instead of two?
//
//   - NA means the datum was never observed: a missing row, a key with
//     no match on one side of a join.
//   - NM means the datum was computed but is undefined in context: a
//     division by zero, an aggregate whose contributing window
//     contained an NM.
//
// Algebra:
//
//	NM is absorbing under Combine: NM ⊕ x = x ⊕ NM = NM.
//	NA is the identity: NA ⊕ x = x ⊕ NA = x.
//	Map preserves the variant (Value(a) -> Value(f(a)), NA -> NA, NM -> NM).
//	FlatMap lets NA/NM short-circuit the chain.
//
// Nesting is disallowed by construction: Cell[Cell[int]] is not a type
// tabulath builds anywhere, which sidesteps the question of what a
// Value wrapping a non-value sentinel ought to mean (see DESIGN.md for
// the reasoning) and keeps comparable Cell[A] equality exactly what Go
// itself provides.
package cell
