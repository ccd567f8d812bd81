// Package column implements Column[A], a sparse, potentially-infinite
// mapping from a non-negative row position to a cell.Cell[A].
//
// Shapes:
//
//	Dense[A]     — (values []A, naMask, nmMask mask.Mask); the only
//	               shape a Builder produces.
//	reindexed[A] — a lazy view: view.Get(i) = backing.Get(idx[i]),
//	               out-of-range idx[i] reads as NA.
//	mapped[A,B]  — a lazy view applying f through cell.Map, so the
//	               variant (Value/NA/NM) is preserved untouched.
//
// Rows beyond a Column's stored extent (Len()) read as NA — a Column
// is a sparse mapping over all of ℕ, not just its backing range.
//
// Compact/Force materialize a view chain into a single Dense[A] that
// holds only the rows an Index will actually visit, reclaiming the
// full backing column and breaking the reindex/map reference chain.
//
// A Builder accepts AddValue/AddNA/AddNM/AddNonValue/Add appends and
// is owned by a single caller; Result() hands back an immutable Dense
// column that may then be shared freely.
package column
