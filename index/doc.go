// Package index implements Index[K], the keyed mapping from logical
// position to (key, underlying row) that drives row ordering, lookup,
// grouped traversal, and the cogroup algorithm every binary
// series/frame operation is built on.
//
// An Index holds keys[] and indices[] of equal length: keys[i] is the
// key at logical position i, indices[i] is the row into the associated
// Column. When ordered, keys is non-decreasing under an explicit Order
// function supplied by the caller, an ambient "key order" made an
// explicit parameter rather than resolved implicitly from K's own
// comparability.
//
// Cogroup is the workhorse: given two Indexes ordered by the *same*
// key order, it walks both in lockstep, presenting each side's
// maximal contiguous equal-key run to a Cogrouper strategy. The
// Cogrouper accumulates emitted (key, leftRow, rightRow) triples into
// a State, using the Skip sentinel for "no row on this side" — that
// State becomes the Index backing the operation's output Series.
package index
