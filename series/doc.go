// Package series implements Series[K,V] — the pairing of an
// index.Index[K] with a column.Column[V] — and its algebra: zipMap,
// merge, orElse, sequence concatenation (++), roll-forward, reduce and
// reduceByKey.
//
// Every binary operation is expressed the same way: cogroup the two
// Indexes (via a joiner.Joiner or joiner.Merger, depending on the
// operation's join semantics), walk the resulting aligned pairs, and
// append a cell to a column.Builder per the operation's own
// combination rule — zipMap's, merge's, and orElse's rules are all
// distinct (see algebra.go), not a single reused combinator.
package series
