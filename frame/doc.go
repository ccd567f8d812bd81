// Package frame implements Frame[K]: a column-oriented table of named
// columns sharing one keyed index.Index[K]. Frame itself holds no
// algebra of its own — every operation delegates to the series and
// index packages column by column.
//
// Columns are stored behind UntypedColumn, an erased view over a
// column.Column[A] for some A the Frame does not know statically.
// Reading a typed value back out is a cast: a row whose stored type
// does not match the requested A becomes NM rather than panicking or
// silently coercing.
package frame
