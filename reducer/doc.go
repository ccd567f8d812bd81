// Package reducer implements the reducer contract and the concrete
// reductions built on top of it: a pure fold over a Column window
// bounded by an indices slice.
//
// Contract: a Reducer[A,B] is
//
//	func(col column.Column[A], indices []int, start, end int) cell.Cell[B]
//
// and must:
//   - never touch col outside the rows named by indices[start:end];
//   - read presence exclusively through col.IsValueAt/ValueAt/NonValueAt,
//     never by inspecting column internals;
//   - surface NM if any row in the window is NM, *except* for Count,
//     Exists and ForAll, which are defined on presence alone and skip
//     NM rows without poisoning the result (see DESIGN.md for why these
//     three diverge from Unique, which does poison on NM).
//
// Reducers take any ambient instance they need (an Order for Max/Min,
// a Semigroup for Semigroup/Monoid) as an explicit parameter rather
// than resolving it implicitly; the numeric reducers (Mean, Median,
// Quantile, Outliers) use the built-in order of column.Number.
package reducer
