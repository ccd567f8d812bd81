// Package joiner implements the two concrete Cogrouper strategies that
// drive every binary Series/Frame operation: Joiner (Cartesian
// join semantics — inner/left/right/outer) and Merger (positional
// alignment semantics — inner/outer).
//
// Both accumulate into an index.State[K] using index.Skip as the "no
// row on this side" sentinel; that State becomes the Index backing
// the operation's output Series.
package joiner
