package column

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/mask"
)

// Column is a sparse, potentially-infinite mapping from row position to
// cell.Cell[A]. Implementations: Dense (backed by a slice + two
// masks), and the lazy views produced by Reindex and Map.
type Column[A any] interface {
	// Len reports the column's stored extent: rows at or beyond Len
	// read as NA. It is not necessarily the number of present values.
	Len() int

	// Get returns the cell at row, honoring the beyond-extent NA rule.
	Get(row int) cell.Cell[A]

	// IsValueAt reports whether row holds a present value.
	IsValueAt(row int) bool

	// ValueAt returns the value at row. Callers must have checked
	// IsValueAt first; violating that is a contract error and panics.
	ValueAt(row int) A

	// NonValueAt returns the NA/NM cell at row. Callers must have
	// checked !IsValueAt first; violating that is a contract error
	// and panics.
	NonValueAt(row int) cell.Cell[A]
}

// Dense is the concrete backing storage a Builder produces: a value
// slice plus two disjoint masks marking NA and NM rows.
type Dense[A any] struct {
	values []A
	naMask mask.Mask
	nmMask mask.Mask
}

// NewDense builds a Dense column directly from parts. na and nm must
// be disjoint; this is a contract precondition, not checked at runtime
// on the hot path — use a Builder if you are not certain the
// invariant holds.
func NewDense[A any](values []A, na, nm mask.Mask) *Dense[A] {
	return &Dense[A]{values: values, naMask: na, nmMask: nm}
}

func (d *Dense[A]) Len() int { return len(d.values) }

func (d *Dense[A]) Get(row int) cell.Cell[A] {
	if row < 0 || row >= len(d.values) {
		return cell.NA[A]()
	}
	if d.naMask.Contains(row) {
		return cell.NA[A]()
	}
	if d.nmMask.Contains(row) {
		return cell.NM[A]()
	}
	return cell.Value(d.values[row])
}

func (d *Dense[A]) IsValueAt(row int) bool {
	if row < 0 || row >= len(d.values) {
		return false
	}
	return !d.naMask.Contains(row) && !d.nmMask.Contains(row)
}

func (d *Dense[A]) ValueAt(row int) A {
	if !d.IsValueAt(row) {
		panic("column: ValueAt called on a non-value row")
	}
	return d.values[row]
}

func (d *Dense[A]) NonValueAt(row int) cell.Cell[A] {
	if d.IsValueAt(row) {
		panic("column: NonValueAt called on a value row")
	}
	if row >= 0 && row < len(d.values) && d.nmMask.Contains(row) {
		return cell.NM[A]()
	}
	return cell.NA[A]()
}

// NAMask returns the NA positions of a Dense column (read-only view,
// shared by ownership, never copied).
func (d *Dense[A]) NAMask() mask.Mask { return d.naMask }

// NMMask returns the NM positions of a Dense column.
func (d *Dense[A]) NMMask() mask.Mask { return d.nmMask }

// Values returns the backing value slice. Rows marked NA/NM hold the
// zero value of A at that index and must not be read without first
// consulting IsValueAt.
func (d *Dense[A]) Values() []A { return d.values }
