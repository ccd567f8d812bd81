package frame

import (
	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
)

// UntypedColumn erases a column.Column[A]'s element type so a Frame
// can hold columns of differing A behind one map. GetAny never panics:
// it reports presence out-of-band instead of returning a typed cell,
// since the caller on this side of the erasure has no A to name.
type UntypedColumn interface {
	Len() int
	GetAny(row int) (value any, isValue bool, isNM bool)
}

// typedColumn adapts a column.Column[A] to UntypedColumn.
type typedColumn[A any] struct {
	col column.Column[A]
}

// Wrap erases col's element type into an UntypedColumn for storage in
// a Frame.
func Wrap[A any](col column.Column[A]) UntypedColumn { return typedColumn[A]{col: col} }

func (t typedColumn[A]) Len() int { return t.col.Len() }

func (t typedColumn[A]) GetAny(row int) (any, bool, bool) {
	c := t.col.Get(row)
	if v, ok := c.Get(); ok {
		return v, true, false
	}
	return nil, false, c.IsNM()
}

// Cast reads row back out of uc as a cell.Cell[A]. A row holding a
// present value of some other concrete type becomes NM — a failed
// cast is "not meaningful" for this request, not absence.
func Cast[A any](uc UntypedColumn, row int) cell.Cell[A] {
	v, isValue, isNM := uc.GetAny(row)
	if isNM {
		return cell.NM[A]()
	}
	if !isValue {
		return cell.NA[A]()
	}
	a, ok := v.(A)
	if !ok {
		return cell.NM[A]()
	}
	return cell.Value(a)
}
