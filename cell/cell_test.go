package cell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tabulath/cell"
)

// TestCell_Variants ASSERTS the three constructors report the expected
// predicates and String forms.
func TestCell_Variants(t *testing.T) {
	v := cell.Value(42)
	assert.True(t, v.IsValue())
	assert.False(t, v.IsNA())
	assert.False(t, v.IsNM())
	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, got)
	assert.Equal(t, "Value(42)", v.String())

	na := cell.NA[int]()
	assert.True(t, na.IsNA())
	assert.True(t, na.IsAbsent())
	assert.Equal(t, "NA", na.String())

	nm := cell.NM[int]()
	assert.True(t, nm.IsNM())
	assert.True(t, nm.IsAbsent())
	assert.Equal(t, "NM", nm.String())
}

// TestCell_MustValuePanics ASSERTS MustValue on an absent cell is a
// contract violation: it panics rather than returning a zero.
func TestCell_MustValuePanics(t *testing.T) {
	assert.Panics(t, func() { cell.NA[int]().MustValue() })
	assert.Panics(t, func() { cell.NM[int]().MustValue() })
	assert.NotPanics(t, func() { cell.Value(1).MustValue() })
}

// TestCell_Map ASSERTS Map preserves the variant and transforms only
// present values.
func TestCell_Map(t *testing.T) {
	double := func(x int) int { return x * 2 }
	assert.Equal(t, cell.Value(84), cell.Map(cell.Value(42), double))
	assert.True(t, cell.Map(cell.NA[int](), double).IsNA())
	assert.True(t, cell.Map(cell.NM[int](), double).IsNM())
}

// TestCell_FlatMap ASSERTS FlatMap lets the callback short-circuit into
// NA/NM, and that an absent input never calls the callback.
func TestCell_FlatMap(t *testing.T) {
	called := false
	reciprocal := func(x int) cell.Cell[float64] {
		called = true
		if x == 0 {
			return cell.NM[float64]()
		}
		return cell.Value(1.0 / float64(x))
	}

	assert.Equal(t, cell.Value(0.5), cell.FlatMap(cell.Value(2), reciprocal))
	assert.True(t, cell.FlatMap(cell.Value(0), reciprocal).IsNM())

	called = false
	assert.True(t, cell.FlatMap(cell.NA[int](), reciprocal).IsNA())
	assert.False(t, called, "FlatMap must not invoke f on an absent cell")
}

// sum is a Semigroup[int] used by the monoid-law tests below.
func sum(a, b int) int { return a + b }

// TestCell_MonoidLaws ASSERTS the monoid invariants: NA is the
// identity, NM is absorbing, Value/Value combination is associative.
func TestCell_MonoidLaws(t *testing.T) {
	x := cell.Value(7)
	na := cell.NA[int]()
	nm := cell.NM[int]()

	assert.True(t, cell.Equal(x, cell.Combine(na, x, sum)))
	assert.True(t, cell.Equal(x, cell.Combine(x, na, sum)))

	assert.True(t, cell.Equal(nm, cell.Combine(nm, x, sum)))
	assert.True(t, cell.Equal(nm, cell.Combine(x, nm, sum)))
	assert.True(t, cell.Equal(nm, cell.Combine(nm, na, sum)))

	a, b, c := cell.Value(1), cell.Value(2), cell.Value(3)
	left := cell.Combine(cell.Combine(a, b, sum), c, sum)
	right := cell.Combine(a, cell.Combine(b, c, sum), sum)
	assert.True(t, cell.Equal(left, right))
}

// TestCell_Equal ASSERTS Equal distinguishes variant mismatches and
// payload mismatches.
func TestCell_Equal(t *testing.T) {
	assert.True(t, cell.Equal(cell.Value(1), cell.Value(1)))
	assert.False(t, cell.Equal(cell.Value(1), cell.Value(2)))
	assert.False(t, cell.Equal(cell.Value(1), cell.NA[int]()))
	assert.True(t, cell.Equal(cell.NA[int](), cell.NA[int]()))
	assert.True(t, cell.Equal(cell.NM[int](), cell.NM[int]()))
	assert.False(t, cell.Equal(cell.NA[int](), cell.NM[int]()))
}
