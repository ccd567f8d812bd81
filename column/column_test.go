package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
)

// buildSample returns a Dense column: 0:"a", 1:NA, 2:"c", 3:NM.
func buildSample() column.Column[string] {
	b := column.NewBuilder[string]()
	b.AddValue("a")
	b.AddNA()
	b.AddValue("c")
	b.AddNM()
	return b.Result()
}

func TestBuilder_RowsMatchAppendOrder(t *testing.T) {
	c := buildSample()
	assert.Equal(t, 4, c.Len())
	assert.True(t, cell.Equal(cell.Value("a"), c.Get(0)))
	assert.True(t, c.IsValueAt(0))
	assert.True(t, cell.Equal(cell.NA[string](), c.Get(1)))
	assert.True(t, cell.Equal(cell.Value("c"), c.Get(2)))
	assert.True(t, cell.Equal(cell.NM[string](), c.Get(3)))
	assert.False(t, c.IsValueAt(3))
}

func TestColumn_BeyondExtentIsNA(t *testing.T) {
	c := buildSample()
	assert.True(t, cell.Equal(cell.NA[string](), c.Get(100)))
	assert.False(t, c.IsValueAt(-1))
}

func TestReindex_OutOfRangeIsNA(t *testing.T) {
	c := buildSample()
	view := column.Reindex[string](c, []int{2, -1, 99, 0})
	assert.Equal(t, 4, view.Len())
	assert.True(t, cell.Equal(cell.Value("c"), view.Get(0)))
	assert.True(t, cell.Equal(cell.NA[string](), view.Get(1)))
	assert.True(t, cell.Equal(cell.NA[string](), view.Get(2)))
	assert.True(t, cell.Equal(cell.Value("a"), view.Get(3)))
}

func TestMap_PreservesVariant(t *testing.T) {
	c := buildSample()
	upper := column.Map(c, func(s string) string { return s + s })
	assert.True(t, cell.Equal(cell.Value("aa"), upper.Get(0)))
	assert.True(t, cell.Equal(cell.NA[string](), upper.Get(1)))
	assert.True(t, cell.Equal(cell.NM[string](), upper.Get(3)))
}

func TestCompact_CollapsesViewChain(t *testing.T) {
	c := buildSample()
	reindexed := column.Reindex[string](c, []int{2, 0, 1})
	mapped := column.Map(reindexed, func(s string) int { return len(s) })
	compacted := column.Compact[int](mapped, []int{0, 1, 2})

	assert.Equal(t, 3, compacted.Len())
	assert.True(t, cell.Equal(cell.Value(1), compacted.Get(0))) // "c"
	assert.True(t, cell.Equal(cell.Value(1), compacted.Get(1))) // "a"
	assert.True(t, cell.Equal(cell.NA[int](), compacted.Get(2)))
}

func TestForce_MaterializesOwnExtent(t *testing.T) {
	c := buildSample()
	view := column.Reindex[string](c, []int{3, 2, 1, 0})
	forced := column.Force[string](view)
	assert.Equal(t, 4, forced.Len())
	assert.True(t, cell.Equal(cell.NM[string](), forced.Get(0)))
	assert.True(t, cell.Equal(cell.Value("c"), forced.Get(1)))
}

func TestAlgebra_DivisionByZeroIsNM(t *testing.T) {
	a := column.NewBuilder[int]()
	a.AddValue(10)
	a.AddValue(5)
	a.AddNA()
	colA := a.Result()

	b := column.NewBuilder[int]()
	b.AddValue(2)
	b.AddValue(0)
	b.AddValue(7)
	colB := b.Result()

	quot := column.Div[int](colA, colB, 3)
	assert.True(t, cell.Equal(cell.Value(5), quot.Get(0)))
	assert.True(t, cell.Equal(cell.NM[int](), quot.Get(1)))
	assert.True(t, cell.Equal(cell.NA[int](), quot.Get(2)))
}

func TestAlgebra_AddSubMul(t *testing.T) {
	a := column.NewBuilder[int]()
	a.AddValue(3)
	a.AddValue(4)
	colA := a.Result()

	b := column.NewBuilder[int]()
	b.AddValue(2)
	b.AddValue(5)
	colB := b.Result()

	assert.True(t, cell.Equal(cell.Value(5), column.Add[int](colA, colB, 2).Get(0)))
	assert.True(t, cell.Equal(cell.Value(1), column.Sub[int](colA, colB, 2).Get(0)))
	assert.True(t, cell.Equal(cell.Value(20), column.Mul[int](colA, colB, 2).Get(1)))
}
