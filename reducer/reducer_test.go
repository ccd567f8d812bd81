package reducer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tabulath/cell"
	"github.com/katalvlaran/tabulath/column"
	"github.com/katalvlaran/tabulath/reducer"
)

// buildIntColumn builds a Dense[int] from appends described as either
// an int value, "NA", or "NM".
func buildIntColumn(t *testing.T, appends ...any) column.Column[int] {
	t.Helper()
	b := column.NewBuilder[int]()
	for _, a := range appends {
		switch v := a.(type) {
		case int:
			b.AddValue(v)
		case string:
			switch v {
			case "NA":
				b.AddNA()
			case "NM":
				b.AddNM()
			default:
				t.Fatalf("unexpected token %q", v)
			}
		}
	}
	return b.Result()
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestCount_IgnoresNM(t *testing.T) {
	col := buildIntColumn(t, 1, "NM", "NA", 2, 3)
	got := reducer.Count[int]()(col, seq(5), 0, 5)
	assert.True(t, cell.Equal(cell.Value(3), got))
}

func TestCount_EmptyWindow(t *testing.T) {
	col := buildIntColumn(t)
	got := reducer.Count[int]()(col, nil, 0, 0)
	assert.True(t, cell.Equal(cell.Value(0), got))
}

func TestFirstLast_NMPoisons(t *testing.T) {
	col := buildIntColumn(t, 1, "NM", 3)
	assert.True(t, cell.Equal(cell.NM[int](), reducer.First[int]()(col, seq(3), 0, 3)))
	assert.True(t, cell.Equal(cell.NM[int](), reducer.Last[int]()(col, seq(3), 0, 3)))
}

func TestFirstLast_NoNM(t *testing.T) {
	col := buildIntColumn(t, "NA", 7, 9, "NA")
	assert.True(t, cell.Equal(cell.Value(7), reducer.First[int]()(col, seq(4), 0, 4)))
	assert.True(t, cell.Equal(cell.Value(9), reducer.Last[int]()(col, seq(4), 0, 4)))
}

func TestFirstLast_EmptyIsNA(t *testing.T) {
	col := buildIntColumn(t, "NA", "NA")
	assert.True(t, cell.Equal(cell.NA[int](), reducer.First[int]()(col, seq(2), 0, 2)))
}

func TestFirstN_LastN(t *testing.T) {
	col := buildIntColumn(t, 1, "NA", 2, 3, "NA", 4)
	got := reducer.FirstN[int](2)(col, seq(6), 0, 6)
	v, ok := got.Get()
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)

	gotLast := reducer.LastN[int](2)(col, seq(6), 0, 6)
	v, ok = gotLast.Get()
	assert.True(t, ok)
	assert.Equal(t, []int{3, 4}, v)

	tooMany := reducer.FirstN[int](10)(col, seq(6), 0, 6)
	assert.True(t, tooMany.IsNA())
}

func intOrder(a, b int) int { return a - b }

func TestMaxMin(t *testing.T) {
	col := buildIntColumn(t, 3, "NA", 1, 7, 2)
	assert.True(t, cell.Equal(cell.Value(7), reducer.Max[int](intOrder)(col, seq(5), 0, 5)))
	assert.True(t, cell.Equal(cell.Value(1), reducer.Min[int](intOrder)(col, seq(5), 0, 5)))
}

func TestMonoidReducer_EmptyIsIdentity(t *testing.T) {
	sum := func(a, b int) int { return a + b }
	r := reducer.Monoid[int](0, sum)
	col := buildIntColumn(t, "NA", "NA")
	assert.True(t, cell.Equal(cell.Value(0), r(col, seq(2), 0, 2)))

	col2 := buildIntColumn(t, 2, 3, 4)
	assert.True(t, cell.Equal(cell.Value(9), r(col2, seq(3), 0, 3)))
}

func TestSemigroupReducer_EmptyIsNA(t *testing.T) {
	concat := func(a, b string) string { return a + b }
	r := reducer.Semigroup[string](concat)
	b := column.NewBuilder[string]()
	b.AddNA()
	b.AddNA()
	col := b.Result()
	assert.True(t, r(col, seq(2), 0, 2).IsNA())
}

func TestMean_PlainAverage(t *testing.T) {
	b := column.NewBuilder[float64]()
	b.AddValue(2.0)
	b.AddValue(4.0)
	col := b.Result()
	got := reducer.Mean[float64]()(col, seq(2), 0, 2)
	v, ok := got.Get()
	assert.True(t, ok)
	assert.InDelta(t, 3.0, v, 1e-9)
}

func TestMean_NMPoisons(t *testing.T) {
	b := column.NewBuilder[float64]()
	b.AddValue(10.0)
	b.AddNM()
	col := b.Result()
	got := reducer.Mean[float64]()(col, seq(2), 0, 2)
	assert.True(t, got.IsNM())
}

func TestMedian_OddAndEven(t *testing.T) {
	b := column.NewBuilder[int]()
	for _, v := range []int{5, 1, 4, 2, 3} {
		b.AddValue(v)
	}
	col := b.Result()
	got := reducer.Median[int]()(col, seq(5), 0, 5)
	v, _ := got.Get()
	assert.InDelta(t, 3.0, v, 1e-9)

	b2 := column.NewBuilder[int]()
	for _, v := range []int{1, 2, 3, 4} {
		b2.AddValue(v)
	}
	col2 := b2.Result()
	got2 := reducer.Median[int]()(col2, seq(4), 0, 4)
	v2, _ := got2.Get()
	assert.InDelta(t, 2.5, v2, 1e-9)
}

func TestQuantile_Interpolation(t *testing.T) {
	b := column.NewBuilder[float64]()
	for _, v := range []float64{1, 2, 3, 4, 5} {
		b.AddValue(v)
	}
	col := b.Result()
	got := reducer.Quantile[float64]([]float64{0, 0.5, 1})(col, seq(5), 0, 5)
	v, ok := got.Get()
	assert.True(t, ok)
	assert.InDelta(t, 1.0, v[0], 1e-9)
	assert.InDelta(t, 3.0, v[1], 1e-9)
	assert.InDelta(t, 5.0, v[2], 1e-9)
}

func TestOutliers_TukeyFences(t *testing.T) {
	b := column.NewBuilder[float64]()
	for _, v := range []float64{1, 2, 2, 3, 3, 3, 4, 4, 100} {
		b.AddValue(v)
	}
	col := b.Result()
	got := reducer.Outliers[float64](1.5)(col, seq(9), 0, 9)
	v, ok := got.Get()
	assert.True(t, ok)
	assert.Contains(t, v, 100.0)
	assert.NotContains(t, v, 3.0)
}

func TestUnique(t *testing.T) {
	col := buildIntColumn(t, 1, 2, 1, "NA", 2, 3)
	got := reducer.Unique[int]()(col, seq(6), 0, 6)
	v, ok := got.Get()
	assert.True(t, ok)
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}, 3: {}}, v)
}

func TestUnique_NMPoisons(t *testing.T) {
	col := buildIntColumn(t, 1, "NM")
	got := reducer.Unique[int]()(col, seq(2), 0, 2)
	assert.True(t, got.IsNM())
}

func TestExistsForAll_SkipNM(t *testing.T) {
	col := buildIntColumn(t, 1, "NM", 3, 5)
	exists := reducer.Exists[int](func(v int) bool { return v > 4 })(col, seq(4), 0, 4)
	assert.True(t, cell.Equal(cell.Value(true), exists))

	forAll := reducer.ForAll[int](func(v int) bool { return v > 0 })(col, seq(4), 0, 4)
	assert.True(t, cell.Equal(cell.Value(true), forAll))

	forAllFalse := reducer.ForAll[int](func(v int) bool { return v > 2 })(col, seq(4), 0, 4)
	assert.True(t, cell.Equal(cell.Value(false), forAllFalse))
}

func TestExistsForAll_EmptyWindow(t *testing.T) {
	col := buildIntColumn(t)
	assert.True(t, cell.Equal(cell.Value(false), reducer.Exists[int](func(int) bool { return true })(col, nil, 0, 0)))
	assert.True(t, cell.Equal(cell.Value(true), reducer.ForAll[int](func(int) bool { return false })(col, nil, 0, 0)))
}
