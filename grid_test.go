package graphcalc

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var chooseSpacingTests = []struct {
	lo, hi   float64
	rough    int
	interval float64
	first    float64
}{
	{0, 100, 20, 5, 0},
	{0, 1, 10, 0.1, 0},
	{-3.7, 12.2, 5, 5, 0},
	{-1, 1, 4, 0.5, -1},
	{0.3, 7.9, 20, 0.5, 0.5},
	{3, 3, 20, 1, 3},
	{5, -5, 20, 1, 5},
}

func TestChooseSpacing(t *testing.T) {
	for _, tc := range chooseSpacingTests {
		t.Run(fmt.Sprintf("%g..%g/%d", tc.lo, tc.hi, tc.rough), func(t *testing.T) {
			interval, first := ChooseSpacing(tc.lo, tc.hi, tc.rough)
			require.InDelta(t, tc.interval, interval, 1e-12)
			require.InDelta(t, tc.first, first, 1e-12)
		})
	}
}

func TestChooseSpacingIsNice(t *testing.T) {
	interval, _ := ChooseSpacing(0, 100, 20)
	lines := 100 / interval
	require.GreaterOrEqual(t, lines, 10.0)
	require.LessOrEqual(t, lines, 40.0)

	mantissa := interval / math.Pow(10, math.Floor(math.Log10(interval)))
	require.Contains(t, []float64{1, 2, 2.5, 5}, math.Round(mantissa*10)/10)
}

func TestTicks(t *testing.T) {
	g := GraphRange{Range: NewRange(-1, 1, 100), RoughLineCount: 4}
	var labels []string
	for _, tick := range Ticks(g) {
		labels = append(labels, tick.Label)
	}
	require.Equal(t, []string{"-1", "-0.5", "0", "0.5", "1"}, labels)

	g = GraphRange{Range: NewRange(-0.3, 0.25, 100), RoughLineCount: 10}
	ticks := Ticks(g)
	require.NotEmpty(t, ticks)
	for _, tick := range ticks {
		require.GreaterOrEqual(t, tick.Value, g.Lo)
		require.LessOrEqual(t, tick.Value, g.Hi)
	}
}

func TestAutoRangeData(t *testing.T) {
	data := mat.NewDense(2, 2, []float64{nan, 2, -3, math.Inf(1)})

	g := GraphRange{Range: NewRange(-1, 1, 0), AutoRange: true}
	g.AutoRangeData(data)
	require.Equal(t, -3.0, g.Lo)
	require.Equal(t, 2.0, g.Hi)

	fixed := GraphRange{Range: NewRange(0, 10, 0)}
	fixed.AutoRangeData(data)
	require.Equal(t, 0.0, fixed.Lo)
	require.Equal(t, 10.0, fixed.Hi)

	empty := GraphRange{Range: NewRange(5, 5, 0), AutoRange: true}
	empty.AutoRangeData(mat.NewDense(1, 2, []float64{nan, nan}))
	require.Equal(t, -1.0, empty.Lo)
	require.Equal(t, 1.0, empty.Hi)
}
