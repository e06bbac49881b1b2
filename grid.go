package graphcalc

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
)

// maxTicks bounds the number of grid lines of one axis.
const maxTicks = 10000

// ChooseSpacing returns a nice interval for about rough grid lines between
// lo and hi and the position of the first line, the smallest multiple of
// interval not below lo.
//
// Starting from the power of ten covering the whole span the interval is
// multiplied by 0.5, 0.5 and 0.4 in turn, which walks through the
// sequence 10, 5, 2.5, 1 of each decade, until about rough lines fit.
// An empty or reversed span yields interval 1.
func ChooseSpacing(lo, hi float64, rough int) (interval, first float64) {
	dif := hi - lo
	if dif <= 0 {
		return 1, lo
	}
	interval = math.Pow(10, math.Ceil(math.Log10(dif)))
	for lines, third := 1.0, 0; lines < float64(rough); third = (third + 1) % 3 {
		ratio := 0.5
		if third == 2 {
			ratio = 0.4
		}
		interval *= ratio
		lines /= ratio
		if interval > dif {
			lines = 1
		}
	}
	return interval, math.Ceil(lo/interval) * interval
}

// Spacing returns the grid interval and first grid line of g.
func (g GraphRange) Spacing() (interval, first float64) {
	return ChooseSpacing(g.Lo, g.Hi, g.RoughLineCount)
}

// Ticks lists the grid lines of g from the first line up to Hi, labeled
// with up to 7 significant digits.
func Ticks(g GraphRange) []plot.Tick {
	interval, first := g.Spacing()
	var ticks []plot.Tick
	for i := 0; i < maxTicks; i++ {
		v := first + float64(i)*interval
		if !(v <= g.Hi) {
			break
		}
		if math.Abs(v) < interval*1e-9 {
			v = 0
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: formatG(v, 7)})
	}
	return ticks
}

// AutoRangeData sets Lo and Hi of an auto ranged g to the extent of the
// finite values in data, or to -1..1 if there are none.
func (g *GraphRange) AutoRangeData(data *mat.Dense) {
	if data == nil || !g.AutoRange {
		return
	}
	i := unsetInterval()
	i.UpdateDense(data)
	if !i.IsSet() {
		i = Interval{-1, 1}
	}
	g.Range = NewRange(i.Min, i.Max, g.PxCount)
}
