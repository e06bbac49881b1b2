package graphcalc

import "gonum.org/v1/plot/vg"

// linear maps x from the interval from to the interval to.
func linear(from, to Interval, x float64) float64 {
	return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
}

// pixelTrans maps pixel positions of an image of height h, counted from the
// top left corner, to canvas points with the origin in the bottom left
// corner. Pixel centers lie at half units.
type pixelTrans struct {
	h float64
}

func (t pixelTrans) point(px, py float64) vg.Point {
	return vg.Point{X: vg.Length(px + 0.5), Y: vg.Length(t.h - py - 0.5)}
}

// top maps a canvas y coordinate back to a pixel row.
func (t pixelTrans) top(y vg.Length) float64 {
	return t.h - float64(y) - 0.5
}
