package graphcalc

import (
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/palette"
)

// heatBands are the colors of the heat map from low to high values.
var heatBands = []color.RGBA{
	colornames.Orange, colornames.Red, colornames.Fuchsia,
	colornames.Royalblue, colornames.White, colornames.Goldenrod,
	colornames.Lime, colornames.Blue, colornames.Black,
}

// heatSteps is the number of interpolated colors per band.
const heatSteps = 16

// HeatPalette is the palette of the heat map, built on first use.
type HeatPalette []color.RGBA

var (
	heatOnce    sync.Once
	heatPalette HeatPalette
)

// Heat returns the shared heat map palette: heatSteps colors blending
// each band into the next.
func Heat() HeatPalette {
	heatOnce.Do(func() {
		p := make(HeatPalette, 0, (len(heatBands)-1)*heatSteps)
		for b := 0; b+1 < len(heatBands); b++ {
			lo, hi := heatBands[b], heatBands[b+1]
			for i := 0; i < heatSteps; i++ {
				mix := func(l, h uint8) uint8 {
					return uint8((int(l)*(heatSteps-i) + int(h)*i) >> 4)
				}
				p = append(p, color.RGBA{mix(lo.R, hi.R), mix(lo.G, hi.G), mix(lo.B, hi.B), 0xff})
			}
		}
		heatPalette = p
	})
	return heatPalette
}

// Colors implements palette.Palette.
func (h HeatPalette) Colors() []color.Color {
	cs := make([]color.Color, len(h))
	for i, c := range h {
		cs[i] = c
	}
	return cs
}

var _ palette.Palette = HeatPalette(nil)

// Color maps v to a palette color by its position in z. Values outside of
// z get the edge colors, NaN gets undefined and infinite values overflow.
func (h HeatPalette) Color(z Range, v float64, undefined, overflow color.RGBA) color.RGBA {
	p := z.WithPxCount(len(h)).ValueToPx(v)
	switch {
	case math.IsNaN(p):
		return undefined
	case math.IsInf(p, 0):
		return overflow
	}
	return h[int(clampF(p, 0, float64(len(h)-1)))]
}

func clampF(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
