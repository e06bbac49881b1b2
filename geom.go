package graphcalc

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Path

// Path draws the samples of a function of x as connected line segments, one
// sample per pixel column. The line is interrupted at NaN and infinite
// samples; a sample without finite neighbours becomes a horizontal dash as
// long as the line is wide. Pixel rows beyond ±MaxPx are clamped.
type Path struct {
	Y     []float64
	MaxPx float64
	Style draw.LineStyle
}

// Draw draws p onto panel.
func (p Path) Draw(panel *Panel) {
	if len(p.Y) == 0 || !(panel.Y.Lo < panel.Y.Hi) {
		return
	}
	var run []vg.Point
	flush := func() {
		switch len(run) {
		case 0:
			return
		case 1:
			half := max(p.Style.Width, 1) / 2
			dot := run[0]
			run = []vg.Point{{X: dot.X - half, Y: dot.Y}, {X: dot.X + half, Y: dot.Y}}
		}
		panel.Canvas.StrokeLines(p.Style, run)
		run = nil
	}
	for x, v := range p.Y {
		row := panel.RowOf(v)
		if math.IsNaN(row) || math.IsInf(row, 0) {
			flush()
			continue
		}
		if p.MaxPx > 0 {
			row = clampF(row, -p.MaxPx, p.MaxPx)
		}
		run = append(run, panel.MapPx(float64(x), row))
	}
	flush()
}

// ----------------------------------------------------------------------------
// Region

// Region paints every nonzero sample of a 2-D grid, bottom row first, with
// Color. NaN samples get the lightened color.
type Region struct {
	Data  *mat.Dense
	Color color.Color
}

// Draw draws r onto panel.
func (r Region) Draw(panel *Panel) {
	on, undefined := toRGBA(r.Color), lighten(r.Color)
	_, h := panel.Size()
	rows, _ := r.Data.Dims()
	for y := 0; y < rows; y++ {
		for x, d := range r.Data.RawRowView(y) {
			switch {
			case math.IsNaN(d):
				panel.SetPixel(x, h-1-y, undefined)
			case d != 0:
				panel.SetPixel(x, h-1-y, on)
			}
		}
	}
}

// ----------------------------------------------------------------------------
// HLine and VLine

// HLine draws a horizontal line across the panel at pixel row Row.
type HLine struct {
	Row   float64
	Style draw.LineStyle
}

// Draw draws h onto panel.
func (h HLine) Draw(panel *Panel) {
	w, _ := panel.Size()
	left, right := panel.MapPx(0, h.Row), panel.MapPx(float64(w), h.Row)
	panel.Canvas.StrokeLine2(h.Style, left.X, left.Y, right.X, right.Y)
}

// VLine draws a vertical line across the panel at pixel column Col.
type VLine struct {
	Col   float64
	Style draw.LineStyle
}

// Draw draws v onto panel.
func (v VLine) Draw(panel *Panel) {
	_, h := panel.Size()
	top, bottom := panel.MapPx(v.Col, 0), panel.MapPx(v.Col, float64(h))
	panel.Canvas.StrokeLine2(v.Style, top.X, top.Y, bottom.X, bottom.Y)
}

// ----------------------------------------------------------------------------
// Text

// Text is a label at pixel position (X, Y). The alignments are relative to
// the text box as in draw.TextStyle: XAlign draw.XCenter centers the text
// horizontally on X, YAlign draw.YTop hangs the text below Y.
type Text struct {
	X, Y   float64
	Text   string
	Color  color.Color
	XAlign draw.XAlignment
	YAlign draw.YAlignment
}

// Width is the width of t in pixels when drawn in style s.
func (t Text) Width(s Style) float64 {
	return float64(s.Label.Font.Width(t.Text))
}

// Draw draws t onto panel in style s on a translucent box with a halo.
func (t Text) Draw(panel *Panel, s Style) {
	sty := s.Label
	sty.XAlign, sty.YAlign = draw.XLeft, draw.YBottom

	w := sty.Font.Width(t.Text)
	h := sty.Font.Extents().Height
	at := panel.MapPx(t.X, t.Y)
	corner := vg.Point{X: at.X + w*vg.Length(t.XAlign), Y: at.Y + h*vg.Length(t.YAlign)}
	box := vg.Rectangle{Min: corner, Max: vg.Point{X: corner.X + w, Y: corner.Y + h}}

	panel.Canvas.SetColor(s.LabelBackground)
	panel.Canvas.Fill(box.Path())

	sty.Color = s.Halo
	for _, d := range []vg.Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}} {
		panel.Canvas.FillText(sty, corner.Add(d), t.Text)
	}
	sty.Color = t.Color
	panel.Canvas.FillText(sty, corner, t.Text)
}
