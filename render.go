package graphcalc

import (
	"context"
	"fmt"
	imgdraw "image/draw"

	"github.com/vdobler/graphcalc/logger"
	"gonum.org/v1/plot/vg/draw"
)

// OutputState bundles everything needed to draw one frame.
type OutputState struct {
	Calcs                  []Calculator
	XRange, YRange, ZRange GraphRange

	// Image receives the frame.
	Image imgdraw.Image

	Style Style
}

// Run runs all calculators.
func (o *OutputState) Run(ctx context.Context) error {
	for i, c := range o.Calcs {
		if err := c.Run(); err != nil {
			return err
		}
		logger.Tracef(ctx, "calculator %d (%s, %T) done", i, c.Mode(), c)
	}
	return nil
}

// Render draws the results of the calculators into o.Image. The calculators
// must have been run.
//
// The frame is built in layers: an auto ranged Y axis is fitted to the
// 1-D results, then at most one heat map is drawn for the first scalar 2-D
// calculator, then every other series, and finally the grid lines and
// labels. Further scalar 2-D calculators are drawn as contour lines.
func (o *OutputState) Render(ctx context.Context) error {
	if o.Image == nil {
		return fmt.Errorf("no image to render into")
	}
	b := o.Image.Bounds()
	w, h := b.Dx(), b.Dy()

	if o.YRange.AutoRange && o.allOneD() {
		y := Interval{-0.5, 1}
		for _, c := range o.Calcs {
			y.Update(c.(*Function1D).Results...)
		}
		o.YRange.Range = NewRange(y.Min, y.Max, o.YRange.PxCount)
		logger.Debugf(ctx, "auto Y range %v", o.YRange.Range)
	}

	panel := NewPanel(w, h, o.XRange.Range, o.YRange.Range, o.Style.Background)

	heat := o.heatMap()
	if heat != nil {
		o.ZRange.AutoRangeData(heat.Results)
		o.drawHeatMap(panel, heat)
	}

	for i, c := range o.Calcs {
		if f, ok := c.(*Function2D); ok && f == heat {
			continue
		}
		o.drawSeries(panel, c, i)
	}

	o.drawGrid(panel)
	logger.TraceDump(ctx, "rendered ranges", o.XRange.Range, o.YRange.Range, o.ZRange.Range)

	panel.CopyTo(o.Image)
	return nil
}

func (o *OutputState) allOneD() bool {
	for _, c := range o.Calcs {
		if _, ok := c.(*Function1D); !ok {
			return false
		}
	}
	return true
}

func (o *OutputState) heatMap() *Function2D {
	for _, c := range o.Calcs {
		if f, ok := c.(*Function2D); ok && f.Mode() == Scalar {
			return f
		}
	}
	return nil
}

func (o *OutputState) drawHeatMap(panel *Panel, f *Function2D) {
	heat := Heat()
	undefined, overflow := toRGBA(o.Style.Undefined), toRGBA(o.Style.Overflow)
	_, h := panel.Size()
	rows, _ := f.Results.Dims()
	for y := 0; y < rows; y++ {
		for x, v := range f.Results.RawRowView(y) {
			panel.SetPixel(x, h-1-y, heat.Color(o.ZRange.Range, v, undefined, overflow))
		}
	}
}

func (o *OutputState) drawSeries(panel *Panel, c Calculator, index int) {
	pen := o.Style.MakePen(c.Expr(), index)
	switch c := c.(type) {
	case *Function1D:
		Path{Y: c.Results, MaxPx: o.Style.MaxLinePx, Style: pen}.Draw(panel)
	case *Function2D:
		if c.Mode() != Scalar {
			if !isTransparent(pen.Color) {
				Region{Data: c.Results, Color: pen.Color}.Draw(panel)
			}
			return
		}
		o.ZRange.AutoRangeData(c.Results)
		part := NewPartitioner(o.ZRange)
		if !isTransparent(pen.Color) {
			on := toRGBA(pen.Color)
			_, h := panel.Size()
			part.Contours(c.Results, func(col, row int) {
				panel.SetPixel(col, h-1-row, on)
			})
		}
		w, _ := panel.Size()
		Text{
			X:      float64(w) / 2,
			Y:      5,
			Text:   fmt.Sprintf("Contour interval: %s", formatG(part.Width, 7)),
			Color:  pen.Color,
			XAlign: draw.XCenter,
			YAlign: draw.YTop,
		}.Draw(panel, o.Style)
	}
}

// drawGrid draws grid lines, the zero axes and the tick labels.
func (o *OutputState) drawGrid(panel *Panel) {
	for _, t := range Ticks(o.XRange) {
		VLine{Col: o.XRange.ValueToPx(t.Value), Style: o.XRange.GridPen}.Draw(panel)
	}
	if o.XRange.Lo <= 0 && 0 <= o.XRange.Hi {
		VLine{Col: o.XRange.ValueToPx(0), Style: o.XRange.Pen}.Draw(panel)
	}
	for _, t := range Ticks(o.YRange) {
		HLine{Row: panel.RowOf(t.Value), Style: o.YRange.GridPen}.Draw(panel)
	}
	if o.YRange.Lo <= 0 && 0 <= o.YRange.Hi {
		HLine{Row: panel.RowOf(0), Style: o.YRange.Pen}.Draw(panel)
	}

	for _, l := range o.tickLabels(panel) {
		l.Draw(panel, o.Style)
	}
}

// tickLabels places the tick labels of a w×h frame. X labels sit at the
// bottom edge, right of the first 20 pixels, and are skipped where they
// would overlap the previous one. Y labels sit at the left edge and only
// for 10 < py < h-40, away from the top and the X labels.
func (o *OutputState) tickLabels(panel *Panel) []Text {
	_, h := panel.Size()
	var labels []Text

	lastPx, lastWidth := -1000.0, 0.0
	for _, t := range Ticks(o.XRange) {
		px := o.XRange.ValueToPx(t.Value)
		if px <= 20 || px-lastPx <= lastWidth {
			continue
		}
		l := Text{
			X: px, Y: float64(h - 4), Text: t.Label, Color: o.XRange.Pen.Color,
			XAlign: draw.XCenter, YAlign: draw.YBottom,
		}
		labels = append(labels, l)
		lastPx, lastWidth = px, l.Width(o.Style)
	}

	for _, t := range Ticks(o.YRange) {
		py := float64(h-1) - o.YRange.ValueToPx(t.Value)
		if py <= 10 || py >= float64(h-40) {
			continue
		}
		labels = append(labels, Text{
			X: 4, Y: py, Text: t.Label, Color: o.YRange.Pen.Color,
			XAlign: draw.XLeft, YAlign: draw.YCenter,
		})
	}
	return labels
}
