package graphcalc

import (
	"image/color"
	"strings"

	"github.com/vdobler/graphcalc/expr"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a graph is drawn.
type Style struct {
	Background color.Color

	// Label is used for tick labels and captions. Labels are drawn on a
	// LabelBackground box and surrounded by a one pixel Halo.
	Label           draw.TextStyle
	LabelBackground color.Color
	Halo            color.Color

	// AxisColor is the color of axis and grid lines unless the range
	// attributes choose one.
	AxisColor color.Color

	// SeriesColors are cycled through by series index.
	SeriesColors []color.Color

	// Undefined and Overflow color NaN and infinite samples of a heat map.
	Undefined color.Color
	Overflow  color.Color

	// MaxLinePx bounds the pixel y coordinates of function graphs.
	MaxLinePx float64
}

// DefaultStyle returns the style of the graphing calculator with labels in
// a sans serif font of the given size.
func DefaultStyle(fontSize vg.Length) Style {
	font, err := vg.MakeFont("Helvetica", fontSize)
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White

	s.Label.Color = color.Black
	s.Label.Font = font
	s.LabelBackground = color.NRGBA{0xff, 0xff, 0xff, 0x80}
	s.Halo = color.White

	s.AxisColor = colornames.Midnightblue
	s.SeriesColors = []color.Color{
		colornames.Darkgreen, colornames.Teal, colornames.Mediumblue,
		colornames.Mediumpurple, colornames.Deeppink, colornames.Orange,
		colornames.Brown, colornames.Black, colornames.Lawngreen,
		colornames.Darkturquoise, colornames.Dodgerblue, colornames.Fuchsia,
		colornames.Red, colornames.Salmon, colornames.Peachpuff,
	}
	s.Undefined = colornames.Darkgray
	s.Overflow = colornames.Purple
	s.MaxLinePx = 1e7

	return s
}

// ColorByName looks up an SVG color name, ignoring case. "transparent" is
// the fully transparent color.
func ColorByName(name string) (color.Color, bool) {
	name = strings.ToLower(name)
	if name == "transparent" {
		return color.Transparent, true
	}
	c, ok := colornames.Map[name]
	return c, ok
}

var dashStyles = map[string]int{
	"solid":      0,
	"dash":       1,
	"dot":        3,
	"dashdot":    4,
	"dashdotdot": 5,
}

// DashesByName returns the dash pattern of a named dash style, ignoring
// case.
func DashesByName(name string) ([]vg.Length, bool) {
	i, ok := dashStyles[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return plotutil.Dashes(i), true
}

// MakePen derives the line style of a series from the attributes of e:
// identifiers naming a color or a dash style and, for series only, a
// numeric line width. A negative seriesIndex requests an axis pen.
func (s Style) MakePen(e expr.Expr, seriesIndex int) draw.LineStyle {
	pen := draw.LineStyle{
		Color: s.AxisColor,
		Width: vg.Length((seriesIndex+1)%3 + 1),
	}
	if seriesIndex >= 0 {
		pen.Color = s.SeriesColors[seriesIndex%len(s.SeriesColors)]
	}
	if e == nil {
		return pen
	}
	for _, a := range e.Attributes() {
		switch a := a.(type) {
		case *expr.Identifier:
			if c, ok := ColorByName(a.Name); ok {
				pen.Color = c
			} else if d, ok := DashesByName(a.Name); ok {
				pen.Dashes = d
			}
		case *expr.Literal:
			if _, isString := a.Value.(string); isString || seriesIndex < 0 {
				continue
			}
			if w, err := a.Float(); err == nil {
				pen.Width = vg.Length(int(w))
			}
		}
	}
	return pen
}

// GridPen is the pen for grid lines belonging to an axis pen: the axis
// color at half opacity, one pixel wide.
func GridPen(axis draw.LineStyle) draw.LineStyle {
	return draw.LineStyle{
		Color:  withAlpha(axis.Color, 0x80),
		Width:  1,
		Dashes: axis.Dashes,
	}
}

func withAlpha(c color.Color, a uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}

// isTransparent reports whether c is nil or fully transparent.
func isTransparent(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}

// lighten returns the color used for undefined samples of a region fill:
// c/2 + 64 per channel.
func lighten(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{n.R/2 + 64, n.G/2 + 64, n.B/2 + 64, 0xff}
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
