package graphcalc

import (
	"fmt"
	"strings"

	"github.com/vdobler/graphcalc/expr"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultRoughLineCount is the number of grid lines aimed at per axis.
const DefaultRoughLineCount = 20

// GraphRange is a Range of a displayed axis (or of the heat map values)
// together with how to draw it.
type GraphRange struct {
	Range

	// Pen draws the zero axis and colors the labels, GridPen draws the
	// grid lines.
	Pen     draw.LineStyle
	GridPen draw.LineStyle

	// Label is an optional caption.
	Label string

	// AutoRange requests Lo and Hi to be taken from the data.
	AutoRange bool

	// RoughLineCount is the desired number of grid lines.
	RoughLineCount int

	// Expr is the range expression this range was built from, nil for the
	// default range.
	Expr expr.Expr
}

// InvalidRangeShapeError is returned for range expressions which are none
// of lo..hi, lo-hi or lo..-hi.
type InvalidRangeShapeError struct {
	Axis string
	Expr expr.Expr
}

// Error returns the error string representation for InvalidRangeShapeError.
func (e *InvalidRangeShapeError) Error() string {
	return fmt.Sprintf("invalid range for %s: %s", e.Axis, e.Expr)
}

// NewGraphRange builds the range of axis from the range expression e,
// spread over pxCount pixels. The bounds may use the variables in vars.
// A nil e yields the auto ranged default -1..1. An optional prefix
// "axis:" naming the axis (in any case) is skipped.
//
// Attributes of the expression choose the pen as for series, a string
// attribute is the label and an integer attribute the rough line count.
func NewGraphRange(axis string, e expr.Expr, pxCount int, vars *expr.Vars, style Style) (GraphRange, error) {
	if e == nil {
		pen := style.MakePen(nil, -1)
		return GraphRange{
			Range:          NewRange(-1, 1, pxCount),
			Pen:            pen,
			GridPen:        GridPen(pen),
			AutoRange:      true,
			RoughLineCount: DefaultRoughLineCount,
		}, nil
	}

	attrs := e.Attributes()
	body := e
	if c, ok := expr.Calls(body, expr.Colon, 2); ok {
		if id, ok := c.Args[0].(*expr.Identifier); ok && strings.EqualFold(id.Name, axis) {
			body = c.Args[1]
			attrs = append(attrs[:len(attrs):len(attrs)], body.Attributes()...)
		}
	}

	c, ok := body.(*expr.Call)
	if !ok || len(c.Args) != 2 || c.Name != expr.DotDot && c.Name != expr.Sub && c.Name != expr.DotDotNeg {
		return GraphRange{}, &InvalidRangeShapeError{Axis: axis, Expr: e}
	}
	lo, err := expr.EvalVars(c.Args[0], vars)
	if err != nil {
		return GraphRange{}, fmt.Errorf("range for %s: %w", axis, err)
	}
	hi, err := expr.EvalVars(c.Args[1], vars)
	if err != nil {
		return GraphRange{}, fmt.Errorf("range for %s: %w", axis, err)
	}
	if c.Name == expr.DotDotNeg {
		hi = -hi
	}

	pen := style.MakePen(expr.WithAttrs(body, attrs...), -1)
	r := GraphRange{
		Range:          NewRange(lo, hi, pxCount),
		Pen:            pen,
		GridPen:        GridPen(pen),
		AutoRange:      lo >= hi,
		RoughLineCount: DefaultRoughLineCount,
		Expr:           e,
	}
	for _, a := range attrs {
		lit, ok := a.(*expr.Literal)
		if !ok {
			continue
		}
		switch v := lit.Value.(type) {
		case string:
			if r.Label == "" {
				r.Label = v
			}
		case float64:
			if v == float64(int(v)) && v > 0 {
				r.RoughLineCount = int(v)
			}
		case int:
			if v > 0 {
				r.RoughLineCount = v
			}
		}
	}
	return r, nil
}

// WithRange returns g covering r.
func (g GraphRange) WithRange(r Range) GraphRange {
	g.Range = r
	return g
}
