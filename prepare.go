package graphcalc

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/vdobler/graphcalc/expr"
	"github.com/vdobler/graphcalc/parse"
)

// Input is what the user typed: formulas to draw, variable definitions and
// up to three ranges for X, Y and Z.
type Input struct {
	Formulas  []expr.Expr
	Variables []expr.Expr
	Ranges    []expr.Expr
}

// ParseInput parses the three text fields of the calculator. Each field
// holds statements separated by semicolons or newlines.
func ParseInput(formulas, variables, ranges string) (Input, error) {
	var in Input
	var err error
	if in.Formulas, err = parse.Statements(formulas); err != nil {
		return Input{}, fmt.Errorf("formula: %w", err)
	}
	if in.Variables, err = parse.Statements(variables); err != nil {
		return Input{}, fmt.Errorf("variables: %w", err)
	}
	if in.Ranges, err = parse.Statements(ranges); err != nil {
		return Input{}, fmt.Errorf("range: %w", err)
	}
	return in, nil
}

// DefaultVariables are the constants every variable list starts with.
func DefaultVariables() []expr.Expr {
	def := func(name string, v float64) expr.Expr {
		return expr.NewCall(expr.Assign, expr.Ident(name), expr.Num(v))
	}
	return []expr.Expr{
		def("pi", math.Pi),
		def("tau", 2*math.Pi),
		def("e", math.E),
		def("phi", 1.6180339887498948),
	}
}

// Prepare validates in and builds the state of one refresh for a frame of
// w×h pixels: the variables, the three ranges and one calculator per
// formula. Nothing is sampled yet.
//
// A missing Y range copies the X range and is auto ranged for functions
// of x only. The Z range has no pixels of its own.
func Prepare(in Input, w, h int, style Style) (*OutputState, error) {
	vars, err := expr.ParseVarList(append(DefaultVariables(), in.Variables...))
	if err != nil {
		return nil, fmt.Errorf("variables: %w", err)
	}

	rangeAt := func(i int) expr.Expr {
		if i < len(in.Ranges) {
			return in.Ranges[i]
		}
		return nil
	}
	xExpr, yExpr := rangeAt(0), rangeAt(1)
	if yExpr == nil {
		yExpr = xExpr
	}

	o := &OutputState{
		Image: image.NewRGBA(image.Rect(0, 0, w, h)),
		Style: style,
	}
	if o.XRange, err = NewGraphRange("x", xExpr, w, vars, style); err != nil {
		return nil, err
	}
	if o.YRange, err = NewGraphRange("y", yExpr, h, vars, style); err != nil {
		return nil, err
	}
	o.YRange.AutoRange = rangeAt(1) == nil
	if o.ZRange, err = NewGraphRange("z", rangeAt(2), 0, vars, style); err != nil {
		return nil, err
	}

	for i, f := range in.Formulas {
		c, err := NewCalculator(f, vars, o.XRange.Range, o.YRange.Range)
		if err != nil {
			return nil, fmt.Errorf("formula %d: %w", i+1, err)
		}
		o.Calcs = append(o.Calcs, c)
	}
	return o, nil
}

// ResultText evaluates each calculator's expression as a plain number,
// with x and y taken from the variables, and joins the values with commas.
// ok is false if an evaluation failed; text is then the error message
// unless some values could be computed.
func ResultText(calcs []Calculator) (text string, ok bool) {
	var values []string
	for _, c := range calcs {
		v, err := expr.EvalVars(c.Expr(), c.Vars())
		if err != nil {
			if len(values) == 0 {
				return err.Error(), false
			}
			return strings.Join(values, ", "), false
		}
		values = append(values, fmt.Sprint(v))
	}
	return strings.Join(values, ", "), true
}

// FormatRanges formats X and Y as range text followed by the Z range
// expression, if any, in the form the ranges field expects.
func FormatRanges(x, y Range, z expr.Expr) string {
	zText := ""
	if z != nil {
		zText = z.String()
	}
	return x.String() + "; " + y.String() + "; " + zText
}

// Zoom returns the ranges text of o with X and Y zoomed by ratio.
func (o *OutputState) Zoom(ratio float64) string {
	return FormatRanges(o.XRange.ZoomedBy(ratio), o.YRange.ZoomedBy(ratio), o.ZRange.Expr)
}

// Pan returns the ranges text of o moved as if the picture was dragged by
// (dx, dy) pixels, with y pointing down.
func (o *OutputState) Pan(dx, dy int) string {
	return FormatRanges(o.XRange.DraggedBy(dx), o.YRange.DraggedBy(-dy), o.ZRange.Expr)
}

// ZoomInRatio and ZoomOutRatio are the zoom steps of the calculator.
var (
	ZoomInRatio  = 1 / math.Sqrt2
	ZoomOutRatio = math.Sqrt2
)
