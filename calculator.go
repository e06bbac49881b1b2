package graphcalc

import (
	"errors"
	"fmt"
	"math"

	"github.com/vdobler/graphcalc/expr"
	"gonum.org/v1/gonum/mat"
)

// Mode tells how the results of a calculator are to be drawn.
type Mode int

const (
	// Scalar results are drawn as a curve (1-D) or as heat map or contour
	// lines (2-D).
	Scalar Mode = iota
	// Boolean results fill the region where they are nonzero.
	Boolean
	// Equation results are 1 on the pixels where both sides of the
	// equation are equal and 0 elsewhere.
	Equation
)

func (m Mode) String() string {
	return [...]string{"scalar", "boolean", "equation"}[m]
}

// booleanOps are the top level operators putting a 2-D calculator into
// boolean mode.
var booleanOps = map[string]bool{
	">": true, "<": true, ">=": true, "<=": true, "!=": true,
	"&&": true, "||": true, "^^": true, "and": true, "or": true, "in": true,
}

// A Calculator samples an expression over a pixel grid. It is either a
// *Function1D or a *Function2D.
type Calculator interface {
	// Expr is the sampled expression.
	Expr() expr.Expr
	// Vars are the variables the expression may use.
	Vars() *expr.Vars
	// XRange is the sampled range of x.
	XRange() Range
	// Mode tells how the results are drawn.
	Mode() Mode

	// Run samples the expression. Evaluation errors abort the run.
	Run() error

	// ValueAt returns the result at pixel column x and row y, counted
	// from the bottom. y is ignored by 1-D calculators. It reports false
	// outside of the results or before Run.
	ValueAt(x, y int) (float64, bool)

	// WithExpr, WithVars and WithXRange return a new calculator, not yet
	// run, differing in one aspect.
	WithExpr(e expr.Expr) Calculator
	WithVars(v *expr.Vars) Calculator
	WithXRange(r Range) Calculator

	calculator()
}

// ErrEmptyRange is returned for ranges without pixels.
var ErrEmptyRange = errors.New("range has no pixels")

// IsEquation reports whether e is an equation l = r or l == r and returns
// both sides.
func IsEquation(e expr.Expr) (l, r expr.Expr, ok bool) {
	c, ok := expr.Calls(e, expr.Assign, 2)
	if !ok {
		c, ok = expr.Calls(e, expr.Equal, 2)
	}
	if !ok {
		return nil, nil, false
	}
	return c.Args[0], c.Args[1], true
}

// NewCalculator classifies e and returns the calculator sampling it.
// Equations and expressions depending on y, directly or through a
// variable, are sampled over both ranges by a *Function2D, everything else
// over xRange by a *Function1D.
//
// A dry run at x = y = 0 finds the use of y and reports unknown
// identifiers and unsupported operations early.
func NewCalculator(e expr.Expr, vars *expr.Vars, xRange, yRange Range) (Calculator, error) {
	if xRange.PxCount < 1 || yRange.PxCount < 1 {
		return nil, ErrEmptyRange
	}
	probe := e
	l, r, isEquation := IsEquation(e)
	if isEquation {
		probe = expr.NewCall(expr.Sub, l, r)
	}
	p := &expr.Point{Axes: expr.XYAxes, Vars: vars}
	if _, err := expr.Eval(probe, p); err != nil {
		return nil, err
	}
	if !isEquation && !p.UsedY {
		return &Function1D{expr: e, vars: vars, xRange: xRange}, nil
	}
	return &Function2D{expr: e, vars: vars, xRange: xRange, yRange: yRange, mode: modeOf(e)}, nil
}

func modeOf(e expr.Expr) Mode {
	if _, _, ok := IsEquation(e); ok {
		return Equation
	}
	if c, ok := e.(*expr.Call); ok && len(c.Args) == 2 && booleanOps[c.Name] {
		return Boolean
	}
	return Scalar
}

// ----------------------------------------------------------------------------
// Function1D

// Function1D samples a function of x.
type Function1D struct {
	expr   expr.Expr
	vars   *expr.Vars
	xRange Range

	// Results holds one sample per pixel column after Run.
	Results []float64
}

func (f *Function1D) calculator()      {}
func (f *Function1D) Expr() expr.Expr  { return f.expr }
func (f *Function1D) Vars() *expr.Vars { return f.vars }
func (f *Function1D) XRange() Range    { return f.xRange }
func (f *Function1D) Mode() Mode       { return Scalar }

// Run samples XRange.PxCount values starting at Lo in steps of StepSize.
func (f *Function1D) Run() error {
	results := make([]float64, f.xRange.PxCount)
	p := &expr.Point{Axes: expr.XAxis, Vars: f.vars}
	for i := range results {
		p.X = f.xRange.Sample(i)
		v, err := expr.Eval(f.expr, p)
		if err != nil {
			return fmt.Errorf("%s at x=%g: %w", f.expr, p.X, err)
		}
		results[i] = v
	}
	f.Results = results
	return nil
}

// ValueAt returns sample x.
func (f *Function1D) ValueAt(x, _ int) (float64, bool) {
	if x < 0 || x >= len(f.Results) {
		return 0, false
	}
	return f.Results[x], true
}

func (f *Function1D) WithExpr(e expr.Expr) Calculator {
	return &Function1D{expr: e, vars: f.vars, xRange: f.xRange}
}

func (f *Function1D) WithVars(v *expr.Vars) Calculator {
	return &Function1D{expr: f.expr, vars: v, xRange: f.xRange}
}

func (f *Function1D) WithXRange(r Range) Calculator {
	return &Function1D{expr: f.expr, vars: f.vars, xRange: r}
}

// ----------------------------------------------------------------------------
// Function2D

// Function2D samples a function of x and y or an equation.
type Function2D struct {
	expr   expr.Expr
	vars   *expr.Vars
	xRange Range
	yRange Range
	mode   Mode

	// Results has one row per pixel row, bottom row first, and one column
	// per pixel column after Run.
	Results *mat.Dense
}

func (f *Function2D) calculator()      {}
func (f *Function2D) Expr() expr.Expr  { return f.expr }
func (f *Function2D) Vars() *expr.Vars { return f.vars }
func (f *Function2D) XRange() Range    { return f.xRange }
func (f *Function2D) YRange() Range    { return f.yRange }
func (f *Function2D) Mode() Mode       { return f.mode }

// Run samples the expression on the pixel grid. Equations l = r are
// sampled as l - r on a grid shifted by half a step with one extra sample
// per axis; a pixel is on (1) if the sign of the difference is zero at its
// lower left corner or changes towards any of the other three corners.
// Pixels with an undefined corner stay off.
func (f *Function2D) Run() error {
	if f.mode != Equation {
		m, err := f.sample(f.expr, false)
		if err != nil {
			return err
		}
		f.Results = m
		return nil
	}

	l, r, _ := IsEquation(f.expr)
	d, err := f.sample(expr.NewCall(expr.Sub, l, r), true)
	if err != nil {
		return err
	}
	rows, cols := f.yRange.PxCount, f.xRange.PxCount
	results := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			a, b, c, e := d.At(i, j), d.At(i+1, j), d.At(i, j+1), d.At(i+1, j+1)
			if math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(c) || math.IsNaN(e) {
				continue
			}
			s := signOf(a)
			if s == 0 || s != signOf(b) || s != signOf(c) || s != signOf(e) {
				results.Set(i, j, 1)
			}
		}
	}
	f.Results = results
	return nil
}

func signOf(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func (f *Function2D) sample(e expr.Expr, shifted bool) (*mat.Dense, error) {
	rows, cols := f.yRange.PxCount, f.xRange.PxCount
	var offX, offY float64
	if shifted {
		rows++
		cols++
		offX, offY = f.xRange.StepSize/2, f.yRange.StepSize/2
	}
	m := mat.NewDense(rows, cols, nil)
	p := &expr.Point{Axes: expr.XYAxes, Vars: f.vars}
	for i := 0; i < rows; i++ {
		p.Y = f.yRange.Sample(i) - offY
		row := m.RawRowView(i)
		for j := range row {
			p.X = f.xRange.Sample(j) - offX
			v, err := expr.Eval(e, p)
			if err != nil {
				return nil, fmt.Errorf("%s at (%g, %g): %w", f.expr, p.X, p.Y, err)
			}
			row[j] = v
		}
	}
	return m, nil
}

// ValueAt returns the result at pixel column x and row y.
func (f *Function2D) ValueAt(x, y int) (float64, bool) {
	if f.Results == nil {
		return 0, false
	}
	rows, cols := f.Results.Dims()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return 0, false
	}
	return f.Results.At(y, x), true
}

func (f *Function2D) WithExpr(e expr.Expr) Calculator {
	c := *f
	c.expr, c.mode, c.Results = e, modeOf(e), nil
	return &c
}

func (f *Function2D) WithVars(v *expr.Vars) Calculator {
	c := *f
	c.vars, c.Results = v, nil
	return &c
}

func (f *Function2D) WithXRange(r Range) Calculator {
	c := *f
	c.xRange, c.Results = r, nil
	return &c
}

// WithYRange returns a copy of f sampling y over r.
func (f *Function2D) WithYRange(r Range) *Function2D {
	c := *f
	c.yRange, c.Results = r, nil
	return &c
}
