package graphcalc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vdobler/graphcalc/expr"
	"github.com/vdobler/graphcalc/parse"
)

func mustVars(t *testing.T, src string) *expr.Vars {
	t.Helper()
	defs, err := parse.Statements(src)
	require.NoError(t, err)
	vars, err := expr.ParseVarList(append(DefaultVariables(), defs...))
	require.NoError(t, err)
	return vars
}

func mustCalc(t *testing.T, src string, vars *expr.Vars, x, y Range) Calculator {
	t.Helper()
	e, err := parse.Expr(src)
	require.NoError(t, err)
	c, err := NewCalculator(e, vars, x, y)
	require.NoError(t, err)
	return c
}

var classifyTests = []struct {
	src  string
	twoD bool
	mode Mode
}{
	{"sin(x)+x^2/10-1", false, Scalar},
	{"x^2+y^2==4^2", true, Equation},
	{"x^2+y^2 = 4^2", true, Equation},
	{"x^2+y^2<4^2", true, Boolean},
	{"x > 0 && y > 0", true, Boolean},
	{"x*y", true, Scalar},
	{"r", true, Scalar},
	{"a*x", false, Scalar},
	{"x > 0", false, Scalar},
	{"pi", false, Scalar},
}

func TestNewCalculatorClassifies(t *testing.T) {
	vars := mustVars(t, "a = 2; r = sqrt(x**2+y**2)")
	x, y := NewRange(-10, 10, 21), NewRange(-10, 10, 21)
	for _, tc := range classifyTests {
		t.Run(tc.src, func(t *testing.T) {
			c := mustCalc(t, tc.src, vars, x, y)
			_, twoD := c.(*Function2D)
			require.Equal(t, tc.twoD, twoD)
			require.Equal(t, tc.mode, c.Mode())
		})
	}
}

func TestNewCalculatorErrors(t *testing.T) {
	vars := mustVars(t, "")
	x := NewRange(-1, 1, 10)

	e, err := parse.Expr("x + foo")
	require.NoError(t, err)
	_, err = NewCalculator(e, vars, x, x)
	var unknown *expr.UnknownIdentifierError
	require.True(t, errors.As(err, &unknown), "%v", err)
	require.Equal(t, "foo", unknown.Name)

	_, err = NewCalculator(e, vars, x, NewRange(-1, 1, 0))
	require.ErrorIs(t, err, ErrEmptyRange)
}

func TestFunction1DSamplesArithmeticSequence(t *testing.T) {
	const lo, hi, n = -2.0, 3.0, 11
	c := mustCalc(t, "x", mustVars(t, ""), NewRange(lo, hi, n), NewRange(0, 1, 5))
	require.NoError(t, c.Run())

	f := c.(*Function1D)
	require.Len(t, f.Results, n)
	step := (hi - lo) / (n - 1)
	for i, v := range f.Results {
		require.InDelta(t, lo+float64(i)*step, v, 1e-12, "sample %d", i)
	}

	v, ok := c.ValueAt(n-1, 99)
	require.True(t, ok)
	require.InDelta(t, hi, v, 1e-12)
	_, ok = c.ValueAt(n, 0)
	require.False(t, ok)
}

func TestFunction1DRunError(t *testing.T) {
	// The dry run at x = 0 takes the else branch.
	c := mustCalc(t, "x > 1 ? foo : 0", mustVars(t, ""), NewRange(0, 2, 5), NewRange(0, 1, 5))
	err := c.Run()
	var unknown *expr.UnknownIdentifierError
	require.True(t, errors.As(err, &unknown), "%v", err)
}

func TestFunction2DScalarLayout(t *testing.T) {
	x, y := NewRange(0, 4, 5), NewRange(10, 12, 3)
	c := mustCalc(t, "x + 100*y", mustVars(t, ""), x, y)
	require.NoError(t, c.Run())

	f := c.(*Function2D)
	rows, cols := f.Results.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 5, cols)

	// Row 0 is the bottom row.
	v, ok := c.ValueAt(2, 0)
	require.True(t, ok)
	require.InDelta(t, 2+100*10, v, 1e-9)
	v, ok = c.ValueAt(4, 2)
	require.True(t, ok)
	require.InDelta(t, 4+100*12, v, 1e-9)
}

func TestFunction2DCircleIsSparseRing(t *testing.T) {
	const n = 101
	r := NewRange(-10, 10, n)
	c := mustCalc(t, "x**2+y**2 = 16", mustVars(t, ""), r, r)
	require.Equal(t, Equation, c.Mode())
	require.NoError(t, c.Run())

	on := func(col, row int) bool {
		v, ok := c.ValueAt(col, row)
		return ok && v == 1
	}

	count := 0
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !on(col, row) {
				continue
			}
			count++
			neighbours := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if (dr != 0 || dc != 0) && on(col+dc, row+dr) {
						neighbours++
					}
				}
			}
			require.NotZero(t, neighbours, "isolated pixel (%d, %d)", col, row)
			require.Less(t, neighbours, 8, "filled around (%d, %d)", col, row)
		}
	}
	// A circle of radius 20 pixels crosses about 160 cells.
	require.Greater(t, count, 100)
	require.Less(t, count, 400)

	require.False(t, on(50, 50), "center")
	require.True(t, on(70, 50), "(4, 0)")
	require.True(t, on(50, 30), "(0, -4)")
	require.False(t, on(0, 0), "corner")
}

func TestFunction2DEquationIgnoresUndefinedEdge(t *testing.T) {
	r := NewRange(-2, 2, 41)
	c := mustCalc(t, "sqrt(x) = 1", mustVars(t, ""), r, r)
	require.NoError(t, c.Run())

	for row := 0; row < 41; row++ {
		for col := 0; col < 41; col++ {
			v, ok := c.ValueAt(col, row)
			require.True(t, ok)
			// Only column 30, x = 1, straddles the root.
			want := 0.0
			if col == 30 {
				want = 1
			}
			require.Equal(t, want, v, "pixel (%d, %d), x = %g", col, row, r.Sample(col))
		}
	}
}

func TestCalculatorWith(t *testing.T) {
	vars := mustVars(t, "")
	x, y := NewRange(-1, 1, 4), NewRange(-1, 1, 3)
	c := mustCalc(t, "x*y", vars, x, y)
	require.NoError(t, c.Run())

	b := c.WithExpr(expr.NewCall(">", expr.Ident("x"), expr.Ident("y")))
	require.Equal(t, Boolean, b.Mode())
	_, ok := b.ValueAt(0, 0)
	require.False(t, ok, "not run yet")

	wide := c.WithXRange(NewRange(-2, 2, 8))
	require.NoError(t, wide.Run())
	require.Equal(t, 8, wide.XRange().PxCount)
	require.Equal(t, 4, c.XRange().PxCount)

	g := c.(*Function2D).WithYRange(NewRange(0, 1, 2))
	require.NoError(t, g.Run())
	rows, _ := g.Results.Dims()
	require.Equal(t, 2, rows)
}
