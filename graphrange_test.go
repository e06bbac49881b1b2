package graphcalc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vdobler/graphcalc/expr"
	"github.com/vdobler/graphcalc/parse"
	"golang.org/x/image/colornames"
)

var graphRangeTests = []struct {
	axis   string
	src    string
	lo, hi float64
	auto   bool
}{
	{"x", "-5..5", -5, 5, false},
	{"x", "x: -5..5", -5, 5, false},
	{"y", "Y: 0..10", 0, 10, false},
	{"x", "-5-5", -5, 5, false},
	{"x", "-3..-1", -3, -1, false},
	{"x", "1..-2", 1, -2, true},
	{"x", "a..2*a", 3, 6, false},
	{"z", "-tau..tau", -6.283185307179586, 6.283185307179586, false},
	{"x", "2..2", 2, 2, true},
}

func TestNewGraphRange(t *testing.T) {
	style := DefaultStyle(10)
	vars := mustVars(t, "a = 3")
	for _, tc := range graphRangeTests {
		t.Run(tc.src, func(t *testing.T) {
			e, err := parse.Expr(tc.src)
			require.NoError(t, err)
			r, err := NewGraphRange(tc.axis, e, 200, vars, style)
			require.NoError(t, err)
			require.InDelta(t, tc.lo, r.Lo, 1e-12)
			require.InDelta(t, tc.hi, r.Hi, 1e-12)
			require.Equal(t, tc.auto, r.AutoRange)
			require.Equal(t, 200, r.PxCount)
			require.Equal(t, DefaultRoughLineCount, r.RoughLineCount)
			require.Equal(t, e, r.Expr)
		})
	}
}

func TestNewGraphRangeDefault(t *testing.T) {
	r, err := NewGraphRange("x", nil, 50, nil, DefaultStyle(10))
	require.NoError(t, err)
	require.Equal(t, -1.0, r.Lo)
	require.Equal(t, 1.0, r.Hi)
	require.True(t, r.AutoRange)
	require.Nil(t, r.Expr)
}

func TestNewGraphRangeAttributes(t *testing.T) {
	e, err := parse.Expr(`@red @dash @"Time" @5 x: 0..10`)
	require.NoError(t, err)
	r, err := NewGraphRange("x", e, 100, nil, DefaultStyle(10))
	require.NoError(t, err)
	require.Equal(t, "Time", r.Label)
	require.Equal(t, 5, r.RoughLineCount)
	require.Equal(t, colornames.Red, toRGBA(r.Pen.Color))
	require.NotEmpty(t, r.Pen.Dashes)
	require.Equal(t, r.Pen.Dashes, r.GridPen.Dashes)
	require.EqualValues(t, 1, r.Pen.Width, "numeric attributes of ranges count grid lines")
}

func TestNewGraphRangeErrors(t *testing.T) {
	style := DefaultStyle(10)
	for _, src := range []string{"5", "y: 0..1", "0 * 1", "(0, 1)"} {
		t.Run(src, func(t *testing.T) {
			e, err := parse.Expr(src)
			require.NoError(t, err)
			_, err = NewGraphRange("x", e, 100, nil, style)
			var shape *InvalidRangeShapeError
			require.True(t, errors.As(err, &shape), "%v", err)
			require.Equal(t, "x", shape.Axis)
		})
	}

	e, err := parse.Expr("0..b")
	require.NoError(t, err)
	_, err = NewGraphRange("x", e, 100, mustVars(t, ""), style)
	var unknown *expr.UnknownIdentifierError
	require.True(t, errors.As(err, &unknown), "%v", err)
	require.Equal(t, "b", unknown.Name)
}
