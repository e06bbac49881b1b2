package graphcalc

import (
	"fmt"
	"math"
	"testing"
)

var linearTests = []struct {
	a, b    float64 // from
	u, v    float64 // to
	x, want float64
}{
	{10, 20, 10, 20, 12, 12},
	{10, 20, 100, 200, 12, 120},
	{3, 5, 0, 1, 3, 0},
	{3, 5, 0, 1, 4, 0.5},
	{3, 5, 0, 1, 5, 1},
	{3, 5, 1, 0, 5, 0},
	{0, 400, -10, 10, 100, -5},
}

func equal64(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLinear(t *testing.T) {
	for i, tc := range linearTests {
		t.Run(fmt.Sprintf("linear/%d", i), func(t *testing.T) {
			from, to := Interval{tc.a, tc.b}, Interval{tc.u, tc.v}
			if got := linear(from, to, tc.x); !equal64(got, tc.want) {
				t.Errorf("linear(%v,%v,%f) = %f, want %f",
					from, to, tc.x, got, tc.want)
			}
		})
	}
}

func TestPixelTrans(t *testing.T) {
	tr := pixelTrans{h: 100}
	p := tr.point(0, 0)
	if p.X != 0.5 || p.Y != 99.5 {
		t.Errorf("top left pixel maps to %v", p)
	}
	p = tr.point(10, 99)
	if p.X != 10.5 || p.Y != 0.5 {
		t.Errorf("bottom pixel maps to %v", p)
	}
	if got := tr.top(p.Y); got != 99 {
		t.Errorf("top(%v) = %v, want 99", p.Y, got)
	}
}
