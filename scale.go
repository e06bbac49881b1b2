package graphcalc

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// ----------------------------------------------------------------------------
// Range

// Range maps the interval [Lo, Hi] onto PxCount pixels. A Range is a value;
// the transformations return new Ranges.
type Range struct {
	Lo, Hi  float64
	PxCount int

	// StepSize is the distance between two samples, (Hi-Lo)/(PxCount-1).
	StepSize float64
}

// NewRange returns the range [lo, hi] over pxCount pixels.
func NewRange(lo, hi float64, pxCount int) Range {
	return Range{
		Lo:       lo,
		Hi:       hi,
		PxCount:  pxCount,
		StepSize: (hi - lo) / float64(max(pxCount-1, 1)),
	}
}

// WithPxCount returns r spread over n pixels.
func (r Range) WithPxCount(n int) Range { return NewRange(r.Lo, r.Hi, n) }

// ValueToPx maps v to a (fractional) pixel position.
func (r Range) ValueToPx(v float64) float64 {
	return linear(r.value(), r.px(), v)
}

// PxToValue maps the pixel position p back to a value.
func (r Range) PxToValue(p float64) float64 {
	return linear(r.px(), r.value(), p)
}

// PxToDelta is the value distance covered by p pixels.
func (r Range) PxToDelta(p float64) float64 {
	return p / float64(r.PxCount) * (r.Hi - r.Lo)
}

// DraggedBy returns r shifted by the value distance of dPx pixels, in the
// opposite direction: dragging the picture to the right reveals smaller
// values.
func (r Range) DraggedBy(dPx int) Range {
	d := r.PxToDelta(float64(dPx))
	return NewRange(r.Lo-d, r.Hi-d, r.PxCount)
}

// ZoomedBy scales the span of r by ratio around its midpoint. A ratio
// below 1 zooms in.
func (r Range) ZoomedBy(ratio float64) Range {
	mid, halfSpan := (r.Hi+r.Lo)/2, (r.Hi-r.Lo)*ratio/2
	return NewRange(mid-halfSpan, mid+halfSpan, r.PxCount)
}

// Sample returns the value of sample i.
func (r Range) Sample(i int) float64 {
	return r.Lo + float64(i)*r.StepSize
}

func (r Range) value() Interval { return Interval{r.Lo, r.Hi} }
func (r Range) px() Interval    { return Interval{0, float64(r.PxCount)} }

// String formats r as lo..hi, suitable to be parsed back.
func (r Range) String() string {
	return formatG(r.Lo, 8) + ".." + formatG(r.Hi, 8)
}

func formatG(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set yet.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// IsSet reports whether both edges of i are known.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Update expands i to include the finite values of x. NaN and infinite
// values are ignored; an unset edge is replaced by the first finite value.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// UpdateDense expands i to include every finite element of m.
func (i *Interval) UpdateDense(m *mat.Dense) {
	if m == nil {
		return
	}
	rows, _ := m.Dims()
	for r := 0; r < rows; r++ {
		i.Update(m.RawRowView(r)...)
	}
}

// Equal reports whether i and j are the same interval. Unset edges are
// equal to each other.
func (i Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		return a == b || math.IsNaN(a) && math.IsNaN(b)
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}
