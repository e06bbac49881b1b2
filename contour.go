package graphcalc

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel bins of a Partitioner.
const (
	binBelow = math.MinInt32
	binAbove = math.MaxInt32
	binNaN   = math.MinInt32 + 1
)

// A Partitioner turns a continuous value into a discrete contour bin:
// bins are Width wide and start at First. Values outside of Range share
// one bin below and one bin above.
type Partitioner struct {
	Width float64
	First float64
	Range Interval
}

// NewPartitioner returns the partitioner for contour lines of z: its grid
// spacing and value range.
func NewPartitioner(z GraphRange) Partitioner {
	width, first := z.Spacing()
	return Partitioner{Width: width, First: first, Range: Interval{z.Lo, z.Hi}}
}

// Bin returns the bin of x.
func (p Partitioner) Bin(x float64) int {
	switch {
	case math.IsNaN(x):
		return binNaN
	case x < p.Range.Min:
		return binBelow
	case x >= p.Range.Max:
		return binAbove
	}
	k := math.Floor((x - p.First) / p.Width)
	if k < binNaN+1 {
		return binBelow
	}
	if k >= binAbove {
		return binAbove
	}
	return int(k)
}

// Contours calls mark with column and row of every sample of data whose
// bin differs from the bin of its right, upper or diagonal neighbour.
func (p Partitioner) Contours(data *mat.Dense, mark func(col, row int)) {
	rows, cols := data.Dims()
	bins := make([][]int, rows)
	for r := range bins {
		bins[r] = make([]int, cols)
		for c, v := range data.RawRowView(r) {
			bins[r][c] = p.Bin(v)
		}
	}
	for r := 0; r+1 < rows; r++ {
		for c := 0; c+1 < cols; c++ {
			b := bins[r][c]
			if b != bins[r][c+1] || b != bins[r+1][c] || b != bins[r+1][c+1] {
				mark(c, r)
			}
		}
	}
}
