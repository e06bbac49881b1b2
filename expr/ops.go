package expr

import (
	"math"
	"math/rand/v2"
)

func boolean(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func and(a, b float64) float64 {
	if a != 0 {
		return b
	}
	return 0
}

func or(a, b float64) float64 {
	if a == 0 {
		return b
	}
	return 1
}

func sign(a float64) float64 {
	switch {
	case math.IsNaN(a):
		return a
	case a > 0:
		return 1
	case a < 0:
		return -1
	}
	return 0
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// toInt64 truncates a towards zero. NaN and values outside the int64 range
// give 0.
func toInt64(a float64) int64 {
	if math.IsNaN(a) || a >= math.MaxInt64 || a <= math.MinInt64 {
		return 0
	}
	return int64(a)
}

func toUint64(a float64) uint64 {
	if !(a > 0) {
		return 0
	}
	if a >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(a)
}

// randInt returns a random integer in [lo, hi). An empty interval yields lo.
func randInt(lo, hi float64) float64 {
	l, h := toInt64(lo), toInt64(hi)
	if h <= l {
		return float64(l)
	}
	return float64(l + rand.Int64N(h-l))
}

// Mod is the floored modulo. For positive y the result is in [0, y).
func Mod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m < 0 {
		m += y
	}
	return m
}

// Factorial computes n*(n-1)*(n-2)*... down to a factor <= 1.
//
// Non-integer arguments keep this naive product, e.g. fact(2.5) is
// 2.5*1.5 = 3.75 and not Gamma(3.5). Large arguments overflow to +Inf.
func Factorial(n float64) float64 {
	if math.IsNaN(n) {
		return n
	}
	r := 1.0
	for ; n > 1; n-- {
		r *= n
		if math.IsInf(r, 0) {
			break
		}
	}
	return r
}

// Permutations returns the number of ordered selections of k out of n.
// Results beyond the float64 range are +Inf.
func Permutations(n, k int) float64 {
	r := 1.0
	for ; k > 0; n, k = n-1, k-1 {
		if k > n {
			return 0
		}
		r *= float64(n)
		if r == 0 || math.IsInf(r, 0) {
			break
		}
	}
	return r
}

// Combinations returns the binomial coefficient n over k.
func Combinations(n, k uint64) float64 {
	if k > n {
		return 0
	}
	if n-k < k {
		k = n - k
	}
	r := 1.0
	for d := uint64(1); d <= k; d++ {
		r *= float64(n)
		n--
		r /= float64(d)
		if math.IsInf(r, 0) {
			break
		}
	}
	return r
}
