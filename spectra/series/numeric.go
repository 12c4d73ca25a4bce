package series

import "math"

const defaultEpsilon = 1e-12

// Round rounds v to the given number of decimal places, half away from zero.
func Round(v float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(v)
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// NearlyEqual reports whether a and b are equal within eps, relative to the
// larger magnitude once that exceeds one.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest <= 1 {
		return false
	}

	return diff/largest <= eps
}
