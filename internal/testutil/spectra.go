package testutil

import "math"

// Gaussian samples a unit-height gaussian band centred on center at every
// integer nanometer from lo to hi inclusive.
func Gaussian(center, sigma float64, lo, hi int) []float64 {
	out := make([]float64, hi-lo+1)
	for i := range out {
		d := (float64(lo+i) - center) / sigma
		out[i] = math.Exp(-0.5 * d * d)
	}
	return out
}

// GaussianXY samples the same band on an arbitrary step, as a
// spectrophotometer export would.
func GaussianXY(center, sigma, amplitude, lo, hi, step float64) (xs, ys []float64) {
	for x := lo; x <= hi+1e-9; x += step {
		d := (x - center) / sigma
		xs = append(xs, x)
		ys = append(ys, amplitude*math.Exp(-0.5*d*d))
	}
	return xs, ys
}

// Bandpass returns a flat-top band with the given transmission between
// from and to and zero elsewhere, sampled from lo to hi inclusive.
func Bandpass(lo, hi, from, to int, transmission float64) []float64 {
	out := make([]float64, hi-lo+1)
	for i := range out {
		if w := lo + i; w >= from && w <= to {
			out[i] = transmission
		}
	}
	return out
}

// Ramp returns lo..hi inclusive with value a*w+b at wavelength w.
func Ramp(a, b float64, lo, hi int) []float64 {
	out := make([]float64, hi-lo+1)
	for i := range out {
		out[i] = a*float64(lo+i) + b
	}
	return out
}
