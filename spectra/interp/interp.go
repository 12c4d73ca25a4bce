package interp

import (
	"errors"
	"fmt"
	"math"

	gonuminterp "gonum.org/v1/gonum/interp"
)

var (
	// ErrTooFewPoints indicates fewer samples than the method needs.
	ErrTooFewPoints = errors.New("interp: too few points")
	// ErrNotIncreasing indicates wavelengths that are not strictly increasing.
	ErrNotIncreasing = errors.New("interp: xs not strictly increasing")
	// ErrEmptyGrid indicates that no integer lies in [ceil(min), floor(max)).
	ErrEmptyGrid = errors.New("interp: empty integer grid")
)

// Method selects the interpolation algorithm.
type Method int

const (
	// MethodNotAKnot is a cubic spline with not-a-knot end conditions.
	MethodNotAKnot Method = iota
	// MethodAkima is the Akima local cubic spline.
	MethodAkima
	// MethodFritschButland is a monotone piecewise cubic.
	MethodFritschButland
	// MethodNaturalCubic is a cubic spline with zero second derivative at both ends.
	MethodNaturalCubic
	// MethodLinear is piecewise linear interpolation.
	MethodLinear
)

var methodNames = map[Method]string{
	MethodNotAKnot:       "not-a-knot",
	MethodAkima:          "akima",
	MethodFritschButland: "fritsch-butland",
	MethodNaturalCubic:   "natural-cubic",
	MethodLinear:         "linear",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod resolves a method from its String form.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("interp: unknown method %q", name)
}

// MinPoints returns the smallest sample count m accepts.
func (m Method) MinPoints() int {
	if m == MethodNotAKnot {
		return 4
	}
	return 2
}

// Predictor evaluates a fitted interpolant.
type Predictor = gonuminterp.Predictor

func newFitter(m Method) (gonuminterp.FittablePredictor, error) {
	switch m {
	case MethodNotAKnot:
		return &gonuminterp.NotAKnotCubic{}, nil
	case MethodAkima:
		return &gonuminterp.AkimaSpline{}, nil
	case MethodFritschButland:
		return &gonuminterp.FritschButland{}, nil
	case MethodNaturalCubic:
		return &gonuminterp.NaturalCubic{}, nil
	case MethodLinear:
		return &gonuminterp.PiecewiseLinear{}, nil
	default:
		return nil, fmt.Errorf("interp: unknown method %d", int(m))
	}
}

// Fit fits method m to the samples. xs must be strictly increasing.
func Fit(m Method, xs, ys []float64) (Predictor, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("interp: %d xs, %d ys", len(xs), len(ys))
	}
	if len(xs) < m.MinPoints() {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", ErrTooFewPoints, m, m.MinPoints(), len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("%w: xs[%d]=%v after %v", ErrNotIncreasing, i, xs[i], xs[i-1])
		}
	}

	f, err := newFitter(m)
	if err != nil {
		return nil, err
	}
	if err := f.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("interp: %s fit: %w", m, err)
	}
	return f, nil
}

// Grid returns the integer grid [ceil(lo), floor(hi)) as a start and a count.
func Grid(lo, hi float64) (start, n int, err error) {
	start = int(math.Ceil(lo))
	end := int(math.Floor(hi))
	if end <= start {
		return 0, 0, fmt.Errorf("%w: [%v, %v)", ErrEmptyGrid, lo, hi)
	}
	return start, end - start, nil
}

// Evaluate samples p at start, start+1, ..., start+n-1.
func Evaluate(p Predictor, start, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = p.Predict(float64(start + i))
	}
	return out
}
