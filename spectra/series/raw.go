package series

import (
	"fmt"
	"math"
	"sort"
)

// MinPoints is the smallest number of samples a Raw series may hold.
const MinPoints = 2

// Point is one (wavelength, value) sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Raw is a sorted, de-duplicated sequence of measured samples.
type Raw struct {
	xs  []float64
	ys  []float64
	tag Tag
}

// NewRaw validates and orders points. Samples are sorted by wavelength with a
// stable sort; for duplicate wavelengths the first submitted sample is kept.
func NewRaw(points []Point, tag Tag) (*Raw, error) {
	if len(points) < MinPoints {
		return nil, fmt.Errorf("%w: %d points, need at least %d", ErrInsufficientData, len(points), MinPoints)
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return nil, fmt.Errorf("%w: sample %d is (%v, %v)", ErrNonNumericData, i, p.X, p.Y)
		}
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	r := &Raw{
		xs:  make([]float64, 0, len(sorted)),
		ys:  make([]float64, 0, len(sorted)),
		tag: tag,
	}
	for i, p := range sorted {
		if i > 0 && p.X == sorted[i-1].X {
			continue
		}
		r.xs = append(r.xs, p.X)
		r.ys = append(r.ys, p.Y)
	}
	if len(r.xs) < MinPoints {
		return nil, fmt.Errorf("%w: %d distinct wavelengths", ErrInsufficientData, len(r.xs))
	}
	return r, nil
}

// NewRawXY is NewRaw for parallel wavelength and value slices.
func NewRawXY(xs, ys []float64, tag Tag) (*Raw, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d wavelengths, %d values", ErrLengthMismatch, len(xs), len(ys))
	}
	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return NewRaw(points, tag)
}

// Len returns the number of distinct samples.
func (r *Raw) Len() int { return len(r.xs) }

// Tag returns the category/subtype tag.
func (r *Raw) Tag() Tag { return r.tag }

// X returns a copy of the wavelengths.
func (r *Raw) X() []float64 { return append([]float64(nil), r.xs...) }

// Y returns a copy of the values.
func (r *Raw) Y() []float64 { return append([]float64(nil), r.ys...) }

// MinWavelength returns the first wavelength.
func (r *Raw) MinWavelength() float64 { return r.xs[0] }

// MaxWavelength returns the last wavelength.
func (r *Raw) MaxWavelength() float64 { return r.xs[len(r.xs)-1] }

// Step returns the spacing between consecutive samples and whether that
// spacing is uniform.
func (r *Raw) Step() (float64, bool) {
	step := r.xs[1] - r.xs[0]
	for i := 2; i < len(r.xs); i++ {
		if r.xs[i]-r.xs[i-1] != step {
			return 0, false
		}
	}
	return step, true
}

// IsCanonical reports whether the samples already sit on consecutive
// integer nanometers.
func (r *Raw) IsCanonical() bool {
	step, uniform := r.Step()
	return uniform && step == 1 && r.xs[0] == math.Trunc(r.xs[0])
}

// FromRaw converts a canonical Raw into a Series without resampling.
func FromRaw(r *Raw) (*Series, error) {
	if !r.IsCanonical() {
		return nil, fmt.Errorf("%w: samples are not on a 1 nm integer grid", ErrInterpolation)
	}
	return New(int(r.xs[0]), r.Y(), r.tag)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
