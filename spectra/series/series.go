package series

import (
	"fmt"
	"slices"
)

// Series is a spectrum sampled at every integer nanometer from
// MinWavelength to MaxWavelength inclusive.
type Series struct {
	start  int
	values []float64
	tag    Tag
}

// New builds a Series starting at start with one value per nanometer.
// The values slice is copied.
func New(start int, values []float64, tag Tag) (*Series, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInsufficientData)
	}
	for i, v := range values {
		if !finite(v) {
			return nil, fmt.Errorf("%w: value %v at %d nm", ErrNonNumericData, v, start+i)
		}
	}
	return &Series{start: start, values: slices.Clone(values), tag: tag}, nil
}

// Constant returns a series holding v from lo to hi inclusive.
func Constant(lo, hi int, v float64, tag Tag) (*Series, error) {
	if hi < lo {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, lo, hi)
	}
	values := make([]float64, hi-lo+1)
	for i := range values {
		values[i] = v
	}
	return New(lo, values, tag)
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.values) }

// Tag returns the category/subtype tag.
func (s *Series) Tag() Tag { return s.tag }

// WithTag returns a copy of s carrying tag.
func (s *Series) WithTag(tag Tag) *Series {
	c := s.Clone()
	c.tag = tag
	return c
}

// MinWavelength returns the first wavelength in nm.
func (s *Series) MinWavelength() int { return s.start }

// MaxWavelength returns the last wavelength in nm.
func (s *Series) MaxWavelength() int { return s.start + len(s.values) - 1 }

// Wavelength returns the wavelength of sample i.
func (s *Series) Wavelength(i int) int { return s.start + i }

// Value returns the value of sample i.
func (s *Series) Value(i int) float64 { return s.values[i] }

// ValueAt returns the value at wavelength w, if covered.
func (s *Series) ValueAt(w int) (float64, bool) {
	i := w - s.start
	if i < 0 || i >= len(s.values) {
		return 0, false
	}
	return s.values[i], true
}

// Values returns a copy of the values.
func (s *Series) Values() []float64 { return slices.Clone(s.values) }

// Wavelengths returns every wavelength of the series.
func (s *Series) Wavelengths() []int {
	out := make([]int, len(s.values))
	for i := range out {
		out[i] = s.start + i
	}
	return out
}

// Points returns the samples as (wavelength, value) pairs.
func (s *Series) Points() []Point {
	out := make([]Point, len(s.values))
	for i, v := range s.values {
		out[i] = Point{X: float64(s.start + i), Y: v}
	}
	return out
}

// Clone returns a deep copy.
func (s *Series) Clone() *Series {
	return &Series{start: s.start, values: slices.Clone(s.values), tag: s.tag}
}

// Window returns the samples with lo <= wavelength <= hi.
func (s *Series) Window(lo, hi int) (*Series, error) {
	lo = max(lo, s.MinWavelength())
	hi = min(hi, s.MaxWavelength())
	if hi < lo {
		return nil, fmt.Errorf("%w: window [%d, %d] outside [%d, %d]",
			ErrInvalidRange, lo, hi, s.MinWavelength(), s.MaxWavelength())
	}
	return &Series{
		start:  lo,
		values: slices.Clone(s.values[lo-s.start : hi-s.start+1]),
		tag:    s.tag,
	}, nil
}

// Rescale replaces the values in place. Wavelengths are unchanged.
func (s *Series) Rescale(values []float64) error {
	if len(values) != len(s.values) {
		return fmt.Errorf("%w: rescale with %d values, series has %d", ErrLengthMismatch, len(values), len(s.values))
	}
	for i, v := range values {
		if !finite(v) {
			return fmt.Errorf("%w: value %v at %d nm", ErrNonNumericData, v, s.start+i)
		}
	}
	copy(s.values, values)
	return nil
}

// RawValues exposes the backing slice for read-only numeric kernels.
// Callers must not modify it.
func (s *Series) RawValues() []float64 { return s.values }
