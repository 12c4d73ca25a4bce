package geometry

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-fluor/spectra/series"
)

const (
	// NoPeak is returned by PeakWavelength when no peak can be located.
	NoPeak = 0
	// DefaultWidthHeight is the threshold Width uses for half-maximum width.
	DefaultWidthHeight = 0.5
	// ultraviolet is the wavelength below which peaks are ignored for spectra
	// that extend into the UV.
	ultraviolet = 300
)

// PeakWavelength returns the wavelength of the spectrum maximum.
//
// Spectra starting below 300 nm only consider samples above 300 nm. Otherwise
// the first sample exactly equal to 1 wins, so a normalized spectrum reports
// the wavelength it was normalized to; failing that, the first maximum.
func PeakWavelength(s *series.Series) int {
	values := s.RawValues()
	from := 0
	if s.MinWavelength() < ultraviolet {
		from = ultraviolet + 1 - s.MinWavelength()
		if from >= len(values) {
			return NoPeak
		}
	} else {
		for i, v := range values {
			if v == 1 {
				return s.Wavelength(i)
			}
		}
	}
	i := floats.MaxIdx(values[from:])
	if values[from+i] <= 0 {
		return NoPeak
	}
	return s.Wavelength(from + i)
}

// Band is an inclusive wavelength interval.
type Band struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Width returns the wavelengths of the first and last samples above height.
// ok is false when no sample exceeds height.
func Width(s *series.Series, height float64) (b Band, ok bool) {
	values := s.RawValues()
	first := -1
	for i, v := range values {
		if v > height {
			first = i
			break
		}
	}
	if first < 0 {
		return Band{}, false
	}
	last := first
	for i := len(values) - 1; i > first; i-- {
		if values[i] > height {
			last = i
			break
		}
	}
	return Band{Low: s.Wavelength(first), High: s.Wavelength(last)}, true
}

// Average returns the mean value over the inclusive window bounds[0]..bounds[1].
func Average(s *series.Series, bounds ...float64) (float64, error) {
	if len(bounds) != 2 {
		return 0, fmt.Errorf("%w: need 2 bounds, got %d", series.ErrInvalidRange, len(bounds))
	}
	lo, hi := bounds[0], bounds[1]
	if lo > hi {
		return 0, fmt.Errorf("%w: low %v above high %v", series.ErrInvalidRange, lo, hi)
	}
	var window []float64
	for i, v := range s.RawValues() {
		if w := float64(s.Wavelength(i)); w >= lo && w <= hi {
			window = append(window, v)
		}
	}
	if len(window) == 0 {
		return 0, fmt.Errorf("%w: no samples in [%v, %v]", series.ErrInvalidRange, lo, hi)
	}
	return stat.Mean(window, nil), nil
}

// Area integrates s with the trapezoidal rule at a 1 nm step.
func Area(s *series.Series) float64 {
	values := s.RawValues()
	if len(values) < 2 {
		return 0
	}
	return vecmath.Sum(values) - (values[0]+values[len(values)-1])/2
}

// BandAverage returns the mean transmission inside a filter band, trimmed by
// 2 nm on both edges.
func BandAverage(s *series.Series, center, width float64) (float64, error) {
	if width <= 0 {
		return 0, fmt.Errorf("%w: band width %v", series.ErrInvalidRange, width)
	}
	return Average(s, center-width/2+2, center+width/2-2)
}
