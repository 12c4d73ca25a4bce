package optics

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fluor/spectra/series"
)

// Product multiplies the given series sample by sample over the wavelengths
// they all cover. The result is untagged.
func Product(list ...*series.Series) (*series.Series, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no spectra", series.ErrEmptyOverlap)
	}
	lo, hi := list[0].MinWavelength(), list[0].MaxWavelength()
	for _, s := range list[1:] {
		lo = max(lo, s.MinWavelength())
		hi = min(hi, s.MaxWavelength())
	}
	if hi < lo {
		return nil, fmt.Errorf("%w: common window [%d, %d]", series.ErrEmptyOverlap, lo, hi)
	}

	out := make([]float64, hi-lo+1)
	first := list[0].RawValues()
	copy(out, first[lo-list[0].MinWavelength():])
	for _, s := range list[1:] {
		off := lo - s.MinWavelength()
		vecmath.MulBlockInPlace(out, s.RawValues()[off:off+len(out)])
	}
	return series.New(lo, out, series.Tag{})
}

// Laser returns the single-sample unit line at wavelength w.
func Laser(w int) (*series.Series, error) {
	if w <= 0 {
		return nil, fmt.Errorf("%w: laser line at %d nm", series.ErrInvalidRange, w)
	}
	return series.New(w, []float64{1}, series.Tag{
		Category: series.CategoryLight,
		Subtype:  series.SubtypePowerDistrib,
	})
}
