package normalize

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-fluor/spectra/series"
)

// Decimals is the rounding precision of normalized values.
const Decimals = 4

// Policy names the rescaling rule that was applied.
type Policy int

const (
	// PolicyNone leaves values unchanged.
	PolicyNone Policy = iota
	// PolicyPeak divides by the maximum.
	PolicyPeak
	// PolicyPercent divides percent transmission by 100.
	PolicyPercent
	// PolicyTwoPhoton divides by the tallest local maximum.
	PolicyTwoPhoton
)

func (p Policy) String() string {
	switch p {
	case PolicyNone:
		return "none"
	case PolicyPeak:
		return "peak"
	case PolicyPercent:
		return "percent"
	case PolicyTwoPhoton:
		return "two-photon"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Options holds the normalization thresholds.
type Options struct {
	UpperTrigger   float64
	LowerTrigger   float64
	PercentLow     float64
	PercentHigh    float64
	TwoPhotonOrder int
	TwoPhotonSkip  int
}

// DefaultOptions returns the standard thresholds.
func DefaultOptions() Options {
	return Options{
		UpperTrigger:   1.5,
		LowerTrigger:   0.1,
		PercentLow:     60,
		PercentHigh:    101,
		TwoPhotonOrder: 100,
		TwoPhotonSkip:  10,
	}
}

// Option configures Normalize.
type Option func(*Options)

// WithOptions replaces every threshold at once.
func WithOptions(o Options) Option {
	return func(cfg *Options) {
		*cfg = o
	}
}

// WithTriggers overrides the lower and upper trigger thresholds.
func WithTriggers(lower, upper float64) Option {
	return func(cfg *Options) {
		if lower >= 0 && upper > lower {
			cfg.LowerTrigger = lower
			cfg.UpperTrigger = upper
		}
	}
}

// WithTwoPhotonSearch overrides the local-maximum comparison order and the
// number of leading samples excluded from the search.
func WithTwoPhotonSearch(order, skip int) Option {
	return func(cfg *Options) {
		if order > 0 {
			cfg.TwoPhotonOrder = order
		}
		if skip >= 0 {
			cfg.TwoPhotonSkip = skip
		}
	}
}

// Result is a normalized series together with how it was produced.
type Result struct {
	Series *series.Series
	Policy Policy
	// Peak is the pre-normalization two-photon peak; nil for other policies.
	Peak *series.Peak
}

// Normalize validates the tag of s and rescales a copy of it. s is not
// modified.
func Normalize(s *series.Series, opts ...Option) (Result, error) {
	if s == nil {
		return Result{}, series.Invalid("data", "no series")
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	tag, err := s.Tag().Clean()
	if err != nil {
		return Result{}, err
	}
	out := s.WithTag(tag)

	values := out.RawValues()
	peak := floats.Max(values)
	if peak <= cfg.UpperTrigger && peak >= cfg.LowerTrigger {
		return Result{Series: out, Policy: PolicyNone}, nil
	}

	scaled := make([]float64, len(values))
	switch {
	case tag.Category == series.CategoryFilter && peak > cfg.PercentLow && peak < cfg.PercentHigh:
		for i, v := range values {
			scaled[i] = series.Round(v/100, Decimals)
		}
		if err := out.Rescale(scaled); err != nil {
			return Result{}, err
		}
		return Result{Series: out, Policy: PolicyPercent}, nil

	case tag.Category == series.CategoryProtein && tag.IsTwoPhoton():
		idx, ok := twoPhotonPeak(values, cfg.TwoPhotonOrder, cfg.TwoPhotonSkip)
		if !ok {
			return Result{}, series.Invalid("data", "no two-photon peak beyond the first %d samples", cfg.TwoPhotonSkip)
		}
		p := &series.Peak{Wavelength: out.Wavelength(idx), Value: values[idx]}
		if p.Value <= 0 {
			return Result{}, series.Invalid("data", "two-photon peak %v is not positive", p.Value)
		}
		if err := out.Rescale(scaleClamped(scaled, values, p.Value)); err != nil {
			return Result{}, err
		}
		return Result{Series: out, Policy: PolicyTwoPhoton, Peak: p}, nil

	default:
		if peak <= 0 {
			return Result{}, series.Invalid("data", "maximum %v is not positive", peak)
		}
		if err := out.Rescale(scaleClamped(scaled, values, peak)); err != nil {
			return Result{}, err
		}
		return Result{Series: out, Policy: PolicyPeak}, nil
	}
}

// Spectrum normalizes sp.Series and returns a new Spectrum carrying the
// result and, for two-photon data, the original peak.
func Spectrum(sp *series.Spectrum, opts ...Option) (*series.Spectrum, Policy, error) {
	if sp == nil {
		return nil, PolicyNone, series.Invalid("data", "no spectrum")
	}
	res, err := Normalize(sp.Series, opts...)
	if err != nil {
		return nil, PolicyNone, err
	}
	out, err := series.NewSpectrum(sp.Owner, res.Series)
	if err != nil {
		return nil, PolicyNone, err
	}
	out.TwoPhotonPeak = res.Peak
	return out, res.Policy, nil
}

func scaleClamped(dst, src []float64, by float64) []float64 {
	vecmath.ScaleBlock(dst, src, 1/by)
	for i, v := range dst {
		dst[i] = series.Round(max(v, 0), Decimals)
	}
	return dst
}

// twoPhotonPeak returns the index of the tallest strict local maximum beyond
// the first skip samples. A sample is a local maximum when it exceeds every
// neighbour up to order positions away; positions past either end compare
// against the boundary sample.
func twoPhotonPeak(y []float64, order, skip int) (int, bool) {
	best, found := -1, false
	last := len(y) - 1
	for i := skip + 1; i <= last; i++ {
		if !localMax(y, i, order, last) {
			continue
		}
		if !found || y[i] > y[best] {
			best, found = i, true
		}
	}
	return best, found
}

func localMax(y []float64, i, order, last int) bool {
	for k := 1; k <= order; k++ {
		if y[i] <= y[max(i-k, 0)] || y[i] <= y[min(i+k, last)] {
			return false
		}
	}
	return true
}
