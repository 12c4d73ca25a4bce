package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fluor/spectra/interp"
	"github.com/cwbudde/algo-fluor/spectra/series"
	"github.com/cwbudde/algo-fluor/spectra/smooth"
)

const (
	// DefaultMinSamples is the smallest measured series that is interpolated.
	DefaultMinSamples = 10
	// DefaultSmoothingWindow is the Savitzky-Golay window for two-photon data.
	DefaultSmoothingWindow = 9
	// DefaultSmoothingOrder is the Savitzky-Golay order for two-photon data.
	DefaultSmoothingOrder = 2
)

type config struct {
	method      interp.Method
	window      int
	order       int
	minSamples  int
	noSmoothing bool
}

// Option configures Resample.
type Option func(*config)

// WithMethod selects the interpolator for non two-photon spectra.
// Two-photon spectra are always interpolated linearly.
func WithMethod(m interp.Method) Option {
	return func(cfg *config) {
		cfg.method = m
	}
}

// WithSmoothing overrides the two-photon Savitzky-Golay window and order.
// A window of 0 disables smoothing.
func WithSmoothing(window, order int) Option {
	return func(cfg *config) {
		if window == 0 {
			cfg.noSmoothing = true
			return
		}
		if window > 0 && order >= 0 {
			cfg.window = window
			cfg.order = order
		}
	}
}

// WithMinSamples overrides the minimum measured sample count.
func WithMinSamples(n int) Option {
	return func(cfg *config) {
		if n >= series.MinPoints {
			cfg.minSamples = n
		}
	}
}

func defaultConfig() config {
	return config{
		method:     interp.MethodNotAKnot,
		window:     DefaultSmoothingWindow,
		order:      DefaultSmoothingOrder,
		minSamples: DefaultMinSamples,
	}
}

func (c config) finalized(tag series.Tag) config {
	if tag.IsTwoPhoton() {
		c.method = interp.MethodLinear
	}
	if c.minSamples < c.method.MinPoints() {
		c.minSamples = c.method.MinPoints()
	}
	return c
}

// Resample returns raw on the canonical grid.
func Resample(raw *series.Raw, opts ...Option) (*series.Series, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: nil series", series.ErrInsufficientData)
	}
	if raw.IsCanonical() {
		return series.FromRaw(raw)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg = cfg.finalized(raw.Tag())

	if raw.Len() < cfg.minSamples {
		return nil, fmt.Errorf("%w: %d samples, need %d to interpolate",
			series.ErrInsufficientData, raw.Len(), cfg.minSamples)
	}

	start, n, err := interp.Grid(raw.MinWavelength(), raw.MaxWavelength())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", series.ErrInterpolation, err)
	}

	p, err := interp.Fit(cfg.method, raw.X(), raw.Y())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", series.ErrInterpolation, err)
	}
	values := interp.Evaluate(p, start, n)

	if raw.Tag().IsTwoPhoton() && !cfg.noSmoothing {
		smoothed, err := smooth.SavitzkyGolay(values, cfg.window, cfg.order)
		switch {
		case err == nil:
			values = smoothed
		case errors.Is(err, smooth.ErrShortInput):
		default:
			return nil, fmt.Errorf("%w: %w", series.ErrInterpolation, err)
		}
	}

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite value at %d nm", series.ErrInterpolation, start+i)
		}
	}
	return series.New(start, values, raw.Tag())
}

// ResampleXY builds a Raw from parallel slices and resamples it.
func ResampleXY(xs, ys []float64, tag series.Tag, opts ...Option) (*series.Series, error) {
	raw, err := series.NewRawXY(xs, ys, tag)
	if err != nil {
		return nil, err
	}
	return Resample(raw, opts...)
}
