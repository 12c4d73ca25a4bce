package config

import (
	"time"

	"github.com/cwbudde/algo-fluor/efficiency"
	"github.com/cwbudde/algo-fluor/spectra/interp"
	"github.com/cwbudde/algo-fluor/spectra/normalize"
	"github.com/cwbudde/algo-fluor/spectra/resample"
)

// ResampleOptions converts the [resample] section.
func (c *Config) ResampleOptions() []resample.Option {
	opts := []resample.Option{
		resample.WithSmoothing(c.Resample.SmoothingWindow, c.Resample.SmoothingOrder),
		resample.WithMinSamples(c.Resample.MinSamples),
	}
	if m, err := interp.ParseMethod(c.Resample.Method); err == nil {
		opts = append(opts, resample.WithMethod(m))
	}
	return opts
}

// NormalizeOptions converts the [normalize] section.
func (c *Config) NormalizeOptions() []normalize.Option {
	return []normalize.Option{normalize.WithOptions(normalize.Options{
		UpperTrigger:   c.Normalize.UpperTrigger,
		LowerTrigger:   c.Normalize.LowerTrigger,
		PercentLow:     c.Normalize.PercentLow,
		PercentHigh:    c.Normalize.PercentHigh,
		TwoPhotonOrder: c.Normalize.TwoPhotonOrder,
		TwoPhotonSkip:  c.Normalize.TwoPhotonSkip,
	})}
}

// SortField returns the parsed report.sort_by value.
func (c *Config) SortField() efficiency.SortField {
	f, err := efficiency.ParseSortField(c.Report.SortBy)
	if err != nil {
		return efficiency.SortBrightness
	}
	return f
}

// CacheTTL returns report.cache_ttl_seconds as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Report.CacheTTLSeconds) * time.Second
}
