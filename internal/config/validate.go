package config

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fluor/efficiency"
	"github.com/cwbudde/algo-fluor/spectra/interp"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateIngest(); err != nil {
		return err
	}
	if err := c.validateResample(); err != nil {
		return err
	}
	if err := c.validateNormalize(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateIngest() error {
	if c.Ingest.WaveColumn < 0 {
		return errors.New("ingest.wave_column must be non-negative")
	}
	if c.Ingest.MinWave >= c.Ingest.MaxWave {
		return fmt.Errorf("ingest.min_wave (%v) must be below ingest.max_wave (%v)", c.Ingest.MinWave, c.Ingest.MaxWave)
	}
	return nil
}

func (c *Config) validateResample() error {
	if _, err := interp.ParseMethod(c.Resample.Method); err != nil {
		return fmt.Errorf("resample.method: %w", err)
	}
	w := c.Resample.SmoothingWindow
	if w < 0 || (w > 0 && w%2 == 0) {
		return fmt.Errorf("resample.smoothing_window must be 0 or odd, got %d", w)
	}
	if w > 0 && (c.Resample.SmoothingOrder < 0 || c.Resample.SmoothingOrder >= w) {
		return fmt.Errorf("resample.smoothing_order must be in [0, %d), got %d", w, c.Resample.SmoothingOrder)
	}
	if c.Resample.MinSamples < 2 {
		return fmt.Errorf("resample.min_samples must be at least 2, got %d", c.Resample.MinSamples)
	}
	return nil
}

func (c *Config) validateNormalize() error {
	n := c.Normalize
	if n.LowerTrigger < 0 || n.UpperTrigger <= n.LowerTrigger {
		return fmt.Errorf("normalize triggers must satisfy 0 <= lower_trigger < upper_trigger, got %v and %v",
			n.LowerTrigger, n.UpperTrigger)
	}
	if n.PercentHigh <= n.PercentLow {
		return fmt.Errorf("normalize.percent_high (%v) must exceed normalize.percent_low (%v)", n.PercentHigh, n.PercentLow)
	}
	if n.TwoPhotonOrder <= 0 {
		return errors.New("normalize.twophoton_order must be positive")
	}
	if n.TwoPhotonSkip < 0 {
		return errors.New("normalize.twophoton_skip must be non-negative")
	}
	return nil
}

func (c *Config) validateReport() error {
	if _, err := efficiency.ParseSortField(c.Report.SortBy); err != nil {
		return fmt.Errorf("report.sort_by: %w", err)
	}
	if c.Report.Limit < 0 {
		return errors.New("report.limit must be non-negative")
	}
	if c.Report.Workers < 0 {
		return errors.New("report.workers must be non-negative")
	}
	if c.Report.CacheTTLSeconds < 0 {
		return errors.New("report.cache_ttl_seconds must be non-negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
}
