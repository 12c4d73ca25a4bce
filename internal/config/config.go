package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Ingest controls how table columns become spectra.
type Ingest struct {
	WaveColumn int     `toml:"wave_column"`
	MinWave    float64 `toml:"min_wave"`
	MaxWave    float64 `toml:"max_wave"`
}

// Resample controls interpolation onto the 1 nm grid.
type Resample struct {
	Method          string `toml:"method"`
	SmoothingWindow int    `toml:"smoothing_window"`
	SmoothingOrder  int    `toml:"smoothing_order"`
	MinSamples      int    `toml:"min_samples"`
}

// Normalize holds the normalization thresholds.
type Normalize struct {
	UpperTrigger   float64 `toml:"upper_trigger"`
	LowerTrigger   float64 `toml:"lower_trigger"`
	PercentLow     float64 `toml:"percent_low"`
	PercentHigh    float64 `toml:"percent_high"`
	TwoPhotonOrder int     `toml:"twophoton_order"`
	TwoPhotonSkip  int     `toml:"twophoton_skip"`
}

// Report controls efficiency report output and caching.
type Report struct {
	SortBy          string `toml:"sort_by"`
	Limit           int    `toml:"limit"`
	Workers         int    `toml:"workers"`
	CachePath       string `toml:"cache_path"`
	CacheTTLSeconds int    `toml:"cache_ttl_seconds"`
}

// Logging configures the slog handler.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the complete fluorscope configuration.
type Config struct {
	Ingest    Ingest    `toml:"ingest"`
	Resample  Resample  `toml:"resample"`
	Normalize Normalize `toml:"normalize"`
	Report    Report    `toml:"report"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the per-user configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/fluorscope/config.toml")
}

// Load reads, normalizes and validates the configuration at path. An empty
// path looks for ./fluorscope.toml and then the per-user file. A missing file
// yields the defaults; the returned bool reports whether a file was read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}
	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	projectPath, err := filepath.Abs("fluorscope.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
