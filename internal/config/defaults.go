package config

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "auto"
	defaultSortBy    = "bright"
	defaultLimit     = 10
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Ingest: Ingest{
			WaveColumn: 0,
			MinWave:    300,
			MaxWave:    1600,
		},
		Resample: Resample{
			Method:          "not-a-knot",
			SmoothingWindow: 9,
			SmoothingOrder:  2,
			MinSamples:      10,
		},
		Normalize: Normalize{
			UpperTrigger:   1.5,
			LowerTrigger:   0.1,
			PercentLow:     60,
			PercentHigh:    101,
			TwoPhotonOrder: 100,
			TwoPhotonSkip:  10,
		},
		Report: Report{
			SortBy:          defaultSortBy,
			Limit:           defaultLimit,
			CacheTTLSeconds: 86400,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
