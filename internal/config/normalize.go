package config

import "strings"

func (c *Config) normalize() error {
	c.Resample.Method = strings.ToLower(strings.TrimSpace(c.Resample.Method))
	if c.Resample.Method == "" {
		c.Resample.Method = "not-a-knot"
	}

	c.Report.SortBy = strings.ToLower(strings.TrimSpace(c.Report.SortBy))
	if c.Report.SortBy == "" {
		c.Report.SortBy = defaultSortBy
	}
	if strings.TrimSpace(c.Report.CachePath) != "" {
		expanded, err := ExpandPath(strings.TrimSpace(c.Report.CachePath))
		if err != nil {
			return err
		}
		c.Report.CachePath = expanded
	}

	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "":
		c.Logging.Format = defaultLogFormat
	case "auto", "console", "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
