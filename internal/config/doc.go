// Package config loads the fluorscope TOML configuration: ingestion clip
// range, resampling and normalization parameters, report defaults and
// logging.
package config
