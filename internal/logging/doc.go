// Package logging builds the slog loggers used by fluorscope.
package logging
