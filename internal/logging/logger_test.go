package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Debug("column skipped", "column", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "column skipped", record["msg"])
	assert.EqualValues(t, 3, record["column"])
}

func TestNewAutoFallsBackToJSONOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "auto", Output: &buf})
	require.NoError(t, err)
	logger.Info("ready")
	assert.True(t, strings.HasPrefix(buf.String(), "{"), buf.String())
}

func TestNewConsoleFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "config", "GFP")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "config=GFP")
}

func TestNewRejectsUnknownValues(t *testing.T) {
	_, err := New(Options{Format: "xml", Output: &bytes.Buffer{}})
	assert.Error(t, err)
	_, err = New(Options{Level: "loud", Output: &bytes.Buffer{}})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	Discard().Info("dropped")
}
