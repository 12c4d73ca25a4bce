package reportcache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fluor/efficiency"
)

var (
	_ efficiency.Cache = (*Memory)(nil)
	_ efficiency.Cache = (*SQLite)(nil)
)

func sampleReport() *efficiency.Report {
	ex, em := 0.497, 0.749
	return &efficiency.Report{
		Config: "widefield GFP",
		Entries: []efficiency.Entry{
			{ID: "egfp", Name: "EGFP", Kind: efficiency.KindProtein, Color: "#4bff00", Ex: &ex, Em: &em, Brightness: 9.306},
			{ID: "fitc", Name: "FITC", Kind: efficiency.KindDye},
		},
	}
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestMemoryRoundTripAndExpiry(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Unix(1000, 0)}
	m := NewMemory()
	m.now = clk.now

	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	report := sampleReport()
	require.NoError(t, m.Put(ctx, "k", report, time.Minute))
	require.NoError(t, m.Put(ctx, "forever", report, 0))

	got, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, report, got)

	clk.t = clk.t.Add(2 * time.Minute)
	_, ok, err = m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	_, ok, _ = m.Get(ctx, "forever")
	assert.True(t, ok)
}

func TestMemoryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewMemory().Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache", "reports.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	assert.Equal(t, path, s.Path())

	want := sampleReport()
	require.NoError(t, s.Put(ctx, "k", want, time.Hour))

	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(efficiency.Entry{}, "Err")); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, got.Entries[1].Ex)

	_, ok, err = s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteExpiryAndPrune(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	clk := &clock{t: time.Unix(5000, 0)}
	s.now = clk.now

	require.NoError(t, s.Put(ctx, "short", sampleReport(), time.Second))
	require.NoError(t, s.Put(ctx, "other", sampleReport(), time.Second))
	require.NoError(t, s.Put(ctx, "kept", sampleReport(), 0))

	clk.t = clk.t.Add(time.Minute)
	_, ok, err := s.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := s.Prune(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, ok, err = s.Get(ctx, "kept")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSQLiteServesEngine(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	engine := efficiency.NewEngine(efficiency.WithCache(s, time.Hour))
	cfg, fluors := engineFixture(t)

	first, err := engine.Report(context.Background(), cfg, fluors)
	require.NoError(t, err)
	second, err := engine.Report(context.Background(), cfg, fluors)
	require.NoError(t, err)

	assert.NotSame(t, first, second, "second report should be decoded from the database")
	if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(efficiency.Entry{}, "Err")); diff != "" {
		t.Fatalf("cached report differs (-first +second):\n%s", diff)
	}
}
