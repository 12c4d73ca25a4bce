package display

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fluor/efficiency"
	"github.com/cwbudde/algo-fluor/internal/testutil"
	"github.com/cwbudde/algo-fluor/spectra/series"
)

var (
	emTag     = series.Tag{Category: series.CategoryProtein, Subtype: series.SubtypeEmission}
	cameraTag = series.Tag{Category: series.CategoryCamera, Subtype: series.SubtypeQuantumEff}
	egfp      = series.Owner{Kind: series.OwnerProtein, ID: "p-1", Name: "EGFP"}
)

func spectrum(t *testing.T, owner series.Owner, start int, values []float64, tag series.Tag) *series.Spectrum {
	t.Helper()
	s, err := series.New(start, values, tag)
	require.NoError(t, err)
	sp, err := series.NewSpectrum(owner, s)
	require.NoError(t, err)
	return sp
}

func TestWaveToColor(t *testing.T) {
	for _, tc := range []struct {
		nm   int
		want string
	}{
		{300, "#000061"},
		{379, "#000061"},
		{380, "#610061"},
		{450, "#0046ff"},
		{500, "#00ff92"},
		{510, "#00ff00"},
		{550, "#a3ff00"},
		{600, "#ffbe00"},
		{700, "#b10000"},
		{750, "#610000"},
		{780, "#610000"},
		{900, "#610000"},
	} {
		assert.Equal(t, tc.want, WaveToColor(tc.nm), "%d nm", tc.nm)
	}
}

func TestPoints(t *testing.T) {
	s, err := series.New(400, []float64{0.1, 0.5}, emTag)
	require.NoError(t, err)
	assert.Equal(t, []XY{{X: 400, Y: 0.1}, {X: 401, Y: 0.5}}, Points(s))

	raw, err := json.Marshal(Points(s)[:1])
	require.NoError(t, err)
	assert.JSONEq(t, `[{"x":400,"y":0.1}]`, string(raw))
}

func TestNewTrace(t *testing.T) {
	sp := spectrum(t, egfp, 450, testutil.Gaussian(510, 20, 450, 600), emTag)
	tr := NewTrace(sp, WithScalar(0.6))

	assert.Equal(t, "EGFP em", tr.Key)
	assert.Equal(t, "egfp", tr.Slug)
	assert.Equal(t, 510, tr.Peak)
	assert.Equal(t, 450, tr.MinWave)
	assert.Equal(t, 600, tr.MaxWave)
	assert.Equal(t, series.CategoryProtein, tr.Category)
	assert.Equal(t, series.SubtypeEmission, tr.Subtype)
	assert.Equal(t, "#00ff00", tr.Color)
	assert.True(t, tr.Area)
	require.NotNil(t, tr.Scalar)
	assert.Equal(t, 0.6, *tr.Scalar)
	assert.Len(t, tr.Values, 151)

	raw, err := json.Marshal(tr)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"key", "slug", "values", "peak", "minwave", "maxwave", "category", "type", "color", "area", "scalar"} {
		assert.Contains(t, fields, key)
	}
}

func TestNewTraceFills(t *testing.T) {
	camera := series.Owner{Kind: series.OwnerCamera, ID: "c-1", Name: "Andor Zyla 4.2"}
	tr := NewTrace(spectrum(t, camera, 400, []float64{0.5, 0.7, 0.6}, cameraTag))
	assert.Equal(t, CameraFill, tr.Color)
	assert.Equal(t, "andor-zyla-4-2", tr.Slug)
	assert.Nil(t, tr.Scalar)

	light := series.Owner{Kind: series.OwnerLight, ID: "l-1"}
	lightTag := series.Tag{Category: series.CategoryLight, Subtype: series.SubtypePowerDistrib}
	tr = NewTrace(spectrum(t, light, 400, []float64{0.5, 1, 0.6}, lightTag), WithArea(false))
	assert.Equal(t, LightFill, tr.Color)
	assert.Equal(t, "l-1", tr.Slug)
	assert.False(t, tr.Area)
}

func TestNewTraceColorFunc(t *testing.T) {
	sp := spectrum(t, egfp, 450, testutil.Gaussian(510, 20, 450, 600), emTag)
	tr := NewTrace(sp, WithColor(func(nm int) string { return "peak" }))
	assert.Equal(t, "peak", tr.Color)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "mcherry2", Slug("mCherry2"))
	assert.Equal(t, "alexa-fluor-488", Slug("  Alexa Fluor® 488 "))
	assert.Equal(t, "", Slug("--"))
}

func TestRenderHTML(t *testing.T) {
	sp := spectrum(t, egfp, 450, testutil.Gaussian(510, 20, 450, 600), emTag)
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, "Spectra", []Trace{NewTrace(sp)}))
	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "EGFP")
	assert.Contains(t, out, "<title>Spectra</title>")

	assert.ErrorIs(t, RenderHTML(&buf, "empty", nil), ErrNoTraces)
}

func TestRenderReportHTML(t *testing.T) {
	ex, em := 0.8, 0.5
	r := &efficiency.Report{Config: "Widefield", Entries: []efficiency.Entry{
		{ID: "a", Name: "mNeonGreen", Color: "#00ff00", Ex: &ex, Em: &em, Brightness: 37.4},
		{ID: "b", Name: "Unmeasured"},
	}}
	var buf bytes.Buffer
	require.NoError(t, RenderReportHTML(&buf, r, efficiency.SortBrightness, 10))
	assert.Contains(t, buf.String(), "mNeonGreen")
	assert.Contains(t, buf.String(), "Unmeasured")

	empty := &efficiency.Report{Config: "none"}
	assert.ErrorIs(t, RenderReportHTML(&buf, empty, efficiency.SortBrightness, 10), ErrNoTraces)
}

func TestRenderPNG(t *testing.T) {
	sp := spectrum(t, egfp, 450, testutil.Gaussian(510, 20, 450, 600), emTag)
	camera := series.Owner{Kind: series.OwnerCamera, ID: "c-1"}
	qe := spectrum(t, camera, 400, []float64{0.5, 0.7, 0.6}, cameraTag)

	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, []Trace{NewTrace(sp), NewTrace(qe)}, 400, 240))
	assert.True(t, strings.HasPrefix(buf.String(), "\x89PNG"))

	assert.ErrorIs(t, RenderPNG(&buf, nil, 400, 240), ErrNoTraces)
	assert.Error(t, RenderPNG(&buf, []Trace{NewTrace(sp)}, 0, 240))
}

func TestParseHex(t *testing.T) {
	c, ok := parseHex("#0046ff")
	require.True(t, ok)
	assert.Equal(t, uint8(0x46), c.G)
	assert.Equal(t, uint8(0xff), c.B)

	for _, bad := range []string{"", "0046ff", "#0046f", "#zzzzzz", CameraFill} {
		_, ok := parseHex(bad)
		assert.False(t, ok, bad)
	}
}

func TestRenderReportsHTML(t *testing.T) {
	ex, em := 0.8, 0.5
	withEntries := &efficiency.Report{Config: "Confocal", Entries: []efficiency.Entry{
		{ID: "a", Name: "mScarlet", Ex: &ex, Em: &em, Brightness: 21},
	}}
	empty := &efficiency.Report{Config: "Empty"}

	var buf bytes.Buffer
	require.NoError(t, RenderReportsHTML(&buf, "Scope", []*efficiency.Report{empty, withEntries}, efficiency.SortExcitation, 5))
	assert.Contains(t, buf.String(), "mScarlet")
	assert.Contains(t, buf.String(), "<title>Scope</title>")

	assert.ErrorIs(t, RenderReportsHTML(&buf, "Scope", []*efficiency.Report{empty}, efficiency.SortBrightness, 5), ErrNoTraces)
}
