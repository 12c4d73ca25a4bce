package display

import (
	"strings"
	"unicode"

	"github.com/cwbudde/algo-fluor/spectra/geometry"
	"github.com/cwbudde/algo-fluor/spectra/series"
)

// XY is one chart point.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Points returns the samples of s as chart points.
func Points(s *series.Series) []XY {
	out := make([]XY, s.Len())
	for i := range out {
		out[i] = XY{X: float64(s.Wavelength(i)), Y: s.Value(i)}
	}
	return out
}

// Trace is the chart payload for one spectrum.
type Trace struct {
	Key      string          `json:"key"`
	Slug     string          `json:"slug"`
	Values   []XY            `json:"values"`
	Peak     int             `json:"peak"`
	MinWave  int             `json:"minwave"`
	MaxWave  int             `json:"maxwave"`
	Category series.Category `json:"category"`
	Subtype  series.Subtype  `json:"type"`
	Color    string          `json:"color"`
	Area     bool            `json:"area"`
	Scalar   *float64        `json:"scalar,omitempty"`
}

type traceConfig struct {
	color  ColorFunc
	area   bool
	scalar *float64
}

// TraceOption configures NewTrace.
type TraceOption func(*traceConfig)

// WithColor replaces WaveToColor as the peak colour function.
func WithColor(f ColorFunc) TraceOption {
	return func(c *traceConfig) {
		if f != nil {
			c.color = f
		}
	}
}

// WithArea controls whether the trace is drawn filled. Default true.
func WithArea(area bool) TraceOption {
	return func(c *traceConfig) { c.area = area }
}

// WithScalar attaches the owner's scaling constant, such as the extinction
// coefficient of an excitation spectrum or the quantum yield of an
// emission spectrum.
func WithScalar(v float64) TraceOption {
	return func(c *traceConfig) { c.scalar = &v }
}

// NewTrace builds the chart payload for sp.
func NewTrace(sp *series.Spectrum, opts ...TraceOption) Trace {
	cfg := traceConfig{color: WaveToColor, area: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := sp.Series
	tag := s.Tag()
	peak := geometry.PeakWavelength(s)
	t := Trace{
		Key:      sp.Name(),
		Slug:     Slug(sp.Owner.Name),
		Values:   Points(s),
		Peak:     peak,
		MinWave:  s.MinWavelength(),
		MaxWave:  s.MaxWavelength(),
		Category: tag.Category,
		Subtype:  tag.Subtype,
		Color:    cfg.color(peak),
		Area:     cfg.area,
		Scalar:   cfg.scalar,
	}
	switch tag.Category {
	case series.CategoryCamera:
		t.Color = CameraFill
	case series.CategoryLight:
		t.Color = LightFill
	}
	if t.Slug == "" {
		t.Slug = Slug(sp.Owner.ID)
	}
	return t
}

// Slug lowercases name and joins its letter and digit runs with hyphens.
func Slug(name string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
