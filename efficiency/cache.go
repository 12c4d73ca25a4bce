package efficiency

import (
	"bytes"
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-fluor/optics"
	"github.com/cwbudde/algo-fluor/spectra/series"
)

// Cache stores computed reports. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (*Report, bool, error)
	Put(ctx context.Context, key string, report *Report, ttl time.Duration) error
}

var cacheNamespace = uuid.MustParse("7d1c4f0e-5a2b-4f49-9a53-2f3e8c1b6d70")

// CacheKey returns a name-based UUID identifying the configuration and the
// fluorophore set. Equal inputs always produce the same key.
func CacheKey(cfg optics.Config, fluors []Fluorophore) string {
	var b bytes.Buffer
	b.WriteString(cfg.Name)
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(cfg.Laser))
	for _, el := range cfg.Excitation {
		writeElement(&b, el)
	}
	for _, el := range cfg.Emission {
		writeElement(&b, el)
	}
	for _, f := range fluors {
		b.WriteString("\x00fluor\x00")
		b.WriteString(f.ID)
		b.WriteByte(0)
		b.WriteString(f.Name)
		b.WriteByte(0)
		b.WriteString(string(f.Kind))
		b.WriteByte(0)
		b.WriteString(f.Color)
		writeFloat(&b, f.ExtCoeff)
		writeFloat(&b, f.QY)
		writeSeries(&b, f.Excitation)
		writeSeries(&b, f.Emission)
	}
	return uuid.NewSHA1(cacheNamespace, b.Bytes()).String()
}

func writeElement(b *bytes.Buffer, el optics.Element) {
	b.WriteString("\x00element\x00")
	b.WriteString(el.Name)
	b.WriteByte(0)
	b.WriteString(el.Path.String())
	b.WriteString(strconv.FormatBool(el.Reflects))
	writeSeries(b, el.Spectrum)
}

func writeSeries(b *bytes.Buffer, s *series.Series) {
	if s == nil {
		b.WriteString("\x00nil")
		return
	}
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(s.MinWavelength()))
	for _, v := range s.RawValues() {
		writeFloat(b, v)
	}
}

func writeFloat(b *bytes.Buffer, v float64) {
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}

// Report returns the report for cfg, served from the cache when possible.
// Cache failures are logged and never fail the call.
func (e *Engine) Report(ctx context.Context, cfg optics.Config, fluors []Fluorophore) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := e.logger().With("config", cfg.Name)
	if e.Cache == nil {
		return e.Compute(cfg, fluors)
	}

	key := CacheKey(cfg, fluors)
	cached, ok, err := e.Cache.Get(ctx, key)
	switch {
	case err != nil:
		log.Warn("report cache lookup failed", "key", key, "error", err)
	case ok:
		log.Debug("report cache hit", "key", key)
		return cached, nil
	default:
		log.Debug("report cache miss", "key", key)
	}

	report, err := e.Compute(cfg, fluors)
	if err != nil {
		return nil, err
	}
	if err := e.Cache.Put(ctx, key, report, e.TTL); err != nil {
		log.Warn("report cache store failed", "key", key, "error", err)
	}
	return report, nil
}
