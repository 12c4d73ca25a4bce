package ingest

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-fluor/spectra/geometry"
	"github.com/cwbudde/algo-fluor/spectra/normalize"
	"github.com/cwbudde/algo-fluor/spectra/resample"
	"github.com/cwbudde/algo-fluor/spectra/series"
)

// DefaultClip is the wavelength range kept when a Request sets none.
var DefaultClip = [2]float64{300, 1600}

// ErrRequest indicates a Request that does not match the table.
var ErrRequest = errors.New("ingest: invalid request")

// Request describes how the columns of a table are tagged.
//
// Category and Subtype apply to every column; Categories and Subtypes, when
// set, give one value per column and take precedence. A column without a
// subtype has it read from its header. Owner names every column; when empty
// the header text before " (" is used.
type Request struct {
	Category   series.Category
	Categories []series.Category
	Subtype    series.Subtype
	Subtypes   []series.Subtype
	Owner      string
	Clip       [2]float64
}

func (r Request) category(i int) series.Category {
	if len(r.Categories) > 0 {
		return r.Categories[i]
	}
	return r.Category
}

func (r Request) subtype(i int) series.Subtype {
	if len(r.Subtypes) > 0 {
		return r.Subtypes[i]
	}
	return r.Subtype
}

func (r Request) clip() [2]float64 {
	if r.Clip == [2]float64{} {
		return DefaultClip
	}
	return r.Clip
}

func (r Request) validate(columns int) error {
	if len(r.Categories) == 0 && r.Category == "" {
		return fmt.Errorf("%w: no category", ErrRequest)
	}
	if len(r.Categories) > 0 && len(r.Categories) != columns {
		return fmt.Errorf("%w: %d categories for %d columns", ErrRequest, len(r.Categories), columns)
	}
	if len(r.Subtypes) > 0 && len(r.Subtypes) != columns {
		return fmt.Errorf("%w: %d subtypes for %d columns", ErrRequest, len(r.Subtypes), columns)
	}
	if c := r.clip(); c[0] >= c[1] {
		return fmt.Errorf("%w: clip range [%v, %v]", ErrRequest, c[0], c[1])
	}
	return nil
}

// Record is one successfully imported column.
type Record struct {
	Column   int
	Header   string
	Spectrum *series.Spectrum
	Policy   normalize.Policy
	// Band and MeanTransmission are set for filters whose name carries a
	// center/width designation such as "ET525/50m".
	Band             *Band
	MeanTransmission float64
}

// ColumnError is a column that could not be imported.
type ColumnError struct {
	Column int
	Header string
	Owner  string
	Err    error
}

func (e *ColumnError) Error() string {
	name := e.Owner
	if name == "" {
		name = e.Header
	}
	return fmt.Sprintf("ingest: column %d (%s): %v", e.Column, name, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }

// Result lists the outcome of every column: imported, failed or skipped
// because it held no data.
type Result struct {
	Records []Record
	Errors  []*ColumnError
	Skipped []int
}

type config struct {
	resample  []resample.Option
	normalize []normalize.Option
	logger    *slog.Logger
}

// Option configures Import.
type Option func(*config)

// WithResampleOptions forwards options to resample.Resample.
func WithResampleOptions(opts ...resample.Option) Option {
	return func(cfg *config) { cfg.resample = append(cfg.resample, opts...) }
}

// WithNormalizeOptions forwards options to normalize.Normalize.
func WithNormalizeOptions(opts ...normalize.Option) Option {
	return func(cfg *config) { cfg.normalize = append(cfg.normalize, opts...) }
}

// WithLogger logs skipped and failed columns to l.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

var ownerNamespace = uuid.MustParse("0b8f3a52-6c1e-4d8e-b0a4-93f1c2d7e815")

// OwnerID returns the stable identifier used for an owner of kind k named name.
func OwnerID(k series.OwnerKind, name string) string {
	return uuid.NewSHA1(ownerNamespace, []byte(k.String()+"/"+name)).String()
}

// Import converts every value column of t. The error is non-nil only when
// the request itself does not fit the table.
func Import(t *Table, req Request, opts ...Option) (Result, error) {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if t == nil {
		return Result{}, ErrEmptyTable
	}
	if err := req.validate(len(t.Columns)); err != nil {
		return Result{}, err
	}

	var res Result
	for i, column := range t.Columns {
		header := t.Header(i)
		if empty(column) {
			cfg.logger.Info("skipping column without data", "column", i, "header", header)
			res.Skipped = append(res.Skipped, i)
			continue
		}

		owner := req.Owner
		if owner == "" {
			owner = OwnerName(header)
		}
		rec, err := importColumn(t.Waves, column, req.category(i), req.subtype(i), header, owner, req.clip(), cfg)
		if err != nil {
			cerr := &ColumnError{Column: i, Header: header, Owner: owner, Err: err}
			cfg.logger.Warn("column import failed", "column", i, "owner", owner, "error", err)
			res.Errors = append(res.Errors, cerr)
			continue
		}
		rec.Column, rec.Header = i, header
		cfg.logger.Debug("column imported", "column", i, "owner", owner,
			"tag", rec.Spectrum.Series.Tag().String(), "policy", rec.Policy.String())
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

func importColumn(waves, values []float64, cat series.Category, st series.Subtype, header, owner string, clip [2]float64, cfg config) (Record, error) {
	if st == "" {
		st = SniffSubtype(header)
	}
	tag, err := series.Tag{Category: cat, Subtype: st}.Clean()
	if err != nil {
		return Record{}, err
	}
	if strings.TrimSpace(owner) == "" {
		return Record{}, series.Invalid("owner", "column has no owner name")
	}
	kind, err := series.OwnerKindFor(tag.Category)
	if err != nil {
		return Record{}, err
	}

	raw, err := series.NewRaw(Clip(waves, values, clip), tag)
	if err != nil {
		return Record{}, err
	}
	canonical, err := resample.Resample(raw, cfg.resample...)
	if err != nil {
		return Record{}, err
	}
	sp, err := series.NewSpectrum(series.Owner{Kind: kind, ID: OwnerID(kind, owner), Name: owner}, canonical)
	if err != nil {
		return Record{}, err
	}
	normalized, policy, err := normalize.Spectrum(sp, cfg.normalize...)
	if err != nil {
		return Record{}, err
	}

	rec := Record{Spectrum: normalized, Policy: policy}
	if tag.Category == series.CategoryFilter {
		if band, ok := ParseBand(owner); ok {
			rec.Band = &band
			if avg, err := geometry.BandAverage(normalized.Series, float64(band.Center), float64(band.Width)); err == nil {
				rec.MeanTransmission = avg
			}
		}
	}
	return rec, nil
}

// Clip pairs wavelengths with values, keeping samples whose value is above
// zero and whose wavelength lies within clip.
func Clip(waves, values []float64, clip [2]float64) []series.Point {
	out := make([]series.Point, 0, len(waves))
	for i, w := range waves {
		if i >= len(values) {
			break
		}
		if v := values[i]; v > 0 && w >= clip[0] && w <= clip[1] {
			out = append(out, series.Point{X: w, Y: v})
		}
	}
	return out
}

// empty reports whether a column is entirely zero or entirely missing.
func empty(column []float64) bool {
	for _, v := range column {
		if v != 0 && !math.IsNaN(v) {
			return false
		}
	}
	return true
}

// OwnerName returns the header text before " (".
func OwnerName(header string) string {
	name, _, _ := strings.Cut(header, " (")
	return strings.TrimSpace(name)
}

// SniffSubtype reads a fluorophore subtype from a column header such as
// "EGFP (ex)" or "mCherry emission". It returns "" when nothing matches.
func SniffSubtype(header string) series.Subtype {
	h := strings.ToLower(header)
	switch {
	case strings.Contains(h, "(2p)"):
		return series.SubtypeTwoPhoton
	case strings.Contains(h, "(ab") || strings.Contains(h, "absorption"):
		return series.SubtypeAbsorption
	case strings.Contains(h, "(em") || strings.Contains(h, "emission"):
		return series.SubtypeEmission
	case strings.Contains(h, "(ex") || strings.Contains(h, "excitation"):
		return series.SubtypeExcitation
	default:
		return ""
	}
}
