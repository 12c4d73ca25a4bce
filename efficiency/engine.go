package efficiency

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/cwbudde/algo-fluor/optics"
	"github.com/cwbudde/algo-fluor/spectra/geometry"
	"github.com/cwbudde/algo-fluor/spectra/series"
)

// Decimals is the rounding precision of efficiencies and brightness.
const Decimals = 3

// Engine evaluates fluorophores against optical configurations.
type Engine struct {
	Cache   Cache
	TTL     time.Duration
	Workers int
	Logger  *slog.Logger
	Color   ColorFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache stores reports in c for ttl. A zero ttl keeps them until evicted.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(e *Engine) {
		e.Cache = c
		if ttl >= 0 {
			e.TTL = ttl
		}
	}
}

// WithWorkers bounds the number of fluorophores evaluated concurrently.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.Workers = n
		}
	}
}

// WithLogger sets the logger for cache and configuration events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.Logger = l
		}
	}
}

// WithColor sets the function deriving display colours from emission peaks.
func WithColor(f ColorFunc) Option {
	return func(e *Engine) {
		e.Color = f
	}
}

// NewEngine returns an engine without a cache, one worker per CPU and a
// discarding logger.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		Workers: runtime.NumCPU(),
		Logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// paths holds the combined spectra of a configuration.
type paths struct {
	ex, em *series.Series
	exArea float64
	laser  int
}

func configPaths(cfg optics.Config) (paths, error) {
	ex, err := cfg.ExcitationSpectrum()
	if err != nil {
		return paths{}, &ConfigError{Config: cfg.Name, Path: optics.Excitation, Err: err}
	}
	em, err := cfg.EmissionSpectrum()
	if err != nil {
		return paths{}, &ConfigError{Config: cfg.Name, Path: optics.Emission, Err: err}
	}

	p := paths{ex: ex, em: em, laser: cfg.Laser}
	if cfg.HasLaser() {
		if v := ex.Value(0); v <= 0 {
			return paths{}, &ConfigError{Config: cfg.Name, Path: optics.Excitation,
				Err: fmt.Errorf("%w: laser line at %d nm is blocked", series.ErrEmptyOverlap, cfg.Laser)}
		}
	} else {
		p.exArea = geometry.Area(ex)
		if p.exArea <= 0 {
			return paths{}, &ConfigError{Config: cfg.Name, Path: optics.Excitation,
				Err: fmt.Errorf("%w: zero area", series.ErrEmptyOverlap)}
		}
	}
	if geometry.Area(em) <= 0 {
		return paths{}, &ConfigError{Config: cfg.Name, Path: optics.Emission,
			Err: fmt.Errorf("%w: zero area", series.ErrEmptyOverlap)}
	}
	return p, nil
}

// Compute builds the report for cfg. It fails only when the configuration
// itself cannot be evaluated.
func (e *Engine) Compute(cfg optics.Config, fluors []Fluorophore) (*Report, error) {
	p, err := configPaths(cfg)
	if err != nil {
		e.logger().Warn("optical configuration rejected", "config", cfg.Name, "error", err)
		return nil, err
	}

	entries := make([]Entry, len(fluors))
	workers := min(max(e.Workers, 1), max(len(fluors), 1))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				entries[i] = e.evaluate(p, fluors[i])
			}
		}()
	}
	for i := range fluors {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return &Report{Config: cfg.Name, Laser: cfg.Laser, Entries: entries}, nil
}

func (e *Engine) evaluate(p paths, fl Fluorophore) Entry {
	entry := Entry{
		ID:    fl.ID,
		Name:  fl.label(),
		Kind:  fl.Kind,
		Color: fl.displayColor(e.Color),
	}
	if fl.Excitation == nil || fl.Emission == nil {
		return entry
	}

	ex, err := excitationEfficiency(p, fl.Excitation)
	if err != nil {
		return failed(entry, err)
	}
	em, err := emissionEfficiency(p, fl.Emission)
	if err != nil {
		return failed(entry, err)
	}
	entry.Ex, entry.Em = &ex, &em
	entry.Brightness = Brightness(ex, em, fl.ExtCoeff, fl.QY)
	return entry
}

func failed(entry Entry, err error) Entry {
	entry.Err = err
	entry.Error = err.Error()
	return entry
}

func excitationEfficiency(p paths, spectrum *series.Series) (float64, error) {
	if p.laser > 0 {
		v, ok := spectrum.ValueAt(p.laser)
		if !ok {
			return 0, nil
		}
		return series.Round(v, Decimals), nil
	}
	prod, err := optics.Product(p.ex, spectrum)
	if errors.Is(err, series.ErrEmptyOverlap) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return series.Round(geometry.Area(prod)/p.exArea, Decimals), nil
}

func emissionEfficiency(p paths, spectrum *series.Series) (float64, error) {
	total := geometry.Area(spectrum)
	if total <= 0 {
		return 0, series.Invalid("data", "emission spectrum has no area")
	}
	prod, err := optics.Product(p.em, spectrum)
	if errors.Is(err, series.ErrEmptyOverlap) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return series.Round(geometry.Area(prod)/total, Decimals), nil
}

// Brightness returns ex*em*extCoeff*qy/1000 rounded to three decimals, or 0
// when any factor is zero or unknown.
func Brightness(ex, em, extCoeff, qy float64) float64 {
	if ex == 0 || em == 0 || extCoeff <= 0 || qy <= 0 {
		return 0
	}
	return series.Round(ex*em*extCoeff*qy/1000, Decimals)
}
