package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/cwbudde/algo-fluor/efficiency"
	"github.com/cwbudde/algo-fluor/ingest"
	"github.com/cwbudde/algo-fluor/optics"
	"github.com/cwbudde/algo-fluor/spectra/series"
)

// scopeFile is the TOML document the report command evaluates. Spectra
// paths are relative to the scope file.
type scopeFile struct {
	Name         string        `toml:"name"`
	Fluorophores []scopeFluor  `toml:"fluorophore"`
	Configs      []scopeConfig `toml:"config"`
}

type scopeFluor struct {
	ID       string  `toml:"id"`
	Name     string  `toml:"name"`
	Kind     string  `toml:"kind"`
	File     string  `toml:"file"`
	ExtCoeff float64 `toml:"ext_coeff"`
	QY       float64 `toml:"qy"`
	Color    string  `toml:"color"`
}

type scopeElement struct {
	Name    string `toml:"name"`
	File    string `toml:"file"`
	Subtype string `toml:"subtype"`
}

type scopeConfig struct {
	Name               string         `toml:"name"`
	Laser              int            `toml:"laser"`
	Light              *scopeElement  `toml:"light"`
	Camera             *scopeElement  `toml:"camera"`
	ExFilters          []scopeElement `toml:"ex_filters"`
	Dichroics          []scopeElement `toml:"dichroics"`
	EmFilters          []scopeElement `toml:"em_filters"`
	ReflectsExcitation *bool          `toml:"reflects_excitation"`
}

func readScope(path string) (*scopeFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scope: %w", err)
	}
	defer file.Close()

	var sf scopeFile
	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sf); err != nil {
		return nil, fmt.Errorf("parse scope: %w", err)
	}
	if len(sf.Configs) == 0 {
		return nil, errors.New("scope defines no [[config]]")
	}
	return &sf, nil
}

// scopeLoader resolves the spectra a scope file references.
type scopeLoader struct {
	loader
	dir string
}

func (s scopeLoader) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

func (s scopeLoader) fluorophores(list []scopeFluor) ([]efficiency.Fluorophore, error) {
	out := make([]efficiency.Fluorophore, 0, len(list))
	for _, sf := range list {
		fl, err := s.fluorophore(sf)
		if err != nil {
			return nil, err
		}
		out = append(out, fl)
	}
	return out, nil
}

func (s scopeLoader) fluorophore(sf scopeFluor) (efficiency.Fluorophore, error) {
	name := strings.TrimSpace(sf.Name)
	if name == "" {
		return efficiency.Fluorophore{}, errors.New("fluorophore without a name")
	}
	kind, category, ownerKind := efficiency.KindDye, series.CategoryDye, series.OwnerDye
	switch strings.ToLower(strings.TrimSpace(sf.Kind)) {
	case "", "d", "dye":
	case "p", "protein":
		kind, category, ownerKind = efficiency.KindProtein, series.CategoryProtein, series.OwnerProtein
	default:
		return efficiency.Fluorophore{}, fmt.Errorf("fluorophore %s: unknown kind %q", name, sf.Kind)
	}

	fl := efficiency.Fluorophore{
		ID:       sf.ID,
		Name:     name,
		Kind:     kind,
		ExtCoeff: sf.ExtCoeff,
		QY:       sf.QY,
		Color:    sf.Color,
	}
	if fl.ID == "" {
		fl.ID = ingest.OwnerID(ownerKind, name)
	}
	if sf.File == "" {
		return fl, nil
	}

	res, err := s.load(s.path(sf.File), ingest.Request{Category: category, Owner: name}, -1)
	if err != nil {
		return efficiency.Fluorophore{}, fmt.Errorf("fluorophore %s: %w", name, err)
	}
	var absorption *series.Series
	for _, rec := range res.Records {
		spectrum := rec.Spectrum.Series
		switch spectrum.Tag().Subtype {
		case series.SubtypeExcitation:
			fl.Excitation = spectrum
		case series.SubtypeAbsorption:
			absorption = spectrum
		case series.SubtypeEmission:
			fl.Emission = spectrum
		case series.SubtypeTwoPhoton:
			fl.TwoPhoton = spectrum
		}
	}
	if fl.Excitation == nil {
		fl.Excitation = absorption
	}
	for _, cerr := range res.Errors {
		s.logger.Warn("fluorophore column skipped", "fluorophore", name, "error", cerr)
	}
	return fl, nil
}

func (s scopeLoader) configs(list []scopeConfig) ([]optics.Config, error) {
	out := make([]optics.Config, 0, len(list))
	for i, sc := range list {
		name := strings.TrimSpace(sc.Name)
		if name == "" {
			name = fmt.Sprintf("config %d", i+1)
		}
		cfg, err := s.config(name, sc)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", name, err)
		}
		out = append(out, cfg)
	}
	return out, nil
}

func (s scopeLoader) config(name string, sc scopeConfig) (optics.Config, error) {
	light, err := s.optional(sc.Light, series.CategoryLight, "")
	if err != nil {
		return optics.Config{}, err
	}
	camera, err := s.optional(sc.Camera, series.CategoryCamera, "")
	if err != nil {
		return optics.Config{}, err
	}
	exFilters, err := s.elements(sc.ExFilters, series.SubtypeBandpassEx)
	if err != nil {
		return optics.Config{}, err
	}
	dichroics, err := s.elements(sc.Dichroics, series.SubtypeBeamsplitter)
	if err != nil {
		return optics.Config{}, err
	}
	emFilters, err := s.elements(sc.EmFilters, series.SubtypeBandpassEm)
	if err != nil {
		return optics.Config{}, err
	}

	reflects := true
	if sc.ReflectsExcitation != nil {
		reflects = *sc.ReflectsExcitation
	}
	cfg := optics.NewConfig(name, light, camera, exFilters, dichroics, emFilters, reflects)
	cfg.Laser = sc.Laser
	return cfg, nil
}

func (s scopeLoader) optional(se *scopeElement, category series.Category, subtype series.Subtype) (*optics.Element, error) {
	if se == nil {
		return nil, nil
	}
	el, err := s.element(*se, category, subtype)
	if err != nil {
		return nil, err
	}
	return &el, nil
}

func (s scopeLoader) elements(list []scopeElement, subtype series.Subtype) ([]optics.Element, error) {
	out := make([]optics.Element, 0, len(list))
	for _, se := range list {
		el, err := s.element(se, series.CategoryFilter, subtype)
		if err != nil {
			return nil, err
		}
		out = append(out, el)
	}
	return out, nil
}

// element loads the first spectrum in the element's file. subtype applies
// when the element does not name one.
func (s scopeLoader) element(se scopeElement, category series.Category, subtype series.Subtype) (optics.Element, error) {
	if se.File == "" {
		return optics.Element{}, fmt.Errorf("element %q has no file", se.Name)
	}
	req := ingest.Request{Category: category, Subtype: series.Subtype(se.Subtype), Owner: se.Name}
	if req.Subtype == "" {
		req.Subtype = subtype
	}
	res, err := s.load(s.path(se.File), req, -1)
	if err != nil {
		return optics.Element{}, err
	}
	if len(res.Records) == 0 {
		if len(res.Errors) > 0 {
			return optics.Element{}, res.Errors[0]
		}
		return optics.Element{}, fmt.Errorf("%s: no spectrum found", se.File)
	}
	rec := res.Records[0]
	name := se.Name
	if name == "" {
		name = rec.Spectrum.Owner.Name
	}
	return optics.Element{Name: name, Spectrum: rec.Spectrum.Series}, nil
}
