package optics

import (
	"fmt"

	"github.com/cwbudde/algo-fluor/spectra/series"
)

// Path identifies the excitation or emission side of a configuration.
// The zero value leaves an element unassigned; it is accepted on either path.
type Path int

const (
	Unassigned Path = iota
	Excitation
	Emission
)

func (p Path) String() string {
	switch p {
	case Unassigned:
		return "unassigned"
	case Excitation:
		return "excitation"
	case Emission:
		return "emission"
	default:
		return fmt.Sprintf("Path(%d)", int(p))
	}
}

// Element is one optical component placed on a path.
type Element struct {
	Name     string
	Spectrum *series.Series
	Path     Path
	// Reflects marks a beamsplitter used in reflection on this path.
	Reflects bool
}

// Transmission returns the spectrum the element contributes to its path.
func (e Element) Transmission() (*series.Series, error) {
	if e.Spectrum == nil {
		return nil, series.Invalid("data", "element %q has no spectrum", e.Name)
	}
	if !e.Reflects {
		return e.Spectrum, nil
	}
	values := e.Spectrum.Values()
	for i, v := range values {
		values[i] = 1 - v
	}
	return series.New(e.Spectrum.MinWavelength(), values, e.Spectrum.Tag())
}

// Config is an optical configuration: the elements on both paths and an
// optional laser line replacing the continuous light source.
type Config struct {
	Name       string
	Excitation []Element
	Emission   []Element
	// Laser is the excitation wavelength in nm; zero means no laser.
	Laser int
}

// NewConfig assembles a configuration the way a microscope is usually
// described. The excitation path is light, excitation filters and
// dichroics; the emission path is dichroics, emission filters and camera.
// When reflectsExcitation is set the dichroics reflect excitation light and
// transmit emission, otherwise the other way around. light and camera may
// be nil.
func NewConfig(name string, light, camera *Element, exFilters, dichroics, emFilters []Element, reflectsExcitation bool) Config {
	cfg := Config{Name: name}
	if light != nil {
		cfg.Excitation = append(cfg.Excitation, on(*light, Excitation, false))
	}
	for _, f := range exFilters {
		cfg.Excitation = append(cfg.Excitation, on(f, Excitation, false))
	}
	for _, d := range dichroics {
		cfg.Excitation = append(cfg.Excitation, on(d, Excitation, reflectsExcitation))
	}
	for _, d := range dichroics {
		cfg.Emission = append(cfg.Emission, on(d, Emission, !reflectsExcitation))
	}
	for _, f := range emFilters {
		cfg.Emission = append(cfg.Emission, on(f, Emission, false))
	}
	if camera != nil {
		cfg.Emission = append(cfg.Emission, on(*camera, Emission, false))
	}
	return cfg
}

func on(e Element, p Path, reflects bool) Element {
	e.Path = p
	e.Reflects = reflects
	return e
}

// ExcitationSpectrum returns the combined excitation path, led by the laser
// line when one is set.
func (c Config) ExcitationSpectrum() (*series.Series, error) {
	list, err := transmissions(c.Excitation, Excitation)
	if err != nil {
		return nil, err
	}
	if c.Laser != 0 {
		line, err := Laser(c.Laser)
		if err != nil {
			return nil, err
		}
		list = append([]*series.Series{line}, list...)
	}
	return Product(list...)
}

// EmissionSpectrum returns the combined emission path.
func (c Config) EmissionSpectrum() (*series.Series, error) {
	list, err := transmissions(c.Emission, Emission)
	if err != nil {
		return nil, err
	}
	return Product(list...)
}

// HasLaser reports whether the excitation path is a single laser line.
func (c Config) HasLaser() bool { return c.Laser > 0 }

func transmissions(elems []Element, p Path) ([]*series.Series, error) {
	list := make([]*series.Series, 0, len(elems)+1)
	for _, e := range elems {
		if e.Path != Unassigned && e.Path != p {
			return nil, series.Invalid("path", "%s element %q placed on the %s path", e.Path, e.Name, p)
		}
		s, err := e.Transmission()
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}
