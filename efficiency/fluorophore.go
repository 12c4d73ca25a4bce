package efficiency

import (
	"github.com/cwbudde/algo-fluor/spectra/geometry"
	"github.com/cwbudde/algo-fluor/spectra/series"
)

// Kind distinguishes fluorescent proteins from dyes.
type Kind string

const (
	KindProtein Kind = "p"
	KindDye     Kind = "d"
)

// Fluorophore is the photophysical record evaluated against a configuration.
// A zero ExtCoeff or QY means the constant is unknown.
type Fluorophore struct {
	ID         string
	Name       string
	Kind       Kind
	Excitation *series.Series
	Emission   *series.Series
	// TwoPhoton is kept with the record; efficiencies use the one-photon
	// spectra only.
	TwoPhoton  *series.Series
	ExtCoeff   float64
	QY         float64
	// Color overrides the colour derived from the emission peak.
	Color string
}

// ColorFunc maps a wavelength in nm to a display colour.
type ColorFunc func(wavelength int) string

func (f Fluorophore) displayColor(color ColorFunc) string {
	if f.Color != "" || color == nil || f.Emission == nil {
		return f.Color
	}
	peak := geometry.PeakWavelength(f.Emission)
	if peak == geometry.NoPeak {
		return ""
	}
	return color(peak)
}

func (f Fluorophore) label() string {
	if f.Name != "" {
		return f.Name
	}
	return f.ID
}
