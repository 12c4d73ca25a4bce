// Package geometry measures canonical spectra: peak wavelength, band width,
// windowed averages and area.
package geometry
