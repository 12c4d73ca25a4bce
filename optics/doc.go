// Package optics composes the spectra along a microscope light path.
//
// A path is an ordered list of elements (light source, filters,
// beamsplitters, camera). Its combined spectrum is the elementwise product of
// the element spectra over the wavelengths they all cover. Beamsplitters
// used in reflection contribute 1 - T(λ).
package optics
