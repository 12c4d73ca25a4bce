// Package series defines the wavelength-indexed sample containers shared by
// the spectra packages.
//
// Two forms exist:
//
//   - [Raw]: measured samples as submitted, sorted and de-duplicated, with
//     arbitrary (possibly fractional, possibly irregular) wavelength steps.
//   - [Series]: the canonical form, sampled at every integer nanometer. The
//     wavelength of sample i is MinWavelength()+i, so ordering and the 1 nm
//     step cannot be violated.
//
// Every container carries a [Tag] (category + subtype). Spectra owned by a
// dye, protein, filter, light source or camera are wrapped in [Spectrum].
package series
