// Package resample converts measured spectra onto the canonical 1 nm integer
// grid.
//
// The grid spans [ceil(min), floor(max)) of the measured wavelengths.
// Spectra already on consecutive integer nanometers are returned as they are.
//
// Interpolation:
//   - two-photon spectra: piecewise linear, then Savitzky-Golay (9, 2)
//   - everything else: not-a-knot cubic spline unless WithMethod says otherwise
//
// Common workflows:
//   - Resample(raw, opts...)
//   - ResampleXY(xs, ys, tag, opts...) for parallel slices
package resample
