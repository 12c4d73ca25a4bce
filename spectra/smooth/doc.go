// Package smooth provides Savitzky-Golay smoothing for uniformly sampled
// spectra.
//
// Each output sample is the value at that position of the least-squares
// polynomial fitted to the surrounding window. The first and last half
// windows are evaluated on the polynomial fitted to the first and last full
// window, so the output keeps the input length.
package smooth
