// Package interp fits one-dimensional interpolants to measured spectra and
// evaluates them on the integer nanometer grid.
//
// Available methods, from cheapest to smoothest:
//
//   - [MethodLinear]:         piecewise linear
//   - [MethodFritschButland]: monotone piecewise cubic (no overshoot)
//   - [MethodAkima]:          Akima local cubic
//   - [MethodNaturalCubic]:   global cubic spline, zero end curvature
//   - [MethodNotAKnot]:       global cubic spline, not-a-knot ends (default)
//
// The fitted predictors come from gonum.org/v1/gonum/interp. [Fit] checks the
// preconditions those predictors panic on and reports them as errors instead.
package interp
