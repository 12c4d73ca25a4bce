// Package display turns canonical spectra and efficiency reports into chart
// payloads and rendered charts.
//
// Traces carry the same fields the interactive spectra viewer consumes:
// (x, y) points, peak, wavelength range and a display colour derived from
// the peak wavelength. RenderHTML and RenderReportHTML produce standalone
// ECharts pages; RenderPNG draws a static line plot.
package display
