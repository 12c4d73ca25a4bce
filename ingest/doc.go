// Package ingest turns tabular spectrophotometer exports into canonical,
// normalized spectra.
//
// A table holds one wavelength column and any number of value columns. Each
// value column is imported on its own: its owner and subtype may be read from
// the column header ("EGFP (em)"), samples outside the clip range or not
// above zero are dropped, and the rest is resampled and normalized. Failures
// are collected per column next to the successes.
package ingest
