// Package normalize rescales canonical spectra to unit scale.
//
// A spectrum is left alone unless its maximum exceeds the upper trigger
// (1.5) or falls below the lower trigger (0.1). Once triggered, one policy
// applies:
//
//	PolicyPercent    filters with 60 < max < 101: v/100
//	PolicyTwoPhoton  protein 2p spectra: v/peak, peak from local maxima
//	PolicyPeak       everything else: v/max
//
// Results are rounded to four decimals. The peak policies clamp negative
// values to zero; the percent policy does not.
package normalize
