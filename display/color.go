package display

import (
	"fmt"
	"math"
)

// ColorFunc maps a wavelength in nm to a display colour.
type ColorFunc func(wavelength int) string

const (
	// CameraFill is the fill used for camera quantum-efficiency traces.
	CameraFill = "url(#crosshatch)"
	// LightFill is the fill used for light-source traces.
	LightFill = "url(#wavecolor_gradient)"
)

const colorGamma = 0.8

// WaveToColor approximates the perceived colour of monochromatic light as
// a hex string. Wavelengths below the visible range render dark violet and
// wavelengths above it dark red.
func WaveToColor(wavelength int) string {
	w := float64(wavelength)
	var r, g, b float64
	switch {
	case w < 380:
		b = 0.3
	case w < 440:
		a := 0.3 + 0.7*(w-380)/60
		r = (440 - w) / 60 * a
		b = a
	case w < 490:
		g = (w - 440) / 50
		b = 1
	case w < 510:
		g = 1
		b = (510 - w) / 20
	case w < 580:
		r = (w - 510) / 70
		g = 1
	case w < 645:
		r = 1
		g = (645 - w) / 65
	default:
		r = math.Max(0.3, 0.3+0.7*(750-w)/105)
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

func channel(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Round(255 * math.Pow(v, colorGamma)))
}
