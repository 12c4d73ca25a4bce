package reportcache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fluor/efficiency"
	"github.com/cwbudde/algo-fluor/optics"
	"github.com/cwbudde/algo-fluor/spectra/series"
)

func engineFixture(t *testing.T) (optics.Config, []efficiency.Fluorophore) {
	t.Helper()
	mk := func(lo, hi int, c series.Category, st series.Subtype) *series.Series {
		s, err := series.Constant(lo, hi, 1, series.Tag{Category: c, Subtype: st})
		require.NoError(t, err)
		return s
	}
	cfg := optics.Config{
		Name:       "wide",
		Excitation: []optics.Element{{Name: "ex", Spectrum: mk(400, 599, series.CategoryFilter, series.SubtypeBandpassEx)}},
		Emission:   []optics.Element{{Name: "em", Spectrum: mk(500, 699, series.CategoryFilter, series.SubtypeBandpassEm)}},
	}
	fluors := []efficiency.Fluorophore{{
		ID:         "a",
		Kind:       efficiency.KindDye,
		Excitation: mk(450, 549, series.CategoryDye, series.SubtypeExcitation),
		Emission:   mk(550, 749, series.CategoryDye, series.SubtypeEmission),
		ExtCoeff:   50000,
		QY:         0.5,
	}}
	return cfg, fluors
}
