package normalize

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-fluor/internal/testutil"
	"github.com/cwbudde/algo-fluor/spectra/series"
)

func mustSeries(t *testing.T, start int, values []float64, c series.Category, st series.Subtype) *series.Series {
	t.Helper()
	s, err := series.New(start, values, series.Tag{Category: c, Subtype: st})
	if err != nil {
		t.Fatalf("series.New: %v", err)
	}
	return s
}

func requireField(t *testing.T, err error, field string) {
	t.Helper()
	var verr *series.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if verr.Field != field {
		t.Fatalf("field = %q, want %q", verr.Field, field)
	}
}

func TestNormalizeUntriggered(t *testing.T) {
	in := []float64{0.2, 0.9, 1.2, 0.4}
	res, err := Normalize(mustSeries(t, 500, in, series.CategoryDye, series.SubtypeEmission))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if res.Policy != PolicyNone {
		t.Fatalf("policy = %s, want none", res.Policy)
	}
	testutil.RequireSliceNearlyEqual(t, res.Series.Values(), in, 0)
}

func TestNormalizePercentFilter(t *testing.T) {
	s := mustSeries(t, 500, []float64{0, 40, 80, 80, 12.34567}, series.CategoryFilter, series.SubtypeBandpass)
	res, err := Normalize(s)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if res.Policy != PolicyPercent {
		t.Fatalf("policy = %s, want percent", res.Policy)
	}
	testutil.RequireSliceNearlyEqual(t, res.Series.Values(), []float64{0, 0.4, 0.8, 0.8, 0.1235}, 1e-12)
	if v := s.Value(2); v != 80 {
		t.Fatalf("input modified: %v", v)
	}
}

func TestNormalizeFilterOutsidePercentBand(t *testing.T) {
	s := mustSeries(t, 500, []float64{0, 20, 40, 10}, series.CategoryFilter, series.SubtypeLongpass)
	res, err := Normalize(s)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if res.Policy != PolicyPeak {
		t.Fatalf("policy = %s, want peak", res.Policy)
	}
	testutil.RequireSliceNearlyEqual(t, res.Series.Values(), []float64{0, 0.5, 1, 0.25}, 1e-12)
}

func TestNormalizePeakClampsAndBounds(t *testing.T) {
	values := testutil.Gaussian(510, 15, 450, 600)
	for i := range values {
		values[i] = 250*values[i] - 3
	}
	res, err := Normalize(mustSeries(t, 450, values, series.CategoryDye, series.SubtypeEmission))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if res.Policy != PolicyPeak || res.Peak != nil {
		t.Fatalf("policy = %s peak = %v, want peak policy without metadata", res.Policy, res.Peak)
	}
	out := res.Series.Values()
	testutil.RequireBounded(t, out, 0, 1)
	if v, _ := res.Series.ValueAt(510); v != 1 {
		t.Fatalf("value at peak = %v, want 1", v)
	}
	if v, _ := res.Series.ValueAt(450); v != 0 {
		t.Fatalf("negative tail = %v, want 0", v)
	}
}

func TestNormalizeSmallMaximumScalesUp(t *testing.T) {
	res, err := Normalize(mustSeries(t, 400, []float64{0.01, 0.05, 0.02}, series.CategoryCamera, ""))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got := res.Series.Tag().Subtype; got != series.SubtypeQuantumEff {
		t.Fatalf("subtype = %q, want qe", got)
	}
	testutil.RequireSliceNearlyEqual(t, res.Series.Values(), []float64{0.2, 1, 0.4}, 1e-12)
}

func TestNormalizeTwoPhotonPeak(t *testing.T) {
	values := testutil.Gaussian(850, 30, 700, 1100)
	for i := range values {
		values[i] *= 40
	}
	values[3] = 60

	res, err := Normalize(mustSeries(t, 700, values, series.CategoryProtein, series.SubtypeTwoPhoton))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if res.Policy != PolicyTwoPhoton {
		t.Fatalf("policy = %s, want two-photon", res.Policy)
	}
	if res.Peak == nil || res.Peak.Wavelength != 850 || res.Peak.Value != 40 {
		t.Fatalf("peak = %+v, want 850 nm / 40", res.Peak)
	}
	if v, _ := res.Series.ValueAt(850); v != 1 {
		t.Fatalf("value at peak = %v, want 1", v)
	}
	if v, _ := res.Series.ValueAt(703); v != 1.5 {
		t.Fatalf("value at excluded spike = %v, want 1.5", v)
	}
}

func TestNormalizeTwoPhotonWithoutPeak(t *testing.T) {
	values := testutil.Ramp(1, 0, 0, 299)
	_, err := Normalize(mustSeries(t, 700, values, series.CategoryProtein, series.SubtypeTwoPhoton))
	requireField(t, err, "data")
}

func TestNormalizeDyeTwoPhotonUsesPeak(t *testing.T) {
	res, err := Normalize(mustSeries(t, 700, []float64{5, 10, 5}, series.CategoryDye, series.SubtypeTwoPhoton))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if res.Policy != PolicyPeak {
		t.Fatalf("policy = %s, want peak", res.Policy)
	}
}

func TestNormalizeNonPositiveMaximum(t *testing.T) {
	_, err := Normalize(mustSeries(t, 500, []float64{0, -1, 0}, series.CategoryDye, series.SubtypeExcitation))
	requireField(t, err, "data")
}

func TestNormalizeRejectsBadSubtype(t *testing.T) {
	_, err := Normalize(mustSeries(t, 500, []float64{1, 2, 3}, series.CategoryFilter, series.SubtypeEmission))
	requireField(t, err, "subtype")
	if !errors.Is(err, series.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestNormalizeCustomTriggers(t *testing.T) {
	s := mustSeries(t, 500, []float64{0.5, 1.2, 0.3}, series.CategoryDye, series.SubtypeEmission)
	res, err := Normalize(s, WithTriggers(0.1, 1.0))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, res.Series.Values(), []float64{0.4167, 1, 0.25}, 1e-12)
}

func TestNormalizeSpectrumKeepsOwner(t *testing.T) {
	s := mustSeries(t, 700, testutil.Ramp(0, 80, 700, 710), series.CategoryProtein, series.SubtypeEmission)
	owner := series.Owner{Kind: series.OwnerProtein, ID: "egfp", Name: "EGFP"}
	sp, err := series.NewSpectrum(owner, s)
	if err != nil {
		t.Fatalf("NewSpectrum: %v", err)
	}
	out, policy, err := Spectrum(sp)
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}
	if policy != PolicyPeak || out.Owner != owner || out.Series.Value(0) != 1 {
		t.Fatalf("got policy %s owner %+v first %v", policy, out.Owner, out.Series.Value(0))
	}
}

func TestTwoPhotonPeakEdges(t *testing.T) {
	y := []float64{1, 0, 3, 1, 0, 2, 0}
	if i, ok := twoPhotonPeak(y, 2, 0); !ok || i != 2 {
		t.Fatalf("index = %d, %v; want 2", i, ok)
	}
	if i, ok := twoPhotonPeak(y, 2, 2); !ok || i != 5 {
		t.Fatalf("index with skip = %d, %v; want 5", i, ok)
	}
	if _, ok := twoPhotonPeak([]float64{1, 2, 3}, 2, 0); ok {
		t.Fatal("monotone input has no local maximum")
	}
}
