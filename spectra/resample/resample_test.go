package resample

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fluor/internal/testutil"
	"github.com/cwbudde/algo-fluor/spectra/interp"
	"github.com/cwbudde/algo-fluor/spectra/series"
)

var (
	exTag = series.Tag{Category: series.CategoryDye, Subtype: series.SubtypeExcitation}
	tpTag = series.Tag{Category: series.CategoryProtein, Subtype: series.SubtypeTwoPhoton}
)

func TestResampleCanonicalIsIdentity(t *testing.T) {
	xs := []float64{500, 501, 502, 503, 504}
	ys := []float64{0.1, 0.4, 0.9, 0.4, 0.1}
	s, err := ResampleXY(xs, ys, exTag)
	if err != nil {
		t.Fatalf("ResampleXY: %v", err)
	}
	if s.MinWavelength() != 500 || s.MaxWavelength() != 504 {
		t.Fatalf("range = [%d, %d], want [500, 504]", s.MinWavelength(), s.MaxWavelength())
	}
	testutil.RequireSliceNearlyEqual(t, s.Values(), ys, 0)
}

func TestResampleTooFewSamples(t *testing.T) {
	xs := []float64{400, 402, 404, 406, 408, 410, 412, 414, 416}
	ys := make([]float64, len(xs))
	if _, err := ResampleXY(xs, ys, exTag); !errors.Is(err, series.ErrInsufficientData) {
		t.Fatalf("err = %v, want ErrInsufficientData", err)
	}
	if _, err := ResampleXY(xs, ys, exTag, WithMinSamples(5)); err != nil {
		t.Fatalf("WithMinSamples(5): %v", err)
	}
}

func TestResampleEmptyGrid(t *testing.T) {
	xs := make([]float64, 12)
	ys := make([]float64, 12)
	for i := range xs {
		xs[i] = 400.1 + 0.05*float64(i)
	}
	if _, err := ResampleXY(xs, ys, exTag); !errors.Is(err, series.ErrInterpolation) {
		t.Fatalf("err = %v, want ErrInterpolation", err)
	}
}

func TestResampleHalfStepRamp(t *testing.T) {
	var xs, ys []float64
	for x := 400.0; x <= 410.0; x += 0.5 {
		xs = append(xs, x)
		ys = append(ys, 0.01*x-3)
	}
	for _, m := range []interp.Method{interp.MethodNotAKnot, interp.MethodAkima, interp.MethodLinear} {
		s, err := ResampleXY(xs, ys, exTag, WithMethod(m))
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if s.MinWavelength() != 400 || s.Len() != 10 {
			t.Fatalf("%s: grid starts %d with %d samples, want 400 with 10", m, s.MinWavelength(), s.Len())
		}
		testutil.RequireSliceNearlyEqual(t, s.Values(), testutil.Ramp(0.01, -3, 400, 409), 1e-9)
	}
}

func TestResampleTwoPhotonSmoothed(t *testing.T) {
	xs, ys := testutil.GaussianXY(900, 40, 50, 700, 1100, 2)
	s, err := ResampleXY(xs, ys, tpTag)
	if err != nil {
		t.Fatalf("ResampleXY: %v", err)
	}
	if s.MinWavelength() != 700 || s.MaxWavelength() != 1099 {
		t.Fatalf("range = [%d, %d], want [700, 1099]", s.MinWavelength(), s.MaxWavelength())
	}
	testutil.RequireFinite(t, s.Values())
	v, _ := s.ValueAt(900)
	testutil.RequireNearlyEqual(t, v, 50, 0.2)

	raw, err := ResampleXY(xs, ys, tpTag, WithSmoothing(0, 0))
	if err != nil {
		t.Fatalf("unsmoothed: %v", err)
	}
	v, _ = raw.ValueAt(901)
	want := 50 * math.Exp(-0.5*math.Pow(1.0/40, 2))
	testutil.RequireNearlyEqual(t, v, want, 0.02)
}

func TestResampleTwoPhotonIgnoresMethod(t *testing.T) {
	var xs, ys []float64
	for x := 700.0; x <= 800.0; x += 2.5 {
		xs = append(xs, x)
		y := 0.0
		if x == 750 {
			y = 10
		}
		ys = append(ys, y)
	}
	want, err := ResampleXY(xs, ys, tpTag, WithSmoothing(0, 0))
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if v, _ := want.ValueAt(735); v != 0 {
		t.Fatalf("linear value at 735 nm = %v, want 0", v)
	}
	for _, m := range []interp.Method{interp.MethodNaturalCubic, interp.MethodAkima, interp.MethodNotAKnot} {
		got, err := ResampleXY(xs, ys, tpTag, WithSmoothing(0, 0), WithMethod(m))
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		testutil.RequireSliceNearlyEqual(t, got.Values(), want.Values(), 0)
	}
}

func TestResampleNotAKnotNeedsFourSamples(t *testing.T) {
	xs := []float64{500, 502.5, 505}
	ys := []float64{0.2, 0.9, 0.4}
	if _, err := ResampleXY(xs, ys, exTag, WithMinSamples(3)); !errors.Is(err, series.ErrInsufficientData) {
		t.Fatalf("err = %v, want ErrInsufficientData", err)
	}
	if _, err := ResampleXY(xs, ys, exTag, WithMinSamples(3), WithMethod(interp.MethodLinear)); err != nil {
		t.Fatalf("linear: %v", err)
	}
}

func TestResampleTwoPhotonShortGridSkipsSmoothing(t *testing.T) {
	var xs, ys []float64
	for i := 0; i < 12; i++ {
		xs = append(xs, 800+0.5*float64(i))
		ys = append(ys, float64(i))
	}
	s, err := ResampleXY(xs, ys, tpTag)
	if err != nil {
		t.Fatalf("ResampleXY: %v", err)
	}
	if s.Len() != 5 {
		t.Fatalf("len = %d, want 5", s.Len())
	}
	testutil.RequireSliceNearlyEqual(t, s.Values(), []float64{0, 2, 4, 6, 8}, 1e-12)
}

func TestResampleIsIdempotent(t *testing.T) {
	xs, ys := testutil.GaussianXY(520, 25, 1, 400, 650, 2.5)
	first, err := ResampleXY(xs, ys, exTag)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	raw, err := series.NewRaw(first.Points(), first.Tag())
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	second, err := Resample(raw)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if second.MinWavelength() != first.MinWavelength() {
		t.Fatalf("start moved from %d to %d", first.MinWavelength(), second.MinWavelength())
	}
	testutil.RequireSliceNearlyEqual(t, second.Values(), first.Values(), 0)
}

func TestResampleNil(t *testing.T) {
	if _, err := Resample(nil); !errors.Is(err, series.ErrInsufficientData) {
		t.Fatalf("err = %v, want ErrInsufficientData", err)
	}
}
