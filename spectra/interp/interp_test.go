package interp

import (
	"errors"
	"math"
	"testing"
)

func TestLinearMidpoints(t *testing.T) {
	p, err := Fit(MethodLinear, []float64{0, 2, 4}, []float64{0, 4, 0})
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	for _, tc := range []struct {
		x, want float64
	}{
		{x: 0, want: 0},
		{x: 1, want: 2},
		{x: 2, want: 4},
		{x: 3, want: 2},
	} {
		if got := p.Predict(tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("Predict(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestNotAKnotReproducesCubic(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x + 1 }
	xs := []float64{0, 0.7, 1.9, 2.4, 3.3, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}

	p, err := Fit(MethodNotAKnot, xs, ys)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	for _, x := range []float64{0.3, 1, 2, 4.1} {
		if got, want := p.Predict(x), f(x); math.Abs(got-want) > 1e-9 {
			t.Fatalf("Predict(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestNotAKnotFourPoints(t *testing.T) {
	f := func(x float64) float64 { return 2*x*x*x - x*x + 3 }
	xs := []float64{0, 1, 2.5, 4}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	p, err := Fit(MethodNotAKnot, xs, ys)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	for _, x := range []float64{0.5, 2, 3.2} {
		if got, want := p.Predict(x), f(x); math.Abs(got-want) > 1e-9 {
			t.Fatalf("Predict(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestFritschButlandStaysMonotone(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{0, 0, 0, 1, 1, 1}
	p, err := Fit(MethodFritschButland, xs, ys)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	prev := math.Inf(-1)
	for x := 0.0; x <= 5; x += 0.1 {
		v := p.Predict(x)
		if v < -1e-12 || v > 1+1e-12 {
			t.Fatalf("overshoot at %v: %v", x, v)
		}
		if v < prev-1e-12 {
			t.Fatalf("not monotone at %v: %v < %v", x, v, prev)
		}
		prev = v
	}
}

func TestFitErrors(t *testing.T) {
	if _, err := Fit(MethodNotAKnot, []float64{0, 1}, []float64{0, 1}); !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("err = %v, want ErrTooFewPoints", err)
	}
	if _, err := Fit(MethodNotAKnot, []float64{0, 1, 2}, []float64{0, 1, 0}); !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("three points: err = %v, want ErrTooFewPoints", err)
	}
	if _, err := Fit(MethodAkima, []float64{0, 1, 1}, []float64{0, 1, 2}); !errors.Is(err, ErrNotIncreasing) {
		t.Fatalf("err = %v, want ErrNotIncreasing", err)
	}
	if _, err := Fit(Method(99), []float64{0, 1, 2}, []float64{0, 1, 2}); err == nil {
		t.Fatal("expected error for unknown method")
	}
}

func TestGrid(t *testing.T) {
	start, n, err := Grid(399.6, 410.2)
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if start != 400 || n != 10 {
		t.Fatalf("Grid = %d,%d; want 400,10", start, n)
	}
	if _, _, err := Grid(400.2, 400.9); !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("err = %v, want ErrEmptyGrid", err)
	}
}

func TestParseMethod(t *testing.T) {
	for m := range methodNames {
		got, err := ParseMethod(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMethod(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMethod("sinc"); err == nil {
		t.Fatal("expected error for unknown name")
	}
}
