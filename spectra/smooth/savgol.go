package smooth

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrWindow indicates a window length that is not odd and positive.
	ErrWindow = errors.New("smooth: window must be odd and positive")
	// ErrOrder indicates a polynomial order outside [0, window).
	ErrOrder = errors.New("smooth: polynomial order must be below window length")
	// ErrShortInput indicates fewer samples than the window length.
	ErrShortInput = errors.New("smooth: input shorter than window")
)

// SavitzkyGolay smooths y with a window of the given odd length and a fitted
// polynomial of the given order. The input is not modified.
func SavitzkyGolay(y []float64, window, order int) ([]float64, error) {
	if window <= 0 || window%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrWindow, window)
	}
	if order < 0 || order >= window {
		return nil, fmt.Errorf("%w: order %d, window %d", ErrOrder, order, window)
	}
	if len(y) < window {
		return nil, fmt.Errorf("%w: %d samples, window %d", ErrShortInput, len(y), window)
	}

	h, err := projection(window, order)
	if err != nil {
		return nil, err
	}

	half := window / 2
	n := len(y)
	out := make([]float64, n)
	center := h.RawRowView(half)
	for i := half; i < n-half; i++ {
		out[i] = floats.Dot(center, y[i-half:i+half+1])
	}

	head := y[:window]
	tail := y[n-window:]
	for j := 0; j < half; j++ {
		out[j] = floats.Dot(h.RawRowView(j), head)
		out[n-half+j] = floats.Dot(h.RawRowView(half+1+j), tail)
	}
	return out, nil
}

// projection returns the window x window hat matrix A(AᵀA)⁻¹Aᵀ of the
// polynomial design matrix A over offsets -half..half. Row j maps a window of
// samples to the fitted value at position j.
func projection(window, order int) (*mat.Dense, error) {
	half := window / 2
	a := mat.NewDense(window, order+1, nil)
	for i := 0; i < window; i++ {
		x := float64(i - half)
		p := 1.0
		for k := 0; k <= order; k++ {
			a.Set(i, k, p)
			p *= x
		}
	}

	var ata mat.Dense
	ata.Mul(a.T(), a)
	var inv mat.Dense
	if err := inv.Inverse(&ata); err != nil {
		return nil, fmt.Errorf("smooth: singular normal matrix: %w", err)
	}

	var pinv mat.Dense
	pinv.Mul(&inv, a.T())
	h := mat.NewDense(window, window, nil)
	h.Mul(a, &pinv)
	return h, nil
}
