package series

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData indicates too few samples to build or resample a series.
	ErrInsufficientData = errors.New("spectra: insufficient data")
	// ErrNonNumericData indicates a NaN or infinite wavelength or value.
	ErrNonNumericData = errors.New("spectra: non-numeric data")
	// ErrInterpolation indicates the interpolant could not be evaluated.
	ErrInterpolation = errors.New("spectra: interpolation failed")
	// ErrValidation indicates a category/subtype/owner mismatch.
	ErrValidation = errors.New("spectra: validation failed")
	// ErrInvalidRange indicates a malformed wavelength window.
	ErrInvalidRange = errors.New("spectra: invalid wavelength range")
	// ErrEmptyOverlap indicates series without a common wavelength window.
	ErrEmptyOverlap = errors.New("spectra: no spectral overlap")
	// ErrLengthMismatch indicates a rescale with the wrong number of values.
	ErrLengthMismatch = errors.New("spectra: length mismatch")
)

// ValidationError reports the offending field of a rejected series.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("spectra: invalid %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Invalid returns a *ValidationError for field with a formatted message.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
