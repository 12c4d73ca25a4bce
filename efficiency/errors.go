package efficiency

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fluor/optics"
	"github.com/cwbudde/algo-fluor/spectra/series"
)

// ConfigError reports an optical configuration that cannot be evaluated.
type ConfigError struct {
	Config string
	Path   optics.Path
	Err    error
}

func (e *ConfigError) Error() string {
	if errors.Is(e.Err, series.ErrEmptyOverlap) {
		return fmt.Sprintf("efficiency: %s: this optical configuration's %s path elements do not overlap in wavelength",
			e.Config, e.Path)
	}
	return fmt.Sprintf("efficiency: %s: %s path: %v", e.Config, e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
