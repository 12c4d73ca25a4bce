package efficiency

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-fluor/optics"
)

// Batch is the outcome of evaluating several configurations. A failing
// configuration contributes an error and no report.
type Batch struct {
	Reports []*Report
	Errors  []error
}

// ReportAll evaluates every configuration against fluors. Cancellation is
// checked between configurations; the remaining ones are recorded as
// failed.
func (e *Engine) ReportAll(ctx context.Context, cfgs []optics.Config, fluors []Fluorophore) Batch {
	var b Batch
	for i, cfg := range cfgs {
		if err := ctx.Err(); err != nil {
			for _, rest := range cfgs[i:] {
				b.Errors = append(b.Errors, fmt.Errorf("efficiency: %s: %w", rest.Name, err))
			}
			break
		}
		report, err := e.Report(ctx, cfg, fluors)
		if err != nil {
			b.Errors = append(b.Errors, err)
			continue
		}
		b.Reports = append(b.Reports, report)
	}
	return b
}
