package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fluor/display"
	"github.com/cwbudde/algo-fluor/ingest"
	"github.com/cwbudde/algo-fluor/spectra/geometry"
	"github.com/cwbudde/algo-fluor/spectra/series"
)

type importFlags struct {
	category string
	subtype  string
	owner    string
	waveCol  int
	json     bool
}

func (f importFlags) request() ingest.Request {
	return ingest.Request{
		Category: series.Category(f.category),
		Subtype:  series.Subtype(f.subtype),
		Owner:    f.owner,
	}
}

func (f *importFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.category, "category", "", "Spectrum category: d, p, l, f or c")
	cmd.Flags().StringVar(&f.subtype, "subtype", "", "Spectrum subtype; read from column headers when empty")
	cmd.Flags().StringVar(&f.owner, "owner", "", "Owner name; read from column headers when empty")
	cmd.Flags().IntVar(&f.waveCol, "wave-col", -1, "Zero-based wavelength column (default from config)")
	_ = cmd.MarkFlagRequired("category")
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Resample and normalize the spectra in a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			res, err := loader{cfg: cfg, logger: logger}.load(args[0], flags.request(), flags.waveCol)
			if err != nil {
				return err
			}
			printColumnErrors(cmd, res.Errors)

			if flags.json {
				traces := make([]display.Trace, len(res.Records))
				for i, rec := range res.Records {
					traces[i] = display.NewTrace(rec.Spectrum)
				}
				if err := writeJSON(cmd, traces); err != nil {
					return err
				}
			} else if len(res.Records) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), renderRecords(res.Records))
			}

			if len(res.Records) == 0 {
				return errors.New("no spectra imported")
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print chart traces as JSON")
	return cmd
}

func renderRecords(records []ingest.Record) string {
	headers := []string{"Col", "Owner", "Tag", "Range", "Peak", "Width", "Policy", "Band"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignLeft}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		s := rec.Spectrum.Series
		width := "-"
		if b, ok := geometry.Width(s, geometry.DefaultWidthHeight); ok {
			width = fmt.Sprintf("%d-%d", b.Low, b.High)
		}
		band := "-"
		if rec.Band != nil {
			band = fmt.Sprintf("%d/%d (%.3f)", rec.Band.Center, rec.Band.Width, rec.MeanTransmission)
		}
		rows = append(rows, []string{
			strconv.Itoa(rec.Column),
			rec.Spectrum.Owner.Name,
			s.Tag().String(),
			fmt.Sprintf("%d-%d", s.MinWavelength(), s.MaxWavelength()),
			strconv.Itoa(geometry.PeakWavelength(s)),
			width,
			rec.Policy.String(),
			band,
		})
	}
	return renderTable("", headers, rows, aligns)
}

func printColumnErrors(cmd *cobra.Command, errs []*ingest.ColumnError) {
	for _, err := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
}
