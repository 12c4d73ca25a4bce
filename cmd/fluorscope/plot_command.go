package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fluor/display"
)

const (
	defaultPlotWidth  = 720
	defaultPlotHeight = 360
)

func newPlotCommand(ctx *commandContext) *cobra.Command {
	var (
		flags    importFlags
		pngPath  string
		htmlPath string
		title    string
	)

	cmd := &cobra.Command{
		Use:   "plot FILE...",
		Short: "Render the spectra of one or more tables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			l := loader{cfg: cfg, logger: logger}
			var traces []display.Trace
			for _, path := range args {
				res, err := l.load(path, flags.request(), flags.waveCol)
				if err != nil {
					return err
				}
				printColumnErrors(cmd, res.Errors)
				for _, rec := range res.Records {
					traces = append(traces, display.NewTrace(rec.Spectrum))
				}
			}
			if len(traces) == 0 {
				return errors.New("no spectra to plot")
			}
			if title == "" {
				title = strings.Join(args, ", ")
			}

			if pngPath == "" && htmlPath == "" {
				return writeJSON(cmd, traces)
			}
			if pngPath != "" {
				if err := writeFile(pngPath, func(f *os.File) error {
					return display.RenderPNG(f, traces, defaultPlotWidth, defaultPlotHeight)
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", pngPath)
			}
			if htmlPath != "" {
				if err := writeFile(htmlPath, func(f *os.File) error {
					return display.RenderHTML(f, title, traces)
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", htmlPath)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&pngPath, "png", "", "Write a PNG line plot to this file")
	cmd.Flags().StringVar(&htmlPath, "html", "", "Write an interactive HTML chart to this file")
	cmd.Flags().StringVar(&title, "title", "", "Chart title")
	return cmd
}

func writeFile(path string, write func(*os.File) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return write(file)
}
