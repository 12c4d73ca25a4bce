package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fluor/display"
	"github.com/cwbudde/algo-fluor/efficiency"
	"github.com/cwbudde/algo-fluor/internal/config"
	"github.com/cwbudde/algo-fluor/internal/reportcache"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var (
		sortBy    string
		limit     int
		htmlPath  string
		cachePath string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "report SCOPE.toml",
		Short: "Rank fluorophores against the optical configurations of a scope file",
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

			field := cfg.SortField()
			if sortBy != "" {
				if field, err = efficiency.ParseSortField(sortBy); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.Report.Limit
			}

			scope, err := readScope(args[0])
			if err != nil {
				return err
			}
			sl := scopeLoader{loader: loader{cfg: cfg, logger: logger}, dir: filepath.Dir(args[0])}
			fluors, err := sl.fluorophores(scope.Fluorophores)
			if err != nil {
				return err
			}
			configs, err := sl.configs(scope.Configs)
			if err != nil {
				return err
			}

			if cachePath == "" {
				cachePath = cfg.Report.CachePath
			}
			cache, closeCache, err := openCache(cachePath)
			if err != nil {
				return err
			}
			defer closeCache()

			engine := efficiency.NewEngine(
				efficiency.WithCache(cache, cfg.CacheTTL()),
				efficiency.WithWorkers(cfg.Report.Workers),
				efficiency.WithLogger(logger),
				efficiency.WithColor(display.WaveToColor),
			)
			batch := engine.ReportAll(cmd.Context(), configs, fluors)

			if asJSON {
				if err := writeJSON(cmd, batch.Reports); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				for _, r := range batch.Reports {
					fmt.Fprintln(out, renderReport(r, field, limit))
				}
			}

			if htmlPath != "" && len(batch.Reports) > 0 {
				if err := writeReportHTML(htmlPath, reportTitle(scope), batch.Reports, field, limit); err != nil {
					return err
				}
			}

			for _, err := range batch.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			}
			if len(batch.Errors) > 0 {
				return fmt.Errorf("%d of %d configurations failed", len(batch.Errors), len(configs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort by bright, ex or em (default from config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Entries per configuration, 0 for all (default from config)")
	cmd.Flags().StringVar(&htmlPath, "html", "", "Write bar charts of the reports to this HTML file")
	cmd.Flags().StringVar(&cachePath, "cache", "", "SQLite report cache (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the reports as JSON")
	return cmd
}

func openCache(path string) (efficiency.Cache, func(), error) {
	if strings.TrimSpace(path) == "" {
		return reportcache.NewMemory(), func() {}, nil
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, nil, err
	}
	db, err := reportcache.OpenSQLite(expanded)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = db.Close() }, nil
}

func reportTitle(scope *scopeFile) string {
	if scope.Name != "" {
		return scope.Name
	}
	return "fluorscope report"
}

func renderReport(r *efficiency.Report, field efficiency.SortField, limit int) string {
	title := r.Config
	if r.Laser > 0 {
		title = fmt.Sprintf("%s (%d nm laser)", r.Config, r.Laser)
	}
	headers := []string{"#", "Fluorophore", "Ex", "Em", "Brightness", "Note"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft}
	entries := r.Ranked(field, limit)
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Name,
			formatEfficiency(e.Ex),
			formatEfficiency(e.Em),
			strconv.FormatFloat(e.Brightness, 'f', 2, 64),
			e.Error,
		})
	}
	return renderTable(title, headers, rows, aligns)
}

func formatEfficiency(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 3, 64)
}

func writeReportHTML(path, title string, reports []*efficiency.Report, field efficiency.SortField, limit int) error {
	return writeFile(path, func(f *os.File) error {
		return display.RenderReportsHTML(f, title, reports, field, limit)
	})
}
