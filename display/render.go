package display

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-fluor/efficiency"
)

// ErrNoTraces is returned when a chart has nothing to draw.
var ErrNoTraces = errors.New("display: no traces")

const (
	chartWidth  = "1000px"
	chartHeight = "500px"
	areaOpacity = 0.25
)

// RenderHTML writes a standalone ECharts line chart of traces to w.
func RenderHTML(w io.Writer, title string, traces []Trace) error {
	if len(traces) == 0 {
		return ErrNoTraces
	}
	lo, hi := waveRange(traces)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Wavelength (nm)", NameLocation: "middle", NameGap: 25, Min: lo, Max: hi}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Normalized", Min: 0}),
	)
	for _, t := range traces {
		data := make([]opts.LineData, len(t.Values))
		for i, p := range t.Values {
			data[i] = opts.LineData{Value: []interface{}{p.X, p.Y}}
		}
		seriesOpts := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		}
		if c, ok := solidColor(t.Color); ok {
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: c}))
		}
		if t.Area {
			seriesOpts = append(seriesOpts, charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(areaOpacity)}))
		}
		line.AddSeries(t.Key, data, seriesOpts...)
	}
	if err := line.Render(w); err != nil {
		return fmt.Errorf("display: render line chart: %w", err)
	}
	return nil
}

// RenderReportHTML writes a bar chart of the top entries of r, ranked by
// field, to w.
func RenderReportHTML(w io.Writer, r *efficiency.Report, field efficiency.SortField, limit int) error {
	bar, err := reportBar(r, field, limit)
	if err != nil {
		return err
	}
	if err := bar.Render(w); err != nil {
		return fmt.Errorf("display: render bar chart: %w", err)
	}
	return nil
}

// RenderReportsHTML writes one bar chart per report on a single page.
func RenderReportsHTML(w io.Writer, title string, reports []*efficiency.Report, field efficiency.SortField, limit int) error {
	page := components.NewPage()
	page.SetPageTitle(title)
	drawn := 0
	for _, r := range reports {
		bar, err := reportBar(r, field, limit)
		if errors.Is(err, ErrNoTraces) {
			continue
		}
		if err != nil {
			return err
		}
		page.AddCharts(bar)
		drawn++
	}
	if drawn == 0 {
		return ErrNoTraces
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("display: render report page: %w", err)
	}
	return nil
}

func reportBar(r *efficiency.Report, field efficiency.SortField, limit int) (*charts.Bar, error) {
	entries := r.Ranked(field, limit)
	if len(entries) == 0 {
		return nil, ErrNoTraces
	}

	names := make([]string, len(entries))
	data := make([]opts.BarData, len(entries))
	for i, e := range entries {
		names[i] = e.Name
		data[i] = opts.BarData{Name: e.Name, Value: max(field.Value(e), 0)}
		if c, ok := solidColor(e.Color); ok {
			data[i].ItemStyle = &opts.ItemStyle{Color: c}
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: r.Config, Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: r.Config, Subtitle: "sorted by " + fieldLabel(field)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: fieldLabel(field)}),
	)
	bar.SetXAxis(names).
		AddSeries(fieldLabel(field), data,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	return bar, nil
}

// RenderPNG draws traces as a static PNG line plot of the given size in
// points.
func RenderPNG(w io.Writer, traces []Trace, width, height float64) error {
	if len(traces) == 0 {
		return ErrNoTraces
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("display: invalid image size %vx%v", width, height)
	}

	p := plot.New()
	p.X.Label.Text = "Wavelength (nm)"
	p.Y.Label.Text = "Normalized"
	p.Y.Min = 0

	for _, t := range traces {
		pts := make(plotter.XYs, len(t.Values))
		for i, v := range t.Values {
			pts[i] = plotter.XY{X: v.X, Y: v.Y}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("display: %s: %w", t.Key, err)
		}
		line.Width = vg.Points(1)
		if c, ok := parseHex(t.Color); ok {
			line.Color = c
			if t.Area {
				fill := c
				fill.A = 64
				line.FillColor = fill
			}
		}
		p.Add(line)
		p.Legend.Add(t.Key, line)
	}
	p.Legend.Top = true
	p.Legend.Left = false

	wt, err := p.WriterTo(vg.Length(width), vg.Length(height), "png")
	if err != nil {
		return fmt.Errorf("display: png canvas: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("display: write png: %w", err)
	}
	return nil
}

func waveRange(traces []Trace) (lo, hi int) {
	lo, hi = traces[0].MinWave, traces[0].MaxWave
	for _, t := range traces[1:] {
		lo = min(lo, t.MinWave)
		hi = max(hi, t.MaxWave)
	}
	return lo, hi
}

func fieldLabel(f efficiency.SortField) string {
	switch f {
	case efficiency.SortExcitation:
		return "Excitation efficiency"
	case efficiency.SortEmission:
		return "Emission efficiency"
	default:
		return "Brightness"
	}
}

// solidColor reports whether c is a plain colour rather than an SVG
// pattern reference.
func solidColor(c string) (string, bool) {
	if c == "" || strings.HasPrefix(c, "url(") {
		return "", false
	}
	return c, true
}

// parseHex decodes #rrggbb.
func parseHex(s string) (color.NRGBA, bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}
