package reports

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	defaultChartHeight = "360px"
	salesChartTitle    = "Sales Report"
	salesSeriesName    = "Sales"
)

// ErrEmptySeries is returned when a chart has nothing to plot.
var ErrEmptySeries = errors.New("reports: sales series is empty")

// ChartSnippet is a chart ready to embed in a host page: the container
// element, its init script and the runtime scripts the page must load.
type ChartSnippet struct {
	Element string
	Script  string
	Assets  []string
}

// ChartRenderer draws the sales line chart. Theme and assets host are fixed
// at construction, so rendered output is memoized per series.
type ChartRenderer struct {
	theme      string
	assetsHost string
	memo       bool

	mu       sync.Mutex
	pages    map[string]string
	snippets map[string]ChartSnippet
	renders  int
}

// ChartOption customizes a ChartRenderer.
type ChartOption func(*ChartRenderer)

// WithChartMemo toggles memoization; disabled renders on every call.
func WithChartMemo(enabled bool) ChartOption {
	return func(r *ChartRenderer) {
		r.memo = enabled
	}
}

// WithChartTheme sets the ECharts theme (defaults to Westeros).
func WithChartTheme(theme string) ChartOption {
	return func(r *ChartRenderer) {
		r.theme = theme
	}
}

// WithChartAssetsHost loads the ECharts runtime from host.
func WithChartAssetsHost(host string) ChartOption {
	return func(r *ChartRenderer) {
		r.assetsHost = host
	}
}

// NewChartRenderer builds a memoizing renderer.
func NewChartRenderer(options ...ChartOption) *ChartRenderer {
	r := &ChartRenderer{
		theme:    types.ThemeWesteros,
		memo:     true,
		pages:    make(map[string]string),
		snippets: make(map[string]ChartSnippet),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// SalesChartHTML renders points as a standalone chart page.
func (r *ChartRenderer) SalesChartHTML(points []Point) (string, error) {
	if len(points) == 0 {
		return "", ErrEmptySeries
	}
	key := seriesKey(points)
	r.mu.Lock()
	defer r.mu.Unlock()
	if html, ok := r.pages[key]; ok && r.memo {
		return html, nil
	}
	var buf bytes.Buffer
	r.renders++
	if err := r.newLine(points).Render(&buf); err != nil {
		return "", fmt.Errorf("reports: render sales chart: %w", err)
	}
	html := buf.String()
	if r.memo {
		r.pages[key] = html
	}
	return html, nil
}

// SalesChartSnippet renders points as an embeddable chart.
func (r *ChartRenderer) SalesChartSnippet(points []Point) (ChartSnippet, error) {
	if len(points) == 0 {
		return ChartSnippet{}, ErrEmptySeries
	}
	key := seriesKey(points)
	r.mu.Lock()
	defer r.mu.Unlock()
	if snippet, ok := r.snippets[key]; ok && r.memo {
		return snippet, nil
	}
	r.renders++
	line := r.newLine(points)
	rendered := line.RenderSnippet()
	snippet := ChartSnippet{
		Element: rendered.Element,
		Script:  rendered.Script,
		Assets:  append([]string(nil), line.JSAssets.Values...),
	}
	if r.memo {
		r.snippets[key] = snippet
	}
	return snippet, nil
}

// RenderSalesChart writes the chart for points to w.
func (r *ChartRenderer) RenderSalesChart(w io.Writer, points []Point) error {
	html, err := r.SalesChartHTML(points)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, html)
	return err
}

func (r *ChartRenderer) newLine(points []Point) *charts.Line {
	initOpts := opts.Initialization{
		Theme:  r.theme,
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: salesChartTitle}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(months(points))
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		data[i] = opts.LineData{Name: p.Month, Value: p.Value}
	}
	line.AddSeries(salesSeriesName, data)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

func seriesKey(points []Point) string {
	var b strings.Builder
	for _, p := range points {
		b.WriteString(p.Month)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(p.Value, 'g', -1, 64))
		b.WriteByte(';')
	}
	return b.String()
}
