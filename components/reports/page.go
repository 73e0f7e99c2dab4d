package reports

import (
	"embed"
	"fmt"
	"io"

	template "github.com/goliatone/go-template"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// PageTemplate is the printable report template name.
const PageTemplate = "report.html"

// Renderer describes the template renderer contract used by Page.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}

// NewTemplateRenderer creates a go-template renderer backed by the embedded
// templates.
func NewTemplateRenderer() (Renderer, error) {
	return template.NewRenderer(
		template.WithFS(embeddedTemplates),
		template.WithBaseDir("templates"),
		template.WithExtension(".html"),
	)
}

// Page renders the printable sales report.
type Page struct {
	renderer Renderer
	charts   *ChartRenderer
}

// NewPage builds a page. A nil charts renderer uses NewChartRenderer.
func NewPage(renderer Renderer, charts *ChartRenderer) *Page {
	if charts == nil {
		charts = NewChartRenderer()
	}
	return &Page{renderer: renderer, charts: charts}
}

// PageInput carries the optional date range shown above the report.
type PageInput struct {
	Start string
	End   string
}

// Render writes the report page to w.
func (p *Page) Render(w io.Writer, input PageInput) error {
	if p.renderer == nil {
		return fmt.Errorf("reports: page renderer is required")
	}
	points := SalesSeries()
	chart, err := p.charts.SalesChartSnippet(points)
	if err != nil {
		return err
	}
	rows := make([]map[string]any, len(points))
	for i, pt := range points {
		rows[i] = map[string]any{"month": pt.Month, "value": pt.Value}
	}
	data := map[string]any{
		"title":         salesChartTitle,
		"chart_assets":  chart.Assets,
		"chart_element": chart.Element,
		"chart_script":  chart.Script,
		"points":        rows,
	}
	if input.Start != "" || input.End != "" {
		data["filter_message"] = FilterMessage(input.Start, input.End)
	}
	if _, err := p.renderer.Render(PageTemplate, data, w); err != nil {
		return fmt.Errorf("reports: render page: %w", err)
	}
	return nil
}
