// Package reports renders the sales report: the monthly series as an
// ECharts line chart, spreadsheet and CSV exports, and a printable page.
package reports

import "fmt"

// Point is one month of the sales series.
type Point struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

var salesSeries = []Point{
	{Month: "January", Value: 30},
	{Month: "February", Value: 45},
	{Month: "March", Value: 25},
	{Month: "April", Value: 60},
	{Month: "May", Value: 50},
	{Month: "June", Value: 70},
	{Month: "July", Value: 90},
}

// SalesSeries returns the fixed January to July sales figures.
func SalesSeries() []Point {
	return append([]Point(nil), salesSeries...)
}

// FilterMessage echoes a date range. The report data is not filtered.
func FilterMessage(start, end string) string {
	return fmt.Sprintf("Filtering from %s to %s", start, end)
}

func months(points []Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Month
	}
	return out
}
