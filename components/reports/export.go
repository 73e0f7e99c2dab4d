package reports

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ettle/strcase"
	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-admin-console/components/collection"
)

// SalesSheet is the worksheet name of the sales workbook.
const SalesSheet = "Sales Report"

const defaultSheet = "Sheet1"

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ErrUnknownFormat is returned for export formats other than csv and xlsx.
var ErrUnknownFormat = errors.New("reports: unknown export format")

// ContentType returns the MIME type of an export format.
func ContentType(format string) (string, error) {
	switch format {
	case FormatCSV:
		return "text/csv; charset=utf-8", nil
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteRows exports table in format. name titles the xlsx sheet.
func WriteRows(w io.Writer, format, name string, table collection.Table) error {
	switch format {
	case FormatCSV:
		return WriteRowsCSV(w, table)
	case FormatXLSX:
		return WriteRowsWorkbook(w, strcase.ToPascal(name), table)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Headers derives column titles from field names.
func Headers(columns []string) []string {
	out := make([]string, len(columns))
	for i, name := range columns {
		out[i] = strcase.ToPascal(name)
	}
	return out
}

// WriteRowsCSV writes a header line followed by one line per row.
func WriteRowsCSV(w io.Writer, table collection.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers(table.Columns)); err != nil {
		return fmt.Errorf("reports: write csv header: %w", err)
	}
	for _, row := range table.Rows {
		values := make([]string, len(row))
		for i, field := range row {
			values[i] = field.Value
		}
		if err := cw.Write(values); err != nil {
			return fmt.Errorf("reports: write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRowsWorkbook writes rows to a single-sheet workbook.
func WriteRowsWorkbook(w io.Writer, sheet string, table collection.Table) error {
	cells := make([][]any, 0, len(table.Rows)+1)
	cells = append(cells, stringsToAny(Headers(table.Columns)))
	for _, row := range table.Rows {
		values := make([]any, len(row))
		for i, field := range row {
			values[i] = field.Value
		}
		cells = append(cells, values)
	}
	return writeWorkbook(w, sheet, cells)
}

// WriteSalesWorkbook writes the Month/Sales table to the "Sales Report"
// sheet.
func WriteSalesWorkbook(w io.Writer, points []Point) error {
	table := make([][]any, 0, len(points)+1)
	table = append(table, []any{"Month", "Sales"})
	for _, p := range points {
		table = append(table, []any{p.Month, p.Value})
	}
	return writeWorkbook(w, SalesSheet, table)
}

func writeWorkbook(w io.Writer, sheet string, table [][]any) (err error) {
	if strings.TrimSpace(sheet) == "" {
		sheet = defaultSheet
	}
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("reports: close workbook: %w", cerr)
		}
	}()
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("reports: name sheet %q: %w", sheet, err)
		}
	}
	for r, values := range table {
		for c, value := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("reports: cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("reports: set %s: %w", cell, err)
			}
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("reports: write workbook: %w", err)
	}
	return nil
}

func stringsToAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
