// Package export renders report tables and score distributions as
// downloadable files.
package export

import "fmt"

// Field is one named cell of a record
type Field struct {
	Key   string
	Value any
}

// Record is an ordered set of fields. Order is preserved into the output columns.
type Record []Field

// Table is a header plus rows, ready for serialization
type Table struct {
	Columns []string
	Rows    [][]any
}

// NewTable builds a table from ordered records. The header comes from the
// keys of the first record; later records are read by key, so a missing
// key leaves an empty cell.
func NewTable(records []Record) Table {
	if len(records) == 0 {
		return Table{}
	}

	t := Table{Columns: make([]string, 0, len(records[0]))}
	for _, f := range records[0] {
		t.Columns = append(t.Columns, f.Key)
	}

	t.Rows = make([][]any, 0, len(records))
	for _, rec := range records {
		byKey := make(map[string]any, len(rec))
		for _, f := range rec {
			byKey[f.Key] = f.Value
		}
		row := make([]any, len(t.Columns))
		for i, col := range t.Columns {
			row[i] = byKey[col]
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Format is a supported tabular download format
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "xlsx" (the default when empty) or "csv"
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render serializes the table in the given format
func Render(t Table, f Format, sheetName string) ([]byte, error) {
	if f == FormatCSV {
		return ToDelimitedText(t)
	}
	return ToSpreadsheet(t, sheetName)
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprint(x)
	}
}
