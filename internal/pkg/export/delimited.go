package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// utf8BOM lets spreadsheet tools detect the encoding of non-ASCII names
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ToDelimitedText writes the table as comma-separated UTF-8 text with a BOM.
func ToDelimitedText(t Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if len(t.Columns) > 0 {
		if err := w.Write(t.Columns); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	line := make([]string, 0, len(t.Columns))
	for _, row := range t.Rows {
		line = line[:0]
		for _, v := range row {
			line = append(line, cellString(v))
		}
		if err := w.Write(line); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
