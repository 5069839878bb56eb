package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"image/png"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/yigit/gradebook/internal/pkg/grading"
)

func sampleRecords() []Record {
	return []Record{
		{{"rank", 1}, {"student_id", "S002"}, {"name", "李雷"}, {"gpa", 3.75}},
		{{"rank", 2}, {"student_id", "S001"}, {"name", "Han Meimei"}, {"gpa", 0.0}},
	}
}

func TestNewTable(t *testing.T) {
	table := NewTable(sampleRecords())

	want := []string{"rank", "student_id", "name", "gpa"}
	if len(table.Columns) != len(want) {
		t.Fatalf("columns = %v, want %v", table.Columns, want)
	}
	for i := range want {
		if table.Columns[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, table.Columns[i], want[i])
		}
	}
	if len(table.Rows) != 2 || table.Rows[1][1] != "S001" {
		t.Errorf("unexpected rows: %v", table.Rows)
	}

	if empty := NewTable(nil); len(empty.Columns) != 0 || len(empty.Rows) != 0 {
		t.Errorf("empty input produced %+v", empty)
	}
}

func TestNewTableMissingKeyLeavesEmptyCell(t *testing.T) {
	table := NewTable([]Record{
		{{"a", 1}, {"b", 2}},
		{{"b", 3}},
	})
	if table.Rows[1][0] != nil || table.Rows[1][1] != 3 {
		t.Errorf("row = %v", table.Rows[1])
	}
}

func TestToDelimitedText(t *testing.T) {
	out, err := ToDelimitedText(NewTable(sampleRecords()))
	if err != nil {
		t.Fatalf("ToDelimitedText: %v", err)
	}
	if !bytes.HasPrefix(out, utf8BOM) {
		t.Fatal("missing UTF-8 BOM")
	}

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, utf8BOM))).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d lines, want 3", len(rows))
	}
	if rows[0][0] != "rank" || rows[1][2] != "李雷" || rows[1][3] != "3.75" || rows[2][3] != "0" {
		t.Errorf("unexpected content: %v", rows)
	}
}

func TestToSpreadsheet(t *testing.T) {
	out, err := ToSpreadsheet(NewTable(sampleRecords()), "Ranking")
	if err != nil {
		t.Fatalf("ToSpreadsheet: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Ranking")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][1] != "student_id" || rows[1][1] != "S002" || rows[2][2] != "Han Meimei" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(""); err != nil || f != FormatXLSX {
		t.Errorf("empty format = %v, %v", f, err)
	}
	if f, err := ParseFormat("csv"); err != nil || f != FormatCSV {
		t.Errorf("csv format = %v, %v", f, err)
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Error("pdf accepted")
	}
}

func TestToChartImage(t *testing.T) {
	dist := grading.Distribute([]float64{55, 65, 85, 95, 96})

	out, err := ToChartImage(dist, "CS101 / Class A", "n=5")
	if err != nil {
		t.Fatalf("ToChartImage: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 2*chartWidth || img.Bounds().Dy() != chartHeight {
		t.Errorf("image size = %v", img.Bounds())
	}
}

func TestToChartImageSkipsEmptyBandsInPie(t *testing.T) {
	dist := grading.Distribute([]float64{95, 92})
	if _, err := ToChartImage(dist, "all excellent", ""); err != nil {
		t.Fatalf("single-band distribution failed: %v", err)
	}
}

func TestToChartImageEmpty(t *testing.T) {
	_, err := ToChartImage(grading.Distribute(nil), "", "")
	if !errors.Is(err, ErrEmptyDistribution) {
		t.Errorf("err = %v, want ErrEmptyDistribution", err)
	}
}
