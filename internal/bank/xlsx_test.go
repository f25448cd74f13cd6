package bank

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

var header = []interface{}{"question", "subject", "use", "correct", "responseA", "responseB", "responseC", "responseD", "remark"}

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "questions.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		header,
		{"What is a p-value?", "math,statistics", "quiz1", "A", "A probability", "A constant", "A dataset", "", "seed"},
		{"What is variance?", "math,statistics", "quiz1", "C", "A mean", "A median", "A spread measure"},
		{"", "math", "quiz1", "A", "x", "y"}, // blank question text, skipped
	})

	qs, err := LoadXLSX(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("want 2 rows, got %d", len(qs))
	}
	if qs[0].Question != "What is a p-value?" || qs[0].Correct != "A" || qs[0].Remark != "seed" {
		t.Fatalf("first row mangled: %+v", qs[0])
	}
	if qs[1].ResponseC != "A spread measure" || qs[1].ResponseD != "" {
		t.Fatalf("short row handling broken: %+v", qs[1])
	}
}

func TestLoadXLSXMissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"question", "subject", "use", "correct", "responseA"}, // no responseB
		{"Q?", "math", "quiz1", "A", "x"},
	})
	if _, err := LoadXLSX(path); err == nil {
		t.Fatalf("want error for missing responseB column")
	}
}

func TestLoadXLSXMissingFile(t *testing.T) {
	if _, err := LoadXLSX(filepath.Join(t.TempDir(), "nope.xlsx")); err == nil {
		t.Fatalf("want error for missing file")
	}
}
