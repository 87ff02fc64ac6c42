package xlsx

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	sheet := file.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

func TestReadGrid(t *testing.T) {
	buf := workbookBytes(t, [][]any{
		{"96 Well", "384 Well", "Plate"},
		{"A1", "A1", 1},
		{"B1", "B2", 5},
	})

	grid, err := ReadGrid(buf, "")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(grid) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(grid))
	}
	if grid[0][0].String() != "96 Well" {
		t.Fatalf("expected header cell, got %q", grid[0][0].String())
	}
	if grid[1][2].String() != "1" {
		t.Fatalf("expected plate value, got %q", grid[1][2].String())
	}
}

func TestReadGrid_MissingSheet(t *testing.T) {
	buf := workbookBytes(t, [][]any{{"a"}})

	if _, err := ReadGrid(buf, "NoSuchSheet"); err == nil {
		t.Fatalf("expected error for missing sheet")
	}
}

func TestReadGrid_NotAWorkbook(t *testing.T) {
	if _, err := ReadGrid(bytes.NewReader([]byte("plain text")), ""); err == nil {
		t.Fatalf("expected error for non-xlsx input")
	}
}
