// Package xlsx reads Excel workbooks into raw value grids.
package xlsx

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-platemap/platemap"
)

// ReadGrid reads one sheet of an xlsx stream into a raw grid, no header
// assumed and no type coercion beyond text cells. An empty sheet name selects
// the first sheet.
func ReadGrid(r io.Reader, sheet string) (platemap.Grid, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, platemap.NewError(platemap.KindValidation, "open xlsx", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if sheet == "" {
		sheet = file.GetSheetName(0)
	}
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, platemap.NewError(platemap.KindNotFound, "read sheet "+sheet, err)
	}

	grid := make(platemap.Grid, len(rows))
	for i, row := range rows {
		cells := make(platemap.Row, len(row))
		for j, value := range row {
			if value == "" {
				cells[j] = platemap.EmptyCell()
			} else {
				cells[j] = platemap.TextCell(value)
			}
		}
		grid[i] = cells
	}
	return grid, nil
}
