package platemap

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	excelMaxRows     = 1048576
	defaultSheetName = "Sorted"
)

// XLSXRenderer renders XLSX output.
type XLSXRenderer struct{}

// Render streams the table into an XLSX workbook.
func (r XLSXRenderer) Render(ctx context.Context, t Table, w io.Writer, opts RenderOptions) (RenderStats, error) {
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	sheetName := opts.XLSX.SheetName
	if sheetName == "" {
		sheetName = defaultSheetName
	}
	defaultSheet := file.GetSheetName(0)
	if defaultSheet != sheetName {
		file.SetSheetName(defaultSheet, sheetName)
	}

	stream, err := file.NewStreamWriter(sheetName)
	if err != nil {
		return RenderStats{}, err
	}

	headerID, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return RenderStats{}, err
	}

	rowIndex := 1
	if opts.XLSX.IncludeHeaders {
		headers := make([]interface{}, len(t.Columns))
		for i, col := range t.Columns {
			headers[i] = excelize.Cell{StyleID: headerID, Value: col}
		}
		if err := stream.SetRow(fmt.Sprintf("A%d", rowIndex), headers); err != nil {
			return RenderStats{}, err
		}
		rowIndex++
	}

	stats := RenderStats{}
	for _, row := range t.Rows {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if rowIndex > excelMaxRows {
			return stats, NewError(KindValidation, "xlsx row limit exceeded", nil)
		}

		cells := make([]interface{}, len(t.Columns))
		for i := range t.Columns {
			cells[i] = excelize.Cell{Value: xlsxValue(t.Cell(row, i))}
		}
		if err := stream.SetRow(fmt.Sprintf("A%d", rowIndex), cells); err != nil {
			return stats, err
		}
		rowIndex++
		stats.Rows++
	}

	if err := stream.Flush(); err != nil {
		return stats, err
	}

	lw := newLimitedWriter(w, opts.XLSX.MaxBytes)
	if _, err := file.WriteTo(lw); err != nil {
		return stats, err
	}
	stats.Bytes = lw.count
	return stats, nil
}

func xlsxValue(c Cell) any {
	switch c.Kind {
	case CellNumber:
		return c.Number
	case CellText:
		return c.Text
	default:
		return ""
	}
}
