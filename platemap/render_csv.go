package platemap

import (
	"context"
	"encoding/csv"
	"io"
)

// CSVRenderer renders CSV output.
type CSVRenderer struct{}

// Render writes the table as CSV.
func (r CSVRenderer) Render(ctx context.Context, t Table, w io.Writer, opts RenderOptions) (RenderStats, error) {
	cw := &countingWriter{w: w}
	writer := csv.NewWriter(cw)
	if opts.CSV.Delimiter != 0 {
		writer.Comma = opts.CSV.Delimiter
	}

	if opts.CSV.IncludeHeaders {
		if err := writer.Write(t.Columns); err != nil {
			return RenderStats{}, err
		}
	}

	stats := RenderStats{}
	for _, row := range t.Rows {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		record := make([]string, len(t.Columns))
		for i := range t.Columns {
			record[i] = t.Cell(row, i).String()
		}
		if err := writer.Write(record); err != nil {
			return stats, err
		}
		stats.Rows++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return stats, err
	}

	stats.Bytes = cw.count
	return stats, nil
}
