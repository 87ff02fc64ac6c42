// Package delim reads delimited text into raw value grids.
package delim

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/goliatone/go-platemap/platemap"
)

// Options configures delimited reading.
type Options struct {
	// Delimiter for the input. If 0, auto-detects among ',', ';', '\t'.
	Delimiter rune
}

// ReadGrid reads delimited text into a raw grid. Ragged records are allowed;
// short rows read as empty cells downstream.
func ReadGrid(r io.Reader, opts Options) (platemap.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, platemap.NewError(platemap.KindInternal, "read input", err)
	}

	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = DetectDelimiter(data)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var grid platemap.Grid
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, platemap.NewError(platemap.KindValidation, "parse delimited input", err)
		}
		cells := make(platemap.Row, len(record))
		for i, value := range record {
			if strings.TrimSpace(value) == "" {
				cells[i] = platemap.EmptyCell()
			} else {
				cells[i] = platemap.TextCell(value)
			}
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// DetectDelimiter picks the delimiter with the highest count over the first
// few lines, among comma, semicolon, and tab. Comma wins ties.
func DetectDelimiter(data []byte) rune {
	sample := data
	if idx := nthLineEnd(data, 10); idx > 0 {
		sample = data[:idx]
	}

	best := ','
	bestCount := bytes.Count(sample, []byte{','})
	for _, cand := range []byte{';', '\t'} {
		if count := bytes.Count(sample, []byte{cand}); count > bestCount {
			best = rune(cand)
			bestCount = count
		}
	}
	return best
}

func nthLineEnd(data []byte, n int) int {
	offset := 0
	for i := 0; i < n; i++ {
		idx := bytes.IndexByte(data[offset:], '\n')
		if idx < 0 {
			return -1
		}
		offset += idx + 1
	}
	return offset
}
