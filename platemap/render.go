package platemap

import (
	"context"
	"io"
	"strings"
)

// CSVOptions configures CSV output.
type CSVOptions struct {
	IncludeHeaders bool
	Delimiter      rune
}

// XLSXOptions configures XLSX output.
type XLSXOptions struct {
	IncludeHeaders bool
	SheetName      string
	MaxBytes       int64
}

// RenderOptions configures renderer behavior.
type RenderOptions struct {
	CSV  CSVOptions
	XLSX XLSXOptions
}

// RenderStats capture renderer output.
type RenderStats struct {
	Rows  int64
	Bytes int64
}

// Renderer writes a table to the destination, columns and row order exactly
// as produced by the sorter.
type Renderer interface {
	Render(ctx context.Context, t Table, w io.Writer, opts RenderOptions) (RenderStats, error)
}

// NormalizeFormat coerces format values into known aliases.
func NormalizeFormat(format Format) Format {
	normalized := strings.ToLower(strings.TrimSpace(string(format)))
	switch normalized {
	case "", string(FormatXLSX), "excel", "xls":
		return FormatXLSX
	case "tsv", "txt":
		return FormatCSV
	default:
		return Format(normalized)
	}
}

// RendererFor returns the renderer for a format.
func RendererFor(format Format) (Renderer, error) {
	switch NormalizeFormat(format) {
	case FormatCSV:
		return CSVRenderer{}, nil
	case FormatXLSX:
		return XLSXRenderer{}, nil
	default:
		return nil, NewError(KindNotFound, "no renderer for format "+string(format), nil)
	}
}

// ContentType returns the MIME type served for a format.
func ContentType(format Format) string {
	switch NormalizeFormat(format) {
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
