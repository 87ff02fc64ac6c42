package platemap

import (
	"strconv"
	"strings"
)

// Canonical field names downstream stages depend on.
const (
	Field96Well      = "96 Well"
	Field384Well     = "384 Well"
	FieldPlate       = "Plate"
	FieldGlobalIndex = "Global_384_Position"
)

// RequiredFields lists the canonical fields in resolution order.
func RequiredFields() []string {
	return []string{Field96Well, Field384Well, FieldPlate}
}

// View selects the sort order applied to sortable rows.
type View string

const (
	View96  View = "96-well"
	View384 View = "384-well"
)

// Format is the render output format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// CellKind tags the value stored in a Cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is a raw spreadsheet value: text, number, or empty.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// TextCell creates a text cell. Whitespace-only text is kept as-is but
// reported empty by IsEmpty.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell creates a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// EmptyCell creates an empty cell.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// IsEmpty reports whether the cell holds no usable value.
func (c Cell) IsEmpty() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellText:
		return strings.TrimSpace(c.Text) == ""
	default:
		return false
	}
}

// String renders the cell value for display and matching.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// Row is an ordered sequence of cells. Row identity is its position in the
// table; unsortable rows keep that position relative to each other across
// every transformation.
type Row []Cell

// Grid is a raw, header-agnostic value grid as read from a file.
type Grid [][]Cell

// Table is a grid with a header applied. Rows may be ragged; missing cells
// read as empty.
type Table struct {
	Columns []string
	Rows    []Row
}

// ColumnIndex returns the position of a named column, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Cell returns the cell at the given column index, treating short rows as
// padded with empty cells.
func (t Table) Cell(row Row, idx int) Cell {
	if idx < 0 || idx >= len(row) {
		return EmptyCell()
	}
	return row[idx]
}

// TableFromGrid applies the given row of the grid as the header and returns
// the remaining rows as the table body.
func TableFromGrid(grid Grid, headerRow int) (Table, error) {
	if headerRow < 0 || headerRow >= len(grid) {
		return Table{}, NewError(KindValidation, "header row index out of range", nil)
	}
	header := grid[headerRow]
	columns := make([]string, len(header))
	for i, cell := range header {
		columns[i] = strings.TrimSpace(cell.String())
	}
	rows := make([]Row, 0, len(grid)-headerRow-1)
	for _, raw := range grid[headerRow+1:] {
		rows = append(rows, Row(raw))
	}
	return Table{Columns: columns, Rows: rows}, nil
}

// Logger provides logging hooks.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
