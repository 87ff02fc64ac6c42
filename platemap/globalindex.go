package platemap

import (
	"math"
	"strconv"
	"strings"
)

// wellsPerGroup is how many 96-well source plates consolidate into one
// 384-well destination plate.
const wellsPerGroup = 4

// ComputeGlobalIndex appends the Global_384_Position column: for a row on
// plate p with 384-well label w,
//
//	plateGroup = (p-1)/4
//	global     = plateGroup*384 + Index384(w)
//
// The local index comes from the row's own 384 Well label, so the key is
// reproducible for any consolidation layout the instrument wrote out. Rows
// whose plate number does not parse as a positive integer, or whose 384-well
// label is unrecognized, get an empty cell; bad values never abort the table.
// Running it again recomputes the column in place.
func ComputeGlobalIndex(t Table, order *WellOrder) (Table, error) {
	if order == nil {
		return Table{}, NewError(KindInternal, "well order is required", nil)
	}
	for _, field := range []string{FieldPlate, Field384Well} {
		if t.ColumnIndex(field) < 0 {
			return Table{}, NewError(KindValidation, "table is not canonicalized: missing "+field, nil)
		}
	}

	plateIdx := t.ColumnIndex(FieldPlate)
	wellIdx := t.ColumnIndex(Field384Well)

	globalIdx := t.ColumnIndex(FieldGlobalIndex)
	columns := append([]string(nil), t.Columns...)
	if globalIdx < 0 {
		columns = append(columns, FieldGlobalIndex)
		globalIdx = len(columns) - 1
	}

	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		next := make(Row, len(columns))
		copy(next, row)

		value := EmptyCell()
		plate, plateOK := ParsePlate(t.Cell(row, plateIdx))
		local := order.Index384(t.Cell(row, wellIdx).String())
		if plateOK && local >= 0 {
			group := (plate - 1) / wellsPerGroup
			value = NumberCell(float64(group*384 + local))
		}
		next[globalIdx] = value
		rows[i] = next
	}

	return Table{Columns: columns, Rows: rows}, nil
}

// ParsePlate reads a 1-based plate number from a cell. Numeric text such as
// "5" or "5.0" is accepted; anything non-integral or below 1 is rejected.
func ParsePlate(c Cell) (int, bool) {
	var f float64
	switch c.Kind {
	case CellNumber:
		f = c.Number
	case CellText:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if f < 1 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
