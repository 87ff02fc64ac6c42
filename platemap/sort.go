package platemap

import (
	"fmt"
	"sort"
)

// SortByView reorders the sortable rows of an annotated table.
//
// A row is sortable when 96 Well, 384 Well, and Plate are all populated and
// the plate number parses; for the 384 view the row additionally needs a
// computed Global_384_Position. Everything else is unsortable and is appended
// after the sorted rows in its original relative order. The output contract
// is append-only, not reinsertion at original positions.
//
// Sorting is stable: rows with equal keys keep their input order, so unknown
// or duplicate wells never shuffle between runs.
func SortByView(t Table, view View, order *WellOrder) (Table, error) {
	if order == nil {
		return Table{}, NewError(KindInternal, "well order is required", nil)
	}
	for _, field := range RequiredFields() {
		if t.ColumnIndex(field) < 0 {
			return Table{}, NewError(KindValidation, "table is not canonicalized: missing "+field, nil)
		}
	}

	plateIdx := t.ColumnIndex(FieldPlate)
	well96Idx := t.ColumnIndex(Field96Well)
	globalIdx := t.ColumnIndex(FieldGlobalIndex)

	switch view {
	case View96:
	case View384:
		if globalIdx < 0 {
			return Table{}, NewError(KindValidation, "table has no "+FieldGlobalIndex+" column; compute the global index first", nil)
		}
	default:
		return Table{}, NewError(KindValidation, fmt.Sprintf("unknown view %q", view), nil)
	}

	type keyedRow struct {
		row     Row
		primary int
		second  int
	}

	var sortable []keyedRow
	var unsortable []Row
	for _, row := range t.Rows {
		plate, plateOK := ParsePlate(t.Cell(row, plateIdx))
		if !rowComplete(t, row) || !plateOK {
			unsortable = append(unsortable, row)
			continue
		}

		switch view {
		case View96:
			sortable = append(sortable, keyedRow{
				row:     row,
				primary: plate,
				second:  order.Rank96(t.Cell(row, well96Idx).String()),
			})
		case View384:
			global := t.Cell(row, globalIdx)
			if global.Kind != CellNumber {
				unsortable = append(unsortable, row)
				continue
			}
			sortable = append(sortable, keyedRow{row: row, primary: int(global.Number)})
		}
	}

	sort.SliceStable(sortable, func(i, j int) bool {
		if sortable[i].primary != sortable[j].primary {
			return sortable[i].primary < sortable[j].primary
		}
		return sortable[i].second < sortable[j].second
	})

	rows := make([]Row, 0, len(t.Rows))
	for _, kr := range sortable {
		rows = append(rows, kr.row)
	}
	rows = append(rows, unsortable...)

	return Table{Columns: t.Columns, Rows: rows}, nil
}

func rowComplete(t Table, row Row) bool {
	for _, field := range RequiredFields() {
		if t.Cell(row, t.ColumnIndex(field)).IsEmpty() {
			return false
		}
	}
	return true
}
