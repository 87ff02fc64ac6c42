package platemap

import (
	"reflect"
	"testing"
)

func annotated(t *testing.T, rows ...Row) Table {
	t.Helper()
	out, err := ComputeGlobalIndex(canonicalTable(rows...), NewWellOrder())
	if err != nil {
		t.Fatalf("annotate: %v", err)
	}
	return out
}

func well96Of(t Table, row Row) string {
	return t.Cell(row, t.ColumnIndex(Field96Well)).String()
}

func plateOf(t Table, row Row) string {
	return t.Cell(row, t.ColumnIndex(FieldPlate)).String()
}

func TestSortByView_96WellOrder(t *testing.T) {
	table := annotated(t,
		textRow("A1", "A1", "5"),
		textRow("B1", "B2", "1"),
		textRow("A1", "A2", "1"),
	)

	out, err := SortByView(table, View96, NewWellOrder())
	if err != nil {
		t.Fatalf("sort: %v", err)
	}

	// Plate ascending, then interleaved rank (A1=0 < B1=1).
	expected := []struct{ well, plate string }{
		{"A1", "1"},
		{"B1", "1"},
		{"A1", "5"},
	}
	for i, want := range expected {
		if well96Of(out, out.Rows[i]) != want.well || plateOf(out, out.Rows[i]) != want.plate {
			t.Fatalf("row %d: expected %s@%s, got %s@%s", i, want.well, want.plate,
				well96Of(out, out.Rows[i]), plateOf(out, out.Rows[i]))
		}
	}
}

func TestSortByView_384GlobalOrder(t *testing.T) {
	table := annotated(t,
		textRow("A1", "C1", "5"),
		textRow("A1", "B2", "1"),
		textRow("B1", "A1", "1"),
	)

	out, err := SortByView(table, View384, NewWellOrder())
	if err != nil {
		t.Fatalf("sort: %v", err)
	}

	idx := out.ColumnIndex(FieldGlobalIndex)
	prev := -1.0
	for i, row := range out.Rows {
		cell := out.Cell(row, idx)
		if cell.Kind != CellNumber || cell.Number < prev {
			t.Fatalf("row %d out of order: %+v after %v", i, cell, prev)
		}
		prev = cell.Number
	}
}

func TestSortByView_UnsortableRowsAppended(t *testing.T) {
	table := annotated(t,
		textRow("", "", ""),
		textRow("B1", "B2", "1"),
		textRow("A1", "", "1"),
		textRow("A1", "A1", "1"),
	)

	out, err := SortByView(table, View96, NewWellOrder())
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if len(out.Rows) != len(table.Rows) {
		t.Fatalf("partition lost rows: %d != %d", len(out.Rows), len(table.Rows))
	}

	// Sorted sortable rows first, then unsortable rows in their original
	// relative order.
	if well96Of(out, out.Rows[0]) != "A1" || well96Of(out, out.Rows[1]) != "B1" {
		t.Fatalf("sortable rows out of order: %s, %s",
			well96Of(out, out.Rows[0]), well96Of(out, out.Rows[1]))
	}
	if well96Of(out, out.Rows[2]) != "" {
		t.Fatalf("expected fully empty row first among unsortable, got %q", well96Of(out, out.Rows[2]))
	}
	if well96Of(out, out.Rows[3]) != "A1" || !out.Cell(out.Rows[3], out.ColumnIndex(Field384Well)).IsEmpty() {
		t.Fatalf("expected partial row last, got %v", out.Rows[3])
	}
}

func TestSortByView_UnparseablePlateIsUnsortable(t *testing.T) {
	table := annotated(t,
		textRow("A1", "A1", "first"),
		textRow("B1", "B2", "2"),
	)

	out, err := SortByView(table, View96, NewWellOrder())
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if plateOf(out, out.Rows[0]) != "2" {
		t.Fatalf("expected parseable row first, got plate %q", plateOf(out, out.Rows[0]))
	}
	if plateOf(out, out.Rows[1]) != "first" {
		t.Fatalf("expected unparseable plate appended, got %q", plateOf(out, out.Rows[1]))
	}
}

func TestSortByView_UnknownWellSortsLast(t *testing.T) {
	table := annotated(t,
		textRow("Z9", "A1", "1"),
		textRow("H12", "A2", "1"),
		textRow("A1", "A3", "1"),
	)

	out, err := SortByView(table, View96, NewWellOrder())
	if err != nil {
		t.Fatalf("sort: %v", err)
	}

	wells := []string{
		well96Of(out, out.Rows[0]),
		well96Of(out, out.Rows[1]),
		well96Of(out, out.Rows[2]),
	}
	if !reflect.DeepEqual(wells, []string{"A1", "H12", "Z9"}) {
		t.Fatalf("expected unknown label last, got %v", wells)
	}
}

func TestSortByView_Stability(t *testing.T) {
	// Duplicate keys: relative input order must survive, run after run.
	table := annotated(t,
		textRow("A1", "A1", "1"),
		textRow("A1", "A1", "1"),
		textRow("A1", "A1", "1"),
	)
	table.Rows[0] = append(table.Rows[0], TextCell("first"))
	table.Rows[1] = append(table.Rows[1], TextCell("second"))
	table.Rows[2] = append(table.Rows[2], TextCell("third"))

	for run := 0; run < 5; run++ {
		out, err := SortByView(table, View96, NewWellOrder())
		if err != nil {
			t.Fatalf("sort: %v", err)
		}
		for i, want := range []string{"first", "second", "third"} {
			tag := out.Rows[i][len(out.Rows[i])-1].String()
			if tag != want {
				t.Fatalf("run %d row %d: expected %s, got %s", run, i, want, tag)
			}
		}
	}
}

func TestSortByView_Idempotent(t *testing.T) {
	table := annotated(t,
		textRow("B1", "B2", "1"),
		textRow("", "", ""),
		textRow("A1", "A1", "1"),
	)

	once, err := SortByView(table, View96, NewWellOrder())
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	twice, err := SortByView(once, View96, NewWellOrder())
	if err != nil {
		t.Fatalf("resort: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("sorting is not idempotent")
	}
}

func TestSortByView_384RequiresGlobalColumn(t *testing.T) {
	table := canonicalTable(textRow("A1", "A1", "1"))

	_, err := SortByView(table, View384, NewWellOrder())
	if err == nil {
		t.Fatalf("expected error without global index column")
	}
	if KindFromError(err) != KindValidation {
		t.Fatalf("expected validation kind, got %v", err)
	}
}

func TestSortByView_UnknownView(t *testing.T) {
	table := annotated(t, textRow("A1", "A1", "1"))

	_, err := SortByView(table, View("1536-well"), NewWellOrder())
	if err == nil {
		t.Fatalf("expected error for unknown view")
	}
}
