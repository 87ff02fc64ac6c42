package platemap

import "fmt"

// Canonicalize renames the matched header columns to the canonical field
// names. Every other column passes through untouched, in its original
// position; no data values change. The mapping must be complete.
func Canonicalize(t Table, mapping FieldMapping) (Table, error) {
	if missing := mapping.Missing(); len(missing) > 0 {
		return Table{}, NewFieldError("cannot canonicalize with unmatched fields", missing)
	}

	columns := append([]string(nil), t.Columns...)
	for _, field := range RequiredFields() {
		header := mapping.Columns[field]
		idx := -1
		for i, col := range columns {
			if col == header {
				idx = i
				break
			}
		}
		if idx < 0 {
			return Table{}, NewError(KindValidation, fmt.Sprintf("matched header %q not present in table", header), nil)
		}
		columns[idx] = field
	}

	return Table{Columns: columns, Rows: t.Rows}, nil
}
