package query

import (
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-platemap/platemap"
)

// ScanHeader requests header detection over a raw grid.
type ScanHeader struct {
	Grid platemap.Grid
}

func (ScanHeader) Type() string { return "platemap:scan" }

func (msg ScanHeader) Validate() error {
	if len(msg.Grid) == 0 {
		return errors.New("grid is required", errors.CategoryValidation).
			WithTextCode("GRID_REQUIRED")
	}
	return nil
}

// MatchColumns requests a field mapping for a set of header labels.
type MatchColumns struct {
	Columns []string
}

func (MatchColumns) Type() string { return "platemap:match" }

func (msg MatchColumns) Validate() error {
	if len(msg.Columns) == 0 {
		return errors.New("columns are required", errors.CategoryValidation).
			WithTextCode("COLUMNS_REQUIRED")
	}
	return nil
}
