package command

import (
	"io"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-platemap/platemap"
)

// SortTable runs the normalize-and-sort pipeline over a raw grid.
type SortTable struct {
	Grid    platemap.Grid
	Options platemap.RunOptions
	Result  *platemap.Result
}

func (SortTable) Type() string { return "platemap:sort" }

func (msg SortTable) Validate() error {
	if len(msg.Grid) == 0 {
		return errors.New("grid is required", errors.CategoryValidation).
			WithTextCode("GRID_REQUIRED")
	}
	return nil
}

// ExportTable runs the pipeline and renders the sorted table to a writer.
type ExportTable struct {
	Grid    platemap.Grid
	Options platemap.RunOptions
	Format  platemap.Format
	Render  platemap.RenderOptions
	Output  io.Writer
	Stats   *platemap.RenderStats
}

func (ExportTable) Type() string { return "platemap:export" }

func (msg ExportTable) Validate() error {
	if len(msg.Grid) == 0 {
		return errors.New("grid is required", errors.CategoryValidation).
			WithTextCode("GRID_REQUIRED")
	}
	if msg.Output == nil {
		return errors.New("output writer is required", errors.CategoryValidation).
			WithTextCode("OUTPUT_REQUIRED")
	}
	return nil
}
