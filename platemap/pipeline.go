package platemap

import (
	"context"
)

// RunOptions configures a single pipeline run.
type RunOptions struct {
	// View selects the output ordering. Defaults to View96.
	View View
	// HeaderRow overrides header detection when HeaderSet is true; the
	// caller-facing answer to a header_not_found condition.
	HeaderRow int
	HeaderSet bool
}

// Result is a completed pipeline run.
type Result struct {
	Table   Table
	Header  HeaderScan
	Mapping FieldMapping
}

// Pipeline runs the normalize-and-reorder stages over a raw grid. Each stage
// is pure; the only shared state is the constant WellOrder, so a single
// Pipeline is safe to reuse across concurrent runs.
type Pipeline struct {
	Matcher   *Matcher
	WellOrder *WellOrder
	Logger    Logger
}

// NewPipeline creates a pipeline with the default matcher configuration.
func NewPipeline() *Pipeline {
	matcher, _ := NewMatcher(DefaultMatcherConfig())
	return &Pipeline{
		Matcher:   matcher,
		WellOrder: NewWellOrder(),
		Logger:    NopLogger{},
	}
}

// NewPipelineWithConfig creates a pipeline with a custom matcher
// configuration.
func NewPipelineWithConfig(cfg MatcherConfig) (*Pipeline, error) {
	matcher, err := NewMatcher(cfg)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		Matcher:   matcher,
		WellOrder: NewWellOrder(),
		Logger:    NopLogger{},
	}, nil
}

// Run locates the header, resolves and renames the required columns, computes
// the global 384 index, and sorts by the requested view. The grid itself is
// never mutated; failures leave no partial state behind.
func (p *Pipeline) Run(ctx context.Context, grid Grid, opts RunOptions) (Result, error) {
	if p == nil || p.Matcher == nil || p.WellOrder == nil {
		return Result{}, NewError(KindInternal, "pipeline is not configured", nil)
	}
	logger := p.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	if len(grid) == 0 {
		return Result{}, NewError(KindValidation, "grid is empty", nil)
	}
	view := opts.View
	if view == "" {
		view = View96
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	scan := p.Matcher.LocateHeader(grid)
	headerRow := scan.Row
	if opts.HeaderSet {
		headerRow = opts.HeaderRow
	} else if !scan.Found {
		return Result{Header: scan}, NewError(KindHeaderNotFound, "no header row found in scan window", nil)
	}
	logger.Debugf("header row %d (detected=%v)", headerRow, scan.Found)

	table, err := TableFromGrid(grid, headerRow)
	if err != nil {
		return Result{Header: scan}, err
	}

	mapping, err := p.Matcher.MatchColumns(table.Columns)
	if err != nil {
		return Result{Header: scan, Mapping: mapping}, err
	}
	for _, warn := range mapping.Warnings {
		logger.Infof("ambiguous match for %s: %d candidates", warn.Field, len(warn.Candidates))
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	table, err = Canonicalize(table, mapping)
	if err != nil {
		return Result{Header: scan, Mapping: mapping}, err
	}

	table, err = ComputeGlobalIndex(table, p.WellOrder)
	if err != nil {
		return Result{Header: scan, Mapping: mapping}, err
	}

	table, err = SortByView(table, view, p.WellOrder)
	if err != nil {
		return Result{Header: scan, Mapping: mapping}, err
	}

	return Result{Table: table, Header: scan, Mapping: mapping}, nil
}
