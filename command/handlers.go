package command

import (
	"context"

	gcmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-platemap/platemap"
)

// SortTableHandler runs pipeline sorts.
type SortTableHandler struct {
	Pipeline *platemap.Pipeline
}

func NewSortTableHandler(p *platemap.Pipeline) *SortTableHandler {
	return &SortTableHandler{Pipeline: p}
}

func (h *SortTableHandler) Execute(ctx context.Context, msg SortTable) error {
	if h == nil || h.Pipeline == nil {
		return errors.New("pipeline is required", errors.CategoryInternal).
			WithTextCode("PIPELINE_REQUIRED")
	}
	result, err := h.Pipeline.Run(ctx, msg.Grid, msg.Options)
	if err != nil {
		return platemap.AsGoError(err)
	}
	if msg.Result != nil {
		*msg.Result = result
	}
	if res := gcmd.ResultFromContext[platemap.Result](ctx); res != nil {
		res.Store(result)
	}
	return nil
}

// ExportTableHandler runs pipeline sorts and renders the result.
type ExportTableHandler struct {
	Pipeline *platemap.Pipeline
}

func NewExportTableHandler(p *platemap.Pipeline) *ExportTableHandler {
	return &ExportTableHandler{Pipeline: p}
}

func (h *ExportTableHandler) Execute(ctx context.Context, msg ExportTable) error {
	if h == nil || h.Pipeline == nil {
		return errors.New("pipeline is required", errors.CategoryInternal).
			WithTextCode("PIPELINE_REQUIRED")
	}

	result, err := h.Pipeline.Run(ctx, msg.Grid, msg.Options)
	if err != nil {
		return platemap.AsGoError(err)
	}

	renderer, err := platemap.RendererFor(msg.Format)
	if err != nil {
		return platemap.AsGoError(err)
	}
	stats, err := renderer.Render(ctx, result.Table, msg.Output, msg.Render)
	if err != nil {
		return platemap.AsGoError(err)
	}

	if msg.Stats != nil {
		*msg.Stats = stats
	}
	if res := gcmd.ResultFromContext[platemap.RenderStats](ctx); res != nil {
		res.Store(stats)
	}
	return nil
}
