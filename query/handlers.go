package query

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-platemap/platemap"
)

// ScanHeaderHandler locates the header row of a raw grid.
type ScanHeaderHandler struct {
	Matcher *platemap.Matcher
}

func NewScanHeaderHandler(m *platemap.Matcher) *ScanHeaderHandler {
	return &ScanHeaderHandler{Matcher: m}
}

func (h *ScanHeaderHandler) Query(ctx context.Context, msg ScanHeader) (platemap.HeaderScan, error) {
	if h == nil || h.Matcher == nil {
		return platemap.HeaderScan{}, errors.New("matcher is required", errors.CategoryInternal).
			WithTextCode("MATCHER_REQUIRED")
	}
	if err := ctx.Err(); err != nil {
		return platemap.HeaderScan{}, err
	}
	return h.Matcher.LocateHeader(msg.Grid), nil
}

// MatchColumnsHandler resolves header labels to canonical fields.
type MatchColumnsHandler struct {
	Matcher *platemap.Matcher
}

func NewMatchColumnsHandler(m *platemap.Matcher) *MatchColumnsHandler {
	return &MatchColumnsHandler{Matcher: m}
}

func (h *MatchColumnsHandler) Query(ctx context.Context, msg MatchColumns) (platemap.FieldMapping, error) {
	if h == nil || h.Matcher == nil {
		return platemap.FieldMapping{}, errors.New("matcher is required", errors.CategoryInternal).
			WithTextCode("MATCHER_REQUIRED")
	}
	if err := ctx.Err(); err != nil {
		return platemap.FieldMapping{}, err
	}
	mapping, err := h.Matcher.MatchColumns(msg.Columns)
	if err != nil {
		return mapping, platemap.AsGoError(err)
	}
	return mapping, nil
}
