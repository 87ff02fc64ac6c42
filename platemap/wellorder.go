package platemap

import (
	"fmt"
	"strings"
)

// UnknownRank is returned for labels outside the 96-well grid. It is larger
// than any valid rank so unknown wells sort last within their plate, and ties
// among unknowns keep their input order under a stable sort.
const UnknownRank = 1000

// WellOrder is the fixed well ordering shared by all pipeline runs. It is
// immutable after construction and safe for concurrent use.
type WellOrder struct {
	rank96   map[string]int
	index384 map[string]int
}

// NewWellOrder builds the interleaved 96-well rank table (rows paired A/B,
// C/D, E/F, G/H, column-major within each pair: A1,B1,A2,B2,...,A12,B12,
// C1,D1,...) and the row-major 384-well index (A1..A24, B1..B24, ..., P24).
func NewWellOrder() *WellOrder {
	w := &WellOrder{
		rank96:   make(map[string]int, 96),
		index384: make(map[string]int, 384),
	}

	rank := 0
	for _, pair := range [][2]string{{"A", "B"}, {"C", "D"}, {"E", "F"}, {"G", "H"}} {
		for col := 1; col <= 12; col++ {
			w.rank96[fmt.Sprintf("%s%d", pair[0], col)] = rank
			rank++
			w.rank96[fmt.Sprintf("%s%d", pair[1], col)] = rank
			rank++
		}
	}

	idx := 0
	for row := 'A'; row <= 'P'; row++ {
		for col := 1; col <= 24; col++ {
			w.index384[fmt.Sprintf("%c%d", row, col)] = idx
			idx++
		}
	}

	return w
}

// Rank96 returns the interleaved rank of a 96-well label in [0,95], or
// UnknownRank for anything it does not recognize.
func (w *WellOrder) Rank96(label string) int {
	if rank, ok := w.rank96[normalizeWell(label)]; ok {
		return rank
	}
	return UnknownRank
}

// Index384 returns the row-major index of a 384-well label in [0,383], or -1
// for anything it does not recognize.
func (w *WellOrder) Index384(label string) int {
	if idx, ok := w.index384[normalizeWell(label)]; ok {
		return idx
	}
	return -1
}

func normalizeWell(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}
