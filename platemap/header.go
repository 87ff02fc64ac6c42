package platemap

// HeaderScan is the result of scanning a grid for its header row.
type HeaderScan struct {
	// Row is the best candidate row index. It is meaningful even when Found
	// is false, as a suggestion the caller may let the user override.
	Row int
	// Found reports whether the candidate covered all required fields.
	Found bool
	// Fields holds the best cell score per required field on the chosen row.
	Fields map[string]float64
}

// LocateHeader scans the leading rows of a raw grid and picks the row whose
// cells match the most distinct required fields, ties broken by the lowest
// row index. A header is only Found when every required field reaches the
// accept threshold somewhere on the row; anything less is left to the caller
// as a non-fatal condition.
func (m *Matcher) LocateHeader(grid Grid) HeaderScan {
	limit := m.cfg.ScanRows
	if limit > len(grid) {
		limit = len(grid)
	}

	best := HeaderScan{Row: 0, Fields: map[string]float64{}}
	bestCount := -1

	for i := 0; i < limit; i++ {
		scores := m.rowScores(grid[i])
		count := 0
		for _, score := range scores {
			if score >= m.cfg.Threshold {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best.Row = i
			best.Fields = scores
		}
	}

	best.Found = bestCount == len(RequiredFields())
	return best
}

func (m *Matcher) rowScores(row Row) map[string]float64 {
	scores := make(map[string]float64, len(RequiredFields()))
	for _, field := range RequiredFields() {
		best := 0.0
		for _, cell := range row {
			if score := m.Score(cell.String(), field); score > best {
				best = score
			}
		}
		scores[field] = best
	}
	return scores
}
