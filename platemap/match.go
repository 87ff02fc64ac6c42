package platemap

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// MatchCandidate is a header cell that qualified for a field.
type MatchCandidate struct {
	Header string
	Score  float64
}

// MatchWarning reports an ambiguous match: more than one header cell reached
// the accept threshold for the same field. The pipeline proceeds with the
// best-scoring candidate.
type MatchWarning struct {
	Field      string
	Candidates []MatchCandidate
}

// FieldMapping maps canonical field names to the original header strings that
// matched them.
type FieldMapping struct {
	Columns  map[string]string
	Warnings []MatchWarning
}

// Complete reports whether every required field resolved.
func (m FieldMapping) Complete() bool {
	return len(m.Missing()) == 0
}

// Missing lists required fields without a matched header, in resolution order.
func (m FieldMapping) Missing() []string {
	var missing []string
	for _, field := range RequiredFields() {
		if _, ok := m.Columns[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

// Matcher scores header cells against the required-field vocabularies.
type Matcher struct {
	cfg    MatcherConfig
	metric *metrics.Levenshtein
}

// NewMatcher creates a matcher from the given configuration.
func NewMatcher(cfg MatcherConfig) (*Matcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	metric := metrics.NewLevenshtein()
	metric.CaseSensitive = false
	return &Matcher{cfg: cfg, metric: metric}, nil
}

// Score returns the similarity of a header cell to a field: the maximum
// normalized similarity over the field's vocabulary terms, in [0,1].
func (m *Matcher) Score(header, field string) float64 {
	normalized := normalizeHeader(header)
	if normalized == "" {
		return 0
	}
	best := 0.0
	for _, term := range m.cfg.Vocabularies[field] {
		score := strutil.Similarity(normalized, normalizeHeader(term), m.metric)
		if score > best {
			best = score
		}
	}
	return best
}

// MatchColumns resolves each required field to its best-scoring header cell.
// The returned mapping always carries the resolved subset and any ambiguity
// warnings; when one or more required fields stay unresolved the error names
// them and the pipeline must not proceed to canonicalization.
func (m *Matcher) MatchColumns(headers []string) (FieldMapping, error) {
	mapping := FieldMapping{Columns: make(map[string]string)}

	for _, field := range RequiredFields() {
		var qualifying []MatchCandidate
		for _, header := range headers {
			score := m.Score(header, field)
			if score >= m.cfg.Threshold {
				qualifying = append(qualifying, MatchCandidate{Header: header, Score: score})
			}
		}
		if len(qualifying) == 0 {
			continue
		}

		best := qualifying[0]
		for _, cand := range qualifying[1:] {
			if cand.Score > best.Score {
				best = cand
			}
		}
		mapping.Columns[field] = best.Header

		if len(qualifying) > 1 {
			mapping.Warnings = append(mapping.Warnings, MatchWarning{
				Field:      field,
				Candidates: qualifying,
			})
		}
	}

	if missing := mapping.Missing(); len(missing) > 0 {
		return mapping, NewFieldError("required fields unmatched", missing)
	}
	return mapping, nil
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
