package platemap

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultThreshold is the minimum similarity score a header cell must
	// reach to match a required field.
	DefaultThreshold = 0.70
	// DefaultScanRows bounds the header search window.
	DefaultScanRows = 20
)

// MatcherConfig controls header detection and fuzzy column matching.
type MatcherConfig struct {
	// Threshold is the accept score in [0,1].
	Threshold float64 `yaml:"threshold"`
	// ScanRows is how many leading rows are scanned for the header.
	ScanRows int `yaml:"scan_rows"`
	// Vocabularies maps each canonical field to its synonym terms.
	Vocabularies map[string][]string `yaml:"vocabularies"`
}

// DefaultMatcherConfig returns the built-in matcher configuration.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		Threshold: DefaultThreshold,
		ScanRows:  DefaultScanRows,
		Vocabularies: map[string][]string{
			Field96Well: {
				"96 well", "96well", "well96", "well 96", "96-well",
				"96 well position", "96 well id", "source well",
			},
			Field384Well: {
				"384 well", "384well", "well384", "well 384", "384-well",
				"384 well position", "384 well id", "destination well",
			},
			FieldPlate: {
				"plate", "plate number", "plate num", "plate no", "plate id",
				"plate #", "source plate", "plate barcode",
			},
		},
	}
}

// Validate checks the configuration is usable.
func (c MatcherConfig) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return NewError(KindValidation, fmt.Sprintf("threshold %v outside [0,1]", c.Threshold), nil)
	}
	if c.ScanRows <= 0 {
		return NewError(KindValidation, "scan_rows must be positive", nil)
	}
	for _, field := range RequiredFields() {
		if len(c.Vocabularies[field]) == 0 {
			return NewError(KindValidation, fmt.Sprintf("vocabulary for %q is empty", field), nil)
		}
	}
	return nil
}

// LoadMatcherConfig reads a YAML matcher configuration, filling unset values
// from the defaults.
func LoadMatcherConfig(r io.Reader) (MatcherConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return MatcherConfig{}, NewError(KindInternal, "read matcher config", err)
	}

	cfg := MatcherConfig{Threshold: -1}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MatcherConfig{}, NewError(KindValidation, "parse matcher config", err)
	}

	defaults := DefaultMatcherConfig()
	if cfg.Threshold < 0 {
		cfg.Threshold = defaults.Threshold
	}
	if cfg.ScanRows == 0 {
		cfg.ScanRows = defaults.ScanRows
	}
	if cfg.Vocabularies == nil {
		cfg.Vocabularies = defaults.Vocabularies
	} else {
		for field, terms := range defaults.Vocabularies {
			if len(cfg.Vocabularies[field]) == 0 {
				cfg.Vocabularies[field] = terms
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return MatcherConfig{}, err
	}
	return cfg, nil
}
