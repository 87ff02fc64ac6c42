package platemap

import (
	"strings"
	"testing"
)

func TestDefaultMatcherConfig(t *testing.T) {
	cfg := DefaultMatcherConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.Threshold != 0.70 {
		t.Fatalf("expected threshold 0.70, got %v", cfg.Threshold)
	}
	if cfg.ScanRows != 20 {
		t.Fatalf("expected scan window 20, got %d", cfg.ScanRows)
	}
}

func TestMatcherConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*MatcherConfig)
	}{
		{"threshold above one", func(c *MatcherConfig) { c.Threshold = 1.5 }},
		{"threshold negative", func(c *MatcherConfig) { c.Threshold = -0.1 }},
		{"zero scan rows", func(c *MatcherConfig) { c.ScanRows = 0 }},
		{"empty vocabulary", func(c *MatcherConfig) { delete(c.Vocabularies, FieldPlate) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatcherConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadMatcherConfig(t *testing.T) {
	input := `
threshold: 0.9
vocabularies:
  "Plate":
    - "plate code"
`
	cfg, err := LoadMatcherConfig(strings.NewReader(input))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Threshold != 0.9 {
		t.Fatalf("expected threshold 0.9, got %v", cfg.Threshold)
	}
	if cfg.ScanRows != DefaultScanRows {
		t.Fatalf("expected default scan window, got %d", cfg.ScanRows)
	}
	if len(cfg.Vocabularies[FieldPlate]) != 1 || cfg.Vocabularies[FieldPlate][0] != "plate code" {
		t.Fatalf("expected plate vocabulary override, got %v", cfg.Vocabularies[FieldPlate])
	}
	// Unnamed fields keep the built-in vocabulary.
	if len(cfg.Vocabularies[Field96Well]) == 0 {
		t.Fatalf("expected default 96-well vocabulary preserved")
	}
}

func TestLoadMatcherConfig_Invalid(t *testing.T) {
	if _, err := LoadMatcherConfig(strings.NewReader("threshold: 2.0")); err == nil {
		t.Fatalf("expected out-of-range threshold to fail")
	}
	if _, err := LoadMatcherConfig(strings.NewReader("{not yaml")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadMatcherConfig_Empty(t *testing.T) {
	cfg, err := LoadMatcherConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	defaults := DefaultMatcherConfig()
	if cfg.Threshold != defaults.Threshold || cfg.ScanRows != defaults.ScanRows {
		t.Fatalf("expected defaults from empty config, got %+v", cfg)
	}
}
