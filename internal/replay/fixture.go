package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/emotion-layer/go-core/internal/pipeline"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay run: a recorded
// sequence of raw signals plus the expectations they must reproduce.
type Fixture struct {
	Description string          `json:"description"`
	Config      FixtureConfig   `json:"config"`
	Steps       []FixtureStep   `json:"steps"`
	Expected    FixtureExpected `json:"expected"`
}

// FixtureConfig overrides pipeline defaults. Nil fields keep the default.
type FixtureConfig struct {
	RedlineThreshold *float64 `json:"redline_threshold,omitempty"`
	WarningMargin    *float64 `json:"warning_margin,omitempty"`
	RecoveryStep     *float64 `json:"recovery_step,omitempty"`
}

// FixtureStep is one raw sample with an optional per-step expectation.
type FixtureStep struct {
	Raw           float64 `json:"raw"`
	ExpectedLevel string  `json:"expected_level,omitempty"`
}

// FixtureExpected captures run-level expectations. Nil fields are skipped.
type FixtureExpected struct {
	FinalWarmth  *float64 `json:"final_warmth,omitempty"`
	BlockedCount *int     `json:"blocked_count,omitempty"`
	WarningCount *int     `json:"warning_count,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("fixture %s has no steps", path)
	}
	return &f, nil
}

// ToPipelineConfig merges the fixture overrides onto the defaults.
func (fc FixtureConfig) ToPipelineConfig() pipeline.Config {
	cfg := pipeline.DefaultConfig()
	if fc.RedlineThreshold != nil {
		cfg.RedlineThreshold = *fc.RedlineThreshold
	}
	if fc.WarningMargin != nil {
		cfg.WarningMargin = *fc.WarningMargin
	}
	if fc.RecoveryStep != nil {
		cfg.RecoveryStep = *fc.RecoveryStep
	}
	return cfg
}

// #endregion fixture-loader
