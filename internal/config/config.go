// Package config handles configuration loading for the els CLI: an optional
// YAML file layered under environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/danielpatrickdp/emotion-layer/go-core/internal/pipeline"
	"gopkg.in/yaml.v3"
)

// #region types

// Config is the root configuration structure.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Journal  JournalConfig  `yaml:"journal"`
	UL       ULConfig       `yaml:"ul"`
}

// PipelineConfig mirrors the pipeline's construction-time surface.
type PipelineConfig struct {
	RedlineThreshold float64 `yaml:"redline_threshold" env:"ELS_REDLINE_THRESHOLD"`
	WarningMargin    float64 `yaml:"warning_margin" env:"ELS_WARNING_MARGIN"`
	RecoveryStep     float64 `yaml:"recovery_step" env:"ELS_RECOVERY_STEP"`
}

// JournalConfig holds journal settings. An empty path disables journaling.
type JournalConfig struct {
	Path string `yaml:"path" env:"ELS_JOURNAL_PATH"`
}

// ULConfig holds metaphor-rendering hooks.
type ULConfig struct {
	Culture string `yaml:"culture" env:"ELS_UL_CULTURE"`
	Style   string `yaml:"style" env:"ELS_UL_STYLE"`
}

// #endregion types

// #region load

// Default returns the default configuration.
func Default() *Config {
	pc := pipeline.DefaultConfig()
	return &Config{
		Pipeline: PipelineConfig{
			RedlineThreshold: pc.RedlineThreshold,
			WarningMargin:    pc.WarningMargin,
			RecoveryStep:     pc.RecoveryStep,
		},
		UL: ULConfig{Culture: "generic", Style: "poetic"},
	}
}

// Load reads the optional YAML file at path (empty path skips the file),
// applies environment overrides on top, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Pipeline.ToPipelineConfig().Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ToPipelineConfig converts the config section to the pipeline's type.
func (p PipelineConfig) ToPipelineConfig() pipeline.Config {
	return pipeline.Config{
		RedlineThreshold: p.RedlineThreshold,
		WarningMargin:    p.WarningMargin,
		RecoveryStep:     p.RecoveryStep,
	}
}

// #endregion load
