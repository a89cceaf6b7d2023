package pipeline

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/danielpatrickdp/emotion-layer/go-core/internal/gate"
)

// #region errors
// ErrNonFiniteInput marks rejection of NaN or ±Inf raw input.
var ErrNonFiniteInput = errors.New("non-finite raw input")

// #endregion errors

// #region config
// Config is the construction-time surface of the pipeline controller.
type Config struct {
	RedlineThreshold float64 // gate threshold T in U* space
	WarningMargin    float64 // warning band width M above T
	RecoveryStep     float64 // warmth increment dt applied on blocked steps
}

// DefaultConfig returns the demo defaults.
func DefaultConfig() Config {
	g := gate.DefaultConfig()
	return Config{
		RedlineThreshold: g.Threshold,
		WarningMargin:    g.Margin,
		RecoveryStep:     0.3,
	}
}

// Validate checks construction-time invariants: gate config rules plus a
// finite, positive recovery step.
func (c Config) Validate() error {
	if err := c.gateConfig().Validate(); err != nil {
		return err
	}
	if math.IsNaN(c.RecoveryStep) || math.IsInf(c.RecoveryStep, 0) || c.RecoveryStep <= 0 {
		return fmt.Errorf("%w: recovery step must be finite and > 0, got %v",
			gate.ErrInvalidConfig, c.RecoveryStep)
	}
	return nil
}

func (c Config) gateConfig() gate.Config {
	return gate.Config{Threshold: c.RedlineThreshold, Margin: c.WarningMargin}
}

// #endregion config

// #region result
// Result is the immutable snapshot of one pipeline invocation. It carries no
// back-reference to the controller and is safe to share freely.
type Result struct {
	StepID    string
	Raw       float64
	Norm      float64
	Depth     float64 // canonical depth U*; nominal bound, not hard-enforced
	Threshold float64
	Level     gate.Level
	Reason    string
	Warmth    float64 // recovery scalar as of this step
	CreatedAt time.Time
}

// #endregion result
