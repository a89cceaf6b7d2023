package gate

import (
	"errors"
	"fmt"
	"math"
)

// #region level
// Level is the discrete safety level derived from the canonical depth scalar.
// Severity order: blocked > warning > ok.
type Level string

const (
	LevelOK      Level = "ok"
	LevelWarning Level = "warning"
	LevelBlocked Level = "blocked"
)

// Severity ranks levels for comparison. Higher is more severe.
func (l Level) Severity() int {
	switch l {
	case LevelBlocked:
		return 2
	case LevelWarning:
		return 1
	default:
		return 0
	}
}

// Valid reports whether l is one of the three known tags.
func (l Level) Valid() bool {
	switch l {
	case LevelOK, LevelWarning, LevelBlocked:
		return true
	}
	return false
}

// #endregion level

// #region reasons
// Reason strings paired one-to-one with levels.
const (
	ReasonBlocked = "below hard redline; block or strongly de-escalate."
	ReasonWarning = "near redline; respond carefully and de-escalate."
	ReasonOK      = "in safe range."
)

// ReasonFor returns the canonical reason text for a level.
func ReasonFor(l Level) string {
	switch l {
	case LevelBlocked:
		return ReasonBlocked
	case LevelWarning:
		return ReasonWarning
	default:
		return ReasonOK
	}
}

// #endregion reasons

// #region config
// ErrInvalidConfig marks construction-time validation failures.
var ErrInvalidConfig = errors.New("invalid gate config")

// Config holds the redline threshold and warning margin, both in U* space.
type Config struct {
	Threshold float64 // hard redline; blocked at u <= Threshold
	Margin    float64 // warning band width directly above the threshold
}

// DefaultConfig returns the demo defaults. Real deployments are expected to
// tune these per profile.
func DefaultConfig() Config {
	return Config{Threshold: -0.95, Margin: 0.15}
}

// Validate checks construction-time invariants: finite threshold, margin >= 0.
func (c Config) Validate() error {
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) {
		return fmt.Errorf("%w: threshold must be finite, got %v", ErrInvalidConfig, c.Threshold)
	}
	if math.IsNaN(c.Margin) || math.IsInf(c.Margin, 0) || c.Margin < 0 {
		return fmt.Errorf("%w: margin must be finite and >= 0, got %v", ErrInvalidConfig, c.Margin)
	}
	return nil
}

// #endregion config

// #region result
// Result is the outcome of classifying one depth scalar.
type Result struct {
	Level     Level
	Reason    string
	UValue    float64
	Threshold float64
}

// #endregion result
