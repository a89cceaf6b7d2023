package pipeline

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/danielpatrickdp/emotion-layer/go-core/internal/canonical"
	"github.com/danielpatrickdp/emotion-layer/go-core/internal/gate"
	"github.com/google/uuid"
)

// #region controller
// Controller runs the canonical pipeline and owns the recovery scalar.
// The recovery scalar is the only mutable state; the mutex makes the
// read-modify-write atomic so a controller instance may be shared across
// concurrent callers without lost updates.
type Controller struct {
	config Config

	mu     sync.Mutex
	warmth float64 // recovery scalar in [0, 1]; never decreases
}

// NewController validates the configuration and returns a controller with
// the recovery scalar at zero.
func NewController(config Config) (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Controller{config: config}, nil
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config {
	return c.config
}

// Warmth returns the current recovery scalar.
func (c *Controller) Warmth() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.warmth
}

// #endregion controller

// #region process
// Process runs one raw sample through normalize → depth transform → safety
// gate, advancing the recovery scalar by the configured step when the gate
// reports blocked, and returns an immutable snapshot of all stage values.
//
// Non-finite raw input (NaN, ±Inf) is rejected with ErrNonFiniteInput before
// any state mutation; the recovery scalar is untouched on failure.
func (c *Controller) Process(raw float64) (Result, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return Result{}, fmt.Errorf("%w: %v", ErrNonFiniteInput, raw)
	}

	n := canonical.Normalize(raw)
	u := canonical.DepthTransform(n)
	gr := gate.Classify(u, c.config.gateConfig())

	c.mu.Lock()
	if gr.Level == gate.LevelBlocked {
		c.warmth = Recover(c.warmth, c.config.RecoveryStep)
	}
	warmth := c.warmth
	c.mu.Unlock()

	return Result{
		StepID:    uuid.New().String(),
		Raw:       raw,
		Norm:      n,
		Depth:     u,
		Threshold: gr.Threshold,
		Level:     gr.Level,
		Reason:    gr.Reason,
		Warmth:    warmth,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// #endregion process

// #region recovery
// Recover advances the recovery scalar toward its upper bound:
// next = min(1.0, current + 1.0*dt). Deterministic for finite dt > 0.
// There is no decay rule; the scalar never decreases within this core.
func Recover(current, dt float64) float64 {
	next := current + 1.0*dt
	if next > 1.0 {
		next = 1.0
	}
	return next
}

// #endregion recovery
