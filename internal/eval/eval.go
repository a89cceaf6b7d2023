package eval

import (
	"fmt"

	"github.com/danielpatrickdp/emotion-layer/go-core/internal/gate"
	"github.com/danielpatrickdp/emotion-layer/go-core/internal/pipeline"
)

// #region types

// Metric is one named invariant check over a pipeline result.
type Metric struct {
	Name  string
	Value float64
	Pass  bool
}

// Result bundles the outcome of an invariant run.
type Result struct {
	Passed  bool
	Metrics []Metric
	Reason  string
}

// Config holds tolerances for the invariant harness.
type Config struct {
	// DepthSlack widens the nominal [-1, 1] bound on U*: the depth
	// transform is not hard-clamped and may drift slightly past the
	// squashing asymptote.
	DepthSlack float64
}

// DefaultConfig returns the standard tolerances.
func DefaultConfig() Config {
	return Config{DepthSlack: 0.01}
}

// #endregion types

// #region harness

// Harness runs lightweight invariant checks on pipeline results.
type Harness struct {
	config Config
}

// NewHarness creates a harness with the given configuration.
func NewHarness(config Config) *Harness {
	return &Harness{config: config}
}

// Run checks one result against the numeric and pairing invariants of the
// pipeline. Pure; safe to call on every step.
func (h *Harness) Run(res pipeline.Result) Result {
	var metrics []Metric
	passed := true
	var failReasons []string

	record := func(name string, value float64, pass bool, detail string) {
		metrics = append(metrics, Metric{Name: name, Value: value, Pass: pass})
		if !pass {
			passed = false
			failReasons = append(failReasons, detail)
		}
	}

	// 1. Normalized value strictly inside (-1, 1).
	normOK := res.Norm > -1 && res.Norm < 1
	record("norm_bounds", res.Norm, normOK,
		fmt.Sprintf("norm %.6f outside (-1, 1)", res.Norm))

	// 2. Depth within the nominal bound plus slack.
	bound := 1 + h.config.DepthSlack
	depthOK := res.Depth >= -bound && res.Depth <= bound
	record("depth_nominal_bound", res.Depth, depthOK,
		fmt.Sprintf("depth %.6f outside nominal ±%.2f", res.Depth, bound))

	// 3. Recovery scalar in [0, 1].
	warmthOK := res.Warmth >= 0 && res.Warmth <= 1
	record("warmth_bounds", res.Warmth, warmthOK,
		fmt.Sprintf("warmth %.6f outside [0, 1]", res.Warmth))

	// 4. Level/reason pairing is one-to-one.
	pairOK := res.Level.Valid() && res.Reason == gate.ReasonFor(res.Level)
	record("level_reason_pairing", float64(res.Level.Severity()), pairOK,
		fmt.Sprintf("level %q paired with reason %q", res.Level, res.Reason))

	// 5. Level consistent with depth vs threshold.
	var bandOK bool
	if res.Level == gate.LevelBlocked {
		bandOK = res.Depth <= res.Threshold
	} else {
		bandOK = res.Depth > res.Threshold
	}
	record("level_band_consistency", res.Depth, bandOK,
		fmt.Sprintf("level %q inconsistent with depth %.6f vs threshold %.6f",
			res.Level, res.Depth, res.Threshold))

	reason := "all checks passed"
	if !passed {
		reason = fmt.Sprintf("eval failed: %s", failReasons[0])
		if len(failReasons) > 1 {
			reason = fmt.Sprintf("eval failed: %d checks: %s", len(failReasons), failReasons[0])
		}
	}

	return Result{Passed: passed, Metrics: metrics, Reason: reason}
}

// #endregion harness
