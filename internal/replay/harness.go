package replay

import (
	"fmt"
	"math"

	"github.com/danielpatrickdp/emotion-layer/go-core/internal/eval"
	"github.com/danielpatrickdp/emotion-layer/go-core/internal/gate"
	"github.com/danielpatrickdp/emotion-layer/go-core/internal/pipeline"
)

// warmthTolerance absorbs accumulated float error when comparing the final
// recovery scalar against a fixture expectation.
const warmthTolerance = 1e-9

// #region types

// StepResult captures the outcome of replaying one recorded sample.
type StepResult struct {
	Index  int
	Result pipeline.Result
	Eval   eval.Result

	// Passed is false when the eval harness failed or the recorded
	// expected level did not reproduce.
	Passed bool
	Reason string
}

// Summary provides aggregate stats and the overall verdict for a run.
type Summary struct {
	TotalSteps  int
	Blocked     int
	Warnings    int
	OKs         int
	FinalWarmth float64

	Passed   bool
	Failures []string
}

// #endregion types

// #region replay

// Replay runs every fixture step through a fresh controller, checking
// invariants and recorded expectations per step. Operates entirely
// in-memory; the same fixture always reproduces the same summary.
func Replay(f *Fixture) ([]StepResult, Summary, error) {
	ctrl, err := pipeline.NewController(f.Config.ToPipelineConfig())
	if err != nil {
		return nil, Summary{}, fmt.Errorf("fixture config: %w", err)
	}
	harness := eval.NewHarness(eval.DefaultConfig())

	results := make([]StepResult, 0, len(f.Steps))
	summary := Summary{TotalSteps: len(f.Steps), Passed: true}

	for i, step := range f.Steps {
		res, err := ctrl.Process(step.Raw)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("step %d: %w", i, err)
		}

		evalRes := harness.Run(res)
		sr := StepResult{Index: i, Result: res, Eval: evalRes, Passed: true, Reason: "ok"}

		if !evalRes.Passed {
			sr.Passed = false
			sr.Reason = evalRes.Reason
		}
		if step.ExpectedLevel != "" && string(res.Level) != step.ExpectedLevel {
			sr.Passed = false
			sr.Reason = fmt.Sprintf("expected level %q, got %q", step.ExpectedLevel, res.Level)
		}
		if !sr.Passed {
			summary.Passed = false
			summary.Failures = append(summary.Failures,
				fmt.Sprintf("step %d: %s", i, sr.Reason))
		}

		switch res.Level {
		case gate.LevelBlocked:
			summary.Blocked++
		case gate.LevelWarning:
			summary.Warnings++
		default:
			summary.OKs++
		}

		summary.FinalWarmth = res.Warmth
		results = append(results, sr)
	}

	checkExpected(f.Expected, &summary)
	return results, summary, nil
}

// checkExpected applies run-level expectations to the summary.
func checkExpected(exp FixtureExpected, summary *Summary) {
	if exp.FinalWarmth != nil &&
		math.Abs(summary.FinalWarmth-*exp.FinalWarmth) > warmthTolerance {
		summary.Passed = false
		summary.Failures = append(summary.Failures,
			fmt.Sprintf("final warmth %.9f, expected %.9f", summary.FinalWarmth, *exp.FinalWarmth))
	}
	if exp.BlockedCount != nil && summary.Blocked != *exp.BlockedCount {
		summary.Passed = false
		summary.Failures = append(summary.Failures,
			fmt.Sprintf("blocked count %d, expected %d", summary.Blocked, *exp.BlockedCount))
	}
	if exp.WarningCount != nil && summary.Warnings != *exp.WarningCount {
		summary.Passed = false
		summary.Failures = append(summary.Failures,
			fmt.Sprintf("warning count %d, expected %d", summary.Warnings, *exp.WarningCount))
	}
}

// #endregion replay
