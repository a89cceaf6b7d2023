package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/danielpatrickdp/emotion-layer/go-core/internal/gate"
	"github.com/danielpatrickdp/emotion-layer/go-core/internal/pipeline"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "els.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleResult(id string, level gate.Level, createdAt time.Time) pipeline.Result {
	return pipeline.Result{
		StepID:    id,
		Raw:       -2,
		Norm:      -0.964,
		Depth:     -0.959,
		Threshold: -0.95,
		Level:     level,
		Reason:    gate.ReasonFor(level),
		Warmth:    0.3,
		CreatedAt: createdAt,
	}
}

func TestAppendAndRecentRoundTrip(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := sampleResult("step-1", gate.LevelBlocked, base)
	second := sampleResult("step-2", gate.LevelWarning, base.Add(time.Second))

	if err := store.Append(first); err != nil {
		t.Fatalf("Append first: %v", err)
	}
	if err := store.Append(second); err != nil {
		t.Fatalf("Append second: %v", err)
	}

	steps, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(steps) != 2 {
		t.Fatalf("Recent returned %d steps, want 2", len(steps))
	}
	// Newest first.
	if steps[0].StepID != "step-2" || steps[1].StepID != "step-1" {
		t.Fatalf("wrong order: %s, %s", steps[0].StepID, steps[1].StepID)
	}

	got := steps[1]
	if got.Raw != first.Raw || got.Norm != first.Norm || got.Depth != first.Depth {
		t.Fatalf("numeric fields lost: %+v vs %+v", got, first)
	}
	if got.Level != gate.LevelBlocked || got.Reason != gate.ReasonBlocked {
		t.Fatalf("level/reason lost: %+v", got)
	}
	if got.Warmth != first.Warmth || got.Threshold != first.Threshold {
		t.Fatalf("scalar fields lost: %+v", got)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("timestamp lost: %v vs %v", got.CreatedAt, first.CreatedAt)
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		res := sampleResult(string(rune('a'+i)), gate.LevelOK, base.Add(time.Duration(i)*time.Second))
		if err := store.Append(res); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	steps, err := store.Recent(3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("Recent(3) returned %d steps", len(steps))
	}
}

func TestCountByLevel(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	levels := []gate.Level{
		gate.LevelOK, gate.LevelOK, gate.LevelOK,
		gate.LevelWarning, gate.LevelBlocked, gate.LevelBlocked,
	}
	for i, level := range levels {
		res := sampleResult(string(rune('a'+i)), level, base.Add(time.Duration(i)*time.Second))
		if err := store.Append(res); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	counts, err := store.CountByLevel()
	if err != nil {
		t.Fatalf("CountByLevel: %v", err)
	}
	if counts[gate.LevelOK] != 3 || counts[gate.LevelWarning] != 1 || counts[gate.LevelBlocked] != 2 {
		t.Fatalf("wrong counts: %v", counts)
	}
}

func TestAppendFromLivePipeline(t *testing.T) {
	store := newTestStore(t)
	ctrl, err := pipeline.NewController(pipeline.DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	res, err := ctrl.Process(-2)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if err := store.Append(res); err != nil {
		t.Fatalf("Append: %v", err)
	}

	steps, err := store.Recent(1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(steps) != 1 || steps[0].StepID != res.StepID {
		t.Fatalf("live result not journaled: %+v", steps)
	}
}
