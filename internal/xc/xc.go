package xc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielpatrickdp/emotion-layer/go-core/internal/gate"
	"github.com/danielpatrickdp/emotion-layer/go-core/internal/pipeline"
)

// #region errors
var (
	// ErrMissingField marks a record that lacks a required field.
	ErrMissingField = errors.New("missing required field")
	// ErrBadField marks a required field with an unusable type or value.
	ErrBadField = errors.New("bad field")
)

// #endregion errors

// #region adapt
// Adapt projects a pipeline result into the stable external form. Pure
// projection: no mutation of the input, no I/O. The context parameter is an
// extension point with no current semantics.
func Adapt(result pipeline.Result, _ Context) (ExternalState, error) {
	if result.Level == "" {
		return ExternalState{}, fmt.Errorf("%w: safety level", ErrMissingField)
	}
	if !result.Level.Valid() {
		return ExternalState{}, fmt.Errorf("%w: unknown safety level %q", ErrBadField, result.Level)
	}
	if result.Reason == "" {
		return ExternalState{}, fmt.Errorf("%w: safety reason", ErrMissingField)
	}

	return ExternalState{
		Raw:          result.Raw,
		N:            result.Norm,
		U:            result.Depth,
		SafetyLevel:  string(result.Level),
		SafetyReason: result.Reason,
		WarmthC:      result.Warmth,
	}, nil
}

// #endregion adapt

// #region adapt-record
// AdaptRecord adapts a loosely-typed record (e.g. a decoded JSON snapshot
// from another producer or an older schema) into an ExternalState.
//
// Required fields: raw, n, u, safety_level, safety_reason. Missing or
// malformed required fields fail with a validation error. warmth_c is
// optional and defaults to 0.0.
func AdaptRecord(rec map[string]any, _ Context) (ExternalState, error) {
	raw, err := requireNumber(rec, "raw")
	if err != nil {
		return ExternalState{}, err
	}
	n, err := requireNumber(rec, "n")
	if err != nil {
		return ExternalState{}, err
	}
	u, err := requireNumber(rec, "u")
	if err != nil {
		return ExternalState{}, err
	}
	levelStr, err := requireString(rec, "safety_level")
	if err != nil {
		return ExternalState{}, err
	}
	if !gate.Level(levelStr).Valid() {
		return ExternalState{}, fmt.Errorf("%w: unknown safety level %q", ErrBadField, levelStr)
	}
	reason, err := requireString(rec, "safety_reason")
	if err != nil {
		return ExternalState{}, err
	}

	warmth := 0.0
	if v, ok := rec["warmth_c"]; ok {
		warmth, err = coerceNumber("warmth_c", v)
		if err != nil {
			return ExternalState{}, err
		}
	}

	return ExternalState{
		Raw:          raw,
		N:            n,
		U:            u,
		SafetyLevel:  levelStr,
		SafetyReason: reason,
		WarmthC:      warmth,
	}, nil
}

// #endregion adapt-record

// #region helpers
func requireNumber(rec map[string]any, key string) (float64, error) {
	v, ok := rec[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	return coerceNumber(key, v)
}

func requireString(rec map[string]any, key string) (string, error) {
	v, ok := rec[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, want string", ErrBadField, key, v)
	}
	return s, nil
}

// coerceNumber accepts the numeric shapes a decoded record may carry.
func coerceNumber(key string, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrBadField, key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s is %T, want number", ErrBadField, key, v)
	}
}

// #endregion helpers
