package xc

// #region external-state
// ExternalState is the downstream-facing projection of a pipeline result.
// Field names and types are the stable hand-off contract for external
// modules (metaphor rendering, logging/analytics sinks). Never mutated
// after construction.
type ExternalState struct {
	Raw          float64 `json:"raw"`
	N            float64 `json:"n"`
	U            float64 `json:"u"`
	SafetyLevel  string  `json:"safety_level"`
	SafetyReason string  `json:"safety_reason"`
	WarmthC      float64 `json:"warmth_c"`
}

// #endregion external-state

// #region depth-band
// Depth band names for coarse bucketing of U*. The names are deliberately
// neutral; renderers are free to map them to any metaphor family.
const (
	BandAbyss    = "abyss"
	BandDeepRain = "deep_rain"
	BandMid      = "mid"
	BandSurface  = "surface"
)

// DepthBand buckets u into a coarse band for downstream renderers.
func (s ExternalState) DepthBand() string {
	switch {
	case s.U <= -0.8:
		return BandAbyss
	case s.U <= -0.3:
		return BandDeepRain
	case s.U <= 0.3:
		return BandMid
	default:
		return BandSurface
	}
}

// #endregion depth-band

// #region context
// Context is optional caller metadata (personality/culture hooks,
// conversation history). It is reserved for future extensibility and has no
// current semantics: the adapter accepts it and ignores it.
type Context map[string]any

// #endregion context
