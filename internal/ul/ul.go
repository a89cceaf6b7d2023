package ul

import (
	"math"

	"github.com/danielpatrickdp/emotion-layer/go-core/internal/xc"
)

// #region types

// Intensity is a coarse band for rendering emphasis.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Result is the rendered metaphor for one external state.
type Result struct {
	Text       string
	Symbol     string
	Intensity  Intensity
	SafetyNote string
}

// #endregion types

// #region tables

// depthImages maps U* ceilings to a scene and a symbol, deepest first.
// Mostly for UI and visualization demos.
var depthImages = []struct {
	ceiling float64
	text    string
	symbol  string
}{
	{-0.8, "a deep seabed where light is faint", "🌊"},
	{-0.3, "rain falling in the quiet ocean", "🌧️"},
	{0.3, "slow mid-depth currents", "💧"},
	{math.Inf(1), "surface waves glittering with light", "❇️"},
}

const softenedText = "Even in the deepest water, you are gently held by the ocean."

// #endregion tables

// #region mapper

// Mapper renders an ExternalState into metaphorical text. Stateless and
// table-driven; pure presentation with no policy behavior.
type Mapper struct {
	// culture and style are reserved hooks for per-deployment rendering
	// families. The generic tables above are the only family implemented.
	culture string
	style   string
}

// NewMapper creates a mapper. Empty culture/style fall back to "generic"
// and "poetic".
func NewMapper(culture, style string) *Mapper {
	if culture == "" {
		culture = "generic"
	}
	if style == "" {
		style = "poetic"
	}
	return &Mapper{culture: culture, style: style}
}

// Map renders state into a Result. States at or below the hard redline are
// softened rather than rendered literally, and the safety note says so.
func (m *Mapper) Map(state xc.ExternalState) Result {
	text, symbol := imageFor(state.U)

	// Warmth modulation.
	switch {
	case state.WarmthC >= 0.7:
		text = "warm " + text
	case state.WarmthC <= 0.2:
		text = "cool " + text
	}

	note := "normal"
	if state.U <= -0.95 {
		text = softenedText
		note = "softened_extreme_negative"
	}

	return Result{
		Text:       text,
		Symbol:     symbol,
		Intensity:  intensityFor(state),
		SafetyNote: note,
	}
}

// #endregion mapper

// #region helpers

func imageFor(u float64) (string, string) {
	for _, img := range depthImages {
		if u <= img.ceiling {
			return img.text, img.symbol
		}
	}
	last := depthImages[len(depthImages)-1]
	return last.text, last.symbol
}

// intensityFor derives a rough band: extreme depth reads high, a calm
// mid-band state with moderate warmth reads low, everything else medium.
func intensityFor(state xc.ExternalState) Intensity {
	if math.Abs(state.U) > 0.9 {
		return IntensityHigh
	}
	if math.Abs(state.U) < 0.3 && state.WarmthC >= 0.3 && state.WarmthC <= 0.7 {
		return IntensityLow
	}
	return IntensityMedium
}

// #endregion helpers
