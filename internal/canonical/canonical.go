package canonical

import "math"

// #region normalize
// Normalize squashes an unbounded raw emotion signal into (-1, 1) using tanh.
// Odd, strictly increasing, Normalize(0) = 0, asymptotes to ±1 as |x| → ∞.
func Normalize(x float64) float64 {
	return math.Tanh(x)
}

// #endregion normalize

// #region depth-transform
// Transform constants. The gain controls curvature of the squashing term,
// the linear blend keeps the composite from fully saturating at ±1.
const (
	squashGain  = 2.0
	linearBlend = 0.2
	blendScale  = 1.2
)

// DepthTransform maps a normalized value n in (-1, 1) to the canonical depth
// scalar U*. The squashing term makes extremes harder to reach while staying
// more expressive than identity in the everyday band around 0.
//
// The output is a nominal bound, not hard-enforced: consumers must not assume
// the result is clamped to [-1, 1].
func DepthTransform(n float64) float64 {
	return (math.Tanh(squashGain*n) + linearBlend*n) / blendScale
}

// #endregion depth-transform
