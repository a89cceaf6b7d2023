package canonical

import (
	"math"
	"testing"
)

var sampleInputs = []float64{0, 0.1, 0.5, 0.8, 1, 1.5, 2, 3, 5, 10, 100}

func TestNormalizeZero(t *testing.T) {
	if got := Normalize(0); got != 0 {
		t.Fatalf("Normalize(0) = %v, want 0", got)
	}
}

func TestNormalizeOddSymmetry(t *testing.T) {
	for _, x := range sampleInputs {
		if got, want := Normalize(-x), -Normalize(x); got != want {
			t.Errorf("Normalize(%v) = %v, want %v", -x, got, want)
		}
	}
}

func TestNormalizeBounds(t *testing.T) {
	for _, x := range sampleInputs {
		n := Normalize(x)
		if n <= -1 || n >= 1 {
			t.Errorf("Normalize(%v) = %v, outside (-1, 1)", x, n)
		}
		n = Normalize(-x)
		if n <= -1 || n >= 1 {
			t.Errorf("Normalize(%v) = %v, outside (-1, 1)", -x, n)
		}
	}
}

func TestNormalizeMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for x := -6.0; x <= 6.0; x += 0.25 {
		n := Normalize(x)
		if n <= prev {
			t.Fatalf("Normalize not increasing at x=%v: %v <= %v", x, n, prev)
		}
		prev = n
	}
}

func TestNormalizeAsymptotes(t *testing.T) {
	if n := Normalize(50); n < 0.9999 {
		t.Errorf("Normalize(50) = %v, want near 1", n)
	}
	if n := Normalize(-50); n > -0.9999 {
		t.Errorf("Normalize(-50) = %v, want near -1", n)
	}
}

func TestDepthTransformZero(t *testing.T) {
	if got := DepthTransform(0); got != 0 {
		t.Fatalf("DepthTransform(0) = %v, want 0", got)
	}
}

func TestDepthTransformMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for n := -1.0; n <= 1.0; n += 0.05 {
		u := DepthTransform(n)
		if u <= prev {
			t.Fatalf("DepthTransform not increasing at n=%v: %v <= %v", n, u, prev)
		}
		prev = u
	}
}

func TestDepthTransformSteeperThanIdentityNearZero(t *testing.T) {
	for _, n := range []float64{0.05, 0.1, 0.2} {
		u := DepthTransform(n)
		if u <= n {
			t.Errorf("DepthTransform(%v) = %v, want > %v (steeper near 0)", n, u, n)
		}
	}
}

func TestDepthTransformFlatterNearExtremes(t *testing.T) {
	// The slope near the extremes must be well below the slope around 0.
	centerSlope := DepthTransform(0.05) - DepthTransform(-0.05)
	edgeSlope := DepthTransform(0.99) - DepthTransform(0.89)
	if edgeSlope >= centerSlope {
		t.Fatalf("edge slope %v not flatter than center slope %v", edgeSlope, centerSlope)
	}
}

func TestDepthTransformNeverSaturates(t *testing.T) {
	// Even at the edges of the normalized domain, the composite stays
	// strictly inside ±1.
	for _, n := range []float64{1, -1, 0.999, -0.999} {
		u := DepthTransform(n)
		if math.Abs(u) >= 1 {
			t.Errorf("DepthTransform(%v) = %v, want |u| < 1", n, u)
		}
	}
}

func TestDepthTransformOddSymmetry(t *testing.T) {
	for _, n := range []float64{0.1, 0.3, 0.5, 0.9, 0.99} {
		if got, want := DepthTransform(-n), -DepthTransform(n); got != want {
			t.Errorf("DepthTransform(%v) = %v, want %v", -n, got, want)
		}
	}
}
