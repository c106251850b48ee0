package bezclip

import (
	"math"
)

// Tolerances used throughout the package. They are tuned together; changing
// one changes which inputs are treated as degenerate.
const (
	// MachineEpsilon is the unit in the last place of 1.0.
	MachineEpsilon = 0x1p-52
	// Epsilon is the tolerance for general floating-point equality.
	Epsilon = 1e-14
	// ParametricEpsilon is the distance from 0 or 1 within which a curve
	// parameter is snapped onto the endpoint.
	ParametricEpsilon = 1e-5
	// SpatialEpsilon is the distance below which two positions are
	// considered equal.
	SpatialEpsilon = 1e-5
	// DiscriminantEpsilon is how far below zero a quadratic discriminant may
	// fall and still be treated as a (double) real root.
	DiscriminantEpsilon = 1e-10
	// SolutionEpsilon is the largest residual accepted when verifying a root
	// by back-substitution.
	SolutionEpsilon = 1e-8

	// MaxCubicCubicIntersections is the number of isolated intersections two
	// cubic Béziers can have.
	MaxCubicCubicIntersections = 9
)

const (
	fatLineParametricResolution = 1e-5
	fatLineSpatialEpsilon       = 1e-5

	// 2^27 + 1, splits a float64 into two halves with 26 significant bits
	// each.
	dekkerSplitter = 134217729
)

// exponent returns the unbiased binary exponent of x, ignoring its sign.
// Zero and subnormals report -1023.
func exponent(x float64) int {
	return int(math.Float64bits(x)>>52&0x7ff) - 1023
}

// normalizationFactor returns a power of two that brings the largest
// magnitude among vals into [2^-8, 2^9). Values already in that range are
// left alone.
func normalizationFactor(vals ...float64) float64 {
	var m float64
	for _, v := range vals {
		m = max(m, math.Abs(v))
	}
	if m == 0 {
		return 1
	}
	e := exponent(m)
	if e < -8 || e > 8 {
		return math.Ldexp(1, -e)
	}
	return 1
}

func equal(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// inside reports whether x lies strictly between lo and hi.
func inside(lo, x, hi float64) bool {
	return lo < x && x < hi
}

// roundParam snaps t onto 0 or 1 when it is within ParametricEpsilon of
// either.
func roundParam(t float64) float64 {
	switch {
	case equal(t, 0, ParametricEpsilon):
		return 0
	case equal(t, 1, ParametricEpsilon):
		return 1
	default:
		return t
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
