package bezclip

import (
	"fmt"
	"math"
)

// Interval is a closed range of real numbers with Lo <= Hi. The empty
// interval has NaN bounds.
type Interval struct {
	Lo, Hi float64
}

// EmptyInterval contains no values.
var EmptyInterval = Interval{math.NaN(), math.NaN()}

// unitInterval is the domain of every curve parameter.
var unitInterval = Interval{0, 1}

// NewInterval returns the interval spanning a and b, in either order.
func NewInterval(a, b float64) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{a, b}
}

func (iv Interval) String() string {
	if iv.IsEmpty() {
		return "[]"
	}
	return fmt.Sprintf("[%g, %g]", iv.Lo, iv.Hi)
}

func (iv Interval) IsEmpty() bool {
	return math.IsNaN(iv.Lo) || math.IsNaN(iv.Hi)
}

// Size returns Hi − Lo, or 0 for the empty interval.
func (iv Interval) Size() float64 {
	if iv.IsEmpty() {
		return 0
	}
	return iv.Hi - iv.Lo
}

// Contains reports whether x lies in iv, bounds included.
func (iv Interval) Contains(x float64) bool {
	return !iv.IsEmpty() && iv.Lo <= x && x <= iv.Hi
}

// Expand grows the interval by n on both ends. Shrinking it past a single
// point yields the empty interval.
func (iv Interval) Expand(n float64) Interval {
	if iv.IsEmpty() || iv.Size()+2*n < 0 {
		return EmptyInterval
	}
	return Interval{iv.Lo - n, iv.Hi + n}
}

// Union returns the smallest interval containing both iv and o.
func (iv Interval) Union(o Interval) Interval {
	switch {
	case iv.IsEmpty():
		return o
	case o.IsEmpty():
		return iv
	default:
		return Interval{min(iv.Lo, o.Lo), max(iv.Hi, o.Hi)}
	}
}

// Lerp maps t from [0, 1] onto the interval. Lerp(1) is exactly Hi.
func (iv Interval) Lerp(t float64) float64 {
	if t == 1 {
		return iv.Hi
	}
	return lerp(iv.Lo, iv.Hi, t)
}

// LerpInterval maps o, a sub-interval of [0, 1], onto iv.
func (iv Interval) LerpInterval(o Interval) Interval {
	return NewInterval(iv.Lerp(o.Lo), iv.Lerp(o.Hi))
}

// Normalize maps x from the interval onto [0, 1]; it is the inverse of Lerp.
func (iv Interval) Normalize(x float64) float64 {
	return (x - iv.Lo) / (iv.Hi - iv.Lo)
}
