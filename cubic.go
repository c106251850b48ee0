package bezclip

import (
	"math"
	"sort"
)

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

const (
	// cubicExtremaMargin is wider than the quadratic one because the
	// extrema come out of a quadratic solve instead of a division.
	cubicExtremaMargin = 1e-7

	nearestStarts = 4
	nearestSteps  = 16
)

// BoundingBox returns the exact bounds of the curve.
func (c CubicBez) BoundingBox() Rect {
	return BoundingBox(c)
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Differentiate returns the derivative curve, a quadratic Bézier of
// velocities.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Deriv(t float64) Vec2 {
	return Vec2(c.Differentiate().Eval(t))
}

// secondDeriv returns the second derivative at t.
func (c CubicBez) secondDeriv(t float64) Vec2 {
	return Vec2(c.Differentiate().Differentiate().Eval(t))
}

// Extrema returns the parameters at which the curve's x or y derivative
// vanishes, sorted and without duplicates. Parameters within 1e-7 of either
// endpoint are not reported.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(a, b, c)
		for _, t := range roots[:n] {
			if inside(cubicExtremaMargin, t, 1-cubicExtremaMargin) {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])

	// Double roots and shared x/y extrema would produce empty ranges.
	n := 0
	for i, t := range out[:outN] {
		if i > 0 && t == out[n-1] {
			continue
		}
		out[n] = t
		n++
	}
	for i := n; i < outN; i++ {
		out[i] = 0
	}
	return out, n
}

// IsFlat reports whether the curve deviates from its chord by less than
// epsilon. The bound is the tight fat-line width for cubics: 3/4 of the
// control point distances when both lie on the same side of the chord, 4/9
// otherwise.
func (c CubicBez) IsFlat(epsilon float64) bool {
	d1 := signedDistance(c.P1, c.P0, c.P3)
	d2 := signedDistance(c.P2, c.P0, c.P3)
	k := 3.0 / 4.0
	if d1*d2 < 0 {
		k = 4.0 / 9.0
	}
	return math.Abs(d1*k) < epsilon && math.Abs(d2*k) < epsilon
}

// Nearest finds the point on the curve closest to pt, returning the squared
// distance and the parameter in [0, 1].
//
// The search runs Newton's method on the derivative of the squared distance
// from several evenly spaced starting parameters, and also considers both
// endpoints.
func (c CubicBez) Nearest(pt Point) (distSq, t float64) {
	distSq = pt.DistanceSquared(c.P0)
	if r := pt.DistanceSquared(c.P3); r < distSq {
		distSq, t = r, 1
	}
	for i := range nearestStarts {
		u := float64(i) / (nearestStarts - 1)
		for range nearestSteps {
			v := c.Eval(u).Sub(pt)
			if r := v.Hypot2(); r < distSq {
				distSq, t = r, u
			}
			d1 := c.Deriv(u)
			d2 := c.secondDeriv(u)
			du := v.Dot(d1) / (d1.Dot(d1) + v.Dot(d2))
			if math.IsNaN(du) || math.Abs(du) < Epsilon {
				break
			}
			u -= du
			if u < 0 || u > 1 {
				break
			}
		}
	}
	return distSq, t
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

func (c CubicBez) Curve() Curve {
	return Curve{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}
