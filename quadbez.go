package bezclip

import (
	"math"
)

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// quadExtremaMargin keeps extrema that sit on the endpoints from splitting
// off empty ranges.
const quadExtremaMargin = 1e-10

func (q QuadBez) BoundingBox() Rect {
	return BoundingBox(q)
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Differentiate returns the derivative curve, a line of velocities.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Deriv(t float64) Vec2 {
	return Vec2(q.Differentiate().Eval(t))
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

// Extrema returns the parameters at which the curve's x or y derivative
// vanishes, in increasing order. Parameters within 1e-10 of either endpoint
// are not reported.
func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// The derivative is a line, so each axis has at most one root.
	var out [MaxExtrema]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if inside(quadExtremaMargin, t, 1-quadExtremaMargin) {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if inside(quadExtremaMargin, t, 1-quadExtremaMargin) && (outN == 0 || out[0] != t) {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

// IsFlat reports whether the curve deviates from its chord by less than
// epsilon.
func (q QuadBez) IsFlat(epsilon float64) bool {
	return math.Abs(signedDistance(q.P1, q.P0, q.P2)/2) < epsilon
}

// Nearest finds the point on the curve closest to pt, returning the squared
// distance and the parameter in [0, 1].
func (q QuadBez) Nearest(pt Point) (distSq, t float64) {
	// The squared distance is a quartic in t; its derivative is the cubic
	// c3 t³ + c2 t² + c1 t + c0.
	d0 := q.P1.Sub(q.P0)
	d1 := Vec2(q.P0).Add(Vec2(q.P2)).Sub(Vec2(q.P1).Mul(2.0))
	d := q.P0.Sub(pt)
	c0 := d.Dot(d0)
	c1 := 2.0*d0.Hypot2() + d.Dot(d1)
	c2 := 3.0 * d1.Dot(d0)
	c3 := d1.Hypot2()

	distSq = pt.DistanceSquared(q.P0)
	if r := pt.DistanceSquared(q.P2); r < distSq {
		distSq, t = r, 1
	}
	roots, n := SolveCubic(c3, c2, c1, c0)
	for _, rt := range roots[:n] {
		if !(rt >= 0 && rt <= 1) {
			continue
		}
		if r := pt.DistanceSquared(q.Eval(rt)); r < distSq {
			distSq, t = r, rt
		}
	}
	return distSq, t
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q QuadBez) Reverse() QuadBez {
	return QuadBez{q.P2, q.P1, q.P0}
}

func (q QuadBez) Curve() Curve {
	return Curve{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}
