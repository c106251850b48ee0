package bezclip

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Intersection is a pair of curve parameters at which two curves meet. S is
// the parameter on the first curve, T the parameter on the second.
type Intersection struct {
	S, T float64
}

func (i Intersection) String() string {
	return fmt.Sprintf("(s=%g, t=%g)", i.S, i.T)
}

// Swap exchanges the roles of the two curves.
func (i Intersection) Swap() Intersection {
	return Intersection{S: i.T, T: i.S}
}

// IntersectOptions controls the fat-line clipping used for curve×curve
// intersections.
type IntersectOptions struct {
	// CollinearCheckIterations is the number of clipping iterations after
	// which the curves are tested once for being collinear.
	CollinearCheckIterations int
	// StallRatio is the fraction of a parameter range that a clipping step
	// has to remove at least. A pair whose ranges shrink by less is split in
	// half.
	StallRatio float64
	// MaxIterations bounds the total number of clipping iterations. Zero
	// means no limit.
	MaxIterations int
}

// DefaultIntersectOptions are the options used by [Intersections].
var DefaultIntersectOptions = IntersectOptions{
	CollinearCheckIterations: 32,
	StallRatio:               0.8,
}

// Intersections computes the points at which a and b meet, using
// [DefaultIntersectOptions].
func Intersections(a, b Curve) []Intersection {
	return IntersectionsOpt(a, b, DefaultIntersectOptions)
}

// IntersectionsOpt computes the points at which a and b meet.
//
// The result is normalized as by [Normalize]: both parameters lie in [0, 1],
// pairs are sorted by T, then S, and no two pairs coincide. Overlapping
// collinear curves report the two ends of their shared section. Degenerate
// input yields no intersections rather than an error.
func IntersectionsOpt(a, b Curve, opts IntersectOptions) []Intersection {
	if !a.BoundingBox().Inflate(SpatialEpsilon, SpatialEpsilon).Overlaps(b.BoundingBox()) {
		return nil
	}

	var is []Intersection
	if la, ok := asLine(a); ok {
		is = lineCurve(a, la, b)
	} else if lb, ok := asLine(b); ok {
		is = lineCurve(b, lb, a)
		for i := range is {
			is[i] = is[i].Swap()
		}
	} else {
		is = fatLineCurveCurve(a, b, opts)
	}
	return mergeNear(Normalize(is))
}

// asLine returns the line that may stand in for c: c itself if it is a line,
// or its chord if it is monotonic and flat.
func asLine(c Curve) (Line, bool) {
	if c.Kind == LineKind {
		return c.Line(), true
	}
	if _, n := c.Extrema(); n == 0 && c.IsFlat(SpatialEpsilon) {
		return c.Chord(), true
	}
	return Line{}, false
}

// lineCurve intersects a, represented by the line la, with b.
func lineCurve(a Curve, la Line, b Curve) []Intersection {
	var is []Intersection
	if lb, ok := asLine(b); ok {
		is = lineLine(la, lb)
		for i := range is {
			is[i].T = chordParam(b, lb, is[i].T)
		}
	} else {
		switch b.Kind {
		case QuadKind:
			is = lineQuadratic(la, b.Quad())
		case CubicKind:
			is = lineCubic(la, b.Cubic())
		default:
			panic(invalidKind(b.Kind))
		}
	}
	for i := range is {
		is[i].S = chordParam(a, la, is[i].S)
	}
	return is
}

// chordParam maps a parameter on chord, the line standing in for c, onto c.
// Parameters that are outside the chord are left alone for normalization to
// discard.
func chordParam(c Curve, chord Line, u float64) float64 {
	if c.Kind == LineKind || u < -ParametricEpsilon || u > 1+ParametricEpsilon {
		return u
	}
	_, t := c.Nearest(chord.Eval(u))
	return t
}

func lineLine(a, b Line) []Intersection {
	av := a.P1.Sub(a.P0)
	bv := b.P1.Sub(b.P0)

	d := av.Cross(bv)
	if math.Abs(d) < 1e-6 {
		is := collinearIntersection(a.Curve(), b.Curve())
		ok := true
		for _, i := range is {
			if !a.Eval(i.S).Near(b.Eval(i.T)) {
				ok = false
				break
			}
		}
		if ok {
			return is
		}
		if d == 0 {
			return nil
		}
	}

	asb := a.P0.Sub(b.P0)
	return []Intersection{{
		S: bv.Cross(asb) / d,
		T: av.Cross(asb) / d,
	}}
}

// lineParam returns the parameter of pt, assumed to lie on l, measured along
// the dominant axis of l's direction.
func lineParam(l Line, pt Point) float64 {
	dir := l.P1.Sub(l.P0)
	if math.Abs(dir.X) >= math.Abs(dir.Y) {
		return (pt.X - l.P0.X) / dir.X
	}
	return (pt.Y - l.P0.Y) / dir.Y
}

func lineQuadratic(l Line, q QuadBez) []Intersection {
	p0, p1, p2 := Vec2(q.P0), Vec2(q.P1), Vec2(q.P2)
	a := p0.Sub(p1.Mul(2)).Add(p2)
	b := p1.Sub(p0).Mul(2)
	c := p0

	// Substitute the curve into the implicit form of the line.
	dir := l.P1.Sub(l.P0)
	n := Vec2{-dir.Y, dir.X}
	roots, k := SolveQuadratic(
		n.Dot(a),
		n.Dot(b),
		n.Dot(c)+Vec2(l.P0).Cross(Vec2(l.P1)),
	)

	out := make([]Intersection, 0, k)
	for _, t := range roots[:k] {
		out = append(out, Intersection{S: lineParam(l, q.Eval(t)), T: t})
	}
	return out
}

func lineCubic(l Line, c CubicBez) []Intersection {
	p0, p1, p2, p3 := Vec2(c.P0), Vec2(c.P1), Vec2(c.P2), Vec2(c.P3)
	a := p0.Negate().Add(p1.Mul(3)).Sub(p2.Mul(3)).Add(p3)
	b := p0.Mul(3).Sub(p1.Mul(6)).Add(p2.Mul(3))
	cc := p0.Mul(-3).Add(p1.Mul(3))
	d := p0

	dir := l.P1.Sub(l.P0)
	n := Vec2{-dir.Y, dir.X}
	roots, k := SolveCubic(
		n.Dot(a),
		n.Dot(b),
		n.Dot(cc),
		n.Dot(d)+Vec2(l.P0).Cross(Vec2(l.P1)),
	)

	out := make([]Intersection, 0, k)
	for _, t := range roots[:k] {
		out = append(out, Intersection{S: lineParam(l, c.Eval(t)), T: t})
	}
	return out
}

// collinearIntersection computes the overlap of a and b under the assumption
// that they lie on top of each other, by projecting each end of a onto b and
// falling back to projecting b's ends onto a where a overhangs b.
func collinearIntersection(a, b Curve) []Intersection {
	out := make([]Intersection, 0, 2)
	for _, s := range [2]float64{0, 1} {
		_, tb := b.Nearest(a.Eval(s))
		switch {
		case tb <= 0:
			_, sa := a.Nearest(b.Start())
			sa = roundParam(sa)
			if unitInterval.Contains(sa) {
				out = append(out, Intersection{S: sa, T: 0})
			}
		case tb >= 1:
			_, sa := a.Nearest(b.End())
			sa = roundParam(sa)
			if unitInterval.Contains(sa) {
				out = append(out, Intersection{S: sa, T: 1})
			}
		default:
			out = append(out, Intersection{S: s, T: tb})
		}
	}

	// Both ends of a may have collapsed onto the same end of b.
	if len(out) == 2 &&
		equal(out[0].S, out[1].S, ParametricEpsilon) &&
		equal(out[0].T, out[1].T, ParametricEpsilon) {
		out = out[:1]
	}
	return out
}

// isCollinear reports whether is, as computed by collinearIntersection,
// describes a section along which a and b coincide.
func isCollinear(a, b Curve, is []Intersection) bool {
	if len(is) != 2 {
		return false
	}
	sr := Interval{is[0].S, is[1].S}
	tr := Interval{is[0].T, is[1].T}
	for i := range 10 {
		t := float64(i) / 9
		if !a.Eval(sr.Lerp(t)).Near(b.Eval(tr.Lerp(t))) {
			return false
		}
	}
	return true
}

var unitSquare = Rect{0, 0, 1, 1}

// Normalize cleans up raw intersections. Parameters within ParametricEpsilon
// of 0 or 1 are snapped onto them and pairs outside [0, 1]² are dropped.
// Pairs whose T (or S) are equal within Epsilon are reduced to one. The
// result is sorted by T, then S.
//
// Normalize reuses the storage of is. It is idempotent.
func Normalize(is []Intersection) []Intersection {
	n := 0
	for _, i := range is {
		i = Intersection{roundParam(i.S), roundParam(i.T)}
		if unitSquare.Contains(Point{i.S, i.T}) {
			is[n] = i
			n++
		}
	}
	is = is[:n]

	if len(is) > 1 {
		slices.SortStableFunc(is, func(x, y Intersection) int { return cmp.Compare(x.T, y.T) })
		is = slices.CompactFunc(is, func(x, y Intersection) bool { return equal(x.T, y.T, Epsilon) })
	}
	if len(is) > 1 {
		slices.SortStableFunc(is, func(x, y Intersection) int { return cmp.Compare(x.S, y.S) })
		is = slices.CompactFunc(is, func(x, y Intersection) bool { return equal(x.S, y.S, Epsilon) })
	}
	slices.SortFunc(is, compareIntersections)
	return is
}

func compareIntersections(x, y Intersection) int {
	if c := cmp.Compare(x.T, y.T); c != 0 {
		return c
	}
	return cmp.Compare(x.S, y.S)
}

// mergeNear drops pairs that lie within ParametricEpsilon of an earlier pair
// in both parameters. Iterative solvers and double roots produce such near
// duplicates. The order of is is preserved.
func mergeNear(is []Intersection) []Intersection {
	out := is[:0]
outer:
	for _, i := range is {
		for _, o := range out {
			if equal(o.S, i.S, ParametricEpsilon) && equal(o.T, i.T, ParametricEpsilon) {
				continue outer
			}
		}
		out = append(out, i)
	}
	return out
}
