package bezclip

import (
	"math"
)

// fatLine is a section of a curve bounded by its chord, moved sideways by
// width.
type fatLine struct {
	// curve is the complete curve, t the section of it.
	curve Curve
	t     Interval
	// rng is curve restricted to t.
	rng Curve
	// width is the range of signed distances of rng from its chord.
	width Interval
}

func newFatLine(c Curve, t Interval) fatLine {
	t = quantize(t)
	rng := c.Subsegment(t.Lo, t.Hi)
	return fatLine{
		curve: c,
		t:     t,
		rng:   rng,
		width: fatLineWidth(rng),
	}
}

// fatLinesFrom splits c at its extrema, so that no fat line wraps around an
// inflection or a turn.
func fatLinesFrom(c Curve) []fatLine {
	ranges, n := ExtremaRanges(c)
	out := make([]fatLine, n)
	for i, r := range ranges[:n] {
		out[i] = newFatLine(c, Interval{r[0], r[1]})
	}
	return out
}

// quantize snaps t outwards onto multiples of fatLineParametricResolution,
// never producing an empty range.
func quantize(t Interval) Interval {
	const res = fatLineParametricResolution
	// Bounds that are multiples of res up to representation error stay put.
	const slack = 1e-9
	lo := min(1-res, math.Floor(t.Lo/res+slack)*res)
	hi := max(lo+res, math.Ceil(t.Hi/res-slack)*res)
	return Interval{lo, hi}
}

func fatLineWidth(c Curve) Interval {
	switch c.Kind {
	case LineKind:
		return Interval{0, 0}
	case QuadKind:
		return NewInterval(0, signedDistance(c.P1, c.P0, c.P2)/2)
	case CubicKind:
		d1 := signedDistance(c.P1, c.P0, c.P3)
		d2 := signedDistance(c.P2, c.P0, c.P3)
		k := 3.0 / 4.0
		if d1*d2 < 0 {
			k = 4.0 / 9.0
		}
		return Interval{min(0, d1, d2) * k, max(0, d1, d2) * k}
	default:
		panic(invalidKind(c.Kind))
	}
}

// isFlat reports whether the section can be treated as its chord. A section
// that is a single quantization step wide cannot be split any further.
func (f fatLine) isFlat() bool {
	return f.t.Size() < ParametricEpsilon*1.5 || f.width.Size() <= SpatialEpsilon
}

func (f fatLine) chord() Line {
	return f.rng.Chord()
}

func (f fatLine) bounds() Rect {
	return NewRectFromPoints(f.rng.Start(), f.rng.End())
}

func (f fatLine) overlaps(o fatLine) bool {
	const pad = SpatialEpsilon * 10
	return f.bounds().Inflate(pad, pad).Overlaps(o.bounds())
}

func (f fatLine) split() []fatLine {
	if f.isFlat() {
		return []fatLine{f}
	}
	mid := f.t.Lerp(0.5)
	return []fatLine{
		newFatLine(f.curve, Interval{f.t.Lo, mid}),
		newFatLine(f.curve, Interval{mid, f.t.Hi}),
	}
}

// convexHull returns the closed convex hull of the distance function of c
// from the line through a and b, as points (t, distance).
func convexHull(a, b Point, c Curve) []Point {
	switch c.Kind {
	case QuadKind:
		p0 := Point{0, signedDistance(c.P0, a, b)}
		p1 := Point{0.5, signedDistance(c.P1, a, b)}
		p2 := Point{1, signedDistance(c.P2, a, b)}
		return []Point{p0, p1, p2, p0}
	case CubicKind:
		p0 := Point{0, signedDistance(c.P0, a, b)}
		p1 := Point{1.0 / 3.0, signedDistance(c.P1, a, b)}
		p2 := Point{2.0 / 3.0, signedDistance(c.P2, a, b)}
		p3 := Point{1, signedDistance(c.P3, a, b)}

		// Where the inner points lie relative to the outer edge decides
		// which of them are vertices.
		d1 := signedDistance(p1, p0, p3)
		d2 := signedDistance(p2, p0, p3)
		if d1*d2 < 0 {
			return []Point{p0, p1, p3, p2, p0}
		}
		switch k := d1 / d2; {
		case k >= 2:
			return []Point{p0, p1, p3, p0}
		case k <= 0.5:
			return []Point{p0, p2, p3, p0}
		default:
			return []Point{p0, p1, p2, p3, p0}
		}
	case LineKind:
		panic("bezclip: convex hull of a line")
	default:
		panic(invalidKind(c.Kind))
	}
}

// clipHull returns the range of parameters at which the closed polygon hull
// lies within band on the y axis.
func clipHull(band Interval, hull []Point) Interval {
	lo := math.Inf(1)
	hi := math.Inf(-1)

	for _, p := range hull[:len(hull)-1] {
		if band.Contains(p.Y) {
			lo = min(lo, p.X)
			hi = max(hi, p.X)
		}
	}

	for _, y := range [2]float64{band.Lo, band.Hi} {
		for i := range len(hull) - 1 {
			a, b := hull[i], hull[i+1]
			if !NewInterval(a.Y, b.Y).Contains(y) {
				continue
			}
			if a.Y == b.Y {
				lo = min(lo, a.X, b.X)
				hi = max(hi, a.X, b.X)
			} else {
				x := lerp(a.X, b.X, (y-a.Y)/(b.Y-a.Y))
				lo = min(lo, x)
				hi = max(hi, x)
			}
		}
	}

	if hi < lo {
		return EmptyInterval
	}
	return Interval{lo, hi}
}

// clipFatLine narrows subject down to the section that can lie within
// clipper's fat line. It reports false when no such section exists.
func clipFatLine(subject, clipper fatLine) (fatLine, bool) {
	hull := convexHull(clipper.rng.Start(), clipper.rng.End(), subject.rng)
	iv := clipHull(clipper.width.Expand(fatLineSpatialEpsilon), hull)
	if iv.IsEmpty() {
		return fatLine{}, false
	}
	return newFatLine(subject.curve, subject.t.LerpInterval(iv)), true
}

// addIntersections intersects the chords of two flat sections.
func addIntersections(a, b fatLine, acc []Intersection) []Intersection {
	la, lb := a.chord(), b.chord()
	av := la.P1.Sub(la.P0)
	bv := lb.P1.Sub(lb.P0)
	asb := la.P0.Sub(lb.P0)

	d := av.Cross(bv)
	uv := Point{bv.Cross(asb) / d, av.Cross(asb) / d}
	// Accept hits slightly outside either chord; neighboring sections may
	// otherwise both miss an intersection lying on their shared end.
	if unitSquare.Inflate(0.1, 0.1).Contains(uv) {
		p := Rect{a.t.Lo, b.t.Lo, a.t.Hi, b.t.Hi}.Lerp(uv)
		acc = append(acc, Intersection{S: p.X, T: p.Y})
	}
	return acc
}

type fatLinePair struct {
	a, b fatLine
}

// fatLineCurveCurve intersects two curves, neither of which is a line, by
// Bézier clipping. The returned intersections are not normalized.
func fatLineCurveCurve(a, b Curve, opts IntersectOptions) []Intersection {
	as := fatLinesFrom(a)
	bs := fatLinesFrom(b)
	stack := make([]fatLinePair, 0, len(as)*len(bs))
	for _, fa := range as {
		for _, fb := range bs {
			stack = append(stack, fatLinePair{fa, fb})
		}
	}

	var acc []Intersection
	var iterations, splits int
	collinearChecked := false
	for len(stack) > 0 {
		if !collinearChecked && iterations > opts.CollinearCheckIterations {
			collinearChecked = true
			if is := collinearIntersection(a, b); isCollinear(a, b, is) {
				if debugEnabled() {
					Logger().Debug("collinear curves", "a", a, "b", b, "iterations", iterations)
				}
				return is
			}
		}
		if opts.MaxIterations > 0 && iterations >= opts.MaxIterations {
			Logger().Warn("iteration limit reached",
				"a", a, "b", b,
				"limit", opts.MaxIterations,
				"pending", len(stack),
				"found", len(acc))
			break
		}

		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fa, fb := p.a, p.b
		for {
			iterations++
			if !fa.overlaps(fb) {
				break
			}
			if fa.isFlat() && fb.isFlat() {
				acc = addIntersections(fa, fb, acc)
				break
			}

			sa, sb := fa.t.Size(), fb.t.Size()
			var ok bool
			if fb, ok = clipFatLine(fb, fa); !ok {
				break
			}
			if fa, ok = clipFatLine(fa, fb); !ok {
				break
			}

			ka := fa.t.Size() / sa
			kb := fb.t.Size() / sb
			if max(ka, kb) > opts.StallRatio {
				splits++
				for _, ha := range fa.split() {
					for _, hb := range fb.split() {
						stack = append(stack, fatLinePair{ha, hb})
					}
				}
				break
			}
		}
	}

	if debugEnabled() {
		Logger().Debug("fat line clipping done",
			"iterations", iterations,
			"splits", splits,
			"found", len(acc))
	}
	return acc
}
