package bezclip

// curveInterval is a section of a curve together with its end points.
type curveInterval struct {
	curve    Curve
	t        Interval
	pLo, pHi Point
	flat     bool
}

func newCurveInterval(c Curve, t Interval, pLo, pHi Point) curveInterval {
	return curveInterval{
		curve: c,
		t:     t,
		pLo:   pLo,
		pHi:   pHi,
		flat: pLo.Near(pHi) ||
			t.Size() < ParametricEpsilon ||
			c.Subsegment(t.Lo, t.Hi).IsFlat(SpatialEpsilon),
	}
}

func curveIntervalsFrom(c Curve) []curveInterval {
	ranges, n := ExtremaRanges(c)
	out := make([]curveInterval, n)
	for i, r := range ranges[:n] {
		out[i] = newCurveInterval(c, Interval{r[0], r[1]}, c.Eval(r[0]), c.Eval(r[1]))
	}
	return out
}

func (ci curveInterval) bounds() Rect {
	return NewRectFromPoints(ci.pLo, ci.pHi)
}

func (ci curveInterval) overlaps(o curveInterval) bool {
	return ci.bounds().Inflate(SpatialEpsilon, SpatialEpsilon).Overlaps(o.bounds())
}

func (ci curveInterval) split() []curveInterval {
	if ci.flat {
		return []curveInterval{ci}
	}
	mid := ci.t.Lerp(0.5)
	pMid := ci.curve.Eval(mid)
	return []curveInterval{
		newCurveInterval(ci.curve, Interval{ci.t.Lo, mid}, ci.pLo, pMid),
		newCurveInterval(ci.curve, Interval{mid, ci.t.Hi}, pMid, ci.pHi),
	}
}

// intersections appends the intersections of both sections' chords.
func (ci curveInterval) intersections(o curveInterval, acc []Intersection) []Intersection {
	bounds := unitSquare.Inflate(ParametricEpsilon, ParametricEpsilon)
	for _, i := range lineLine(Line{ci.pLo, ci.pHi}, Line{o.pLo, o.pHi}) {
		if bounds.Contains(Point{i.S, i.T}) {
			acc = append(acc, Intersection{
				S: ci.t.Lerp(i.S),
				T: o.t.Lerp(i.T),
			})
		}
	}
	return acc
}

// IntersectionsSubdivision computes the same intersections as
// [Intersections], by repeatedly halving both curves until their sections
// are flat. It is considerably slower than Bézier clipping but simpler, and
// serves as a reference for it.
func IntersectionsSubdivision(a, b Curve) []Intersection {
	type pair struct{ a, b curveInterval }

	var stack []pair
	for _, ca := range curveIntervalsFrom(a) {
		for _, cb := range curveIntervalsFrom(b) {
			stack = append(stack, pair{ca, cb})
		}
	}

	var acc []Intersection
	collinearChecked := false
	iterations := 0
	for len(stack) > 0 {
		if !collinearChecked && iterations > DefaultIntersectOptions.CollinearCheckIterations {
			collinearChecked = true
			if is := collinearIntersection(a, b); isCollinear(a, b, is) {
				if debugEnabled() {
					Logger().Debug("collinear curves", "a", a, "b", b, "iterations", iterations)
				}
				return mergeNear(Normalize(is))
			}
		}

		iterations++
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !p.a.overlaps(p.b) {
			continue
		}
		if p.a.flat && p.b.flat {
			acc = p.a.intersections(p.b, acc)
			continue
		}
		for _, ha := range p.a.split() {
			for _, hb := range p.b.split() {
				stack = append(stack, pair{ha, hb})
			}
		}
	}

	return mergeNear(Normalize(acc))
}
