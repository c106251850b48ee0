package bezclip

import (
	"fmt"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer].
//
// This is 4 to support cubic Béziers.
const MaxExtrema = 4

// Extremer describes parametrized curves that report their extrema.
type Extremer interface {
	// Extrema computes the parameters in the interior of the curve at which
	// the x or y derivative vanishes, in increasing order.
	Extrema() ([MaxExtrema]float64, int)
}

// ParametricCurve describes a curve parametrized by a scalar in [0, 1].
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	Start() Point
	End() Point
}

// ExtremaRanges returns parameter ranges, each of which is monotonic within the
// range.
func ExtremaRanges(e Extremer) ([MaxExtrema + 1][2]float64, int) {
	var ret [MaxExtrema + 1][2]float64
	var retN int
	var t0 float64

	ex, n := e.Extrema()
	for _, t := range ex[:n] {
		ret[retN] = [2]float64{t0, t}
		retN++
		t0 = t
	}
	ret[retN] = [2]float64{t0, 1}
	retN++
	return ret, retN
}

// BoundingBox returns the smallest (axis-aligned) rectangle that encloses the
// curve in the range [0, 1].
func BoundingBox(c interface {
	Extremer
	ParametricCurve
}) Rect {
	bbox := NewRectFromPoints(c.Start(), c.End())
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

type CurveKind int

const (
	// A line segment.
	LineKind CurveKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

func (k CurveKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	default:
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
}

// Curve is a tagged union of the curves this package can intersect: [Line],
// [QuadBez] and [CubicBez]. Only the first 2, 3 or 4 points are meaningful,
// depending on Kind.
//
// Methods panic when Kind is not one of the declared kinds; the zero Curve is
// not a valid curve.
type Curve struct {
	Kind CurveKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

var (
	_ ParametricCurve = Curve{}
	_ Extremer        = Curve{}
)

func invalidKind(k CurveKind) string {
	return fmt.Sprintf("bezclip: invalid curve kind %v", k)
}

func (c Curve) String() string {
	switch c.Kind {
	case LineKind:
		return fmt.Sprintf("Line(%s, %s)", c.P0, c.P1)
	case QuadKind:
		return fmt.Sprintf("Quad(%s, %s, %s)", c.P0, c.P1, c.P2)
	case CubicKind:
		return fmt.Sprintf("Cubic(%s, %s, %s, %s)", c.P0, c.P1, c.P2, c.P3)
	default:
		return invalidKind(c.Kind)
	}
}

// Line returns the line represented by this curve. This is only valid when Kind ==
// LineKind.
func (c Curve) Line() Line { return Line{c.P0, c.P1} }

// Quad returns the quadratic Bézier represented by this curve. This is only valid when
// Kind == QuadKind.
func (c Curve) Quad() QuadBez { return QuadBez{c.P0, c.P1, c.P2} }

// Cubic returns the cubic Bézier represented by this curve. This is only valid when
// Kind == CubicKind.
func (c Curve) Cubic() CubicBez { return CubicBez{c.P0, c.P1, c.P2, c.P3} }

func (c Curve) Start() Point {
	return c.P0
}

func (c Curve) End() Point {
	switch c.Kind {
	case LineKind:
		return c.P1
	case QuadKind:
		return c.P2
	case CubicKind:
		return c.P3
	default:
		panic(invalidKind(c.Kind))
	}
}

// Chord returns the line from the curve's start to its end.
func (c Curve) Chord() Line {
	return Line{c.Start(), c.End()}
}

func (c Curve) Eval(t float64) Point {
	switch c.Kind {
	case LineKind:
		return c.Line().Eval(t)
	case QuadKind:
		return c.Quad().Eval(t)
	case CubicKind:
		return c.Cubic().Eval(t)
	default:
		panic(invalidKind(c.Kind))
	}
}

// Deriv returns the curve's derivative at t.
func (c Curve) Deriv(t float64) Vec2 {
	switch c.Kind {
	case LineKind:
		return c.Line().Deriv(t)
	case QuadKind:
		return c.Quad().Deriv(t)
	case CubicKind:
		return c.Cubic().Deriv(t)
	default:
		panic(invalidKind(c.Kind))
	}
}

func (c Curve) BoundingBox() Rect {
	switch c.Kind {
	case LineKind:
		return c.Line().BoundingBox()
	case QuadKind:
		return c.Quad().BoundingBox()
	case CubicKind:
		return c.Cubic().BoundingBox()
	default:
		panic(invalidKind(c.Kind))
	}
}

func (c Curve) Extrema() ([MaxExtrema]float64, int) {
	switch c.Kind {
	case LineKind:
		return c.Line().Extrema()
	case QuadKind:
		return c.Quad().Extrema()
	case CubicKind:
		return c.Cubic().Extrema()
	default:
		panic(invalidKind(c.Kind))
	}
}

// IsFlat reports whether the curve stays within epsilon of its chord.
func (c Curve) IsFlat(epsilon float64) bool {
	switch c.Kind {
	case LineKind:
		return c.Line().IsFlat(epsilon)
	case QuadKind:
		return c.Quad().IsFlat(epsilon)
	case CubicKind:
		return c.Cubic().IsFlat(epsilon)
	default:
		panic(invalidKind(c.Kind))
	}
}

// Nearest returns the squared distance from pt to the closest point of the
// curve and that point's parameter in [0, 1].
func (c Curve) Nearest(pt Point) (distSq, t float64) {
	switch c.Kind {
	case LineKind:
		return c.Line().Nearest(pt)
	case QuadKind:
		return c.Quad().Nearest(pt)
	case CubicKind:
		return c.Cubic().Nearest(pt)
	default:
		panic(invalidKind(c.Kind))
	}
}

// Subsegment returns the part of the curve between start and end. Its
// endpoints are exactly c.Eval(start) and c.Eval(end); the full range returns
// c itself.
func (c Curve) Subsegment(start, end float64) Curve {
	if start == 0 && end == 1 {
		return c
	}
	switch c.Kind {
	case LineKind:
		return c.Line().Subsegment(start, end).Curve()
	case QuadKind:
		return c.Quad().Subsegment(start, end).Curve()
	case CubicKind:
		return c.Cubic().Subsegment(start, end).Curve()
	default:
		panic(invalidKind(c.Kind))
	}
}

// Reverse returns the same curve traversed from end to start.
func (c Curve) Reverse() Curve {
	switch c.Kind {
	case LineKind:
		return c.Line().Reverse().Curve()
	case QuadKind:
		return c.Quad().Reverse().Curve()
	case CubicKind:
		return c.Cubic().Reverse().Curve()
	default:
		panic(invalidKind(c.Kind))
	}
}

func (c Curve) Transform(aff Affine) Curve {
	switch c.Kind {
	case LineKind:
		return c.Line().Transform(aff).Curve()
	case QuadKind:
		return c.Quad().Transform(aff).Curve()
	case CubicKind:
		return c.Cubic().Transform(aff).Curve()
	default:
		panic(invalidKind(c.Kind))
	}
}

// PathElement returns the PathElement corresponding to the curve, discarding the
// curve's starting point.
func (c Curve) PathElement() PathElement {
	switch c.Kind {
	case LineKind:
		return LineTo(c.P1)
	case QuadKind:
		return QuadTo(c.P1, c.P2)
	case CubicKind:
		return CubicTo(c.P1, c.P2, c.P3)
	default:
		panic(invalidKind(c.Kind))
	}
}

// Intersections is shorthand for [Intersections](c, o).
func (c Curve) Intersections(o Curve) []Intersection {
	return Intersections(c, o)
}
