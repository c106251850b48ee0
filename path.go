package bezclip

import (
	"fmt"
	"iter"
	"slices"
)

// PathElementKind is the command of a [PathElement].
type PathElementKind int

const (
	// MoveToKind starts a new subpath at P0.
	MoveToKind PathElementKind = iota + 1
	// LineToKind adds a line to P0.
	LineToKind
	// QuadToKind adds a quadratic Bézier with control point P0, ending at P1.
	QuadToKind
	// CubicToKind adds a cubic Bézier with control points P0 and P1, ending
	// at P2.
	CubicToKind
	// ClosePathKind ends the subpath, adding a line back to its start.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// numPoints returns how many of P0, P1 and P2 are used by elements of kind
// k.
func (k PathElementKind) numPoints() int {
	switch k {
	case MoveToKind, LineToKind:
		return 1
	case QuadToKind:
		return 2
	case CubicToKind:
		return 3
	default:
		return 0
	}
}

// PathElement is a single command of a [BezPath]. Points not used by Kind
// are zero.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
}

// points returns the points used by the element.
func (el *PathElement) points() []*Point {
	return []*Point{&el.P0, &el.P1, &el.P2}[:el.Kind.numPoints()]
}

// Transform applies aff to the element's points.
func (el PathElement) Transform(aff Affine) PathElement {
	for _, p := range el.points() {
		*p = p.Transform(aff)
	}
	return el
}

// EndPoint returns the point at which the element ends. ClosePath elements
// have no point of their own and report false.
func (el PathElement) EndPoint() (Point, bool) {
	pts := el.points()
	if len(pts) == 0 {
		return Point{}, false
	}
	return *pts[len(pts)-1], true
}

func MoveTo(pt Point) PathElement { return PathElement{Kind: MoveToKind, P0: pt} }
func LineTo(pt Point) PathElement { return PathElement{Kind: LineToKind, P0: pt} }

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement { return PathElement{Kind: ClosePathKind} }

// BezPath is a list of path elements. Each subpath starts with a MoveTo.
type BezPath []PathElement

func (p *BezPath) Push(el PathElement) { *p = append(*p, el) }

// Pop removes the last element. It reports false if the path is empty.
func (p *BezPath) Pop() (PathElement, bool) {
	n := len(*p)
	if n == 0 {
		return PathElement{}, false
	}
	el := (*p)[n-1]
	*p = (*p)[:n-1]
	return el, true
}

func (p *BezPath) MoveTo(pt Point)          { p.Push(MoveTo(pt)) }
func (p *BezPath) LineTo(pt Point)          { p.Push(LineTo(pt)) }
func (p *BezPath) QuadTo(p1, p2 Point)      { p.Push(QuadTo(p1, p2)) }
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }
func (p *BezPath) ClosePath()               { p.Push(ClosePath()) }

func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Curves returns the curves drawn by the path, in order.
func (p BezPath) Curves() iter.Seq[Curve] { return Curves(p.Elements()) }

// Transform returns a copy of p with aff applied to every element.
func (p BezPath) Transform(aff Affine) BezPath {
	out := make(BezPath, 0, len(p))
	for _, el := range p {
		out = append(out, el.Transform(aff))
	}
	return out
}

// BoundingBox returns the union of the exact bounds of the path's curves. A
// path without curves has a zero bounding box.
func (p BezPath) BoundingBox() Rect {
	var bbox Rect
	n := 0
	for c := range p.Curves() {
		if n == 0 {
			bbox = c.BoundingBox()
		} else {
			bbox = bbox.Union(c.BoundingBox())
		}
		n++
	}
	return bbox
}

// Elements turns curves back into path elements. A MoveTo precedes every
// curve that does not continue from where the previous one ended.
func Elements(seq iter.Seq[Curve]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var end Point
		started := false
		for c := range seq {
			if start := c.Start(); !started || start != end {
				if !yield(MoveTo(start)) {
					return
				}
			}
			if !yield(c.PathElement()) {
				return
			}
			started = true
			end = c.End()
		}
	}
}

// Curves turns path elements into curves. ClosePath yields a closing line
// only when the subpath does not already end at its start.
func Curves(seq iter.Seq[PathElement]) iter.Seq[Curve] {
	return func(yield func(Curve) bool) {
		var start, pen Point
		emit := func(c Curve) bool {
			pen = c.End()
			return yield(c)
		}
		for el := range seq {
			ok := true
			switch el.Kind {
			case MoveToKind:
				start, pen = el.P0, el.P0
			case LineToKind:
				ok = emit(Line{pen, el.P0}.Curve())
			case QuadToKind:
				ok = emit(QuadBez{pen, el.P0, el.P1}.Curve())
			case CubicToKind:
				ok = emit(CubicBez{pen, el.P0, el.P1, el.P2}.Curve())
			case ClosePathKind:
				if pen != start {
					ok = emit(Line{pen, start}.Curve())
				}
			default:
				panic(fmt.Sprintf("bezclip: invalid path element kind %d", int(el.Kind)))
			}
			if !ok {
				return
			}
		}
	}
}
