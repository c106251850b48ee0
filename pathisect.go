package bezclip

import (
	"cmp"
	"fmt"
	"slices"

	"honnef.co/go/bezclip/sweep"
)

// CurveIntersection is an intersection between two curves of a path. I and J
// are the indices of the curves, Point the position of the intersection on
// the first curve.
type CurveIntersection struct {
	I, J int
	Intersection
	Point Point
}

func (ci CurveIntersection) String() string {
	return fmt.Sprintf("%d×%d%s at %s", ci.I, ci.J, ci.Intersection, ci.Point)
}

func compareCurveIntersections(x, y CurveIntersection) int {
	return cmp.Or(
		cmp.Compare(x.I, y.I),
		cmp.Compare(x.J, y.J),
		compareIntersections(x.Intersection, y.Intersection),
	)
}

func addToQueue(q *sweep.Queue[int], cs []Curve) {
	for i, c := range cs {
		bbox := c.BoundingBox()
		q.Add(i, bbox.X0-SpatialEpsilon, bbox.X1+SpatialEpsilon)
	}
}

// PathIntersections computes the intersections between each curve of a and
// each curve of b, using [DefaultIntersectOptions]. I indexes a and J indexes
// b.
func PathIntersections(a, b []Curve) []CurveIntersection {
	return PathIntersectionsOpt(a, b, DefaultIntersectOptions)
}

// PathIntersectionsOpt is like [PathIntersections] but allows specifying
// options.
//
// Curves are swept along the x axis and only pairs whose horizontal extents
// overlap are intersected. The result is sorted by I, J, T and S.
func PathIntersectionsOpt(a, b []Curve, opts IntersectOptions) []CurveIntersection {
	var qa, qb sweep.Queue[int]
	addToQueue(&qa, a)
	addToQueue(&qb, b)
	queues := [2]*sweep.Queue[int]{&qa, &qb}

	var out []CurveIntersection
	var tested int
	for {
		idx := sweep.Next(queues[:]...)
		i, ok := queues[idx].Take()
		if !ok {
			break
		}
		for j := range queues[1-idx].Active() {
			ia, ib := i, j
			if idx == 1 {
				ia, ib = j, i
			}
			tested++
			for _, is := range IntersectionsOpt(a[ia], b[ib], opts) {
				out = append(out, CurveIntersection{
					I:            ia,
					J:            ib,
					Intersection: is,
					Point:        a[ia].Eval(is.S),
				})
			}
		}
	}

	slices.SortFunc(out, compareCurveIntersections)
	Logger().Debug("path intersections",
		"curves", len(a)+len(b),
		"pairs", tested,
		"found", len(out))
	return out
}

// SelfIntersections computes the intersections between the curves of p,
// using [DefaultIntersectOptions].
func SelfIntersections(p []Curve) []CurveIntersection {
	return SelfIntersectionsOpt(p, DefaultIntersectOptions)
}

// SelfIntersectionsOpt is like [SelfIntersections] but allows specifying
// options.
//
// Every pair of distinct curves is reported with I < J. The point at which a
// curve ends and the next one starts is not an intersection, nor is the point
// at which a connected run of curves, such as a closed subpath, returns to
// its start. Loops within a single curve are not detected.
func SelfIntersectionsOpt(p []Curve, opts IntersectOptions) []CurveIntersection {
	var q sweep.Queue[int]
	addToQueue(&q, p)
	runs := connectedRuns(p)

	var out []CurveIntersection
	var tested int
	for {
		i, ok := q.Take()
		if !ok {
			break
		}
		for j := range q.Active() {
			if j == i {
				continue
			}
			lo, hi := min(i, j), max(i, j)
			tested++
			for _, is := range IntersectionsOpt(p[lo], p[hi], opts) {
				if isJoint(p, runs, lo, hi, is) {
					continue
				}
				out = append(out, CurveIntersection{
					I:            lo,
					J:            hi,
					Intersection: is,
					Point:        p[lo].Eval(is.S),
				})
			}
		}
	}

	slices.SortFunc(out, compareCurveIntersections)
	Logger().Debug("self intersections",
		"curves", len(p),
		"pairs", tested,
		"found", len(out))
	return out
}

// connectedRuns returns, for each curve, the index of the first curve of the
// run of consecutive curves, each starting where the previous one ends, that
// it belongs to.
func connectedRuns(p []Curve) []int {
	runs := make([]int, len(p))
	for k := range p {
		if k > 0 && p[k-1].End() == p[k].Start() {
			runs[k] = runs[k-1]
		} else {
			runs[k] = k
		}
	}
	return runs
}

// isJoint reports whether is is the point at which p[i] and p[j], i < j, are
// connected: either consecutively, or by p[j] closing the run that starts at
// p[i].
func isJoint(p []Curve, runs []int, i, j int, is Intersection) bool {
	if j == i+1 && is.S == 1 && is.T == 0 && p[i].End() == p[j].Start() {
		return true
	}
	return runs[i] == runs[j] && is.S == 0 && is.T == 1 && p[j].End() == p[i].Start()
}
