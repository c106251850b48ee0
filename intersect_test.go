package bezclip

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	crossingCubicA = CubicBez{Pt(0, 0), Pt(100, 200), Pt(200, -100), Pt(300, 100)}.Curve()
	crossingCubicB = CubicBez{Pt(0, 100), Pt(100, -200), Pt(200, 200), Pt(300, 0)}.Curve()
)

func lineCurve2(x0, y0, x1, y1 float64) Curve {
	return Line{Pt(x0, y0), Pt(x1, y1)}.Curve()
}

// checkOnBoth verifies that every intersection maps to the same point on a
// and b.
func checkOnBoth(t *testing.T, a, b Curve, is []Intersection, eps float64) {
	t.Helper()
	for _, i := range is {
		pa, pb := a.Eval(i.S), b.Eval(i.T)
		if d := pa.Distance(pb); d > eps {
			t.Errorf("%v: %v on a and %v on b are %g apart", i, pa, pb, d)
		}
	}
}

func checkNormalized(t *testing.T, is []Intersection) {
	t.Helper()
	for k, i := range is {
		if !unitSquare.Contains(Point{i.S, i.T}) {
			t.Errorf("%v lies outside the unit square", i)
		}
		if k > 0 && compareIntersections(is[k-1], i) >= 0 {
			t.Errorf("%v and %v are out of order", is[k-1], i)
		}
	}
}

func TestIntersectionsLineLine(t *testing.T) {
	tests := []struct {
		name string
		a, b Curve
		want []Intersection
	}{
		{"crossing", lineCurve2(0, 0, 10, 10), lineCurve2(0, 10, 10, 0), []Intersection{{0.5, 0.5}}},
		{"axes", lineCurve2(-100, 0, 100, 0), lineCurve2(0, -100, 0, 100), []Intersection{{0.5, 0.5}}},
		{"parallel", lineCurve2(0, 0, 10, 0), lineCurve2(0, 1, 10, 1), nil},
		{"collinear overlap", lineCurve2(0, 0, 10, 0), lineCurve2(5, 0, 15, 0), []Intersection{{0.5, 0}, {1, 0.5}}},
		{"collinear disjoint", lineCurve2(0, 0, 10, 0), lineCurve2(20, 0, 30, 0), nil},
		{"shared end", lineCurve2(0, 0, 10, 0), lineCurve2(10, 0, 10, 10), []Intersection{{1, 0}}},
		{"outside", lineCurve2(0, 0, 10, 0), lineCurve2(5, 1, 6, 10), nil},
		{"identical", lineCurve2(0, 0, 10, 5), lineCurve2(0, 0, 10, 5), []Intersection{{0, 0}, {1, 1}}},
		{"reversed", lineCurve2(0, 0, 10, 5), lineCurve2(10, 5, 0, 0), []Intersection{{1, 0}, {0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersections(tt.a, tt.b)
			diff(t, tt.want, got, approx, cmpopts.EquateEmpty())
		})
	}
}

func TestIntersectionsLineQuad(t *testing.T) {
	l := lineCurve2(512, 96, 128, 384)
	q := QuadBez{Pt(128, 384), Pt(320, 168), Pt(512, 384)}.Curve()
	got := Intersections(l, q)
	diff(t, []Intersection{{1, 0}, {2.0 / 3.0, 1.0 / 3.0}}, got, approx)
	checkOnBoth(t, l, q, got, 1e-6)

	q = QuadBez{Pt(0, -10), Pt(10, 20), Pt(20, -10)}.Curve()
	vLine := lineCurve2(10, -10, 10, 10)
	diff(t, []Intersection{{0.5, 0.75}}, Intersections(q, vLine), approx)

	hLine := lineCurve2(0, 0, 100, 0)
	if got := Intersections(q, hLine); len(got) != 2 {
		t.Errorf("got %d intersections, want 2", len(got))
	}
}

func TestIntersectionsLineCubic(t *testing.T) {
	c := CubicBez{Pt(0, -10), Pt(10, 20), Pt(20, -20), Pt(30, 10)}.Curve()
	vLine := lineCurve2(10, -10, 10, 10)
	got := Intersections(c, vLine)
	diff(t, []Intersection{{1.0 / 3.0, 16.0 / 27.0}}, got, approx)

	hLine := lineCurve2(0, 0, 100, 0)
	got = Intersections(c, hLine)
	if len(got) != 3 {
		t.Errorf("got %d intersections, want 3", len(got))
	}
	checkOnBoth(t, c, hLine, got, 1e-6)
}

func TestIntersectionsTangent(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}.Curve()
	l := lineCurve2(0, 50, 100, 50)
	got := Intersections(q, l)
	diff(t, []Intersection{{0.5, 0.5}}, got, cmpopts.EquateApprox(0, 1e-4))
}

func TestIntersectionsFlatCurve(t *testing.T) {
	// Monotonic and flat, so intersected as its chord.
	q := QuadBez{Pt(0, 0), Pt(50, 50.000001), Pt(100, 100)}.Curve()
	l := lineCurve2(0, 100, 100, 0)
	got := Intersections(q, l)
	diff(t, []Intersection{{0.5, 0.5}}, got, approx)
	diff(t, []Intersection{{0.5, 0.5}}, Intersections(l, q), approx)
}

func TestIntersectionsCubicCubic(t *testing.T) {
	got := Intersections(crossingCubicA, crossingCubicB)
	want := []Intersection{
		{0.08194, 0.08194},
		{0.60239, 0.60239},
		{0.88089, 0.88089},
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-3))
	checkOnBoth(t, crossingCubicA, crossingCubicB, got, 1e-3)
	checkNormalized(t, got)
}

func TestIntersectionsSelf(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}.Curve()
	diff(t, []Intersection{{0, 0}, {1, 1}}, Intersections(q, q), approx)
	diff(t, []Intersection{{1, 0}, {0, 1}}, Intersections(q, q.Reverse()), approx)

	c := CubicBez{Pt(0, 0), Pt(30, 100), Pt(70, 100), Pt(100, 0)}.Curve()
	diff(t, []Intersection{{0, 0}, {1, 1}}, Intersections(c, c), approx)
	diff(t, []Intersection{{0.25, 0}, {0.75, 1}}, Intersections(c, c.Subsegment(0.25, 0.75)), cmpopts.EquateApprox(0, 1e-4))
}

func TestIntersectionsSwap(t *testing.T) {
	pairs := [][2]Curve{
		{lineCurve2(0, 0, 10, 10), lineCurve2(0, 10, 10, 0)},
		{lineCurve2(512, 96, 128, 384), QuadBez{Pt(128, 384), Pt(320, 168), Pt(512, 384)}.Curve()},
		{CubicBez{Pt(0, -10), Pt(10, 20), Pt(20, -20), Pt(30, 10)}.Curve(), lineCurve2(0, 0, 100, 0)},
		{crossingCubicA, crossingCubicB},
		{crossingCubicA, QuadBez{Pt(0, 150), Pt(150, -150), Pt(300, 150)}.Curve()},
	}
	for i, p := range pairs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			ab := Intersections(p[0], p[1])
			ba := Intersections(p[1], p[0])
			for k := range ba {
				ba[k] = ba[k].Swap()
			}
			diff(t, len(ab), len(ba))
			diff(t, Normalize(ab), Normalize(ba), cmpopts.EquateApprox(0, 1e-4), cmpopts.SortSlices(func(x, y Intersection) bool {
				return x.S < y.S
			}))
		})
	}
}

func TestIntersectionsAffine(t *testing.T) {
	aff := Rotate(0.7).Then(Scale(2, 0.5)).Then(Translate(Vec(-40, 13)))
	a, b := crossingCubicA, crossingCubicB
	want := Intersections(a, b)
	got := Intersections(a.Transform(aff), b.Transform(aff))
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-3))
}

func TestIntersectionsSubdivision(t *testing.T) {
	pairs := [][2]Curve{
		{crossingCubicA, crossingCubicB},
		{QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}.Curve(), CubicBez{Pt(0, 30), Pt(30, -20), Pt(70, 80), Pt(100, 10)}.Curve()},
		{lineCurve2(512, 96, 128, 384), QuadBez{Pt(128, 384), Pt(320, 168), Pt(512, 384)}.Curve()},
	}
	for i, p := range pairs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			want := IntersectionsSubdivision(p[0], p[1])
			got := Intersections(p[0], p[1])
			diff(t, want, got, cmpopts.EquateApprox(0, 1e-3))
		})
	}
}

func TestIntersectionsRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	pt := func() Point { return Pt(r.Float64()*100, r.Float64()*100) }
	for range 200 {
		a := CubicBez{pt(), pt(), pt(), pt()}.Curve()
		b := CubicBez{pt(), pt(), pt(), pt()}.Curve()
		is := Intersections(a, b)
		if len(is) > MaxCubicCubicIntersections {
			t.Fatalf("%v and %v: got %d intersections", a, b, len(is))
		}
		checkNormalized(t, is)
		checkOnBoth(t, a, b, is, 1e-2)
	}
}

func TestIntersectionsMaxIterations(t *testing.T) {
	opts := DefaultIntersectOptions
	opts.MaxIterations = 1
	got := IntersectionsOpt(crossingCubicA, crossingCubicB, opts)
	if len(got) >= 3 {
		t.Errorf("got %d intersections with a single iteration, want fewer than 3", len(got))
	}
	checkNormalized(t, got)
}

func TestIntersectionsStallRatio(t *testing.T) {
	// Splitting after every step still finds all intersections.
	opts := DefaultIntersectOptions
	opts.StallRatio = 0
	got := IntersectionsOpt(crossingCubicA, crossingCubicB, opts)
	diff(t, Intersections(crossingCubicA, crossingCubicB), got, cmpopts.EquateApprox(0, 1e-3))
}

func TestIntersectionsDegenerate(t *testing.T) {
	dot := CubicBez{Pt(5, 5), Pt(5, 5), Pt(5, 5), Pt(5, 5)}.Curve()
	l := lineCurve2(0, 0, 10, 10)
	got := Intersections(dot, l)
	if len(got) > 1 {
		t.Errorf("got %d intersections for a single point, want at most 1", len(got))
	}
	checkNormalized(t, got)

	if got := Intersections(dot, lineCurve2(0, 10, 1, 20)); len(got) != 0 {
		t.Errorf("got %v, want no intersections", got)
	}

	zero := lineCurve2(3, 3, 3, 3)
	if got := Intersections(zero, zero.Reverse()); len(got) > 1 {
		t.Errorf("got %d intersections for a single point, want at most 1", len(got))
	}
}

func TestIntersectionsDisjoint(t *testing.T) {
	a := CubicBez{Pt(0, 0), Pt(10, 10), Pt(20, 10), Pt(30, 0)}.Curve()
	b := a.Transform(Translate(Vec(0, 100)))
	if got := Intersections(a, b); len(got) != 0 {
		t.Errorf("got %v, want no intersections", got)
	}
	if got := IntersectionsSubdivision(a, b); len(got) != 0 {
		t.Errorf("got %v, want no intersections", got)
	}
}

func TestCurveIntersectionsMethod(t *testing.T) {
	a, b := lineCurve2(0, 0, 10, 10), lineCurve2(0, 10, 10, 0)
	diff(t, Intersections(a, b), a.Intersections(b))
}

func TestNormalize(t *testing.T) {
	in := []Intersection{
		{0.5, 0.75},
		{-1e-6, 0.2},
		{0.3, 1 + 1e-6},
		{1.5, 0.5},
		{0.5, -0.1},
		{0.5 + 1e-16, 0.75},
		{0.9, 0.2 + 1e-16},
	}
	want := []Intersection{
		{0, 0.2},
		{0.5, 0.75},
		{0.3, 1},
	}
	got := Normalize(in)
	diff(t, want, got)
	diff(t, want, Normalize(append([]Intersection(nil), got...)))

	if got := Normalize(nil); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestNormalizeOrder(t *testing.T) {
	got := Normalize([]Intersection{{0.9, 0.5}, {0.1, 0.5 + 1e-9}, {0.5, 0.1}})
	want := []Intersection{{0.5, 0.1}, {0.9, 0.5}, {0.1, 0.5 + 1e-9}}
	diff(t, want, got)
}

func TestMergeNear(t *testing.T) {
	got := mergeNear([]Intersection{{0.5, 0.5}, {0.5 + 1e-6, 0.5 - 1e-6}, {0.5, 0.6}, {0.2, 0.1}})
	diff(t, []Intersection{{0.5, 0.5}, {0.5, 0.6}, {0.2, 0.1}}, got)
}

func TestIntersectionString(t *testing.T) {
	if got := (Intersection{0.5, 0.25}).String(); got != "(s=0.5, t=0.25)" {
		t.Errorf("got %q", got)
	}
	if got := (Intersection{0.5, 0.25}).Swap(); got != (Intersection{0.25, 0.5}) {
		t.Errorf("got %v", got)
	}
}

func BenchmarkIntersectionsCubic(b *testing.B) {
	for range b.N {
		Intersections(crossingCubicA, crossingCubicB)
	}
}

func BenchmarkIntersectionsSubdivision(b *testing.B) {
	for range b.N {
		IntersectionsSubdivision(crossingCubicA, crossingCubicB)
	}
}

func BenchmarkSolveCubic(b *testing.B) {
	for range b.N {
		SolveCubic(1, -6, 11, -6)
	}
	_ = math.Pi
}
