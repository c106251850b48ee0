package bezclip

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots %v, expected %d", len(roots), roots, len(expected))
	}
	const epsilon = 1e-12
	roots = slices.Clone(roots)
	expected = slices.Clone(expected)
	slices.Sort(roots)
	slices.Sort(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveLinear(t *testing.T) {
	if x, ok := SolveLinear(2, -4); !ok || x != 2 {
		t.Errorf("got (%v, %v), want (2, true)", x, ok)
	}
	if _, ok := SolveLinear(0, 1); ok {
		t.Error("solved equation without solution")
	}
	if _, ok := SolveLinear(1e-15, 1); ok {
		t.Error("solved equation with vanishing slope")
	}
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(1, -3, 2)), []float64{1, 2})
	checkRoots(t, slice(SolveQuadratic(-5, 0, 1)), []float64{-1 / math.Sqrt(5), 1 / math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5, 0, 1)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5, 1, 0)), []float64{-0.2, 0})
	// Double roots are reported twice.
	checkRoots(t, slice(SolveQuadratic(1, 2, 1)), []float64{-1, -1})
	checkRoots(t, slice(SolveQuadratic(1, -2, 1)), []float64{1, 1})
}

func TestSolveQuadraticResiduals(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 1000 {
		a := r.Float64()*20 - 10
		b := r.Float64()*20 - 10
		c := r.Float64()*20 - 10
		if a == 0 {
			continue
		}
		roots, n := SolveQuadratic(a, b, c)
		k := normalizationFactor(a, b/2, c)
		for _, x := range roots[:n] {
			if y := k * ((a*x+b)*x + c); math.Abs(y) > 2*SolutionEpsilon {
				t.Errorf("(%v, %v, %v): root %v has residual %v", a, b, c, x, y)
			}
		}
	}
}

func TestSolveQuadraticDegenerate(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(0, 2, -4)), []float64{2})
	checkRoots(t, slice(SolveQuadratic(0, 0, 1)), []float64{})
	checkRoots(t, slice(SolveQuadratic(0, 0, 0)), []float64{})
}

func TestSolveQuadraticScaled(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	// Rescaling must not change the roots of tiny or huge polynomials.
	for _, k := range []float64{1e-9, 1e-6, 1e6, 1e12} {
		checkRoots(t, slice(SolveQuadratic(k, -3*k, 2*k)), []float64{1, 2})
	}
}

func TestSolveCubic(t *testing.T) {
	slice := func(roots [3]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveCubic(1, 0, 0, -5)), []float64{math.Cbrt(5)})
	checkRoots(t, slice(SolveCubic(1, 0, -1, -5)), []float64{1.90416085913492})
	checkRoots(t, slice(SolveCubic(1, 0, -1, 0)), []float64{-1, 0, 1})
	checkRoots(t, slice(SolveCubic(2, -3, 1, 0)), []float64{0, 0.5, 1})
	checkRoots(t, slice(SolveCubic(1, 0, -3, -2)), []float64{-1, -1, 2})
	checkRoots(t, slice(SolveCubic(1, 0, -3, 2)), []float64{-2, 1, 1})
}

func TestSolveCubicDegenerate(t *testing.T) {
	slice := func(roots [3]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveCubic(0, 1, -3, 2)), []float64{1, 2})
	checkRoots(t, slice(SolveCubic(0, 0, 2, -4)), []float64{2})
	checkRoots(t, slice(SolveCubic(0, 0, 0, 0)), []float64{})
	checkRoots(t, slice(SolveCubic(1e-20, 1, -3, 2)), []float64{1, 2})
}

func TestSolveCubicResiduals(t *testing.T) {
	tests := [][4]float64{
		{1, -6, 11, -6},
		{1e12, -6e12, 11e12, -6e12},
		{-3, 0.5, 7, -1},
		{0.25, 1, -2, -0.5},
	}
	for _, c := range tests {
		roots, n := SolveCubic(c[0], c[1], c[2], c[3])
		if n == 0 {
			t.Errorf("%v: found no roots", c)
		}
		k := normalizationFactor(c[0], c[1], c[2], c[3])
		for _, x := range roots[:n] {
			y := k * (((c[0]*x+c[1])*x+c[2])*x + c[3])
			if math.Abs(y) > 1e-8 {
				t.Errorf("%v: root %v has residual %v", c, x, y)
			}
		}
	}
}

func TestNormalizationFactor(t *testing.T) {
	tests := []struct {
		vals []float64
		want float64
	}{
		{[]float64{1, 2, 3}, 1},
		{[]float64{0, 0}, 1},
		{[]float64{256}, 1},
		{[]float64{1024, -1}, 1.0 / 1024},
		{[]float64{-1024}, 1.0 / 1024},
		{[]float64{1.0 / 1024, 0}, 1024},
	}
	for _, tt := range tests {
		if got := normalizationFactor(tt.vals...); got != tt.want {
			t.Errorf("normalizationFactor(%v) = %v, want %v", tt.vals, got, tt.want)
		}
	}
}

func TestRoundParam(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1e-6, 0},
		{1e-6, 0},
		{0.5, 0.5},
		{1 - 1e-6, 1},
		{1 + 1e-6, 1},
		{-0.1, -0.1},
	}
	for _, tt := range tests {
		if got := roundParam(tt.in); got != tt.want {
			t.Errorf("roundParam(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
