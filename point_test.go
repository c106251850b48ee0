package bezclip

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(1, 2).Sub(Pt(4, 6)), Vec(-3, -4))
	diff(t, Pt(0, 0).Lerp(Pt(10, 20), 0.25), Pt(2.5, 5))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointLerpEnd(t *testing.T) {
	// 0.1 + (0.7 - 0.1) * 1 is not 0.7 in floating point.
	p0 := Pt(0.1, 0.1)
	p1 := Pt(0.7, 0.7)
	if got := p0.Lerp(p1, 1); got != p1 {
		t.Errorf("got %v, want %v", got, p1)
	}
}

func TestPointNear(t *testing.T) {
	p := Pt(1, 1)
	if !p.Near(Pt(1+SpatialEpsilon/2, 1-SpatialEpsilon/2)) {
		t.Error("points within tolerance aren't near")
	}
	if p.Near(Pt(1+2*SpatialEpsilon, 1)) {
		t.Error("points outside tolerance are near")
	}
}

func TestSignedDistance(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	tests := []struct {
		p    Point
		want float64
	}{
		{Pt(5, 0), 0},
		{Pt(5, -3), 3},
		{Pt(5, 3), -3},
		{Pt(-5, 2), -2},
	}
	for _, tt := range tests {
		if got := signedDistance(tt.p, a, b); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("signedDistance(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	// A degenerate line measures the distance to its point.
	if got := signedDistance(Pt(3, 4), a, a); got != 5 {
		t.Errorf("got %v, want 5", got)
	}
}
