package bezclip

import (
	"math"
	"testing"
)

func TestIntervalEmpty(t *testing.T) {
	if !EmptyInterval.IsEmpty() {
		t.Error("EmptyInterval isn't empty")
	}
	if EmptyInterval.Size() != 0 {
		t.Errorf("got size %v, want 0", EmptyInterval.Size())
	}
	if EmptyInterval.Contains(0) {
		t.Error("EmptyInterval contains 0")
	}
	if got := EmptyInterval.String(); got != "[]" {
		t.Errorf("got %q, want %q", got, "[]")
	}
	if (Interval{1, 1}).IsEmpty() {
		t.Error("single point interval is empty")
	}
}

func TestIntervalExpand(t *testing.T) {
	iv := Interval{1, 3}
	diff(t, Interval{0, 4}, iv.Expand(1))
	diff(t, Interval{2, 2}, iv.Expand(-1))
	if got := iv.Expand(-1.5); !got.IsEmpty() {
		t.Errorf("got %v, want empty interval", got)
	}
	if got := EmptyInterval.Expand(1); !got.IsEmpty() {
		t.Errorf("got %v, want empty interval", got)
	}
}

func TestIntervalUnion(t *testing.T) {
	diff(t, Interval{-1, 5}, Interval{-1, 2}.Union(Interval{3, 5}))
	diff(t, Interval{3, 5}, EmptyInterval.Union(Interval{3, 5}))
	diff(t, Interval{3, 5}, Interval{3, 5}.Union(EmptyInterval))
}

func TestIntervalLerp(t *testing.T) {
	iv := Interval{0.1, 0.7}
	if got := iv.Lerp(1); got != 0.7 {
		t.Errorf("got %v, want exactly 0.7", got)
	}
	if got := iv.Lerp(0); got != 0.1 {
		t.Errorf("got %v, want exactly 0.1", got)
	}
	for _, x := range []float64{0.1, 0.25, 0.4, 0.7} {
		if got := iv.Lerp(iv.Normalize(x)); math.Abs(got-x) > 1e-15 {
			t.Errorf("Lerp(Normalize(%v)) = %v", x, got)
		}
	}
	diff(t, Interval{2, 3}, Interval{0, 4}.LerpInterval(Interval{0.5, 0.75}))
	diff(t, Interval{-1, 1}, NewInterval(1, -1))
}
