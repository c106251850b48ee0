package bezclip

import (
	"math"
)

// SolveLinear finds the root of a x + b = 0.
//
// It reports false when |a| < [Epsilon], in which case the equation either
// has no solution or is satisfied by every x.
func SolveLinear(a, b float64) (float64, bool) {
	if math.Abs(a) < Epsilon {
		return 0, false
	}
	return -b / a, true
}

// split splits n into a high and low part whose sum is n and whose products
// are exact.
func split(n float64) (hi, lo float64) {
	x := n * dekkerSplitter
	y := n - x
	hi = y + x
	lo = n - hi
	return hi, lo
}

// discriminant computes b² - ac, falling back to a compensated computation
// when the naive difference would lose more than a third of its bits.
func discriminant(a, b, c float64) float64 {
	d := b*b - a*c
	e := b*b + a*c
	if math.Abs(d)*3 < e {
		ah, al := split(a)
		bh, bl := split(b)
		ch, cl := split(c)
		p := b * b
		dp := bh*bh - p + 2*bh*bl + bl*bl
		q := a * c
		dq := ah*ch - q + ah*cl + al*ch + al*cl
		d = p - q + (dp - dq)
	}
	return d
}

// SolveQuadratic finds real roots of a x² + b x + c = 0.
//
// The returned int states how many of the array's entries are roots. Roots
// are not sorted; a double root is reported twice. Every root has been
// verified to leave a residual below [SolutionEpsilon] on the (rescaled)
// equation.
//
// When |a| < [Epsilon] the equation is solved as a linear one. In particular,
// an equation whose coefficients are all zero has no reported roots.
func SolveQuadratic(a, b, c float64) ([2]float64, int) {
	var out [2]float64
	if math.Abs(a) < Epsilon {
		x, ok := SolveLinear(b, c)
		if !ok {
			return out, 0
		}
		out[0] = x
		return out, 1
	}

	b *= -0.5
	k := normalizationFactor(a, b, c)
	a *= k
	b *= k
	c *= k

	d := discriminant(a, b, c)
	if d < -DiscriminantEpsilon {
		return out, 0
	}
	var q float64
	if d > 0 {
		q = math.Sqrt(d)
	}
	r := b + q
	if b < 0 {
		r = b - q
	}
	var cand [2]float64
	if r == 0 {
		cand = [2]float64{c / a, -c / a}
	} else {
		cand = [2]float64{r / a, c / r}
	}

	n := 0
	for _, x := range cand {
		// The discriminant tolerance is generous, so check our work.
		y := a*x*x - 2*b*x + c
		if math.Abs(y) < SolutionEpsilon {
			out[n] = x
			n++
		}
	}
	return out, n
}

// SolveCubic finds real roots of a x³ + b x² + c x + d = 0.
//
// One real root is located by iteration, then divided out, and the remaining
// quadratic is handed to [SolveQuadratic]. The returned int states how many
// of the array's entries are roots; they are not sorted.
func SolveCubic(a, b, c, d float64) ([3]float64, int) {
	var out [3]float64

	k := normalizationFactor(a, b, c, d)
	a *= k
	b *= k
	c *= k
	d *= k

	if math.Abs(a) < Epsilon {
		roots, n := SolveQuadratic(b, c, d)
		copy(out[:], roots[:n])
		return out, n
	}

	var x, b1, c2 float64
	if math.Abs(d) < Epsilon {
		// Zero is a root; what remains is a x² + b x + c.
		b1 = b
		c2 = c
	} else {
		// Start at the inflection point and take a Halley-style first step
		// towards the root, then polish with Newton until it stops moving
		// in the same direction.
		x = -(b / a) / 3
		b1 = a*x + b
		c2 = b1*x + c
		qd := (a*x+b1)*x + c2
		q := c2*x + d
		t := q / a
		r := math.Cbrt(math.Abs(t))
		s := 1.0
		if t < 0 {
			s = -1
		}
		td := -qd / a
		rd := r
		if td > 0 {
			rd = 1.324717957244746 * max(r, math.Sqrt(td))
		}
		x0 := x - s*rd
		if x0 != x {
			for {
				x = x0
				b1 = a*x + b
				c2 = b1*x + c
				qd = (a*x+b1)*x + c2
				q = c2*x + d
				if qd == 0 {
					x0 = x
				} else {
					x0 = x - q/(qd/(1+MachineEpsilon))
				}
				if !(s*x0 > s*x) {
					break
				}
			}
			if math.Abs(a)*x*x > math.Abs(d/x) {
				c2 = -d / x
				b1 = (c2 - c) / x
			}
		}
	}

	roots, n := SolveQuadratic(a, b1, c2)
	copy(out[:], roots[:n])
	for _, r := range roots[:n] {
		if r == x {
			return out, n
		}
	}
	y := a*x*x*x + b*x*x + c*x + d
	if math.Abs(y) < SolutionEpsilon {
		out[n] = x
		n++
	}
	return out, n
}
