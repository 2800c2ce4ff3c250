// Package cubic provides closed-form real-root extraction for polynomials up
// to degree three, shared by the ellipse fitting eigen-solver.
package cubic

import (
	"math"
	"sort"
)

// Roots returns the real roots of a*x^3 + b*x^2 + c*x + d in ascending order.
// Repeated roots appear once per multiplicity. A zero leading coefficient
// falls through to the quadratic, linear, and constant cases; a polynomial
// with no real roots yields an empty result.
func Roots(a, b, c, d float64) []float64 {
	if a == 0 {
		return quadraticRoots(b, c, d)
	}

	if d == 0 {
		// x is a factor; the remaining roots are quadratic.
		roots := append(quadraticRoots(a, b, c), 0)
		sort.Float64s(roots)

		return roots
	}

	p := b / a
	q := c / a
	r := d / a

	qq := (p*p - 3*q) / 9
	rr := (2*p*p*p - 9*p*q + 27*r) / 54

	if qq == 0 && rr == 0 {
		root := -p / 3

		return []float64{root, root, root}
	}

	// Viete's trigonometric form covers the three-real-root region,
	// including the repeated-root boundary rr^2 == qq^3.
	if rr*rr <= qq*qq*qq {
		t := rr / math.Sqrt(qq*qq*qq)
		t = math.Max(-1, math.Min(1, t))
		theta := math.Acos(t)
		scale := -2 * math.Sqrt(qq)

		roots := []float64{
			scale*math.Cos(theta/3) - p/3,
			scale*math.Cos((theta+2*math.Pi)/3) - p/3,
			scale*math.Cos((theta-2*math.Pi)/3) - p/3,
		}
		sort.Float64s(roots)

		return roots
	}

	// One real root (Cardano).
	e := math.Cbrt(math.Abs(rr) + math.Sqrt(rr*rr-qq*qq*qq))
	if rr > 0 {
		e = -e
	}

	f := 0.0
	if e != 0 {
		f = qq / e
	}

	return []float64{e + f - p/3}
}

// quadraticRoots returns the real roots of a*x^2 + b*x + c in ascending
// order, using the numerically stable split to avoid cancellation.
func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}

		return []float64{-c / b}
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}

	s := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	if s == 0 {
		root := -b / (2 * a)

		return []float64{root, root}
	}

	r1 := s / a
	r2 := c / s

	if r1 > r2 {
		r1, r2 = r2, r1
	}

	return []float64{r1, r2}
}
