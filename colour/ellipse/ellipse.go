package ellipse

import "math"

// Canonical describes an ellipse by its centre, semi-axes, and
// orientation.
type Canonical struct {
	// CX, CY locate the centre.
	CX, CY float64

	// A and B are the semi-major and semi-minor axis lengths.
	A, B float64

	// Theta is the rotation of the major axis from the x axis, in
	// degrees.
	Theta float64
}

// Coefficients holds the general conic coefficients a, b, c, d, e, f of
// a*x² + b*x*y + c*y² + d*x + e*y + f = 0, in that order.
type Coefficients [6]float64

// CanonicalToCoefficients expands a canonical ellipse into general conic
// coefficients.
func CanonicalToCoefficients(c Canonical) Coefficients {
	sinT, cosT := math.Sincos(degToRad(c.Theta))
	a2 := c.A * c.A
	b2 := c.B * c.B

	ca := a2*sinT*sinT + b2*cosT*cosT
	cb := 2 * (b2 - a2) * sinT * cosT
	cc := a2*cosT*cosT + b2*sinT*sinT
	cd := -2*ca*c.CX - cb*c.CY
	ce := -cb*c.CX - 2*cc*c.CY
	cf := ca*c.CX*c.CX + cb*c.CX*c.CY + cc*c.CY*c.CY - a2*b2

	return Coefficients{ca, cb, cc, cd, ce, cf}
}

// CoefficientsToCanonical reduces general conic coefficients to the
// canonical centre, axes, and orientation. It returns ErrNotEllipse when
// the coefficients describe another conic, such as a parabola or
// hyperbola, or an ellipse with no real points.
func CoefficientsToCanonical(co Coefficients) (Canonical, error) {
	ca, cb, cc, cd, ce, cf := co[0], co[1], co[2], co[3], co[4], co[5]

	disc := cb*cb - 4*ca*cc
	if disc >= 0 {
		return Canonical{}, ErrNotEllipse
	}

	num := 2 * (ca*ce*ce + cc*cd*cd - cb*cd*ce + disc*cf)
	sum := ca + cc
	root := math.Hypot(ca-cc, cb)

	majorArg := num * (sum + root)
	minorArg := num * (sum - root)

	if majorArg < 0 || minorArg < 0 {
		return Canonical{}, ErrNotEllipse
	}

	out := Canonical{
		CX: (2*cc*cd - cb*ce) / disc,
		CY: (2*ca*ce - cb*cd) / disc,
		A:  -math.Sqrt(majorArg) / disc,
		B:  -math.Sqrt(minorArg) / disc,
	}

	switch {
	case cb == 0 && ca < cc:
		out.Theta = 0
	case cb == 0 && ca > cc:
		out.Theta = 90
	case cb != 0:
		out.Theta = radToDeg(math.Atan((cc - ca - root) / cb))
	default:
		// Circle: any orientation is equivalent.
		out.Theta = 0
	}

	return out, nil
}

// PointAt returns the point on the ellipse at parametric angle phi, in
// degrees. The angle sweeps counterclockwise from the major axis.
func PointAt(c Canonical, phi float64) (x, y float64) {
	sinP, cosP := math.Sincos(degToRad(phi))
	sinT, cosT := math.Sincos(degToRad(c.Theta))

	x = c.CX + c.A*cosT*cosP - c.B*sinT*sinP
	y = c.CY + c.A*sinT*cosP + c.B*cosT*sinP

	return x, y
}

// PointsAt returns the points on the ellipse at each parametric angle,
// in degrees.
func PointsAt(c Canonical, phis []float64) [][2]float64 {
	out := make([][2]float64, len(phis))
	for i, phi := range phis {
		x, y := PointAt(c, phi)
		out[i] = [2]float64{x, y}
	}

	return out
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }

func radToDeg(r float64) float64 { return r * 180 / math.Pi }
