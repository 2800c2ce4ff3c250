package ellipse

import (
	"math"

	"github.com/cwbudde/algo-colour/internal/cubic"
)

// FitHalir1998 fits an ellipse to scattered points using the numerically
// stable direct least squares method of Halir and Flusser (1998). The
// returned general conic coefficients are scaled so the quadratic block
// [a b c] has unit Euclidean norm and a is positive.
//
// At least four points are required. Configurations that admit no
// ellipse, such as collinear points, return ErrDegenerate.
func FitHalir1998(points [][2]float64) (Coefficients, error) {
	if len(points) < 4 {
		return Coefficients{}, ErrTooFewPoints
	}

	// Scatter blocks of the quadratic (x², xy, y²) and linear (x, y, 1)
	// parts of the design matrix.
	var s1, s2, s3 mat3

	for _, p := range points {
		x, y := p[0], p[1]
		d1 := [3]float64{x * x, x * y, y * y}
		d2 := [3]float64{x, y, 1}

		for i := range 3 {
			for j := range 3 {
				s1[i][j] += d1[i] * d1[j]
				s2[i][j] += d1[i] * d2[j]
				s3[i][j] += d2[i] * d2[j]
			}
		}
	}

	s3inv, ok := s3.inverse()
	if !ok {
		return Coefficients{}, ErrDegenerate
	}

	// T recovers the linear coefficient block from the quadratic one.
	t := s3inv.mul(s2.transpose()).scale(-1)

	m := s1.add(s2.mul(t))

	// Premultiplying by the inverted constraint matrix reduces the
	// constrained problem to a plain eigenproblem.
	m = mat3{
		{m[2][0] / 2, m[2][1] / 2, m[2][2] / 2},
		{-m[1][0], -m[1][1], -m[1][2]},
		{m[0][0] / 2, m[0][1] / 2, m[0][2] / 2},
	}

	quad, ok := constraintEigenvector(m)
	if !ok {
		return Coefficients{}, ErrDegenerate
	}

	lin := t.mulVec(quad)

	return Coefficients{quad[0], quad[1], quad[2], lin[0], lin[1], lin[2]}, nil
}

// constraintEigenvector returns the unit-norm eigenvector of m whose
// coefficients satisfy the ellipse constraint 4ac - b² > 0. For
// non-degenerate scatter input exactly one eigenvector does.
func constraintEigenvector(m mat3) ([3]float64, bool) {
	tr := m[0][0] + m[1][1] + m[2][2]
	minors := m[1][1]*m[2][2] - m[1][2]*m[2][1] +
		m[0][0]*m[2][2] - m[0][2]*m[2][0] +
		m[0][0]*m[1][1] - m[0][1]*m[1][0]

	for _, lambda := range cubic.Roots(1, -tr, minors, -m.det()) {
		shifted := m
		for i := range 3 {
			shifted[i][i] -= lambda
		}

		for _, v := range nullBasis(shifted) {
			if 4*v[0]*v[2]-v[1]*v[1] <= 0 {
				continue
			}

			norm := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
			if v[0] < 0 {
				norm = -norm
			}

			return [3]float64{v[0] / norm, v[1] / norm, v[2] / norm}, true
		}
	}

	return [3]float64{}, false
}

// nullBasis returns a basis of the null space of m, found by Gaussian
// elimination with partial pivoting. Pivots below a relative threshold
// count as zero, so eigenvalues carrying ordinary rounding error still
// expose their eigenspace.
func nullBasis(m mat3) [][3]float64 {
	scale := 0.0
	for i := range 3 {
		for j := range 3 {
			scale = math.Max(scale, math.Abs(m[i][j]))
		}
	}

	if scale == 0 {
		return [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	}

	tol := 1e-7 * scale
	pivotCols := make([]int, 0, 3)
	row := 0

	for col := 0; col < 3 && row < 3; col++ {
		best := row
		for i := row + 1; i < 3; i++ {
			if math.Abs(m[i][col]) > math.Abs(m[best][col]) {
				best = i
			}
		}

		if math.Abs(m[best][col]) <= tol {
			continue
		}

		m[row], m[best] = m[best], m[row]

		for i := row + 1; i < 3; i++ {
			f := m[i][col] / m[row][col]
			for j := col; j < 3; j++ {
				m[i][j] -= f * m[row][j]
			}
		}

		pivotCols = append(pivotCols, col)
		row++
	}

	var isPivot [3]bool
	for _, col := range pivotCols {
		isPivot[col] = true
	}

	var basis [][3]float64

	for col := range 3 {
		if isPivot[col] {
			continue
		}

		var v [3]float64
		v[col] = 1

		// Back-substitute the pivot variables, bottom row first.
		for i := len(pivotCols) - 1; i >= 0; i-- {
			p := pivotCols[i]

			s := 0.0
			for j := p + 1; j < 3; j++ {
				s += m[i][j] * v[j]
			}

			v[p] = -s / m[i][p]
		}

		basis = append(basis, v)
	}

	return basis
}

type mat3 [3][3]float64

func (m mat3) transpose() mat3 {
	var out mat3
	for i := range 3 {
		for j := range 3 {
			out[i][j] = m[j][i]
		}
	}

	return out
}

func (m mat3) add(n mat3) mat3 {
	var out mat3
	for i := range 3 {
		for j := range 3 {
			out[i][j] = m[i][j] + n[i][j]
		}
	}

	return out
}

func (m mat3) scale(s float64) mat3 {
	var out mat3
	for i := range 3 {
		for j := range 3 {
			out[i][j] = s * m[i][j]
		}
	}

	return out
}

func (m mat3) mul(n mat3) mat3 {
	var out mat3
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}

	return out
}

func (m mat3) mulVec(v [3]float64) [3]float64 {
	var out [3]float64
	for i := range 3 {
		for k := range 3 {
			out[i] += m[i][k] * v[k]
		}
	}

	return out
}

func (m mat3) det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func (m mat3) inverse() (mat3, bool) {
	d := m.det()
	if d == 0 {
		return mat3{}, false
	}

	adj := mat3{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}

	return adj.scale(1 / d), true
}
