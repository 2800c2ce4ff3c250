package interp

import (
	"math"
	"sort"
)

// Interpolator is the capability consumed by [Extrapolator] and by the
// spectral types: a 1-D interpolating function over tabulated samples.
//
// X returns the independent samples in strictly increasing order and Y
// the matching dependent samples; both carry at least two entries. The
// returned slices are backing storage, not copies, and must be treated
// as read-only.
type Interpolator interface {
	X() []float64
	Y() []float64

	// Evaluate returns the interpolated value at x. Behaviour outside
	// [X()[0], X()[last]] is implementation-defined; wrap the
	// interpolator in an [Extrapolator] for controlled extension.
	Evaluate(x float64) float64
}

// EvaluateAll maps in.Evaluate over xs and returns a new slice.
func EvaluateAll(in Interpolator, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = in.Evaluate(x)
	}

	return out
}

// SafeDiv returns a/b, with division by zero yielding 0 instead of
// ±Inf or NaN. Degenerate slopes therefore extrapolate flat.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}

	return a / b
}

// LinearInterpolator connects consecutive samples with straight lines.
type LinearInterpolator struct {
	x, y []float64
}

// NewLinear creates a piecewise-linear interpolator over the given
// samples. x must be strictly increasing and len(x) == len(y) >= 2.
func NewLinear(x, y []float64) (*LinearInterpolator, error) {
	if err := validateSamples(x, y); err != nil {
		return nil, err
	}

	return &LinearInterpolator{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
	}, nil
}

// X returns the independent samples.
func (l *LinearInterpolator) X() []float64 { return l.x }

// Y returns the dependent samples.
func (l *LinearInterpolator) Y() []float64 { return l.y }

// Evaluate returns the piecewise-linear value at x. Outside the
// sampled domain the edge segments are continued.
func (l *LinearInterpolator) Evaluate(x float64) float64 {
	i := segmentIndex(l.x, x)
	t := SafeDiv(x-l.x[i], l.x[i+1]-l.x[i])

	return l.y[i] + t*(l.y[i+1]-l.y[i])
}

// HermiteInterpolator connects consecutive samples with cubic 4-point
// Hermite segments. The sample grid must be uniform; edge segments
// reuse the boundary sample as the missing neighbour.
type HermiteInterpolator struct {
	x, y []float64
}

// NewHermite creates a cubic Hermite interpolator over the given
// samples. x must be strictly increasing, uniformly spaced, and
// len(x) == len(y) >= 2.
func NewHermite(x, y []float64) (*HermiteInterpolator, error) {
	if err := validateSamples(x, y); err != nil {
		return nil, err
	}
	if err := validateUniform(x); err != nil {
		return nil, err
	}

	return &HermiteInterpolator{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
	}, nil
}

// X returns the independent samples.
func (h *HermiteInterpolator) X() []float64 { return h.x }

// Y returns the dependent samples.
func (h *HermiteInterpolator) Y() []float64 { return h.y }

// Evaluate returns the piecewise-cubic value at x.
func (h *HermiteInterpolator) Evaluate(x float64) float64 {
	i := segmentIndex(h.x, x)
	t := SafeDiv(x-h.x[i], h.x[i+1]-h.x[i])

	ym1 := h.y[i]
	if i > 0 {
		ym1 = h.y[i-1]
	}

	y2 := h.y[i+1]
	if i+2 < len(h.y) {
		y2 = h.y[i+2]
	}

	return hermite4(t, ym1, h.y[i], h.y[i+1], y2)
}

// hermite4 computes cubic 4-point interpolation from x0 to x1 using
// neighbour points xm1 and x2.
func hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)

	return ((c3*t+c2)*t+c1)*t + c0
}

// NullInterpolator is the degenerate fallback wrapped by an
// [Extrapolator] constructed without an interpolator: two samples
// mapping (-Inf, +Inf) to (-Inf, +Inf). Every finite query falls
// inside its domain and evaluates to NaN, since no finite
// reconstruction exists.
type NullInterpolator struct {
	x, y []float64
}

// NewNull creates the degenerate interpolator.
func NewNull() *NullInterpolator {
	return &NullInterpolator{
		x: []float64{math.Inf(-1), math.Inf(1)},
		y: []float64{math.Inf(-1), math.Inf(1)},
	}
}

// X returns the degenerate domain (-Inf, +Inf).
func (n *NullInterpolator) X() []float64 { return n.x }

// Y returns the degenerate values (-Inf, +Inf).
func (n *NullInterpolator) Y() []float64 { return n.y }

// Evaluate returns NaN for every query.
func (n *NullInterpolator) Evaluate(float64) float64 { return math.NaN() }

// segmentIndex returns i such that x falls in [xs[i], xs[i+1]], with
// queries outside the domain mapped to the first or last segment.
func segmentIndex(xs []float64, x float64) int {
	i := sort.SearchFloat64s(xs, x)
	if i > 0 {
		i--
	}
	if i > len(xs)-2 {
		i = len(xs) - 2
	}

	return i
}
