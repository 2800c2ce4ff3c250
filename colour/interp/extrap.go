package interp

import (
	"fmt"
	"math"
	"strings"
)

// Method selects how an [Extrapolator] extends values beyond the
// wrapped domain.
type Method int

const (
	// MethodLinear continues the straight line through the two
	// outermost samples on each side.
	MethodLinear Method = iota

	// MethodConstant holds the nearest edge value.
	MethodConstant
)

// String returns the method name as accepted by [ParseMethod].
func (m Method) String() string {
	switch m {
	case MethodLinear:
		return "Linear"
	case MethodConstant:
		return "Constant"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a method name to its [Method] value. Matching
// is case-insensitive; unknown names return [ErrUnknownMethod].
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "linear":
		return MethodLinear, nil
	case "constant":
		return MethodConstant, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Extrapolator extends an [Interpolator] beyond its sampled domain.
//
// Queries inside [x0, xn] delegate to the wrapped interpolator, so an
// Extrapolator always agrees with it exactly at the boundaries.
// Outside, values follow the configured [Method]:
//
//	MethodLinear    y0 + (x - x0)·(y1 - y0)/(x1 - x0)      below
//	                yn + (x - xn)·(yn - yn₋₁)/(xn - xn₋₁)  above
//	MethodConstant  y0 below, yn above
//
// unless a fixed left/right fill value overrides the method on that
// side. Degenerate slopes divide safely (see [SafeDiv]); NaN queries
// return NaN.
type Extrapolator struct {
	in       Interpolator
	method   Method
	left     float64
	right    float64
	hasLeft  bool
	hasRight bool
}

// Option configures an [Extrapolator].
type Option func(*Extrapolator)

// WithMethod selects the extrapolation method (default [MethodLinear]).
func WithMethod(m Method) Option {
	return func(e *Extrapolator) {
		e.method = m
	}
}

// WithLeft fixes the value returned for queries below the domain,
// taking precedence over the method.
func WithLeft(v float64) Option {
	return func(e *Extrapolator) {
		e.left = v
		e.hasLeft = true
	}
}

// WithRight fixes the value returned for queries above the domain,
// taking precedence over the method.
func WithRight(v float64) Option {
	return func(e *Extrapolator) {
		e.right = v
		e.hasRight = true
	}
}

// New creates an Extrapolator around in. A nil interpolator wraps the
// degenerate [NullInterpolator]. The wrapped samples are validated
// once at construction; the method must be one of the declared
// [Method] constants.
func New(in Interpolator, opts ...Option) (*Extrapolator, error) {
	e := &Extrapolator{in: in, method: MethodLinear}
	if e.in == nil {
		e.in = NewNull()
	}

	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	if e.method != MethodLinear && e.method != MethodConstant {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(e.method))
	}
	if err := validateSamples(e.in.X(), e.in.Y()); err != nil {
		return nil, err
	}

	return e, nil
}

// Interpolator returns the wrapped interpolator.
func (e *Extrapolator) Interpolator() Interpolator { return e.in }

// Method returns the configured extrapolation method.
func (e *Extrapolator) Method() Method { return e.method }

// Left returns the below-domain fill value and whether one is set.
func (e *Extrapolator) Left() (float64, bool) { return e.left, e.hasLeft }

// Right returns the above-domain fill value and whether one is set.
func (e *Extrapolator) Right() (float64, bool) { return e.right, e.hasRight }

// Evaluate returns the extended value at x.
func (e *Extrapolator) Evaluate(x float64) float64 {
	xs := e.in.X()
	x0, xn := xs[0], xs[len(xs)-1]

	switch {
	case x < x0:
		if e.hasLeft {
			return e.left
		}

		return e.below(x)
	case x > xn:
		if e.hasRight {
			return e.right
		}

		return e.above(x)
	case x >= x0 && x <= xn:
		return e.in.Evaluate(x)
	default:
		// NaN matches no band.
		return math.NaN()
	}
}

// EvaluateAll returns Evaluate applied to every element of xs.
// EvaluateAll(xs)[i] always equals Evaluate(xs[i]).
func (e *Extrapolator) EvaluateAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = e.Evaluate(x)
	}

	return out
}

func (e *Extrapolator) below(x float64) float64 {
	xs, ys := e.in.X(), e.in.Y()
	if e.method == MethodConstant {
		return ys[0]
	}

	return ys[0] + (x-xs[0])*SafeDiv(ys[1]-ys[0], xs[1]-xs[0])
}

func (e *Extrapolator) above(x float64) float64 {
	xs, ys := e.in.X(), e.in.Y()
	n := len(xs) - 1
	if e.method == MethodConstant {
		return ys[n]
	}

	return ys[n] + (x-xs[n])*SafeDiv(ys[n]-ys[n-1], xs[n]-xs[n-1])
}
