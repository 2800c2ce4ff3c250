package interp

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by interpolator and extrapolator constructors.
var (
	ErrTooFewSamples  = errors.New("interp: at least two samples required")
	ErrLengthMismatch = errors.New("interp: x and y must have same length")
	ErrNotIncreasing  = errors.New("interp: x must be strictly increasing")
	ErrNonUniform     = errors.New("interp: x must be uniformly spaced")
	ErrUnknownMethod  = errors.New("interp: unknown extrapolation method")
)

const uniformTol = 1e-10

func validateSamples(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewSamples, len(x))
	}
	for i := 1; i < len(x); i++ {
		// The negated comparison also rejects NaN samples.
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("%w: x[%d]=%v, x[%d]=%v", ErrNotIncreasing, i-1, x[i-1], i, x[i])
		}
	}
	return nil
}

func validateUniform(x []float64) error {
	step := x[1] - x[0]
	for i := 2; i < len(x); i++ {
		if math.Abs((x[i]-x[i-1])-step) > uniformTol*math.Abs(step) {
			return fmt.Errorf("%w: step %v at index %d, expected %v", ErrNonUniform, x[i]-x[i-1], i, step)
		}
	}
	return nil
}
