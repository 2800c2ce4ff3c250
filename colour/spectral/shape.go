package spectral

import (
	"fmt"
	"math"
)

// gridEps absorbs binary representation error when mapping wavelengths
// onto grid indices, so representable shapes land exactly on End.
const gridEps = 1e-10

// Shape describes a uniform wavelength grid in nanometres: Start,
// Start+Interval, …, End.
type Shape struct {
	Start    float64
	End      float64
	Interval float64
}

// DefaultShape returns the default visible-range grid (360, 780, 1).
func DefaultShape() Shape {
	return Shape{Start: 360, End: 780, Interval: 1}
}

// Validate reports whether the shape describes a usable grid:
// finite bounds, Start <= End and Interval > 0.
func (s Shape) Validate() error {
	return validateShape(s)
}

// Count returns the number of grid points.
func (s Shape) Count() int {
	return int(math.Floor((s.End-s.Start)/s.Interval+gridEps)) + 1
}

// Wavelengths returns the grid as a new slice.
func (s Shape) Wavelengths() []float64 {
	out := make([]float64, s.Count())
	for i := range out {
		out[i] = s.Start + float64(i)*s.Interval
	}

	return out
}

// Contains reports whether wl lies on the shape's grid.
func (s Shape) Contains(wl float64) bool {
	if wl < s.Start-gridEps || wl > s.End+gridEps {
		return false
	}

	steps := (wl - s.Start) / s.Interval

	return math.Abs(steps-math.Round(steps)) <= gridEps
}

// String renders the shape as "(start, end, interval)".
func (s Shape) String() string {
	return fmt.Sprintf("(%g, %g, %g)", s.Start, s.End, s.Interval)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
