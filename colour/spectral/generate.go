package spectral

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// GaussianMethod selects the Gaussian generator parameterization.
type GaussianMethod int

const (
	// GaussianNormal parameterizes by mean and standard deviation.
	GaussianNormal GaussianMethod = iota

	// GaussianFWHM parameterizes by peak wavelength and full width at
	// half maximum.
	GaussianFWHM
)

// String returns the method name as accepted by [ParseGaussianMethod].
func (m GaussianMethod) String() string {
	switch m {
	case GaussianNormal:
		return "Normal"
	case GaussianFWHM:
		return "FWHM"
	default:
		return fmt.Sprintf("GaussianMethod(%d)", int(m))
	}
}

// ParseGaussianMethod converts a method name to its [GaussianMethod]
// value. Matching is case-insensitive; unknown names return
// [ErrUnknownMethod].
func ParseGaussianMethod(name string) (GaussianMethod, error) {
	switch strings.ToLower(name) {
	case "normal", "gaussian normal":
		return GaussianNormal, nil
	case "fwhm", "gaussian fwhm":
		return GaussianFWHM, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// LEDMethod selects the LED spectral model.
type LEDMethod int

const (
	// LEDOhno2005 is the LED model of Ohno (2005).
	LEDOhno2005 LEDMethod = iota
)

// String returns the method name as accepted by [ParseLEDMethod].
func (m LEDMethod) String() string {
	switch m {
	case LEDOhno2005:
		return "Ohno 2005"
	default:
		return fmt.Sprintf("LEDMethod(%d)", int(m))
	}
}

// ParseLEDMethod converts a method name to its [LEDMethod] value.
// Matching is case-insensitive; unknown names return
// [ErrUnknownMethod].
func ParseLEDMethod(name string) (LEDMethod, error) {
	switch strings.ToLower(name) {
	case "ohno 2005", "ohno (2005)", "ohno2005":
		return LEDOhno2005, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

func resolveShape(shapes []Shape) (Shape, error) {
	s := DefaultShape()
	if len(shapes) > 0 {
		s = shapes[0]
	}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}

	return s, nil
}

// SDConstant returns a distribution holding k at every wavelength of
// the shape (default [DefaultShape]).
func SDConstant(k float64, shape ...Shape) (*Distribution, error) {
	s, err := resolveShape(shape)
	if err != nil {
		return nil, err
	}

	grid := s.Wavelengths()
	values := make([]float64, len(grid))
	for i := range values {
		values[i] = k
	}

	return NewDistribution(grid, values, WithName(fmt.Sprintf("%g Constant", k)))
}

// SDZeros returns an all-zero distribution over the shape.
func SDZeros(shape ...Shape) (*Distribution, error) {
	return SDConstant(0, shape...)
}

// SDOnes returns an all-one distribution over the shape.
func SDOnes(shape ...Shape) (*Distribution, error) {
	return SDConstant(1, shape...)
}

// MSDSConstant returns a multi-channel distribution holding k in
// every channel, one channel per label.
func MSDSConstant(k float64, labels []string, shape ...Shape) (*MultiDistribution, error) {
	s, err := resolveShape(shape)
	if err != nil {
		return nil, err
	}

	grid := s.Wavelengths()
	columns := make([][]float64, len(labels))
	for j := range columns {
		col := make([]float64, len(grid))
		for i := range col {
			col[i] = k
		}
		columns[j] = col
	}

	return NewMultiDistribution(grid, columns,
		WithName(fmt.Sprintf("%g Constant", k)), WithLabels(labels))
}

// MSDSZeros returns an all-zero multi-channel distribution.
func MSDSZeros(labels []string, shape ...Shape) (*MultiDistribution, error) {
	return MSDSConstant(0, labels, shape...)
}

// MSDSOnes returns an all-one multi-channel distribution.
func MSDSOnes(labels []string, shape ...Shape) (*MultiDistribution, error) {
	return MSDSConstant(1, labels, shape...)
}

// SDGaussianNormal returns a Gaussian distribution
//
//	v(λ) = exp(-(λ - mu)² / (2·sigma²))
//
// peaking at 1 when mu lies on the grid.
func SDGaussianNormal(mu, sigma float64, shape ...Shape) (*Distribution, error) {
	s, err := resolveShape(shape)
	if err != nil {
		return nil, err
	}

	grid := s.Wavelengths()
	values := make([]float64, len(grid))
	for i, wl := range grid {
		d := wl - mu
		values[i] = math.Exp(-d * d / (2 * sigma * sigma))
	}

	return NewDistribution(grid, values,
		WithName(fmt.Sprintf("%gnm - %g Sigma - Gaussian", mu, sigma)))
}

// SDGaussianFWHM returns a Gaussian distribution parameterized by its
// peak wavelength and full width at half maximum. The width converts
// to sigma = fwhm / (2·sqrt(2·ln 2)) and delegates to
// [SDGaussianNormal], so the value at peak ± fwhm/2 is 0.5.
func SDGaussianFWHM(peak, fwhm float64, shape ...Shape) (*Distribution, error) {
	sigma := fwhm / (2 * math.Sqrt(2*math.Ln2))

	d, err := SDGaussianNormal(peak, sigma, shape...)
	if err != nil {
		return nil, err
	}

	d.SetName(fmt.Sprintf("%gnm - %g FWHM - Gaussian", peak, fwhm))

	return d, nil
}

// SDGaussian dispatches between the Gaussian parameterizations: a and
// b are (mu, sigma) for [GaussianNormal] and (peak, fwhm) for
// [GaussianFWHM].
func SDGaussian(method GaussianMethod, a, b float64, shape ...Shape) (*Distribution, error) {
	switch method {
	case GaussianNormal:
		return SDGaussianNormal(a, b, shape...)
	case GaussianFWHM:
		return SDGaussianFWHM(a, b, shape...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
}

// SDSingleLEDOhno2005 returns a single-LED distribution after
// Ohno (2005):
//
//	g = exp(-((λ - peak) / halfWidth)²)
//	v = (g + 2g⁵) / 3
//
// The blend reproduces the asymmetric reference LED shape; it is a
// numeric contract, not a plain Gaussian.
func SDSingleLEDOhno2005(peak, halfWidth float64, shape ...Shape) (*Distribution, error) {
	s, err := resolveShape(shape)
	if err != nil {
		return nil, err
	}

	grid := s.Wavelengths()
	values := make([]float64, len(grid))
	for i, wl := range grid {
		r := (wl - peak) / halfWidth
		g := math.Exp(-r * r)
		g5 := g * g * g * g * g
		values[i] = (g + 2*g5) / 3
	}

	return NewDistribution(grid, values,
		WithName(fmt.Sprintf("%gnm - %g Half Spectral Width LED - Ohno (2005)", peak, halfWidth)))
}

// SDSingleLED dispatches single-LED generation by model.
func SDSingleLED(method LEDMethod, peak, halfWidth float64, shape ...Shape) (*Distribution, error) {
	switch method {
	case LEDOhno2005:
		return SDSingleLEDOhno2005(peak, halfWidth, shape...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
}

// SDMultiLEDsOhno2005 superposes single-LED distributions:
//
//	v = Σᵢ ratioᵢ · singleLED(peakᵢ, halfWidthᵢ)
//
// halfWidths and ratios broadcast to the peak count by cyclic
// repetition, truncating when longer. Nil or empty ratios default to
// all ones; empty peaks or halfWidths is an error.
func SDMultiLEDsOhno2005(peaks, halfWidths, ratios []float64, shape ...Shape) (*Distribution, error) {
	if len(peaks) == 0 {
		return nil, ErrEmptyPeaks
	}

	widths, err := resizeCycle(halfWidths, len(peaks))
	if err != nil {
		return nil, fmt.Errorf("half spectral widths: %w", err)
	}

	if len(ratios) == 0 {
		ratios = []float64{1}
	}
	powers, err := resizeCycle(ratios, len(peaks))
	if err != nil {
		return nil, fmt.Errorf("peak power ratios: %w", err)
	}

	s, err := resolveShape(shape)
	if err != nil {
		return nil, err
	}

	grid := s.Wavelengths()
	sum := make([]float64, len(grid))
	temp := make([]float64, len(grid))

	for i, peak := range peaks {
		single, err := SDSingleLEDOhno2005(peak, widths[i], s)
		if err != nil {
			return nil, err
		}

		vecmath.ScaleBlock(temp, single.values, powers[i])
		vecmath.AddBlockInPlace(sum, temp)
	}

	name := fmt.Sprintf("%snm - %s FWHM - %s Peak Power Ratios - LED - Ohno (2005)",
		joinFloats(peaks), joinFloats(widths), joinFloats(powers))

	return NewDistribution(grid, sum, WithName(name))
}

// SDMultiLEDs dispatches multi-LED generation by model.
func SDMultiLEDs(method LEDMethod, peaks, halfWidths, ratios []float64, shape ...Shape) (*Distribution, error) {
	switch method {
	case LEDOhno2005:
		return SDMultiLEDsOhno2005(peaks, halfWidths, ratios, shape...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
}

// resizeCycle repeats src cyclically, or truncates it, to exactly n
// entries.
func resizeCycle(src []float64, n int) ([]float64, error) {
	if len(src) == 0 {
		return nil, ErrEmptyBroadcast
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = src[i%len(src)]
	}

	return out, nil
}

func joinFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	return strings.Join(parts, ", ")
}
