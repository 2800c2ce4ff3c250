package spectral

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// directKernelLimit is the kernel length below which direct
// convolution beats the FFT path.
const directKernelLimit = 32

// SmoothOption configures [Smooth].
type SmoothOption func(*smoothConfig)

type smoothConfig struct {
	sigma  float64
	radius int
}

func defaultSmoothConfig() smoothConfig {
	return smoothConfig{sigma: 1}
}

// WithKernelSigma sets the Gaussian kernel width in grid steps
// (default 1).
func WithKernelSigma(sigma float64) SmoothOption {
	return func(c *smoothConfig) {
		c.sigma = sigma
	}
}

// WithKernelRadius sets the kernel half-length in grid steps
// (default ceil(3·sigma)).
func WithKernelRadius(radius int) SmoothOption {
	return func(c *smoothConfig) {
		c.radius = radius
	}
}

// Smooth convolves the tabulated values with a unit-sum Gaussian
// kernel and returns a new distribution over the same grid. Edges are
// extended by replication, so flat distributions stay flat. Short
// kernels convolve directly; longer ones go through the FFT, and the
// two paths agree to numerical precision.
func Smooth(d *Distribution, opts ...SmoothOption) (*Distribution, error) {
	cfg := defaultSmoothConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.sigma <= 0 {
		return nil, fmt.Errorf("%w: sigma must be > 0, got %v", ErrKernelParams, cfg.sigma)
	}
	if cfg.radius < 0 {
		return nil, fmt.Errorf("%w: radius must be >= 0, got %d", ErrKernelParams, cfg.radius)
	}

	radius := cfg.radius
	if radius == 0 {
		radius = int(math.Ceil(3 * cfg.sigma))
	}

	kernel := gaussianKernel(cfg.sigma, radius)
	padded := replicatePad(d.values, radius)

	var out []float64
	if len(kernel) < directKernelLimit {
		out = convolveValidDirect(padded, kernel)
	} else {
		var err error
		out, err = convolveValidFFT(padded, kernel)
		if err != nil {
			return nil, err
		}
	}

	return newDistribution(d.wl, out, d.cfg)
}

// gaussianKernel returns a unit-sum Gaussian of length 2·radius+1.
func gaussianKernel(sigma float64, radius int) []float64 {
	k := make([]float64, 2*radius+1)

	sum := 0.0
	for i := range k {
		d := float64(i - radius)
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}

	vecmath.ScaleBlock(k, k, 1/sum)

	return k
}

// replicatePad extends values by radius copies of each edge sample.
func replicatePad(values []float64, radius int) []float64 {
	out := make([]float64, len(values)+2*radius)
	for i := 0; i < radius; i++ {
		out[i] = values[0]
		out[len(out)-1-i] = values[len(values)-1]
	}
	copy(out[radius:], values)

	return out
}

// convolveValidDirect computes the valid part of padded ⊛ kernel, one
// block scale-add per kernel tap.
func convolveValidDirect(padded, kernel []float64) []float64 {
	n := len(padded) - len(kernel) + 1
	out := make([]float64, n)
	temp := make([]float64, n)

	for j, kj := range kernel {
		vecmath.ScaleBlock(temp, padded[j:j+n], kj)
		vecmath.AddBlockInPlace(out, temp)
	}

	return out
}

// convolveValidFFT computes the same valid region through zero-padded
// FFTs. The kernel is symmetric, so convolution equals correlation.
func convolveValidFFT(padded, kernel []float64) ([]float64, error) {
	full := len(padded) + len(kernel) - 1
	fftSize := nextPowerOf2(full)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectral: failed to create FFT plan: %w", err)
	}

	a := make([]complex128, fftSize)
	for i, v := range padded {
		a[i] = complex(v, 0)
	}

	b := make([]complex128, fftSize)
	for i, v := range kernel {
		b[i] = complex(v, 0)
	}

	if err := plan.Forward(a, a); err != nil {
		return nil, fmt.Errorf("spectral: forward FFT failed: %w", err)
	}
	if err := plan.Forward(b, b); err != nil {
		return nil, fmt.Errorf("spectral: forward FFT failed: %w", err)
	}

	for i := range a {
		a[i] *= b[i]
	}

	if err := plan.Inverse(a, a); err != nil {
		return nil, fmt.Errorf("spectral: inverse FFT failed: %w", err)
	}

	n := len(padded) - len(kernel) + 1
	offset := len(kernel) - 1
	out := make([]float64, n)
	for i := range out {
		out[i] = real(a[offset+i])
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
