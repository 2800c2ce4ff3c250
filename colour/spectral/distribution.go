package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-colour/colour/interp"
)

// Interpolation identifies the reconstruction used between the samples
// of a [Distribution].
type Interpolation int

const (
	// InterpolationLinear reconstructs with straight segments.
	InterpolationLinear Interpolation = iota

	// InterpolationHermite reconstructs with cubic Hermite segments
	// and requires a uniform grid.
	InterpolationHermite
)

// Option configures distribution construction.
type Option func(*config)

type config struct {
	name          string
	labels        []string
	interpolation Interpolation
	extrapOpts    []interp.Option
}

func defaultConfig() config {
	return config{
		interpolation: InterpolationLinear,
		extrapOpts:    []interp.Option{interp.WithMethod(interp.MethodConstant)},
	}
}

// WithName sets the distribution name.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLabels sets per-column labels on a [MultiDistribution]. The
// label count must match the column count.
func WithLabels(labels []string) Option {
	copyLabels := append([]string(nil), labels...)

	return func(c *config) {
		c.labels = copyLabels
	}
}

// WithInterpolation selects the reconstruction between samples
// (default [InterpolationLinear]).
func WithInterpolation(k Interpolation) Option {
	return func(c *config) {
		c.interpolation = k
	}
}

// WithExtrapolation replaces the extrapolation configuration used
// beyond the sampled domain. The default holds the edge values
// (interp.MethodConstant).
func WithExtrapolation(opts ...interp.Option) Option {
	copyOpts := append([]interp.Option(nil), opts...)

	return func(c *config) {
		c.extrapOpts = copyOpts
	}
}

// Distribution is a spectral distribution: values tabulated over a
// strictly increasing wavelength grid, reconstructed between samples
// by the configured interpolation and beyond them by the configured
// extrapolation.
type Distribution struct {
	name   string
	wl     []float64
	values []float64
	cfg    config
	ex     *interp.Extrapolator
}

// NewDistribution creates a distribution over the given grid.
// wavelengths must be strictly increasing and len(wavelengths) ==
// len(values) >= 2. Both slices are copied.
func NewDistribution(wavelengths, values []float64, opts ...Option) (*Distribution, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return newDistribution(wavelengths, values, cfg)
}

// newDistribution builds a Distribution from an already-resolved
// configuration, copying both slices.
func newDistribution(wavelengths, values []float64, cfg config) (*Distribution, error) {
	wl := append([]float64(nil), wavelengths...)
	vals := append([]float64(nil), values...)

	ex, err := newReconstruction(wl, vals, cfg)
	if err != nil {
		return nil, err
	}

	return &Distribution{
		name:   cfg.name,
		wl:     wl,
		values: vals,
		cfg:    cfg,
		ex:     ex,
	}, nil
}

func newReconstruction(wl, values []float64, cfg config) (*interp.Extrapolator, error) {
	var (
		in  interp.Interpolator
		err error
	)

	switch cfg.interpolation {
	case InterpolationLinear:
		in, err = interp.NewLinear(wl, values)
	case InterpolationHermite:
		in, err = interp.NewHermite(wl, values)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownInterpolation, int(cfg.interpolation))
	}
	if err != nil {
		return nil, err
	}

	return interp.New(in, cfg.extrapOpts...)
}

// Name returns the distribution name.
func (d *Distribution) Name() string { return d.name }

// SetName replaces the distribution name.
func (d *Distribution) SetName(name string) {
	d.name = name
	d.cfg.name = name
}

// Len returns the number of samples.
func (d *Distribution) Len() int { return len(d.wl) }

// Wavelengths returns a copy of the wavelength grid.
func (d *Distribution) Wavelengths() []float64 {
	return append([]float64(nil), d.wl...)
}

// Values returns a copy of the tabulated values.
func (d *Distribution) Values() []float64 {
	return append([]float64(nil), d.values...)
}

// Interpolation returns the configured reconstruction kind.
func (d *Distribution) Interpolation() Interpolation { return d.cfg.interpolation }

// Shape recovers the uniform grid underlying the distribution. The
// second return is false when the grid spacing is not uniform.
func (d *Distribution) Shape() (Shape, bool) {
	step := d.wl[1] - d.wl[0]
	for i := 2; i < len(d.wl); i++ {
		if diff := d.wl[i] - d.wl[i-1]; diff < step-gridEps || diff > step+gridEps {
			return Shape{}, false
		}
	}

	return Shape{Start: d.wl[0], End: d.wl[len(d.wl)-1], Interval: step}, true
}

// At returns the distribution value at wl, interpolating between
// samples and extrapolating beyond them.
func (d *Distribution) At(wl float64) float64 {
	return d.ex.Evaluate(wl)
}

// Sample returns At applied to every element of wls.
func (d *Distribution) Sample(wls []float64) []float64 {
	return d.ex.EvaluateAll(wls)
}

// Align resamples the distribution onto the given shape, keeping the
// name and reconstruction configuration.
func (d *Distribution) Align(shape Shape) (*Distribution, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	grid := shape.Wavelengths()

	return newDistribution(grid, d.ex.EvaluateAll(grid), d.cfg)
}

// Add returns a new distribution with other's values added. Both
// distributions must share the same wavelength grid.
func (d *Distribution) Add(other *Distribution) (*Distribution, error) {
	if err := d.sameGrid(other); err != nil {
		return nil, err
	}

	out := append([]float64(nil), d.values...)
	vecmath.AddBlockInPlace(out, other.values)

	return newDistribution(d.wl, out, d.cfg)
}

// Mul returns a new distribution with values multiplied element-wise.
// Both distributions must share the same wavelength grid.
func (d *Distribution) Mul(other *Distribution) (*Distribution, error) {
	if err := d.sameGrid(other); err != nil {
		return nil, err
	}

	out := make([]float64, len(d.values))
	vecmath.MulBlock(out, d.values, other.values)

	return newDistribution(d.wl, out, d.cfg)
}

// Scale returns a new distribution with every value multiplied by k.
func (d *Distribution) Scale(k float64) *Distribution {
	out := make([]float64, len(d.values))
	vecmath.ScaleBlock(out, d.values, k)

	// The grid is unchanged, so reconstruction cannot fail.
	scaled, err := newDistribution(d.wl, out, d.cfg)
	if err != nil {
		panic(fmt.Sprintf("spectral: rescaling broke reconstruction: %v", err))
	}

	return scaled
}

// Normalize returns a new distribution scaled so its maximum absolute
// value equals targetPeak. A distribution of all zeros is returned
// unchanged.
func (d *Distribution) Normalize(targetPeak float64) (*Distribution, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("spectral: normalize target peak must be >= 0: %v", targetPeak)
	}

	maxAbs := 0.0
	for _, v := range d.values {
		av := v
		if av < 0 {
			av = -av
		}
		if av > maxAbs {
			maxAbs = av
		}
	}

	if maxAbs == 0 {
		return d.Scale(1), nil
	}

	return d.Scale(targetPeak / maxAbs), nil
}

func (d *Distribution) sameGrid(other *Distribution) error {
	if len(d.wl) != len(other.wl) {
		return fmt.Errorf("%w: %d vs %d samples", ErrGridMismatch, len(d.wl), len(other.wl))
	}
	for i := range d.wl {
		if d.wl[i] != other.wl[i] {
			return fmt.Errorf("%w: index %d: %v vs %v", ErrGridMismatch, i, d.wl[i], other.wl[i])
		}
	}
	return nil
}
