package spectral

import (
	"fmt"
	"strconv"
)

// MultiDistribution is a set of spectral distributions sharing one
// wavelength grid, one value column per labelled channel.
type MultiDistribution struct {
	name   string
	wl     []float64
	cols   []*Distribution
	labels []string
}

// NewMultiDistribution creates a multi-channel distribution. Every
// column must have one value per wavelength; labels default to
// "0", "1", … and can be replaced with [WithLabels].
func NewMultiDistribution(wavelengths []float64, columns [][]float64, opts ...Option) (*MultiDistribution, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validateColumns(wavelengths, columns); err != nil {
		return nil, err
	}

	labels := cfg.labels
	if labels == nil {
		labels = make([]string, len(columns))
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}
	if len(labels) != len(columns) {
		return nil, fmt.Errorf("%w: %d labels for %d columns", ErrLabelCount, len(labels), len(columns))
	}

	cols := make([]*Distribution, len(columns))
	for i, col := range columns {
		colCfg := cfg
		colCfg.name = labels[i]
		colCfg.labels = nil

		d, err := newDistribution(wavelengths, col, colCfg)
		if err != nil {
			return nil, err
		}

		cols[i] = d
	}

	return &MultiDistribution{
		name:   cfg.name,
		wl:     append([]float64(nil), wavelengths...),
		cols:   cols,
		labels: labels,
	}, nil
}

// Name returns the distribution name.
func (m *MultiDistribution) Name() string { return m.name }

// SetName replaces the distribution name.
func (m *MultiDistribution) SetName(name string) { m.name = name }

// Len returns the number of samples per channel.
func (m *MultiDistribution) Len() int { return len(m.wl) }

// ColumnCount returns the number of channels.
func (m *MultiDistribution) ColumnCount() int { return len(m.cols) }

// Labels returns a copy of the channel labels.
func (m *MultiDistribution) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Wavelengths returns a copy of the shared wavelength grid.
func (m *MultiDistribution) Wavelengths() []float64 {
	return append([]float64(nil), m.wl...)
}

// Column returns channel i as a distribution named by its label.
func (m *MultiDistribution) Column(i int) (*Distribution, error) {
	if i < 0 || i >= len(m.cols) {
		return nil, fmt.Errorf("%w: %d of %d", ErrColumnIndex, i, len(m.cols))
	}

	return m.cols[i], nil
}

// Values returns the tabulated values row-major: one row per
// wavelength, one entry per channel.
func (m *MultiDistribution) Values() [][]float64 {
	out := make([][]float64, len(m.wl))
	for i := range out {
		row := make([]float64, len(m.cols))
		for j, col := range m.cols {
			row[j] = col.values[i]
		}
		out[i] = row
	}

	return out
}

// At returns the per-channel values at wl, interpolating and
// extrapolating like [Distribution.At].
func (m *MultiDistribution) At(wl float64) []float64 {
	out := make([]float64, len(m.cols))
	for j, col := range m.cols {
		out[j] = col.At(wl)
	}

	return out
}
