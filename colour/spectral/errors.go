package spectral

import (
	"errors"
	"fmt"
)

// Errors returned by spectral constructors and operations.
var (
	ErrInvalidShape         = errors.New("spectral: invalid shape")
	ErrEmptyPeaks           = errors.New("spectral: at least one peak wavelength required")
	ErrEmptyBroadcast       = errors.New("spectral: cannot broadcast an empty slice")
	ErrGridMismatch         = errors.New("spectral: wavelength grids differ")
	ErrNoColumns            = errors.New("spectral: at least one column required")
	ErrColumnLength         = errors.New("spectral: column length must match wavelength count")
	ErrColumnIndex          = errors.New("spectral: column index out of range")
	ErrLabelCount           = errors.New("spectral: label count must match column count")
	ErrUnknownInterpolation = errors.New("spectral: unknown interpolation kind")
	ErrUnknownMethod        = errors.New("spectral: unknown generator method")
	ErrEmptyDistribution    = errors.New("spectral: empty distribution")
	ErrKernelParams         = errors.New("spectral: invalid smoothing kernel parameters")
	ErrAllZero              = errors.New("spectral: values sum to zero")
)

func validateShape(s Shape) error {
	if s.Interval <= 0 {
		return fmt.Errorf("%w: interval must be > 0, got %v", ErrInvalidShape, s.Interval)
	}
	if s.Start > s.End {
		return fmt.Errorf("%w: start %v exceeds end %v", ErrInvalidShape, s.Start, s.End)
	}
	if !isFinite(s.Start) || !isFinite(s.End) || !isFinite(s.Interval) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidShape)
	}
	return nil
}

func validateColumns(wavelengths []float64, columns [][]float64) error {
	if len(columns) == 0 {
		return ErrNoColumns
	}
	for i, col := range columns {
		if len(col) != len(wavelengths) {
			return fmt.Errorf("%w: column %d has %d values, grid has %d", ErrColumnLength, i, len(col), len(wavelengths))
		}
	}
	return nil
}
