package spectral

import (
	"github.com/cwbudde/algo-colour/colour/interp"
)

// Analysis holds numerically measured properties of a distribution.
type Analysis struct {
	// PeakWavelength is the position of the maximum, refined by a
	// parabolic fit through the neighbouring samples.
	PeakWavelength float64

	// PeakValue is the refined maximum value.
	PeakValue float64

	// FWHM is the full width at half maximum. Zero when the half
	// level is never crossed on either flank.
	FWHM float64

	// Centroid is the value-weighted mean wavelength.
	Centroid float64
}

// Analyze measures peak position, width and centroid of the tabulated
// values. Distributions whose values sum to zero have no centroid and
// return [ErrAllZero].
func Analyze(d *Distribution) (Analysis, error) {
	wl, v := d.wl, d.values

	sum := 0.0
	weighted := 0.0
	peak := 0
	for i, x := range v {
		sum += x
		weighted += x * wl[i]
		if x > v[peak] {
			peak = i
		}
	}
	if sum == 0 {
		return Analysis{}, ErrAllZero
	}

	peakX, peakV := refinePeak(wl, v, peak)

	return Analysis{
		PeakWavelength: peakX,
		PeakValue:      peakV,
		FWHM:           fullWidth(wl, v, peak, peakV/2),
		Centroid:       weighted / sum,
	}, nil
}

// refinePeak fits a parabola through the discrete maximum and its two
// neighbours. Edge maxima and flat tops return the grid sample.
func refinePeak(wl, v []float64, i int) (float64, float64) {
	if i == 0 || i == len(v)-1 {
		return wl[i], v[i]
	}

	denom := v[i-1] - 2*v[i] + v[i+1]
	if denom == 0 {
		return wl[i], v[i]
	}

	delta := 0.5 * (v[i-1] - v[i+1]) / denom

	return wl[i] + delta*(wl[i+1]-wl[i]), v[i] - 0.25*(v[i-1]-v[i+1])*delta
}

// fullWidth walks outward from the peak on both flanks and linearly
// interpolates the positions where the values drop through level.
func fullWidth(wl, v []float64, peak int, level float64) float64 {
	left, okLeft := 0.0, false
	for i := peak; i > 0; i-- {
		if v[i-1] < level && v[i] >= level {
			left, okLeft = crossing(wl[i-1], wl[i], v[i-1], v[i], level), true
			break
		}
	}

	right, okRight := 0.0, false
	for i := peak; i < len(v)-1; i++ {
		if v[i+1] < level && v[i] >= level {
			right, okRight = crossing(wl[i], wl[i+1], v[i], v[i+1], level), true
			break
		}
	}

	if !okLeft || !okRight {
		return 0
	}

	return right - left
}

// crossing interpolates the position where the segment (x0,y0)-(x1,y1)
// passes through level.
func crossing(x0, x1, y0, y1, level float64) float64 {
	t := interp.SafeDiv(level-y0, y1-y0)

	return x0 + t*(x1-x0)
}
