package transfer

import "math"

// LegalToFull converts a normalised legal range code value to full
// range at the given bit depth.
func LegalToFull(v float64, bitDepth int) float64 {
	maxCode := math.Ldexp(1, bitDepth) - 1
	black := math.Ldexp(16, bitDepth-8)
	span := math.Ldexp(219, bitDepth-8)

	return (v*maxCode - black) / span
}

// FullToLegal converts a normalised full range code value to legal
// range at the given bit depth.
func FullToLegal(v float64, bitDepth int) float64 {
	maxCode := math.Ldexp(1, bitDepth) - 1
	black := math.Ldexp(16, bitDepth-8)
	span := math.Ldexp(219, bitDepth-8)

	return (v*span + black) / maxCode
}
