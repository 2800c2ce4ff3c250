package transfer

import "math"

// DaVinci Intermediate curve constants from the Blackmagic Design
// white paper.
const (
	davinciA      = 0.0075
	davinciB      = 7.0
	davinciC      = 0.07329248
	davinciM      = 10.44426855
	davinciLinCut = 0.00262409
	davinciLogCut = 0.02740668
)

// DaVinciIntermediateOETF encodes linear scene light as a DaVinci
// Intermediate log signal. Values at or below the linear cut, including
// negatives, stay on the linear segment.
func DaVinciIntermediateOETF(l float64) float64 {
	if l <= davinciLinCut {
		return l * davinciM
	}

	return (math.Log2(l+davinciA) + davinciB) * davinciC
}

// DaVinciIntermediateOETFInverse decodes a DaVinci Intermediate log
// signal back to linear scene light.
func DaVinciIntermediateOETFInverse(v float64) float64 {
	if v <= davinciLogCut {
		return v / davinciM
	}

	return math.Exp2(v/davinciC-davinciB) - davinciA
}
