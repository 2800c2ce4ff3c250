package difference

import (
	"fmt"
	"strings"
)

// Method identifies a colour difference formula.
type Method int

const (
	// MethodCIE1976 is the Euclidean Lab distance.
	MethodCIE1976 Method = iota

	// MethodCIE1994 is the CIE 1994 formula with textile weights.
	MethodCIE1994

	// MethodCIE2000 is the CIEDE2000 formula.
	MethodCIE2000

	// MethodCMC is the CMC formula with the 2:1 ratio.
	MethodCMC
)

// String returns the method name as accepted by [ParseMethod].
func (m Method) String() string {
	switch m {
	case MethodCIE1976:
		return "CIE 1976"
	case MethodCIE1994:
		return "CIE 1994"
	case MethodCIE2000:
		return "CIE 2000"
	case MethodCMC:
		return "CMC"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a formula name to its [Method] value. Matching
// is case-insensitive; unknown names return [ErrUnknownMethod].
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "cie 1976", "cie1976":
		return MethodCIE1976, nil
	case "cie 1994", "cie1994":
		return MethodCIE1994, nil
	case "cie 2000", "cie2000", "ciede2000":
		return MethodCIE2000, nil
	case "cmc":
		return MethodCMC, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Delta computes the colour difference between two Lab colours with
// the given formula and its default weights.
func Delta(m Method, a, b Lab) (float64, error) {
	switch m {
	case MethodCIE1976:
		return CIE1976(a, b), nil
	case MethodCIE1994:
		return CIE1994(a, b), nil
	case MethodCIE2000:
		return CIE2000(a, b), nil
	case MethodCMC:
		return CMC(a, b), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}
