package yellowness

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by the yellowness package.
var (
	ErrUnknownMethod     = errors.New("yellowness: unknown method")
	ErrUnknownObserver   = errors.New("yellowness: unknown observer")
	ErrUnknownIlluminant = errors.New("yellowness: unknown illuminant")
)

// XYZ is a colour in CIE XYZ tristimulus coordinates.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

// ASTMD1925 returns the ASTM D1925 yellowness index, defined for
// specimens illuminated by CIE illuminant C.
func ASTMD1925(c XYZ) float64 {
	return 100 * (1.28*c.X - 1.06*c.Z) / c.Y
}

// ASTME313Alternative returns the alternative ASTM E313 yellowness
// index, derived from the blue reflectance ratio Z/Y.
func ASTME313Alternative(c XYZ) float64 {
	return 100 * (1 - 0.847*c.Z/c.Y)
}

// Observer identifies a CIE standard observer.
type Observer int

const (
	// Observer1931 is the CIE 1931 2 degree standard observer.
	Observer1931 Observer = iota

	// Observer1964 is the CIE 1964 10 degree standard observer.
	Observer1964
)

// String returns the observer name as accepted by [ParseObserver].
func (o Observer) String() string {
	switch o {
	case Observer1931:
		return "CIE 1931 2 Degree Standard Observer"
	case Observer1964:
		return "CIE 1964 10 Degree Standard Observer"
	default:
		return fmt.Sprintf("Observer(%d)", int(o))
	}
}

// ParseObserver converts an observer name to its [Observer] value.
// Matching is case-insensitive; unknown names return
// [ErrUnknownObserver].
func ParseObserver(name string) (Observer, error) {
	switch strings.ToLower(name) {
	case "cie 1931 2 degree standard observer", "1931", "2 degree":
		return Observer1931, nil
	case "cie 1964 10 degree standard observer", "1964", "10 degree":
		return Observer1964, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownObserver, name)
	}
}

// Illuminant identifies a standard illuminant of the ASTM E313 weight
// table.
type Illuminant int

const (
	// IlluminantD65 is CIE standard illuminant D65.
	IlluminantD65 Illuminant = iota

	// IlluminantC is CIE standard illuminant C.
	IlluminantC
)

// String returns the illuminant name as accepted by [ParseIlluminant].
func (i Illuminant) String() string {
	switch i {
	case IlluminantD65:
		return "D65"
	case IlluminantC:
		return "C"
	default:
		return fmt.Sprintf("Illuminant(%d)", int(i))
	}
}

// ParseIlluminant converts an illuminant name to its [Illuminant]
// value. Matching is case-insensitive; unknown names return
// [ErrUnknownIlluminant].
func ParseIlluminant(name string) (Illuminant, error) {
	switch strings.ToLower(name) {
	case "d65":
		return IlluminantD65, nil
	case "c":
		return IlluminantC, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownIlluminant, name)
	}
}

// Coefficients holds the X and Z weights of the ASTM E313 formula.
type Coefficients struct {
	CX float64
	CZ float64
}

// E313Coefficients returns the ASTM E313 weights for an observer and
// illuminant combination.
func E313Coefficients(obs Observer, ill Illuminant) (Coefficients, error) {
	switch obs {
	case Observer1931:
		switch ill {
		case IlluminantC:
			return Coefficients{CX: 1.2769, CZ: 1.0592}, nil
		case IlluminantD65:
			return Coefficients{CX: 1.2985, CZ: 1.1335}, nil
		}
	case Observer1964:
		switch ill {
		case IlluminantC:
			return Coefficients{CX: 1.2871, CZ: 1.0781}, nil
		case IlluminantD65:
			return Coefficients{CX: 1.3013, CZ: 1.1498}, nil
		}
	default:
		return Coefficients{}, fmt.Errorf("%w: %d", ErrUnknownObserver, int(obs))
	}

	return Coefficients{}, fmt.Errorf("%w: %d", ErrUnknownIlluminant, int(ill))
}

// E313Option configures [ASTME313].
type E313Option func(*e313Config)

type e313Config struct {
	observer   Observer
	illuminant Illuminant
	coeffs     *Coefficients
}

func defaultE313Config() e313Config {
	return e313Config{observer: Observer1931, illuminant: IlluminantD65}
}

// WithObserver selects the standard observer (default [Observer1931]).
func WithObserver(obs Observer) E313Option {
	return func(c *e313Config) {
		c.observer = obs
	}
}

// WithIlluminant selects the illuminant (default [IlluminantD65]).
func WithIlluminant(ill Illuminant) E313Option {
	return func(c *e313Config) {
		c.illuminant = ill
	}
}

// WithCoefficients bypasses the standard table and uses the given
// weights directly.
func WithCoefficients(coeffs Coefficients) E313Option {
	return func(c *e313Config) {
		c.coeffs = &coeffs
	}
}

// ASTME313 returns the ASTM E313 yellowness index
//
//	YI = 100 (CX·X - CZ·Z) / Y
//
// with the weights of the configured observer and illuminant.
func ASTME313(c XYZ, opts ...E313Option) (float64, error) {
	cfg := defaultE313Config()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	coeffs := Coefficients{}
	if cfg.coeffs != nil {
		coeffs = *cfg.coeffs
	} else {
		var err error
		coeffs, err = E313Coefficients(cfg.observer, cfg.illuminant)
		if err != nil {
			return 0, err
		}
	}

	return 100 * (coeffs.CX*c.X - coeffs.CZ*c.Z) / c.Y, nil
}

// Method identifies a yellowness index formula.
type Method int

const (
	// MethodASTMD1925 is the ASTM D1925 index.
	MethodASTMD1925 Method = iota

	// MethodASTME313 is the ASTM E313 index with the default observer
	// and illuminant.
	MethodASTME313

	// MethodASTME313Alternative is the alternative ASTM E313 index.
	MethodASTME313Alternative
)

// String returns the method name as accepted by [ParseMethod].
func (m Method) String() string {
	switch m {
	case MethodASTMD1925:
		return "ASTM D1925"
	case MethodASTME313:
		return "ASTM E313"
	case MethodASTME313Alternative:
		return "ASTM E313 Alternative"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a formula name to its [Method] value. Matching
// is case-insensitive; unknown names return [ErrUnknownMethod].
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "astm d1925", "d1925":
		return MethodASTMD1925, nil
	case "astm e313", "e313":
		return MethodASTME313, nil
	case "astm e313 alternative", "e313 alternative":
		return MethodASTME313Alternative, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Yellowness computes the yellowness index of an XYZ colour with the
// given formula and its defaults.
func Yellowness(m Method, c XYZ) (float64, error) {
	switch m {
	case MethodASTMD1925:
		return ASTMD1925(c), nil
	case MethodASTME313:
		return ASTME313(c)
	case MethodASTME313Alternative:
		return ASTME313Alternative(c), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}
