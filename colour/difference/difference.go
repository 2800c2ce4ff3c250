package difference

import "math"

// Lab is a colour in CIE L*a*b* coordinates.
type Lab struct {
	L float64
	A float64
	B float64
}

// Chroma returns C*ab, the distance from the neutral axis.
func (c Lab) Chroma() float64 {
	return math.Hypot(c.A, c.B)
}

// Hue returns h_ab, the hue angle in degrees within [0, 360).
func (c Lab) Hue() float64 {
	h := radToDeg(math.Atan2(c.B, c.A))
	if h < 0 {
		h += 360
	}

	return h
}

// CIE1976 returns the CIE 1976 colour difference, the Euclidean
// distance between the two colours.
func CIE1976(a, b Lab) float64 {
	dL := a.L - b.L
	dA := a.A - b.A
	dB := a.B - b.B

	return math.Sqrt(dL*dL + dA*dA + dB*dB)
}

// CIE1994Option configures [CIE1994].
type CIE1994Option func(*cie1994Config)

type cie1994Config struct {
	kL, k1, k2 float64
}

func defaultCIE1994Config() cie1994Config {
	// Textile weights.
	return cie1994Config{kL: 2, k1: 0.048, k2: 0.014}
}

// WithGraphicArts selects the graphic-arts weights (kL = 1, K1 = 0.045,
// K2 = 0.015) instead of the textile default.
func WithGraphicArts() CIE1994Option {
	return func(c *cie1994Config) {
		c.kL = 1
		c.k1 = 0.045
		c.k2 = 0.015
	}
}

// CIE1994 returns the CIE 1994 colour difference. The weighting
// functions use the chroma of the first colour only, so the metric is
// asymmetric: pass the reference colour first.
func CIE1994(ref, sample Lab, opts ...CIE1994Option) float64 {
	cfg := defaultCIE1994Config()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	c1 := ref.Chroma()
	c2 := sample.Chroma()

	sC := 1 + cfg.k1*c1
	sH := 1 + cfg.k2*c1

	dL := ref.L - sample.L
	dC := c1 - c2
	dA := ref.A - sample.A
	dB := ref.B - sample.B

	l := dL / cfg.kL
	c := dC / sC
	h2 := hueDelta2(dA, dB, dC) / (sH * sH)

	return math.Sqrt(l*l + c*c + h2)
}

const pow25To7 = 6103515625 // 25^7

// CIE2000 returns the CIEDE2000 colour difference with the parametric
// weights kL = kC = kH = 1.
func CIE2000(a, b Lab) float64 {
	c1 := a.Chroma()
	c2 := b.Chroma()

	cBar := 0.5 * (c1 + c2)
	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25To7)))

	a1 := (1 + g) * a.A
	a2 := (1 + g) * b.A
	c1p := math.Hypot(a1, a.B)
	c2p := math.Hypot(a2, b.B)

	h1 := huePrime(a1, a.B)
	h2 := huePrime(a2, b.B)

	// Hue difference, wrapped into (-180, 180]. A neutral colour on
	// either side carries no hue information.
	var dh float64
	if c1p*c2p != 0 {
		dh = h2 - h1
		switch {
		case dh > 180:
			dh -= 360
		case dh < -180:
			dh += 360
		}
	}
	dH := 2 * math.Sqrt(c1p*c2p) * math.Sin(degToRad(dh/2))

	lBar := 0.5 * (a.L + b.L)
	cBarP := 0.5 * (c1p + c2p)

	// Mean hue, picked on the shorter arc between the two angles.
	hBar := h1 + h2
	if c1p*c2p != 0 {
		switch {
		case math.Abs(h1-h2) <= 180:
			hBar = 0.5 * hBar
		case hBar < 360:
			hBar = 0.5 * (hBar + 360)
		default:
			hBar = 0.5 * (hBar - 360)
		}
	}

	t := 1 - 0.17*math.Cos(degToRad(hBar-30)) +
		0.24*math.Cos(degToRad(2*hBar)) +
		0.32*math.Cos(degToRad(3*hBar+6)) -
		0.20*math.Cos(degToRad(4*hBar-63))

	dTheta := 30 * math.Exp(-((hBar-275)/25)*((hBar-275)/25))

	cBarP7 := math.Pow(cBarP, 7)
	rC := 2 * math.Sqrt(cBarP7/(cBarP7+pow25To7))
	rT := -math.Sin(degToRad(2*dTheta)) * rC

	dL50 := lBar - 50
	sL := 1 + 0.015*dL50*dL50/math.Sqrt(20+dL50*dL50)
	sC := 1 + 0.045*cBarP
	sH := 1 + 0.015*cBarP*t

	l := (b.L - a.L) / sL
	c := (c2p - c1p) / sC
	h := dH / sH

	return math.Sqrt(l*l + c*c + h*h + rT*c*h)
}

// CMCOption configures [CMC].
type CMCOption func(*cmcConfig)

type cmcConfig struct {
	lightness float64
	chroma    float64
}

func defaultCMCConfig() cmcConfig {
	// The 2:1 acceptability ratio.
	return cmcConfig{lightness: 2, chroma: 1}
}

// WithLightness sets the lightness weight l (default 2).
func WithLightness(l float64) CMCOption {
	return func(c *cmcConfig) {
		c.lightness = l
	}
}

// WithChroma sets the chroma weight c (default 1).
func WithChroma(chroma float64) CMCOption {
	return func(c *cmcConfig) {
		c.chroma = chroma
	}
}

// CMC returns the CMC l:c colour difference. The chroma and hue of the
// first colour drive the weighting functions, so pass the reference
// colour first.
func CMC(ref, sample Lab, opts ...CMCOption) float64 {
	cfg := defaultCMCConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	c1 := ref.Chroma()
	c2 := sample.Chroma()

	sl := 0.511
	if ref.L >= 16 {
		sl = 0.040975 * ref.L / (1 + 0.01765*ref.L)
	}
	sc := 0.0638*c1/(1+0.0131*c1) + 0.638

	h1 := ref.Hue()
	var t float64
	if h1 >= 164 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos(degToRad(h1+168)))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos(degToRad(h1+35)))
	}

	c4 := c1 * c1 * c1 * c1
	f := math.Sqrt(c4 / (c4 + 1900))
	sh := sc * (f*t + 1 - f)

	dL := ref.L - sample.L
	dC := c1 - c2
	dA := ref.A - sample.A
	dB := ref.B - sample.B

	l := dL / (cfg.lightness * sl)
	c := dC / (cfg.chroma * sc)
	h2 := hueDelta2(dA, dB, dC) / (sh * sh)

	return math.Sqrt(l*l + c*c + h2)
}

// huePrime returns the hue angle of (a', b) in degrees within
// [0, 360), zero on the neutral axis.
func huePrime(ap, b float64) float64 {
	if ap == 0 && b == 0 {
		return 0
	}

	h := radToDeg(math.Atan2(b, ap))
	if h < 0 {
		h += 360
	}

	return h
}

// hueDelta2 returns the squared hue component of a Lab difference.
// Float error can push the radicand below zero; it is clamped.
func hueDelta2(dA, dB, dC float64) float64 {
	d := dA*dA + dB*dB - dC*dC
	if d < 0 {
		return 0
	}

	return d
}

func degToRad(d float64) float64 {
	return d * (math.Pi / 180)
}

func radToDeg(r float64) float64 {
	return r * (180 / math.Pi)
}
