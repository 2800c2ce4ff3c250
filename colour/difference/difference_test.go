package difference

import (
	"errors"
	"math"
	"testing"
)

// The three reference pairs share L = 100, exercising chroma and hue
// terms in isolation.
var (
	labRef = Lab{100, 21.57210357, 272.22819350}

	labFar  = Lab{100, 426.67945353, 72.39590835}
	labNear = Lab{100, 74.05216981, 276.45318193}
	labOpp  = Lab{100, 8.32281957, -73.58297716}
)

func requireNear(t *testing.T, got, want, tol float64) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tolerance %v)", got, want, tol)
	}
}

func TestCIE1976(t *testing.T) {
	euclidean := func(a, b Lab) float64 {
		return math.Sqrt((a.L-b.L)*(a.L-b.L) + (a.A-b.A)*(a.A-b.A) + (a.B-b.B)*(a.B-b.B))
	}

	for _, pair := range [][2]Lab{{labRef, labFar}, {labRef, labNear}, {labRef, labOpp}} {
		requireNear(t, CIE1976(pair[0], pair[1]), euclidean(pair[0], pair[1]), 1e-12)
	}

	if got := CIE1976(labRef, labRef); got != 0 {
		t.Errorf("distance to self = %v, want 0", got)
	}
	requireNear(t, CIE1976(labRef, labFar), CIE1976(labFar, labRef), 0)
}

func TestCIE1994(t *testing.T) {
	tests := []struct {
		name   string
		sample Lab
		opts   []CIE1994Option
		want   float64
	}{
		{"textiles far", labFar, nil, 88.3355530575},
		{"textiles near", labNear, nil, 10.61265789},
		{"textiles opposite", labOpp, nil, 60.3686872611},
		{"graphic arts far", labFar, []CIE1994Option{WithGraphicArts()}, 83.7792255009},
		{"graphic arts near", labNear, []CIE1994Option{WithGraphicArts()}, 10.0539319546},
		{"graphic arts opposite", labOpp, []CIE1994Option{WithGraphicArts()}, 57.5354537067},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireNear(t, CIE1994(labRef, tt.sample, tt.opts...), tt.want, 1e-7)
		})
	}
}

func TestCIE1994Identity(t *testing.T) {
	if got := CIE1994(labRef, labRef); got != 0 {
		t.Errorf("difference to self = %v, want 0", got)
	}
}

func TestCIE2000(t *testing.T) {
	tests := []struct {
		name   string
		sample Lab
		want   float64
	}{
		{"far", labFar, 94.0356490267},
		{"near", labNear, 14.8790641937},
		{"opposite", labOpp, 68.2309487895},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireNear(t, CIE2000(labRef, tt.sample), tt.want, 1e-7)
			// The formula is symmetric in its arguments.
			requireNear(t, CIE2000(tt.sample, labRef), tt.want, 1e-7)
		})
	}
}

// TestCIE2000Sharma2004 checks the published 34-pair reference set of
// Sharma, Wu and Dalal (2005), which exercises the hue-wrap, neutral
// and rotation-term branches.
func TestCIE2000Sharma2004(t *testing.T) {
	lab1 := []Lab{
		{50.0000, 2.6772, -79.7751},
		{50.0000, 3.1571, -77.2803},
		{50.0000, 2.8361, -74.0200},
		{50.0000, -1.3802, -84.2814},
		{50.0000, -1.1848, -84.8006},
		{50.0000, -0.9009, -85.5211},
		{50.0000, 0.0000, 0.0000},
		{50.0000, -1.0000, 2.0000},
		{50.0000, 2.4900, -0.0010},
		{50.0000, 2.4900, -0.0010},
		{50.0000, 2.4900, -0.0010},
		{50.0000, 2.4900, -0.0010},
		{50.0000, -0.0010, 2.4900},
		{50.0000, -0.0010, 2.4900},
		{50.0000, -0.0010, 2.4900},
		{50.0000, 2.5000, 0.0000},
		{50.0000, 2.5000, 0.0000},
		{50.0000, 2.5000, 0.0000},
		{50.0000, 2.5000, 0.0000},
		{50.0000, 2.5000, 0.0000},
		{50.0000, 2.5000, 0.0000},
		{50.0000, 2.5000, 0.0000},
		{50.0000, 2.5000, 0.0000},
		{50.0000, 2.5000, 0.0000},
		{60.2574, -34.0099, 36.2677},
		{63.0109, -31.0961, -5.8663},
		{61.2901, 3.7196, -5.3901},
		{35.0831, -44.1164, 3.7933},
		{22.7233, 20.0904, -46.6940},
		{36.4612, 47.8580, 18.3852},
		{90.8027, -2.0831, 1.4410},
		{90.9257, -0.5406, -0.9208},
		{6.7747, -0.2908, -2.4247},
		{2.0776, 0.0795, -1.1350},
	}

	lab2 := []Lab{
		{50.0000, 0.0000, -82.7485},
		{50.0000, 0.0000, -82.7485},
		{50.0000, 0.0000, -82.7485},
		{50.0000, 0.0000, -82.7485},
		{50.0000, 0.0000, -82.7485},
		{50.0000, 0.0000, -82.7485},
		{50.0000, -1.0000, 2.0000},
		{50.0000, 0.0000, 0.0000},
		{50.0000, -2.4900, 0.0009},
		{50.0000, -2.4900, 0.0010},
		{50.0000, -2.4900, 0.0011},
		{50.0000, -2.4900, 0.0012},
		{50.0000, 0.0009, -2.4900},
		{50.0000, 0.0010, -2.4900},
		{50.0000, 0.0011, -2.4900},
		{50.0000, 0.0000, -2.5000},
		{73.0000, 25.0000, -18.0000},
		{61.0000, -5.0000, 29.0000},
		{56.0000, -27.0000, -3.0000},
		{58.0000, 24.0000, 15.0000},
		{50.0000, 3.1736, 0.5854},
		{50.0000, 3.2972, 0.0000},
		{50.0000, 1.8634, 0.5757},
		{50.0000, 3.2592, 0.3350},
		{60.4626, -34.1751, 39.4387},
		{62.8187, -29.7946, -4.0864},
		{61.4292, 2.2480, -4.9620},
		{35.0232, -40.0716, 1.5901},
		{23.0331, 14.9730, -42.5619},
		{36.2715, 50.5065, 21.2231},
		{91.1528, -1.6435, 0.0447},
		{88.6381, -0.8985, -0.7239},
		{5.8714, -0.0985, -2.2286},
		{0.9033, -0.0636, -0.5514},
	}

	want := []float64{
		2.0425, 2.8615, 3.4412, 1.0000, 1.0000, 1.0000, 2.3669, 2.3669,
		7.1792, 7.1792, 7.2195, 7.2195, 4.8045, 4.8045, 4.7461, 4.3065,
		27.1492, 22.8977, 31.9030, 19.4535, 1.0000, 1.0000, 1.0000, 1.0000,
		1.2644, 1.2630, 1.8731, 1.8645, 2.0373, 1.4146, 1.4441, 1.5381,
		0.6377, 0.9082,
	}

	for i := range want {
		if got := CIE2000(lab1[i], lab2[i]); math.Abs(got-want[i]) > 1e-4 {
			t.Errorf("pair %d: CIE2000 = %.5f, want %.4f", i+1, got, want[i])
		}
	}
}

func TestCMC(t *testing.T) {
	tests := []struct {
		name   string
		sample Lab
		want   float64
	}{
		{"far", labFar, 172.704771287},
		{"near", labNear, 20.5973271674},
		{"opposite", labOpp, 121.718414791},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireNear(t, CMC(labRef, tt.sample), tt.want, 1e-7)

			// The reference pairs share L, so the lightness weight has
			// no effect.
			requireNear(t, CMC(labRef, tt.sample, WithLightness(1)), tt.want, 1e-7)
		})
	}
}

func TestCMCWeights(t *testing.T) {
	a := Lab{40, 10, 20}
	b := Lab{55, 12, 18}

	// Halving the lightness weight grows the lightness term.
	if CMC(a, b, WithLightness(1)) <= CMC(a, b) {
		t.Error("l = 1 did not increase the difference for a lightness shift")
	}
	// Doubling the chroma weight can only shrink the difference.
	if CMC(a, b, WithChroma(2)) >= CMC(a, b) {
		t.Error("c = 2 did not decrease the difference")
	}
}

func TestLabChromaHue(t *testing.T) {
	c := Lab{50, 3, 4}
	requireNear(t, c.Chroma(), 5, 1e-12)

	requireNear(t, Lab{50, 1, 1}.Hue(), 45, 1e-12)
	requireNear(t, Lab{50, -1, 0}.Hue(), 180, 1e-12)
	requireNear(t, Lab{50, 0, -1}.Hue(), 270, 1e-12)
}

func TestDelta(t *testing.T) {
	for _, m := range []Method{MethodCIE1976, MethodCIE1994, MethodCIE2000, MethodCMC} {
		got, err := Delta(m, labRef, labFar)
		if err != nil {
			t.Fatalf("Delta(%v) failed: %v", m, err)
		}
		if got <= 0 {
			t.Errorf("Delta(%v) = %v, want > 0", m, got)
		}
	}

	want := CIE2000(labRef, labFar)
	got, err := Delta(MethodCIE2000, labRef, labFar)
	if err != nil {
		t.Fatalf("Delta failed: %v", err)
	}
	requireNear(t, got, want, 0)

	if _, err := Delta(Method(42), labRef, labFar); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("unknown method: error = %v, want ErrUnknownMethod", err)
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{"CIE 1976", MethodCIE1976},
		{"cie1976", MethodCIE1976},
		{"CIE 1994", MethodCIE1994},
		{"CIE 2000", MethodCIE2000},
		{"ciede2000", MethodCIE2000},
		{"CMC", MethodCMC},
		{"cmc", MethodCMC},
	}

	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if err != nil {
			t.Errorf("ParseMethod(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMethod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseMethod("euclid"); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("unknown name: error = %v, want ErrUnknownMethod", err)
	}

	for _, m := range []Method{MethodCIE1976, MethodCIE1994, MethodCIE2000, MethodCMC} {
		got, err := ParseMethod(m.String())
		if err != nil || got != m {
			t.Errorf("round trip of %v: got %v, err %v", m, got, err)
		}
	}
}

func BenchmarkCIE2000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = CIE2000(labRef, labFar)
	}
}
