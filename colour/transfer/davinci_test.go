package transfer

import (
	"math"
	"testing"
)

func requireNear(t *testing.T, got, want, tol float64) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf("expected %v, got %v (tolerance %v)", want, got, tol)
	}
}

func TestDaVinciIntermediateOETF(t *testing.T) {
	tests := []struct {
		l, want float64
	}{
		{-0.01, -0.104442685500000},
		{0, 0},
		{0.18, 0.336043272384855},
		{1, 0.513837441116225},
		{100, 0.999999987016872},
	}
	for _, tt := range tests {
		requireNear(t, DaVinciIntermediateOETF(tt.l), tt.want, 1e-7)
	}
}

func TestDaVinciIntermediateOETFInverse(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-0.104442685500000, -0.01},
		{0, 0},
		{0.336043272384855, 0.18},
		{0.513837441116225, 1},
		{0.999999987016872, 100},
	}
	for _, tt := range tests {
		requireNear(t, DaVinciIntermediateOETFInverse(tt.v), tt.want, 1e-6)
	}
}

func TestDaVinciIntermediateRoundTrip(t *testing.T) {
	// Values sit clear of the segment cut, where the published
	// constants leave a tiny seam.
	for _, l := range []float64{-0.01, 0, 0.0005, 0.002, 0.003, 0.18, 1, 31.2, 100} {
		v := DaVinciIntermediateOETF(l)
		got := DaVinciIntermediateOETFInverse(v)

		requireNear(t, got, l, 1e-12*math.Max(1, math.Abs(l)))
	}
}

func TestDaVinciIntermediateSegments(t *testing.T) {
	// Below the cut the curve is exactly linear.
	requireNear(t, DaVinciIntermediateOETF(0.002), 0.002*davinciM, 0)

	// Above the cut it is logarithmic, so doubling the input adds a
	// near constant step in the encoded signal.
	step1 := DaVinciIntermediateOETF(4) - DaVinciIntermediateOETF(2)
	step2 := DaVinciIntermediateOETF(8) - DaVinciIntermediateOETF(4)
	requireNear(t, step1, step2, 1e-3)
}

func BenchmarkDaVinciIntermediateOETF(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = DaVinciIntermediateOETF(0.18)
	}
}
