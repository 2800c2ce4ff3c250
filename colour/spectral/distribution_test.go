package spectral

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-colour/colour/interp"
)

// almostEqual reports whether a and b differ by at most tol.
func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// requireNear fails the test when got and want differ by more than tol.
func requireNear(t *testing.T, got, want, tol float64) {
	t.Helper()

	if !almostEqual(got, want, tol) {
		t.Fatalf("got %v, want %v (tolerance %v)", got, want, tol)
	}
}

// requireNearSlice fails the test when any element pair differs by more
// than tol.
func requireNearSlice(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i], tol) {
			t.Fatalf("element %d: got %v, want %v (tolerance %v)", i, got[i], want[i], tol)
		}
	}
}

func mustDistribution(t *testing.T, wl, values []float64, opts ...Option) *Distribution {
	t.Helper()

	d, err := NewDistribution(wl, values, opts...)
	if err != nil {
		t.Fatalf("NewDistribution failed: %v", err)
	}

	return d
}

func TestNewDistributionValidation(t *testing.T) {
	tests := []struct {
		name    string
		wl      []float64
		values  []float64
		wantErr error
	}{
		{"single sample", []float64{500}, []float64{1}, interp.ErrTooFewSamples},
		{"length mismatch", []float64{400, 500}, []float64{1, 2, 3}, interp.ErrLengthMismatch},
		{"decreasing grid", []float64{500, 400}, []float64{1, 2}, interp.ErrNotIncreasing},
		{"repeated wavelength", []float64{400, 400, 500}, []float64{1, 2, 3}, interp.ErrNotIncreasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDistribution(tt.wl, tt.values)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewDistribution() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDistributionAt(t *testing.T) {
	d := mustDistribution(t, []float64{400, 500, 600}, []float64{1, 2, 3})

	tests := []struct {
		wl   float64
		want float64
	}{
		{400, 1},
		{450, 1.5},
		{600, 3},
		{350, 1}, // edge hold below the domain
		{700, 3}, // edge hold above the domain
	}

	for _, tt := range tests {
		requireNear(t, d.At(tt.wl), tt.want, 1e-12)
	}
}

func TestDistributionLinearExtrapolation(t *testing.T) {
	d := mustDistribution(t, []float64{400, 500, 600}, []float64{1, 2, 3},
		WithExtrapolation(interp.WithMethod(interp.MethodLinear)))

	requireNear(t, d.At(300), 0, 1e-12)
	requireNear(t, d.At(700), 4, 1e-12)
}

func TestDistributionHermite(t *testing.T) {
	d := mustDistribution(t, []float64{400, 500, 600}, []float64{0, 1, 0},
		WithInterpolation(InterpolationHermite))

	// Cubic reconstruction overshoots the straight chord.
	requireNear(t, d.At(450), 0.5625, 1e-12)

	if _, err := NewDistribution([]float64{400, 450, 600}, []float64{0, 1, 0},
		WithInterpolation(InterpolationHermite)); !errors.Is(err, interp.ErrNonUniform) {
		t.Errorf("hermite on non-uniform grid: error = %v, want ErrNonUniform", err)
	}
}

func TestDistributionUnknownInterpolation(t *testing.T) {
	_, err := NewDistribution([]float64{400, 500}, []float64{1, 2},
		WithInterpolation(Interpolation(42)))
	if !errors.Is(err, ErrUnknownInterpolation) {
		t.Errorf("error = %v, want ErrUnknownInterpolation", err)
	}
}

func TestDistributionCopiesInputs(t *testing.T) {
	wl := []float64{400, 500, 600}
	values := []float64{1, 2, 3}
	d := mustDistribution(t, wl, values)

	wl[1] = 0
	values[1] = 99

	requireNear(t, d.At(500), 2, 1e-12)

	got := d.Values()
	got[0] = -1
	requireNear(t, d.Values()[0], 1, 1e-12)
}

func TestDistributionName(t *testing.T) {
	d := mustDistribution(t, []float64{400, 500}, []float64{1, 2}, WithName("probe"))

	if d.Name() != "probe" {
		t.Errorf("Name() = %q, want %q", d.Name(), "probe")
	}

	d.SetName("renamed")
	if d.Name() != "renamed" {
		t.Errorf("Name() after SetName = %q, want %q", d.Name(), "renamed")
	}
}

func TestDistributionShape(t *testing.T) {
	d := mustDistribution(t, []float64{400, 410, 420, 430}, []float64{1, 2, 3, 4})

	s, ok := d.Shape()
	if !ok {
		t.Fatal("Shape() not recovered from a uniform grid")
	}
	if s != (Shape{Start: 400, End: 430, Interval: 10}) {
		t.Errorf("Shape() = %v", s)
	}

	irregular := mustDistribution(t, []float64{400, 500, 601}, []float64{1, 2, 3})
	if _, ok := irregular.Shape(); ok {
		t.Error("Shape() recovered from a non-uniform grid")
	}
}

func TestDistributionAlign(t *testing.T) {
	d := mustDistribution(t, []float64{400, 500, 600}, []float64{1, 2, 3}, WithName("ramp"))

	aligned, err := d.Align(Shape{Start: 400, End: 600, Interval: 50})
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}

	requireNearSlice(t, aligned.Values(), []float64{1, 1.5, 2, 2.5, 3}, 1e-12)

	if aligned.Name() != "ramp" {
		t.Errorf("Align dropped the name: %q", aligned.Name())
	}

	if _, err := d.Align(Shape{Start: 600, End: 400, Interval: 1}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Align with invalid shape: error = %v, want ErrInvalidShape", err)
	}
}

func TestDistributionArithmetic(t *testing.T) {
	a := mustDistribution(t, []float64{400, 500, 600}, []float64{1, 2, 3})
	b := mustDistribution(t, []float64{400, 500, 600}, []float64{10, 20, 30})

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	requireNearSlice(t, sum.Values(), []float64{11, 22, 33}, 1e-12)

	prod, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Mul failed: %v", err)
	}
	requireNearSlice(t, prod.Values(), []float64{10, 40, 90}, 1e-12)

	requireNearSlice(t, a.Scale(2).Values(), []float64{2, 4, 6}, 1e-12)

	// Operands stay untouched.
	requireNearSlice(t, a.Values(), []float64{1, 2, 3}, 0)
}

func TestDistributionGridMismatch(t *testing.T) {
	a := mustDistribution(t, []float64{400, 500, 600}, []float64{1, 2, 3})
	b := mustDistribution(t, []float64{400, 510, 600}, []float64{1, 2, 3})
	c := mustDistribution(t, []float64{400, 500}, []float64{1, 2})

	if _, err := a.Add(b); !errors.Is(err, ErrGridMismatch) {
		t.Errorf("Add with shifted grid: error = %v, want ErrGridMismatch", err)
	}
	if _, err := a.Mul(c); !errors.Is(err, ErrGridMismatch) {
		t.Errorf("Mul with shorter grid: error = %v, want ErrGridMismatch", err)
	}
}

func TestDistributionNormalize(t *testing.T) {
	d := mustDistribution(t, []float64{400, 500, 600}, []float64{1, -4, 2})

	n, err := d.Normalize(1)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	requireNearSlice(t, n.Values(), []float64{0.25, -1, 0.5}, 1e-12)

	if _, err := d.Normalize(-1); err == nil {
		t.Error("Normalize(-1) succeeded, want error")
	}

	zeros := mustDistribution(t, []float64{400, 500}, []float64{0, 0})
	z, err := zeros.Normalize(100)
	if err != nil {
		t.Fatalf("Normalize on zeros failed: %v", err)
	}
	requireNearSlice(t, z.Values(), []float64{0, 0}, 0)
}

func TestDistributionSample(t *testing.T) {
	d := mustDistribution(t, []float64{400, 500, 600}, []float64{1, 2, 3})

	xs := []float64{350, 450, 550, 650}
	got := d.Sample(xs)

	for i, x := range xs {
		requireNear(t, got[i], d.At(x), 0)
	}
}
