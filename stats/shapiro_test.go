package stats

import (
	"math"
	"testing"

	"github.com/Josemvg/josemltools/pkg/errors"
)

func TestShapiroWilkThreeSamples(t *testing.T) {
	// For n=3 the distribution of W is known exactly. Equally spaced data
	// maximizes W: W=1 and p=1.
	res, err := ShapiroWilk([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("ShapiroWilk() error = %v", err)
	}
	if !almostEqual(res.W, 1, 1e-9) {
		t.Errorf("W = %v, want 1", res.W)
	}
	if !almostEqual(res.PValue, 1, 1e-6) {
		t.Errorf("p = %v, want 1", res.PValue)
	}
	if res.N != 3 {
		t.Errorf("N = %d, want 3", res.N)
	}
}

func TestShapiroWilkNormalLooking(t *testing.T) {
	// Symmetric bell-shaped sample; the test must not reject normality.
	x := []float64{2.1, 2.9, 3.4, 3.8, 4.0, 4.2, 4.6, 5.1, 5.9, 4.1, 3.9, 4.3, 3.6, 4.4}
	res, err := ShapiroWilk(x)
	if err != nil {
		t.Fatalf("ShapiroWilk() error = %v", err)
	}
	if res.W <= 0.9 || res.W > 1 {
		t.Errorf("W = %v, expected close to 1 for bell-shaped data", res.W)
	}
	if !res.LooksGaussian(0.05) {
		t.Errorf("p = %v, should not reject normality for bell-shaped data", res.PValue)
	}
}

func TestShapiroWilkRejectsHeavySkew(t *testing.T) {
	// Geometric growth is extremely right-skewed; normality must be rejected.
	x := make([]float64, 14)
	v := 1.0
	for i := range x {
		x[i] = v
		v *= 2
	}
	res, err := ShapiroWilk(x)
	if err != nil {
		t.Fatalf("ShapiroWilk() error = %v", err)
	}
	if res.LooksGaussian(0.05) {
		t.Errorf("p = %v (W = %v), expected rejection for geometric data", res.PValue, res.W)
	}
}

func TestShapiroWilkSmallNBranch(t *testing.T) {
	// n=5 exercises the single-end-weight correction branch.
	res, err := ShapiroWilk([]float64{1.1, 2.3, 2.9, 3.8, 5.2})
	if err != nil {
		t.Fatalf("ShapiroWilk() error = %v", err)
	}
	if res.W <= 0 || res.W > 1 {
		t.Errorf("W = %v, want in (0, 1]", res.W)
	}
	if res.PValue < 0 || res.PValue > 1 {
		t.Errorf("p = %v, want in [0, 1]", res.PValue)
	}
}

func TestShapiroWilkSkipsMissing(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, math.NaN(), math.NaN()}
	res, err := ShapiroWilk(x)
	if err != nil {
		t.Fatalf("ShapiroWilk() error = %v", err)
	}
	if res.N != 5 {
		t.Errorf("N = %d, want 5 after dropping missing values", res.N)
	}
}

func TestShapiroWilkErrors(t *testing.T) {
	if _, err := ShapiroWilk([]float64{1, 2}); err == nil {
		t.Error("fewer than 3 samples should error")
	} else {
		var insufficient *errors.InsufficientSamplesError
		if !errors.As(err, &insufficient) {
			t.Errorf("expected InsufficientSamplesError, got %T", err)
		}
	}

	if _, err := ShapiroWilk([]float64{4, 4, 4, 4}); err == nil {
		t.Error("zero-range data should error")
	}
}

func TestShapiroWilkLargeSampleWarns(t *testing.T) {
	var warnings []error
	errors.SetWarningHandler(func(w error) { warnings = append(warnings, w) })
	defer errors.SetWarningHandler(func(error) {})

	x := make([]float64, maxShapiroN+1)
	for i := range x {
		// Deterministic non-constant data.
		x[i] = math.Sin(float64(i)) + float64(i%7)
	}
	if _, err := ShapiroWilk(x); err != nil {
		t.Fatalf("ShapiroWilk() error = %v", err)
	}

	if len(warnings) != 1 {
		t.Fatalf("expected 1 approximation warning, got %d", len(warnings))
	}
	var approx *errors.ApproximationWarning
	if !errors.As(warnings[0], &approx) {
		t.Errorf("expected ApproximationWarning, got %T", warnings[0])
	}
}

func TestNormalOrderPositions(t *testing.T) {
	pos := NormalOrderPositions(11)
	if len(pos) != 11 {
		t.Fatalf("len = %d, want 11", len(pos))
	}
	// Positions are symmetric around zero and increasing.
	if !almostEqual(pos[5], 0, 1e-12) {
		t.Errorf("middle position = %v, want 0", pos[5])
	}
	for i := 1; i < len(pos); i++ {
		if pos[i] <= pos[i-1] {
			t.Fatalf("positions must be strictly increasing: %v", pos)
		}
	}
	if !almostEqual(pos[0], -pos[10], 1e-9) {
		t.Errorf("positions should be symmetric: %v vs %v", pos[0], pos[10])
	}
}
