package eda

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Josemvg/josemltools/dataset"
	"github.com/Josemvg/josemltools/pkg/errors"
	"github.com/Josemvg/josemltools/stats"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// outlierFrame has one extreme fare so the fence math is easy to verify by
// hand: sorted fares 1..8 plus 100 give Q1=3, Q3=7, fences [-3, 13].
func outlierFrame(t *testing.T) *dataset.Frame {
	t.Helper()
	f, err := dataset.New(
		dataset.NewNumericSeries("fare", []float64{1, 2, 3, 4, 5, 6, 7, 8, 100}),
		dataset.NewCategoricalSeries("name", []string{"a", "b", "c", "d", "e", "f", "g", "h", "rich"}),
	)
	if err != nil {
		t.Fatalf("dataset.New() error = %v", err)
	}
	return f
}

func TestStudyContinuous(t *testing.T) {
	f := outlierFrame(t)

	rep, err := StudyContinuous(f, "fare")
	if err != nil {
		t.Fatalf("StudyContinuous() error = %v", err)
	}

	if !almostEqual(rep.Mean, 136.0/9, tolerance) {
		t.Errorf("Mean = %v, want %v", rep.Mean, 136.0/9)
	}
	if rep.Median != 5 {
		t.Errorf("Median = %v, want 5", rep.Median)
	}
	if !almostEqual(rep.Quartiles.Q1, 3, tolerance) || !almostEqual(rep.Quartiles.Q3, 7, tolerance) {
		t.Errorf("quartiles = %+v, want Q1=3 Q3=7", rep.Quartiles)
	}
	if !almostEqual(rep.IQR, 4, tolerance) {
		t.Errorf("IQR = %v, want 4", rep.IQR)
	}
	if !almostEqual(rep.Fences.Lower, -3, tolerance) || !almostEqual(rep.Fences.Upper, 13, tolerance) {
		t.Errorf("fences = %+v, want [-3, 13]", rep.Fences)
	}

	if rep.OutlierCount != 1 {
		t.Fatalf("OutlierCount = %d, want 1", rep.OutlierCount)
	}
	if rep.OutlierPercent != 11.11 {
		t.Errorf("OutlierPercent = %v, want 11.11", rep.OutlierPercent)
	}

	// The outlier sub-frame keeps all columns of the original row.
	name, err := rep.Outliers.Categorical("name")
	if err != nil {
		t.Fatalf("outlier frame lost the name column: %v", err)
	}
	if len(name) != 1 || name[0] != "rich" {
		t.Errorf("outlier rows = %v, want [rich]", name)
	}

	if rep.Skewness == nil || rep.Skewness.Class != stats.SkewHigh {
		t.Errorf("Skewness = %+v, want highly skewed", rep.Skewness)
	}
	if rep.Normality == nil || rep.Normality.Verdict != VerdictNotGaussian {
		t.Errorf("Normality = %+v, want rejection verdict", rep.Normality)
	}
}

func TestStudyContinuousSkipsOptionalTests(t *testing.T) {
	f := outlierFrame(t)

	rep, err := StudyContinuous(f, "fare", WithoutSkewTest(), WithoutGaussianTest())
	if err != nil {
		t.Fatalf("StudyContinuous() error = %v", err)
	}
	if rep.Skewness != nil {
		t.Error("Skewness should be nil with WithoutSkewTest")
	}
	if rep.Normality != nil {
		t.Error("Normality should be nil with WithoutGaussianTest")
	}
}

func TestStudyContinuousFenceMultiplier(t *testing.T) {
	f := outlierFrame(t)

	// A huge multiplier swallows the outlier.
	rep, err := StudyContinuous(f, "fare", WithFenceMultiplier(30))
	if err != nil {
		t.Fatalf("StudyContinuous() error = %v", err)
	}
	if rep.OutlierCount != 0 {
		t.Errorf("OutlierCount = %d, want 0 with wide fences", rep.OutlierCount)
	}
}

func TestStudyContinuousWritesPlots(t *testing.T) {
	f := outlierFrame(t)
	dir := filepath.Join(t.TempDir(), "figures")

	rep, err := StudyContinuous(f, "fare", WithPlotDir(dir))
	if err != nil {
		t.Fatalf("StudyContinuous() error = %v", err)
	}

	want := []string{"fare_box.png", "fare_hist.png", "fare_qq.png"}
	if len(rep.Plots) != len(want) {
		t.Fatalf("Plots = %v, want %d files", rep.Plots, len(want))
	}
	for _, name := range want {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing plot %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("plot %s is empty", name)
		}
	}
}

func TestStudyContinuousErrors(t *testing.T) {
	f := outlierFrame(t)

	if _, err := StudyContinuous(f, "name"); err == nil {
		t.Error("studying a categorical column should error")
	} else {
		var kindErr *errors.ColumnKindError
		if !errors.As(err, &kindErr) {
			t.Errorf("expected ColumnKindError, got %T", err)
		}
	}

	if _, err := StudyContinuous(f, "nope"); err == nil {
		t.Error("studying an unknown column should error")
	}
}

func TestStudyContinuousAllMissingColumn(t *testing.T) {
	f, err := dataset.New(
		dataset.NewNumericSeries("blank", []float64{math.NaN(), math.NaN()}),
	)
	if err != nil {
		t.Fatalf("dataset.New() error = %v", err)
	}

	_, err = StudyContinuous(f, "blank")
	if err == nil {
		t.Fatal("all-missing column should error")
	}
	var emptyErr *errors.EmptyDataError
	if !errors.As(err, &emptyErr) {
		t.Errorf("expected EmptyDataError, got %T", err)
	}
}
