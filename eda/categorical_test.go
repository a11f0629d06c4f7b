package eda

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Josemvg/josemltools/dataset"
)

func categoricalFrame(t *testing.T) *dataset.Frame {
	t.Helper()
	f, err := dataset.New(
		dataset.NewCategoricalSeries("embarked", []string{"S", "S", "S", "C", "Q", "S", "C"}),
		dataset.NewCategoricalSeries("survived", []string{"1", "0", "1", "1", "0", "0", "1"}),
	)
	if err != nil {
		t.Fatalf("dataset.New() error = %v", err)
	}
	return f
}

func TestStudyCategorical(t *testing.T) {
	f := categoricalFrame(t)

	rep, err := StudyCategorical(f, "embarked")
	if err != nil {
		t.Fatalf("StudyCategorical() error = %v", err)
	}

	if rep.Mode != "S" {
		t.Errorf("Mode = %q, want S", rep.Mode)
	}
	if rep.UniqueCount != 3 {
		t.Errorf("UniqueCount = %d, want 3", rep.UniqueCount)
	}

	// value_counts order: S (4), C (2), Q (1).
	if len(rep.Shares) != 3 {
		t.Fatalf("Shares = %v, want 3 categories", rep.Shares)
	}
	if rep.Shares[0].Label != "S" || rep.Shares[0].Count != 4 || rep.Shares[0].Percent != 57.14 {
		t.Errorf("Shares[0] = %+v, want S/4/57.14", rep.Shares[0])
	}
	if rep.Shares[1].Label != "C" || rep.Shares[2].Label != "Q" {
		t.Errorf("share order = %v, want [S C Q]", rep.Shares)
	}
}

func TestStudyCategoricalModeTieBreaksSmallest(t *testing.T) {
	f, err := dataset.New(
		dataset.NewCategoricalSeries("side", []string{"b", "a"}),
	)
	if err != nil {
		t.Fatalf("dataset.New() error = %v", err)
	}
	rep, err := StudyCategorical(f, "side")
	if err != nil {
		t.Fatalf("StudyCategorical() error = %v", err)
	}
	if rep.Mode != "a" {
		t.Errorf("Mode = %q, want a (smallest label on ties)", rep.Mode)
	}
}

func TestStudyCategoricalWithTarget(t *testing.T) {
	f := categoricalFrame(t)

	rep, err := StudyCategorical(f, "embarked", WithTarget("survived"))
	if err != nil {
		t.Fatalf("StudyCategorical() error = %v", err)
	}

	if len(rep.Classes) != 2 || rep.Classes[0] != "0" || rep.Classes[1] != "1" {
		t.Fatalf("Classes = %v, want [0 1]", rep.Classes)
	}

	// Rows pairing embarked with survived:
	// (S,1) (S,0) (S,1) (C,1) (Q,0) (S,0) (C,1).
	// Class "1" x category S -> 2 of 7 rows = 28.57%.
	if rep.TargetPercents[1][0] != 28.57 {
		t.Errorf("percent(S, survived=1) = %v, want 28.57", rep.TargetPercents[1][0])
	}
	// Class "0" x category C -> 0 rows.
	if rep.TargetPercents[0][1] != 0 {
		t.Errorf("percent(C, survived=0) = %v, want 0", rep.TargetPercents[0][1])
	}
}

func TestStudyCategoricalTargetEqualsColumn(t *testing.T) {
	f := categoricalFrame(t)

	// The original guard: a target equal to the studied column is ignored.
	rep, err := StudyCategorical(f, "embarked", WithTarget("embarked"))
	if err != nil {
		t.Fatalf("StudyCategorical() error = %v", err)
	}
	if rep.Target != "" || rep.TargetPercents != nil {
		t.Error("target equal to the studied column should be skipped")
	}
}

func TestStudyCategoricalWritesPlots(t *testing.T) {
	f := categoricalFrame(t)
	dir := t.TempDir()

	rep, err := StudyCategorical(f, "embarked", WithTarget("survived"), WithPlotDir(dir))
	if err != nil {
		t.Fatalf("StudyCategorical() error = %v", err)
	}

	want := []string{"embarked_shares.png", "embarked_by_survived.png"}
	if len(rep.Plots) != len(want) {
		t.Fatalf("Plots = %v, want %d files", rep.Plots, len(want))
	}
	for _, name := range want {
		if info, err := os.Stat(filepath.Join(dir, name)); err != nil || info.Size() == 0 {
			t.Errorf("plot %s missing or empty: %v", name, err)
		}
	}
}

func TestStudyCategoricalErrors(t *testing.T) {
	f := categoricalFrame(t)

	if _, err := StudyCategorical(f, "nope"); err == nil {
		t.Error("unknown column should error")
	}

	empty, err := dataset.New(dataset.NewCategoricalSeries("all_missing", []string{"", "", ""}))
	if err != nil {
		t.Fatalf("dataset.New() error = %v", err)
	}
	if _, err := StudyCategorical(empty, "all_missing"); err == nil {
		t.Error("all-missing column should error")
	}
}
