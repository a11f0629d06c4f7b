package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewColumnNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		column   string
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "study operation",
			op:       "StudyContinuous",
			column:   "age",
			wantMsg:  `josemltools: StudyContinuous: column "age" not found in frame`,
			hasStack: true,
		},
		{
			name:     "frame lookup",
			op:       "Frame.Numeric",
			column:   "income",
			wantMsg:  `josemltools: Frame.Numeric: column "income" not found in frame`,
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewColumnNotFoundError(tt.op, tt.column)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ColumnNotFoundError型にキャスト可能か確認
			var notFound *ColumnNotFoundError
			if !As(err, &notFound) {
				t.Error("Error should be castable to *ColumnNotFoundError")
			}
		})
	}
}

func TestNewColumnKindError(t *testing.T) {
	err := NewColumnKindError("StudyCategorical", "height", "categorical", "numeric")
	want := `josemltools: StudyCategorical: column "height" is numeric, expected categorical`
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var kindErr *ColumnKindError
	if !As(err, &kindErr) {
		t.Fatal("Error should be castable to *ColumnKindError")
	}
	if kindErr.Expected != "categorical" || kindErr.Got != "numeric" {
		t.Errorf("unexpected fields: %+v", kindErr)
	}
}

func TestNewInsufficientSamplesError(t *testing.T) {
	err := NewInsufficientSamplesError("ShapiroWilk", 3, 2)
	want := "josemltools: ShapiroWilk: needs at least 3 samples, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestNewEmptyDataError(t *testing.T) {
	err := NewEmptyDataError("Mean", "all values are missing")
	want := "josemltools: Mean: no usable data (all values are missing)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestWarningHandler(t *testing.T) {
	var captured []error
	SetWarningHandler(func(w error) {
		captured = append(captured, w)
	})
	defer SetWarningHandler(nil)

	w := NewDataConversionWarning("score", "numeric", "categorical", "cell \"n/a\" does not parse as float")
	Warn(w)

	if len(captured) != 1 {
		t.Fatalf("expected 1 captured warning, got %d", len(captured))
	}
	if !strings.Contains(captured[0].Error(), "score") {
		t.Errorf("warning message should name the column: %v", captured[0])
	}
}

func TestZerologWarnFuncTakesPriority(t *testing.T) {
	var viaHandler, viaZerolog int
	SetWarningHandler(func(w error) { viaHandler++ })
	SetZerologWarnFunc(func(w error) { viaZerolog++ })
	defer func() {
		SetWarningHandler(nil)
		SetZerologWarnFunc(nil)
	}()

	Warn(NewApproximationWarning("ShapiroWilk", "n > 5000", "p-value may not be accurate"))

	if viaZerolog != 1 {
		t.Errorf("zerolog warn func should receive the warning, got %d calls", viaZerolog)
	}
	if viaHandler != 0 {
		t.Errorf("legacy handler should not be called when zerolog func is set, got %d calls", viaHandler)
	}
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "test operation")
		panic("boom")
	}

	err := fn()
	if err == nil {
		t.Fatal("expected error from recovered panic")
	}
	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("expected *PanicError, got %T", err)
	}
	if panicErr.Operation != "test operation" {
		t.Errorf("Operation = %q, want %q", panicErr.Operation, "test operation")
	}
	if !strings.Contains(panicErr.StackTrace, "errors_test.go") {
		t.Error("stack trace should reference the panicking test file")
	}
}

func TestSafeExecute(t *testing.T) {
	if err := SafeExecute("ok", func() error { return nil }); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}

	sentinel := New("render failed")
	if err := SafeExecute("fails", func() error { return sentinel }); !Is(err, sentinel) {
		t.Errorf("expected sentinel error, got %v", err)
	}

	err := SafeExecute("panics", func() error { panic("axis range is zero") })
	if err == nil || !strings.Contains(err.Error(), "axis range is zero") {
		t.Errorf("expected panic converted to error, got %v", err)
	}
}
