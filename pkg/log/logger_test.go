package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Josemvg/josemltools/pkg/errors"
)

func TestZerologLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newZerologLogger(&buf, LevelInfo)

	logger.Info("Column study started",
		DatasetKey, "titanic.csv",
		ColumnKey, "age",
		RowsKey, 891,
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["message"] != "Column study started" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry[DatasetKey] != "titanic.csv" {
		t.Errorf("%s = %v", DatasetKey, entry[DatasetKey])
	}
	if entry[RowsKey] != float64(891) {
		t.Errorf("%s = %v", RowsKey, entry[RowsKey])
	}
}

func TestZerologLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newZerologLogger(&buf, LevelWarn)

	logger.Info("should be dropped")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn record should be emitted")
	}
}

func TestZerologLoggerStructuredError(t *testing.T) {
	var buf bytes.Buffer
	logger := newZerologLogger(&buf, LevelInfo)

	err := &errors.ColumnNotFoundError{Op: "StudyContinuous", Column: "age"}
	logger.Error("study failed", err)

	out := buf.String()
	if !strings.Contains(out, "ColumnNotFoundError") {
		t.Errorf("structured error type missing from output: %s", out)
	}
	if !strings.Contains(out, `"column":"age"`) {
		t.Errorf("structured error fields missing from output: %s", out)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := newZerologLogger(&buf, LevelInfo)

	scoped := logger.With(ColumnKey, "fare")
	scoped.Info("quartiles computed")

	if !strings.Contains(buf.String(), `"column.name":"fare"`) {
		t.Errorf("pre-populated field missing: %s", buf.String())
	}
}

func TestEnabled(t *testing.T) {
	logger := newZerologLogger(&bytes.Buffer{}, LevelInfo)
	ctx := context.Background()

	if logger.Enabled(ctx, LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	if !logger.Enabled(ctx, LevelError) {
		t.Error("error should be enabled at info level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.name); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSetupRoutesWarnings(t *testing.T) {
	var buf bytes.Buffer
	Setup(LevelInfo, &buf)
	defer func() {
		errors.SetZerologWarnFunc(nil)
		SetLogger(newZerologLogger(nil, LevelInfo))
	}()

	errors.Warn(errors.NewDataConversionWarning("score", "numeric", "categorical", "unparseable cell"))

	if !strings.Contains(buf.String(), "analysis warning") {
		t.Errorf("warning was not routed to the logger: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "DataConversionWarning") {
		t.Errorf("warning type missing from output: %s", buf.String())
	}
}

func TestTestLoggerCapture(t *testing.T) {
	tl := NewTestLogger()
	scoped := tl.With(ColumnKey, "age")
	scoped.Info("hello", RowsKey, 10)

	recs := tl.Records()
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if !tl.HasMessage("hello") {
		t.Error("HasMessage should find the captured record")
	}
	if recs[0].Fields[0] != ColumnKey || recs[0].Fields[1] != "age" {
		t.Errorf("With fields should prefix the record: %v", recs[0].Fields)
	}
}
