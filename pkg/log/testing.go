package log

import (
	"context"
	"sync"
)

// Record is a single log entry captured by TestLogger.
type Record struct {
	Level   Level
	Message string
	Fields  []any
}

type recordStore struct {
	mu      sync.Mutex
	records []Record
}

// TestLogger is a Logger implementation that captures records in memory.
// It is intended for assertions in tests. Loggers derived with With share
// the record store of their parent.
type TestLogger struct {
	store *recordStore
	with  []any
	level Level
}

// NewTestLogger creates a TestLogger that captures every level.
func NewTestLogger() *TestLogger {
	return &TestLogger{store: &recordStore{}, level: LevelDebug}
}

func (l *TestLogger) log(level Level, msg string, fields ...any) {
	all := make([]any, 0, len(l.with)+len(fields))
	all = append(all, l.with...)
	all = append(all, fields...)

	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	l.store.records = append(l.store.records, Record{Level: level, Message: msg, Fields: all})
}

// Debug implements Logger.
func (l *TestLogger) Debug(msg string, fields ...any) { l.log(LevelDebug, msg, fields...) }

// Info implements Logger.
func (l *TestLogger) Info(msg string, fields ...any) { l.log(LevelInfo, msg, fields...) }

// Warn implements Logger.
func (l *TestLogger) Warn(msg string, fields ...any) { l.log(LevelWarn, msg, fields...) }

// Error implements Logger.
func (l *TestLogger) Error(msg string, fields ...any) { l.log(LevelError, msg, fields...) }

// With implements Logger. The returned logger shares the record store.
func (l *TestLogger) With(fields ...any) Logger {
	return &TestLogger{
		store: l.store,
		with:  append(append([]any{}, l.with...), fields...),
		level: l.level,
	}
}

// Enabled implements Logger.
func (l *TestLogger) Enabled(_ context.Context, level Level) bool {
	return level >= l.level
}

// Records returns a copy of the captured records.
func (l *TestLogger) Records() []Record {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	out := make([]Record, len(l.store.records))
	copy(out, l.store.records)
	return out
}

// HasMessage reports whether any captured record carries the given message.
func (l *TestLogger) HasMessage(msg string) bool {
	for _, r := range l.Records() {
		if r.Message == msg {
			return true
		}
	}
	return false
}
