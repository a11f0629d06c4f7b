package log

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Josemvg/josemltools/pkg/errors"
)

// zerologLogger implements Logger on top of rs/zerolog.
//
// Field handling follows slog conventions: fields are consumed as key/value
// pairs. Values implementing zerolog.LogObjectMarshaler (the structured error
// and warning types in pkg/errors) are attached as nested objects so their
// context survives JSON output. Plain error values are attached with the
// standard error key.
type zerologLogger struct {
	zl    zerolog.Logger
	level Level
}

func newZerologLogger(w io.Writer, level Level) *zerologLogger {
	zl := zerolog.New(w).With().Timestamp().Logger().Level(toZerologLevel(level))
	return &zerologLogger{zl: zl, level: level}
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// applyFields attaches key/value pairs to a zerolog event.
func applyFields(e *zerolog.Event, fields ...any) *zerolog.Event {
	for i := 0; i < len(fields); i++ {
		// A bare error value (no key) is allowed as a field, so callers
		// can write Error(msg, err) without inventing a key.
		if err, ok := fields[i].(error); ok {
			if obj, ok := err.(zerolog.LogObjectMarshaler); ok {
				e = e.Object(ErrorKey, obj)
			} else {
				e = e.AnErr(ErrorKey, err)
			}
			continue
		}

		key, ok := fields[i].(string)
		if !ok || i+1 >= len(fields) {
			e = e.Interface("!BADKEY", fields[i])
			continue
		}
		i++
		switch v := fields[i].(type) {
		case zerolog.LogObjectMarshaler:
			e = e.Object(key, v)
		case error:
			e = e.AnErr(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	return e
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	applyFields(l.zl.Debug(), fields...).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	applyFields(l.zl.Info(), fields...).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	applyFields(l.zl.Warn(), fields...).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	applyFields(l.zl.Error(), fields...).Msg(msg)
}

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &zerologLogger{zl: ctx.Logger(), level: l.level}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return level >= l.level
}

// ===========================================================================
// Global logger provider
// ===========================================================================

var (
	mu            sync.RWMutex
	defaultLogger Logger = newZerologLogger(os.Stderr, LevelInfo)
)

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// GetLoggerWithName returns the default logger scoped to a component name.
func GetLoggerWithName(name string) Logger {
	return GetLogger().With(ComponentKey, name)
}

// SetLogger replaces the process-wide default logger.
// Intended for tests and for applications embedding the library.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}

// Setup configures the default logger with the given level and output and
// routes library warnings (pkg/errors.Warn) into it as structured warn-level
// records. The CLI calls this once at startup.
func Setup(level Level, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logger := newZerologLogger(w, level)
	SetLogger(logger)

	errors.SetZerologWarnFunc(func(warning error) {
		GetLogger().Warn("analysis warning", warning)
	})
}
