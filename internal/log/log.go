// SPDX-License-Identifier: MIT
// Package log is the structured logger used by the rigid CLI.
// It wraps zap behind a small Level type so callers never touch zapcore.
//
// The first logger built by New is published process-wide; Provide returns it
// (or a no-op logger) and is safe to call from any goroutine.
package log

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity a Logger emits.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// provided holds the first logger built by New.
var provided atomic.Pointer[Logger]

// Logger is a leveled, structured logger. The level can be changed at run
// time and is shared with every logger derived through With.
type Logger struct {
	zapLogger *zap.Logger
	level     zap.AtomicLevel
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" (any case) to a Level.
// The empty string means LevelInfo.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("log: unknown level %q", s)
	}
}

// String returns the lower-case level name.
func (l Level) String() string {
	return toZapLevel(l).String()
}

// New builds a console-encoded logger writing to w.
// The first logger built becomes the one returned by Provide.
func New(level Level, w io.Writer) *Logger {
	atom := zap.NewAtomicLevelAt(toZapLevel(level))

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), atom)

	logger := &Logger{
		zapLogger: zap.New(core),
		level:     atom,
	}

	provided.CompareAndSwap(nil, logger)

	return logger
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zapLogger: zap.NewNop(), level: zap.NewAtomicLevelAt(zap.FatalLevel)}
}

// Provide returns the first logger built by New, or a no-op logger if none was.
func Provide() *Logger {
	if l := provided.Load(); l != nil {
		return l
	}
	return Nop()
}

// Debug logs msg at LevelDebug.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zapLogger.Debug(msg, fields...)
}

// Info logs msg at LevelInfo.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zapLogger.Info(msg, fields...)
}

// Warn logs msg at LevelWarn.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zapLogger.Warn(msg, fields...)
}

// Error logs msg at LevelError.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zapLogger.Error(msg, fields...)
}

// With returns a child logger that adds fields to every entry.
// The child shares the parent's level.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{
		zapLogger: l.zapLogger.With(fields...),
		level:     l.level,
	}
}

// SetLevel changes the minimum level of l and of every logger sharing it.
func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(toZapLevel(level))
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zap.DebugLevel
	case LevelInfo:
		return zap.InfoLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
