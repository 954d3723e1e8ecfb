package logger

import (
	"sync"

	"github.com/woodyhq/woodlog/core"
	"github.com/woodyhq/woodlog/handler/consolehandler"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// Default returns the process default logger, acquiring the "app"
// instance (zero-value Config) from the default registry on first
// use. If the log directory cannot be created, the fallback is a
// console-only logger so callers always get a usable instance.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		l, err := defaultRegistry.Acquire(Config{})
		if err != nil {
			l = NewBuilder().
				WithHandler(consolehandler.New(consolehandler.Config{})).
				WithLevel(core.DebugLevel).
				WithCaller(true).
				Build()
		}
		defaultLogger = l
	}
	return defaultLogger
}

// SetDefault sets the default logger. Passing nil resets it, so the
// next Default call acquires from the registry again.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	Default().Debug(msg, fields...)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	Default().Info(msg, fields...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...core.Field) {
	Default().Warn(msg, fields...)
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	Default().Error(msg, fields...)
}

// Critical logs a critical message using the default logger
func Critical(msg string, fields ...core.Field) {
	Default().Critical(msg, fields...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Criticalf logs a formatted critical message using the default logger
func Criticalf(format string, args ...interface{}) {
	Default().Criticalf(format, args...)
}

// With creates a new logger with additional fields from the default logger
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}
