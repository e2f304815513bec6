// =============================================================================
// Purchase Report Engine - Pipeline Logging
// =============================================================================

package pipeline

import (
	"fmt"
	"os"
)

// Logger is the logging interface the pipeline writes to. The default
// implementation prints leveled lines to stderr; tests substitute a no-op.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

// NewLogger builds the default stderr logger for a config log level
// ("debug", "info", "warn", "error"). Unknown levels fall back to info.
func NewLogger(name string) Logger {
	min := levelInfo
	switch name {
	case "debug":
		min = levelDebug
	case "warn":
		min = levelWarn
	case "error":
		min = levelError
	}
	return &stderrLogger{min: min}
}

// NopLogger discards everything.
func NopLogger() Logger { return nopLogger{} }

type stderrLogger struct {
	min level
}

func (l *stderrLogger) log(lv level, tag, msg string, args ...interface{}) {
	if lv < l.min {
		return
	}
	fmt.Fprintf(os.Stderr, "["+tag+"] "+msg+"\n", args...)
}

func (l *stderrLogger) Debug(msg string, args ...interface{}) { l.log(levelDebug, "DEBUG", msg, args...) }
func (l *stderrLogger) Info(msg string, args ...interface{})  { l.log(levelInfo, "INFO", msg, args...) }
func (l *stderrLogger) Warn(msg string, args ...interface{})  { l.log(levelWarn, "WARN", msg, args...) }
func (l *stderrLogger) Error(msg string, args ...interface{}) { l.log(levelError, "ERROR", msg, args...) }

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
