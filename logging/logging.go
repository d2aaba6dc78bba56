// Package logging contains the injected diagnostics sink used across this module.
package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// GlobalLogLevel should be used whenever a zap logger is created that wants to obey a
// process-wide debug flag. Setting this to `zapcore.DebugLevel` turns all loggers up
// regardless of their individual levels.
var GlobalLogLevel = zap.NewAtomicLevelAt(zap.InfoLevel)

var globalRegistry = newRegistry()

// Config configures log levels for the loggers of this process. `Level` is the level
// for loggers no pattern matches.
type Config struct {
	Level    Level                 `json:"level"`
	Patterns []LoggerPatternConfig `json:"patterns"`
}

// Apply installs the config on the process-wide logger registry. Registered loggers
// are re-leveled immediately; loggers created afterwards pick up matching patterns at
// creation time. Pattern validation warnings go to `errorLogger`.
func (cfg Config) Apply(errorLogger Logger) error {
	patterns := make([]LoggerPatternConfig, 0, len(cfg.Patterns)+1)
	patterns = append(patterns, LoggerPatternConfig{Pattern: "*", Level: cfg.Level.String()})
	patterns = append(patterns, cfg.Patterns...)
	return globalRegistry.UpdateConfig(patterns, errorLogger)
}

// LoggerNamed returns the logger previously registered under `name`, if any.
func LoggerNamed(name string) (Logger, bool) {
	return globalRegistry.loggerNamed(name)
}

// CurrentConfig returns the pattern configs most recently applied to the registry.
func CurrentConfig() []LoggerPatternConfig {
	return globalRegistry.getCurrentConfig()
}

// NewLogger returns a new logger that outputs Info+ logs to stdout in UTC.
func NewLogger(name string) Logger {
	const inUTC = true
	logger := &impl{name, NewAtomicLevelAt(INFO), inUTC, []Appender{NewStdoutAppender()}}
	return globalRegistry.getOrRegister(name, logger)
}

// NewDebugLogger returns a new logger that outputs Debug+ logs to stdout in UTC.
func NewDebugLogger(name string) Logger {
	const inUTC = true
	logger := &impl{name, NewAtomicLevelAt(DEBUG), inUTC, []Appender{NewStdoutAppender()}}
	return globalRegistry.getOrRegister(name, logger)
}

// NewBlankLogger returns a new logger that outputs Debug+ logs in UTC, but without any
// pre-existing appenders/outputs. It is not registered and is not subject to pattern
// configs.
func NewBlankLogger(name string) Logger {
	const inUTC = true
	return &impl{name, NewAtomicLevelAt(DEBUG), inUTC, []Appender{}}
}

// NewTestLogger returns a new logger that outputs Debug+ logs to the test object in
// local time.
func NewTestLogger(tb testing.TB) Logger {
	logger, _ := NewObservedTestLogger(tb)
	return logger
}

// NewObservedTestLogger is like NewTestLogger but also saves logs to an in memory observer.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	const inUTC = false
	logger := &impl{"", NewAtomicLevelAt(DEBUG), inUTC, []Appender{}}
	logger.AddAppender(NewTestAppender(tb))

	observerCore, observedLogs := observer.New(zap.LevelEnablerFunc(zapcore.DebugLevel.Enabled))
	logger.AddAppender(observerCore)

	return logger, observedLogs
}
