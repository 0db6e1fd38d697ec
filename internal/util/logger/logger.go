// Package logger wraps zap's sugared logger with key/value helpers.
//
// Callers log paths, purposes, key kinds, sizes and public fingerprints.
// Secret material never goes through a Logger.
package logger

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper for zap.SugaredLogger.
type Logger struct {
	zLogger *zap.SugaredLogger
}

// Config selects the running environment, which is either "development"
// or "production", an optional file to write to in addition to stderr, and
// whether stack traces are printed.
type Config struct {
	EnableStacktrace bool   `toml:"enable_stacktrace,omitempty"`
	Environment      string `toml:"env"`
	Path             string `toml:"path,omitempty"`
}

// New builds a console Logger. Development logs DebugLevel and above,
// production InfoLevel and above.
func New(conf *Config) (*Logger, error) {
	zLevel := zap.NewAtomicLevel()
	switch {
	case strings.EqualFold("development", conf.Environment):
		zLevel.SetLevel(zap.DebugLevel)
	case strings.EqualFold("production", conf.Environment), conf.Environment == "":
		zLevel.SetLevel(zap.InfoLevel)
	default:
		return nil, errors.Errorf("logger env must be development or production, got %q", conf.Environment)
	}

	zOutputPaths := []string{"stderr"}
	if conf.Path != "" {
		zOutputPaths = append(zOutputPaths, conf.Path)
	}

	zConfig := &zap.Config{
		Level:             zLevel,
		Encoding:          "console",
		DisableStacktrace: !conf.EnableStacktrace,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "path",
			MessageKey:     "msg",
			StacktraceKey:  "stack",
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      zOutputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}

	l, err := zConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return &Logger{l.Sugar()}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger { return &Logger{zap.NewNop().Sugar()} }

// Wrap adapts an existing zap logger, e.g. one from zaptest.
func Wrap(l *zap.Logger) *Logger { return &Logger{l.Sugar()} }

// Named returns a child logger with name appended to the logger name.
func (l *Logger) Named(name string) *Logger { return &Logger{l.zLogger.Named(name)} }

// Debug logs a message useful when debugging, with key/value context.
func (l *Logger) Debug(msg string, keysAndValues ...any) { l.zLogger.Debugw(msg, keysAndValues...) }

// Info logs normal progress.
func (l *Logger) Info(msg string, keysAndValues ...any) { l.zLogger.Infow(msg, keysAndValues...) }

// Warn logs a potentially harmful situation.
func (l *Logger) Warn(msg string, keysAndValues ...any) { l.zLogger.Warnw(msg, keysAndValues...) }

// Error logs a failed operation. The application keeps running.
func (l *Logger) Error(msg string, keysAndValues ...any) { l.zLogger.Errorw(msg, keysAndValues...) }

// Sync flushes buffered entries.
func (l *Logger) Sync() error { return l.zLogger.Sync() }
