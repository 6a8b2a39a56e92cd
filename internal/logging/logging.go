// Package logging builds the zap loggers used by the adcfilter command and
// the pipeline. Numeric packages never log.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option adjusts the zap configuration before the logger is built.
type Option func(*zap.Config)

// WithLevel sets the minimum level. Unknown names select info.
func WithLevel(level string) Option {
	return func(cfg *zap.Config) {
		cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	}
}

// WithDevelopment switches to console encoding with development defaults.
// Level, output paths and fields set earlier are kept.
func WithDevelopment(dev bool) Option {
	return func(cfg *zap.Config) {
		if !dev {
			return
		}

		prev := *cfg
		*cfg = zap.NewDevelopmentConfig()
		cfg.Level = prev.Level
		cfg.OutputPaths = prev.OutputPaths
		cfg.InitialFields = prev.InitialFields
	}
}

// WithFields attaches fields to every log line.
func WithFields(fields map[string]any) Option {
	return func(cfg *zap.Config) {
		if cfg.InitialFields == nil {
			cfg.InitialFields = map[string]any{}
		}

		for key, value := range fields {
			if key == "" {
				continue
			}

			cfg.InitialFields[key] = value
		}
	}
}

// WithOutputPaths replaces the destinations, e.g. "stdout" or a file path.
func WithOutputPaths(paths ...string) Option {
	return func(cfg *zap.Config) {
		if len(paths) > 0 {
			cfg.OutputPaths = paths
		}
	}
}

// New builds a production JSON logger writing to stderr at info level unless
// options say otherwise.
func New(opts ...Option) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg.Build()
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
