// Package logging builds the zap loggers used by the command line tools.
// Library packages never log; they return errors and values.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrLevel is returned for an unknown level name.
var ErrLevel = errors.New("logging: unknown level")

// Option adjusts the zap configuration before the logger is built.
type Option func(*zap.Config) error

// WithLevel sets the minimum level by name (debug, info, warn, error).
func WithLevel(name string) Option {
	return func(cfg *zap.Config) error {
		lvl, err := ParseLevel(name)
		if err != nil {
			return err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		return nil
	}
}

// WithDevelopment switches to the human readable console encoder with
// colored levels and no sampling.
func WithDevelopment(dev bool) Option {
	return func(cfg *zap.Config) error {
		if !dev {
			return nil
		}
		lvl := cfg.Level
		*cfg = zap.NewDevelopmentConfig()
		cfg.Level = lvl
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return nil
	}
}

// WithFields attaches fields to every entry.
func WithFields(fields map[string]any) Option {
	return func(cfg *zap.Config) error {
		if cfg.InitialFields == nil {
			cfg.InitialFields = map[string]any{}
		}
		for k, v := range fields {
			if k == "" {
				continue
			}
			cfg.InitialFields[k] = v
		}
		return nil
	}
}

// WithOutput replaces the output paths ("stderr", "stdout" or files).
func WithOutput(paths ...string) Option {
	return func(cfg *zap.Config) error {
		if len(paths) > 0 {
			cfg.OutputPaths = paths
		}
		return nil
	}
}

// ParseLevel resolves a level name, case-insensitively. The empty name is
// info.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrLevel, name)
	}
}

// Config returns the production configuration, logging to stderr, with
// opts applied in order.
func Config(opts ...Option) (zap.Config, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return zap.Config{}, err
		}
	}

	return cfg, nil
}

// New builds a logger from [Config].
func New(opts ...Option) (*zap.Logger, error) {
	cfg, err := Config(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

// Sync flushes log, ignoring the error returned for terminals that do not
// support fsync.
func Sync(log *zap.Logger) {
	_ = log.Sync()
}
