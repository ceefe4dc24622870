// Package logging provides the zap-backed diagnostics sink for the
// engine.
package logging

import (
	"go.uber.org/zap"

	"bomcalc/pkg/application/services"
)

// Config holds logging configuration
type Config struct {
	Level       string
	Development bool
}

// NewLogger builds a zap logger from the configuration. Unknown levels
// fall back to info.
func NewLogger(config Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if config.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	return zapConfig.Build()
}

// Sink adapts a zap logger to the engine's diagnostics interface.
// Progress is throttled so large plans do not flood the log.
type Sink struct {
	log   *zap.SugaredLogger
	every int
}

var _ services.Sink = (*Sink)(nil)

// NewSink wraps a zap logger as an engine sink, logging progress every
// `every` rows (and always the final row).
func NewSink(logger *zap.Logger, every int) *Sink {
	if every < 1 {
		every = 1
	}
	return &Sink{log: logger.Sugar(), every: every}
}

// Progress logs a count-based progress update.
func (s *Sink) Progress(done, total int) {
	if done%s.every == 0 || done == total {
		s.log.Debugf("progress: %d/%d plan rows", done, total)
	}
}

// Infof logs an informational message.
func (s *Sink) Infof(format string, args ...interface{}) {
	s.log.Infof(format, args...)
}

// Warnf logs a warning.
func (s *Sink) Warnf(format string, args ...interface{}) {
	s.log.Warnf(format, args...)
}
