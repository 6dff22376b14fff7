// Package logging builds the zap loggers used across the collector.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger. Both modes log to stderr so structured
// output never interleaves with the download narration on stdout.
func NewLogger(development bool) (*zap.Logger, error) {
	var config zap.Config

	if development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	return config.Build()
}

// MustNewLogger creates a new logger and panics if it fails
func MustNewLogger(development bool) *zap.Logger {
	logger, err := NewLogger(development)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}
