package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Option func(*zap.Config)

// WithEncoding selects the "json" or "console" encoder.
func WithEncoding(encoding string) Option {
	return func(c *zap.Config) {
		if encoding == "" {
			return
		}
		c.Encoding = encoding
		if encoding == "console" {
			c.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
			c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		}
	}
}

// WithOutputPaths redirects log output, e.g. to a file for the demo command.
func WithOutputPaths(paths ...string) Option {
	return func(c *zap.Config) {
		c.OutputPaths = paths
	}
}

func New(verbosity string, opts ...Option) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(verbosity)
	if err != nil {
		return nil, err
	}
	config.Level = level
	for _, opt := range opts {
		opt(&config)
	}
	switch config.Encoding {
	case "json", "console":
	default:
		return nil, fmt.Errorf("unknown log encoding %q", config.Encoding)
	}
	return config.Build()
}
