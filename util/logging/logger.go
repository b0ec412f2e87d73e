package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option adjusts the zap configuration before the logger is built
type Option func(cfg *zap.Config)

// WithDebug enables debug level when debug == true
func WithDebug(debug bool) Option {
	return func(cfg *zap.Config) {
		if debug {
			cfg.Level.SetLevel(zapcore.DebugLevel)
		}
	}
}

// WithOutput replaces stderr with the given zap output paths (files, "stdout", "stderr")
func WithOutput(paths ...string) Option {
	return func(cfg *zap.Config) {
		cfg.OutputPaths = paths
	}
}

// New builds console logger named after the session. Default level is info
func New(name string, opts ...Option) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	for _, opt := range opts {
		opt(&cfg)
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return log.Sugar().Named(name), nil
}

// MustNew is New which panics on error
func MustNew(name string, opts ...Option) *zap.SugaredLogger {
	ret, err := New(name, opts...)
	if err != nil {
		panic(err)
	}
	return ret
}

// NewNop returns logger which discards everything
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
