package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the console diagnostics logger. Core packages stay quiet
// unless --verbose raises the level to info.
func newLogger() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	lg, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return lg.Sugar()
}
