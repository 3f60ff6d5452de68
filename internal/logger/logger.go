// Package logger holds the process-wide zap logger shared by the
// handlers, services and repositories of the user directory.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger. It stays a no-op logger until
// Initialize is called, so packages may log unconditionally.
var Log = zap.NewNop().Sugar()

// Initialize replaces Log with a production logger at the given level.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}
