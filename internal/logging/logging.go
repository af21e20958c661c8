// Package logging constructs the zap loggers threaded through every
// stage of a run, matching the executor's logger-as-constructor-field
// idiom rather than a package-global logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls the logger's verbosity and encoding.
type Config struct {
	// Debug enables debug-level output; otherwise info-level.
	Debug bool
	// JSON selects JSON encoding over the console encoder. CLI runs default
	// to console; the JSON-RPC server defaults to JSON. Either way log lines
	// go to stderr.
	JSON bool
}

// New builds a *zap.Logger for cfg. Errors building the logger are
// treated as unrecoverable construction failures and panic, matching
// zap.Must's own behavior for process-lifetime loggers.
func New(cfg Config) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if !cfg.JSON {
		zcfg = zap.NewDevelopmentConfig()
	}

	if cfg.Debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	return zap.Must(zcfg.Build())
}

// Nop returns a logger that discards everything, for tests and callers
// that opt out of logging entirely.
func Nop() *zap.Logger {
	return zap.NewNop()
}
