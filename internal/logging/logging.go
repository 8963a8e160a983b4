// ABOUTME: Process-wide zap logger shared by all packages
// ABOUTME: Defaults to a stderr production logger; the CLI swaps in a console logger

package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L is the process-wide logger. Packages log through it directly; callers that
// want different output replace it via Set before doing any work.
var L *zap.Logger

func init() {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	L = logger
}

// Set replaces the process-wide logger.
func Set(logger *zap.Logger) {
	if logger != nil {
		L = logger
	}
}

// Console builds a human-readable stderr logger for CLI use. With verbose set,
// debug-level diagnostics (per-strategy fetch failures) are included.
func Console(verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(os.Stderr),
		level,
	)
	return zap.New(core)
}

// Sync flushes buffered log entries; call before process exit.
func Sync() {
	if L != nil {
		_ = L.Sync()
	}
}
