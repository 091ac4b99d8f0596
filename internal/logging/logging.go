// Package logging wraps zap behind logr, the way kagent's
// tools/internal/logger package configures a package-level zap logger
// from environment variables. It adds the verbosity-step mapping the
// HTTP client's observability contract needs: V(0) is INFO, V(1) is
// DEBUG, V(2) is TRACE (spec §4.2).
package logging

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// VerbosityDebug is the logr V-level carrying header count, body
	// byte-size, and auth-present flag.
	VerbosityDebug = 1
	// VerbosityTrace is the logr V-level carrying full (redacted)
	// headers and bodies.
	VerbosityTrace = 2
)

var global *zap.Logger

// Init builds the process-wide zap logger. ANYTYPE_LOG_LEVEL selects
// the zapcore level; ANYTYPE_ENV=development switches to a
// human-readable, colorized encoder.
func Init() {
	cfg := zap.NewProductionConfig()

	if lvl := os.Getenv("ANYTYPE_LOG_LEVEL"); lvl != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(lvl)); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	if os.Getenv("ANYTYPE_ENV") == "development" {
		cfg.Development = true
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.CallerKey = "caller"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := cfg.Build()
	if err != nil {
		panic("anytype/logging: failed to initialize logger: " + err.Error())
	}
	global = built
}

// Get returns a logr.Logger backed by the process-wide zap logger,
// initializing it on first use.
func Get() logr.Logger {
	if global == nil {
		Init()
	}
	return zapr.NewLogger(global)
}

// Sync flushes any buffered log entries; call before process exit.
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
