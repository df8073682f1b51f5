// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the diagnostics logger shared by the conversion
// pipeline. Components accept a Sink rather than reaching for a global
// logger so tests can observe the warnings they emit.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink receives diagnostics. *zap.Logger satisfies it.
type Sink interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

// LevelFor maps a verbosity offset to a log level. Zero is Info; each
// positive step (one more -q) raises the threshold, each negative step
// (one more -v) lowers it.
func LevelFor(verbosity int) zapcore.Level {
	lvl := zapcore.InfoLevel + zapcore.Level(verbosity)
	if lvl < zapcore.DebugLevel {
		return zapcore.DebugLevel
	}
	if lvl > zapcore.FatalLevel {
		return zapcore.FatalLevel
	}
	return lvl
}

// New returns a console logger writing plain "LEVEL message fields" lines to w.
func New(w io.Writer, verbosity int) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	encCfg.NameKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		LevelFor(verbosity),
	)
	return zap.New(core)
}

// Nop returns a Sink that discards everything.
func Nop() Sink {
	return zap.NewNop()
}
