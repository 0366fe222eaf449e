// Package logging builds the application logger: human-readable console
// output plus a plain-text log file with rotation.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures logger construction. Callers pass the result into
// components explicitly; there is no ambient global logger.
type Options struct {
	// Verbose lowers the console level to debug.
	Verbose bool
	// File is the log file path. Empty disables file logging.
	File string
}

// New builds a logger per opts.
func New(opts Options) *zap.Logger {
	consoleLevel := zapcore.InfoLevel
	if opts.Verbose {
		consoleLevel = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			consoleLevel,
		),
	}

	if opts.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     30, // days
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(fileWriter),
			zapcore.DebugLevel,
		))
	}

	return zap.New(zapcore.NewTee(cores...))
}
