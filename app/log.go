// Package app holds process-wide state shared by the shapes commands.
package app

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the application logger. It discards everything until Setup runs.
var Log = zap.NewNop()

// Setup configures Log and the global zerolog logger. Both write to stderr
// so stdout only carries the report. Warnings and above are logged unless
// verbose is set, which enables debug output.
func Setup(verbose bool) error {
	level := zapcore.WarnLevel
	zlevel := zerolog.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
		zlevel = zerolog.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = l

	zerolog.SetGlobalLevel(zlevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}
