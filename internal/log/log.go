// Package log holds the process-wide zap logger.
package log

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

func init() {
	cfg := zap.NewProductionConfig()
	cfg.Level = level

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(logger)
}

// SetLevel changes the level of the global logger, e.g. "debug" or "warn".
func SetLevel(s string) error {
	l, err := zapcore.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	level.SetLevel(l)
	return nil
}

func Level() zapcore.Level {
	return level.Level()
}

func L() *zap.Logger {
	return zap.L()
}

func S() *zap.SugaredLogger {
	return zap.S()
}

func Sync() {
	_ = zap.L().Sync()
}
