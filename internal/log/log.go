// Package log provides the process-wide logger for the fire simulation
// commands, backed by zap.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var (
	base  *zap.Logger
	sugar *zap.SugaredLogger
)

// Init configures the package-level logger. Debug mode switches to the
// human-readable development encoder and enables debug-level output.
func Init(debug bool) error {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		logger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}
	base = logger
	sugar = logger.Sugar()
	return nil
}

// ensure returns the sugared logger, falling back to a production logger
// when Init was never called.
func ensure() *zap.SugaredLogger {
	if sugar == nil {
		base, _ = zap.NewProduction(zap.AddCallerSkip(1))
		sugar = base.Sugar()
	}
	return sugar
}

// GetSugaredLogger returns the sugared logger instance.
func GetSugaredLogger() *zap.SugaredLogger {
	return ensure()
}

// Sync flushes any buffered log entries.
func Sync() {
	if sugar != nil {
		sugar.Sync()
	}
}

// Package-level convenience functions

func Debugf(template string, args ...interface{}) {
	ensure().Debugf(template, args...)
}

func Debugw(msg string, keysAndValues ...interface{}) {
	ensure().Debugw(msg, keysAndValues...)
}

func Infof(template string, args ...interface{}) {
	ensure().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	ensure().Infow(msg, keysAndValues...)
}

func Warnf(template string, args ...interface{}) {
	ensure().Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	ensure().Errorf(template, args...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	ensure().Errorw(msg, keysAndValues...)
}

func Fatalf(template string, args ...interface{}) {
	ensure().Fatalf(template, args...)
}
