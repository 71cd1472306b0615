// Package splitlog provides the leveled tracing used by package split and
// package bsp to narrate classification decisions (mirroring the
// log::debug!/log::trace! call sites of the engine this was ported from).
// Like that global logging facade, splitlog holds one process-wide logger
// rather than threading one through every call; SetLogger installs it.
//
// This is the one ambient concern built on the standard library rather than
// a third-party package: nothing in this module's dependency pack pulls in
// a structured logging library, so log/slog is the sanctioned exception.
package splitlog

import (
	"log/slog"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(slog.DiscardHandler))
}

// SetLogger installs logger as the process-wide destination for split/bsp
// tracing. Passing nil restores the default no-op logger.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	current.Store(logger)
}

// Debug logs a classification decision at debug level.
func Debug(msg string, args ...any) {
	current.Load().Debug(msg, args...)
}

// Trace logs fine-grained per-fragment detail. slog has no level below
// Debug, so trace lines are logged one level lower still, at
// slog.LevelDebug-4, so a handler can filter them out independently of
// ordinary debug logging.
func Trace(msg string, args ...any) {
	const levelTrace = slog.LevelDebug - 4
	current.Load().Log(nil, levelTrace, msg, args...)
}
