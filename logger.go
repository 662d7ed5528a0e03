// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mcubes

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the package logger. By default mcubes produces no
// log output. Pass nil to restore the silent default.
//
// The logger is read when an Orchestrator is created; orchestrators that
// already exist keep the logger they started with. WithLogger overrides it
// for a single orchestrator.
//
// Log levels used by mcubes:
//   - [slog.LevelDebug]: batch launch and publication, cache hits
//   - [slog.LevelInfo]: orchestrator lifecycle
//   - [slog.LevelWarn]: mirror refresh failures
//
// Example:
//
//	mcubes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
