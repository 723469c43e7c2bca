package splat

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// logger is the active package logger (no lock; splat is single-threaded).
var logger = newNopLogger()

// SetLogger configures the logger used by splat. By default splat produces
// no log output. Pass nil to restore the silent default.
//
// Log levels used by splat:
//   - [slog.LevelDebug]: lifecycle events and per-frame stats in debug mode
//   - [slog.LevelInfo]: backend binding
//   - [slog.LevelWarn]: teardown-order violations and failed captures
//
// Example:
//
//	splat.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	logger = l
}

// Logger returns the current logger used by splat.
func Logger() *slog.Logger {
	return logger
}
