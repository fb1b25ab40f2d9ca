package gauge

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. It reports itself disabled, so log calls on
// the default logger return before building attributes.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var silent = slog.New(discard{})

// current is swapped by SetLogger while groups on other goroutines log.
var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger routes the diagnostics of gauge, its backends and config to l.
// A nil l silences them again, which is also the initial state.
//
// Debug records carry absorbed corrections (nudged ranges, rejected
// colors), bar creation and render passes. Info marks a config reload and
// Warn a reload that could not be decoded.
//
//	gauge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
