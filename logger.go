package valuecurve

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all records. Its Enabled
// method returns false, so callers skip argument formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger used by this package. By default, no log
// output is produced. Passing nil restores the silent default.
//
// The package logs at [slog.LevelDebug] only: accumulation rebuilds and
// cache reuse during table fills, and gap statistics from resampling.
//
// SetLogger and [Logger] are safe for concurrent use; the rest of the
// package is not.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by [SetLogger].
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
