package polyclean

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard is a slog.Handler that drops every record. Enabled returns false,
// so callers skip formatting altogether.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(discard{}))
}

// SetLogger sets the logger used by the batch functions. By default, nothing
// is logged. Passing nil restores the default. Logging never affects
// results.
//
// The package logs batch summaries at [slog.LevelDebug] and cancelled
// batches at [slog.LevelWarn].
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	logger.Store(l)
}

// Logger returns the logger set with [SetLogger].
func Logger() *slog.Logger {
	return logger.Load()
}
