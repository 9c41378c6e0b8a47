package backend

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/szledan/gepard-sub001/core"
)

// nopHandler silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by this package, and propagates it
// to core (the RLE coverage buffer the software backend fills). Pass nil
// to restore the default silent behavior. Safe for concurrent use.
//
// The software backend logs at slog.LevelDebug with per-render pixmap
// dimensions and trapezoid counts.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
	core.SetLogger(l)
}

// Logger returns the current logger used by this package.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
