package tessellate

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/szledan/gepard-sub001/internal/cache"
	"github.com/szledan/gepard-sub001/internal/parallel"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by this package, and propagates
// it to internal/parallel and internal/cache (TessellateAll's worker
// pool and Cache's memoization layer). Pass nil to restore the default
// silent behavior. Safe for concurrent use.
//
// The tessellator logs at slog.LevelDebug with the fill rule and the
// final trapezoid count; it never logs at Warn, since every input it walks has
// already been validated by the approximator.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
	parallel.SetLogger(l)
	cache.SetLogger(l)
}

// Logger returns the current logger used by this package.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
