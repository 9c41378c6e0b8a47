package gepard

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/szledan/gepard-sub001/approximate"
	"github.com/szledan/gepard-sub001/backend"
	"github.com/szledan/gepard-sub001/stroke"
	"github.com/szledan/gepard-sub001/surface"
	"github.com/szledan/gepard-sub001/tessellate"
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

// SetLogger configures the logger used by this package and propagates it
// to every pipeline stage (approximate, tessellate, stroke, backend,
// surface), so a caller only has to set a logger once on the Canvas's
// package rather than on each collaborator individually. Pass nil to
// restore silent behavior everywhere.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
	approximate.SetLogger(l)
	tessellate.SetLogger(l)
	stroke.SetLogger(l)
	backend.SetLogger(l)
	surface.SetLogger(l)
}

// Logger returns the current logger used by this package.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
