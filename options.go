package gepard

import (
	"github.com/szledan/gepard-sub001/approximate"
	"github.com/szledan/gepard-sub001/backend"
	"github.com/szledan/gepard-sub001/tessellate"
)

// Option configures a Canvas during creation.
type Option func(*canvasOptions)

type canvasOptions struct {
	backend        backend.Backend
	antiAliasLevel int
	fillRule       tessellate.FillRule
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		antiAliasLevel: approximate.DefaultAntiAliasLevel,
		fillRule:       tessellate.NonZero,
	}
}

// WithBackend supplies an already-constructed, registered, or custom
// backend.Backend instead of letting NewCanvas pick one from the
// registry. The Canvas still calls Init on it.
func WithBackend(b backend.Backend) Option {
	return func(o *canvasOptions) { o.backend = b }
}

// WithAntiAliasLevel sets the y-axis oversampling factor used both by
// curve flattening and by the software backend's sub-row sampling.
// Non-positive values are ignored.
func WithAntiAliasLevel(level int) Option {
	return func(o *canvasOptions) {
		if level > 0 {
			o.antiAliasLevel = level
		}
	}
}

// WithFillRule sets the fill rule applied to every Fill call (Stroke
// always tessellates its generated outline with tessellate.NonZero,
// since a stroke outline's winding is an implementation detail of the
// stroke builder, not something a caller chooses).
func WithFillRule(rule tessellate.FillRule) Option {
	return func(o *canvasOptions) { o.fillRule = rule }
}
