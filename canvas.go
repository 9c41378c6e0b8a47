// Package gepard is a canvas-style 2D vector-graphics façade over a
// geometry pipeline of independent stages: path construction
// (pathdata), curve flattening (approximate), stroke-to-fill conversion
// (stroke), trapezoid tessellation (tessellate), rasterization
// (backend) and compositing (surface). A Canvas owns exactly one
// current path and one paint state (fill color, stroke color, line
// width/cap/join/miter-limit); there is no transform stack.
package gepard

import (
	"image"
	"io"
	"math"

	"github.com/szledan/gepard-sub001/backend"
	"github.com/szledan/gepard-sub001/geom"
	"github.com/szledan/gepard-sub001/pathdata"
	"github.com/szledan/gepard-sub001/stroke"
	"github.com/szledan/gepard-sub001/surface"
	"github.com/szledan/gepard-sub001/tessellate"
)

// paintState is the part of a Canvas's state that Save/Restore push and
// pop. It deliberately excludes the current path: HTML5 canvas's own
// save/restore leaves the current path untouched, and this façade
// follows that convention.
type paintState struct {
	fillColor   Color
	strokeColor Color
	strokeOpts  stroke.Options
}

func defaultPaintState() paintState {
	return paintState{
		fillColor:   Black,
		strokeColor: Black,
		strokeOpts:  stroke.DefaultOptions(),
	}
}

// Canvas is a stateful drawing surface. It is not safe for concurrent
// use by multiple goroutines.
type Canvas struct {
	width, height  int
	antiAliasLevel int
	fillRule       tessellate.FillRule

	backend backend.Backend
	surface *surface.Surface

	path  *pathdata.PathData
	state paintState
	stack []paintState

	closed bool
}

// NewCanvas allocates a width x height Canvas with a fully transparent
// backing surface. By default it picks a backend from the registry,
// preferring "native" but falling back to "software" since the native
// GPU backend is presently a skeleton whose Init never succeeds; pass
// WithBackend to supply one explicitly.
func NewCanvas(width, height int, opts ...Option) (*Canvas, error) {
	options := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&options)
	}

	b := options.backend
	if b == nil {
		var err error
		b, err = selectBackend()
		if err != nil {
			return nil, err
		}
	} else if err := b.Init(); err != nil {
		return nil, err
	}

	return &Canvas{
		width:          width,
		height:         height,
		antiAliasLevel: options.antiAliasLevel,
		fillRule:       options.fillRule,
		backend:        b,
		surface:        surface.New(width, height),
		path:           pathdata.New(),
		state:          defaultPaintState(),
	}, nil
}

// selectBackend walks the registry's priority order, Init-ing each
// candidate until one succeeds. Unlike backend.InitDefault, which inits
// only the single highest-priority backend and surfaces whatever error
// that produces, this needs to fall through past a backend whose Init
// is a permanent stub failure.
func selectBackend() (backend.Backend, error) {
	for _, name := range []string{"native", "software"} {
		b := backend.Get(name)
		if b == nil {
			continue
		}
		if err := b.Init(); err == nil {
			return b, nil
		}
	}
	return nil, backend.ErrBackendNotAvailable
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Close releases the canvas's backend and backing surface. Close is
// idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.backend.Close()
	return c.surface.Close()
}

// BeginPath discards the current path and starts a new, empty one.
func (c *Canvas) BeginPath() {
	c.path = pathdata.New()
}

// ClosePath closes the current subpath with a line back to its most
// recent MoveTo.
func (c *Canvas) ClosePath() {
	c.path.CloseSubpath()
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.path.MoveTo(geom.Pt(x, y))
}

// LineTo appends a line to (x, y).
func (c *Canvas) LineTo(x, y float64) {
	c.path.LineTo(geom.Pt(x, y))
}

// QuadraticCurveTo appends a quadratic Bézier curve through control
// point (cx, cy) ending at (x, y).
func (c *Canvas) QuadraticCurveTo(cx, cy, x, y float64) {
	c.path.QuadraticCurveTo(geom.Pt(cx, cy), geom.Pt(x, y))
}

// BezierCurveTo appends a cubic Bézier curve through control points
// (c1x, c1y) and (c2x, c2y) ending at (x, y).
func (c *Canvas) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.BezierCurveTo(geom.Pt(c1x, c1y), geom.Pt(c2x, c2y), geom.Pt(x, y))
}

// ArcTo appends a circular arc of the given radius tangent to the lines
// (current point -> (x1, y1)) and ((x1, y1) -> (x2, y2)), preceded by a
// line to the first tangent point, matching the HTML5 2D context's
// arcTo.
func (c *Canvas) ArcTo(x1, y1, x2, y2, radius float64) {
	c.path.ArcTo(geom.Pt(x1, y1), geom.Pt(x2, y2), radius)
}

// Arc appends an elliptical arc centered at (x, y) with radius r,
// sweeping from startAngle to endAngle (radians, clockwise by default,
// matching the HTML5 2D context convention with y growing downward).
func (c *Canvas) Arc(x, y, r, startAngle, endAngle float64, counterClockwise bool) {
	c.path.Arc(geom.Pt(x, y), r, r, startAngle, endAngle, counterClockwise)
}

// Rect appends a closed rectangular subpath: a MoveTo to (x, y),
// three LineTos tracing the rectangle, and a CloseSubpath.
func (c *Canvas) Rect(x, y, w, h float64) {
	c.path.MoveTo(geom.Pt(x, y))
	c.path.LineTo(geom.Pt(x+w, y))
	c.path.LineTo(geom.Pt(x+w, y+h))
	c.path.LineTo(geom.Pt(x, y+h))
	c.path.CloseSubpath()
}

// Save pushes the current paint state (fill color, stroke color, line
// width/cap/join/miter-limit) onto a stack. The current path is not
// affected.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recently saved paint state. Returns
// ErrRestoreWithoutSave if the stack is empty.
func (c *Canvas) Restore() error {
	if len(c.stack) == 0 {
		return ErrRestoreWithoutSave
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return nil
}

// SetFillColor sets the color used by Fill and FillRect.
func (c *Canvas) SetFillColor(color Color) { c.state.fillColor = color }

// SetStrokeColor sets the color used by Stroke.
func (c *Canvas) SetStrokeColor(color Color) { c.state.strokeColor = color }

// SetLineWidth sets the stroke width. Non-positive values fall back to 1,
// per the recognized default.
func (c *Canvas) SetLineWidth(width float64) { c.state.strokeOpts.Width = width }

// SetLineCap sets how Stroke caps a subpath's open ends.
func (c *Canvas) SetLineCap(cap stroke.Cap) { c.state.strokeOpts.Cap = cap }

// SetLineJoin sets how Stroke connects consecutive segments at a corner.
func (c *Canvas) SetLineJoin(join stroke.Join) { c.state.strokeOpts.Join = join }

// SetMiterLimit sets the miter-length-to-half-width ratio beyond which a
// MiterJoin degrades to a BevelJoin. Non-positive values fall back to 10,
// per the recognized default.
func (c *Canvas) SetMiterLimit(limit float64) { c.state.strokeOpts.MiterLimit = limit }

// Fill tessellates the current path with the canvas's configured fill
// rule and rasterizes it in the current fill color. An empty path is a
// no-op. The current path is left untouched; call BeginPath to start a
// new one.
func (c *Canvas) Fill() error {
	if c.closed {
		return ErrClosed
	}
	return c.renderPath(c.path, c.fillRule, c.state.fillColor)
}

// FillRect fills the rectangle (x, y, w, h) in the current fill color,
// without consulting or modifying the current path.
func (c *Canvas) FillRect(x, y, w, h float64) error {
	if c.closed {
		return ErrClosed
	}
	rectPath := pathdata.New()
	rectPath.MoveTo(geom.Pt(x, y))
	rectPath.LineTo(geom.Pt(x+w, y))
	rectPath.LineTo(geom.Pt(x+w, y+h))
	rectPath.LineTo(geom.Pt(x, y+h))
	rectPath.CloseSubpath()
	return c.renderPath(rectPath, tessellate.NonZero, c.state.fillColor)
}

// Stroke converts the current path to its stroked outline (per the
// canvas's current line width, cap, join and miter limit) and
// rasterizes that outline in the current stroke color. The current
// path is left untouched.
func (c *Canvas) Stroke() error {
	if c.closed {
		return ErrClosed
	}
	outline, err := stroke.Build(c.path, c.state.strokeOpts)
	if err != nil {
		return err
	}
	return c.renderPath(outline, tessellate.NonZero, c.state.strokeColor)
}

// renderPath tessellates path with rule, hands the resulting trapezoids
// to the backend, and composites the rendered pixmap onto the surface
// at the trapezoids' bounding box. An empty trapezoid list is a valid
// no-op, per the backend contract.
func (c *Canvas) renderPath(path *pathdata.PathData, rule tessellate.FillRule, color Color) error {
	trapezoids, bbox, err := tessellate.Tessellate(path, rule, c.antiAliasLevel)
	if err != nil {
		return err
	}
	if len(trapezoids) == 0 {
		return nil
	}

	pm, err := c.backend.Render(trapezoids, bbox, color, c.antiAliasLevel)
	if err != nil {
		return err
	}

	offsetX := int(math.Floor(bbox.MinX))
	offsetY := int(math.Floor(bbox.MinY))
	return c.surface.Composite(pm, offsetX, offsetY)
}

// Clear overwrites every pixel of the canvas with color.
func (c *Canvas) Clear(color Color) error {
	if c.closed {
		return ErrClosed
	}
	return c.surface.Clear(color)
}

// Image returns a copy of the canvas's current contents as a standard
// library image.RGBA.
func (c *Canvas) Image() image.Image {
	return c.surface.ToImage()
}

// EncodePNG writes the canvas's current contents to w as a PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.closed {
		return ErrClosed
	}
	return c.surface.EncodePNG(w)
}
