// Package backend abstracts rasterization of tessellated geometry into a
// pixel buffer, so the facade can pick a software rasterizer or a real GPU
// backend without its callers knowing which.
package backend

import (
	"github.com/szledan/gepard-sub001/geom"
	"github.com/szledan/gepard-sub001/tessellate"
)

// Color is a straight (non-premultiplied), numeric-only color. There is no
// string-parsing constructor: callers that need named or hex colors resolve
// them above this package.
type Color struct {
	R, G, B, A uint8
}

// Pixmap is an RGBA8, straight-alpha, row-major pixel buffer: Pix has
// Height*Stride bytes, pixel (x,y) occupies Pix[y*Stride+x*4 : +4].
type Pixmap struct {
	Width, Height int
	Stride        int
	Pix           []uint8
}

// NewPixmap allocates a zeroed (fully transparent) pixmap.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := width * 4
	return &Pixmap{
		Width:  width,
		Height: height,
		Stride: stride,
		Pix:    make([]uint8, stride*height),
	}
}

// At returns the color stored at (x, y). Out-of-bounds coordinates return
// the zero Color.
func (p *Pixmap) At(x, y int) Color {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return Color{}
	}
	i := y*p.Stride + x*4
	return Color{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: p.Pix[i+3]}
}

// Backend rasterizes a single solid-color fill of already-tessellated
// geometry into a pixmap sized to bbox. Backends must be registered via
// Register and selected via Get or Default.
type Backend interface {
	// Name returns the backend identifier ("software", "native").
	Name() string

	// Init prepares the backend for use. Render before Init returns
	// ErrNotInitialized.
	Init() error

	// Close releases backend resources. The backend must not be used
	// after Close.
	Close()

	// Render rasterizes trapezoids (already tessellated at antiAliasLevel)
	// clipped to bbox, filled with color, into a freshly allocated pixmap
	// sized to bbox's dimensions.
	Render(trapezoids tessellate.TrapezoidList, bbox geom.BoundingBox, color Color, antiAliasLevel int) (*Pixmap, error)
}
