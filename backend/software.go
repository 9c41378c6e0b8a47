package backend

import (
	"math"
	"sort"

	"github.com/szledan/gepard-sub001/approximate"
	"github.com/szledan/gepard-sub001/core"
	"github.com/szledan/gepard-sub001/geom"
	"github.com/szledan/gepard-sub001/tessellate"
)

func init() {
	Register("software", func() Backend { return &SoftwareBackend{} })
}

// SoftwareBackend rasterizes trapezoids on the CPU by sampling
// antiAliasLevel horizontal sub-rows per pixel row and accumulating
// fractional x-coverage for each sub-row into a core.AlphaRuns buffer,
// then averaging the sub-row coverage down to one alpha value per pixel.
type SoftwareBackend struct {
	initialized bool
}

// NewSoftwareBackend creates a software rendering backend.
func NewSoftwareBackend() *SoftwareBackend { return &SoftwareBackend{} }

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string { return "software" }

// Init marks the backend ready for use. The software backend needs no
// external resources, so this never fails.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases backend resources. The software backend holds none.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// Render rasterizes trapezoids, clipped to bbox and filled with color,
// into a freshly allocated pixmap sized to bbox's ceiling dimensions.
func (b *SoftwareBackend) Render(trapezoids tessellate.TrapezoidList, bbox geom.BoundingBox, color Color, antiAliasLevel int) (*Pixmap, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	if antiAliasLevel <= 0 {
		antiAliasLevel = approximate.DefaultAntiAliasLevel
	}

	width := int(math.Ceil(bbox.Width()))
	height := int(math.Ceil(bbox.Height()))
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	pm := NewPixmap(width, height)
	if len(trapezoids) == 0 || color.A == 0 {
		return pm, nil
	}

	ar := core.NewAlphaRuns(width)
	rowCoverage := make([]uint32, width)
	type span struct{ left, right float64 }
	var spans []span

	for y := 0; y < height; y++ {
		for i := range rowCoverage {
			rowCoverage[i] = 0
		}

		for s := 0; s < antiAliasLevel; s++ {
			sy := bbox.MinY + float64(y) + (float64(s)+0.5)/float64(antiAliasLevel)

			spans = spans[:0]
			for _, t := range trapezoids {
				if sy < t.TopY || sy >= t.BottomY {
					continue
				}
				left, right := lerpX(t, sy)
				spans = append(spans, span{left: left - bbox.MinX, right: right - bbox.MinX})
			}
			sort.Slice(spans, func(i, j int) bool { return spans[i].left < spans[j].left })

			ar.Reset()
			for _, sp := range spans {
				addCoverage(ar, sp.left, sp.right, width)
			}
			for x, alpha := range ar.Iter() {
				rowCoverage[x] += uint32(alpha)
			}
		}

		for x := 0; x < width; x++ {
			avg := rowCoverage[x] / uint32(antiAliasLevel)
			if avg == 0 {
				continue
			}
			blendPixel(pm, x, y, color, uint8(avg))
		}
	}

	Logger().Debug("backend/software: rendered", "width", width, "height", height, "trapezoids", len(trapezoids))
	return pm, nil
}

// lerpX returns the left/right x-coordinates of trapezoid t at height y,
// linearly interpolated between its top and bottom edges.
func lerpX(t tessellate.Trapezoid, y float64) (left, right float64) {
	span := t.BottomY - t.TopY
	if span == 0 {
		return t.TopLeftX, t.TopRightX
	}
	frac := (y - t.TopY) / span
	left = t.TopLeftX + (t.BottomLeftX-t.TopLeftX)*frac
	right = t.TopRightX + (t.BottomRightX-t.TopRightX)*frac
	return left, right
}

// addCoverage records full coverage of the pixel range [left, right),
// clipped to [0, width), into ar: partial alpha for the two edge pixels,
// full (255) for every pixel strictly between them.
func addCoverage(ar *core.AlphaRuns, left, right float64, width int) {
	if right <= left {
		return
	}
	if left < 0 {
		left = 0
	}
	if right > float64(width) {
		right = float64(width)
	}
	if left >= right {
		return
	}

	ix0 := int(math.Floor(left))
	ix1 := int(math.Floor(right - 1e-9))
	if ix1 >= width {
		ix1 = width - 1
	}
	if ix0 > ix1 {
		return
	}

	if ix0 == ix1 {
		if a := fracAlpha(right - left); a > 0 {
			ar.Add(ix0, a, 0, 0)
		}
		return
	}

	startAlpha := fracAlpha(float64(ix0+1) - left)
	endAlpha := fracAlpha(right - float64(ix1))
	middleCount := ix1 - ix0 - 1
	ar.Add(ix0, startAlpha, middleCount, endAlpha)
}

// fracAlpha converts a 0..1 coverage fraction to an 8-bit alpha, clamping
// out-of-range input.
func fracAlpha(frac float64) uint8 {
	if frac <= 0 {
		return 0
	}
	if frac >= 1 {
		return 255
	}
	return uint8(frac*255 + 0.5)
}

// blendPixel writes color into pm at (x, y) scaled by coverage and the
// color's own alpha. Pixmaps start fully transparent and Render performs a
// single solid-color fill, so this is a plain overwrite rather than an
// over-composite against existing content.
func blendPixel(pm *Pixmap, x, y int, color Color, coverage uint8) {
	a := uint16(coverage) * uint16(color.A) / 255
	i := y*pm.Stride + x*4
	pm.Pix[i] = color.R
	pm.Pix[i+1] = color.G
	pm.Pix[i+2] = color.B
	pm.Pix[i+3] = uint8(a)
}
