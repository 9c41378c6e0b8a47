package geom

import "math"

// BoundingBox is an axis-aligned rectangle. A freshly created BoundingBox
// is "empty" (initialized to +Inf, +Inf, -Inf, -Inf) and absorbs points via
// Stretch; an empty box never contains anything until stretched.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewBoundingBox returns an empty bounding box ready to be stretched.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether the box has never been stretched.
func (b BoundingBox) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// StretchX widens the box, if needed, to include x.
func (b *BoundingBox) StretchX(x float64) {
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
}

// StretchY widens the box, if needed, to include y.
func (b *BoundingBox) StretchY(y float64) {
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Stretch widens the box, if needed, to include p.
func (b *BoundingBox) Stretch(p FloatPoint) {
	b.StretchX(p.X)
	b.StretchY(p.Y)
}

// Div returns a copy of b with every field divided by s.
func (b BoundingBox) Div(s float64) BoundingBox {
	return BoundingBox{MinX: b.MinX / s, MinY: b.MinY / s, MaxX: b.MaxX / s, MaxY: b.MaxY / s}
}

// Width returns MaxX - MinX.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }
