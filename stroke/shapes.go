package stroke

import (
	"math"

	"github.com/szledan/gepard-sub001/geom"
)

// addTriangle emits a closed MoveTo/LineTo/LineTo/CloseSubpath triangle,
// choosing the p1/p2 winding order from the sign of crossProduct so the
// emitted triangle's own orientation matches the caller's. A zero
// crossProduct (degenerate, collinear triangle) emits nothing.
func (b *Builder) addTriangle(p0, p1, p2 geom.FloatPoint, crossProduct float64) {
	if crossProduct == 0 {
		return
	}
	b.out.MoveTo(p0)
	if crossProduct > 0 {
		b.out.LineTo(p1)
		b.out.LineTo(p2)
	} else {
		b.out.LineTo(p2)
		b.out.LineTo(p1)
	}
	b.out.CloseSubpath()
}

// addBevelTriangle computes the triangle's own signed area and emits it
// via addTriangle with that sign negated, so the fill winds consistently
// with the rest of the stroke's offset geometry.
func (b *Builder) addBevelTriangle(p0, p1, p2 geom.FloatPoint) {
	cross := p1.Sub(p0).Cross(p2.Sub(p0))
	b.addTriangle(p0, p1, p2, -cross)
}

// addQuadShape triangulates the quadrilateral p0-p1-p2-p3, which is not
// guaranteed convex or even simple: opposite offset corners of a sharp
// join can cross. It first tries both diagonals for a simple
// (non-self-intersecting) split; if neither works, it falls back to
// splitting at the intersection of the two diagonals.
func (b *Builder) addQuadShape(p0, p1, p2, p3 geom.FloatPoint) {
	p1p0 := p1.Sub(p0)
	p2p0 := p2.Sub(p0)
	p3p0 := p3.Sub(p0)

	cross1 := p2p0.Cross(p1p0)
	cross2 := p2p0.Cross(p3p0)
	if cross1*cross2 < 0 {
		b.addTriangle(p0, p1, p2, cross1)
		b.addTriangle(p0, p3, p2, cross2)
		return
	}

	p2p1 := p2.Sub(p1)
	p3p1 := p3.Sub(p1)
	cross3 := p3p1.Cross(p1p0.Mul(-1))
	cross4 := p3p1.Cross(p2p1)
	if cross3*cross4 < 0 {
		b.addTriangle(p1, p0, p3, cross3)
		b.addTriangle(p1, p2, p3, cross4)
		return
	}

	if ip, ok := lineIntersection(p0, p2, p1, p3); ok {
		b.addBevelTriangle(p0, p1, ip)
		b.addBevelTriangle(p2, p3, ip)
		return
	}
	// The diagonals are parallel (a degenerate, zero-area quad); nothing
	// sensible to fill.
}

// lineIntersection returns the intersection of infinite lines a-b and
// c-d, or ok=false if they're parallel.
func lineIntersection(a, b, c, d geom.FloatPoint) (geom.FloatPoint, bool) {
	d1 := b.Sub(a)
	d2 := d.Sub(c)
	denom := d1.Cross(d2)
	if denom == 0 {
		return geom.FloatPoint{}, false
	}
	t := c.Sub(a).Cross(d2) / denom
	return a.Add(d1.Mul(t)), true
}

// addRoundShape fans out from location to the straight-line side (the
// chord corner the cross product of (from,to) around location doesn't
// favor) and arcs through miter to the other corner.
func (b *Builder) addRoundShape(location, from, miter, to geom.FloatPoint) {
	if from.Equal(to) || location.Equal(from) || location.Equal(to) {
		return
	}
	cross := from.Sub(location).Cross(to.Sub(location))
	b.out.MoveTo(location)
	if cross < 0 {
		b.out.LineTo(from)
		b.out.ArcTo(miter, to, b.halfWidth)
	} else {
		b.out.LineTo(to)
		b.out.ArcTo(miter, from, b.halfWidth)
	}
	b.out.CloseSubpath()
}

// miterOffset returns the vector from a joint's location to its miter
// point: halfWidth/sin(phi/2) along the bisector of u1 and -u2, where
// phi is the interior angle between the two tangents. Returns the zero
// vector if the bisector degenerates (u1, u2 exactly opposite), which
// callers must already have excluded via reverseDirection.
func miterOffset(u1, u2 geom.FloatPoint, halfWidth float64) geom.FloatPoint {
	cosPhi := u1.Dot(u2.Mul(-1))
	bisector := u1.Add(u2.Mul(-1))
	bisectorLen := bisector.Length()
	if bisectorLen == 0 {
		return geom.FloatPoint{}
	}
	length := halfWidth / math.Sqrt((1-cosPhi)*0.5)
	return bisector.Mul(length / bisectorLen)
}

// miterAccepted reports whether the miter point for u1, u2 stays within
// miterLimitSquared, per miterLimit^2 * (1 - cos(phi)) >= 2.
func miterAccepted(u1, u2 geom.FloatPoint, miterLimitSquared float64) bool {
	cosPhi := u1.Dot(u2.Mul(-1))
	return miterLimitSquared*(1-cosPhi) >= 2
}

// addJoinShape connects fromLine's end to toLine's start according to
// the builder's configured Join, or as an intermediate cap if the two
// tangents reverse.
func (b *Builder) addJoinShape(from, to *lineAttributes) {
	if from.length == 0 || to.length == 0 {
		return
	}
	dir := from.vectorCompare(to)
	switch dir {
	case sameDirection:
		return
	case reverseDirection:
		b.addCapShape(b.cap, true)
		return
	}

	switch b.join {
	case RoundJoin:
		miter := to.location.Add(miterOffset(from.unit, to.unit, b.halfWidth))
		if dir == negativeDirection {
			b.addRoundShape(to.location, from.endBottom, miter, to.startBottom)
		} else {
			b.addRoundShape(to.location, to.startTop, miter, from.endTop)
		}
	case MiterJoin:
		if miterAccepted(from.unit, to.unit, b.miterLimitSquared) {
			miter := to.location.Add(miterOffset(from.unit, to.unit, b.halfWidth))
			if dir == negativeDirection {
				b.addQuadShape(to.location, from.endBottom, miter, to.startBottom)
			} else {
				b.addQuadShape(to.location, to.startTop, miter, from.endTop)
			}
			return
		}
		b.addBevel(from, to, dir)
	default: // BevelJoin
		b.addBevel(from, to, dir)
	}
}

func (b *Builder) addBevel(from, to *lineAttributes, dir joinDirection) {
	if dir == negativeDirection {
		b.addBevelTriangle(to.location, from.endBottom, to.startBottom)
	} else {
		b.addBevelTriangle(to.location, from.endTop, to.startTop)
	}
}

// addCapShape caps shapeFirstLine's start and lastLine's end per cap.
// An intermediate cap (inserted for a mid-stroke reversal) only emits
// the round-cap start if shapeFirstLine has a real length; the end is
// always gated on lastLine's length regardless of intermediate.
func (b *Builder) addCapShape(cap Cap, intermediate bool) {
	if cap == ButtCap {
		return
	}

	first, last := b.shapeFirstLine, b.lastLine
	startTopMargin := first.startTop.Sub(first.thicknessOffsets)
	startBottomMargin := first.startBottom.Sub(first.thicknessOffsets)
	endTopMargin := last.endTop.Add(last.thicknessOffsets)
	endBottomMargin := last.endBottom.Add(last.thicknessOffsets)

	switch cap {
	case SquareCap:
		if first.length != 0 {
			b.addQuadShape(first.startBottom, startBottomMargin, startTopMargin, first.startTop)
		}
		if last.length != 0 {
			b.addQuadShape(last.endBottom, endBottomMargin, endTopMargin, last.endTop)
		}
	case RoundCap:
		if !intermediate || first.length != 0 {
			mid := startTopMargin.Add(startBottomMargin).Mul(0.5)
			b.addRoundShape(first.location, first.startBottom, startBottomMargin, mid)
			b.addRoundShape(first.location, mid, startTopMargin, first.startTop)
		}
		if last.length != 0 {
			mid := endTopMargin.Add(endBottomMargin).Mul(0.5)
			endCenter := last.location.Add(last.vector)
			b.addRoundShape(endCenter, last.endBottom, endBottomMargin, mid)
			b.addRoundShape(endCenter, mid, endTopMargin, last.endTop)
		}
	}
}
