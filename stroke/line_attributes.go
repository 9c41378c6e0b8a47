package stroke

import "github.com/szledan/gepard-sub001/geom"

// joinDirection classifies how two consecutive unit tangents turn at a
// joint, by the sign of their cross product.
type joinDirection int8

const (
	// sameDirection: parallel, same heading; no join geometry is needed.
	sameDirection joinDirection = iota
	// reverseDirection: anti-parallel; treated as an intermediate cap.
	reverseDirection
	positiveDirection
	negativeDirection
)

// lineAttributes caches the offset geometry of one straight segment
// (from, to) at a given halfWidth: its unit tangent and the four
// corners obtained by offsetting from/to by halfWidth along the
// tangent's normal.
//
// A zero-vector set leaves every field but location and vector untouched, so a
// degenerate call never corrupts a slot's last real geometry; callers
// that need the segment to be meaningful must check length != 0, or
// simply never call set with from == to (every caller in this package
// filters that case first).
type lineAttributes struct {
	location, vector, unit          geom.FloatPoint
	length                          float64
	thicknessOffsets                geom.FloatPoint
	startTop, startBottom           geom.FloatPoint
	endTop, endBottom               geom.FloatPoint
	next                            *lineAttributes
}

func (l *lineAttributes) set(from, to geom.FloatPoint, halfWidth float64) {
	l.location = from
	l.vector = to.Sub(from)
	if l.vector.Length() == 0 {
		return
	}
	l.length = l.vector.Length()
	l.unit = l.vector.Div(l.length)
	l.thicknessOffsets = l.unit.Mul(halfWidth)
	l.startTop = geom.Pt(from.X+l.thicknessOffsets.Y, from.Y-l.thicknessOffsets.X)
	l.startBottom = geom.Pt(from.X-l.thicknessOffsets.Y, from.Y+l.thicknessOffsets.X)
	l.endBottom = geom.Pt(to.X-l.thicknessOffsets.Y, to.Y+l.thicknessOffsets.X)
	l.endTop = geom.Pt(to.X+l.thicknessOffsets.Y, to.Y-l.thicknessOffsets.X)
}

// vectorCompare classifies the turn from l to o by the sign of their
// unit tangents' cross product; with a zero cross product, a negative
// dot product marks an anti-parallel reversal.
func (l *lineAttributes) vectorCompare(o *lineAttributes) joinDirection {
	cross := l.unit.Cross(o.unit)
	if cross > 0 {
		return positiveDirection
	}
	if cross < 0 {
		return negativeDirection
	}
	if l.unit.Dot(o.unit) < 0 {
		return reverseDirection
	}
	return sameDirection
}
