package pathdata

import (
	"math"

	"github.com/szledan/gepard-sub001/geom"
)

// PathData is an append-only sequence of Elements backed by a geom.Region
// arena. The first element, if any, is always a MoveTo; two consecutive
// MoveTo collapse into one; a redundant LineTo is absorbed; CloseSubpath
// always ends at the most recent MoveTo's point.
//
// A PathData is built monotonically and is not safe for concurrent
// mutation, but is safe to read (tessellate) from multiple goroutines
// once construction has finished, since nothing mutates it afterward.
type PathData struct {
	region     *geom.Region[Element]
	first      *Element
	last       *Element
	lastMoveTo *Element
}

// New returns an empty PathData.
func New() *PathData {
	return &PathData{region: geom.NewRegion[Element]()}
}

// Empty reports whether the path has no elements.
func (p *PathData) Empty() bool { return p.first == nil }

// First returns the first element, or nil if the path is empty.
func (p *PathData) First() *Element { return p.first }

// Last returns the most recently appended element, or nil if empty.
func (p *PathData) Last() *Element { return p.last }

// CurrentPoint returns the end-point of the last element and true, or
// the zero point and false if the path is empty.
func (p *PathData) CurrentPoint() (geom.FloatPoint, bool) {
	if p.last == nil {
		return geom.FloatPoint{}, false
	}
	return p.last.To, true
}

func (p *PathData) alloc() *Element {
	return p.region.Alloc()
}

func (p *PathData) append(e *Element) {
	if p.first == nil {
		p.first = e
	} else {
		p.last.next = e
	}
	p.last = e
}

// MoveTo starts a new subpath at pt. Overwrites the endpoint of a
// trailing bare MoveTo rather than appending a second one.
func (p *PathData) MoveTo(pt geom.FloatPoint) {
	if p.last != nil && p.last.Kind == MoveTo {
		p.last.To = pt
	} else {
		e := p.alloc()
		e.Kind = MoveTo
		e.To = pt
		p.append(e)
	}
	p.lastMoveTo = p.last
}

// LineTo appends a line to pt. If the path is empty this behaves like
// MoveTo(pt). A LineTo that repeats the endpoint of a non-MoveTo last
// element is absorbed (not appended).
func (p *PathData) LineTo(pt geom.FloatPoint) {
	if p.last == nil {
		p.MoveTo(pt)
		return
	}
	if p.last.Kind != MoveTo && p.last.To.Equal(pt) {
		return
	}
	e := p.alloc()
	e.Kind = LineTo
	e.To = pt
	p.append(e)
}

// QuadraticCurveTo appends a quadratic Bézier with control point c ending
// at pt. An empty path first gets an implicit MoveTo(pt).
func (p *PathData) QuadraticCurveTo(c, pt geom.FloatPoint) {
	if p.Empty() {
		p.MoveTo(pt)
	}
	e := p.alloc()
	e.Kind = QuadraticCurve
	e.Control1 = c
	e.To = pt
	p.append(e)
}

// BezierCurveTo appends a cubic Bézier with control points c1, c2 ending
// at pt. An empty path first gets an implicit MoveTo(pt).
func (p *PathData) BezierCurveTo(c1, c2, pt geom.FloatPoint) {
	if p.Empty() {
		p.MoveTo(pt)
	}
	e := p.alloc()
	e.Kind = CubicCurve
	e.Control1 = c1
	e.Control2 = c2
	e.To = pt
	p.append(e)
}

// CloseSubpath ends the current subpath with a line back to its opening
// MoveTo. A no-op on an empty path or one already ending in CloseSubpath.
// A trailing bare MoveTo is first promoted in place to a LineTo at its
// own point, preserving the invariant that CloseSubpath's endpoint equals
// the most recent MoveTo's endpoint.
func (p *PathData) CloseSubpath() {
	if p.Empty() || p.last.Kind == CloseSubpath {
		return
	}
	if p.last.Kind == MoveTo {
		p.last.Kind = LineTo
	}
	e := p.alloc()
	e.Kind = CloseSubpath
	e.To = p.lastMoveTo.To
	p.append(e)
}

const twoPi = 2 * math.Pi

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// normalizeArcAngles normalizes (a0, a1) into the canonical sweep the
// tessellator's arc flattener expects: for a clockwise sweep (ccw=false),
// endAngle >= startAngle and endAngle-startAngle <= 2π; counter-clockwise
// mirrors this.
func normalizeArcAngles(a0, a1 float64, ccw bool) (start, end float64) {
	start = normalizeAngle(a0)
	end = normalizeAngle(a1)
	if ccw {
		if end >= start {
			end -= twoPi
		}
	} else {
		if end <= start {
			end += twoPi
		}
	}
	return start, end
}

// Arc appends an elliptical arc centered at center with radii (rx, ry),
// sweeping from angle a0 to a1 (radians, clockwise by default, matching
// the HTML5 2D context convention with y growing downward).
//
// An empty path first gets an implicit MoveTo(center). A degenerate arc
// (zero radius or zero sweep) is replaced by a LineTo to the arc's start
// point. Otherwise, if the current point differs from the arc's start
// point, a connecting LineTo is inserted first.
func (p *PathData) Arc(center geom.FloatPoint, rx, ry, a0, a1 float64, ccw bool) {
	if p.Empty() {
		p.MoveTo(center)
	}

	start := geom.Pt(center.X+rx*math.Cos(a0), center.Y+ry*math.Sin(a0))
	if rx == 0 || ry == 0 || a0 == a1 {
		p.LineTo(start)
		return
	}

	if cur, ok := p.CurrentPoint(); !ok || !cur.Equal(start) {
		p.LineTo(start)
	}

	sa, ea := normalizeArcAngles(a0, a1, ccw)
	end := geom.Pt(center.X+rx*math.Cos(ea), center.Y+ry*math.Sin(ea))

	e := p.alloc()
	e.Kind = Arc
	e.Center = center
	e.RadiusX = rx
	e.RadiusY = ry
	e.StartAngle = sa
	e.EndAngle = ea
	e.CounterClockwise = ccw
	e.To = end
	p.append(e)
}

// collinearCosineThreshold is the |cos(angle)| above which ArcTo treats
// the previous point, control point and end point as collinear and falls
// back to a straight LineTo, per the spec's ~0.9999 tolerance.
const collinearCosineThreshold = 0.9999

// ArcTo appends a circular arc of the given radius tangent to the two
// half-lines (currentPoint→control) and (control→end), preceded by a
// LineTo to the first tangent point. If there is no current point, this
// behaves as a MoveTo(control). If the three points are collinear or the
// geometry is otherwise degenerate, this falls back to a LineTo(control).
func (p *PathData) ArcTo(control, end geom.FloatPoint, radius float64) {
	cur, ok := p.CurrentPoint()
	if !ok {
		p.MoveTo(control)
		return
	}
	if radius <= 0 {
		p.LineTo(control)
		return
	}

	v1 := cur.Sub(control)
	v2 := end.Sub(control)
	len1, len2 := v1.Length(), v2.Length()
	if len1 == 0 || len2 == 0 {
		p.LineTo(control)
		return
	}
	u1, u2 := v1.Div(len1), v2.Div(len2)

	cosPhi := u1.Dot(u2)
	if cosPhi > 1 {
		cosPhi = 1
	} else if cosPhi < -1 {
		cosPhi = -1
	}
	if math.Abs(cosPhi) >= collinearCosineThreshold {
		p.LineTo(control)
		return
	}

	phi := math.Acos(cosPhi)
	tangentLen := radius / math.Tan(phi/2)
	t1 := control.Add(u1.Mul(tangentLen))
	t2 := control.Add(u2.Mul(tangentLen))

	bisector := u1.Add(u2)
	blen := bisector.Length()
	if blen == 0 {
		p.LineTo(control)
		return
	}
	bisector = bisector.Div(blen)
	center := control.Add(bisector.Mul(radius / math.Sin(phi/2)))

	ccw := u1.Cross(u2) > 0
	startAngle, endAngle := normalizeArcAngles(
		math.Atan2(t1.Y-center.Y, t1.X-center.X),
		math.Atan2(t2.Y-center.Y, t2.X-center.X), ccw)

	p.LineTo(t1)
	e := p.alloc()
	e.Kind = Arc
	e.Center = center
	e.RadiusX = radius
	e.RadiusY = radius
	e.StartAngle = startAngle
	e.EndAngle = endAngle
	e.CounterClockwise = ccw
	e.To = t2
	p.append(e)
}
