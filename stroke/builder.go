// Package stroke converts a stroked path (a centerline plus width, cap
// and join parameters) into an equivalent fillable path: a PathData made
// only of MoveTo/LineTo/Arc/CloseSubpath elements that, run through
// tessellate.Tessellate, covers exactly the area a renderer would paint
// for the original stroke.
package stroke

import (
	"math"

	"github.com/szledan/gepard-sub001/geom"
	"github.com/szledan/gepard-sub001/pathdata"
)

// defaultCurveTolerance is the flatness tolerance used while subdividing
// offset curves in curve.go; unlike approximate's tolerance (which scales
// with the anti-alias factor), this operates directly in user-space
// units since stroke output feeds the tessellator, not the rasterizer.
const defaultCurveTolerance = 0.1

// Builder holds the ring-of-three line-attribute slots and accumulated
// output path for one Build call. It is not safe for concurrent use and
// is not meant to be reused across calls.
type Builder struct {
	halfWidth         float64
	miterLimitSquared float64
	join              Join
	cap               Cap
	tolerance         float64

	lines             [3]lineAttributes
	shapeFirstLine    *lineAttributes
	lastLine          *lineAttributes
	currentLine       *lineAttributes
	hasShapeFirstLine bool

	out *pathdata.PathData
}

func newBuilder(opts Options) *Builder {
	b := &Builder{
		halfWidth:         opts.Width / 2,
		miterLimitSquared: opts.MiterLimit * opts.MiterLimit,
		join:              opts.Join,
		cap:               opts.Cap,
		tolerance:         defaultCurveTolerance,
		out:               pathdata.New(),
	}
	b.shapeFirstLine = &b.lines[0]
	b.lastLine = &b.lines[1]
	b.currentLine = &b.lines[2]
	b.lastLine.next = b.currentLine
	b.currentLine.next = b.lastLine
	return b
}

func (b *Builder) advance() {
	b.lastLine = b.lastLine.next
	b.currentLine = b.currentLine.next
}

// joinOrStart records currentLine as the subpath's opening segment the
// first time it's called for a subpath, or otherwise joins it against
// lastLine.
func (b *Builder) joinOrStart() {
	if !b.hasShapeFirstLine {
		*b.shapeFirstLine = *b.currentLine
		b.hasShapeFirstLine = true
		return
	}
	b.addJoinShape(b.lastLine, b.currentLine)
}

func (b *Builder) addCapShapeIfNeeded() {
	if b.hasShapeFirstLine {
		b.addCapShape(b.cap, false)
	}
}

func (b *Builder) addMoveToShape(to geom.FloatPoint) {
	b.addCapShapeIfNeeded()
	degenerate := lineAttributes{location: to}
	*b.shapeFirstLine = degenerate
	*b.lastLine = lineAttributes{location: to, next: b.currentLine}
	*b.currentLine = lineAttributes{location: to, next: b.lastLine}
	b.hasShapeFirstLine = false
}

func (b *Builder) addLineShape(start, to geom.FloatPoint) {
	if start.Equal(to) {
		return
	}
	b.currentLine.set(start, to, b.halfWidth)
	b.joinOrStart()
	cl := b.currentLine
	b.addQuadShape(cl.startTop, cl.startBottom, cl.endBottom, cl.endTop)
	b.advance()
}

func (b *Builder) addCloseSubpathShape(start, to geom.FloatPoint) {
	if !b.hasShapeFirstLine || start.Equal(to) {
		return
	}
	b.currentLine.set(start, to, b.halfWidth)
	b.addJoinShape(b.lastLine, b.currentLine)
	b.addJoinShape(b.currentLine, b.shapeFirstLine)
	cl := b.currentLine
	b.addQuadShape(cl.startTop, cl.startBottom, cl.endBottom, cl.endTop)
	b.hasShapeFirstLine = false
}

// addQuadraticShape elevates a quadratic control point to the
// equivalent cubic's pair, then defers to addCubicShape.
func (b *Builder) addQuadraticShape(start, c, end geom.FloatPoint) {
	c1 := start.Add(c.Sub(start).Mul(2.0 / 3.0))
	c2 := end.Add(c.Sub(end).Mul(2.0 / 3.0))
	b.addCubicShape(start, c1, c2, end)
}

func (b *Builder) addCubicShape(start, c1, c2, end geom.FloatPoint) {
	startDir := firstNonCoincident(start, []geom.FloatPoint{c1, c2, end})
	if startDir.Length() == 0 {
		Logger().Warn("stroke: dropped degenerate zero-length cubic curve", "at", start)
		return
	}
	b.currentLine.set(start, start.Add(startDir), b.halfWidth)
	b.joinOrStart()

	endDir := firstNonCoincident(end, []geom.FloatPoint{c2, c1, start}).Mul(-1)
	b.currentLine.set(end.Sub(endDir), end, b.halfWidth)

	b.offsetCubic(start, c1, c2, end, 0)
	b.advance()
}

func clampRadius(r float64) float64 {
	if r < 0 {
		return 0
	}
	return r
}

// addArcShape splits the arc into its incoming/outgoing tangent lines
// (for join purposes only) and emits the arc body as a closed ring slab
// between two concentric offset arcs at radius+halfWidth and
// radius-halfWidth, connected by a line at each end.
func (b *Builder) addArcShape(start geom.FloatPoint, e *pathdata.Element) {
	ccw := e.CounterClockwise
	sa, ea := e.StartAngle, e.EndAngle
	rx, ry := e.RadiusX, e.RadiusY
	center := e.Center

	dirSign := -1.0
	if ccw {
		dirSign = 1.0
	}

	startTangent := geom.Pt(dirSign*math.Sin(sa), -dirSign*math.Cos(sa))
	b.currentLine.set(start, start.Add(startTangent), b.halfWidth)
	b.joinOrStart()

	endTangent := geom.Pt(dirSign*math.Sin(ea), -dirSign*math.Cos(ea))
	arcEnd := geom.Pt(center.X+rx*math.Cos(ea), center.Y+ry*math.Sin(ea))
	b.currentLine.set(arcEnd.Sub(endTangent), arcEnd, b.halfWidth)

	firstRx := clampRadius(rx + dirSign*b.halfWidth)
	firstRy := clampRadius(ry + dirSign*b.halfWidth)
	secondRx := clampRadius(rx - dirSign*b.halfWidth)
	secondRy := clampRadius(ry - dirSign*b.halfWidth)

	firstStart := geom.Pt(center.X+firstRx*math.Cos(sa), center.Y+firstRy*math.Sin(sa))
	secondEnd := geom.Pt(center.X+secondRx*math.Cos(ea), center.Y+secondRy*math.Sin(ea))

	b.out.MoveTo(firstStart)
	b.out.Arc(center, firstRx, firstRy, sa, ea, ccw)
	b.out.LineTo(secondEnd)
	b.out.Arc(center, secondRx, secondRy, ea, sa, !ccw)
	b.out.CloseSubpath()

	b.advance()
}

// Build converts path's centerline into a fillable outline under opts,
// returning a new PathData made only of MoveTo/LineTo/Arc/CloseSubpath
// elements. A nil path is an error; an empty path yields an empty
// result. Build never mutates path.
func Build(path *pathdata.PathData, opts Options) (*pathdata.PathData, error) {
	if path == nil {
		return nil, ErrNilPath
	}
	opts = opts.withDefaults()
	b := newBuilder(opts)

	var start geom.FloatPoint
	have := false

	for e := path.First(); e != nil; e = e.Next() {
		switch e.Kind {
		case pathdata.MoveTo:
			b.addMoveToShape(e.To)
			start, have = e.To, true
		case pathdata.LineTo:
			if have {
				b.addLineShape(start, e.To)
			}
			start = e.To
		case pathdata.QuadraticCurve:
			if have {
				b.addQuadraticShape(start, e.Control1, e.To)
			}
			start = e.To
		case pathdata.CubicCurve:
			if have {
				b.addCubicShape(start, e.Control1, e.Control2, e.To)
			}
			start = e.To
		case pathdata.Arc:
			if have {
				b.addArcShape(start, e)
			}
			start = e.To
		case pathdata.CloseSubpath:
			if have {
				b.addCloseSubpathShape(start, e.To)
			}
			start = e.To
		}
	}
	b.addCapShapeIfNeeded()

	Logger().Debug("stroke: built fill path", "width", b.halfWidth*2, "join", b.join, "cap", b.cap)
	return b.out, nil
}
