package approximate

import "github.com/szledan/gepard-sub001/geom"

// maxSubdivisionDepth bounds how many pending sub-curves the iterative
// flatteners below keep on their explicit stack before falling back to
// a bounded recursive call for whatever remains. It guards against
// pathological control points (e.g. near-cusp curves) spinning forever.
const maxSubdivisionDepth = 32

// recursiveFlattenCap bounds the fallback recursive flattener itself,
// so a curve that still won't go flat within the overflow path gives up
// and emits a chord rather than blowing the goroutine stack.
const recursiveFlattenCap = 64

type quadSpan struct {
	p0, c, p2 geom.FloatPoint
}

// InsertQuadCurve flattens the quadratic Bézier from->c->to into line
// segments via iterative De Casteljau subdivision at t=1/2, bisecting
// until each chord's deviation from its control point is within the
// configured tolerance both by perpendicular distance and by bounding
// box containment.
func (a *Approximator) InsertQuadCurve(from, c, to geom.FloatPoint) {
	stack := []quadSpan{{from, c, to}}
	for len(stack) > 0 {
		span := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if a.quadIsFlat(span.p0, span.c, span.p2) {
			a.InsertLine(span.p0, span.p2)
			continue
		}
		if len(stack)+2 > maxSubdivisionDepth {
			a.flattenQuadRecursive(span.p0, span.c, span.p2, 0)
			continue
		}

		q0 := span.p0.Lerp(span.c, 0.5)
		q1 := span.c.Lerp(span.p2, 0.5)
		mid := q0.Lerp(q1, 0.5)
		stack = append(stack, quadSpan{mid, q1, span.p2}, quadSpan{span.p0, q0, mid})
	}
}

func (a *Approximator) flattenQuadRecursive(p0, c, p2 geom.FloatPoint, depth int) {
	if a.quadIsFlat(p0, c, p2) || depth >= recursiveFlattenCap {
		a.InsertLine(p0, p2)
		return
	}
	q0 := p0.Lerp(c, 0.5)
	q1 := c.Lerp(p2, 0.5)
	mid := q0.Lerp(q1, 0.5)
	a.flattenQuadRecursive(p0, q0, mid, depth+1)
	a.flattenQuadRecursive(mid, q1, p2, depth+1)
}

func (a *Approximator) quadIsFlat(p0, c, p2 geom.FloatPoint) bool {
	if distanceToLine(c, p0, p2) > a.tolerance {
		return false
	}
	return pointInExpandedBox(c, p0, p2, a.tolerance)
}

type cubicSpan struct {
	p0, c1, c2, p3 geom.FloatPoint
}

// InsertBezierCurve flattens the cubic Bézier from->c1->c2->to the same
// way InsertQuadCurve does, testing both control points' deviation from
// the chord.
func (a *Approximator) InsertBezierCurve(from, c1, c2, to geom.FloatPoint) {
	stack := []cubicSpan{{from, c1, c2, to}}
	for len(stack) > 0 {
		span := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if a.cubicIsFlat(span.p0, span.c1, span.c2, span.p3) {
			a.InsertLine(span.p0, span.p3)
			continue
		}
		if len(stack)+2 > maxSubdivisionDepth {
			a.flattenCubicRecursive(span.p0, span.c1, span.c2, span.p3, 0)
			continue
		}

		q0 := span.p0.Lerp(span.c1, 0.5)
		q1 := span.c1.Lerp(span.c2, 0.5)
		q2 := span.c2.Lerp(span.p3, 0.5)
		r0 := q0.Lerp(q1, 0.5)
		r1 := q1.Lerp(q2, 0.5)
		mid := r0.Lerp(r1, 0.5)
		stack = append(stack, cubicSpan{mid, r1, q2, span.p3}, cubicSpan{span.p0, q0, r0, mid})
	}
}

func (a *Approximator) flattenCubicRecursive(p0, c1, c2, p3 geom.FloatPoint, depth int) {
	if a.cubicIsFlat(p0, c1, c2, p3) || depth >= recursiveFlattenCap {
		a.InsertLine(p0, p3)
		return
	}
	q0 := p0.Lerp(c1, 0.5)
	q1 := c1.Lerp(c2, 0.5)
	q2 := c2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	mid := r0.Lerp(r1, 0.5)
	a.flattenCubicRecursive(p0, q0, r0, mid, depth+1)
	a.flattenCubicRecursive(mid, r1, q2, p3, depth+1)
}

func (a *Approximator) cubicIsFlat(p0, c1, c2, p3 geom.FloatPoint) bool {
	if distanceToLine(c1, p0, p3) > a.tolerance || distanceToLine(c2, p0, p3) > a.tolerance {
		return false
	}
	return pointInExpandedBox(c1, p0, p3, a.tolerance) && pointInExpandedBox(c2, p0, p3, a.tolerance)
}

// distanceToLine returns the perpendicular distance from p to the
// infinite line through a and b (or the distance to a, if a == b).
func distanceToLine(p, a, b geom.FloatPoint) float64 {
	ab := b.Sub(a)
	length := ab.Length()
	if length == 0 {
		return p.Sub(a).Length()
	}
	// |ab x ap| / |ab|
	ap := p.Sub(a)
	cross := ab.X*ap.Y - ab.Y*ap.X
	if cross < 0 {
		cross = -cross
	}
	return cross / length
}

// pointInExpandedBox reports whether p lies within the axis-aligned
// bounding box of a and b, expanded by eps on every side.
func pointInExpandedBox(p, a, b geom.FloatPoint, eps float64) bool {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX-eps && p.X <= maxX+eps && p.Y >= minY-eps && p.Y <= maxY+eps
}
