package stroke

import "github.com/szledan/gepard-sub001/geom"

// strokeMaxSubdivisionDepth bounds the cubic offset subdivision below,
// mirroring approximate's recursive flattening cap.
const strokeMaxSubdivisionDepth = 24

// strokeNearZeroTolerance is the length threshold below which a
// cubic span is treated as a single point with a tangent, rather than
// subdivided further.
const strokeNearZeroTolerance = 1e-9

// offsetCubic emits the filled offset geometry for the cubic p0-c1-c2-p3
// at the builder's halfWidth: a chain of quads between the "involute"
// (inner, p-normal) and "evolute" (outer, p+normal) offset curves, or a
// round cusp/cap fill for the two degenerate cases described below.
func (b *Builder) offsetCubic(p0, c1, c2, p3 geom.FloatPoint, depth int) {
	q0 := p0.Lerp(c1, 0.5)
	q1 := c1.Lerp(c2, 0.5)
	q2 := c2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	mid := r0.Lerp(r1, 0.5)

	if r0.Equal(mid) && mid.Equal(r1) {
		// A cusp: both half-curves pivot through the same point with no
		// single well-defined tangent. Round it off instead of offsetting.
		tangent := firstNonCoincident(mid, []geom.FloatPoint{p0, p3})
		b.addCuspRound(mid, tangent)
		return
	}
	if nearZeroSpan(p0, c1, c2, p3, strokeNearZeroTolerance) {
		tangent := firstNonCoincident(p0, []geom.FloatPoint{c1, c2, p3})
		b.addCuspRound(p0, tangent)
		return
	}

	startTangent := firstNonCoincident(p0, []geom.FloatPoint{q0, r0, mid})
	halfTangent := firstNonCoincident(mid, []geom.FloatPoint{r1, q2, p3})
	endTangent := firstNonCoincident(p3, []geom.FloatPoint{q2, r1, mid}).Mul(-1)

	startNormal := startTangent.Normal().Mul(b.halfWidth)
	halfNormal := halfTangent.Normal().Mul(b.halfWidth)
	endNormal := endTangent.Normal().Mul(b.halfWidth)

	involuteStart := p0.Sub(startNormal)
	involuteHalf := mid.Sub(halfNormal)
	involuteEnd := p3.Sub(endNormal)
	evoluteStart := p0.Add(startNormal)
	evoluteHalf := mid.Add(halfNormal)
	evoluteEnd := p3.Add(endNormal)

	flat := depth >= strokeMaxSubdivisionDepth ||
		(isFlatChord(involuteStart, involuteHalf, involuteEnd, b.tolerance) &&
			isFlatChord(evoluteStart, evoluteHalf, evoluteEnd, b.tolerance))

	if flat {
		b.addQuadShape(evoluteStart, involuteStart, involuteHalf, evoluteHalf)
		b.addQuadShape(evoluteHalf, involuteHalf, involuteEnd, evoluteEnd)
		return
	}

	b.offsetCubic(p0, q0, r0, mid, depth+1)
	b.offsetCubic(mid, r1, q2, p3, depth+1)
}

// addCuspRound fills a full disc of radius halfWidth at center, split
// into two half-discs across the tangent direction, each built from two
// quarter-disc wedges. A zero-length
// tangent (every control point coincident) has no well-defined normal
// and is silently dropped.
func (b *Builder) addCuspRound(center, tangent geom.FloatPoint) {
	if tangent.Length() == 0 {
		Logger().Warn("stroke: dropped cusp/degenerate curve with no tangent", "at", center)
		return
	}
	normal := tangent.Normal().Mul(b.halfWidth)
	along := tangent.Mul(b.halfWidth)
	b.addRoundShape(center, center.Sub(normal), center.Sub(normal).Add(along), center.Add(along))
	b.addRoundShape(center, center.Add(along), center.Add(normal).Add(along), center.Add(normal))
	b.addRoundShape(center, center.Add(normal), center.Add(normal).Sub(along), center.Sub(along))
	b.addRoundShape(center, center.Sub(along), center.Sub(normal).Sub(along), center.Sub(normal))
}

// nearZeroSpan reports whether c1, c2 and p3 all lie within tol of p0.
func nearZeroSpan(p0, c1, c2, p3 geom.FloatPoint, tol float64) bool {
	return c1.Sub(p0).Length() <= tol && c2.Sub(p0).Length() <= tol && p3.Sub(p0).Length() <= tol
}

// firstNonCoincident returns the normalized direction from origin to the
// first candidate that doesn't coincide with it, or the zero point if
// every candidate does.
func firstNonCoincident(origin geom.FloatPoint, candidates []geom.FloatPoint) geom.FloatPoint {
	for _, c := range candidates {
		d := c.Sub(origin)
		if d.Length() > 0 {
			return d.Normalize()
		}
	}
	return geom.FloatPoint{}
}

// isFlatChord reports whether mid's perpendicular distance from the
// chord a-b is within tol and mid lies inside the chord's tol-expanded
// bounding box, the same flatness test §4.2's curve flattener uses.
func isFlatChord(a, mid, b geom.FloatPoint, tol float64) bool {
	ab := b.Sub(a)
	length := ab.Length()
	if length == 0 {
		return mid.Sub(a).Length() <= tol
	}
	am := mid.Sub(a)
	cross := ab.X*am.Y - ab.Y*am.X
	if cross < 0 {
		cross = -cross
	}
	if cross/length > tol {
		return false
	}
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return mid.X >= minX-tol && mid.X <= maxX+tol && mid.Y >= minY-tol && mid.Y <= maxY+tol
}
