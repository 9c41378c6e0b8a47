package approximate

import (
	"math"

	"github.com/szledan/gepard-sub001/geom"
)

// maxArcSegments bounds the search in calculateSegmentCount; any arc
// needing more sub-curves than this to meet tolerance is flattened with
// this many regardless (only reachable with a tolerance far tighter
// than any real anti-alias level would configure).
const maxArcSegments = 1024

// calculateSegmentCount returns the smallest number of equal-angle
// cubic sub-arcs that approximate a circular arc of the given radius
// and total sweep (radians) within tol, using the standard error bound
// for a single sub-arc of angle theta:
//
//	(2/27) * sin(theta/4)^4 / cos(theta/4)^2  <=  tol/radius
func calculateSegmentCount(sweep, radius, tol float64) int {
	if radius <= 0 {
		return 1
	}
	for n := 1; n <= maxArcSegments; n++ {
		theta := sweep / float64(n)
		s := math.Sin(theta / 4)
		c := math.Cos(theta / 4)
		if c == 0 {
			continue
		}
		errBound := (2.0 / 27.0) * (s * s * s * s) / (c * c)
		if errBound <= tol/radius {
			return n
		}
	}
	return maxArcSegments
}

// InsertArc flattens the elliptical arc centered at center, with radii
// rx/ry, sweeping from startAngle to endAngle (endAngle-startAngle may
// be negative for a counter-clockwise sweep). It first inserts a
// connecting line from connectFrom to the arc's start point, then walks
// equal-angle sub-arcs, converting each to a cubic Bézier via the
// standard unit-circle tangent-handle construction (handle length
// 4/3*tan(theta/4)) scaled onto the ellipse, recursively flattening each
// through InsertBezierCurve.
func (a *Approximator) InsertArc(connectFrom geom.FloatPoint, center geom.FloatPoint, rx, ry, startAngle, endAngle float64) {
	start := geom.Pt(center.X+rx*math.Cos(startAngle), center.Y+ry*math.Sin(startAngle))
	a.InsertLine(connectFrom, start)

	sweep := endAngle - startAngle
	if sweep == 0 {
		return
	}

	radius := math.Max(rx, ry)
	n := calculateSegmentCount(math.Abs(sweep), radius, a.tolerance)
	theta := sweep / float64(n)

	cur := startAngle
	prev := start
	for i := 0; i < n; i++ {
		next := cur + theta

		p0u := geom.Pt(math.Cos(cur), math.Sin(cur))
		p3u := geom.Pt(math.Cos(next), math.Sin(next))
		t0u := geom.Pt(-math.Sin(cur), math.Cos(cur))
		t3u := geom.Pt(-math.Sin(next), math.Cos(next))

		h := 4.0 / 3.0 * math.Tan(theta/4)
		c1u := p0u.Add(t0u.Mul(h))
		c2u := p3u.Sub(t3u.Mul(h))

		toEllipse := func(u geom.FloatPoint) geom.FloatPoint {
			return geom.Pt(center.X+u.X*rx, center.Y+u.Y*ry)
		}
		c1, c2, p3 := toEllipse(c1u), toEllipse(c2u), toEllipse(p3u)

		a.InsertBezierCurve(prev, c1, c2, p3)

		prev = p3
		cur = next
	}
}
