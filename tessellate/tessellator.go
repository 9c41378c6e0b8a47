// Package tessellate walks a path's flattened, split, sorted segments
// under a fill rule and emits a sorted, vertically-merged list of
// non-overlapping trapezoids suitable for scanline or GPU rasterization.
package tessellate

import (
	"sort"

	"github.com/szledan/gepard-sub001/approximate"
	"github.com/szledan/gepard-sub001/geom"
	"github.com/szledan/gepard-sub001/pathdata"
)

// Tessellate converts path into a TrapezoidList under the given fill
// rule, using antiAliasLevel sub-pixel sampling rows (0 or negative
// falls back to approximate.DefaultAntiAliasLevel). It also returns the
// bounding box of everything drawn, in user-space coordinates. A nil
// path returns ErrNilPath. An empty path yields an empty list and an
// empty bounding box (never stretched: +Inf minimums, -Inf maximums);
// the tessellator never otherwise fails.
func Tessellate(path *pathdata.PathData, rule FillRule, antiAliasLevel int) (TrapezoidList, geom.BoundingBox, error) {
	if path == nil {
		return nil, geom.BoundingBox{}, ErrNilPath
	}

	approx := approximate.New(antiAliasLevel, approximate.DefaultSubPixel)
	walkPath(path, approx)

	segs := approx.Segments()
	trapezoids := emit(segs, rule, float64(approx.AntiAliasLevel()))
	trapezoids = mergeVertical(trapezoids)

	A := float64(approx.AntiAliasLevel())
	bbox := approx.BoundingBox().Div(A)
	bbox = geom.BoundingBox{
		MinX: fixPrecision(bbox.MinX), MinY: fixPrecision(bbox.MinY),
		MaxX: fixPrecision(bbox.MaxX), MaxY: fixPrecision(bbox.MaxY),
	}

	Logger().Debug("tessellate: tessellated path", "rule", rule, "trapezoids", len(trapezoids))
	return trapezoids, bbox, nil
}

// walkPath feeds every element of path into approx, implicitly closing
// each subpath at the next MoveTo (or at CloseSubpath, or at the very
// end of the path), per the tessellator's path-walk rule.
func walkPath(path *pathdata.PathData, approx *approximate.Approximator) {
	var from, lastMoveTo geom.FloatPoint
	haveSubpath := false

	for e := path.First(); e != nil; e = e.Next() {
		switch e.Kind {
		case pathdata.MoveTo:
			if haveSubpath {
				approx.InsertLine(from, lastMoveTo)
			}
			lastMoveTo = e.To
			haveSubpath = true
			from = e.To
		case pathdata.LineTo:
			approx.InsertLine(from, e.To)
			from = e.To
		case pathdata.QuadraticCurve:
			approx.InsertQuadCurve(from, e.Control1, e.To)
			from = e.To
		case pathdata.CubicCurve:
			approx.InsertBezierCurve(from, e.Control1, e.Control2, e.To)
			from = e.To
		case pathdata.Arc:
			approx.InsertArc(from, e.Center, e.RadiusX, e.RadiusY, e.StartAngle, e.EndAngle)
			from = e.To
		case pathdata.CloseSubpath:
			approx.InsertLine(from, lastMoveTo)
			from = lastMoveTo
		}
	}

	if haveSubpath {
		approx.InsertLine(from, lastMoveTo)
	}
}

// emit walks segs (already split so that every segment sharing a
// y-range is grouped contiguously and sorted left to right within it)
// and accumulates a winding/parity counter, opening a trapezoid when
// the counter transitions out of "empty" and closing it when it
// transitions back.
func emit(segs []approximate.Segment, rule FillRule, A float64) TrapezoidList {
	var result TrapezoidList

	fill := 0
	inFill := false
	var left approximate.Segment
	var groupTopY, groupBottomY float64
	haveGroup := false

	isInside := func() bool {
		if rule == EvenOdd {
			return fill&1 != 0
		}
		return fill != 0
	}

	for _, seg := range segs {
		if seg.From.Y == seg.To.Y {
			continue
		}
		if haveGroup && (seg.From.Y != groupTopY || seg.To.Y != groupBottomY) {
			// A new y-span group started; any still-open trapezoid from
			// the previous group indicates an unclosed winding, which a
			// properly closed path (every subpath implicitly closed by
			// walkPath) should never produce. Reset defensively.
			fill = 0
			inFill = false
		}
		groupTopY, groupBottomY = seg.From.Y, seg.To.Y
		haveGroup = true

		if rule == EvenOdd {
			fill ^= 1
		} else {
			fill += int(seg.Direction)
		}

		switch {
		case isInside() && !inFill:
			left = seg
			inFill = true
		case !isInside() && inFill:
			t := Trapezoid{
				TopY:         fixPrecision(left.From.Y / A),
				BottomY:      fixPrecision(left.To.Y / A),
				TopLeftX:     fixPrecision(left.From.X / A),
				BottomLeftX:  fixPrecision(left.To.X / A),
				TopRightX:    fixPrecision(seg.From.X / A),
				BottomRightX: fixPrecision(seg.To.X / A),
				LeftID:       left.ID,
				RightID:      seg.ID,
				LeftSlope:    left.OriginalSlope,
				RightSlope:   seg.OriginalSlope,
			}
			if t.TopY != t.BottomY && (t.TopLeftX != t.TopRightX || t.BottomLeftX != t.BottomRightX) {
				result = append(result, t)
			}
			inFill = false
		}
	}

	return result
}

func trapezoidLess(a, b Trapezoid) bool {
	if a.TopY != b.TopY {
		return a.TopY < b.TopY
	}
	if a.TopLeftX != b.TopLeftX {
		return a.TopLeftX < b.TopLeftX
	}
	return a.BottomLeftX < b.BottomLeftX
}

// mergeVertical sorts trapezoids into (topY, topLeftX, bottomLeftX)
// order, then merges each trapezoid T into the first later candidate U
// (scanned while U.TopY <= T.BottomY) that shares T's bottom edge and
// either identity or slope on both sides, extending U's top edge up to
// T's and dropping T.
func mergeVertical(trapezoids TrapezoidList) TrapezoidList {
	sort.Slice(trapezoids, func(i, j int) bool { return trapezoidLess(trapezoids[i], trapezoids[j]) })

	consumed := make([]bool, len(trapezoids))
	for i := range trapezoids {
		if consumed[i] {
			continue
		}
		t := trapezoids[i]
		for j := i + 1; j < len(trapezoids); j++ {
			if consumed[j] {
				continue
			}
			u := &trapezoids[j]
			if u.TopY > t.BottomY {
				break
			}
			if isMergableInto(t, *u) {
				u.TopY = t.TopY
				u.TopLeftX = t.TopLeftX
				u.TopRightX = t.TopRightX
				consumed[i] = true
				break
			}
		}
	}

	result := trapezoids[:0:0]
	for i, t := range trapezoids {
		if !consumed[i] {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return trapezoidLess(result[i], result[j]) })
	return result
}
