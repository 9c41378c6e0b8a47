// Package approximate flattens a path's curves and arcs into line
// segments in an anti-alias-scaled, integer-y coordinate system, then
// splits and sorts them so the tessellate package can walk them in a
// single top-to-bottom, left-to-right pass.
package approximate

import (
	"math"

	"github.com/szledan/gepard-sub001/geom"
)

// Direction records whether a Segment's original (pre-normalization)
// endpoints already went top-to-bottom (Positive) or had to be swapped
// to satisfy Segment's From.Y <= To.Y invariant (Negative). The
// tessellator's NonZero fill rule sums these signs as its winding
// number.
type Direction int8

const (
	Negative Direction = -1
	Zero     Direction = 0
	Positive Direction = 1
)

// Segment is an oriented line between two points in the anti-alias-
// scaled coordinate system, always satisfying From.Y <= To.Y. ID groups
// fragments produced by splitting the same original segment; Original-
// Slope is fixed at construction time (from the unsplit endpoints) so
// that vertical-merge equality checks in the tessellator stay stable
// even after repeated float splits accumulate rounding error.
type Segment struct {
	From, To      geom.FloatPoint
	ID            int
	OriginalSlope float64
	Direction     Direction
}

// newSegment builds a Segment from from/to, swapping them if needed so
// From.Y <= To.Y, and recording whether a swap happened as Direction.
func newSegment(from, to geom.FloatPoint, id int) Segment {
	direction := Positive
	switch {
	case from.Y > to.Y:
		from, to = to, from
		direction = Negative
	case from.Y == to.Y:
		direction = Zero
	}
	return Segment{
		From:          from,
		To:            to,
		ID:            id,
		OriginalSlope: invSlopeOf(from, to),
		Direction:     direction,
	}
}

func invSlopeOf(from, to geom.FloatPoint) float64 {
	return (to.X - from.X) / (to.Y - from.Y)
}

// invSlope is dx/dy for the segment's current endpoints: x(y) = From.X +
// invSlope*(y-From.Y).
func (s Segment) invSlope() float64 {
	return invSlopeOf(s.From, s.To)
}

// factor lets x(y) be written as invSlope*y - factor.
func (s Segment) factor() float64 {
	return s.invSlope()*s.From.Y - s.From.X
}

// xAt returns the segment's x coordinate at height y (y need not lie on
// the segment; callers check isOnSegment separately).
func (s Segment) xAt(y float64) float64 {
	return s.invSlope()*y - s.factor()
}

// topY and bottomY return the floor of the segment's vertical extent.
func (s Segment) topY() int    { return int(math.Floor(s.From.Y)) }
func (s Segment) bottomY() int { return int(math.Floor(s.To.Y)) }

// isOnSegment reports whether y lies strictly between From.Y and To.Y.
func (s Segment) isOnSegment(y float64) bool {
	return y > s.From.Y && y < s.To.Y
}

// splitAt splits s at height y into a top fragment ending at y and a
// bottom fragment starting at y. Both fragments keep s's ID and
// OriginalSlope. The caller must ensure y is strictly inside s.
func (s Segment) splitAt(y float64) (top, bottom Segment) {
	mid := geom.Pt(s.xAt(y), y)
	top = Segment{From: s.From, To: mid, ID: s.ID, OriginalSlope: s.OriginalSlope, Direction: s.Direction}
	bottom = Segment{From: mid, To: s.To, ID: s.ID, OriginalSlope: s.OriginalSlope, Direction: s.Direction}
	return top, bottom
}

// computeIntersectionY returns the y coordinate where the infinite lines
// through s and other cross, or NaN if they are the same segment or
// parallel. If the crossing point does not lie strictly inside both
// segments, it returns +Inf (a "not on segment" sentinel, distinct from
// NaN; the intersection pass skips the pair in either case).
func (s Segment) computeIntersectionY(other Segment) float64 {
	if s.ID == other.ID {
		return math.NaN()
	}
	is1, is2 := s.invSlope(), other.invSlope()
	if is1 == is2 {
		return math.NaN()
	}
	f1, f2 := s.factor(), other.factor()
	y := (f1 - f2) / (is1 - is2)
	if !s.isOnSegment(y) || !other.isOnSegment(y) {
		return math.Inf(1)
	}
	return y
}
