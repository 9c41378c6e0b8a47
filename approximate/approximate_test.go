package approximate

import (
	"math"
	"testing"

	"github.com/szledan/gepard-sub001/geom"
)

func TestInsertLineDropsDegenerateAfterScaling(t *testing.T) {
	a := New(1, 1.0)
	a.InsertLine(geom.Pt(0, 0), geom.Pt(5, 0.4)) // both floor to row 0
	segs := a.Segments()
	if len(segs) != 0 {
		t.Fatalf("got %d segments, want 0 for a same-row line", len(segs))
	}
}

func TestInsertLineOrientationSwapSetsDirection(t *testing.T) {
	a := New(1, 1.0)
	a.InsertLine(geom.Pt(0, 5), geom.Pt(0, 0))
	segs := a.Segments()
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if segs[0].Direction != Negative {
		t.Fatalf("Direction = %v, want Negative (endpoints were swapped)", segs[0].Direction)
	}
	if segs[0].From.Y > segs[0].To.Y {
		t.Fatalf("From.Y/To.Y not normalized: %+v", segs[0])
	}
}

func TestInsertLineNoSwapSetsPositiveDirection(t *testing.T) {
	a := New(1, 1.0)
	a.InsertLine(geom.Pt(0, 0), geom.Pt(0, 5))
	segs := a.Segments()
	if len(segs) != 1 || segs[0].Direction != Positive {
		t.Fatalf("got %+v, want 1 segment with Positive direction", segs)
	}
}

func TestSplitPassCutsSegmentAtBucketBoundary(t *testing.T) {
	a := New(1, 1.0)
	// A tall segment spanning y=[0,10], and a short one spanning y=[5,8]
	// that introduces boundaries at 5 and 8 the tall segment must split at.
	a.InsertLine(geom.Pt(0, 0), geom.Pt(0, 10))
	a.InsertLine(geom.Pt(1, 5), geom.Pt(1, 8))
	segs := a.Segments()

	var tallParts []Segment
	for _, s := range segs {
		if s.From.X == 0 && s.To.X == 0 {
			tallParts = append(tallParts, s)
		}
	}
	if len(tallParts) != 3 {
		t.Fatalf("got %d fragments of the tall segment, want 3 (split at y=5 and y=8): %+v", len(tallParts), tallParts)
	}
	for _, s := range tallParts {
		if s.bottomY()-s.topY() > 5 {
			t.Fatalf("fragment %+v spans too many rows", s)
		}
	}
}

func TestQuadCurveFlattensToFiniteSegments(t *testing.T) {
	tol := 0.05
	a := New(1, tol)
	from, c, to := geom.Pt(0, 0), geom.Pt(50, 0), geom.Pt(100, 10)
	a.InsertQuadCurve(from, c, to)
	segs := a.Segments()
	if len(segs) == 0 {
		t.Fatalf("expected at least one flattened segment")
	}
	for _, s := range segs {
		if !s.From.IsFinite() || !s.To.IsFinite() {
			t.Fatalf("non-finite segment endpoint: %+v", s)
		}
	}
}

func TestBezierCurveStraightChordProducesFewSegments(t *testing.T) {
	// A cubic whose control points lie exactly on the chord is already
	// flat and should flatten to a single line.
	a := New(1, 1.0)
	from, to := geom.Pt(0, 0), geom.Pt(10, 10)
	c1 := from.Lerp(to, 1.0/3.0)
	c2 := from.Lerp(to, 2.0/3.0)
	a.InsertBezierCurve(from, c1, c2, to)
	segs := a.Segments()
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1 for a straight cubic", len(segs))
	}
}

func TestCalculateSegmentCountGrowsWithSweep(t *testing.T) {
	small := calculateSegmentCount(math.Pi/8, 100, 0.1)
	large := calculateSegmentCount(math.Pi*2, 100, 0.1)
	if large < small {
		t.Fatalf("expected a full-circle sweep to need >= segments than an eighth-circle: %d vs %d", large, small)
	}
}

func TestInsertArcProducesFiniteSegments(t *testing.T) {
	a := New(4, 1.0)
	a.InsertArc(geom.Pt(10, 0), geom.Pt(0, 0), 10, 10, 0, math.Pi/2)
	segs := a.Segments()
	if len(segs) == 0 {
		t.Fatalf("expected arc flattening to produce segments")
	}
	for _, s := range segs {
		if !s.From.IsFinite() || !s.To.IsFinite() {
			t.Fatalf("non-finite arc segment: %+v", s)
		}
	}
}

func TestComputeIntersectionYSkipsSameID(t *testing.T) {
	s := Segment{From: geom.Pt(0, 0), To: geom.Pt(0, 10), ID: 1}
	if !math.IsNaN(s.computeIntersectionY(s)) {
		t.Fatalf("expected NaN for a segment intersected with itself")
	}
}

func TestComputeIntersectionYParallelIsNaN(t *testing.T) {
	s1 := newSegment(geom.Pt(0, 0), geom.Pt(0, 10), 1)
	s2 := newSegment(geom.Pt(5, 0), geom.Pt(5, 10), 2)
	if !math.IsNaN(s1.computeIntersectionY(s2)) {
		t.Fatalf("expected NaN for parallel vertical segments")
	}
}

func TestComputeIntersectionYCrossingSegments(t *testing.T) {
	s1 := newSegment(geom.Pt(0, 0), geom.Pt(10, 10), 1)
	s2 := newSegment(geom.Pt(10, 0), geom.Pt(0, 10), 2)
	y := s1.computeIntersectionY(s2)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		t.Fatalf("expected a finite crossing y, got %v", y)
	}
	if math.Abs(y-5) > 1e-9 {
		t.Fatalf("crossing y = %v, want 5", y)
	}
}

func TestBoundingBoxAccumulatesAcrossInserts(t *testing.T) {
	a := New(2, 1.0)
	a.InsertLine(geom.Pt(0, 0), geom.Pt(10, 10))
	a.InsertLine(geom.Pt(-5, -5), geom.Pt(3, 3))
	bbox := a.BoundingBox()
	if bbox.IsEmpty() {
		t.Fatalf("expected a non-empty bounding box")
	}
	if bbox.MinX > -10 || bbox.MaxX < 20 { // scaled by antiAliasLevel=2
		t.Fatalf("unexpected scaled bbox: %+v", bbox)
	}
}
