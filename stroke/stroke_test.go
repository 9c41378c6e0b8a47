package stroke

import (
	"math"
	"testing"

	"github.com/szledan/gepard-sub001/geom"
	"github.com/szledan/gepard-sub001/pathdata"
	"github.com/szledan/gepard-sub001/tessellate"
)

func trapezoidArea(list tessellate.TrapezoidList) float64 {
	var total float64
	for _, t := range list {
		topWidth := t.TopRightX - t.TopLeftX
		bottomWidth := t.BottomRightX - t.BottomLeftX
		total += (topWidth + bottomWidth) / 2 * (t.BottomY - t.TopY)
	}
	return total
}

func TestBuildNilPath(t *testing.T) {
	_, err := Build(nil, DefaultOptions())
	if err != ErrNilPath {
		t.Fatalf("err = %v, want ErrNilPath", err)
	}
}

func TestBuildEmptyPathYieldsEmptyOutput(t *testing.T) {
	p := pathdata.New()
	out, err := Build(p, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Empty() {
		t.Fatalf("expected empty output for empty input")
	}
}

func TestBuildOnlyMoveToYieldsEmptyOutput(t *testing.T) {
	p := pathdata.New()
	p.MoveTo(geom.Pt(5, 5))
	out, err := Build(p, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Empty() {
		t.Fatalf("expected empty output for a bare MoveTo, got elements")
	}
}

func TestBuildStraightLineRoundCapAreaMatchesAnalytic(t *testing.T) {
	p := pathdata.New()
	p.MoveTo(geom.Pt(0, 0))
	p.LineTo(geom.Pt(100, 0))

	out, err := Build(p, Options{Width: 10, Cap: RoundCap, Join: MiterJoin, MiterLimit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	trapezoids, _, err := tessellate.Tessellate(out, tessellate.NonZero, 16)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}

	wantArea := 1000.0 + math.Pi*25.0
	area := trapezoidArea(trapezoids)
	if math.Abs(area-wantArea) > wantArea*0.01 {
		t.Fatalf("area = %v, want ~%v", area, wantArea)
	}
}

func TestBuildStraightLineButtCapAreaMatchesAnalytic(t *testing.T) {
	p := pathdata.New()
	p.MoveTo(geom.Pt(0, 0))
	p.LineTo(geom.Pt(100, 0))

	out, err := Build(p, Options{Width: 10, Cap: ButtCap, Join: MiterJoin, MiterLimit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	trapezoids, _, err := tessellate.Tessellate(out, tessellate.NonZero, 16)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}

	wantArea := 1000.0
	area := trapezoidArea(trapezoids)
	if math.Abs(area-wantArea) > wantArea*0.01 {
		t.Fatalf("area = %v, want ~%v", area, wantArea)
	}
}

func TestBuildOutputOnlyUsesAllowedElementKinds(t *testing.T) {
	build := func(p *pathdata.PathData) *pathdata.PathData {
		out, err := Build(p, Options{Width: 4, Cap: RoundCap, Join: RoundJoin, MiterLimit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return out
	}

	paths := []*pathdata.PathData{
		func() *pathdata.PathData {
			p := pathdata.New()
			p.MoveTo(geom.Pt(0, 0))
			p.LineTo(geom.Pt(10, 0))
			p.LineTo(geom.Pt(10, 10))
			p.CloseSubpath()
			return p
		}(),
		func() *pathdata.PathData {
			p := pathdata.New()
			p.MoveTo(geom.Pt(0, 0))
			p.QuadraticCurveTo(geom.Pt(5, 10), geom.Pt(10, 0))
			return p
		}(),
		func() *pathdata.PathData {
			p := pathdata.New()
			p.MoveTo(geom.Pt(0, 0))
			p.BezierCurveTo(geom.Pt(3, 10), geom.Pt(7, -10), geom.Pt(10, 0))
			return p
		}(),
		func() *pathdata.PathData {
			p := pathdata.New()
			p.Arc(geom.Pt(0, 0), 5, 5, 0, math.Pi, false)
			return p
		}(),
	}

	for i, p := range paths {
		out := build(p)
		for e := out.First(); e != nil; e = e.Next() {
			switch e.Kind {
			case pathdata.MoveTo, pathdata.LineTo, pathdata.Arc, pathdata.CloseSubpath:
				// allowed
			default:
				t.Fatalf("case %d: output contains disallowed element kind %v", i, e.Kind)
			}
		}
	}
}

func TestBuildClosedSquareProducesPositiveArea(t *testing.T) {
	p := pathdata.New()
	p.MoveTo(geom.Pt(0, 0))
	p.LineTo(geom.Pt(20, 0))
	p.LineTo(geom.Pt(20, 20))
	p.LineTo(geom.Pt(0, 20))
	p.CloseSubpath()

	for _, join := range []Join{MiterJoin, BevelJoin, RoundJoin} {
		out, err := Build(p, Options{Width: 4, Cap: ButtCap, Join: join, MiterLimit: 10})
		if err != nil {
			t.Fatalf("join %v: unexpected error: %v", join, err)
		}
		trapezoids, _, err := tessellate.Tessellate(out, tessellate.NonZero, 16)
		if err != nil {
			t.Fatalf("join %v: tessellate: %v", join, err)
		}
		area := trapezoidArea(trapezoids)
		if area <= 0 {
			t.Fatalf("join %v: area = %v, want > 0", join, area)
		}
	}
}

// TestBuildSharpCuspReinforcesUnderNonZero guards against addQuadShape
// emitting a triangle pair with inconsistent winding. A path that
// reverses on itself forces its offset shapes to genuinely overlap on
// the inside of the cusp. If every offset triangle agrees on winding
// sign, NonZero reinforces that overlap (covers it, same as the union
// of the shapes), while EvenOdd's parity rule cancels it to a hole
// (even overlap count = outside). So NonZero's area must exceed
// EvenOdd's by roughly the doubly-covered region. If some triangles are
// wrongly wound (as addQuadShape's diagonal-split branches were), an
// overlap lands across mismatched +1/-1 contributions that cancel to
// zero even under NonZero, and its area collapses toward EvenOdd's,
// reproducing the same hole in both fill rules.
func TestBuildSharpCuspReinforcesUnderNonZero(t *testing.T) {
	p := pathdata.New()
	p.MoveTo(geom.Pt(0, 0))
	p.LineTo(geom.Pt(100, 0))
	p.LineTo(geom.Pt(0, 0.5))

	out, err := Build(p, Options{Width: 40, Cap: ButtCap, Join: MiterJoin, MiterLimit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nonZero, _, err := tessellate.Tessellate(out, tessellate.NonZero, 16)
	if err != nil {
		t.Fatalf("tessellate NonZero: %v", err)
	}
	evenOdd, _, err := tessellate.Tessellate(out, tessellate.EvenOdd, 16)
	if err != nil {
		t.Fatalf("tessellate EvenOdd: %v", err)
	}

	nonZeroArea := trapezoidArea(nonZero)
	evenOddArea := trapezoidArea(evenOdd)

	if nonZeroArea <= evenOddArea*1.1 {
		t.Fatalf("NonZero area = %v, EvenOdd area = %v; expected NonZero to clearly exceed EvenOdd over the self-overlapping cusp (consistent winding reinforces instead of canceling)", nonZeroArea, evenOddArea)
	}
}

func TestDefaultOptionsMatchSpec(t *testing.T) {
	got := DefaultOptions()
	want := Options{Width: 1, MiterLimit: 10, Cap: ButtCap, Join: MiterJoin}
	if got != want {
		t.Fatalf("DefaultOptions() = %+v, want %+v", got, want)
	}
}

func TestWithDefaultsAppliesFallbacks(t *testing.T) {
	got := Options{Width: -1, MiterLimit: 0, Cap: RoundCap, Join: BevelJoin}.withDefaults()
	if got.Width != 1 || got.MiterLimit != 10 {
		t.Fatalf("withDefaults() = %+v, want Width=1 MiterLimit=10", got)
	}
	if got.Cap != RoundCap || got.Join != BevelJoin {
		t.Fatalf("withDefaults() changed explicit Cap/Join: %+v", got)
	}
}
