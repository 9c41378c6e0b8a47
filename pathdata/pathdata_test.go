package pathdata

import (
	"testing"

	"github.com/szledan/gepard-sub001/geom"
)

func elements(p *PathData) []*Element {
	var out []*Element
	for e := p.First(); e != nil; e = e.Next() {
		out = append(out, e)
	}
	return out
}

func TestFirstElementIsMoveTo(t *testing.T) {
	p := New()
	p.LineTo(geom.Pt(1, 1))
	if got := p.First().Kind; got != MoveTo {
		t.Fatalf("First().Kind = %v, want MoveTo", got)
	}
}

func TestConsecutiveMoveToCollapse(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(1, 1))
	p.MoveTo(geom.Pt(2, 2))

	els := elements(p)
	if len(els) != 1 {
		t.Fatalf("got %d elements, want 1 (consecutive MoveTo should collapse)", len(els))
	}
	if !els[0].To.Equal(geom.Pt(2, 2)) {
		t.Fatalf("To = %v, want (2,2) (later position wins)", els[0].To)
	}
}

func TestRedundantLineToAbsorbed(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(0, 0))
	p.LineTo(geom.Pt(5, 5))
	before := len(elements(p))
	p.LineTo(geom.Pt(5, 5))
	after := len(elements(p))
	if before != after {
		t.Fatalf("redundant LineTo changed element count: %d -> %d", before, after)
	}
}

func TestCloseSubpathOnBareMoveToPromotes(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(3, 4))
	p.CloseSubpath()

	els := elements(p)
	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2 (promoted LineTo + CloseSubpath)", len(els))
	}
	if els[0].Kind != LineTo {
		t.Fatalf("els[0].Kind = %v, want LineTo (bare MoveTo promoted)", els[0].Kind)
	}
	if !els[0].To.Equal(geom.Pt(3, 4)) || !els[1].To.Equal(geom.Pt(3, 4)) {
		t.Fatalf("promoted elements must end at the MoveTo's point")
	}
}

func TestCloseSubpathEndpointMatchesLastMoveTo(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(0, 0))
	p.LineTo(geom.Pt(10, 0))
	p.LineTo(geom.Pt(10, 10))
	p.CloseSubpath()

	last := p.Last()
	if last.Kind != CloseSubpath {
		t.Fatalf("Last().Kind = %v, want CloseSubpath", last.Kind)
	}
	if !last.To.Equal(geom.Pt(0, 0)) {
		t.Fatalf("CloseSubpath endpoint = %v, want (0,0)", last.To)
	}
}

func TestDoubleCloseSubpathIsIdempotent(t *testing.T) {
	a := New()
	a.MoveTo(geom.Pt(1, 1))
	a.CloseSubpath()
	a.CloseSubpath()

	b := New()
	b.MoveTo(geom.Pt(1, 1))
	b.CloseSubpath()

	ea, eb := elements(a), elements(b)
	if len(ea) != len(eb) {
		t.Fatalf("double CloseSubpath produced %d elements, want %d (same as single)", len(ea), len(eb))
	}
	for i := range ea {
		if ea[i].Kind != eb[i].Kind || !ea[i].To.Equal(eb[i].To) {
			t.Fatalf("element %d differs: %+v vs %+v", i, ea[i], eb[i])
		}
	}
}

func TestOnlyMoveToPathIsEmptyOfGeometry(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(5, 5))
	els := elements(p)
	if len(els) != 1 || els[0].Kind != MoveTo {
		t.Fatalf("expected a single MoveTo element, got %v", els)
	}
}

func TestArcDegenerateRadiusBecomesLineTo(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(0, 0))
	p.Arc(geom.Pt(5, 5), 0, 0, 0, 1, false)

	last := p.Last()
	if last.Kind != LineTo {
		t.Fatalf("Kind = %v, want LineTo for zero-radius arc", last.Kind)
	}
}

func TestArcToCollinearFallsBackToLineTo(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(0, 0))
	p.ArcTo(geom.Pt(10, 0), geom.Pt(20, 0), 5)

	els := elements(p)
	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2 (MoveTo, LineTo)", len(els))
	}
	if els[1].Kind != LineTo || !els[1].To.Equal(geom.Pt(10, 0)) {
		t.Fatalf("els[1] = %+v, want LineTo(10,0)", els[1])
	}
}

func TestArcToProducesLineThenArc(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt(0, 0))
	p.ArcTo(geom.Pt(10, 0), geom.Pt(10, 10), 3)

	els := elements(p)
	if len(els) != 3 {
		t.Fatalf("got %d elements, want 3 (MoveTo, LineTo, Arc)", len(els))
	}
	if els[1].Kind != LineTo {
		t.Fatalf("els[1].Kind = %v, want LineTo", els[1].Kind)
	}
	if els[2].Kind != Arc {
		t.Fatalf("els[2].Kind = %v, want Arc", els[2].Kind)
	}
}

func TestQuadraticCurveToOnEmptyPathInsertsImplicitMoveTo(t *testing.T) {
	p := New()
	p.QuadraticCurveTo(geom.Pt(1, 1), geom.Pt(2, 2))

	els := elements(p)
	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2 (implicit MoveTo + QuadraticCurve)", len(els))
	}
	if els[0].Kind != MoveTo || !els[0].To.Equal(geom.Pt(2, 2)) {
		t.Fatalf("els[0] = %+v, want MoveTo(2,2)", els[0])
	}
	if els[1].Kind != QuadraticCurve {
		t.Fatalf("els[1].Kind = %v, want QuadraticCurve", els[1].Kind)
	}
}
