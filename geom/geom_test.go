package geom

import (
	"math"
	"testing"
)

func TestFloatPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, 4)

	if got := p.Add(q); got != Pt(4, 6) {
		t.Fatalf("Add = %v, want (4,6)", got)
	}
	if got := q.Sub(p); got != Pt(2, 2) {
		t.Fatalf("Sub = %v, want (2,2)", got)
	}
	if got := p.Dot(q); got != 11 {
		t.Fatalf("Dot = %v, want 11", got)
	}
	if got := p.Cross(q); got != -2 {
		t.Fatalf("Cross = %v, want -2", got)
	}
}

func TestFloatPointNormal(t *testing.T) {
	// unit x-axis rotated by (x, y) → (-y, x) should point +y (downward on screen).
	got := Pt(1, 0).Normal()
	want := Pt(0, 1)
	if got != want {
		t.Fatalf("Normal = %v, want %v", got, want)
	}
}

func TestFloatPointLess(t *testing.T) {
	if !Pt(5, 1).Less(Pt(0, 2)) {
		t.Fatalf("expected (5,1) < (0,2) by y first")
	}
	if !Pt(0, 1).Less(Pt(5, 1)) {
		t.Fatalf("expected (0,1) < (5,1) by x when y ties")
	}
}

func TestFloatPointIsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Fatalf("expected finite point to report finite")
	}
	if Pt(math.NaN(), 0).IsFinite() {
		t.Fatalf("expected NaN point to report non-finite")
	}
	if Pt(math.Inf(1), 0).IsFinite() {
		t.Fatalf("expected Inf point to report non-finite")
	}
}

func TestBoundingBoxStretch(t *testing.T) {
	b := NewBoundingBox()
	if !b.IsEmpty() {
		t.Fatalf("fresh bounding box should be empty")
	}

	b.Stretch(Pt(1, 2))
	b.Stretch(Pt(-3, 5))

	if b.MinX != -3 || b.MaxX != 1 || b.MinY != 2 || b.MaxY != 5 {
		t.Fatalf("unexpected bounds: %+v", b)
	}
	if b.IsEmpty() {
		t.Fatalf("stretched bounding box should not be empty")
	}
}

func TestBoundingBoxDiv(t *testing.T) {
	b := BoundingBox{MinX: 0, MinY: 0, MaxX: 32, MaxY: 16}
	got := b.Div(16)
	want := BoundingBox{MinX: 0, MinY: 0, MaxX: 2, MaxY: 1}
	if got != want {
		t.Fatalf("Div = %+v, want %+v", got, want)
	}
}

func TestRegionAllocSpansBlocks(t *testing.T) {
	r := NewRegion[int]()
	const n = regionBlockCapacity*3 + 5
	ptrs := make([]*int, n)
	for i := 0; i < n; i++ {
		p := r.Alloc()
		*p = i
		ptrs[i] = p
	}
	for i, p := range ptrs {
		if *p != i {
			t.Fatalf("ptrs[%d] = %d, want %d (region corrupted a prior allocation)", i, *p, i)
		}
	}
	if got := r.Len(); got != n {
		t.Fatalf("Len() = %d, want %d", got, n)
	}
}
