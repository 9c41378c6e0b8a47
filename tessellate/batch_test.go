package tessellate

import (
	"testing"

	"github.com/szledan/gepard-sub001/geom"
	"github.com/szledan/gepard-sub001/internal/parallel"
	"github.com/szledan/gepard-sub001/pathdata"
)

func squarePath(size float64) *pathdata.PathData {
	p := pathdata.New()
	p.MoveTo(geom.Pt(0, 0))
	p.LineTo(geom.Pt(size, 0))
	p.LineTo(geom.Pt(size, size))
	p.LineTo(geom.Pt(0, size))
	p.CloseSubpath()
	return p
}

func TestTessellateAllPreservesOrderAndResults(t *testing.T) {
	pool := parallel.NewWorkerPool(4)
	defer pool.Close()

	paths := []*pathdata.PathData{squarePath(10), squarePath(20), squarePath(30)}
	results := TessellateAll(pool, paths, NonZero, 16)

	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("result %d: unexpected error: %v", i, r.Err)
		}
		wantArea := float64((i + 1) * 10 * (i + 1) * 10)
		if got := trapezoidArea(r.Trapezoids); got < wantArea*0.99 || got > wantArea*1.01 {
			t.Fatalf("result %d: area = %v, want ~%v", i, got, wantArea)
		}
	}
}

func TestTessellateAllEmptyInput(t *testing.T) {
	pool := parallel.NewWorkerPool(2)
	defer pool.Close()

	results := TessellateAll(pool, nil, NonZero, 16)
	if len(results) != 0 {
		t.Fatalf("got %d results, want 0", len(results))
	}
}

func TestCacheReturnsStoredResultOnHit(t *testing.T) {
	c := NewCache(4)
	path := squarePath(10)

	first := c.Tessellate(1, path, NonZero, 16)
	if first.Err != nil {
		t.Fatalf("unexpected error: %v", first.Err)
	}

	// A different PathData under the same key must still return the
	// first call's cached result, proving the cache short-circuits
	// re-tessellation rather than merely memoizing identical input.
	second := c.Tessellate(1, squarePath(999), NonZero, 16)
	if len(second.Trapezoids) != len(first.Trapezoids) {
		t.Fatalf("cache miss on repeated key: got %d trapezoids, want %d", len(second.Trapezoids), len(first.Trapezoids))
	}
}

func TestCacheMissesOnDifferentKey(t *testing.T) {
	c := NewCache(4)
	small := c.Tessellate(1, squarePath(10), NonZero, 16)
	big := c.Tessellate(2, squarePath(100), NonZero, 16)

	if trapezoidArea(small.Trapezoids) == trapezoidArea(big.Trapezoids) {
		t.Fatalf("expected distinct keys to produce distinct results")
	}
}
