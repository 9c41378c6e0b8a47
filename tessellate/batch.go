package tessellate

import (
	"github.com/szledan/gepard-sub001/geom"
	"github.com/szledan/gepard-sub001/internal/cache"
	"github.com/szledan/gepard-sub001/internal/parallel"
	"github.com/szledan/gepard-sub001/pathdata"
)

// Result is the outcome of tessellating one PathData.
type Result struct {
	Trapezoids  TrapezoidList
	BoundingBox geom.BoundingBox
	Err         error
}

// TessellateAll tessellates each of paths on pool, one task per path.
// Two tessellations over two distinct PathData values share no mutable
// state — each Tessellate call owns its own segment and trapezoid
// buffers — so distributing them across pool's workers is
// always safe, regardless of how many paths or workers are involved.
// The returned slice is in the same order as paths.
func TessellateAll(pool *parallel.WorkerPool, paths []*pathdata.PathData, rule FillRule, antiAliasLevel int) []Result {
	results := make([]Result, len(paths))
	work := make([]func(), len(paths))
	for i, p := range paths {
		i, p := i, p
		work[i] = func() {
			trapezoids, bbox, err := Tessellate(p, rule, antiAliasLevel)
			results[i] = Result{Trapezoids: trapezoids, BoundingBox: bbox, Err: err}
		}
	}
	pool.ExecuteAll(work)
	return results
}

// Cache memoizes Tessellate results behind a caller-supplied key, typically
// a structural hash of the PathData plus (rule, antiAliasLevel). It sits
// in front of the tessellator so a caller that redraws the same path
// across frames (an unchanged background shape, say) skips re-flattening
// and re-trapezoidation.
type Cache struct {
	entries *cache.Cache[uint64, Result]
}

// NewCache creates a Cache holding at most capacity entries; 0 means
// unlimited.
func NewCache(capacity int) *Cache {
	return &Cache{entries: cache.New[uint64, Result](capacity)}
}

// Tessellate returns the cached Result for key, computing and storing it
// via Tessellate(path, rule, antiAliasLevel) on a miss. Callers are
// responsible for choosing a key that uniquely identifies (path, rule,
// antiAliasLevel); a stale key returns a stale result.
func (c *Cache) Tessellate(key uint64, path *pathdata.PathData, rule FillRule, antiAliasLevel int) Result {
	return c.entries.GetOrCreate(key, func() Result {
		trapezoids, bbox, err := Tessellate(path, rule, antiAliasLevel)
		return Result{Trapezoids: trapezoids, BoundingBox: bbox, Err: err}
	})
}
