package approximate

import (
	"math"
	"sort"

	"github.com/szledan/gepard-sub001/geom"
)

// DefaultAntiAliasLevel is the number of sub-pixel sampling rows (A) used
// when no explicit level is configured.
const DefaultAntiAliasLevel = 16

// DefaultSubPixel is the default flatness tolerance numerator; the
// actual tolerance used during curve flattening is SubPixel/AntiAliasLevel.
const DefaultSubPixel = 1.0

// Approximator accumulates a path's geometry as Segments in an
// anti-alias-scaled, integer-y bucketed coordinate system. Insert the
// path element by element (InsertLine/InsertQuadCurve/InsertBezierCurve/
// InsertArc), then call Segments to retrieve the final, split, sorted
// list along with the bounding box of everything inserted (still in
// scaled coordinates; dividing by AntiAliasLevel recovers user space).
type Approximator struct {
	antiAliasLevel int
	tolerance      float64
	buckets        map[int][]Segment
	nextID         int
	bbox           geom.BoundingBox
}

// New returns an Approximator with the given anti-alias level (rows per
// integer y unit) and sub-pixel tolerance numerator. A value <= 0 for
// either falls back to its default.
func New(antiAliasLevel int, subPixel float64) *Approximator {
	if antiAliasLevel <= 0 {
		antiAliasLevel = DefaultAntiAliasLevel
	}
	if subPixel <= 0 {
		subPixel = DefaultSubPixel
	}
	return &Approximator{
		antiAliasLevel: antiAliasLevel,
		tolerance:      subPixel / float64(antiAliasLevel),
		buckets:        make(map[int][]Segment),
		bbox:           geom.NewBoundingBox(),
	}
}

// AntiAliasLevel returns the configured sub-pixel sampling factor A.
func (a *Approximator) AntiAliasLevel() int { return a.antiAliasLevel }

// BoundingBox returns the bounding box of every point inserted so far,
// in the anti-alias-scaled coordinate system.
func (a *Approximator) BoundingBox() geom.BoundingBox { return a.bbox }

// scale converts a user-space point into the anti-alias-scaled system:
// x is scaled by A, y is scaled by A and floored to an integer row.
func (a *Approximator) scale(p geom.FloatPoint) geom.FloatPoint {
	A := float64(a.antiAliasLevel)
	return geom.Pt(p.X*A, math.Floor(p.Y*A))
}

// InsertLine scales and inserts the line from -> to. Lines that become
// degenerate (equal scaled y) are dropped after still contributing to
// the bounding box, matching a hairline the rasterizer cannot see.
func (a *Approximator) InsertLine(from, to geom.FloatPoint) {
	a.insertSegment(a.scale(from), a.scale(to))
}

// insertSegment stretches the bounding box around from/to (already in
// scaled coordinates), then files a new Segment into its top-y bucket,
// ensuring an (possibly empty) bucket exists at its bottom y so the
// split pass has a boundary to split against.
func (a *Approximator) insertSegment(from, to geom.FloatPoint) {
	a.bbox.Stretch(from)
	a.bbox.Stretch(to)
	if from.Y == to.Y {
		Logger().Warn("approximate: dropped degenerate segment", "from", from, "to", to)
		return
	}
	seg := newSegment(from, to, a.nextID)
	a.nextID++
	top, bottom := seg.topY(), seg.bottomY()
	a.buckets[top] = append(a.buckets[top], seg)
	if _, ok := a.buckets[bottom]; !ok {
		a.buckets[bottom] = nil
	}
}

// Segments runs the split/intersect/re-split/pair-fix pipeline and
// returns every Segment in top-to-bottom, left-to-right order.
func (a *Approximator) Segments() []Segment {
	a.splitPass()
	a.intersectionSplit()
	a.splitPass()
	segs := a.mergeSorted()
	Logger().Debug("approximate: segments built", "buckets", len(a.buckets), "segments", len(segs))
	return segs
}

func (a *Approximator) sortedBucketKeys() []int {
	keys := make([]int, 0, len(a.buckets))
	for k := range a.buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// splitPass walks buckets top to bottom, splitting any segment that
// overhangs the next bucket boundary so every segment lives entirely
// within one y-bucket-to-the-next-boundary span.
func (a *Approximator) splitPass() {
	keys := a.sortedBucketKeys()
	for i := 0; i < len(keys)-1; i++ {
		k, next := keys[i], keys[i+1]
		bucket := a.buckets[k]
		kept := bucket[:0:0]
		for _, seg := range bucket {
			if seg.To.Y > float64(next) {
				top, bottom := seg.splitAt(float64(next))
				kept = append(kept, top)
				a.buckets[next] = append(a.buckets[next], bottom)
			} else {
				kept = append(kept, seg)
			}
		}
		a.buckets[k] = kept
	}
}

// intersectionSplit finds every pairwise crossing between segments that
// currently share a bucket and records new y-boundaries at the integer
// rows surrounding each crossing, so a following splitPass can cut the
// crossing segments apart there. The O(n^2) scan is deliberate: buckets
// hold only the segments active across one scanline span, which keeps n
// small in practice.
func (a *Approximator) intersectionSplit() {
	newBoundaries := make(map[int]bool)
	for _, bucket := range a.buckets {
		for i := range bucket {
			for j := range bucket {
				if i == j {
					continue
				}
				y := bucket[i].computeIntersectionY(bucket[j])
				if math.IsNaN(y) || math.IsInf(y, 0) {
					continue
				}
				floorY := math.Floor(y)
				newBoundaries[int(floorY)] = true
				if y != floorY {
					newBoundaries[int(floorY)+1] = true
				}
			}
		}
	}
	for k := range newBoundaries {
		if _, ok := a.buckets[k]; !ok {
			a.buckets[k] = nil
		}
	}
}

// mergeSorted sorts each bucket, clips quasi-overlapping segment pairs
// that share the same top/bottom y (pairFix), and concatenates the
// buckets top to bottom into the final Segment list.
func (a *Approximator) mergeSorted() []Segment {
	keys := a.sortedBucketKeys()
	var all []Segment
	for _, k := range keys {
		bucket := a.buckets[k]
		sortBucket(bucket)
		if pairFix(bucket) {
			sortBucket(bucket)
		}
		all = append(all, bucket...)
	}
	return all
}

func sortBucket(bucket []Segment) {
	sort.Slice(bucket, func(i, j int) bool {
		if !bucket[i].From.Equal(bucket[j].From) {
			return bucket[i].From.Less(bucket[j].From)
		}
		return bucket[i].To.Less(bucket[j].To)
	})
}

// pairFix clips the closer x-endpoint of a "further" segment to match a
// "closer" one whenever two segments in the same bucket span exactly
// the same y-range and nest inside each other, which otherwise produces
// a hairline sliver too thin to trapezoidize cleanly. Reports whether
// any clipping happened, so the caller knows to re-sort.
func pairFix(bucket []Segment) bool {
	changed := false
	for i := 0; i < len(bucket); i++ {
		for j := i + 1; j < len(bucket); j++ {
			s, other := bucket[i], bucket[j]
			if s.From.Y != other.From.Y || s.To.Y != other.To.Y {
				continue
			}
			if other.To.X >= s.To.X {
				continue
			}
			if math.Abs(other.From.X-s.From.X) <= math.Abs(other.To.X-s.To.X) {
				bucket[j].From.X = s.From.X
			} else {
				bucket[j].To.X = s.To.X
			}
			changed = true
		}
	}
	return changed
}
