// Package geom provides the geometric primitives shared by the path,
// approximation, tessellation and stroke packages: points, bounding
// boxes and the arena allocator path elements are carved from.
package geom

import "math"

// FloatPoint is an (x, y) pair of fractional scalars.
type FloatPoint struct {
	X, Y float64
}

// Pt is a convenience constructor for FloatPoint.
func Pt(x, y float64) FloatPoint {
	return FloatPoint{X: x, Y: y}
}

// Add returns p+q.
func (p FloatPoint) Add(q FloatPoint) FloatPoint {
	return FloatPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p FloatPoint) Sub(q FloatPoint) FloatPoint {
	return FloatPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p FloatPoint) Mul(s float64) FloatPoint {
	return FloatPoint{X: p.X * s, Y: p.Y * s}
}

// Div returns p divided by scalar s.
func (p FloatPoint) Div(s float64) FloatPoint {
	return FloatPoint{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of p and q.
func (p FloatPoint) Dot(q FloatPoint) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D scalar cross product (the z-component of the
// corresponding 3D cross product with z=0).
func (p FloatPoint) Cross(q FloatPoint) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean length of p treated as a vector.
func (p FloatPoint) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalize returns a unit vector in the direction of p.
// Returns the zero point if p has zero length.
func (p FloatPoint) Normalize() FloatPoint {
	l := p.Length()
	if l == 0 {
		return FloatPoint{}
	}
	return FloatPoint{X: p.X / l, Y: p.Y / l}
}

// Normal returns p rotated 90 degrees, (x, y) → (-y, x): counter-clockwise
// in y-up terms, which with y growing downward is a clockwise turn on
// screen, pointing to the right of the direction p→. Used to build stroke
// offsets: offset = halfWidth * unit.Normal().
func (p FloatPoint) Normal() FloatPoint {
	return FloatPoint{X: -p.Y, Y: p.X}
}

// Lerp linearly interpolates between p and q; t=0 yields p, t=1 yields q.
func (p FloatPoint) Lerp(q FloatPoint, t float64) FloatPoint {
	return FloatPoint{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Equal reports whether p and q are bit-for-bit equal.
func (p FloatPoint) Equal(q FloatPoint) bool {
	return p.X == q.X && p.Y == q.Y
}

// Less orders points by (y, x), matching the ordering the tessellator's
// segment buckets rely on: segments are walked top-to-bottom, then
// left-to-right.
func (p FloatPoint) Less(q FloatPoint) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// IsFinite reports whether both coordinates are finite (neither NaN nor Inf).
func (p FloatPoint) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
