// Package physics provides vector math, wall reflection and hit testing.
package physics

import "math"

// Vec2 is a 2D vector in surface pixels.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vec2) float64 {
	d := b.Sub(a)
	return d.X*d.X + d.Y*d.Y
}

// PointInCircle reports whether p lies within radius of center (boundary inclusive).
func PointInCircle(p, center Vec2, radius float64) bool {
	return DistanceSquared(p, center) <= radius*radius
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Reflect bounces the span [pos, pos+size] off the walls at 0 and limit.
// When the span touches or crosses a wall the velocity is negated and the
// position clamped back into [0, limit-size].
func Reflect(pos, vel, size, limit float64) (float64, float64) {
	if pos <= 0 || pos+size >= limit {
		vel = -vel
		pos = Clamp(pos, 0, limit-size)
	}
	return pos, vel
}
