package core

import "math"

// Vec2 is a point or displacement in world units (pixels).
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

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Direction returns the unit vector from `from` toward `to`.
// The distance is floored at 1, so coincident points yield a zero vector
// and very short aims yield a shortened one.
func Direction(from, to Vec2) Vec2 {
	d := to.Sub(from)
	dist := math.Max(1, d.Len())
	return Vec2{X: d.X / dist, Y: d.Y / dist}
}

// Box is an axis-aligned bounding box in world units.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether b and o share interior area.
// All four comparisons are strict: boxes that only touch do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() &&
		b.Right() > o.X &&
		b.Y < o.Bottom() &&
		b.Bottom() > o.Y
}

// Inflate grows the box by d on every side.
func (b Box) Inflate(d float64) Box {
	return Box{X: b.X - d, Y: b.Y - d, W: b.W + 2*d, H: b.H + 2*d}
}

// ContainsStrict reports whether p lies strictly inside the box.
// Points on an edge are outside.
func (b Box) ContainsStrict(p Vec2) bool {
	return b.X < p.X && p.X < b.Right() &&
		b.Y < p.Y && p.Y < b.Bottom()
}
