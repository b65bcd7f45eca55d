// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Vec is a point or velocity in world units.
type Vec struct {
	X, Y float64
}

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// RectF is an axis-aligned rectangle in world units, anchored at its top-left corner.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r RectF) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether two rectangles overlap with positive area.
// Rectangles that only share an edge do not intersect.
func (r RectF) Intersects(other RectF) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Circle is a circle in world units, anchored at its center.
type Circle struct {
	X, Y float64
	R    float64
}

// NewCircle creates a world-space circle.
func NewCircle(x, y, r float64) Circle {
	return Circle{X: x, Y: y, R: r}
}

// Center returns the circle's center point.
func (c Circle) Center() Vec {
	return Vec{X: c.X, Y: c.Y}
}

// Bounds returns the axis-aligned box enclosing the circle.
func (c Circle) Bounds() RectF {
	return RectF{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// Intersects reports whether the distance between centers is strictly less
// than the sum of the radii.
func (c Circle) Intersects(other Circle) bool {
	return c.Center().Dist(other.Center()) < c.R+other.R
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
