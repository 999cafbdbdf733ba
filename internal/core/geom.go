// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep game logic pure and testable.
package core

import "math"

// Rect is an integer axis-aligned rectangle in screen cells.
// Used by the terminal screen buffer, never by the simulation.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec is a point in world space. World origin is bottom-left, y grows upward.
type Vec struct {
	X, Y float64
}

// DistSq returns the squared distance between two points.
func (v Vec) DistSq(o Vec) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Circle is a collision circle in world space.
type Circle struct {
	Center Vec
	Radius float64
}

// NewCircle creates a circle centered at (x, y).
func NewCircle(x, y, radius float64) Circle {
	return Circle{Center: Vec{X: x, Y: y}, Radius: radius}
}

// Overlaps reports whether two circles touch or intersect.
// Distance between centers <= sum of radii.
func (c Circle) Overlaps(o Circle) bool {
	r := c.Radius + o.Radius
	return c.Center.DistSq(o.Center) <= r*r
}

// OverlapsRect reports whether the circle touches or intersects the rectangle.
// The center is clamped to the rectangle bounds and the distance to the clamped
// point is compared against the radius.
func (c Circle) OverlapsRect(r RectF) bool {
	closest := Vec{
		X: ClampF(c.Center.X, r.X, r.Right()),
		Y: ClampF(c.Center.Y, r.Y, r.Top()),
	}
	return c.Center.DistSq(closest) <= c.Radius*c.Radius
}

// RectF is an axis-aligned rectangle in world space.
// (X, Y) is the bottom-left corner.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a world rectangle with its bottom-left corner at (x, y).
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r RectF) Top() float64 {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
