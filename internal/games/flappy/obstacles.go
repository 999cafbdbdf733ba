package flappy

import (
	"github.com/vovakirdan/flappy-bee/internal/config"
	"github.com/vovakirdan/flappy-bee/internal/core"
)

// RandSource provides uniform floats in [0, 1).
// *rand.Rand satisfies it; tests can pass a fixed source.
type RandSource interface {
	Float64() float64
}

// Flower is a floor and ceiling obstacle pair with a gap between them.
// Shapes are derived from (x, y) on every call; only x changes after spawn.
type Flower struct {
	x, y         float64
	geom         config.Flowers
	pointClaimed bool
}

// NewFlower creates a flower at x = 0 with its floor offset sampled once from
// [geom.HeightOffset, 0].
func NewFlower(rng RandSource, geom config.Flowers) *Flower {
	return &Flower{
		y:    geom.HeightOffset * rng.Float64(),
		geom: geom,
	}
}

// SetPosition moves the flower horizontally. Vertical placement is fixed.
func (f *Flower) SetPosition(x float64) {
	f.x = x
}

// X returns the horizontal position (left edge of the stems).
func (f *Flower) X() float64 {
	return f.x
}

// Y returns the floor stem's bottom edge.
func (f *Flower) Y() float64 {
	return f.y
}

// Update scrolls the flower left at constant speed.
func (f *Flower) Update(dt float64) {
	f.SetPosition(f.x - f.geom.Speed*dt)
}

// FloorRect returns the floor stem.
func (f *Flower) FloorRect() core.RectF {
	return core.NewRectF(f.x, f.y, f.geom.RectWidth, f.geom.RectHeight)
}

// FloorCircle returns the floor flower head, on top of the floor stem.
func (f *Flower) FloorCircle() core.Circle {
	r := f.FloorRect()
	return core.NewCircle(r.X+r.W/2, r.Top(), f.geom.CircleRadius)
}

// CeilingRect returns the ceiling stem, a fixed distance above the floor head.
func (f *Flower) CeilingRect() core.RectF {
	return core.NewRectF(f.x, f.FloorCircle().Center.Y+f.geom.FloorCeilingDistance,
		f.geom.RectWidth, f.geom.RectHeight)
}

// CeilingCircle returns the ceiling flower head, at the bottom of the ceiling stem.
func (f *Flower) CeilingCircle() core.Circle {
	r := f.CeilingRect()
	return core.NewCircle(r.X+r.W/2, r.Y, f.geom.CircleRadius)
}

// CollidesWith reports whether c touches any of the four shapes.
func (f *Flower) CollidesWith(c core.Circle) bool {
	return c.Overlaps(f.CeilingCircle()) ||
		c.Overlaps(f.FloorCircle()) ||
		c.OverlapsRect(f.CeilingRect()) ||
		c.OverlapsRect(f.FloorRect())
}

// MarkPointClaimed records that this flower has been scored.
func (f *Flower) MarkPointClaimed() {
	f.pointClaimed = true
}

// PointClaimed reports whether this flower has been scored.
func (f *Flower) PointClaimed() bool {
	return f.pointClaimed
}
