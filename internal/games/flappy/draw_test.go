package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-bee/internal/core"
)

// recordingCanvas counts draw calls by kind.
type recordingCanvas struct {
	fillCircles   []core.Circle
	fillRects     []core.RectF
	strokeCircles []core.Circle
	strokeRects   []core.RectF
	texts         []string
	textAt        []core.Vec
}

func (c *recordingCanvas) FillCircle(circle core.Circle, _ core.Color) {
	c.fillCircles = append(c.fillCircles, circle)
}

func (c *recordingCanvas) FillRect(r core.RectF, _ core.Color) {
	c.fillRects = append(c.fillRects, r)
}

func (c *recordingCanvas) StrokeCircle(circle core.Circle, _ core.Color) {
	c.strokeCircles = append(c.strokeCircles, circle)
}

func (c *recordingCanvas) StrokeRect(r core.RectF, _ core.Color) {
	c.strokeRects = append(c.strokeRects, r)
}

func (c *recordingCanvas) Text(at core.Vec, s string, _ core.Color) {
	c.texts = append(c.texts, s)
	c.textAt = append(c.textAt, at)
}

func TestDrawWorld(t *testing.T) {
	w := newTestWorld()
	f := placeFlower(w, 300, 0.5)

	var c recordingCanvas
	w.Draw(&c, false)

	if len(c.fillRects) != 2 {
		t.Errorf("expected 2 stems, got %d", len(c.fillRects))
	}
	if c.fillRects[0] != f.FloorRect() || c.fillRects[1] != f.CeilingRect() {
		t.Error("stems should be drawn at the collision rectangles")
	}
	// Two flower heads, bee body, bee wing
	if len(c.fillCircles) != 4 {
		t.Errorf("expected 4 filled circles, got %d", len(c.fillCircles))
	}
	if c.fillCircles[2] != w.Player().CollisionCircle() {
		t.Error("bee body should be drawn at its collision circle")
	}
	if len(c.strokeCircles)+len(c.strokeRects) != 0 {
		t.Error("debug outlines should not be drawn without debug")
	}

	if len(c.texts) != 1 || c.texts[0] != "0" {
		t.Fatalf("expected score text \"0\", got %v", c.texts)
	}
	if c.textAt[0] != (core.Vec{X: 240, Y: 512}) {
		t.Errorf("score drawn at %+v, expected (240, 512)", c.textAt[0])
	}
}

func TestDrawDebugOutlines(t *testing.T) {
	w := newTestWorld()
	placeFlower(w, 300, 0.5)
	placeFlower(w, 500, 0.25)

	var c recordingCanvas
	w.Draw(&c, true)

	// Two heads per flower plus the bee
	if len(c.strokeCircles) != 5 {
		t.Errorf("expected 5 outlined circles, got %d", len(c.strokeCircles))
	}
	if len(c.strokeRects) != 4 {
		t.Errorf("expected 4 outlined rects, got %d", len(c.strokeRects))
	}
}

func TestDrawBeeWingFollowsAnimation(t *testing.T) {
	w := newTestWorld()

	wing := func() core.Circle {
		var c recordingCanvas
		w.Draw(&c, false)
		return c.fillCircles[len(c.fillCircles)-1]
	}

	up := wing()
	w.Player().Update(0.3) // frame 1
	w.Player().SetPosition(120, 320)
	down := wing()

	if up.Center.Y <= down.Center.Y {
		t.Errorf("wing should flap between frames, got %f then %f", up.Center.Y, down.Center.Y)
	}
}
