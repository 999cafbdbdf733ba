package flappy

import (
	"strconv"

	"github.com/vovakirdan/flappy-bee/internal/core"
)

// Canvas is the drawing capability a frontend provides. Coordinates are world
// coordinates (origin bottom-left); the frontend projects them to its surface.
type Canvas interface {
	FillCircle(c core.Circle, col core.Color)
	FillRect(r core.RectF, col core.Color)
	StrokeCircle(c core.Circle, col core.Color)
	StrokeRect(r core.RectF, col core.Color)
	// Text draws s horizontally centered on at.
	Text(at core.Vec, s string, col core.Color)
}

// Draw renders the world: flowers, then the bee, then the score.
// With debug set, every collision shape is outlined on top.
func (w *World) Draw(c Canvas, debug bool) {
	for _, f := range w.flowers {
		drawFlower(c, f)
	}
	drawBee(c, w.player)
	w.drawScore(c)

	if debug {
		w.drawDebug(c)
	}
}

func drawFlower(c Canvas, f *Flower) {
	c.FillRect(f.FloorRect(), core.ColorGreen)
	c.FillRect(f.CeilingRect(), core.ColorGreen)
	c.FillCircle(f.FloorCircle(), core.ColorMagenta)
	c.FillCircle(f.CeilingCircle(), core.ColorMagenta)
}

// drawBee draws the body and a wing whose pose follows the animation frame.
func drawBee(c Canvas, p *Player) {
	body := p.CollisionCircle()
	c.FillCircle(body, core.ColorYellow)

	wingY := body.Radius * 0.8
	if p.Frame()%2 == 1 {
		wingY = body.Radius * 0.2
	}
	wing := core.NewCircle(body.Center.X-body.Radius/3, body.Center.Y+wingY, body.Radius/2)
	c.FillCircle(wing, core.ColorWhite)
}

func (w *World) drawScore(c Canvas) {
	width, height := w.Size()
	c.Text(core.Vec{X: width / 2, Y: 4 * height / 5}, strconv.Itoa(w.score), core.ColorWhite)
}

func (w *World) drawDebug(c Canvas) {
	for _, f := range w.flowers {
		c.StrokeCircle(f.FloorCircle(), core.ColorCyan)
		c.StrokeRect(f.FloorRect(), core.ColorCyan)
		c.StrokeCircle(f.CeilingCircle(), core.ColorCyan)
		c.StrokeRect(f.CeilingRect(), core.ColorCyan)
	}
	c.StrokeCircle(w.player.CollisionCircle(), core.ColorCyan)
}
