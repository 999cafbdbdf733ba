package tui

import (
	"math"

	"github.com/vovakirdan/flappy-bee/internal/core"
)

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2.0

const (
	fillRune   = '█'
	strokeRune = '·'
)

// Viewport is the block of cells the world is fitted into, letterboxed so the
// world keeps its proportions on non-square cells.
type Viewport struct {
	X, Y       int // Top-left cell
	Cols, Rows int
}

// Rect returns the viewport as a cell rectangle.
func (v Viewport) Rect() core.Rect {
	return core.NewRect(v.X, v.Y, v.Cols, v.Rows)
}

// FitViewport fits a world of worldW×worldH into a screen of cols×rows cells.
func FitViewport(cols, rows int, worldW, worldH float64) Viewport {
	if cols <= 0 || rows <= 0 || worldW <= 0 || worldH <= 0 {
		return Viewport{}
	}
	aspect := worldW / worldH

	vr := rows
	vc := int(math.Round(float64(rows) * cellAspect * aspect))
	if vc > cols {
		vc = cols
		vr = int(math.Round(float64(cols) / (cellAspect * aspect)))
	}
	vc = core.Max(vc, 1)
	vr = core.Max(vr, 1)

	return Viewport{
		X:    (cols - vc) / 2,
		Y:    (rows - vr) / 2,
		Cols: vc,
		Rows: vr,
	}
}

// Canvas rasterizes world shapes into a core.Screen.
type Canvas struct {
	screen *core.Screen
	view   Viewport
	worldW float64
	worldH float64
}

// NewCanvas creates a canvas drawing a worldW×worldH world onto screen.
func NewCanvas(screen *core.Screen, worldW, worldH float64) *Canvas {
	c := &Canvas{screen: screen, worldW: worldW, worldH: worldH}
	c.Fit()
	return c
}

// Fit recomputes the viewport after the screen was resized.
func (c *Canvas) Fit() {
	c.view = FitViewport(c.screen.Width(), c.screen.Height(), c.worldW, c.worldH)
}

// Viewport returns the current viewport.
func (c *Canvas) Viewport() Viewport {
	return c.view
}

func (c *Canvas) scaleX() float64 { return float64(c.view.Cols) / c.worldW }
func (c *Canvas) scaleY() float64 { return float64(c.view.Rows) / c.worldH }

// toCell projects a world point to fractional cell coordinates. y is flipped.
func (c *Canvas) toCell(v core.Vec) (col, row float64) {
	col = float64(c.view.X) + v.X*c.scaleX()
	row = float64(c.view.Y) + (c.worldH-v.Y)*c.scaleY()
	return col, row
}

// toWorld returns the world point at the center of a cell.
func (c *Canvas) toWorld(col, row int) core.Vec {
	return core.Vec{
		X: (float64(col-c.view.X) + 0.5) / c.scaleX(),
		Y: c.worldH - (float64(row-c.view.Y)+0.5)/c.scaleY(),
	}
}

// set writes a cell only inside the viewport so shapes never spill into the letterbox.
func (c *Canvas) set(x, y int, r rune, color core.Color) {
	if !c.view.Rect().Contains(x, y) {
		return
	}
	c.screen.SetColored(x, y, r, color)
}

// cellRect returns the cells covered by a world rectangle.
func (c *Canvas) cellRect(r core.RectF) core.Rect {
	left, top := c.toCell(core.Vec{X: r.X, Y: r.Top()})
	right, bottom := c.toCell(core.Vec{X: r.Right(), Y: r.Y})
	x0, y0 := int(math.Floor(left)), int(math.Floor(top))
	x1, y1 := int(math.Ceil(right)), int(math.Ceil(bottom))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// visible reports whether any of cells lies inside the viewport.
func (c *Canvas) visible(cells core.Rect) bool {
	return cells.Intersects(c.view.Rect())
}

// FillRect fills every cell the rectangle touches.
func (c *Canvas) FillRect(r core.RectF, col core.Color) {
	cells := c.cellRect(r)
	if !c.visible(cells) {
		return
	}
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			c.set(x, y, fillRune, col)
		}
	}
}

// StrokeRect outlines the rectangle.
func (c *Canvas) StrokeRect(r core.RectF, col core.Color) {
	cells := c.cellRect(r)
	if !c.visible(cells) {
		return
	}
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			if y == cells.Y || y == cells.Bottom()-1 || x == cells.X || x == cells.Right()-1 {
				c.set(x, y, strokeRune, col)
			}
		}
	}
}

// FillCircle fills cells whose centers lie inside the circle. The cell under the
// center is always filled so small circles stay visible.
func (c *Canvas) FillCircle(circle core.Circle, col core.Color) {
	cells := c.cellRect(core.NewRectF(
		circle.Center.X-circle.Radius, circle.Center.Y-circle.Radius,
		2*circle.Radius, 2*circle.Radius,
	))
	if !c.visible(cells) {
		return
	}
	r2 := circle.Radius * circle.Radius
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			if c.toWorld(x, y).DistSq(circle.Center) <= r2 {
				c.set(x, y, fillRune, col)
			}
		}
	}

	cx, cy := c.toCell(circle.Center)
	c.set(int(math.Floor(cx)), int(math.Floor(cy)), fillRune, col)
}

// StrokeCircle marks cells along the circumference.
func (c *Canvas) StrokeCircle(circle core.Circle, col core.Color) {
	// Enough samples to hit every cell the outline crosses
	perimeter := 2 * math.Pi * circle.Radius * math.Max(c.scaleX(), c.scaleY())
	n := core.Max(int(perimeter*2), 16)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		p := core.Vec{
			X: circle.Center.X + circle.Radius*math.Cos(a),
			Y: circle.Center.Y + circle.Radius*math.Sin(a),
		}
		x, y := c.toCell(p)
		c.set(int(math.Floor(x)), int(math.Floor(y)), strokeRune, col)
	}
}

// Text writes s centered on the projected point.
func (c *Canvas) Text(at core.Vec, s string, col core.Color) {
	x, y := c.toCell(at)
	n := len([]rune(s))
	c.screen.DrawTextColored(int(math.Floor(x))-n/2, int(math.Floor(y)), s, col)
}
