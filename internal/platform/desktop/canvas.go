package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-bee/internal/core"
)

// Debug font glyph size used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

const strokeWidth = 2

var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {R: 220, G: 220, B: 220, A: 255},
	core.ColorYellow:  {R: 250, G: 205, B: 40, A: 255},
	core.ColorGreen:   {R: 60, G: 160, B: 70, A: 255},
	core.ColorMagenta: {R: 220, G: 70, B: 170, A: 255},
	core.ColorCyan:    {R: 60, G: 220, B: 230, A: 255},
	core.ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorGray:    {R: 140, G: 140, B: 140, A: 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// imageCanvas draws world shapes onto an ebiten image the same size as the world.
// World y grows upward, image y grows downward.
type imageCanvas struct {
	dst    *ebiten.Image
	height float64
}

func (c imageCanvas) flipY(y float64) float32 {
	return float32(c.height - y)
}

func (c imageCanvas) FillCircle(circle core.Circle, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(circle.Center.X), c.flipY(circle.Center.Y), float32(circle.Radius), rgba(col), true)
}

func (c imageCanvas) FillRect(r core.RectF, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), c.flipY(r.Top()), float32(r.W), float32(r.H), rgba(col), false)
}

func (c imageCanvas) StrokeCircle(circle core.Circle, col core.Color) {
	vector.StrokeCircle(c.dst, float32(circle.Center.X), c.flipY(circle.Center.Y), float32(circle.Radius), strokeWidth, rgba(col), true)
}

func (c imageCanvas) StrokeRect(r core.RectF, col core.Color) {
	vector.StrokeRect(c.dst, float32(r.X), c.flipY(r.Top()), float32(r.W), float32(r.H), strokeWidth, rgba(col), false)
}

// Text uses the built-in debug font, which is always white.
func (c imageCanvas) Text(at core.Vec, s string, _ core.Color) {
	x := int(at.X) - len([]rune(s))*glyphW/2
	y := int(c.height-at.Y) - glyphH/2
	ebitenutil.DebugPrintAt(c.dst, s, x, y)
}
