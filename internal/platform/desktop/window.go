// Package desktop runs Flappy Bee in a native window using Ebitengine.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-bee/internal/config"
	"github.com/vovakirdan/flappy-bee/internal/core"
	"github.com/vovakirdan/flappy-bee/internal/games/flappy"
)

var skyColor = color.RGBA{R: 120, G: 190, B: 235, A: 255}

// Window implements ebiten.Game around a flappy.World.
type Window struct {
	world  *flappy.World
	config core.RuntimeConfig
	logger *log.Logger
	state  core.GameState
	debug  bool
}

// NewWindow creates a window for a fresh world built from cfg.
// A nil logger discards round logs.
func NewWindow(cfg config.FlappyConfig, rc core.RuntimeConfig, logger *log.Logger) *Window {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	world := flappy.NewWorld(cfg, rc.Seed)
	world.SetObserver(flappy.LogRounds(logger))

	return &Window{
		world:  world,
		config: rc,
		logger: logger,
		state:  world.State(),
		debug:  rc.Debug,
	}
}

// Update advances the world by one tick. Fly is held for as long as space is down.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		w.debug = !w.debug
	}

	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionFly)
	}

	w.state = w.world.Step(1/float64(ebiten.TPS()), in)
	return nil
}

// Draw renders the world and a status line.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	_, h := w.world.Size()
	w.world.Draw(imageCanvas{dst: screen, height: h}, w.debug)

	status := fmt.Sprintf("best %d  round %d", w.state.Best, w.state.Rounds+1)
	if w.debug {
		status += fmt.Sprintf("  tps %.0f", ebiten.ActualTPS())
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

// Layout fixes the logical screen to the world size.
func (w *Window) Layout(_, _ int) (int, int) {
	width, height := w.world.Size()
	return int(width), int(height)
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.FlappyConfig, rc core.RuntimeConfig, scale float64, logger *log.Logger) error {
	if scale <= 0 {
		scale = 1
	}
	win := NewWindow(cfg, rc, logger)
	width, height := win.world.Size()

	ebiten.SetWindowSize(int(width*scale), int(height*scale))
	ebiten.SetWindowTitle("Flappy Bee")
	if rc.TickRate > 0 {
		ebiten.SetTPS(rc.TickRate)
	}

	win.logger.Info("window opened", "seed", win.config.Seed, "tps", ebiten.TPS(), "scale", scale)
	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
