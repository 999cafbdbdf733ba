package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-bee/internal/config"
	"github.com/vovakirdan/flappy-bee/internal/core"
	"github.com/vovakirdan/flappy-bee/internal/games/flappy"
)

// Rows reserved below the playfield for the key help.
const helpRows = 1

// Model is the Bubble Tea model that runs a Flappy Bee world in the terminal.
type Model struct {
	world      *flappy.World
	screen     *core.Screen
	canvas     *Canvas
	keys       KeyMap
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	debug      bool
	quitting   bool
}

// NewModel creates a model for a fresh world built from cfg.
// A nil logger discards round logs.
func NewModel(cfg config.FlappyConfig, rc core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	world := flappy.NewWorld(cfg, rc.Seed)
	world.SetObserver(flappy.LogRounds(logger))

	screen := core.NewScreen(rc.ScreenW, core.Max(rc.ScreenH-helpRows, 1))
	w, h := world.Size()

	return Model{
		world:      world,
		screen:     screen,
		canvas:     NewCanvas(screen, w, h),
		keys:       DefaultKeyMap(),
		logger:     logger,
		config:     rc,
		inputFrame: core.NewInputFrame(),
		gameState:  world.State(),
		debug:      rc.Debug,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("starting", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "rounds", m.gameState.Rounds, "best", m.gameState.Best)
		return m, tea.Quit
	case core.ActionDebug:
		m.debug = !m.debug
	case core.ActionFly:
		// Terminals only report presses, so a press holds fly for the next tick.
		m.inputFrame.Set(core.ActionFly)
	}

	return m, nil
}

// handleResize refits the playfield. The world itself is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 1))
	m.canvas.Fit()
	return m, nil
}

// handleTick advances the world by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.gameState = m.world.Step(m.config.StepDelta(), m.inputFrame)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// draw renders the frame, the world and the status line into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()

	// Frame just outside the playfield; edges past the screen are clipped.
	vp := m.canvas.Viewport()
	m.screen.DrawBox(core.NewRect(vp.X-1, vp.Y-1, vp.Cols+2, vp.Rows+2), core.ColorGray)

	m.world.Draw(m.canvas, m.debug)

	status := fmt.Sprintf("best %d  round %d", m.gameState.Best, m.gameState.Rounds+1)
	if m.debug {
		status += "  [hitboxes]"
	}
	m.screen.DrawTextColored(m.canvas.Viewport().X, 0, status, core.ColorGray)
}

// saveScreenshot writes the current frame as plain text under ~/.flappybee/screenshots.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".flappybee", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappybee_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.keys.HelpLine(m.screen.Width())
}

// State returns the last state reported by the world.
func (m Model) State() core.GameState {
	return m.gameState
}

// Debug reports whether collision shapes are drawn.
func (m Model) Debug() bool {
	return m.debug
}

// Run starts the Bubble Tea program for a new world.
func Run(cfg config.FlappyConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rc, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
