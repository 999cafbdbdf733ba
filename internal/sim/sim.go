// Package sim runs Flappy Bee worlds headless at a fixed step.
package sim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-bee/internal/config"
	"github.com/vovakirdan/flappy-bee/internal/core"
	"github.com/vovakirdan/flappy-bee/internal/games/flappy"
)

// Options controls a headless run.
type Options struct {
	Seed   int64
	Frames int
	Step   float64 // Seconds per frame

	// FlapEvery flies on every Nth frame. Zero never flies.
	FlapEvery int
	// Autopilot overrides FlapEvery.
	Autopilot bool
}

// Result summarizes a headless run.
type Result struct {
	Frames int
	State  core.GameState
}

// Run steps a fresh world opts.Frames times with scripted or autopilot input.
// Finished rounds are logged at info level. A nil logger discards them.
func Run(cfg config.FlappyConfig, opts Options, logger *log.Logger) Result {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	world := flappy.NewWorld(cfg, opts.Seed)
	world.SetObserver(flappy.LogRounds(logger))

	var pilot *flappy.Autopilot
	if opts.Autopilot {
		pilot = flappy.NewAutopilot()
	}

	state := world.State()
	for frame := 0; frame < opts.Frames; frame++ {
		in := core.NewInputFrame()
		switch {
		case pilot != nil:
			in = pilot.Input(world)
		case opts.FlapEvery > 0 && frame%opts.FlapEvery == 0:
			in.Set(core.ActionFly)
		}
		state = world.Step(opts.Step, in)
	}

	return Result{Frames: opts.Frames, State: state}
}
