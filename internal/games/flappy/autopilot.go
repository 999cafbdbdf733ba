package flappy

import "github.com/vovakirdan/flappy-bee/internal/core"

// Autopilot decides the fly input from the world state. It aims for the middle
// of the gap of the first flower the bee has not yet cleared.
// Used by headless simulation runs and demo mode.
type Autopilot struct {
	// Margin below the target height that triggers a fly impulse.
	Margin float64
}

// NewAutopilot returns an autopilot with a margin suited to the default tuning.
func NewAutopilot() *Autopilot {
	return &Autopilot{Margin: 20}
}

// Input returns the input frame for the next Step.
func (a *Autopilot) Input(w *World) core.InputFrame {
	in := core.NewInputFrame()
	p := w.Player()
	if p.Position().Y < a.target(w)-a.Margin && p.Velocity() <= 0 {
		in.Set(core.ActionFly)
	}
	return in
}

func (a *Autopilot) target(w *World) float64 {
	body := w.Player().CollisionCircle()
	for _, f := range w.Flowers() {
		if f.FloorRect().Right()+f.FloorCircle().Radius < body.Center.X-body.Radius {
			continue
		}
		floor := f.FloorCircle()
		ceiling := f.CeilingCircle()
		return (floor.Center.Y + ceiling.Center.Y) / 2
	}
	_, height := w.Size()
	return height / 2
}
