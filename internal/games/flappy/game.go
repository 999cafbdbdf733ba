// Package flappy implements the Flappy Bee simulation.
// The player steers a bee through the gaps of flowers scrolling in from the right.
// The package is pure logic: frontends feed it elapsed time and input, then draw
// it through a Canvas.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-bee/internal/config"
	"github.com/vovakirdan/flappy-bee/internal/core"
)

// RoundEnd describes a round that just ended in a collision.
type RoundEnd struct {
	Round  int // 1-based number of the round that ended
	Score  int
	Best   int
	Frames int
}

// RoundObserver is notified from inside Step when a round ends.
type RoundObserver func(RoundEnd)

// World owns the player, the flowers and the score, and advances them one frame
// at a time. A World is not safe for concurrent use.
type World struct {
	cfg    config.FlappyConfig
	rng    *rand.Rand
	player *Player

	// Oldest (leftmost) first. Spawning appends, despawning pops the front.
	flowers []*Flower

	score  int
	best   int
	rounds int
	frames int

	observer RoundObserver
}

// NewWorld creates a world ready to play, seeded for reproducible flower placement.
func NewWorld(cfg config.FlappyConfig, seed int64) *World {
	w := &World{
		cfg:     cfg,
		flowers: make([]*Flower, 0, 8),
	}
	w.Reset(seed)
	return w
}

// SetObserver registers fn to be called when a round ends. nil disables it.
func (w *World) SetObserver(fn RoundObserver) {
	w.observer = fn
}

// Reset starts a fresh session: new RNG, a bee at rest, first round, best score cleared.
func (w *World) Reset(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
	w.player = NewPlayer(w.cfg.Player)
	w.best = 0
	w.rounds = 0
	w.restart()
}

// Step advances the world by dt seconds. The order of the phases matters for
// scoring and collision and must not be rearranged.
func (w *World) Step(dt float64, in core.InputFrame) core.GameState {
	w.frames++

	w.updatePlayer(dt, in)
	w.updateFlowers(dt)
	w.updateScore()

	if w.checkForCollision() {
		w.endRound()
	}

	return w.State()
}

func (w *World) updatePlayer(dt float64, in core.InputFrame) {
	w.player.Update(dt)
	if in.Has(core.ActionFly) {
		w.player.FlyUp(dt)
	}
	w.blockPlayerLeavingTheWorld()
}

// blockPlayerLeavingTheWorld clamps y to the world. Velocity is kept, so the
// bee sticks to the edge until gravity or a fly impulse carries it back.
func (w *World) blockPlayerLeavingTheWorld() {
	pos := w.player.Position()
	w.player.SetPosition(pos.X, core.ClampF(pos.Y, 0, w.cfg.World.Height))
}

func (w *World) updateFlowers(dt float64) {
	for _, f := range w.flowers {
		f.Update(dt)
	}
	w.spawnFlowerIfNeeded()
	w.removeFlowerIfPassed()
}

func (w *World) spawnFlowerIfNeeded() {
	if len(w.flowers) == 0 {
		w.spawnFlower()
		return
	}
	newest := w.flowers[len(w.flowers)-1]
	if newest.X() < w.cfg.World.Width-w.cfg.Flowers.GapBetween {
		w.spawnFlower()
	}
}

func (w *World) spawnFlower() {
	f := NewFlower(w.rng, w.cfg.Flowers)
	f.SetPosition(w.cfg.World.Width + w.cfg.Flowers.Width())
	w.flowers = append(w.flowers, f)
}

// removeFlowerIfPassed drops the oldest flower once it is fully off-screen.
// Flowers retire in spawn order, so one check per frame is enough.
func (w *World) removeFlowerIfPassed() {
	if len(w.flowers) == 0 {
		return
	}
	if w.flowers[0].X() < -w.cfg.Flowers.Width() {
		w.flowers[0] = nil
		w.flowers = w.flowers[1:]
	}
}

func (w *World) updateScore() {
	if len(w.flowers) == 0 {
		return
	}
	oldest := w.flowers[0]
	if oldest.X() < w.player.Position().X && !oldest.PointClaimed() {
		oldest.MarkPointClaimed()
		w.score++
		if w.score > w.best {
			w.best = w.score
		}
	}
}

func (w *World) checkForCollision() bool {
	c := w.player.CollisionCircle()
	for _, f := range w.flowers {
		if f.CollidesWith(c) {
			return true
		}
	}
	return false
}

func (w *World) endRound() {
	w.rounds++
	if w.observer != nil {
		w.observer(RoundEnd{
			Round:  w.rounds,
			Score:  w.score,
			Best:   w.best,
			Frames: w.frames,
		})
	}
	w.restart()
}

// restart resets the round in place: bee back to its start, no flowers, no score.
// The bee keeps its velocity.
func (w *World) restart() {
	start := w.StartPosition()
	w.player.SetPosition(start.X, start.Y)
	clear(w.flowers)
	w.flowers = w.flowers[:0]
	w.score = 0
	w.frames = 0
}

// StartPosition is where the bee appears at the beginning of every round.
func (w *World) StartPosition() core.Vec {
	return core.Vec{X: w.cfg.World.Width / 4, Y: w.cfg.World.Height / 2}
}

// Size returns the world dimensions.
func (w *World) Size() (width, height float64) {
	return w.cfg.World.Width, w.cfg.World.Height
}

// Player returns the bee.
func (w *World) Player() *Player {
	return w.player
}

// Flowers returns the active flowers, oldest first. The slice must not be modified.
func (w *World) Flowers() []*Flower {
	return w.flowers
}

// State returns the current round state.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:  w.score,
		Best:   w.best,
		Rounds: w.rounds,
		Frames: w.frames,
	}
}
