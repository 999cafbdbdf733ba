package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-bee/internal/config"
	"github.com/vovakirdan/flappy-bee/internal/core"
)

func newTestWorld() *World {
	return NewWorld(config.DefaultFlappyConfig(), 12345)
}

// placeFlower appends a flower at x whose floor offset is -400*sample.
func placeFlower(w *World, x, sample float64) *Flower {
	f := NewFlower(fixedRand(sample), w.cfg.Flowers)
	f.SetPosition(x)
	w.flowers = append(w.flowers, f)
	return f
}

func flyInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionFly)
	return in
}

func TestWorldInitialState(t *testing.T) {
	w := newTestWorld()

	if pos := w.Player().Position(); pos != (core.Vec{X: 120, Y: 320}) {
		t.Errorf("player starts at %+v, expected (120, 320)", pos)
	}
	if len(w.Flowers()) != 0 {
		t.Errorf("expected no flowers before the first step, got %d", len(w.Flowers()))
	}
	if s := w.State(); s != (core.GameState{}) {
		t.Errorf("initial state = %+v, expected zero", s)
	}
}

func TestWorldSpawnsFirstFlowerOffscreen(t *testing.T) {
	w := newTestWorld()
	w.Step(step, core.NewInputFrame())

	if len(w.Flowers()) != 1 {
		t.Fatalf("expected one flower after the first step, got %d", len(w.Flowers()))
	}
	if x := w.Flowers()[0].X(); x != 546 {
		t.Errorf("first flower at x=%f, expected 546 (world width + flower width)", x)
	}
}

func TestWorldClampsPlayerToWorld(t *testing.T) {
	w := newTestWorld()
	p := w.Player()

	p.SetPosition(120, 5)
	p.vy = -600
	w.Step(step, core.NewInputFrame())
	if y := p.Position().Y; y != 0 {
		t.Errorf("player y = %f, expected clamp to 0", y)
	}
	// Clamping keeps velocity
	if !almostEqual(p.Velocity(), -618) {
		t.Errorf("velocity after clamp = %f, expected -618", p.Velocity())
	}

	p.SetPosition(120, 638)
	p.vy = 0
	w.Step(step, flyInput())
	if y := p.Position().Y; y != 640 {
		t.Errorf("player y = %f, expected clamp to 640", y)
	}
}

func TestWorldPlayerStaysInBounds(t *testing.T) {
	w := newTestWorld()

	for i := 0; i < 3000; i++ {
		in := core.NewInputFrame()
		if (i/90)%2 == 0 {
			in.Set(core.ActionFly) // hold for 1.5s, release for 1.5s
		}
		w.Step(step, in)

		if y := w.Player().Position().Y; y < 0 || y > 640 {
			t.Fatalf("frame %d: player y = %f out of [0, 640]", i, y)
		}
	}
}

func TestWorldFlyInputOverridesGravity(t *testing.T) {
	w := newTestWorld()
	w.Step(step, flyInput())

	if v := w.Player().Velocity(); v != 390 {
		t.Errorf("velocity with fly input = %f, expected 390", v)
	}
}

func TestWorldScrollAndSecondSpawn(t *testing.T) {
	w := newTestWorld()
	first := placeFlower(w, 600, 0.5)

	for frame := 1; frame <= 250; frame++ {
		before := first.X()
		countBefore := len(w.Flowers())

		w.Step(step, core.NewInputFrame())

		if d := first.X() - before; !almostEqual(d, -100*step) {
			t.Fatalf("frame %d: dx = %f, expected %f", frame, d, -100*step)
		}

		spawned := len(w.Flowers()) - countBefore
		if spawned < 0 || spawned > 1 {
			t.Fatalf("frame %d: flower count changed by %d", frame, spawned)
		}
		if spawned == 1 {
			if before < 280 {
				t.Fatalf("frame %d: second flower spawned late, previous x was %f", frame, before)
			}
			if first.X() >= 280 {
				t.Fatalf("frame %d: second flower spawned early at x=%f", frame, first.X())
			}
			if x := w.Flowers()[1].X(); x != 546 {
				t.Errorf("second flower at x=%f, expected 546", x)
			}
		}
	}

	if len(w.Flowers()) != 2 {
		t.Errorf("expected exactly two flowers after 250 frames, got %d", len(w.Flowers()))
	}
	if w.State().Rounds != 0 {
		t.Error("no collision expected in this scenario")
	}
}

func TestWorldSpawnSpacingIsConstant(t *testing.T) {
	w := newTestWorld()

	for i := 0; i < 300 && len(w.Flowers()) < 2; i++ {
		w.Step(step, core.NewInputFrame())
	}

	flowers := w.Flowers()
	if len(flowers) != 2 {
		t.Fatalf("expected two flowers, got %d", len(flowers))
	}
	// The second flower appears at 546 on the frame the first drops below 480-200.
	expected := 546.0 - 280.0
	gap := flowers[1].X() - flowers[0].X()
	if gap <= expected || gap > expected+100*step+epsilon {
		t.Errorf("spacing between spawns = %f, expected just over %f", gap, expected)
	}
}

func TestWorldDespawnsOldestOnly(t *testing.T) {
	w := newTestWorld()
	w.Player().SetPosition(120, 320)
	placeFlower(w, -65, 0.5)
	placeFlower(w, -30, 0.5)
	newest := placeFlower(w, 400, 0.5)

	w.Step(step, core.NewInputFrame())

	// -65 moved past -66 and is gone; -30 stays; no spawn as 400 is far right
	if len(w.Flowers()) != 2 {
		t.Fatalf("expected 2 flowers, got %d", len(w.Flowers()))
	}
	if x := w.Flowers()[0].X(); !almostEqual(x, -30-100*step) {
		t.Errorf("oldest remaining at x=%f, expected %f", x, -30-100*step)
	}
	if w.Flowers()[1] != newest {
		t.Error("newest flower should be kept in order")
	}
}

func TestWorldDespawnsAtMostOnePerFrame(t *testing.T) {
	w := newTestWorld()
	placeFlower(w, -200, 0.5)
	placeFlower(w, -150, 0.5)
	placeFlower(w, 400, 0.5)

	w.Step(step, core.NewInputFrame())
	if len(w.Flowers()) != 2 {
		t.Fatalf("expected one removal in the first frame, got %d flowers", len(w.Flowers()))
	}

	w.Step(step, core.NewInputFrame())
	if len(w.Flowers()) != 1 {
		t.Fatalf("expected second removal in the next frame, got %d flowers", len(w.Flowers()))
	}
}

func TestWorldScoresOncePerFlower(t *testing.T) {
	w := newTestWorld()
	// Gap centered on the bee's height: floor head at 207.5, ceiling head at 432.5
	f := placeFlower(w, 121, 0.59875)

	state := w.Step(step, core.NewInputFrame())
	if state.Score != 1 {
		t.Fatalf("score = %d, expected 1 once the flower falls behind the bee", state.Score)
	}
	if !f.PointClaimed() {
		t.Error("flower should be claimed")
	}

	for i := 0; i < 5; i++ {
		state = w.Step(step, core.NewInputFrame())
	}
	if state.Score != 1 {
		t.Errorf("score = %d, a flower must only score once", state.Score)
	}
	if state.Rounds != 0 {
		t.Error("bee should have passed through the gap without colliding")
	}
	if state.Best != 1 {
		t.Errorf("best = %d, expected 1", state.Best)
	}
}

func TestWorldDoesNotScoreAheadOfPlayer(t *testing.T) {
	w := newTestWorld()
	placeFlower(w, 300, 0.5)

	if s := w.Step(step, core.NewInputFrame()); s.Score != 0 {
		t.Errorf("score = %d, flower ahead of the bee must not score", s.Score)
	}
}

func TestWorldScoreWithNoFlowersIsNoop(t *testing.T) {
	w := newTestWorld()

	w.updateScore()

	if w.State().Score != 0 {
		t.Error("scoring with no flowers should do nothing")
	}
}

func TestWorldCollisionRestartsRound(t *testing.T) {
	w := newTestWorld()
	// Floor head centered exactly on the bee at (120, 320)
	placeFlower(w, 113.5, 0.3175)

	var ended []RoundEnd
	w.SetObserver(func(e RoundEnd) { ended = append(ended, e) })

	state := w.Step(step, core.NewInputFrame())

	if state.Score != 0 {
		t.Errorf("score after restart = %d, expected 0", state.Score)
	}
	if len(w.Flowers()) != 0 {
		t.Errorf("flowers after restart = %d, expected 0", len(w.Flowers()))
	}
	if pos := w.Player().Position(); pos != (core.Vec{X: 120, Y: 320}) {
		t.Errorf("player after restart at %+v, expected (120, 320)", pos)
	}
	// One step of gravity from rest; restart does not touch velocity.
	if v := w.Player().Velocity(); !almostEqual(v, -18) {
		t.Errorf("velocity after restart = %f, expected -18", v)
	}
	if state.Rounds != 1 {
		t.Errorf("rounds = %d, expected 1", state.Rounds)
	}

	// The flower was behind the bee and scored before the collision ended the round.
	if len(ended) != 1 {
		t.Fatalf("observer called %d times, expected 1", len(ended))
	}
	want := RoundEnd{Round: 1, Score: 1, Best: 1, Frames: 1}
	if ended[0] != want {
		t.Errorf("round end = %+v, expected %+v", ended[0], want)
	}
	if state.Best != 1 {
		t.Errorf("best should survive restart, got %d", state.Best)
	}

	// Playing resumes on the next frame
	w.Step(step, core.NewInputFrame())
	if len(w.Flowers()) != 1 {
		t.Errorf("expected a fresh flower on the frame after restart, got %d", len(w.Flowers()))
	}
}

func TestWorldRestartKeepsVelocity(t *testing.T) {
	w := newTestWorld()
	placeFlower(w, 113.5, 0.3175)
	w.Player().vy = -300

	state := w.Step(step, core.NewInputFrame())

	if state.Rounds != 1 {
		t.Fatalf("rounds = %d, expected the bee to crash", state.Rounds)
	}
	if pos := w.Player().Position(); pos != (core.Vec{X: 120, Y: 320}) {
		t.Errorf("player after restart at %+v, expected (120, 320)", pos)
	}
	if v := w.Player().Velocity(); !almostEqual(v, -318) {
		t.Errorf("velocity after restart = %f, expected -318 carried into the new round", v)
	}
}

func TestWorldResetClearsSession(t *testing.T) {
	w := newTestWorld()
	placeFlower(w, 113.5, 0.3175)
	w.Step(step, core.NewInputFrame())

	w.Reset(7)

	if s := w.State(); s != (core.GameState{}) {
		t.Errorf("state after Reset = %+v, expected zero", s)
	}
	if v := w.Player().Velocity(); v != 0 {
		t.Errorf("velocity after Reset = %f, expected a bee at rest", v)
	}
}

func TestWorldDeterminism(t *testing.T) {
	run := func() *World {
		w := newTestWorld()
		pilot := NewAutopilot()
		for i := 0; i < 2000; i++ {
			w.Step(step, pilot.Input(w))
		}
		return w
	}

	w1 := run()
	w2 := run()

	if w1.State() != w2.State() {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", w1.State(), w2.State())
	}
	if w1.Player().Position() != w2.Player().Position() {
		t.Errorf("Determinism failed: player positions differ")
	}
	if len(w1.Flowers()) != len(w2.Flowers()) {
		t.Fatalf("Determinism failed: flower counts differ")
	}
	for i := range w1.Flowers() {
		a, b := w1.Flowers()[i], w2.Flowers()[i]
		if a.X() != b.X() || a.Y() != b.Y() {
			t.Errorf("Determinism failed: flower %d differs", i)
		}
	}
}

func TestWorldSeedChangesFlowerHeights(t *testing.T) {
	heights := func(seed int64) []float64 {
		w := NewWorld(config.DefaultFlappyConfig(), seed)
		var ys []float64
		for i := 0; i < 5; i++ {
			w.spawnFlower()
			ys = append(ys, w.Flowers()[i].Y())
		}
		return ys
	}

	a, b := heights(1), heights(2)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
		}
		if a[i] > 0 || a[i] < -400 {
			t.Errorf("flower height %f outside [-400, 0]", a[i])
		}
	}
	if same {
		t.Error("different seeds should give different flower heights")
	}
}

func TestAutopilotDecision(t *testing.T) {
	w := newTestWorld()
	pilot := NewAutopilot()

	// No flowers: target is mid-height (320)
	w.Player().SetPosition(120, 100)
	if !pilot.Input(w).Has(core.ActionFly) {
		t.Error("autopilot should fly when well below the target")
	}

	w.Player().SetPosition(120, 500)
	if pilot.Input(w).Has(core.ActionFly) {
		t.Error("autopilot should not fly when above the target")
	}

	w.Player().SetPosition(120, 100)
	w.Player().vy = 50
	if pilot.Input(w).Has(core.ActionFly) {
		t.Error("autopilot should not fly while still climbing")
	}

	// Gap of this flower is centered at 559.5 - 400 = 159.5, below mid-height
	w.Player().vy = 0
	w.Player().SetPosition(120, 200)
	placeFlower(w, 300, 1)
	if pilot.Input(w).Has(core.ActionFly) {
		t.Error("autopilot should aim for the next flower's gap, not mid-height")
	}
}
