package flappy

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-bee/internal/core"
)

func TestLogRoundsWritesRoundEnd(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWorld()
	w.SetObserver(LogRounds(log.New(&buf)))
	placeFlower(w, 113.5, 0.3175)

	w.Step(step, core.NewInputFrame())

	out := buf.String()
	for _, want := range []string{"round over", "round=1", "score=1", "best=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q should contain %q", out, want)
		}
	}
}

func TestLogRoundsNilLogger(t *testing.T) {
	if LogRounds(nil) != nil {
		t.Fatal("nil logger should give a nil observer")
	}

	w := newTestWorld()
	w.SetObserver(LogRounds(nil))
	placeFlower(w, 113.5, 0.3175)

	// Crashing without a logger must not panic.
	if state := w.Step(step, core.NewInputFrame()); state.Rounds != 1 {
		t.Errorf("rounds = %d, expected 1", state.Rounds)
	}
}
