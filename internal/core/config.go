package core

// RuntimeConfig contains configuration passed to frontends at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (desktop)
	ScreenH  int   // Screen height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Debug    bool  // Draw collision shapes
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// StepDelta returns the fixed simulation step in seconds for the tick rate.
func (c RuntimeConfig) StepDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is a snapshot of round state for frontends.
type GameState struct {
	Score  int // Points in the current round
	Best   int // Best score since the process started
	Rounds int // Number of completed rounds
	Frames int // Frames simulated in the current round
}
