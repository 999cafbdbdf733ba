package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// At 60 ticks per second it reproduces the classic per-frame tuning:
// 0.3 px/frame² of gravity and a 6.5 px/frame fly impulse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: World{
			Width:  480,
			Height: 640,
		},
		Player: Player{
			Radius:        24,
			Gravity:       1080,
			FlyVelocity:   390,
			FrameDuration: 0.25,
			Frames:        2,
		},
		Flowers: Flowers{
			Speed:                100,
			GapBetween:           200,
			RectWidth:            13,
			RectHeight:           447,
			CircleRadius:         33,
			FloorCeilingDistance: 225,
			HeightOffset:         -400,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
