// Package config provides YAML-based game configuration loading for Flappy Bee.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all tunables of the simulation.
type FlappyConfig struct {
	World   World   `yaml:"world"`
	Player  Player  `yaml:"player"`
	Flowers Flowers `yaml:"flowers"`
}

// World defines the logical world size. Origin is bottom-left.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Player defines the bee's collision size and kinematics.
// Accelerations and velocities are per second so movement does not depend on
// the frame rate.
type Player struct {
	Radius        float64 `yaml:"radius"`
	Gravity       float64 `yaml:"gravity"`        // px/s², subtracted from vertical velocity
	FlyVelocity   float64 `yaml:"fly_velocity"`   // px/s, replaces vertical velocity on fly
	FrameDuration float64 `yaml:"frame_duration"` // seconds per animation frame
	Frames        int     `yaml:"frames"`         // animation frames in the loop
}

// Flowers defines the obstacle geometry, speed and spawn spacing.
type Flowers struct {
	Speed                float64 `yaml:"speed"`       // px/s to the left
	GapBetween           float64 `yaml:"gap_between"` // horizontal spacing between spawns
	RectWidth            float64 `yaml:"rect_width"`
	RectHeight           float64 `yaml:"rect_height"`
	CircleRadius         float64 `yaml:"circle_radius"`
	FloorCeilingDistance float64 `yaml:"floor_ceiling_distance"`
	HeightOffset         float64 `yaml:"height_offset"` // floor y is sampled from [HeightOffset, 0]
}

// Width returns the horizontal extent used for spawn and despawn math.
func (f Flowers) Width() float64 {
	return f.CircleRadius * 2
}

// Validate reports every invalid field in one error.
func (c FlappyConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("player.radius", c.Player.Radius)
	positive("player.fly_velocity", c.Player.FlyVelocity)
	positive("player.frame_duration", c.Player.FrameDuration)
	if c.Player.Gravity < 0 {
		errs = append(errs, fmt.Errorf("player.gravity must not be negative, got %v", c.Player.Gravity))
	}
	if c.Player.Frames < 1 {
		errs = append(errs, fmt.Errorf("player.frames must be at least 1, got %d", c.Player.Frames))
	}
	positive("flowers.speed", c.Flowers.Speed)
	positive("flowers.gap_between", c.Flowers.GapBetween)
	positive("flowers.rect_width", c.Flowers.RectWidth)
	positive("flowers.rect_height", c.Flowers.RectHeight)
	positive("flowers.circle_radius", c.Flowers.CircleRadius)
	positive("flowers.floor_ceiling_distance", c.Flowers.FloorCeilingDistance)
	if c.Flowers.HeightOffset > 0 {
		errs = append(errs, fmt.Errorf("flowers.height_offset must not be positive, got %v", c.Flowers.HeightOffset))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
