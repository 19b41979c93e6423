// Package config provides YAML/TOML session configuration loading,
// validation, and difficulty presets for the breakout game.
package config

import (
	"errors"
	"fmt"
)

// Limits accepted by Validate.
const (
	MaxRows      = 50
	MaxColumns   = 50
	MaxBallSpeed = 50.0
)

// Hit width modes for brick collision tests.
const (
	HitWidthSlot  = "slot"  // canvas width / columns
	HitWidthBrick = "brick" // laid-out brick width
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// BreakoutConfig contains all configuration for a breakout session.
type BreakoutConfig struct {
	Session   SessionConfig   `yaml:"session" toml:"session"`
	Collision CollisionConfig `yaml:"collision" toml:"collision"`
}

// SessionConfig is supplied at session start and stays fixed until the
// next reset.
type SessionConfig struct {
	Rows      int     `yaml:"rows" toml:"rows"`
	Columns   int     `yaml:"columns" toml:"columns"`
	BallSpeed float64 `yaml:"ball_speed" toml:"ball_speed"`
}

// CollisionConfig selects how brick hits are tested.
type CollisionConfig struct {
	HitWidth string `yaml:"hit_width" toml:"hit_width"`
}

// Validate rejects configurations the simulation cannot run with.
func (c SessionConfig) Validate() error {
	if c.Rows < 1 || c.Rows > MaxRows {
		return fmt.Errorf("%w: rows must be between 1 and %d, got %d", ErrInvalidConfig, MaxRows, c.Rows)
	}
	if c.Columns < 1 || c.Columns > MaxColumns {
		return fmt.Errorf("%w: columns must be between 1 and %d, got %d", ErrInvalidConfig, MaxColumns, c.Columns)
	}
	if !(c.BallSpeed > 0) || c.BallSpeed > MaxBallSpeed {
		return fmt.Errorf("%w: ball speed must be in (0, %g], got %g", ErrInvalidConfig, MaxBallSpeed, c.BallSpeed)
	}
	return nil
}

// Validate checks the session and collision sections.
func (c BreakoutConfig) Validate() error {
	if err := c.Session.Validate(); err != nil {
		return err
	}
	switch c.Collision.HitWidth {
	case "", HitWidthSlot, HitWidthBrick:
		return nil
	default:
		return fmt.Errorf("%w: hit_width must be %q or %q, got %q",
			ErrInvalidConfig, HitWidthSlot, HitWidthBrick, c.Collision.HitWidth)
	}
}
