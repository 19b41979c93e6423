package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Session: DefaultSessionConfig(),
		Collision: CollisionConfig{
			HitWidth: HitWidthSlot,
		},
	}
}

// DefaultSessionConfig returns the settings a fresh settings form starts with.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Rows:      5,
		Columns:   8,
		BallSpeed: 4,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
