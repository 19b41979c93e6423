package config

import "fmt"

// DifficultyPreset names a bundle of session settings.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
}

// ApplyPreset modifies the session settings for a difficulty preset.
// Normal leaves the loaded configuration untouched.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Rows = 3
		cfg.Session.BallSpeed = 3
	case DifficultyHard:
		cfg.Session.Rows = 7
		cfg.Session.BallSpeed = 6
	}
}
