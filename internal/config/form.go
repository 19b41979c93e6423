package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSessionFields converts the raw text of the settings form into a
// validated SessionConfig. Rows and columns must be whole numbers; the ball
// speed may be fractional.
func ParseSessionFields(rows, columns, ballSpeed string) (SessionConfig, error) {
	var cfg SessionConfig

	r, err := strconv.Atoi(strings.TrimSpace(rows))
	if err != nil {
		return cfg, fmt.Errorf("%w: rows must be a whole number", ErrInvalidConfig)
	}
	c, err := strconv.Atoi(strings.TrimSpace(columns))
	if err != nil {
		return cfg, fmt.Errorf("%w: columns must be a whole number", ErrInvalidConfig)
	}
	s, err := strconv.ParseFloat(strings.TrimSpace(ballSpeed), 64)
	if err != nil {
		return cfg, fmt.Errorf("%w: ball speed must be a number", ErrInvalidConfig)
	}

	cfg = SessionConfig{Rows: r, Columns: c, BallSpeed: s}
	if err := cfg.Validate(); err != nil {
		return SessionConfig{}, err
	}
	return cfg, nil
}

// FormatSpeed renders a ball speed for the settings form without a
// trailing ".0" on whole numbers.
func FormatSpeed(speed float64) string {
	return strconv.FormatFloat(speed, 'f', -1, 64)
}
