// Package loop drives a simulation at a caller-chosen cadence. The
// simulation never schedules itself; a Ticker runs it in real time and
// Fixed runs it as fast as possible for headless runs and tests.
package loop

import (
	"context"
	"time"
)

// DefaultFPS is the tick rate used when none is given.
const DefaultFPS = 60

// Stepper advances a simulation by one tick. Returning false stops the loop.
type Stepper interface {
	Tick() bool
}

// StepFunc adapts a function to the Stepper interface.
type StepFunc func() bool

// Tick calls f.
func (f StepFunc) Tick() bool {
	return f()
}

// Interval converts a tick rate to the time between ticks.
// Non-positive rates fall back to DefaultFPS.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Ticker calls a stepper at a fixed wall-clock interval.
type Ticker struct {
	Interval time.Duration
}

// Run ticks s until it returns false or ctx is done. It returns the number
// of ticks run and ctx.Err() if the context ended the loop.
func (t Ticker) Run(ctx context.Context, s Stepper) (uint64, error) {
	interval := t.Interval
	if interval <= 0 {
		interval = Interval(DefaultFPS)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		case <-ticker.C:
			n++
			if !s.Tick() {
				return n, nil
			}
		}
	}
}

// Fixed calls a stepper back-to-back, at most Frames times.
// Zero Frames means no limit.
type Fixed struct {
	Frames uint64
}

// Run ticks s until it returns false, the frame limit is reached, or ctx is
// done. It returns the number of ticks run.
func (f Fixed) Run(ctx context.Context, s Stepper) (uint64, error) {
	var n uint64
	for f.Frames == 0 || n < f.Frames {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		n++
		if !s.Tick() {
			return n, nil
		}
	}
	return n, nil
}
