package breakout

import (
	"github.com/vovakirdan/breakout/internal/config"
)

// State is the complete simulation state of one session. It is a plain
// value: Step returns a new State and never modifies its argument.
type State struct {
	Canvas   Canvas
	Config   config.SessionConfig
	Layout   Layout
	HitWidth float64 // Width of the brick hit-test rectangle

	Ball   Ball
	Paddle Paddle
	Bricks Grid

	Score     int
	HighScore int
	Phase     Phase
	Tick      uint64
}

// NewState lays out a fresh running session. highScore carries over from
// earlier sessions.
func NewState(c Canvas, cfg config.SessionConfig, mode HitWidthMode, highScore int, rng *SimpleRNG) (State, error) {
	layout, err := NewLayout(c, cfg)
	if err != nil {
		return State{}, err
	}

	return State{
		Canvas:    c,
		Config:    cfg,
		Layout:    layout,
		HitWidth:  layout.HitWidth(mode),
		Ball:      NewBall(c, cfg.BallSpeed, rng),
		Paddle:    NewPaddle(c),
		Bricks:    layout.Grid(),
		Score:     0,
		HighScore: max(highScore, 0),
		Phase:     PhaseRunning,
	}, nil
}

// Clone returns a copy that shares nothing mutable with s.
func (s State) Clone() State {
	s.Bricks = s.Bricks.Clone()
	return s
}

// Step advances the simulation by one tick. Once the phase is terminal the
// state is returned unchanged.
//
// Order within a tick:
//  1. brick collisions, tested at the current ball position; Won if the
//     grid is empty afterwards
//  2. floor check on the next position; Lost if the ball falls past it
//  3. move the ball
//  4. wall, then ceiling or paddle reflection, decided on the position one
//     tick ahead of the moved ball
//  5. paddle movement
func Step(s State, in Input) State {
	if s.Phase != PhaseRunning {
		return s
	}

	next := s
	next.Tick++

	det := Detect(next.Ball, next.Bricks, next.HitWidth)
	next.Ball = det.Ball
	next.Bricks = det.Bricks
	next.Score += det.ScoreDelta
	if next.Score > next.HighScore {
		next.HighScore = next.Score
	}
	if det.AllCleared {
		next.Phase = PhaseWon
		return next
	}

	if MissesFloor(next.Ball, next.Canvas) {
		next.Phase = PhaseLost
		return next
	}

	next.Ball.Pos = next.Ball.Projected()
	WallBounce(&next.Ball, next.Canvas)
	CeilingOrPaddleBounce(&next.Ball, next.Paddle, next.Canvas)

	next.Paddle.Move(in, next.Canvas)
	return next
}
