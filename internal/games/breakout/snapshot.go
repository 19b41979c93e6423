package breakout

import "math"

// Snapshot is a read-only copy of a session's state, handed to renderers
// and used for replay checks.
type Snapshot struct {
	Tick       uint64
	Canvas     Canvas
	BrickWidth float64

	Ball   Ball
	Paddle Paddle
	Bricks Grid

	Score     int
	HighScore int
	Phase     Phase
}

// NewSnapshot copies the renderable parts of s.
func NewSnapshot(s State) Snapshot {
	return Snapshot{
		Tick:       s.Tick,
		Canvas:     s.Canvas,
		BrickWidth: s.Layout.BrickWidth,
		Ball:       s.Ball,
		Paddle:     s.Paddle,
		Bricks:     s.Bricks.Clone(),
		Score:      s.Score,
		HighScore:  s.HighScore,
		Phase:      s.Phase,
	}
}

// BricksRemaining returns the number of active bricks.
func (snap *Snapshot) BricksRemaining() int {
	return snap.Bricks.CountActive()
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so two runs only match when
// every position agrees exactly.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.Ball.Pos.X)
	h = h*31 + math.Float64bits(snap.Ball.Pos.Y)
	h = h*31 + math.Float64bits(snap.Ball.Vel.X)
	h = h*31 + math.Float64bits(snap.Ball.Vel.Y)
	h = h*31 + math.Float64bits(snap.Paddle.X)
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation

	for _, col := range snap.Bricks {
		for _, b := range col {
			h = h*31 + uint64(b.Status) //#nosec G115 -- hash computation
		}
	}

	return h
}
