package breakout

import (
	"github.com/vovakirdan/breakout/internal/core"
)

// Entity dimensions and speeds, in canvas units.
const (
	BallRadius         = 10.0
	BallStartOffset    = 30.0 // Ball starts this far above the bottom edge
	PaddleWidth        = 150.0
	PaddleHeight       = 10.0
	PaddleBottomOffset = 10.0 // Gap between paddle and bottom edge
	PaddleSpeed        = 7.0  // Paddle movement per tick
)

// Canvas is the simulated playfield size, fixed for a session.
type Canvas struct {
	Width, Height float64
}

// Ball is the moving ball. Pos is the center.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2 // Canvas units per tick
	Radius float64
}

// Projected returns the position the ball would occupy after one more tick
// at its current velocity.
func (b Ball) Projected() core.Vec2 {
	return b.Pos.Add(b.Vel)
}

// Speed returns the magnitude of the ball's velocity.
func (b Ball) Speed() float64 {
	return b.Vel.Len()
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.Vel.X = -b.Vel.X
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.Vel.Y = -b.Vel.Y
}

// Paddle is the player's paddle. Only X changes during play.
type Paddle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
}

// Top returns the y-coordinate of the paddle's top edge on the canvas.
func (p Paddle) Top(c Canvas) float64 {
	return c.Height - p.Height - PaddleBottomOffset
}

// Box returns the paddle's drawn rectangle.
func (p Paddle) Box(c Canvas) core.Box {
	return core.Box{X: p.X, Y: p.Top(c), W: p.Width, H: p.Height}
}

// Under reports whether x lies strictly between the paddle's edges.
func (p Paddle) Under(x float64) bool {
	return x > p.X && x < p.X+p.Width
}

// MaxX returns the largest allowed left edge.
func (p Paddle) MaxX(c Canvas) float64 {
	return c.Width - p.Width
}

// Move applies one tick of input. Right wins when both directions are held.
// The paddle is kept within [0, canvas width - paddle width].
func (p *Paddle) Move(in Input, c Canvas) {
	maxX := p.MaxX(c)
	if in.Right && p.X < maxX {
		p.X += PaddleSpeed
	} else if in.Left && p.X > 0 {
		p.X -= PaddleSpeed
	}
	p.X = core.ClampF(p.X, 0, maxX)
}

// Input is the pair of held direction flags for one tick.
type Input struct {
	Left  bool
	Right bool
}

// InputFromFrame extracts the direction flags from a platform input frame.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Left:  f.Has(core.ActionLeft),
		Right: f.Has(core.ActionRight),
	}
}

// Phase is the coarse session state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseWon
	PhaseLost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the session.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}
