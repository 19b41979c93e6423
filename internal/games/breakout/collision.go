package breakout

import "github.com/vovakirdan/breakout/internal/core"

// DetectResult is the outcome of one collision pass over the grid.
type DetectResult struct {
	Ball       Ball
	Bricks     Grid
	ScoreDelta int
	AllCleared bool // No brick is active after the pass
}

// BrickHitBox returns the rectangle a brick is hit-tested against.
func BrickHitBox(b Brick, hitWidth float64) core.Box {
	return core.Box{X: b.X, Y: b.Y, W: hitWidth, H: BrickHeight}
}

// Detect tests the ball center against every active brick. Every brick the
// center lies strictly inside is cleared, scores one point, and reverses the
// ball's vertical velocity; two hits in one pass reverse it twice.
// The input grid is not modified.
func Detect(ball Ball, bricks Grid, hitWidth float64) DetectResult {
	res := DetectResult{
		Ball:   ball,
		Bricks: bricks.Clone(),
	}

	for c := range res.Bricks {
		for r := range res.Bricks[c] {
			brick := &res.Bricks[c][r]
			if !brick.Active() {
				continue
			}
			if BrickHitBox(*brick, hitWidth).ContainsStrict(res.Ball.Pos) {
				res.Ball.BounceY()
				brick.Status = BrickCleared
				res.ScoreDelta++
			}
		}
	}

	res.AllCleared = res.Bricks.CountActive() == 0
	return res
}

// WallBounce reverses the ball's horizontal velocity when its projected x
// leaves [radius, canvasWidth-radius].
func WallBounce(ball *Ball, c Canvas) {
	next := ball.Projected()
	if next.X > c.Width-ball.Radius || next.X < ball.Radius {
		ball.BounceX()
	}
}

// CeilingOrPaddleBounce reverses the ball's vertical velocity when its
// projected y passes the ceiling, or passes the floor line while the ball
// is over the paddle.
func CeilingOrPaddleBounce(ball *Ball, p Paddle, c Canvas) {
	next := ball.Projected()
	if next.Y < ball.Radius {
		ball.BounceY()
	} else if next.Y > c.Height-ball.Radius {
		if p.Under(ball.Pos.X) {
			ball.BounceY()
		}
	}
}

// MissesFloor reports whether the ball's next position falls below the
// floor line.
func MissesFloor(ball Ball, c Canvas) bool {
	return ball.Projected().Y > c.Height-ball.Radius
}
