package breakout

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
)

// Brick grid geometry, in canvas units.
const (
	BrickHeight    = 20.0
	BrickPadding   = 10.0
	BrickOffsetTop = 30.0
)

// Launch angles measured from the horizontal: [60°, 120°).
const (
	MinLaunchAngle = math.Pi / 3
	LaunchSpread   = math.Pi / 3
)

// ErrCanvasTooSmall is returned when the canvas cannot hold the layout.
var ErrCanvasTooSmall = errors.New("breakout: canvas too small")

// HitWidthMode selects the width of the rectangle a brick is hit-tested with.
type HitWidthMode int

const (
	// HitWidthSlot tests against canvasWidth/columns, which is wider than
	// the drawn brick. This is the classic behavior.
	HitWidthSlot HitWidthMode = iota
	// HitWidthBrick tests against the drawn brick width.
	HitWidthBrick
)

// ParseHitWidth maps a configuration value to a mode. Empty means slot.
func ParseHitWidth(s string) (HitWidthMode, error) {
	switch s {
	case "", config.HitWidthSlot:
		return HitWidthSlot, nil
	case config.HitWidthBrick:
		return HitWidthBrick, nil
	}
	return HitWidthSlot, fmt.Errorf("%w: unknown hit width %q", config.ErrInvalidConfig, s)
}

// Layout is the brick geometry derived from the canvas and configuration.
type Layout struct {
	Columns    int
	Rows       int
	BrickWidth float64 // Drawn width of each brick
	SlotWidth  float64 // canvasWidth / columns
}

// NewLayout computes the brick geometry. The configuration must already be
// valid; the canvas is checked here because only the caller knows its size.
func NewLayout(c Canvas, cfg config.SessionConfig) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return Layout{}, fmt.Errorf("%w: %gx%g", ErrCanvasTooSmall, c.Width, c.Height)
	}

	cols := float64(cfg.Columns)
	l := Layout{
		Columns:    cfg.Columns,
		Rows:       cfg.Rows,
		BrickWidth: (c.Width - (cols+1)*BrickPadding) / cols,
		SlotWidth:  c.Width / cols,
	}

	if l.BrickWidth <= 0 {
		return Layout{}, fmt.Errorf("%w: %d columns need a canvas wider than %g",
			ErrCanvasTooSmall, cfg.Columns, (cols+1)*BrickPadding)
	}
	if PaddleWidth > c.Width {
		return Layout{}, fmt.Errorf("%w: paddle is %g wide, canvas is %g",
			ErrCanvasTooSmall, PaddleWidth, c.Width)
	}
	ballTop := c.Height - BallStartOffset - BallRadius
	if l.BricksBottom() >= ballTop {
		return Layout{}, fmt.Errorf("%w: %d rows reach the ball's start line",
			ErrCanvasTooSmall, cfg.Rows)
	}
	return l, nil
}

// BrickOrigin returns the top-left corner of brick (column, row).
func (l Layout) BrickOrigin(column, row int) core.Vec2 {
	return core.V(
		float64(column)*(l.BrickWidth+BrickPadding)+BrickPadding,
		float64(row)*(BrickHeight+BrickPadding)+BrickOffsetTop,
	)
}

// BricksBottom returns the bottom edge of the lowest brick row.
func (l Layout) BricksBottom() float64 {
	return l.BrickOrigin(0, l.Rows-1).Y + BrickHeight
}

// HitWidth returns the hit-test width for the given mode.
func (l Layout) HitWidth(mode HitWidthMode) float64 {
	if mode == HitWidthBrick {
		return l.BrickWidth
	}
	return l.SlotWidth
}

// Grid builds a fresh grid of active bricks at their layout positions.
func (l Layout) Grid() Grid {
	g := NewGrid(l.Columns, l.Rows)
	for c := range l.Columns {
		for r := range l.Rows {
			o := l.BrickOrigin(c, r)
			g[c][r] = Brick{X: o.X, Y: o.Y, Status: BrickActive}
		}
	}
	return g
}

// NewBall places the ball at the bottom center with a random upward launch.
func NewBall(c Canvas, speed float64, rng *SimpleRNG) Ball {
	theta := MinLaunchAngle + rng.Float64()*LaunchSpread
	return Ball{
		Pos:    core.V(c.Width/2, c.Height-BallStartOffset),
		Vel:    core.V(math.Cos(theta)*speed, -math.Sin(theta)*speed),
		Radius: BallRadius,
	}
}

// NewPaddle centers the paddle horizontally.
func NewPaddle(c Canvas) Paddle {
	return Paddle{
		X:      (c.Width - PaddleWidth) / 2,
		Width:  PaddleWidth,
		Height: PaddleHeight,
	}
}
