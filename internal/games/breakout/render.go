package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '█'
)

// BrickColors cycles through rows from the top.
var BrickColors = []core.Color{
	core.ColorBrightBlue,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorYellow,
}

// Overlay text shown when a session ends.
const (
	LostTitle   = "GAME OVER"
	WonTitle    = "YOU WON!"
	RestartHint = "Press 'R' to restart or 'C' to open settings"
)

// Render draws a snapshot to the screen. The canvas is scaled down to
// terminal cells; the top row holds the score line.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	renderBricks(dst, snap)
	renderPaddle(dst, snap)
	renderBall(dst, snap)
	renderHUD(dst, snap)
	renderOverlay(dst, snap)
}

// RenderError replaces the playfield with a short explanation of why the
// session could not start.
func RenderError(dst *core.Screen, err error) {
	dst.Clear()
	mid := dst.Height() / 2
	if errors.Is(err, ErrCanvasTooSmall) {
		drawCentered(dst, mid-1, "Window too small", core.ColorRed)
		dst.DrawTextCentered(mid+1, "Enlarge the terminal or press 'C' to change settings")
		return
	}
	drawCentered(dst, mid-1, "Cannot start game", core.ColorRed)
	dst.DrawTextCentered(mid+1, err.Error())
}

// renderHUD draws the score line right-aligned on the top row.
func renderHUD(dst *core.Screen, snap Snapshot) {
	text := fmt.Sprintf("Score: %d | High Score: %d", snap.Score, snap.HighScore)
	dst.DrawTextRight(0, 1, text, core.ColorWhite)
}

// renderBricks draws each active brick on the row holding its center.
func renderBricks(dst *core.Screen, snap Snapshot) {
	for _, col := range snap.Bricks {
		for r, brick := range col {
			if !brick.Active() {
				continue
			}
			x0, y := core.CellOf(core.V(brick.X, brick.Y+BrickHeight/2))
			x1, _ := core.CellOf(core.V(brick.X+snap.BrickWidth, brick.Y))
			color := BrickColors[r%len(BrickColors)]
			for x := x0; x < core.Max(x1, x0+1); x++ {
				dst.SetColored(x, y, BrickChar, color)
			}
		}
	}
}

// renderPaddle draws the paddle on the row holding its center.
func renderPaddle(dst *core.Screen, snap Snapshot) {
	box := snap.Paddle.Box(snap.Canvas)
	x0, y := core.CellOf(core.V(box.X, box.Y+box.H/2))
	x1, _ := core.CellOf(core.V(box.Right(), box.Y))
	y = core.Min(y, dst.Height()-1)
	for x := x0; x < core.Max(x1, x0+1); x++ {
		dst.SetColored(x, y, PaddleChar, core.ColorBlue)
	}
}

// renderBall draws the ball, clamped to the visible area.
func renderBall(dst *core.Screen, snap Snapshot) {
	x, y := core.CellOf(snap.Ball.Pos)
	x = core.Clamp(x, 0, dst.Width()-1)
	y = core.Clamp(y, core.HUDRows, dst.Height()-1)
	dst.SetColored(x, y, BallChar, core.ColorOrange)
}

// renderOverlay draws the end-of-session message.
func renderOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.Phase {
	case PhaseLost:
		drawCenteredBox(dst, LostTitle, RestartHint, core.ColorRed)
	case PhaseWon:
		drawCenteredBox(dst, WonTitle, RestartHint, core.ColorBrightWhite)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string, titleColor core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, titleColor)
	dst.DrawTextColored(core.Max(boxX+(boxW-len(subtitle))/2, 0), boxY+3, subtitle, core.ColorGray)
}

// drawCentered draws colored text centered on row y.
func drawCentered(dst *core.Screen, y int, text string, c core.Color) {
	dst.DrawTextColored((dst.Width()-len(text))/2, y, text, c)
}
