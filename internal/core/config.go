package core

// Canvas units per terminal cell. Terminal cells are roughly twice as tall
// as they are wide, so one cell covers an 8x16 patch of the canvas.
const (
	CellUnitsX = 8
	CellUnitsY = 16
)

// HUDRows is the number of screen rows reserved above the canvas.
const HUDRows = 1

// RuntimeConfig contains configuration passed to a session at start.
// The canvas dimensions are derived from the screen size and stay fixed
// until the next reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for the ball launch angle
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// CanvasSize returns the canvas dimensions covered by the screen below
// the HUD.
func (c RuntimeConfig) CanvasSize() (w, h float64) {
	rows := c.ScreenH - HUDRows
	if rows < 0 {
		rows = 0
	}
	return float64(c.ScreenW * CellUnitsX), float64(rows * CellUnitsY)
}

// CellOf maps a canvas point to a screen cell, accounting for the HUD.
func CellOf(p Vec2) (x, y int) {
	return int(p.X / CellUnitsX), int(p.Y/CellUnitsY) + HUDRows
}
