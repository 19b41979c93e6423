package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors: orange ball, blue paddle, blue bricks.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
)
