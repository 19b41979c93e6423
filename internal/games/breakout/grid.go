// Package breakout implements a single-screen brick breaker: a ball bounces
// around a canvas, a keyboard-driven paddle deflects it, and a grid of
// bricks is cleared on contact.
package breakout

// BrickStatus tells whether a brick is still in play.
type BrickStatus int

const (
	BrickActive BrickStatus = iota
	BrickCleared
)

// Brick is one cell of the grid. X and Y are the top-left corner in canvas
// units, fixed when the layout is computed.
type Brick struct {
	X, Y   float64
	Status BrickStatus
}

// Active reports whether the brick can still be hit.
func (b Brick) Active() bool {
	return b.Status == BrickActive
}

// Grid holds the bricks indexed as [column][row].
type Grid [][]Brick

// NewGrid allocates a columns x rows grid of active bricks at the origin.
func NewGrid(columns, rows int) Grid {
	g := make(Grid, columns)
	for c := range g {
		g[c] = make([]Brick, rows)
	}
	return g
}

// Columns returns the number of brick columns.
func (g Grid) Columns() int {
	return len(g)
}

// Rows returns the number of brick rows.
func (g Grid) Rows() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone creates a deep copy of the grid.
func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for c, col := range g {
		clone[c] = make([]Brick, len(col))
		copy(clone[c], col)
	}
	return clone
}

// CountActive returns the number of bricks still in play.
func (g Grid) CountActive() int {
	count := 0
	for _, col := range g {
		for _, b := range col {
			if b.Active() {
				count++
			}
		}
	}
	return count
}
