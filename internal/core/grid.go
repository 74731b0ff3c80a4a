package core

import (
	"errors"
	"fmt"
	"iter"
)

// Default board dimensions.
const (
	DefaultGridWidth  = 40
	DefaultGridHeight = 40
)

// ErrInvalidGrid is returned when a grid is constructed with non-positive
// dimensions.
var ErrInvalidGrid = errors.New("core: invalid grid dimensions")

// Coord is a tile position on the board. X grows to the right, Y grows
// downward. Coordinates compare by value.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is the fixed-size rectangular board. It is immutable and safe to share.
type Grid struct {
	width  int
	height int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, width, height)
	}
	return Grid{width: width, height: height}, nil
}

// DefaultGrid returns the standard 40×40 board.
func DefaultGrid() Grid {
	return Grid{width: DefaultGridWidth, height: DefaultGridHeight}
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// Size returns the number of addressable cells.
func (g Grid) Size() int {
	return g.width * g.height
}

// InBounds reports whether c addresses a cell of the grid.
func (g Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Cells yields every coordinate of the grid in row-major order.
// The sequence can be ranged over any number of times.
func (g Grid) Cells() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for y := range g.height {
			for x := range g.width {
				if !yield(Coord{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
