// Package core provides fundamental types shared by the game, the loop and
// the terminal shell. It has no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

import "fmt"

// Position is an immutable grid coordinate.
// Two positions are equal iff their rows and columns match, so values can be
// compared with == and used as map keys.
type Position struct {
	Row int
	Col int
}

// Pos creates a position at the given row and column.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// RightBy returns a new position offset horizontally by n columns.
// Negative n moves left.
func (p Position) RightBy(n int) Position {
	return Position{Row: p.Row, Col: p.Col + n}
}

// DownBy returns a new position offset vertically by n rows.
// Negative n moves up.
func (p Position) DownBy(n int) Position {
	return Position{Row: p.Row + n, Col: p.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
