package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction uint8

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// opposites is the fixed reversal table: up<->down, left<->right.
var opposites = [...]Direction{
	DirRight: DirLeft,
	DirDown:  DirUp,
	DirLeft:  DirRight,
	DirUp:    DirDown,
}

// symbolDirections maps abstract input symbols to directions.
// Symbols not listed here are not movement keys.
var symbolDirections = map[core.Symbol]Direction{
	core.SymbolUp:    DirUp,
	core.SymbolDown:  DirDown,
	core.SymbolLeft:  DirLeft,
	core.SymbolRight: DirRight,
}

// DirectionFor returns the direction bound to an input symbol.
func DirectionFor(sym core.Symbol) (Direction, bool) {
	d, ok := symbolDirections[sym]
	return d, ok
}

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d <= DirUp
}

// Opposite returns the direction that would reverse d.
// Panics on an invalid direction.
func (d Direction) Opposite() Direction {
	mustBeValid(d)
	return opposites[d]
}

// Step returns p moved one cell in direction d.
// Panics on an invalid direction.
func (d Direction) Step(p core.Position) core.Position {
	switch d {
	case DirUp:
		return p.DownBy(-1)
	case DirDown:
		return p.DownBy(1)
	case DirLeft:
		return p.RightBy(-1)
	case DirRight:
		return p.RightBy(1)
	}
	mustBeValid(d)
	return p
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// mustBeValid panics on a direction outside the enumerated set. Directions
// only come from symbolDirections, so this is a programming error.
func mustBeValid(d Direction) {
	if !d.Valid() {
		panic(fmt.Sprintf("snake: invalid direction %d", d))
	}
}
