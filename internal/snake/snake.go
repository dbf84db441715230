// Package snake implements the snake game state: the snake's movement and
// growth model, collision detection, apple placement and the buffered
// direction input that prevents illegal reversals.
//
// Game logic is pure; rendering draws into a core.Screen and never touches
// the terminal.
package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is an ordered body of positions, head first.
//
// The body is never empty, segments are always distinct, and once dead the
// snake stays dead: Move and Grow become no-ops.
type Snake struct {
	body   []core.Position
	growth int // Pending growth spurts, consumed one per successful move
	dead   bool
}

// NewSnake creates a snake of a single segment at spawn that will grow to
// initialSize over its first moves.
func NewSnake(spawn core.Position, initialSize int) *Snake {
	return &Snake{
		body:   []core.Position{spawn},
		growth: max(0, initialSize-1),
	}
}

// Head returns the first body segment.
func (s *Snake) Head() core.Position {
	return s.body[0]
}

// Dead reports whether the snake has collided.
func (s *Snake) Dead() bool {
	return s.dead
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// PendingGrowth returns the number of growth spurts not yet consumed.
func (s *Snake) PendingGrowth() int {
	return s.growth
}

// Body returns a copy of all segments, head first.
func (s *Snake) Body() []core.Position {
	return slices.Clone(s.body)
}

// Tail returns a copy of the non-head segments.
func (s *Snake) Tail() []core.Position {
	return slices.Clone(s.body[1:])
}

// Contains reports whether any segment occupies p.
func (s *Snake) Contains(p core.Position) bool {
	return slices.Contains(s.body, p)
}

// Move advances the head one cell in direction d.
//
// Moving into any current segment or to a negative row/column kills the
// snake and leaves the body as it was. Otherwise the new head is prepended
// and the tail is dropped unless a growth spurt is pending.
func (s *Snake) Move(d Direction) {
	if s.dead {
		return
	}

	newHead := d.Step(s.Head())
	if s.Contains(newHead) || !positionIsValid(newHead) {
		s.dead = true
		return
	}

	s.body = slices.Insert(s.body, 0, newHead)

	if s.growth > 0 {
		s.growth--
	} else {
		s.body = s.body[:len(s.body)-1]
	}
}

// Grow schedules one extra segment for a future move.
func (s *Snake) Grow() {
	if s.dead {
		return
	}
	s.growth++
}

// positionIsValid only enforces the lower bound. There is no upper bound:
// the snake may leave the drawn board to the right or bottom.
func positionIsValid(p core.Position) bool {
	return p.Row >= 0 && p.Col >= 0
}
