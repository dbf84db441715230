package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick          uint64
	Length        int
	Head          core.Position
	Dir           Direction
	Pending       Direction
	Apple         core.Position
	PendingGrowth int
	ApplesEaten   int
	GameOver      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	committed, pending := g.dirs.load()
	return Snapshot{
		Tick:          g.tick,
		Length:        g.snake.Len(),
		Head:          g.snake.Head(),
		Dir:           committed,
		Pending:       pending,
		Apple:         g.apple.Position,
		PendingGrowth: g.snake.PendingGrowth(),
		ApplesEaten:   g.eaten,
		GameOver:      g.GameOver(),
	}
}
