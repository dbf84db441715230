package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Starting conditions.
const (
	InitialLength    = 5
	DefaultDirection = DirRight
)

// Origin is where the snake spawns.
var Origin = core.Pos(0, 0)

// Game owns the snake and the apple, buffers direction input between ticks
// and advances the state one tick at a time.
//
// OnKeyPress may be called from a different goroutine than OnGameTick. All
// other methods belong to the goroutine that calls OnGameTick.
type Game struct {
	dirs   directionSlot
	snake  *Snake
	apple  Apple
	apples *AppleFactory
	theme  Theme

	tick  uint64
	eaten int
}

// New creates a game whose apples come from the given factory.
func New(apples *AppleFactory) *Game {
	g := &Game{
		snake:  NewSnake(Origin, InitialLength),
		apples: apples,
		theme:  DefaultTheme(),
	}
	g.apple = apples.Spawn()
	g.dirs.reset(DefaultDirection)
	return g
}

// NewWithSeed creates a game with a deterministic apple sequence.
func NewWithSeed(seed int64) *Game {
	return New(NewSeededAppleFactory(seed))
}

// SetTheme changes the glyphs and colors used by Render.
func (g *Game) SetTheme(t Theme) {
	g.theme = t
}

// OnKeyPress buffers the direction bound to sym for the next tick.
//
// Symbols that are not movement keys are ignored, as is a direction that
// would reverse the committed one. Of several presses between two ticks only
// the last accepted one survives.
func (g *Game) OnKeyPress(sym core.Symbol) {
	d, ok := DirectionFor(sym)
	if !ok {
		return
	}
	g.dirs.request(d)
}

// OnGameTick commits the pending direction, moves the snake and handles
// apple consumption. It does nothing once the game is over.
func (g *Game) OnGameTick() {
	if g.GameOver() {
		return
	}

	g.tick++
	g.snake.Move(g.dirs.commit())

	if g.snake.Head() == g.apple.Position {
		g.snake.Grow()
		g.apple = g.apples.Spawn()
		g.eaten++
	}
}

// GameOver reports whether the snake is dead.
func (g *Game) GameOver() bool {
	return g.snake.Dead()
}

// Direction returns the direction applied on the most recent tick.
func (g *Game) Direction() Direction {
	committed, _ := g.dirs.load()
	return committed
}

// PendingDirection returns the direction the next tick will apply.
func (g *Game) PendingDirection() Direction {
	_, pending := g.dirs.load()
	return pending
}

// Snake returns the owned snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Apple returns the current apple.
func (g *Game) Apple() Apple {
	return g.apple
}

// Ticks returns the number of ticks applied so far.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// ApplesEaten returns how many apples the snake has consumed.
func (g *Game) ApplesEaten() int {
	return g.eaten
}
