package snake

import (
	"slices"
	"sync"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// farApple is a position the tests below never reach.
var farApple = Apple{Position: core.Pos(15, 15)}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithSeed(1)
	g.apple = farApple
	return g
}

func TestNewGame(t *testing.T) {
	g := NewWithSeed(7)

	if g.Direction() != DirRight || g.PendingDirection() != DirRight {
		t.Errorf("directions = %v/%v, expected right/right", g.Direction(), g.PendingDirection())
	}
	if g.Snake().Head() != Origin {
		t.Errorf("snake head = %v, expected origin", g.Snake().Head())
	}
	if g.Snake().Len() != 1 || g.Snake().PendingGrowth() != InitialLength-1 {
		t.Errorf("len=%d growth=%d, expected 1 and %d", g.Snake().Len(), g.Snake().PendingGrowth(), InitialLength-1)
	}
	if g.GameOver() {
		t.Error("new game should not be over")
	}

	p := g.Apple().Position
	if p.Row < 0 || p.Row > GridSize || p.Col < 0 || p.Col > GridSize {
		t.Errorf("apple out of spawn range: %v", p)
	}
}

func TestFourTicksRightward(t *testing.T) {
	g := newTestGame(t)

	for range 4 {
		g.OnGameTick()
	}

	s := g.Snake()
	if s.Len() != 5 {
		t.Errorf("Len() = %d, expected 5", s.Len())
	}
	if s.Head() != Origin.RightBy(4) {
		t.Errorf("Head() = %v, expected %v", s.Head(), Origin.RightBy(4))
	}
	expectedTail := []core.Position{core.Pos(0, 3), core.Pos(0, 2), core.Pos(0, 1), core.Pos(0, 0)}
	if !slices.Equal(s.Tail(), expectedTail) {
		t.Errorf("Tail() = %v, expected %v", s.Tail(), expectedTail)
	}
	if g.GameOver() {
		t.Error("game should not be over")
	}
	if g.Ticks() != 4 {
		t.Errorf("Ticks() = %d, expected 4", g.Ticks())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(t)

	g.OnKeyPress(core.SymbolLeft)
	if g.PendingDirection() != DirRight {
		t.Fatalf("reverse press changed pending direction to %v", g.PendingDirection())
	}

	g.OnGameTick()
	if g.Snake().Head() != core.Pos(0, 1) {
		t.Errorf("snake should keep moving right, head = %v", g.Snake().Head())
	}

	// Turn down, then try to reverse up against the new committed direction
	g.OnKeyPress(core.SymbolDown)
	g.OnGameTick()
	g.OnKeyPress(core.SymbolUp)
	if g.PendingDirection() != DirDown {
		t.Errorf("PendingDirection() = %v, expected down", g.PendingDirection())
	}
}

func TestLastPressWins(t *testing.T) {
	g := newTestGame(t)

	g.OnKeyPress(core.SymbolUp)
	g.OnKeyPress(core.SymbolDown)
	if g.PendingDirection() != DirDown {
		t.Errorf("PendingDirection() = %v, expected down", g.PendingDirection())
	}

	// A rejected press does not erase an accepted one
	g.OnKeyPress(core.SymbolLeft)
	if g.PendingDirection() != DirDown {
		t.Errorf("PendingDirection() = %v, expected down", g.PendingDirection())
	}

	g.OnGameTick()
	if g.Direction() != DirDown || g.Snake().Head() != core.Pos(1, 0) {
		t.Errorf("direction=%v head=%v, expected down (1,0)", g.Direction(), g.Snake().Head())
	}
}

func TestUnknownSymbolsIgnored(t *testing.T) {
	g := newTestGame(t)
	g.OnKeyPress(core.SymbolDown)

	for _, sym := range []core.Symbol{core.SymbolNone, core.SymbolQuit, core.Symbol(99)} {
		g.OnKeyPress(sym)
		if g.PendingDirection() != DirDown {
			t.Errorf("symbol %v changed pending direction to %v", sym, g.PendingDirection())
		}
	}
}

func TestAppleConsumption(t *testing.T) {
	g := newTestGame(t)
	control := newTestGame(t)

	g.apple = Apple{Position: core.Pos(0, 1)}

	g.OnGameTick()
	control.OnGameTick()

	// Move consumed one spurt (4 -> 3), eating added one back
	if g.Snake().PendingGrowth() != control.Snake().PendingGrowth()+1 {
		t.Errorf("PendingGrowth() = %d, expected %d", g.Snake().PendingGrowth(), control.Snake().PendingGrowth()+1)
	}
	if g.ApplesEaten() != 1 {
		t.Errorf("ApplesEaten() = %d, expected 1", g.ApplesEaten())
	}

	// Keep the new apple out of the way and let all growth play out
	g.apple = farApple
	for range 5 {
		g.OnGameTick()
		control.OnGameTick()
	}

	if g.Snake().Len() != control.Snake().Len()+1 {
		t.Errorf("Len() = %d, expected %d", g.Snake().Len(), control.Snake().Len()+1)
	}
	if g.Snake().Len() != InitialLength+1 {
		t.Errorf("Len() = %d, expected %d", g.Snake().Len(), InitialLength+1)
	}
}

func TestAppleReplacedFromFactory(t *testing.T) {
	g := NewWithSeed(99)
	expected := NewSeededAppleFactory(99)
	expected.Spawn() // the apple placed at construction

	g.apple = Apple{Position: core.Pos(0, 1)}
	g.OnGameTick()

	if g.Apple() != expected.Spawn() {
		t.Errorf("Apple() = %v, expected next apple from the factory", g.Apple())
	}
}

func TestLengthNeverShrinks(t *testing.T) {
	g := NewWithSeed(2024)
	path := []core.Symbol{
		core.SymbolDown, core.SymbolDown, core.SymbolRight, core.SymbolRight,
		core.SymbolDown, core.SymbolRight, core.SymbolDown, core.SymbolDown,
	}

	prev := g.Snake().Len()
	for i := range 60 {
		g.OnKeyPress(path[i%len(path)])
		g.OnGameTick()
		if g.GameOver() {
			break
		}
		l := g.Snake().Len()
		if l < prev {
			t.Fatalf("tick %d: length shrank from %d to %d", i, prev, l)
		}
		prev = l
	}

	// Every spurt is either still pending or already turned into a segment
	if got := g.Snake().Len() + g.Snake().PendingGrowth(); got != InitialLength+g.ApplesEaten() {
		t.Errorf("len+growth = %d, expected %d", got, InitialLength+g.ApplesEaten())
	}
}

func TestMoveIntoSecondSegmentEndsGame(t *testing.T) {
	g := newTestGame(t)
	for range 4 {
		g.OnGameTick()
	}

	before := g.Snake().Body()
	g.Snake().Move(DirLeft)

	if !g.GameOver() {
		t.Fatal("GameOver() should be true after moving into the second segment")
	}
	if !slices.Equal(g.Snake().Body(), before) {
		t.Errorf("body changed: %v -> %v", before, g.Snake().Body())
	}
}

func TestSelfCollisionThroughInput(t *testing.T) {
	g := newTestGame(t)
	for range 4 {
		g.OnGameTick()
	}

	for _, sym := range []core.Symbol{core.SymbolDown, core.SymbolLeft, core.SymbolUp} {
		g.OnKeyPress(sym)
		g.OnGameTick()
	}

	if !g.GameOver() {
		t.Fatal("expected game over after looping into the body")
	}

	ticks := g.Ticks()
	snap := g.Snapshot()
	g.OnKeyPress(core.SymbolRight)
	g.OnGameTick()
	if g.Ticks() != ticks || g.Snake().Head() != snap.Head {
		t.Error("OnGameTick should be a no-op after game over")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := NewWithSeed(12345)
	g2 := NewWithSeed(12345)

	for i := range 100 {
		var sym core.Symbol
		switch i % 20 {
		case 5:
			sym = core.SymbolDown
		case 12:
			sym = core.SymbolRight
		}
		g1.OnKeyPress(sym)
		g2.OnKeyPress(sym)
		g1.OnGameTick()
		g2.OnGameTick()
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestConcurrentKeyPressNeverReverses(t *testing.T) {
	g := NewWithSeed(5)
	g.snake = NewSnake(core.Pos(GridSize*50, GridSize*50), 1)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		syms := []core.Symbol{core.SymbolUp, core.SymbolLeft, core.SymbolDown, core.SymbolRight}
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
				g.OnKeyPress(syms[i%len(syms)])
			}
		}
	}()

	prev := g.Direction()
	for range 2000 {
		g.OnGameTick()
		cur := g.Direction()
		if cur == prev.Opposite() {
			close(stop)
			wg.Wait()
			t.Fatalf("committed direction reversed from %v to %v", prev, cur)
		}
		prev = cur
	}

	close(stop)
	wg.Wait()
}

func TestDirectionTable(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, opp := range pairs {
		if d.Opposite() != opp {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), opp)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("opposite of opposite of %v is not itself", d)
		}
		if back := opp.Step(d.Step(core.Pos(5, 5))); back != core.Pos(5, 5) {
			t.Errorf("stepping %v then %v ended at %v", d, opp, back)
		}
	}

	for sym, d := range map[core.Symbol]Direction{
		core.SymbolUp:    DirUp,
		core.SymbolDown:  DirDown,
		core.SymbolLeft:  DirLeft,
		core.SymbolRight: DirRight,
	} {
		if got, ok := DirectionFor(sym); !ok || got != d {
			t.Errorf("DirectionFor(%v) = %v, %v", sym, got, ok)
		}
	}
	if _, ok := DirectionFor(core.SymbolQuit); ok {
		t.Error("quit should not map to a direction")
	}
}
