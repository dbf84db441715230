package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// GridSize is the nominal number of rows and columns of the board.
const GridSize = 20

// Apple is a single food item. Apples are never moved; eating one replaces
// it with a freshly spawned value.
type Apple struct {
	Position core.Position
}

// AppleFactory places apples using an injected random source, so placement
// is reproducible for a given seed.
type AppleFactory struct {
	rng  *rand.Rand
	rows int
	cols int
}

// NewAppleFactory creates a factory drawing from rng.
func NewAppleFactory(rng *rand.Rand) *AppleFactory {
	return &AppleFactory{
		rng:  rng,
		rows: GridSize,
		cols: GridSize,
	}
}

// NewSeededAppleFactory creates a factory with its own generator seeded
// with seed.
func NewSeededAppleFactory(seed int64) *AppleFactory {
	return NewAppleFactory(rand.New(rand.NewSource(seed)))
}

// Spawn returns a new apple with row and column drawn independently and
// uniformly from [0, GridSize]. The range is inclusive, and the snake body
// is not consulted, so an apple may land under the snake.
func (f *AppleFactory) Spawn() Apple {
	row := f.rng.Intn(f.rows + 1)
	col := f.rng.Intn(f.cols + 1)
	return Apple{Position: core.Pos(row, col)}
}
