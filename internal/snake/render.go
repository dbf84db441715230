package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Canvas dimensions needed to draw the whole board: the nominal grid spans
// cells 0..GridSize inclusive, surrounded by a one-cell border, with a status
// line underneath.
const (
	CanvasWidth  = GridSize + 3
	CanvasHeight = GridSize + 4
)

// Theme defines the glyph and color of each drawable entity.
type Theme struct {
	Head        rune
	Body        rune
	Apple       rune
	HeadColor   core.Color
	BodyColor   core.Color
	AppleColor  core.Color
	BorderColor core.Color
}

// DefaultTheme returns the stock glyphs and colors.
func DefaultTheme() Theme {
	return Theme{
		Head:        'O',
		Body:        'o',
		Apple:       '*',
		HeadColor:   core.ColorBrightGreen,
		BodyColor:   core.ColorGreen,
		AppleColor:  core.ColorRed,
		BorderColor: core.ColorGray,
	}
}

// cellAt converts a board position to screen coordinates (inside the border).
func cellAt(p core.Position) (x, y int) {
	return p.Col + 1, p.Row + 1
}

// Draw renders the snake: body segments first, head on top.
func (s *Snake) Draw(dst *core.Screen, t Theme) {
	for _, seg := range s.body[1:] {
		x, y := cellAt(seg)
		dst.SetColored(x, y, t.Body, t.BodyColor)
	}
	x, y := cellAt(s.Head())
	dst.SetColored(x, y, t.Head, t.HeadColor)
}

// Draw renders the apple.
func (a Apple) Draw(dst *core.Screen, t Theme) {
	x, y := cellAt(a.Position)
	dst.SetColored(x, y, t.Apple, t.AppleColor)
}

// Render draws the board, the snake, the apple and the status line.
// Cells beyond the screen are clipped by the screen itself.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawBox(core.NewRect(0, 0, CanvasWidth, CanvasHeight-1), g.theme.BorderColor)

	g.snake.Draw(dst, g.theme)
	g.apple.Draw(dst, g.theme)

	status := fmt.Sprintf(" length %d", g.snake.Len())
	dst.DrawText(0, CanvasHeight-1, status, core.ColorDefault)

	if g.GameOver() {
		mid := (CanvasHeight - 1) / 2
		dst.DrawTextCentered(mid, " GAME OVER ", core.ColorBrightRed)
	}
}
