package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMapSymbols(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Symbol
	}{
		{"w", runeKey('w'), core.SymbolUp},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.SymbolUp},
		{"s", runeKey('s'), core.SymbolDown},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.SymbolDown},
		{"a", runeKey('a'), core.SymbolLeft},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.SymbolLeft},
		{"d", runeKey('d'), core.SymbolRight},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.SymbolRight},
		{"q", runeKey('q'), core.SymbolQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.SymbolQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.SymbolQuit},
		{"unbound rune", runeKey('x'), core.SymbolNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.SymbolNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Symbol(tc.msg); got != tc.expected {
				t.Errorf("Symbol(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestCustomKeyMap(t *testing.T) {
	keys := config.Default().Keys
	keys.Up = []string{"k"}
	keys.Down = []string{"j"}
	km := NewKeyMap(keys)

	if got := km.Symbol(runeKey('k')); got != core.SymbolUp {
		t.Errorf("k = %v, expected up", got)
	}
	if got := km.Symbol(runeKey('j')); got != core.SymbolDown {
		t.Errorf("j = %v, expected down", got)
	}
	if got := km.Symbol(runeKey('w')); got != core.SymbolNone {
		t.Errorf("w should be unbound, got %v", got)
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	if got := km.Up.Help().Key; got != "w/up" {
		t.Errorf("up help key = %q, expected %q", got, "w/up")
	}
	if got := km.Quit.Help().Desc; got != "quit" {
		t.Errorf("quit help desc = %q", got)
	}
	if len(km.ShortHelp()) != 5 {
		t.Errorf("ShortHelp() has %d bindings, expected 5", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 2 {
		t.Errorf("FullHelp() has %d columns, expected 2", len(km.FullHelp()))
	}
}
