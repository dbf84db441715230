package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Up:    binding(keys.Up, "up"),
		Down:  binding(keys.Down, "down"),
		Left:  binding(keys.Left, "left"),
		Right: binding(keys.Right, "right"),
		Quit:  binding(keys.Quit, "quit"),
	}
}

// DefaultKeyMap returns the bindings of the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// Symbol translates a key message into an input symbol.
// Keys without a binding map to core.SymbolNone.
func (k KeyMap) Symbol(msg tea.KeyMsg) core.Symbol {
	switch {
	case key.Matches(msg, k.Quit):
		return core.SymbolQuit
	case key.Matches(msg, k.Up):
		return core.SymbolUp
	case key.Matches(msg, k.Down):
		return core.SymbolDown
	case key.Matches(msg, k.Left):
		return core.SymbolLeft
	case key.Matches(msg, k.Right):
		return core.SymbolRight
	}
	return core.SymbolNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}
