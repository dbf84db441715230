package core

// Symbol is an abstract input symbol, decoupled from any particular keyboard
// vocabulary. The terminal shell maps physical keys to symbols; the game maps
// symbols to directions through a fixed table.
type Symbol int

const (
	SymbolNone Symbol = iota
	SymbolUp
	SymbolDown
	SymbolLeft
	SymbolRight
	SymbolQuit
)

// String returns a human-readable name for the symbol.
func (s Symbol) String() string {
	switch s {
	case SymbolNone:
		return "none"
	case SymbolUp:
		return "up"
	case SymbolDown:
		return "down"
	case SymbolLeft:
		return "left"
	case SymbolRight:
		return "right"
	case SymbolQuit:
		return "quit"
	default:
		return "unknown"
	}
}
