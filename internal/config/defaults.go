package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the hardcoded default configuration. It matches the
// embedded YAML and is used if that fails to decode.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			TickInterval: 100 * time.Millisecond,
			InputPoll:    10 * time.Millisecond,
		},
		Theme: ThemeConfig{
			Head:        "O",
			Body:        "o",
			Apple:       "*",
			HeadColor:   "bright_green",
			BodyColor:   "green",
			AppleColor:  "red",
			BorderColor: "gray",
		},
		Keys: KeysConfig{
			Up:    []string{"w", "up"},
			Down:  []string{"s", "down"},
			Left:  []string{"a", "left"},
			Right: []string{"d", "right"},
			Quit:  []string{"q", "ctrl+c", "esc"},
		},
	}
}
