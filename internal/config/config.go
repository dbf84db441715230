// Package config provides YAML-based configuration loading for the snake
// game: tick timing, glyphs and colors, and key bindings.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Config contains all user-tunable settings.
type Config struct {
	Timing TimingConfig `yaml:"timing"`
	Theme  ThemeConfig  `yaml:"theme"`
	Keys   KeysConfig   `yaml:"keys"`
}

// TimingConfig defines the loop cadence.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	InputPoll    time.Duration `yaml:"input_poll"`
}

// ThemeConfig defines glyphs and color names for each entity.
type ThemeConfig struct {
	Head        string `yaml:"head"`
	Body        string `yaml:"body"`
	Apple       string `yaml:"apple"`
	HeadColor   string `yaml:"head_color"`
	BodyColor   string `yaml:"body_color"`
	AppleColor  string `yaml:"apple_color"`
	BorderColor string `yaml:"border_color"`
}

// KeysConfig lists the key names (as reported by Bubble Tea, e.g. "up",
// "ctrl+c") bound to each input symbol.
type KeysConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Quit  []string `yaml:"quit"`
}

// Bindings returns the key lists in a fixed symbol order.
func (k KeysConfig) Bindings() []Binding {
	return []Binding{
		{Symbol: core.SymbolUp, Keys: k.Up},
		{Symbol: core.SymbolDown, Keys: k.Down},
		{Symbol: core.SymbolLeft, Keys: k.Left},
		{Symbol: core.SymbolRight, Keys: k.Right},
		{Symbol: core.SymbolQuit, Keys: k.Quit},
	}
}

// Binding associates an input symbol with the keys that produce it.
type Binding struct {
	Symbol core.Symbol
	Keys   []string
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_interval must be positive, got %s", c.Timing.TickInterval))
	}
	if c.Timing.InputPoll <= 0 {
		errs = append(errs, fmt.Errorf("timing.input_poll must be positive, got %s", c.Timing.InputPoll))
	}

	if _, err := c.Theme.Resolve(); err != nil {
		errs = append(errs, err)
	}

	owner := make(map[string]core.Symbol)
	for _, b := range c.Keys.Bindings() {
		if len(b.Keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s: at least one key is required", b.Symbol))
			continue
		}
		for _, k := range b.Keys {
			if prev, dup := owner[k]; dup {
				errs = append(errs, fmt.Errorf("keys: %q bound to both %s and %s", k, prev, b.Symbol))
				continue
			}
			owner[k] = b.Symbol
		}
	}

	return errors.Join(errs...)
}

// Resolve converts the theme into the game's glyphs and colors.
func (t ThemeConfig) Resolve() (snake.Theme, error) {
	var errs []error

	glyph := func(field, s string) rune {
		if utf8.RuneCountInString(s) != 1 {
			errs = append(errs, fmt.Errorf("theme.%s must be exactly one character, got %q", field, s))
			return ' '
		}
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}
	color := func(field, s string) core.Color {
		c, err := core.ParseColor(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme.%s: %w", field, err))
		}
		return c
	}

	theme := snake.Theme{
		Head:        glyph("head", t.Head),
		Body:        glyph("body", t.Body),
		Apple:       glyph("apple", t.Apple),
		HeadColor:   color("head_color", t.HeadColor),
		BodyColor:   color("body_color", t.BodyColor),
		AppleColor:  color("apple_color", t.AppleColor),
		BorderColor: color("border_color", t.BorderColor),
	}

	return theme, errors.Join(errs...)
}

// Runtime builds the per-session runtime settings from the timing section.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickInterval = c.Timing.TickInterval
	rc.PollInterval = c.Timing.InputPoll
	rc.Seed = seed
	return rc
}
