// Package loop drives a game with two concurrent activities: a fixed-cadence
// tick loop that advances and renders the game, and an input poller that
// forwards key symbols between ticks.
package loop

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ErrQuit is returned by Run when the input source delivered a quit symbol.
var ErrQuit = errors.New("loop: quit requested")

// InputSource delivers input symbols without blocking.
// Poll returns false when no symbol is available.
type InputSource interface {
	Poll() (core.Symbol, bool)
}

// Drawable is anything that can draw itself into a screen buffer.
type Drawable interface {
	Render(dst *core.Screen)
}

// Renderer presents a drawable. It is called from the tick goroutine.
type Renderer interface {
	Render(d Drawable)
}

// Game is the state the runner advances.
type Game interface {
	Drawable
	OnKeyPress(sym core.Symbol)
	OnGameTick()
	GameOver() bool
	Snapshot() snake.Snapshot
}

// Runner owns the timing of a single game session.
type Runner struct {
	game   Game
	tick   time.Duration
	poll   time.Duration
	logger *log.Logger
}

// NewRunner creates a runner for game using the intervals from cfg.
// A nil logger discards log output.
func NewRunner(game Game, cfg core.RuntimeConfig, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		game:   game,
		tick:   cfg.TickInterval,
		poll:   cfg.PollInterval,
		logger: logger,
	}
}

// Run plays the game until it is over, the input source asks to quit, or
// ctx is cancelled.
//
// When the game ends the tick loop stops the input poller and waits for it
// before Run returns nil. A quit symbol yields ErrQuit; cancellation yields
// ctx's error.
func (r *Runner) Run(ctx context.Context, in InputSource, out Renderer) error {
	eg, ctx := errgroup.WithContext(ctx)
	inputCtx, stopInput := context.WithCancel(ctx)

	eg.Go(func() error {
		return r.pollInput(inputCtx, in)
	})
	eg.Go(func() error {
		defer stopInput()
		return r.tickLoop(ctx, out)
	})

	return eg.Wait()
}

// pollInput drains every available symbol once per poll interval.
func (r *Runner) pollInput(ctx context.Context, in InputSource) error {
	ticker := time.NewTicker(r.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		for {
			sym, ok := in.Poll()
			if !ok {
				break
			}
			if sym == core.SymbolQuit {
				r.logger.Debug("quit requested")
				return ErrQuit
			}
			r.game.OnKeyPress(sym)
		}
	}
}

// tickLoop advances and renders the game until it is over.
func (r *Runner) tickLoop(ctx context.Context, out Renderer) error {
	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	start := r.game.Snapshot()
	r.logger.Info("game started", "tick", r.tick, "apple", start.Apple)

	for {
		eaten := r.game.Snapshot().ApplesEaten
		r.game.OnGameTick()
		out.Render(r.game)

		snap := r.game.Snapshot()
		if snap.ApplesEaten > eaten {
			r.logger.Debug("apple eaten", "tick", snap.Tick, "head", snap.Head, "next", snap.Apple)
		}
		if snap.GameOver {
			r.logger.Info("game over", "ticks", snap.Tick, "length", snap.Length, "apples", snap.ApplesEaten)
			return nil
		}

		select {
		case <-ctx.Done():
			r.logger.Info("game interrupted", "ticks", snap.Tick, "length", snap.Length)
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
