// snake is a terminal snake game.
//
// Usage:
//
//	snake                - Play in the current terminal
//	snake serve          - Start SSH server for remote play
//	snake keys           - Show the key bindings
//	snake config         - Print the default configuration
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible apples (0 = time based)
//	--config <path>    - Use a custom config YAML
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - play snake in your terminal",
	Long: `Snake is a terminal snake game on a 21x21 board.

Steer the snake onto apples to grow. The game ends when the snake runs
into itself or leaves the board across the top or left edge.

Controls:
  W/Up      - Up
  S/Down    - Down
  A/Left    - Left
  D/Right   - Right
  Q/Esc     - Quit

Examples:
  snake
  snake --seed 42
  snake --config ./my-snake.yaml --log-file snake.log --debug
  snake serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded when empty)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("snake needs an interactive terminal")
	}
	if w, h, err := term.GetSize(fd); err == nil && (w < snake.CanvasWidth || h < snake.CanvasHeight+1) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n",
			w, h, snake.CanvasWidth, snake.CanvasHeight+1)
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("config loaded", "source", source)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	err = tui.Run(ctx, tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
