package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings",
	Long:  `Shows the key bindings of the effective configuration (see --config).`,
	RunE:  runKeys,
}

func runKeys(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	fmt.Printf("Key bindings (%s):\n", source)
	fmt.Println()

	bindings := cfg.Keys.Bindings()

	// Calculate column width
	maxLen := len("Action")
	for _, b := range bindings {
		maxLen = max(maxLen, len(b.Symbol.String()))
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Action", "Keys")
	fmt.Printf("  %-*s  %s\n", maxLen, "------", "----")
	for _, b := range bindings {
		fmt.Printf("  %-*s  %s\n", maxLen, b.Symbol, strings.Join(b.Keys, ", "))
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.snake/config.yaml or ./configs/snake.yaml and edit it to customize.

Examples:
  snake config > ~/.snake/config.yaml`,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
