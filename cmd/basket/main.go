// basket is Basket Fighter: steer a basket along the bottom of the screen
// and catch the falling fruit.
//
// Usage:
//
//	basket play              - Play in the terminal
//	basket window            - Play in a desktop window
//	basket sim               - Run a headless simulation and print a summary
//	basket config            - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible gameplay (0 = time-based)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/basket-fighter/internal/config"
	"github.com/vovakirdan/basket-fighter/internal/game"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "basket",
	Short: "Basket Fighter - catch the falling fruit",
	Long: `Basket Fighter is an endless arcade game: move the basket left and
right to catch fruit before it falls off the screen.

  apple   slow                      1 point
  banana  fast                      2 points
  cherry  fast, drifts sideways     2 points
  pear    slow, sways side to side  3 points

Examples:
  basket play
  basket window --assets ./sprites
  basket sim --ticks 5000 --seed 42
  basket config > basket.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the session logger. Output goes to --log-file when set,
// otherwise to fallback. The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closer := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "basket",
		Level:           level,
	})
	return logger, closer, nil
}

// loadGame resolves the configuration and creates a game from it.
func loadGame(logger *log.Logger) (*game.Game, config.BasketConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, cfg, err
	}
	logger.Info("config loaded", "source", source)
	return game.New(cfg), cfg, nil
}
