package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/basket-fighter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The canvas is scaled to fit the
terminal window.

Controls:
  A/Left    - Move left
  D/Right   - Move right
  Ctrl+C    - Quit

The basket keeps moving in the last direction pressed. Logs are
discarded unless --log-file is set, since the game owns the screen.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	g, cfg, err := loadGame(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Run(g, cfg.Runtime(flagSeed), logger, width, height); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
