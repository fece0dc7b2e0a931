package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/basket-fighter/internal/assets"
	"github.com/vovakirdan/basket-fighter/internal/platform/window"
)

var flagAssets string

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a fixed-size window and start a game.

Sprites are read from --assets DIR as apple.png, banana.png, cherry.png,
pear.png and basket.png. Every file must exist and decode. Without
--assets, built-in placeholder shapes are drawn.

Controls:
  A/Left    - Move left
  D/Right   - Move right

Close the window to quit.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with sprite PNG files")
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	g, cfg, err := loadGame(logger)
	if err != nil {
		return err
	}

	cat := assets.Placeholders()
	if flagAssets != "" {
		cat, err = assets.Load(os.DirFS(flagAssets))
		if err != nil {
			return err
		}
		logger.Info("sprites loaded", "dir", flagAssets)
	}

	return window.Run(g, cat, cfg.Runtime(flagSeed), logger)
}
