package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/burgerman/internal/core"
	"github.com/vovakirdan/burgerman/internal/games/burger"
	"github.com/vovakirdan/burgerman/internal/platform/desktop"
	"github.com/vovakirdan/burgerman/internal/storage"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Burger Man in a resizable desktop window.

Controls:
  Left/Right, A/D  - Walk
  Up, W, Space     - Jump
  Enter/Space      - Start / retry / next round
  B                - Buy the next skin (shop)
  K                - Skins
  R                - Play again after victory
  Q/Esc            - Quit

Examples:
  burgerman window
  burgerman window --width 1280 --height 720
  burgerman window --difficulty hard --volume 0.5`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", desktop.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", desktop.DefaultHeight, "Window height in pixels")
	windowCmd.Flags().StringVar(&flagPlayer, "player", "", "Name saved with your runs (default: $USER)")
	addAudioFlags(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	sound := newSound(logger)
	defer sound.Cleanup()

	cfg := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if err := desktop.Run(burger.New(gameConfig), cfg, desktop.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
		Player: playerName(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		return err
	}
	return nil
}
