package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/burgerman/internal/core"
	"github.com/vovakirdan/burgerman/internal/games/burger"
	"github.com/vovakirdan/burgerman/internal/platform/tui"
	"github.com/vovakirdan/burgerman/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Burger Man in the terminal.

Controls:
  Left/Right, A/D  - Walk
  Up, W, Space     - Jump
  Down, S          - Stop walking
  Enter            - Start / retry / next round
  B                - Buy the next skin (shop)
  K                - Skins
  R                - Play again after victory
  Ctrl+S           - Save a screenshot
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Terminals report key presses but not releases, so a walk key keeps
walking for about half a second after the last press.

Difficulty options:
  easy   - More HP, weaker bullets, progression from the lowest level
  normal - Progression from 30%
  hard   - Less HP, stronger bullets, faster armed humans
  fixed  - No progression

Examples:
  burgerman play
  burgerman play --difficulty easy
  burgerman play --seed 42 --mute
  burgerman play --config ./my-burger.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name saved with your runs (default: $USER)")
	addAudioFlags(playCmd)
}

// playerName returns the --player flag or the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	return os.Getenv("USER")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	sound := newSound(logger)
	defer sound.Cleanup()

	if err := tui.Run(burger.New(gameConfig), cfg, tui.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
		Player: playerName(),
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
