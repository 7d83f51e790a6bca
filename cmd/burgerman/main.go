// burgerman is a 2D arcade game: a walking burger eats fleeing humans across
// 33 timed rounds while armed humans shoot back.
//
// Usage:
//
//	burgerman play           - Play in the terminal
//	burgerman window         - Play in a desktop window
//	burgerman serve          - Start SSH server for remote play
//	burgerman scores         - Show the leaderboard
//	burgerman skins          - List the skin catalog
//	burgerman simulate       - Run the simulation headless and print its hash
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.burgerman/runs.db)
//	--config <path>       - Load a custom burger.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/burgerman/internal/audio"
	"github.com/vovakirdan/burgerman/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// Loaded by the root command before any subcommand runs.
var gameConfig config.BurgerConfig

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "burgerman",
	Short: "Burger Man - eat the humans, dodge the bullets",
	Long: `Burger Man is a 2D arcade game. You are a burger. Humans flee from you,
some of them pick up guns. Eat as many as you can in 33 timed rounds and
spend your points on skins between rounds.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - View the leaderboard
  skins     - List the skin catalog
  simulate  - Run the simulation headless

Examples:
  burgerman play
  burgerman play --difficulty hard
  burgerman window --seed 42
  burgerman serve --ssh :2222
  burgerman simulate --ticks 10000 --seed 7`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadGameConfig()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.burgerman/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom burger.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadGameConfig loads burger.yaml and applies the difficulty preset.
func loadGameConfig() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	gameConfig = cfg
	return nil
}

// newLogger builds the leveled logger. Interactive frontends own the
// terminal, so without --log-file they log to ~/.burgerman/burgerman.log.
// The returned closer releases the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}

	path := flagLogFile
	if path == "" && interactive {
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			path = filepath.Join(home, ".burgerman", "burgerman.log")
		}
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "burgerman",
		Level:           level,
	})
	return logger, closer, nil
}

// Audio flags shared by the interactive frontends.
var (
	flagMute   bool
	flagVolume float64
)

func addAudioFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.8, "Master volume (0 to 1)")
}

// newSound opens the speaker. Muted or without an audio device the manager
// stays uninitialized and every cue is dropped.
func newSound(logger *log.Logger) *audio.SoundManager {
	sm := audio.NewSoundManager(flagVolume)
	if flagMute {
		return sm
	}
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	return sm
}
