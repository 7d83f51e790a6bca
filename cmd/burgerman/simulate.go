package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/burgerman/internal/config"
	"github.com/vovakirdan/burgerman/internal/core"
	"github.com/vovakirdan/burgerman/internal/games/burger"
)

var (
	flagSimTicks  int
	flagSimWidth  float64
	flagSimHeight float64
	flagSimBot    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless",
	Long: `Run the engine without a frontend and print the final state and hash.

The same seed, size and tuning always produce the same hash. With --bot a
simple player chases the nearest human, buys skins in the shop and retries
after a game over.

Examples:
  burgerman simulate --ticks 10000 --seed 7
  burgerman simulate --bot=false --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().Float64Var(&flagSimWidth, "width", 800, "World width")
	simulateCmd.Flags().Float64Var(&flagSimHeight, "height", 600, "World height")
	simulateCmd.Flags().BoolVar(&flagSimBot, "bot", true, "Drive the burger with the built-in bot")
}

// simResult is the outcome of a headless run.
type simResult struct {
	Ticks  int
	State  burger.State
	Round  int
	Score  int
	HP     float64
	Skins  int
	Losses int
	Hash   uint64
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive")
	}
	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	res := simulate(gameConfig, seed, core.Viewport{W: flagSimWidth, H: flagSimHeight}, flagSimTicks, flagFPS, flagSimBot)

	fmt.Printf("ticks:  %d\n", res.Ticks)
	fmt.Printf("state:  %s\n", res.State)
	fmt.Printf("round:  %d\n", res.Round)
	fmt.Printf("score:  %d\n", res.Score)
	fmt.Printf("hp:     %.1f\n", res.HP)
	fmt.Printf("skins:  %d\n", res.Skins)
	fmt.Printf("losses: %d\n", res.Losses)
	fmt.Printf("hash:   %016x\n", res.Hash)
	return nil
}

// simulate plays up to ticks fixed steps of a fresh run, stopping early on
// victory. Without the bot the burger stands still and the run ends wherever
// the first round leaves it.
func simulate(cfg config.BurgerConfig, seed int64, view core.Viewport, ticks, fps int, bot bool) simResult {
	if fps <= 0 {
		fps = 60
	}
	dt := 1 / float64(fps)

	engine := burger.NewEngine(cfg, core.NewRNG(seed), view)
	session := burger.NewSession()
	//nolint:errcheck // A fresh session is always in the menu
	engine.Start(session)

	played := 0
	for played < ticks && session.State != burger.StateVictory {
		var in core.Controls
		if bot {
			in = botControls(engine.World(), played)
		}
		engine.Step(session, dt, in)
		played++

		if !bot {
			continue
		}
		switch session.State {
		case burger.StateShop:
			for {
				if _, err := engine.BuySkin(session); err != nil {
					break
				}
			}
			//nolint:errcheck // State checked above
			engine.NextRound(session)
		case burger.StateGameOver:
			//nolint:errcheck // State checked above
			engine.Start(session)
		}
	}
	snap := engine.Snapshot(session)

	return simResult{
		Ticks:  played,
		State:  session.State,
		Round:  session.Round,
		Score:  session.Score,
		HP:     engine.World().Player.HP,
		Skins:  len(session.Owned),
		Losses: session.Losses(),
		Hash:   snap.Hash(),
	}
}

// botJumpEvery is how often the bot hops while chasing on the same level.
const botJumpEvery = 45

// botControls walks toward the nearest human and jumps when the target is
// above or every botJumpEvery ticks.
func botControls(w *burger.World, tick int) core.Controls {
	var in core.Controls
	p := w.Player
	px, py := p.Center()

	best, bestDist := -1, math.Inf(1)
	for i, h := range w.Humans {
		hx, hy := h.Center()
		d := math.Hypot(hx-px, hy-py)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return in
	}

	target := w.Humans[best]
	tx, _ := target.Center()
	switch {
	case tx < px-2:
		in.Left = true
	case tx > px+2:
		in.Right = true
	}
	above := target.Y+target.H < p.Y
	in.Jump = p.Grounded && (above || tick%botJumpEvery == 0)
	return in
}
