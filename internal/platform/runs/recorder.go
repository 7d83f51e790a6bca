// Package runs records finished Burger Man runs on the leaderboard.
// Both frontends feed it the state after every tick.
package runs

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/burgerman/internal/core"
	"github.com/vovakirdan/burgerman/internal/games/burger"
	"github.com/vovakirdan/burgerman/internal/storage"
)

// Recorder logs phase transitions and saves each run once.
type Recorder struct {
	store  *storage.Store
	logger *log.Logger
	player string
	saved  bool
}

// NewRecorder creates a recorder. A nil store only logs; a nil logger discards.
func NewRecorder(store *storage.Store, logger *log.Logger, player string) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, logger: logger, player: player}
}

// Observe handles the state change of one tick. A won run is saved right
// away; returning to the menu starts a new run.
func (r *Recorder) Observe(prev, next core.GameState, s *burger.Session) {
	if prev.Phase == next.Phase {
		return
	}
	r.logger.Info("phase changed",
		"from", prev.Phase,
		"to", next.Phase,
		"round", next.Round,
		"score", next.Score,
	)

	switch burger.State(next.Phase) {
	case burger.StateVictory:
		r.Save(s)
	case burger.StateMenu:
		r.saved = false
	}
}

// Save records the run unless it was already saved or never scored.
// It returns the stored run, or nil when nothing was written.
func (r *Recorder) Save(s *burger.Session) *storage.Run {
	if r.saved || r.store == nil || s == nil {
		return nil
	}
	if s.Score == 0 && s.Round <= 1 {
		return nil
	}

	run, err := r.store.SaveRun(storage.Run{
		Player:  r.player,
		Score:   s.Score,
		Round:   s.Round,
		Outcome: Outcome(string(s.State)),
		Skins:   len(s.Owned),
		Losses:  s.Losses(),
	})
	if err != nil {
		r.logger.Error("could not save run", "error", err)
		return nil
	}
	r.saved = true
	r.logger.Info("run saved", "run_id", run.RunID, "score", run.Score, "round", run.Round, "outcome", run.Outcome)
	return &run
}

// Saved reports whether the current run is on the leaderboard.
func (r *Recorder) Saved() bool {
	return r.saved
}

// Outcome classifies a run by the phase it ends in.
func Outcome(phase string) string {
	switch burger.State(phase) {
	case burger.StateVictory:
		return storage.OutcomeVictory
	case burger.StateGameOver:
		return storage.OutcomeGameOver
	default:
		return storage.OutcomeQuit
	}
}
