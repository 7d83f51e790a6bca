package burger

import (
	"errors"

	"github.com/vovakirdan/burgerman/internal/config"
	"github.com/vovakirdan/burgerman/internal/core"
)

// Default world units per terminal cell. Terminal cells are about twice as
// tall as wide.
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// Game adapts the Engine and a Session to the frontend-facing core.Game
// interface: it maps menu actions onto session transitions and steps the
// simulation at the runtime tick rate.
type Game struct {
	cfg     config.BurgerConfig
	runtime core.RuntimeConfig
	engine  *Engine
	session *Session
	last    Snapshot
	cellW   float64
	cellH   float64
	notice  string // One-line shop feedback, cleared on the next transition
}

var _ core.Game = (*Game)(nil)

// New creates a new Burger Man game instance.
func New(cfg config.BurgerConfig) *Game {
	return &Game{
		cfg:   cfg,
		cellW: DefaultCellWidth,
		cellH: DefaultCellHeight,
	}
}

// SetCellSize sets how many world units one screen cell covers.
// A pixel frontend uses 1x1. Takes effect on the next Reset or Resize.
func (g *Game) SetCellSize(w, h float64) {
	if w > 0 {
		g.cellW = w
	}
	if h > 0 {
		g.cellH = h
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "burger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Burger Man"
}

// Reset starts a fresh run in the menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.engine = NewEngine(g.cfg, core.NewRNG(cfg.Seed), g.viewport(cfg.ScreenW, cfg.ScreenH))
	g.session = NewSession()
	g.notice = ""
	g.last = g.engine.Snapshot(g.session)
}

// Resize adapts the viewport to a new screen size.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	if g.engine == nil {
		return
	}
	g.engine.Resize(g.viewport(screenW, screenH))
	g.last = g.engine.Snapshot(g.session)
}

// viewport converts a screen size in cells to world units.
func (g *Game) viewport(screenW, screenH int) core.Viewport {
	return core.Viewport{
		W: float64(max(screenW, 0)) * g.cellW,
		H: float64(max(screenH, 0)) * g.cellH,
	}
}

// Step applies menu actions for the current state, then advances the
// simulation by one tick. Audio cues are returned as event names.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(g.runtime)
	}
	s := g.session

	switch s.State {
	case StateMenu:
		if in.Has(core.ActionConfirm) {
			_ = g.engine.Start(s)
		}
	case StateGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			_ = g.engine.Start(s)
		}
	case StatePlaying:
		if in.Has(core.ActionSkins) {
			_ = s.OpenSkins()
		}
	case StateShop:
		switch {
		case in.Has(core.ActionBuy):
			g.buy()
		case in.Has(core.ActionSkins):
			_ = s.OpenSkins()
		case in.Has(core.ActionConfirm):
			g.notice = ""
			_ = g.engine.NextRound(s)
		}
	case StateSkins:
		switch {
		case in.Has(core.ActionPrev):
			s.CycleSkin(-1)
		case in.Has(core.ActionNext):
			s.CycleSkin(1)
		case in.Has(core.ActionSkins), in.Has(core.ActionConfirm):
			_ = s.CloseSkins()
		}
	case StateVictory:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			_ = g.engine.Restart(s)
		}
	}

	frame := g.engine.Step(s, g.runtime.Dt(), in.Controls())
	g.last = frame.Snapshot

	events := make([]string, 0, len(frame.Cues))
	for _, c := range frame.Cues {
		events = append(events, string(c))
	}
	return core.StepResult{State: g.State(), Events: events}
}

// buy attempts a purchase and records shop feedback.
func (g *Game) buy() {
	sk, err := g.engine.BuySkin(g.session)
	switch {
	case err == nil:
		g.notice = "Bought " + sk.Name
	case errors.Is(err, ErrAllSkinsOwned):
		g.notice = "Nothing left to buy"
	case errors.Is(err, ErrInsufficientScore):
		g.notice = "Not enough points"
	}
}

// Render draws the last snapshot.
func (g *Game) Render(dst *core.Screen) {
	Render(&g.last, dst)
	if g.notice != "" && g.last.State == StateShop {
		dst.DrawTextCentered(dst.Height()-2, g.notice, ColorTitle)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Phase: string(StateMenu), Round: 1}
	}
	return core.GameState{
		Score:    g.session.Score,
		Round:    g.session.Round,
		Phase:    string(g.session.State),
		GameOver: g.session.Finished(),
		Paused:   !g.session.Simulating(),
	}
}

// Snapshot returns the frame drawn by the last Render.
func (g *Game) Snapshot() Snapshot {
	return g.last
}

// Session exposes the run state, for persisting finished runs.
func (g *Game) Session() *Session {
	return g.session
}

// Losses reports how many rounds the run has lost so far.
func (g *Game) Losses() int {
	if g.session == nil {
		return 0
	}
	return g.session.Losses()
}
