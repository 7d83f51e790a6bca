// Package burger implements the Burger Man simulation: a burger roams a
// platform arena eating humans through 33 timed rounds while armed humans
// shoot back.
//
// The Engine owns the world (entity stores, round clock) and advances it one
// frame per Step call. Run-level state (score, round, skins, FSM state) lives
// in a Session held by the caller. All randomness comes from an injected
// core.Rand so identical seeds and inputs replay identically.
package burger

import (
	"github.com/vovakirdan/burgerman/internal/config"
	"github.com/vovakirdan/burgerman/internal/core"
)

// World is every per-round entity store plus the clocks.
type World struct {
	View        core.Viewport
	Player      Player
	Platforms   []Platform
	Humans      []Human
	Items       []Item
	Projectiles []Projectile
	Particles   []Particle
	Texts       []FloatingText
	TimeLeft    float64 // Round countdown in seconds
	Clock       float64 // Accumulated simulation time, drives animation phases
	Tick        uint64
}

// Frame is the result of one Step: what to draw and what to play.
type Frame struct {
	Snapshot Snapshot
	Cues     []Cue
}

// Engine advances the world.
type Engine struct {
	cfg        config.BurgerConfig
	rng        core.Rand
	difficulty *config.DifficultyManager
	skins      []Skin
	world      World
	cues       []Cue
}

// NewEngine creates an engine for the given viewport.
func NewEngine(cfg config.BurgerConfig, rng core.Rand, view core.Viewport) *Engine {
	e := &Engine{
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		skins:      GenerateSkins(cfg.Shop.SkinCount),
	}
	e.world.View = view
	e.world.TimeLeft = cfg.Rounds.Duration
	e.resetPlayer()
	return e
}

// Step advances the simulation by dt seconds under the given controls.
//
// The world only moves while the session is PLAYING. A non-positive dt or an
// empty viewport makes the tick a no-op; dt above the configured maximum is
// clamped. Within a tick the order is fixed: player, items, humans,
// projectiles, effects, round clock.
func (e *Engine) Step(s *Session, dt float64, in core.Controls) Frame {
	if s.State == StatePlaying && dt > 0 && !e.world.View.Empty() {
		if maxDt := e.cfg.Physics.MaxDt; maxDt > 0 && dt > maxDt {
			dt = maxDt
		}
		e.simulate(s, dt, in)
	}
	return Frame{
		Snapshot: e.Snapshot(s),
		Cues:     e.DrainCues(),
	}
}

// simulate runs one tick of the fixed update order.
func (e *Engine) simulate(s *Session, dt float64, in core.Controls) {
	e.world.Clock += dt
	e.world.Tick++

	e.updatePlayer(dt, in)
	e.spawnItems(s)
	e.updateItems(dt)
	e.updateHumans(s, dt)

	if e.updateProjectiles() {
		s.State = StateGameOver
		s.lostRounds++
	}

	e.updateEffects()

	if s.State == StatePlaying {
		e.tickTimer(s, dt)
	}
}

// Resize changes the viewport. The ground is stretched at once; floating
// ledges keep their layout until the next round starts.
func (e *Engine) Resize(view core.Viewport) {
	e.world.View = view
	for i := range e.world.Platforms {
		plat := &e.world.Platforms[i]
		if plat.Kind != PlatformGround {
			continue
		}
		plat.X = 0
		plat.W = view.W
		plat.Y = view.H - plat.H
	}
}

// emit records a cue for the next frame.
func (e *Engine) emit(c Cue) {
	e.cues = append(e.cues, c)
}

// DrainCues returns and clears the pending cues.
func (e *Engine) DrainCues() []Cue {
	if len(e.cues) == 0 {
		return nil
	}
	out := e.cues
	e.cues = nil
	return out
}

// World exposes the live world for tests and tools.
func (e *Engine) World() *World {
	return &e.world
}

// Skins returns the skin catalog.
func (e *Engine) Skins() []Skin {
	return e.skins
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.BurgerConfig {
	return e.cfg
}
