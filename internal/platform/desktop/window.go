// Package desktop runs Burger Man in an Ebitengine window. The world is
// simulated in pixels: one world unit per screen pixel.
package desktop

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/burgerman/internal/core"
	"github.com/vovakirdan/burgerman/internal/games/burger"
	"github.com/vovakirdan/burgerman/internal/platform/desktop/scene"
	"github.com/vovakirdan/burgerman/internal/platform/runs"
	"github.com/vovakirdan/burgerman/internal/storage"
)

// Default window size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// CuePlayer plays the audio cues emitted by a tick.
type CuePlayer interface {
	PlayAll(cues []string)
}

// Options carries the optional collaborators of a window.
type Options struct {
	Store  *storage.Store // Leaderboard; nil disables saving
	Sound  CuePlayer      // nil keeps the game silent
	Logger *log.Logger    // nil discards log output
	Player string         // Name stored with finished runs
}

// Window implements ebiten.Game around a Burger Man game.
type Window struct {
	game     *burger.Game
	config   core.RuntimeConfig
	sound    CuePlayer
	logger   *log.Logger
	recorder *runs.Recorder
	state    core.GameState
	width    int
	height   int
}

// New creates a window. The game is switched to pixel units and reset.
func New(game *burger.Game, cfg core.RuntimeConfig, opts Options) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = DefaultWidth, DefaultHeight
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.SetCellSize(1, 1)
	game.Reset(cfg)

	return &Window{
		game:     game,
		config:   cfg,
		sound:    opts.Sound,
		logger:   logger,
		recorder: runs.NewRecorder(opts.Store, logger, opts.Player),
		state:    game.State(),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
}

// readInput samples the keyboard. Movement reads held keys; menu actions
// fire once per press.
func readInput(phase string) core.InputFrame {
	in := core.NewInputFrame()
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	just := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				return true
			}
		}
		return false
	}

	if phase == string(burger.StateSkins) {
		if just(ebiten.KeyArrowLeft, ebiten.KeyA) {
			in.Set(core.ActionPrev)
		}
		if just(ebiten.KeyArrowRight, ebiten.KeyD) {
			in.Set(core.ActionNext)
		}
	} else {
		if pressed(ebiten.KeyArrowLeft, ebiten.KeyA) {
			in.Set(core.ActionLeft)
		}
		if pressed(ebiten.KeyArrowRight, ebiten.KeyD) {
			in.Set(core.ActionRight)
		}
	}

	if phase == string(burger.StatePlaying) {
		if pressed(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace) {
			in.Set(core.ActionJump)
		}
	} else if just(ebiten.KeyEnter, ebiten.KeySpace) {
		in.Set(core.ActionConfirm)
	}

	if just(ebiten.KeyB) {
		in.Set(core.ActionBuy)
	}
	if just(ebiten.KeyK) {
		in.Set(core.ActionSkins)
	}
	if just(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if just(ebiten.KeyQ, ebiten.KeyEscape) {
		in.Set(core.ActionQuit)
	}
	return in
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	in := readInput(w.state.Phase)
	if in.Has(core.ActionQuit) {
		w.recorder.Save(w.game.Session())
		w.logger.Info("game quit", "score", w.state.Score, "round", w.state.Round)
		return ebiten.Termination
	}

	prev := w.state
	result := w.game.Step(in)
	w.state = result.State

	if w.sound != nil && len(result.Events) > 0 {
		w.sound.PlayAll(result.Events)
	}
	for _, ev := range result.Events {
		if ev == string(burger.CuePurchase) {
			w.logger.Info("skin purchased", "score", w.state.Score, "owned", len(w.game.Session().Owned))
		}
	}
	w.recorder.Observe(prev, w.state, w.game.Session())
	return nil
}

// Draw paints the last snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	frame := scene.Build(&snap)
	for _, r := range frame.Rects {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, r.Color, false)
	}
	for _, l := range frame.Labels {
		ebitenutil.DebugPrintAt(screen, l.Text, l.X, l.Y)
	}
}

// Layout follows the window size; the world resizes with it.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.game.Resize(outsideWidth, outsideHeight)
	}
	return w.width, w.height
}

// Run opens the window and blocks until it is closed.
func Run(game *burger.Game, cfg core.RuntimeConfig, opts Options) error {
	w := New(game, cfg, opts)

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.config.TickRate)

	w.logger.Info("window opened", "width", w.width, "height", w.height, "seed", w.config.Seed)
	err := ebiten.RunGame(w)

	// Closing the window skips the quit key
	w.recorder.Save(game.Session())

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
