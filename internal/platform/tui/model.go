package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/burgerman/internal/core"
	"github.com/vovakirdan/burgerman/internal/games/burger"
	"github.com/vovakirdan/burgerman/internal/platform/runs"
	"github.com/vovakirdan/burgerman/internal/storage"
)

// CuePlayer plays the audio cues emitted by a tick.
type CuePlayer interface {
	PlayAll(cues []string)
}

// Options carries the optional collaborators of a game model.
type Options struct {
	Store    *storage.Store     // Leaderboard; nil disables saving
	Sound    CuePlayer          // nil keeps the game silent
	Logger   *log.Logger        // nil discards log output
	Player   string             // Name stored with finished runs
	Renderer *lipgloss.Renderer // nil uses the stdout renderer
}

// Model is the Bubble Tea model for running Burger Man.
type Model struct {
	game      *burger.Game
	screen    *core.Screen
	painter   *Painter
	recorder  *runs.Recorder
	sound     CuePlayer
	logger    *log.Logger
	player    string
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	held      heldKeys
	pending   core.InputFrame // One-shot actions for the next tick
	gameState core.GameState
	showHelp  bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *burger.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 0)),
		painter:  NewPainter(opts.Renderer),
		recorder: runs.NewRecorder(opts.Store, logger, opts.Player),
		sound:    opts.Sound,
		logger:   logger,
		player:   opts.Player,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		held:     newHeldKeys(cfg.TickRate),
		pending:  core.NewInputFrame(),
		showHelp: true,
	}
	m.help.Width = cfg.ScreenW

	// Reset here rather than in Init: Init has a value receiver
	game.Reset(m.gameConfig())
	m.gameState = game.State()
	return m
}

// helpRows is the number of terminal rows kept for the help line.
const helpRows = 1

// gameConfig returns the runtime config with the help line carved out.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpRows, 0)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "player", m.player, "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recorder.Save(m.game.Session())
		m.quitting = true
		m.logger.Info("game quit", "score", m.gameState.Score, "round", m.gameState.Round)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Stop):
		m.held.Release()
		return m, nil
	}

	for _, a := range m.keys.Actions(msg, m.gameState.Phase) {
		if isHeld(a) {
			m.held.Press(a)
		} else {
			m.pending.Set(a)
		}
	}
	return m, nil
}

// handleResize processes window resize events.
// The run survives: the new size takes effect at the next round start.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)
	m.game.Resize(gc.ScreenW, gc.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.held.Apply(&frame)
	m.pending.Clear()

	prev := m.gameState
	result := m.game.Step(frame)
	m.gameState = result.State

	if m.sound != nil && len(result.Events) > 0 {
		m.sound.PlayAll(result.Events)
	}
	for _, ev := range result.Events {
		if ev == string(burger.CuePurchase) {
			m.logger.Info("skin purchased", "score", m.gameState.Score, "owned", len(m.game.Session().Owned))
		}
	}

	if prev.Phase != m.gameState.Phase {
		m.onPhaseChange(prev)
	}

	return m, tickCmd(m.config.TickRate)
}

// onPhaseChange releases held keys when a round starts and hands the
// transition to the run recorder.
func (m *Model) onPhaseChange(prev core.GameState) {
	if m.gameState.Phase == string(burger.StatePlaying) {
		// Held keys from the menu would move the burger on the first frame
		m.held.Release()
	}
	m.recorder.Observe(prev, m.gameState, m.game.Session())
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".burgerman", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := m.painter.Paint(m.screen)
	if m.showHelp {
		out += "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return out
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game *burger.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
