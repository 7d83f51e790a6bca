package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/burgerman/internal/config"
	"github.com/vovakirdan/burgerman/internal/core"
	"github.com/vovakirdan/burgerman/internal/games/burger"
	"github.com/vovakirdan/burgerman/internal/storage"
)

type recordingPlayer struct {
	cues []string
}

func (r *recordingPlayer) PlayAll(cues []string) {
	r.cues = append(r.cues, cues...)
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.NewRenderer(&bytes.Buffer{})
	}
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 41, TickRate: 60, Seed: 99}
	return NewModel(burger.New(config.DefaultBurgerConfig()), cfg, opts)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelStartsInMenu(t *testing.T) {
	m := newTestModel(t, Options{})
	if m.GameState().Phase != string(burger.StateMenu) {
		t.Errorf("phase = %q, want MENU", m.GameState().Phase)
	}
	// One row is kept for the help line
	if m.screen.Height() != 40 {
		t.Errorf("screen height = %d, want 40", m.screen.Height())
	}
}

func TestModelConfirmStartsRound(t *testing.T) {
	sound := &recordingPlayer{}
	m := newTestModel(t, Options{Sound: sound})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})

	if m.GameState().Phase != string(burger.StatePlaying) {
		t.Fatalf("phase = %q, want PLAYING", m.GameState().Phase)
	}
	found := false
	for _, c := range sound.cues {
		if c == string(burger.CueRoundStart) {
			found = true
		}
	}
	if !found {
		t.Errorf("cues = %v, want round_start", sound.cues)
	}

	// One-shot actions do not repeat
	m = update(t, m, TickMsg{})
	if m.pending.Has(core.ActionConfirm) {
		t.Error("confirm still pending after the tick")
	}
}

func TestModelHeldMovement(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})

	startX := m.game.Snapshot().Player.X
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg{})
	}
	if m.game.Snapshot().Player.X <= startX {
		t.Errorf("player did not move right: %v -> %v", startX, m.game.Snapshot().Player.X)
	}

	m = update(t, m, runeKey("s"))
	if m.held.right != 0 {
		t.Error("stop key did not release movement")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 21})
	if m.screen.Width() != 60 || m.screen.Height() != 20 {
		t.Errorf("screen = %dx%d, want 60x20", m.screen.Width(), m.screen.Height())
	}
	if m.GameState().Phase != string(burger.StatePlaying) {
		t.Errorf("resize changed phase to %q", m.GameState().Phase)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, Options{})
	view := m.View()
	if !strings.Contains(view, "BURGER MAN") {
		t.Error("menu view missing title")
	}
	if !strings.Contains(view, "start/continue") {
		t.Error("view missing help line")
	}

	m = update(t, m, runeKey("?"))
	if strings.Contains(m.View(), "start/continue") {
		t.Error("help line still shown after toggle")
	}
}

func TestModelQuitSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, Options{Store: store, Player: "tester"})
	s := m.game.Session()
	s.Score = 700
	s.Round = 5
	s.State = burger.StateGameOver

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("view not empty after quit")
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Player != "tester" || r.Score != 700 || r.Round != 5 || r.Outcome != storage.OutcomeGameOver || r.Skins != 1 {
		t.Errorf("saved run = %+v", r)
	}
}

func TestPainterPlainProfile(t *testing.T) {
	p := NewPainter(lipgloss.NewRenderer(&bytes.Buffer{}))
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "xyz")

	out := p.Paint(s)
	if strings.Contains(out, "\x1b") {
		t.Errorf("plain renderer emitted escapes: %q", out)
	}
	if out != s.String() {
		t.Errorf("Paint() = %q, want %q", out, s.String())
	}
	if len(p.styles) != 2 {
		t.Errorf("cached %d styles, want 2", len(p.styles))
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText overflow = %q", got)
	}
}
