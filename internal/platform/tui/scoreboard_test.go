package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/burgerman/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runs := []storage.Run{
		{Player: "alice", Score: 900, Round: 9, Outcome: storage.OutcomeGameOver},
		{Player: "bob", Score: 5000, Round: 33, Outcome: storage.OutcomeVictory},
		{Player: "alice", Score: 300, Round: 2, Outcome: storage.OutcomeQuit},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func TestScoreboardViews(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), "alice", 120, 30)

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("top view rows = %d, want 3", len(rows))
	}
	if rows[0][1] != "bob" || rows[0][4] != "won" {
		t.Errorf("first row = %v, want bob's victory", rows[0])
	}
	if !m.showSidebar {
		t.Error("sidebar should show at width 120")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("top view title missing")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewPlayer {
		t.Fatal("tab should switch to the player's runs")
	}
	rows = m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("player view rows = %d, want 2", len(rows))
	}
	if rows[0][2] != "300" {
		t.Errorf("latest run first, got score %s", rows[0][2])
	}
	if !strings.Contains(m.View(), "runs of alice") {
		t.Error("player view title missing")
	}
}

func TestScoreboardWithoutPlayer(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), "", 80, 24)
	if m.showSidebar {
		t.Error("sidebar should hide below the minimum width")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).view != viewTop {
		t.Error("tab without a player should stay on the top list")
	}
}

func TestScoreboardEmptyAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("empty board message missing")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
