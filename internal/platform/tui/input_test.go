package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/burgerman/internal/core"
	"github.com/vovakirdan/burgerman/internal/games/burger"
)

func TestHeldKeysWindow(t *testing.T) {
	h := newHeldKeys(60)
	if h.holdTicks != 33 || h.jumpTicks != 6 {
		t.Fatalf("windows = %d/%d ticks, want 33/6", h.holdTicks, h.jumpTicks)
	}

	h.Press(core.ActionLeft)
	for i := 0; i < h.holdTicks; i++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left released early", i)
		}
	}

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionLeft) {
		t.Error("left still held after the window")
	}
}

func TestHeldKeysOppositeCancels(t *testing.T) {
	h := newHeldKeys(60)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) {
		t.Errorf("got left=%v right=%v, want right only", frame.Has(core.ActionLeft), frame.Has(core.ActionRight))
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := newHeldKeys(30)
	h.Press(core.ActionRight)
	h.Press(core.ActionJump)
	h.Release()

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Controls() != (core.Controls{}) {
		t.Errorf("controls after release = %+v", frame.Controls())
	}
}

func TestHeldKeysZeroTickRate(t *testing.T) {
	h := newHeldKeys(0)
	if h.holdTicks < 1 || h.jumpTicks < 1 {
		t.Errorf("windows must be at least one tick, got %d/%d", h.holdTicks, h.jumpTicks)
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()
	playing := string(burger.StatePlaying)
	shop := string(burger.StateShop)
	skins := string(burger.StateSkins)
	menu := string(burger.StateMenu)

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		phase string
		want  []core.Action
	}{
		{"left arrow moves", tea.KeyMsg{Type: tea.KeyLeft}, playing, []core.Action{core.ActionLeft}},
		{"d moves right", runeKey("d"), playing, []core.Action{core.ActionRight}},
		{"space jumps while playing", tea.KeyMsg{Type: tea.KeySpace}, playing, []core.Action{core.ActionJump}},
		{"space confirms in menu", tea.KeyMsg{Type: tea.KeySpace}, menu, []core.Action{core.ActionConfirm}},
		{"enter confirms in shop", tea.KeyMsg{Type: tea.KeyEnter}, shop, []core.Action{core.ActionConfirm}},
		{"enter ignored while playing", tea.KeyMsg{Type: tea.KeyEnter}, playing, nil},
		{"b buys", runeKey("b"), shop, []core.Action{core.ActionBuy}},
		{"k opens skins", runeKey("k"), playing, []core.Action{core.ActionSkins}},
		{"left browses skins", tea.KeyMsg{Type: tea.KeyLeft}, skins, []core.Action{core.ActionPrev}},
		{"right browses skins", tea.KeyMsg{Type: tea.KeyRight}, skins, []core.Action{core.ActionNext}},
		{"r restarts", runeKey("r"), string(burger.StateVictory), []core.Action{core.ActionRestart}},
		{"unbound key", runeKey("x"), playing, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := km.Actions(tt.msg, tt.phase)
			if len(got) != len(tt.want) {
				t.Fatalf("Actions() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Actions()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
