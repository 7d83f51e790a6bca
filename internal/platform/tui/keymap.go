package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/burgerman/internal/core"
	"github.com/vovakirdan/burgerman/internal/games/burger"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Stop       key.Binding
	Confirm    key.Binding
	Buy        key.Binding
	Skins      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Confirm, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Stop},
		{k.Confirm, k.Buy, k.Skins, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/space", "jump"),
		),
		Stop: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "stop"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start/continue"),
		),
		Buy: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "buy skin"),
		),
		Skins: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "skins"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Actions translates a key message to game actions for the given phase.
// While playing the arrows steer the burger; in the wardrobe they browse
// skins. Space jumps while playing and confirms everywhere else.
func (k KeyMap) Actions(msg tea.KeyMsg, phase string) []core.Action {
	playing := phase == string(burger.StatePlaying)
	var actions []core.Action

	switch {
	case key.Matches(msg, k.Left):
		if phase == string(burger.StateSkins) {
			return []core.Action{core.ActionPrev}
		}
		actions = append(actions, core.ActionLeft)
	case key.Matches(msg, k.Right):
		if phase == string(burger.StateSkins) {
			return []core.Action{core.ActionNext}
		}
		actions = append(actions, core.ActionRight)
	}

	if playing && key.Matches(msg, k.Jump) {
		actions = append(actions, core.ActionJump)
	}
	if !playing && key.Matches(msg, k.Confirm) {
		actions = append(actions, core.ActionConfirm)
	}

	switch {
	case key.Matches(msg, k.Buy):
		actions = append(actions, core.ActionBuy)
	case key.Matches(msg, k.Skins):
		actions = append(actions, core.ActionSkins)
	case key.Matches(msg, k.Restart):
		actions = append(actions, core.ActionRestart)
	}

	return actions
}
