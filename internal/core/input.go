package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - move left
	ActionRight           // D, Right arrow - move right
	ActionJump            // Space, W, Up - jump
	ActionConfirm         // Enter, Space on menus - start round, continue from shop
	ActionBuy             // B - buy the next skin in the shop
	ActionSkins           // K - open or close the skin wardrobe
	ActionPrev            // Left in the wardrobe - previous owned skin
	ActionNext            // Right in the wardrobe - next owned skin
	ActionRestart         // R - restart after victory
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBuy:
		return "Buy"
	case ActionSkins:
		return "Skins"
	case ActionPrev:
		return "Prev"
	case ActionNext:
		return "Next"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Controls is the normalized movement input consumed by the simulation.
// Every frontend (keyboard, touch, joystick) reduces to these three booleans.
type Controls struct {
	Left  bool
	Right bool
	Jump  bool
}

// Controls extracts the movement controls from the frame.
func (f InputFrame) Controls() Controls {
	return Controls{
		Left:  f.Has(ActionLeft),
		Right: f.Has(ActionRight),
		Jump:  f.Has(ActionJump),
	}
}
