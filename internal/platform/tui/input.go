package tui

import (
	"github.com/vovakirdan/burgerman/internal/core"
)

// Terminals report key presses but never releases. A movement key stays
// held for holdWindow after its last press (long enough to bridge the
// keyboard auto-repeat delay) and a jump for jumpWindow.
const (
	holdWindow = 0.55 // seconds
	jumpWindow = 0.1  // seconds
)

// heldKeys latches movement keys for a number of ticks.
type heldKeys struct {
	left, right, jump int // remaining ticks
	holdTicks         int
	jumpTicks         int
}

// newHeldKeys sizes the latch windows for a tick rate.
func newHeldKeys(tickRate int) heldKeys {
	if tickRate <= 0 {
		tickRate = 60
	}
	return heldKeys{
		holdTicks: max(int(holdWindow*float64(tickRate)), 1),
		jumpTicks: max(int(jumpWindow*float64(tickRate)), 1),
	}
}

// Press latches an action. Opposite directions cancel each other.
func (h *heldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = h.holdTicks, 0
	case core.ActionRight:
		h.right, h.left = h.holdTicks, 0
	case core.ActionJump:
		h.jump = h.jumpTicks
	}
}

// Release drops every latched key.
func (h *heldKeys) Release() {
	h.left, h.right, h.jump = 0, 0, 0
}

// Apply marks the held actions on the frame and counts one tick down.
func (h *heldKeys) Apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
	if h.jump > 0 {
		frame.Set(core.ActionJump)
		h.jump--
	}
}

// isHeld reports whether an action is latched rather than one-shot.
func isHeld(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionJump
}
