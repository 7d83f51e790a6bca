package core

// Game is the interface a frontend drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, audio and rendering.
type Game interface {
	// ID returns a unique identifier for this game.
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg RuntimeConfig)

	// Resize adapts the game to a new screen size without resetting it.
	Resize(screenW, screenH int)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Jump, Confirm, etc.).
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
