package burger

import (
	"errors"
	"slices"
)

// State is a node of the run's finite state machine.
type State string

// Run states
const (
	StateMenu     State = "MENU"
	StatePlaying  State = "PLAYING"
	StateShop     State = "SHOP"
	StateSkins    State = "SKINS" // Overlay; returns to the state that opened it
	StateVictory  State = "VICTORY"
	StateGameOver State = "GAME_OVER"
)

// Shop errors. A rejected purchase leaves the session untouched.
var (
	ErrNotInShop         = errors.New("burger: skins can only be bought in the shop")
	ErrAllSkinsOwned     = errors.New("burger: all skins already owned")
	ErrInsufficientScore = errors.New("burger: score too low for the next skin")
	ErrSkinNotOwned      = errors.New("burger: skin not owned")
	ErrWrongState        = errors.New("burger: transition not allowed from current state")
)

// Session holds everything that outlives a single round: score, round
// counter, owned skins and the FSM state. The frontend owns it and passes it
// to every Engine call.
type Session struct {
	Score      int
	Round      int
	Owned      []int // Skin ids in purchase order; id 0 is always owned
	Selected   int
	State      State
	skinsFrom  State // State that opened the skins overlay
	lostRounds int   // Game overs so far, reported to the leaderboard
}

// NewSession creates a fresh run waiting in the menu.
func NewSession() *Session {
	return &Session{
		Round: 1,
		Owned: []int{0},
		State: StateMenu,
	}
}

// Reset returns the session to a fresh menu state.
func (s *Session) Reset() {
	*s = *NewSession()
}

// Owns reports whether the skin id has been bought.
func (s *Session) Owns(id int) bool {
	return slices.Contains(s.Owned, id)
}

// NextSkinID returns the id of the next purchasable skin.
// Skins unlock sequentially, so it equals the number already owned.
func (s *Session) NextSkinID() int {
	return len(s.Owned)
}

// SkinCost returns the price of the next skin under the given pricing.
func (s *Session) SkinCost(baseCost, step int) int {
	return baseCost + step*len(s.Owned)
}

// SelectSkin makes an owned skin active.
func (s *Session) SelectSkin(id int) error {
	if !s.Owns(id) {
		return ErrSkinNotOwned
	}
	s.Selected = id
	return nil
}

// CycleSkin selects the owned skin delta positions away, wrapping around.
func (s *Session) CycleSkin(delta int) {
	if len(s.Owned) == 0 {
		return
	}
	idx := slices.Index(s.Owned, s.Selected)
	if idx < 0 {
		idx = 0
	}
	n := len(s.Owned)
	idx = ((idx+delta)%n + n) % n
	s.Selected = s.Owned[idx]
}

// OpenSkins shows the wardrobe overlay from PLAYING or SHOP.
func (s *Session) OpenSkins() error {
	if s.State != StatePlaying && s.State != StateShop {
		return ErrWrongState
	}
	s.skinsFrom = s.State
	s.State = StateSkins
	return nil
}

// CloseSkins returns to whichever state opened the overlay.
func (s *Session) CloseSkins() error {
	if s.State != StateSkins {
		return ErrWrongState
	}
	s.State = s.skinsFrom
	s.skinsFrom = ""
	return nil
}

// SkinsReturnState reports the state the overlay will return to.
func (s *Session) SkinsReturnState() State {
	return s.skinsFrom
}

// Losses returns how many times the run has hit GAME_OVER.
func (s *Session) Losses() int {
	return s.lostRounds
}

// Finished reports whether the run is in a terminal state.
func (s *Session) Finished() bool {
	return s.State == StateVictory || s.State == StateGameOver
}

// Simulating reports whether the world advances in the current state.
func (s *Session) Simulating() bool {
	return s.State == StatePlaying
}
