package burger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/burgerman/internal/core"
)

// generatePlatforms lays out the ground plus a round-scaled set of ledges.
func (e *Engine) generatePlatforms(round int) []Platform {
	rc := e.cfg.Rounds
	view := e.world.View

	n := e.floatingCount(round)
	platforms := make([]Platform, 0, n+1)
	platforms = append(platforms, Platform{
		Box:  core.NewBox(0, view.H-rc.GroundHeight, view.W, rc.GroundHeight),
		Kind: PlatformGround,
	})

	section := (view.H - rc.LayoutMargin) / float64(n)
	for i := range n {
		platforms = append(platforms, Platform{
			Box: core.NewBox(
				e.rng.Float64()*max(view.W-rc.PlatformMarginX, 0),
				view.H-rc.TopPlatformOffset-float64(i)*section,
				rc.MinPlatformWidth+e.rng.Float64()*rc.PlatformWidthJitter,
				rc.PlatformHeight,
			),
			Kind: PlatformFloating,
		})
	}
	return platforms
}

// floatingCount returns how many ledges a round gets: the base count plus
// one per RoundsPerExtra rounds, capped.
func (e *Engine) floatingCount(round int) int {
	rc := e.cfg.Rounds
	per := max(rc.RoundsPerExtra, 1)
	return max(rc.BaseFloating+min(rc.MaxExtraFloating, round/per), 1)
}

// startRound resets the arena for the session's current round.
func (e *Engine) startRound(s *Session) {
	e.resetPlayer()
	e.world.Platforms = e.generatePlatforms(s.Round)
	e.world.Humans = e.world.Humans[:0]
	e.world.Items = e.world.Items[:0]
	e.world.Projectiles = e.world.Projectiles[:0]
	e.world.Particles = e.world.Particles[:0]
	e.world.Texts = e.world.Texts[:0]
	e.spawnHumans(e.humanCount(s.Round), s.Round)
	e.world.TimeLeft = e.cfg.Rounds.Duration

	s.State = StatePlaying
	e.emit(CueRoundStart)
}

// tickTimer counts the round clock down and ends the round at zero.
func (e *Engine) tickTimer(s *Session, dt float64) {
	e.world.TimeLeft -= dt
	if e.world.TimeLeft > 0 {
		return
	}
	e.world.TimeLeft = 0
	if s.Round >= e.cfg.Rounds.Total {
		s.State = StateVictory
	} else {
		s.State = StateShop
	}
	e.emit(CueRoundEnd)
}

// Start begins play from the menu, or retries the reached round after a loss.
// Score, round and owned skins are kept on retry.
func (e *Engine) Start(s *Session) error {
	if s.State != StateMenu && s.State != StateGameOver {
		return fmt.Errorf("%w: start from %s", ErrWrongState, s.State)
	}
	e.startRound(s)
	return nil
}

// NextRound leaves the shop and starts the following round.
func (e *Engine) NextRound(s *Session) error {
	if s.State != StateShop {
		return fmt.Errorf("%w: next round from %s", ErrWrongState, s.State)
	}
	s.Round++
	e.startRound(s)
	return nil
}

// BuySkin purchases the next skin in unlock order and selects it.
func (e *Engine) BuySkin(s *Session) (Skin, error) {
	if s.State != StateShop {
		return Skin{}, ErrNotInShop
	}
	id := s.NextSkinID()
	if id >= len(e.skins) {
		return Skin{}, ErrAllSkinsOwned
	}
	cost := e.SkinCost(s)
	if s.Score < cost {
		return Skin{}, ErrInsufficientScore
	}
	s.Score -= cost
	s.Owned = append(s.Owned, id)
	s.Selected = id
	e.emit(CuePurchase)
	return e.skins[id], nil
}

// SkinCost returns the price of the session's next skin.
func (e *Engine) SkinCost(s *Session) int {
	return s.SkinCost(e.cfg.Shop.BaseCost, e.cfg.Shop.CostStep)
}

// Restart throws the finished run away and returns to the menu.
func (e *Engine) Restart(s *Session) error {
	if s.State != StateVictory {
		return fmt.Errorf("%w: restart from %s", ErrWrongState, s.State)
	}
	s.Reset()
	e.world.Humans = e.world.Humans[:0]
	e.world.Items = e.world.Items[:0]
	e.world.Projectiles = e.world.Projectiles[:0]
	e.world.Particles = e.world.Particles[:0]
	e.world.Texts = e.world.Texts[:0]
	e.world.TimeLeft = e.cfg.Rounds.Duration
	return nil
}

// clock formats seconds as m:ss, rounding partial seconds down.
func clock(seconds float64) string {
	total := int(math.Max(math.Floor(seconds), 0))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
