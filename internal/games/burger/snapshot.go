package burger

import (
	"math"
	"slices"

	"github.com/vovakirdan/burgerman/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Mutating it never affects the engine.
type Snapshot struct {
	Tick  uint64
	Clock float64
	View  core.Viewport

	// Session
	State       State
	ReturnState State // State the skins overlay returns to
	Score       int
	Round       int
	TotalRounds int
	Owned       []int
	OwnedSkins  []Skin
	Skin        Skin

	// Shop
	NextSkin     *Skin // nil when every skin is owned
	NextSkinCost int

	// HUD
	TimeLeft float64

	// Entity stores
	Player      Player
	Platforms   []Platform
	Humans      []Human
	Items       []Item
	Projectiles []Projectile
	Particles   []Particle
	Texts       []FloatingText
}

// Snapshot captures the current frame.
func (e *Engine) Snapshot(s *Session) Snapshot {
	w := &e.world
	snap := Snapshot{
		Tick:         w.Tick,
		Clock:        w.Clock,
		View:         w.View,
		State:        s.State,
		ReturnState:  s.SkinsReturnState(),
		Score:        s.Score,
		Round:        s.Round,
		TotalRounds:  e.cfg.Rounds.Total,
		Owned:        slices.Clone(s.Owned),
		Skin:         SkinByID(e.skins, s.Selected),
		NextSkinCost: e.SkinCost(s),
		TimeLeft:     w.TimeLeft,
		Player:       w.Player,
		Platforms:    slices.Clone(w.Platforms),
		Humans:       slices.Clone(w.Humans),
		Items:        slices.Clone(w.Items),
		Projectiles:  slices.Clone(w.Projectiles),
		Particles:    slices.Clone(w.Particles),
		Texts:        slices.Clone(w.Texts),
	}
	for _, id := range s.Owned {
		snap.OwnedSkins = append(snap.OwnedSkins, SkinByID(e.skins, id))
	}
	if id := s.NextSkinID(); id < len(e.skins) {
		next := e.skins[id]
		snap.NextSkin = &next
	}
	return snap
}

// CanBuy reports whether the shop's next skin is affordable.
func (snap *Snapshot) CanBuy() bool {
	return snap.NextSkin != nil && snap.Score >= snap.NextSkinCost
}

// BoostSeconds returns the remaining boost rounded up, as shown on the HUD.
func (snap *Snapshot) BoostSeconds() int {
	return int(math.Ceil(snap.Player.SpeedTimer))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	f := func(v float64) { mix(math.Float64bits(v)) }
	n := func(v int) { mix(uint64(v)) } //#nosec G115 -- hash computation

	n(snap.Score)
	n(snap.Round)
	n(len(snap.Owned))
	n(snap.Skin.ID)
	for _, r := range snap.State {
		n(int(r))
	}
	f(snap.TimeLeft)
	f(snap.Clock)

	p := snap.Player
	f(p.X)
	f(p.Y)
	f(p.VX)
	f(p.VY)
	f(p.HP)
	f(p.SpeedTimer)
	n(p.Frame)

	for _, plat := range snap.Platforms {
		f(plat.X)
		f(plat.Y)
		f(plat.W)
	}
	for _, hu := range snap.Humans {
		f(hu.X)
		f(hu.Y)
		f(hu.VX)
		n(hu.PanicLevel)
		f(hu.ShootCooldown)
	}
	for _, it := range snap.Items {
		f(it.X)
		f(it.Y)
		f(it.Life)
	}
	for _, pr := range snap.Projectiles {
		f(pr.X)
		f(pr.Y)
	}
	n(len(snap.Particles))
	n(len(snap.Texts))

	return h
}

// ClockText returns the round timer as m:ss.
func (snap *Snapshot) ClockText() string {
	return clock(snap.TimeLeft)
}
