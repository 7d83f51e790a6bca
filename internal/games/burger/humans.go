package burger

import (
	"math"
	"slices"

	"github.com/vovakirdan/burgerman/internal/core"
)

// humanCount returns the initial population for a round.
func (e *Engine) humanCount(round int) int {
	hc := e.cfg.Humans
	return hc.BaseCount + int(math.Floor(float64(round)*hc.CountPerRound))
}

// spawnHumans adds count humans at random positions in the upper area.
func (e *Engine) spawnHumans(count, round int) {
	hc := e.cfg.Humans
	view := e.world.View
	speed := (hc.BaseSpeed + float64(round)*hc.SpeedPerRound) * e.difficulty.HumanSpeedFactor(round)

	for range count {
		h := Human{
			Box: core.NewBox(
				e.rng.Float64()*max(view.W-hc.Width, 0),
				e.rng.Float64()*max(view.H-hc.SpawnMarginY, 0),
				hc.Width,
				hc.Height,
			),
		}
		if e.rng.Float64() > 0.5 {
			h.VX = speed
		} else {
			h.VX = -speed
		}
		if len(hc.Colors) > 0 {
			h.Color = core.Color(hc.Colors[e.rng.Intn(len(hc.Colors))])
		}
		h.Phase = e.rng.Intn(max(hc.AnimationSlots, 1))
		e.world.Humans = append(e.world.Humans, h)
	}
}

// updateHumans runs gravity, weapon pickup, AI and eating for every human.
// Humans are visited in reverse index order so eaten ones can be removed in place.
func (e *Engine) updateHumans(s *Session, dt float64) {
	hc := e.cfg.Humans
	view := e.world.View
	player := &e.world.Player

	for i := len(e.world.Humans) - 1; i >= 0; i-- {
		h := &e.world.Humans[i]

		// Gravity and landing
		if plat, ok := findLanding(h.Box, e.world.Platforms, landing{window: hc.LandingWindow}); ok {
			h.Y = plat.Y - h.H
		} else {
			h.Y += hc.FallSpeed
		}

		// Weapon pickup
		if !h.HasWeapon {
			e.pickupWeapon(h)
		}

		dist := math.Hypot(h.X-player.X, h.Y-player.Y)
		away := 1.0
		if h.X < player.X {
			away = -1.0
		}

		if h.HasWeapon {
			h.ShootCooldown -= dt
			if dist < hc.ShootRadius && h.ShootCooldown <= 0 {
				e.fireAt(h)
				h.ShootCooldown = hc.ShootCooldown * e.difficulty.CooldownFactor(s.Round, s.Score)
			}
			if dist < hc.RetreatRadius {
				h.VX = away * hc.RetreatSpeed
			} else {
				h.VX = 0
			}
		} else {
			if dist < hc.FleeRadius {
				h.PanicLevel = 1
				h.VX = away * hc.FleeSpeed
			} else {
				h.PanicLevel = 0
				if e.rng.Float64() < hc.WanderChance {
					h.VX = (e.rng.Float64() - 0.5) * hc.WanderSpeed
				}
			}
		}

		// Integrate with wall bounce
		h.X += h.VX
		if h.X < 0 {
			h.X = 0
			h.VX = -h.VX
		}
		if h.X > view.W-h.W {
			h.X = view.W - h.W
			h.VX = -h.VX
		}

		// Eat
		if player.Overlaps(h.Box) {
			e.eat(s, h)
			e.world.Humans = slices.Delete(e.world.Humans, i, i+1)
		}
	}

	// Population floor
	if len(e.world.Humans) < hc.MinPopulation && e.rng.Float64() < hc.RespawnChance {
		e.spawnHumans(1, s.Round)
	}
}

// pickupWeapon gives the human the first overlapping weapon, scanning the
// item store from the end.
func (e *Engine) pickupWeapon(h *Human) {
	items := e.world.Items
	for j := len(items) - 1; j >= 0; j-- {
		if items[j].Kind != ItemWeapon || !h.Overlaps(items[j].Box) {
			continue
		}
		h.HasWeapon = true
		e.world.Items = slices.Delete(items, j, j+1)
		return
	}
}

// fireAt spawns a projectile from the human's center toward the player's center.
func (e *Engine) fireAt(h *Human) {
	pc := e.cfg.Projectiles
	hx, hy := h.Center()
	px, py := e.world.Player.Center()
	angle := math.Atan2(py-hy, px-hx)

	e.world.Projectiles = append(e.world.Projectiles, Projectile{
		Box:    core.NewBox(hx, hy, pc.Size, pc.Size),
		VX:     math.Cos(angle) * pc.Speed,
		VY:     math.Sin(angle) * pc.Speed,
		Color:  core.Color(pc.Color),
		Damage: pc.Damage,
	})
	e.emit(CueShoot)
}

// eat consumes a human: score, heal and feedback.
func (e *Engine) eat(s *Session, h *Human) {
	hc := e.cfg.Humans
	p := &e.world.Player
	cx, cy := h.Center()

	e.emit(CueEat)
	e.explosion(cx, cy, core.ColorRed)
	e.addText(h.X, h.Y, formatScore(hc.EatScore), core.Color("#fbbf24"))
	e.healPlayer(hc.HealAmount)
	e.addText(p.X, p.Y-40, "+HP", core.ColorGreen)

	s.Score += hc.EatScore
	p.Frame++
}
