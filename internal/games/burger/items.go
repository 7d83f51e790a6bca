package burger

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/burgerman/internal/core"
)

// spawnItems rolls the two independent per-tick item triggers.
func (e *Engine) spawnItems(s *Session) {
	ic := e.cfg.Items
	view := e.world.View

	if e.rng.Float64() < ic.WeaponChance*e.difficulty.WeaponChanceFactor(s.Round, s.Score) {
		e.world.Items = append(e.world.Items, Item{
			Box:  core.NewBox(e.rng.Float64()*max(view.W-ic.WeaponWidth, 0), -ic.WeaponWidth, ic.WeaponWidth, ic.WeaponHeight),
			Kind: ItemWeapon,
			VY:   ic.InitialFallSpeed,
			Life: ic.WeaponLife,
		})
	}
	if e.rng.Float64() < ic.SpeedBoxChance {
		e.world.Items = append(e.world.Items, Item{
			Box:  core.NewBox(e.rng.Float64()*max(view.W-ic.SpeedBoxSize, 0), -ic.SpeedBoxSize, ic.SpeedBoxSize, ic.SpeedBoxSize),
			Kind: ItemSpeedBox,
			VY:   ic.InitialFallSpeed,
			Life: ic.SpeedBoxLife,
		})
	}
}

// updateItems moves falling items, expires old ones and applies player pickups.
func (e *Engine) updateItems(dt float64) {
	ic := e.cfg.Items
	view := e.world.View
	p := &e.world.Player

	for i := len(e.world.Items) - 1; i >= 0; i-- {
		item := &e.world.Items[i]

		// Fall and land
		if !item.OnGround {
			item.Y += item.VY
			item.VY += ic.FallAccel
			if item.VY > 0 {
				if plat, ok := findLanding(item.Box, e.world.Platforms, landing{window: ic.LandingWindow}); ok {
					item.Y = plat.Y - item.H
					item.VY = 0
					item.OnGround = true
				}
			}
			if item.Y > view.H {
				e.world.Items = slices.Delete(e.world.Items, i, i+1)
				continue
			}
		}

		// Expire
		item.Life -= dt
		if item.Life <= 0 {
			e.world.Items = slices.Delete(e.world.Items, i, i+1)
			continue
		}

		// Player pickup; weapons are for humans only
		if item.Kind == ItemSpeedBox && p.Overlaps(item.Box) {
			p.SpeedTimer = e.cfg.Player.BoostDuration
			e.addText(p.X, p.Y-20, "SPEED!", core.Color("#00ffff"))
			e.emit(CuePowerup)
			e.world.Items = slices.Delete(e.world.Items, i, i+1)
		}
	}
}

// updateProjectiles moves bullets and resolves hits on the player.
// It reports whether the player died this tick.
func (e *Engine) updateProjectiles() bool {
	view := e.world.View
	p := &e.world.Player

	for i := len(e.world.Projectiles) - 1; i >= 0; i-- {
		pr := &e.world.Projectiles[i]
		pr.X += pr.VX
		pr.Y += pr.VY

		// Bounds
		if pr.X < 0 || pr.X > view.W || pr.Y < 0 || pr.Y > view.H {
			e.world.Projectiles = slices.Delete(e.world.Projectiles, i, i+1)
			continue
		}

		// Hit
		if pr.Overlaps(p.Box) {
			damage := pr.Damage
			e.emit(CueHit)
			e.explosion(pr.X, pr.Y, core.ColorRed)
			e.addText(p.X, p.Y, fmt.Sprintf("-%g", damage), core.ColorRed)
			e.world.Projectiles = slices.Delete(e.world.Projectiles, i, i+1)
			if e.damagePlayer(damage) {
				return true
			}
		}
	}
	return false
}
