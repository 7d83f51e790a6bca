package burger

import "github.com/vovakirdan/burgerman/internal/core"

// landing describes a body settling onto a platform top.
type landing struct {
	window     float64                 // Accepted depth of the bottom edge below the top
	extendByH  bool                    // Add the platform height to the window (player only)
	acceptPrev func(top float64) bool // Optional check on the previous position
}

// findLanding returns the platform the body settles on this tick.
// Candidates overlap horizontally and have the body's bottom inside the
// landing window. When several match, the surface nearest to the body's
// bottom wins; ties keep the earlier platform.
func findLanding(body core.Box, platforms []Platform, rule landing) (Platform, bool) {
	var (
		best     Platform
		bestDist float64
		found    bool
	)
	bottom := body.Bottom()
	for _, plat := range platforms {
		if !body.OverlapsX(plat.Box) {
			continue
		}
		limit := plat.Y + rule.window
		if rule.extendByH {
			limit += plat.H
		}
		if bottom < plat.Y || bottom > limit {
			continue
		}
		if rule.acceptPrev != nil && !rule.acceptPrev(plat.Y) {
			continue
		}
		dist := bottom - plat.Y
		if !found || dist < bestDist {
			best, bestDist, found = plat, dist, true
		}
	}
	return best, found
}

// updatePlayer advances the burger by one tick.
func (e *Engine) updatePlayer(dt float64, in core.Controls) {
	p := &e.world.Player
	phys := e.cfg.Physics
	view := e.world.View

	// Boost countdown
	if p.SpeedTimer > 0 {
		p.SpeedTimer = max(p.SpeedTimer-dt, 0)
	}
	speed := e.cfg.Player.BaseSpeed
	if p.Boosted() {
		speed = e.cfg.Player.BoostSpeed
	}

	// Horizontal input and friction
	if in.Left {
		p.VX -= speed
		p.FacingRight = false
	}
	if in.Right {
		p.VX += speed
		p.FacingRight = true
	}
	p.VX *= phys.Friction

	// Gravity and jump
	p.VY = min(p.VY+phys.Gravity, phys.MaxFallSpeed)
	if in.Jump && p.Grounded {
		p.VY = phys.JumpImpulse
		p.Grounded = false
		e.emit(CueJump)
		e.jumpBurst(p.X+p.W/2, p.Bottom())
	}

	// Integrate
	p.X += p.VX
	p.Y += p.VY

	// Wrap horizontally
	if p.X > view.W {
		p.X = -p.W
	}
	if p.Right() < 0 {
		p.X = view.W
	}

	// Land
	p.Grounded = false
	if p.VY >= 0 {
		prevBottom := p.Bottom() - p.VY
		rule := landing{
			window:    e.cfg.Player.LandingWindow,
			extendByH: true,
			acceptPrev: func(top float64) bool {
				return prevBottom <= top+e.cfg.Player.LandingWindow
			},
		}
		if plat, ok := findLanding(p.Box, e.world.Platforms, rule); ok {
			p.Y = plat.Y - p.H
			p.VY = 0
			p.Grounded = true
		}
	}

	// Respawn at the top after falling out of the world
	if p.Y > view.H+e.cfg.Player.RespawnMargin {
		p.Y = 0
		p.VY = 0
	}
}

// resetPlayer centers the burger and restores it for a new round.
func (e *Engine) resetPlayer() {
	pc := e.cfg.Player
	view := e.world.View
	facing := e.world.Player.FacingRight
	frame := e.world.Player.Frame
	e.world.Player = Player{
		Box:         core.NewBox(view.W/2, view.H/2, pc.Width, pc.Height),
		FacingRight: facing,
		Frame:       frame,
		HP:          pc.MaxHP,
		MaxHP:       pc.MaxHP,
	}
}

// damagePlayer applies a hit and reports whether the player died.
func (e *Engine) damagePlayer(amount float64) bool {
	p := &e.world.Player
	p.HP = max(p.HP-amount, 0)
	return p.HP <= 0
}

// healPlayer restores hit points up to the maximum.
func (e *Engine) healPlayer(amount float64) {
	p := &e.world.Player
	p.HP = min(p.HP+amount, p.MaxHP)
}
