package burger

import (
	"math"
	"slices"
	"strconv"

	"github.com/vovakirdan/burgerman/internal/core"
)

// explosion emits a radial ring of particles.
func (e *Engine) explosion(x, y float64, color core.Color) {
	fx := e.cfg.Effects
	n := fx.ExplosionParticles
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		speed := fx.ExplosionMinSpeed + e.rng.Float64()*(fx.ExplosionMaxSpeed-fx.ExplosionMinSpeed)
		e.world.Particles = append(e.world.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  1,
			Color: color,
			Size:  fx.ExplosionMinSize + e.rng.Float64()*(fx.ExplosionMaxSize-fx.ExplosionMinSize),
		})
	}
}

// jumpBurst kicks up a few white particles at the burger's feet.
func (e *Engine) jumpBurst(x, y float64) {
	fx := e.cfg.Effects
	for range fx.JumpParticles {
		e.world.Particles = append(e.world.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    (e.rng.Float64() - 0.5) * 4,
			VY:    e.rng.Float64() * -2,
			Life:  fx.JumpParticleLife,
			Color: core.ColorWhite,
			Size:  e.rng.Float64() * 4,
		})
	}
}

// addText spawns a floating label.
func (e *Engine) addText(x, y float64, text string, color core.Color) {
	e.world.Texts = append(e.world.Texts, FloatingText{
		X:     x,
		Y:     y,
		VY:    e.cfg.Effects.TextRiseSpeed,
		Text:  text,
		Color: color,
		Life:  1,
	})
}

// updateEffects advances particles and floating texts, dropping dead ones.
func (e *Engine) updateEffects() {
	fx := e.cfg.Effects

	for i := len(e.world.Particles) - 1; i >= 0; i-- {
		pt := &e.world.Particles[i]
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.VY += fx.ParticleGravity
		pt.Life -= fx.ParticleDecay
		if pt.Life <= 0 {
			e.world.Particles = slices.Delete(e.world.Particles, i, i+1)
		}
	}

	for i := len(e.world.Texts) - 1; i >= 0; i-- {
		ft := &e.world.Texts[i]
		ft.Y += ft.VY
		ft.VY *= fx.TextDamping
		ft.Life -= fx.TextDecay
		if ft.Life <= 0 {
			e.world.Texts = slices.Delete(e.world.Texts, i, i+1)
		}
	}
}

// formatScore renders a score reward as "+100".
func formatScore(n int) string {
	return "+" + strconv.Itoa(n)
}
