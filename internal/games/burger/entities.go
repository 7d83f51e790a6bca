package burger

import "github.com/vovakirdan/burgerman/internal/core"

// Player is the burger. It survives across rounds; StartRound re-centers it.
type Player struct {
	core.Box
	VX, VY      float64
	Grounded    bool
	FacingRight bool
	Frame       int // Humans eaten, drives the seed blink animation
	HP          float64
	MaxHP       float64
	SpeedTimer  float64 // Seconds of boost left, 0 = inactive
}

// Boosted reports whether the speed boost is active.
func (p *Player) Boosted() bool {
	return p.SpeedTimer > 0
}

// PlatformKind tags a platform as the ground plane or a floating ledge.
type PlatformKind string

const (
	PlatformGround   PlatformKind = "ground"
	PlatformFloating PlatformKind = "floating"
)

// Platform is an immutable surface for one round.
type Platform struct {
	core.Box
	Kind PlatformKind
}

// Human is an enemy that flees, wanders, or shoots once armed.
type Human struct {
	core.Box
	VX            float64
	PanicLevel    int // 0 calm, 1 fleeing
	Color         core.Color
	Phase         int // Animation offset
	HasWeapon     bool
	ShootCooldown float64 // Seconds until the next shot, only used while armed
}

// Panicked reports whether the human is fleeing the player.
func (h *Human) Panicked() bool {
	return h.PanicLevel > 0
}

// ItemKind identifies a pickup.
type ItemKind string

const (
	ItemWeapon   ItemKind = "weapon"
	ItemSpeedBox ItemKind = "speed_box"
)

// Item is a falling pickup with a finite lifetime.
type Item struct {
	core.Box
	Kind     ItemKind
	VY       float64
	OnGround bool
	Life     float64 // Seconds
}

// Projectile is a bullet fired by an armed human.
type Projectile struct {
	core.Box
	VX, VY float64
	Color  core.Color
	Damage float64
}

// Particle is a purely visual spark.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // Normalized [0, 1]
	Color  core.Color
	Size   float64
}

// FloatingText is a short label drifting upward, like "+100".
type FloatingText struct {
	X, Y  float64
	VY    float64
	Text  string
	Color core.Color
	Life  float64 // Normalized [0, 1]
}
