// Package config provides YAML-based game configuration loading and
// difficulty management for Burger Man.
package config

import (
	"fmt"
	"strings"
)

// BurgerConfig contains all tunable parameters of the simulation.
type BurgerConfig struct {
	Physics     Physics          `yaml:"physics"`
	Player      Player           `yaml:"player"`
	Humans      Humans           `yaml:"humans"`
	Items       Items            `yaml:"items"`
	Projectiles Projectiles      `yaml:"projectiles"`
	Rounds      Rounds           `yaml:"rounds"`
	Shop        Shop             `yaml:"shop"`
	Effects     Effects          `yaml:"effects"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// Physics defines the per-tick integration constants.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	Friction     float64 `yaml:"friction"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	MaxDt        float64 `yaml:"max_dt"` // Seconds; larger frame deltas are clamped
}

// Player defines the burger's body and movement.
type Player struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MaxHP         float64 `yaml:"max_hp"`
	BaseSpeed     float64 `yaml:"base_speed"`
	BoostSpeed    float64 `yaml:"boost_speed"`
	BoostDuration float64 `yaml:"boost_duration"` // Seconds
	LandingWindow float64 `yaml:"landing_window"`
	RespawnMargin float64 `yaml:"respawn_margin"` // Distance below the viewport before respawning at the top
}

// Humans defines enemy bodies, AI radii and population rules.
type Humans struct {
	Width          float64  `yaml:"width"`
	Height         float64  `yaml:"height"`
	FallSpeed      float64  `yaml:"fall_speed"`
	LandingWindow  float64  `yaml:"landing_window"`
	BaseCount      int      `yaml:"base_count"`
	CountPerRound  float64  `yaml:"count_per_round"`
	BaseSpeed      float64  `yaml:"base_speed"`
	SpeedPerRound  float64  `yaml:"speed_per_round"`
	SpawnMarginY   float64  `yaml:"spawn_margin_y"` // Spawns stay this far above the bottom edge
	MinPopulation  int      `yaml:"min_population"`
	RespawnChance  float64  `yaml:"respawn_chance"`
	FleeRadius     float64  `yaml:"flee_radius"`
	FleeSpeed      float64  `yaml:"flee_speed"`
	WanderChance   float64  `yaml:"wander_chance"`
	WanderSpeed    float64  `yaml:"wander_speed"` // Wander vx is (r - 0.5) * wander_speed
	ShootRadius    float64  `yaml:"shoot_radius"`
	ShootCooldown  float64  `yaml:"shoot_cooldown"` // Seconds
	RetreatRadius  float64  `yaml:"retreat_radius"`
	RetreatSpeed   float64  `yaml:"retreat_speed"`
	EatScore       int      `yaml:"eat_score"`
	HealAmount     float64  `yaml:"heal_amount"`
	Colors         []string `yaml:"colors"`
	AnimationSlots int      `yaml:"animation_slots"`
}

// Items defines the falling pickups.
type Items struct {
	WeaponChance     float64 `yaml:"weapon_chance"`    // Per tick
	SpeedBoxChance   float64 `yaml:"speed_box_chance"` // Per tick
	WeaponWidth      float64 `yaml:"weapon_width"`
	WeaponHeight     float64 `yaml:"weapon_height"`
	WeaponLife       float64 `yaml:"weapon_life"` // Seconds
	SpeedBoxSize     float64 `yaml:"speed_box_size"`
	SpeedBoxLife     float64 `yaml:"speed_box_life"` // Seconds
	InitialFallSpeed float64 `yaml:"initial_fall_speed"`
	FallAccel        float64 `yaml:"fall_accel"`
	LandingWindow    float64 `yaml:"landing_window"`
}

// Projectiles defines enemy bullets.
type Projectiles struct {
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"`
	Damage float64 `yaml:"damage"`
	Color  string  `yaml:"color"`
}

// Rounds defines the round clock and platform layout.
type Rounds struct {
	Duration            float64 `yaml:"duration"` // Seconds
	Total               int     `yaml:"total"`
	GroundHeight        float64 `yaml:"ground_height"`
	BaseFloating        int     `yaml:"base_floating"`
	MaxExtraFloating    int     `yaml:"max_extra_floating"`
	RoundsPerExtra      int     `yaml:"rounds_per_extra"`
	PlatformHeight      float64 `yaml:"platform_height"`
	MinPlatformWidth    float64 `yaml:"min_platform_width"`
	PlatformWidthJitter float64 `yaml:"platform_width_jitter"`
	PlatformMarginX     float64 `yaml:"platform_margin_x"`
	TopPlatformOffset   float64 `yaml:"top_platform_offset"` // Lowest floating platform sits this far above the bottom
	LayoutMargin        float64 `yaml:"layout_margin"`       // Vertical space excluded from the platform sections
}

// Shop defines skin pricing.
type Shop struct {
	SkinCount int `yaml:"skin_count"`
	BaseCost  int `yaml:"base_cost"`
	CostStep  int `yaml:"cost_step"`
}

// Effects defines particle and floating text behavior.
type Effects struct {
	ParticleDecay      float64 `yaml:"particle_decay"`
	ParticleGravity    float64 `yaml:"particle_gravity"`
	ExplosionParticles int     `yaml:"explosion_particles"`
	ExplosionMinSpeed  float64 `yaml:"explosion_min_speed"`
	ExplosionMaxSpeed  float64 `yaml:"explosion_max_speed"`
	ExplosionMinSize   float64 `yaml:"explosion_min_size"`
	ExplosionMaxSize   float64 `yaml:"explosion_max_size"`
	JumpParticles      int     `yaml:"jump_particles"`
	JumpParticleLife   float64 `yaml:"jump_particle_life"`
	TextRiseSpeed      float64 `yaml:"text_rise_speed"`
	TextDamping        float64 `yaml:"text_damping"`
	TextDecay          float64 `yaml:"text_decay"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "round", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Round/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	WeaponChance      float64 `yaml:"weapon_chance"`      // Multiplier added to weapon spawn chance at max difficulty
	CooldownReduction float64 `yaml:"cooldown_reduction"` // Fraction removed from the shoot cooldown at max difficulty
	HumanSpeed        float64 `yaml:"human_speed"`        // Multiplier added to human spawn speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. The empty string means
// "no preset" and is not an error.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
