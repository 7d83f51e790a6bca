package config

import (
	_ "embed"
)

//go:embed defaults/burger.yaml
var defaultBurgerYAML []byte

// DefaultBurgerConfig returns the hardcoded default configuration.
// It mirrors defaults/burger.yaml and is used when the embedded file fails to parse.
func DefaultBurgerConfig() BurgerConfig {
	return BurgerConfig{
		Physics: Physics{
			Gravity:      0.6,
			JumpImpulse:  -14,
			Friction:     0.85,
			MaxFallSpeed: 12,
			MaxDt:        0.1,
		},
		Player: Player{
			Width:         40,
			Height:        36,
			MaxHP:         100,
			BaseSpeed:     0.8,
			BoostSpeed:    1.4,
			BoostDuration: 12,
			LandingWindow: 15,
			RespawnMargin: 50,
		},
		Humans: Humans{
			Width:          16,
			Height:         24,
			FallSpeed:      4,
			LandingWindow:  10,
			BaseCount:      5,
			CountPerRound:  0.5,
			BaseSpeed:      2,
			SpeedPerRound:  0.1,
			SpawnMarginY:   200,
			MinPopulation:  3,
			RespawnChance:  0.02,
			FleeRadius:     200,
			FleeSpeed:      3.5,
			WanderChance:   0.05,
			WanderSpeed:    4,
			ShootRadius:    400,
			ShootCooldown:  2.0,
			RetreatRadius:  100,
			RetreatSpeed:   2,
			EatScore:       100,
			HealAmount:     20,
			Colors:         []string{"#f87171", "#60a5fa", "#4ade80", "#facc15", "#c084fc"},
			AnimationSlots: 10,
		},
		Items: Items{
			WeaponChance:     0.005,
			SpeedBoxChance:   0.001,
			WeaponWidth:      20,
			WeaponHeight:     10,
			WeaponLife:       20,
			SpeedBoxSize:     24,
			SpeedBoxLife:     30,
			InitialFallSpeed: 2,
			FallAccel:        0.2,
			LandingWindow:    10,
		},
		Projectiles: Projectiles{
			Size:   6,
			Speed:  8,
			Damage: 15,
			Color:  "#fde047",
		},
		Rounds: Rounds{
			Duration:            180,
			Total:               33,
			GroundHeight:        40,
			BaseFloating:        6,
			MaxExtraFloating:    5,
			RoundsPerExtra:      3,
			PlatformHeight:      20,
			MinPlatformWidth:    100,
			PlatformWidthJitter: 100,
			PlatformMarginX:     200,
			TopPlatformOffset:   150,
			LayoutMargin:        100,
		},
		Shop: Shop{
			SkinCount: 33,
			BaseCost:  1000,
			CostStep:  500,
		},
		Effects: Effects{
			ParticleDecay:      0.03,
			ParticleGravity:    0.1,
			ExplosionParticles: 12,
			ExplosionMinSpeed:  2,
			ExplosionMaxSpeed:  6,
			ExplosionMinSize:   3,
			ExplosionMaxSize:   9,
			JumpParticles:      5,
			JumpParticleLife:   0.8,
			TextRiseSpeed:      -2,
			TextDamping:        0.9,
			TextDecay:          0.02,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "round",
				MaxAt: 33,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBurgerYAML
}
