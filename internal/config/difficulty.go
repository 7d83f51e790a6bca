package config

import "math"

// DifficultyManager calculates dynamic game parameters from round and score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for the run.
func (d *DifficultyManager) Level(round int, score int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "round":
		progress = float64(round) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// WeaponChanceFactor scales the per-tick weapon drop chance.
func (d *DifficultyManager) WeaponChanceFactor(round, score int) float64 {
	return 1.0 + d.Level(round, score)*d.cfg.Scaling.WeaponChance
}

// CooldownFactor scales the armed humans' shoot cooldown. Never below 0.25.
func (d *DifficultyManager) CooldownFactor(round, score int) float64 {
	return math.Max(1.0-d.Level(round, score)*d.cfg.Scaling.CooldownReduction, 0.25)
}

// HumanSpeedFactor scales the spawn speed of humans for a round.
func (d *DifficultyManager) HumanSpeedFactor(round int) float64 {
	return 1.0 + d.Level(round, 0)*d.cfg.Scaling.HumanSpeed
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
