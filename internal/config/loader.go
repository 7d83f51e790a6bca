package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "burger.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.burgerman/configs/burger.yaml -> ./configs/burger.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets.
func Load(customPath string) (BurgerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BurgerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BurgerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg BurgerConfig
	if err := yaml.Unmarshal(defaultBurgerYAML, &cfg); err != nil {
		return DefaultBurgerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the default configuration and validates it.
func Parse(data []byte) (BurgerConfig, error) {
	cfg := DefaultBurgerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c BurgerConfig) Validate() error {
	switch {
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive")
	case c.Player.MaxHP <= 0:
		return fmt.Errorf("config: player max_hp must be positive")
	case c.Physics.Friction < 0 || c.Physics.Friction > 1:
		return fmt.Errorf("config: friction must be in [0, 1], got %g", c.Physics.Friction)
	case c.Rounds.Total < 1:
		return fmt.Errorf("config: rounds total must be at least 1")
	case c.Rounds.Duration <= 0:
		return fmt.Errorf("config: round duration must be positive")
	case c.Shop.SkinCount < 1:
		return fmt.Errorf("config: skin_count must be at least 1")
	case c.Humans.Width <= 0 || c.Humans.Height <= 0:
		return fmt.Errorf("config: human size must be positive")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".burgerman", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BurgerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHP = 150
		cfg.Projectiles.Damage = 10
		cfg.Humans.ShootRadius = 300
	case DifficultyHard:
		cfg.Player.MaxHP = 80
		cfg.Projectiles.Damage = 20
		cfg.Difficulty.Scaling = ScalingConfig{
			WeaponChance:      1.0,
			CooldownReduction: 0.4,
			HumanSpeed:        0.5,
		}
	}
}
