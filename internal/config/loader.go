package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMaze loads the maze chase configuration.
// Search order: customPath -> ~/.mazechase/configs/mazechase.yaml -> ./configs/mazechase.yaml -> embedded default
//
// Files are decoded over DefaultMazeConfig, so a partial file only
// overrides the keys it names.
func LoadMaze(customPath string) (MazeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultMazeConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMaze(data)
		if err != nil {
			return DefaultMazeConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("mazechase.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseMaze(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "mazechase.yaml")); err == nil {
		if cfg, err := parseMaze(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseMaze(defaultMazeYAML)
	if err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseMaze(data []byte) (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports values the simulation cannot run with.
func (c MazeConfig) Validate() error {
	if len(c.Antagonists.ReleaseTicks) != 4 {
		return fmt.Errorf("antagonists.release_ticks: want 4 values, got %d", len(c.Antagonists.ReleaseTicks))
	}
	if len(c.Scoring.Bonus) != len(c.Timing.BonusTicks) {
		return fmt.Errorf("scoring.bonus has %d values but timing.bonus_ticks has %d",
			len(c.Scoring.Bonus), len(c.Timing.BonusTicks))
	}
	if c.Antagonists.MoveInterval < 1 || c.Antagonists.MinInterval < 1 {
		return fmt.Errorf("antagonists: move_interval and min_interval must be at least 1")
	}
	if c.Timing.KillFreezeTicks < 0 {
		return fmt.Errorf("timing.kill_freeze_ticks must not be negative")
	}
	if c.Session.Lives < 1 {
		return fmt.Errorf("session.lives must be at least 1")
	}
	if c.Session.StartLevel < 1 {
		return fmt.Errorf("session.start_level must be at least 1")
	}
	switch c.Rules.RePower {
	case RePowerIgnore, RePowerRestart:
	default:
		return fmt.Errorf("rules.repower: unknown policy %q", c.Rules.RePower)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazechase", "configs", filename)
}
