package config

// ApplyMazePreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 5
		cfg.Timing.HuntTicks = 45
		cfg.Antagonists.MoveInterval = 20
	case DifficultyHard:
		cfg.Session.Lives = 2
		cfg.Timing.HuntTicks = 20
		cfg.Antagonists.MoveInterval = 10
	case DifficultyFixed:
		cfg.Antagonists.IntervalStep = 0
	}
}
