package config

import (
	_ "embed"
)

//go:embed defaults/mazechase.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze chase configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Scoring: MazeScoring{
			Small:      10,
			Power:      50,
			Antagonist: 200,
			Bonus:      []int{100, 300, 500},
			ExtraLife:  10000,
		},
		Timing: MazeTiming{
			HuntTicks:       30,
			StageClearTicks: 10,
			ReadyTicks:      100,
			GameOverTicks:   150,
			KillFreezeTicks: 5,
			BonusTicks:      []int{100, 200, 300},
		},
		Antagonists: MazeAntagonists{
			ReleaseTicks:    []int{0, 20, 40, 60},
			MoveInterval:    16,
			IntervalStep:    1,
			MinInterval:     1,
			AlternatePeriod: 64,
			ProximityRange:  6,
		},
		Rules: MazeRules{
			RePower:           RePowerIgnore,
			ReturningCollides: false,
		},
		Session: MazeSession{
			Lives:      3,
			HighScore:  10000,
			StartLevel: 1,
		},
	}
}
