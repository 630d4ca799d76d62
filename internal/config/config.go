// Package config provides YAML-based game configuration loading and
// difficulty management for the maze chase game.
package config

// MazeConfig contains all tunable parameters of the maze chase game.
type MazeConfig struct {
	Scoring     MazeScoring     `yaml:"scoring"`
	Timing      MazeTiming      `yaml:"timing"`
	Antagonists MazeAntagonists `yaml:"antagonists"`
	Rules       MazeRules       `yaml:"rules"`
	Session     MazeSession     `yaml:"session"`
}

// MazeScoring defines point values.
type MazeScoring struct {
	Small      int   `yaml:"small"`
	Power      int   `yaml:"power"`
	Antagonist int   `yaml:"antagonist"` // Base value, doubled per kill in a hunt
	Bonus      []int `yaml:"bonus"`      // One value per bonus item, in appearance order
	ExtraLife  int   `yaml:"extra_life"` // Score threshold for the single extra life
}

// MazeTiming defines durations in ticks (50 ticks per second).
type MazeTiming struct {
	HuntTicks       int   `yaml:"hunt_ticks"`        // Length of each hunt phase
	StageClearTicks int   `yaml:"stage_clear_ticks"` // Wall flash after a level clear
	ReadyTicks      int   `yaml:"ready_ticks"`       // READY pause after a life loss
	GameOverTicks   int   `yaml:"game_over_ticks"`   // GAME OVER banner before attract resumes
	KillFreezeTicks int   `yaml:"kill_freeze_ticks"` // Play stops while a kill score shows
	BonusTicks      []int `yaml:"bonus_ticks"`       // Life ticks at which bonus items appear
}

// MazeAntagonists defines antagonist release and pacing.
type MazeAntagonists struct {
	ReleaseTicks    []int `yaml:"release_ticks"`    // Per identity: direct, ambush, alternating, proximity
	MoveInterval    int   `yaml:"move_interval"`    // Ticks between moves on level 1
	IntervalStep    int   `yaml:"interval_step"`    // Reduction per level
	MinInterval     int   `yaml:"min_interval"`     // Fastest allowed interval
	AlternatePeriod int   `yaml:"alternate_period"` // Tick bit toggling the alternating target
	ProximityRange  int   `yaml:"proximity_range"`  // Manhattan distance for the proximity target
}

// MazeRules holds policy flags for behavior the game leaves open.
type MazeRules struct {
	RePower           string `yaml:"repower"`            // "ignore" or "restart"
	ReturningCollides bool   `yaml:"returning_collides"` // Returning antagonists cost a life
}

// MazeSession defines per-game starting values.
type MazeSession struct {
	Lives      int `yaml:"lives"`
	HighScore  int `yaml:"high_score"`  // Shown until a better score is stored
	StartLevel int `yaml:"start_level"` // 1-based
}

// RePower policies.
const (
	RePowerIgnore  = "ignore"
	RePowerRestart = "restart"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables per-level speedup.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset maps a flag value to a preset. Unknown names yield false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
