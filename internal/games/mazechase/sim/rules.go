package sim

import (
	"errors"
	"fmt"
)

// RePower decides what a power item does while a hunt is already running.
type RePower uint8

const (
	RePowerIgnore  RePower = iota // Points only; the session keeps its clock
	RePowerRestart                // Re-frighten everyone and restart the clock
)

// Rules holds every tunable of a game. Durations are in ticks.
type Rules struct {
	Lives      int
	StartLevel int
	HighScore  int

	SmallPoints      int
	PowerPoints      int
	AntagonistPoints int
	BonusPoints      []int // Indexed by bonus kind
	ExtraLifeScore   int

	HuntTicks       int
	StageClearTicks int
	ReadyTicks      int
	GameOverTicks   int
	KillFreezeTicks int   // Frozen ticks after a kill while its score shows
	BonusTicks      []int // Life tick at which bonus kind i appears

	ReleaseTicks    [NumAntagonists]int // Indexed by Identity
	MoveInterval    int
	IntervalStep    int
	MinInterval     int
	AlternatePeriod int
	ProximityRange  int

	RePower           RePower
	ReturningCollides bool
}

// DefaultRules returns the arcade rules.
func DefaultRules() Rules {
	return Rules{
		Lives:            3,
		StartLevel:       1,
		HighScore:        10000,
		SmallPoints:      10,
		PowerPoints:      50,
		AntagonistPoints: 200,
		BonusPoints:      []int{100, 300, 500},
		ExtraLifeScore:   10000,
		HuntTicks:        30,
		StageClearTicks:  10,
		ReadyTicks:       100,
		GameOverTicks:    150,
		KillFreezeTicks:  5,
		BonusTicks:       []int{100, 200, 300},
		ReleaseTicks:     [NumAntagonists]int{0, 20, 40, 60},
		MoveInterval:     16,
		IntervalStep:     1,
		MinInterval:      1,
		AlternatePeriod:  64,
		ProximityRange:   6,
		RePower:          RePowerIgnore,
	}
}

// IntervalForLevel returns the ticks between antagonist moves on a level.
func (r Rules) IntervalForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return max(r.MoveInterval-(level-1)*r.IntervalStep, r.MinInterval, 1)
}

func (r Rules) validate() error {
	if r.Lives < 1 {
		return errors.New("sim: rules need at least one life")
	}
	if r.StartLevel < 1 {
		return fmt.Errorf("sim: start level %d is not 1-based", r.StartLevel)
	}
	if len(r.BonusPoints) != len(r.BonusTicks) {
		return fmt.Errorf("sim: %d bonus values for %d bonus ticks", len(r.BonusPoints), len(r.BonusTicks))
	}
	if r.HuntTicks < 1 {
		return errors.New("sim: hunt ticks must be positive")
	}
	if r.KillFreezeTicks < 0 {
		return errors.New("sim: kill freeze ticks must not be negative")
	}
	return nil
}
