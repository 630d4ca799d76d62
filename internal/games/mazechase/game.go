// Package mazechase adapts the maze chase simulation to the arcade
// platform: it loads rules and levels, feeds keyboard actions to the
// scheduler as stick samples and paints the display port onto a Screen.
package mazechase

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mazechase/internal/config"
	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/levels"
	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/sim"
	"github.com/vovakirdan/tui-mazechase/internal/registry"
)

// Mode selects how a game begins after Reset.
type Mode int

const (
	ModeArcade Mode = iota // Starts a scored game immediately
	ModeAttract            // Starts with the autopilot; Start begins a game
)

// Package-level settings applied on every Reset, set via CLI flags.
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
	levelsDir          string
	logger             *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// SetStartLevel sets the starting level. 0 keeps the configured one.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetLevelsDir loads mazes from dir instead of the built-in set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetLogger routes simulation transition logs to l.
func SetLogger(l *log.Logger) {
	logger = l
}

// LoadConfig loads the maze config and applies the CLI overrides.
func LoadConfig() (config.MazeConfig, error) {
	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyMazePreset(&cfg, difficultyPreset)
	}
	if selectedStartLevel > 0 {
		cfg.Session.StartLevel = selectedStartLevel
	}
	return cfg, nil
}

// RulesFromConfig converts a validated config into simulation rules.
func RulesFromConfig(cfg config.MazeConfig) sim.Rules {
	r := sim.Rules{
		Lives:             cfg.Session.Lives,
		StartLevel:        cfg.Session.StartLevel,
		HighScore:         cfg.Session.HighScore,
		SmallPoints:       cfg.Scoring.Small,
		PowerPoints:       cfg.Scoring.Power,
		AntagonistPoints:  cfg.Scoring.Antagonist,
		BonusPoints:       append([]int(nil), cfg.Scoring.Bonus...),
		ExtraLifeScore:    cfg.Scoring.ExtraLife,
		HuntTicks:         cfg.Timing.HuntTicks,
		StageClearTicks:   cfg.Timing.StageClearTicks,
		ReadyTicks:        cfg.Timing.ReadyTicks,
		GameOverTicks:     cfg.Timing.GameOverTicks,
		KillFreezeTicks:   cfg.Timing.KillFreezeTicks,
		BonusTicks:        append([]int(nil), cfg.Timing.BonusTicks...),
		MoveInterval:      cfg.Antagonists.MoveInterval,
		IntervalStep:      cfg.Antagonists.IntervalStep,
		MinInterval:       cfg.Antagonists.MinInterval,
		AlternatePeriod:   cfg.Antagonists.AlternatePeriod,
		ProximityRange:    cfg.Antagonists.ProximityRange,
		ReturningCollides: cfg.Rules.ReturningCollides,
	}
	copy(r.ReleaseTicks[:], cfg.Antagonists.ReleaseTicks)
	if cfg.Rules.RePower == config.RePowerRestart {
		r.RePower = sim.RePowerRestart
	}
	return r
}

// NewScheduler builds a scheduler from the configured rules and levels.
// It starts in attract mode.
func NewScheduler(opts ...sim.Option) (*sim.Scheduler, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	set, err := levels.Load(levelsDir)
	if err != nil {
		return nil, fmt.Errorf("mazechase: load levels: %w", err)
	}
	opts = append([]sim.Option{sim.WithLogger(logger)}, opts...)
	return sim.New(set, RulesFromConfig(cfg), opts...)
}

// Game implements registry.Game on top of a sim.Scheduler.
type Game struct {
	mode    Mode
	sched   *sim.Scheduler
	display *screenDisplay
	err     error // Load failure shown instead of the board

	held      sim.Dir // Stick direction, kept until another is pressed
	paused    bool
	highScore int // Best score across resets of this instance
}

// New creates a game that starts scoring as soon as it is reset.
func New() *Game {
	return &Game{mode: ModeArcade}
}

// NewAttract creates a game that opens in attract mode.
func NewAttract() *Game {
	return &Game{mode: ModeAttract}
}

func init() {
	registry.Register("mazechase", func() registry.Game {
		return New()
	})
	registry.Register("mazechase_demo", func() registry.Game {
		return NewAttract()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeAttract {
		return "mazechase_demo"
	}
	return "mazechase"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeAttract {
		return "Maze Chase (Attract)"
	}
	return "Maze Chase"
}

// Reset rebuilds the scheduler from the current config and levels.
// The screen size is read at render time.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.held = sim.DirNone
	g.paused = false
	g.display = newScreenDisplay()

	sched, err := NewScheduler(sim.WithDisplay(g.display))
	if err != nil {
		g.sched, g.err = nil, err
		return
	}
	g.sched, g.err = sched, nil
	g.sched.SeedHighScore(g.highScore)
	if g.mode == ModeArcade {
		g.sched.StartGame()
	}
}

// SeedHighScore raises the displayed high score, e.g. from stored scores.
func (g *Game) SeedHighScore(hs int) {
	g.highScore = max(g.highScore, hs)
	if g.sched != nil {
		g.sched.SeedHighScore(hs)
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sched == nil {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.sched.Tick(g.sample(in))
		g.highScore = max(g.highScore, g.sched.Session().HighScore)
	}
	return core.StepResult{State: g.State()}
}

// sample turns the frame's actions into one stick reading.
func (g *Game) sample(in core.InputFrame) sim.InputSample {
	switch {
	case in.Has(core.ActionUp):
		g.held = sim.DirNorth
	case in.Has(core.ActionDown):
		g.held = sim.DirSouth
	case in.Has(core.ActionLeft):
		g.held = sim.DirWest
	case in.Has(core.ActionRight):
		g.held = sim.DirEast
	}
	s := sim.Hold(g.held)
	if in.Has(core.ActionStart) || in.Has(core.ActionRestart) {
		s.Buttons |= sim.ButtonStart
	}
	if in.Has(core.ActionDemo) {
		s.Buttons |= sim.ButtonDemo
	}
	return s
}

// State returns the current game state. Once a game ends, Score and Level
// hold the final results until attract mode resumes.
func (g *Game) State() core.GameState {
	if g.sched == nil {
		return core.GameState{HighScore: g.highScore, GameOver: g.err != nil}
	}
	sess := g.sched.Session()
	st := core.GameState{
		Score:     sess.Score,
		HighScore: sess.HighScore,
		Level:     sess.Level,
		Paused:    g.paused,
		Demo:      g.sched.Demo(),
	}
	if g.sched.State() == sim.StateGameOver {
		st.Score = sess.FinalScore
		st.Level = sess.FinalLevel
		st.GameOver = true
	}
	return st
}

// Snapshot returns the simulation state for determinism checks.
func (g *Game) Snapshot() sim.Snapshot {
	if g.sched == nil {
		return sim.Snapshot{}
	}
	return g.sched.Snapshot(false)
}

// Err returns the load error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}
