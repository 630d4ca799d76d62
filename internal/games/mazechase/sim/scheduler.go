package sim

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// State is the scheduler's top-level phase.
type State uint8

const (
	StateAttract State = iota
	StatePlaying
	StateLifeTransition
	StateLevelTransition
	StateGameOver
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateAttract:
		return "attract"
	case StatePlaying:
		return "playing"
	case StateLifeTransition:
		return "ready"
	case StateLevelTransition:
		return "level-clear"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger routes transition logging to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDisplay sets the display port fed at the end of every tick.
func WithDisplay(d Display) Option {
	return func(s *Scheduler) {
		if d != nil {
			s.display = d
		}
	}
}

// Scheduler owns all game state and advances it one tick per Tick call.
// It is not safe for concurrent use; hosts pace it with their own timer.
type Scheduler struct {
	rules  Rules
	levels LevelSet
	level  Level
	board  *Board

	player      Actor
	antagonists [NumAntagonists]Antagonist
	hunt        HuntSession
	session     GameSession

	state     State
	demo      bool // Autopilot steers and scores are not recorded
	tick      int
	lifeTick  int // Ticks since the current life (or level) began
	stateTick int // Tick at which state was entered

	bonusKind int // Kind on the board, -1 when none
	frozen    int // Ticks left in the pause after a kill

	// Per-tick results.
	lifeLost bool
	kills    [NumAntagonists]int // Kill index + 1 per antagonist eaten this tick, kept through the kill pause
	chomp    bool

	display Display
	view    view
	logger  *log.Logger
}

// New validates the levels and rules and returns a scheduler in attract
// mode on the start level.
func New(levels LevelSet, rules Rules, opts ...Option) (*Scheduler, error) {
	if len(levels) == 0 {
		return nil, errors.New("sim: no levels")
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}
	for _, l := range levels {
		if _, err := l.Validate(); err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
	}

	s := &Scheduler{
		rules:     rules,
		levels:    levels,
		bonusKind: -1,
		display:   nopDisplay{},
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.session = NewGameSession(rules.Lives, rules.StartLevel, rules.HighScore)
	s.beginAttract()
	return s, nil
}

// SeedHighScore raises the high score to hs, e.g. from stored scores.
func (s *Scheduler) SeedHighScore(hs int) {
	if hs > s.session.HighScore {
		s.session.HighScore = hs
	}
}

// StartGame begins a scored game on the start level.
func (s *Scheduler) StartGame() {
	s.demo = false
	s.session.recordHighScore = true
	s.session.Reset(s.rules.Lives, s.rules.StartLevel)
	s.loadLevel()
	s.enter(StatePlaying)
}

// beginAttract starts an autopilot game that records nothing.
func (s *Scheduler) beginAttract() {
	s.demo = true
	s.session.recordHighScore = false
	s.session.Reset(s.rules.Lives, s.rules.StartLevel)
	s.loadLevel()
	s.enter(StateAttract)
}

// Tick runs one logic tick: (1) read input, (2) move the player,
// (3) release and move due antagonists, (4) collisions and scoring,
// (5) life, level and game-over transitions, (6) display deltas.
func (s *Scheduler) Tick(in Input) State {
	sample := in.Sample()
	s.tick++
	s.session.BeginTick()
	s.lifeLost = false
	if s.frozen == 0 {
		s.kills = [NumAntagonists]int{}
	}

	switch s.state {
	case StateAttract, StatePlaying:
		s.play(sample)
	case StateLifeTransition:
		s.ready(sample)
	case StateLevelTransition:
		s.stageClear()
	case StateGameOver:
		s.gameOver(sample)
	}

	s.flush()
	return s.state
}

func (s *Scheduler) play(sample InputSample) {
	if s.demo && sample.Pressed(ButtonStart) {
		s.StartGame()
		return
	}
	if s.frozen > 0 {
		// Kill scores stay up; the hunt clock keeps running.
		s.frozen--
		return
	}
	s.lifeTick++
	s.spawnBonus()

	s.movePlayer(sample)
	s.moveAntagonists()

	s.collide()
	if !s.lifeLost {
		s.pickup()
		if s.session.CheckExtraLife(s.rules.ExtraLifeScore) {
			s.logger.Debug("extra life", "score", s.session.Score, "lives", s.session.Lives)
		}
	}

	switch {
	case s.lifeLost:
		s.loseLife()
	default:
		if s.killed() {
			s.frozen = s.rules.KillFreezeTicks
		}
		s.advanceHunt()
		if s.board.Remaining() == 0 {
			s.clearLevel()
		}
	}
}

func (s *Scheduler) movePlayer(sample InputSample) {
	from := s.player.Pos
	next := from
	if s.demo {
		next = Autopilot(s.board, from, s.player.Forbidden())
	} else if d := sample.Intent(); d != DirNone && s.board.CanMove(from, d) {
		next = from.Step(d)
	}
	if next != from {
		s.player.MoveTo(next)
		s.chomp = !s.chomp
	}
}

func (s *Scheduler) moveAntagonists() {
	interval := s.rules.IntervalForLevel(s.session.Level)
	tr := s.targetRules()
	for i := range s.antagonists {
		a := &s.antagonists[i]
		if a.Mode == ModeDormant {
			if s.lifeTick < a.ReleaseTick {
				continue
			}
			s.apply(i, EventRelease)
			a.Place(s.level.Base, DirNorth)
			a.moveCounter = 0
			s.joinHunt(i)
		}
		if s.reachedBase(i) {
			continue
		}
		if !a.due(interval) {
			continue
		}
		a.MoveTo(a.NextStep(s.board, a.Target(s.player, s.tick, tr)))
		s.reachedBase(i)
	}
}

func (s *Scheduler) reachedBase(i int) bool {
	a := &s.antagonists[i]
	if a.Mode != ModeReturning || a.Pos != s.level.Base {
		return false
	}
	s.apply(i, EventReachedBase)
	a.moveCounter = 0
	return true
}

func (s *Scheduler) targetRules() TargetRules {
	return TargetRules{
		Base:            s.level.Base,
		AlternatePeriod: s.rules.AlternatePeriod,
		ProximityRange:  s.rules.ProximityRange,
	}
}

// apply runs the mode transition for antagonist i and logs changes.
func (s *Scheduler) apply(i int, e Event) {
	a := &s.antagonists[i]
	from := a.Mode
	if a.Apply(e) {
		s.logger.Debug("mode", "identity", a.Identity, "event", e, "from", from, "to", a.Mode, "tick", s.tick)
	}
}

func (s *Scheduler) spawnBonus() {
	for kind, at := range s.rules.BonusTicks {
		if s.lifeTick != at {
			continue
		}
		if s.bonusKind >= 0 {
			s.board.RemoveBonus(s.level.Bonus)
			s.bonusKind = -1
		}
		if s.board.PlaceBonus(s.level.Bonus) {
			s.bonusKind = kind
		}
		s.view.mark(s.level.Bonus)
	}
}

func (s *Scheduler) resetActors() {
	s.player.Place(s.level.PlayerStart, s.level.PlayerFace)
	for i := range s.antagonists {
		id := Identity(i)
		s.antagonists[i] = Antagonist{
			Identity:    id,
			Mode:        ModeDormant,
			ReleaseTick: s.rules.ReleaseTicks[id],
			Home:        s.level.Homes[id],
			Corner:      s.level.Corners[id],
		}
		s.antagonists[i].Place(s.level.Homes[id], DirNorth)
	}
	if s.bonusKind >= 0 {
		s.board.RemoveBonus(s.level.Bonus)
		s.bonusKind = -1
		s.view.mark(s.level.Bonus)
	}
	s.hunt.End()
	s.lifeTick = 0
}

func (s *Scheduler) loadLevel() {
	s.level = s.levels.Level(s.session.Level)
	b, err := Build(s.level.Layout)
	if err != nil {
		panic(fmt.Sprintf("sim: level %d: %v", s.session.Level, err))
	}
	s.board = b
	s.bonusKind = -1
	s.session.ConsumablesRemaining = b.Remaining()
	s.resetActors()
	s.view.invalidate()
}

func (s *Scheduler) enter(st State) {
	if st != s.state {
		s.logger.Debug("state", "from", s.state, "to", st, "tick", s.tick)
	}
	s.state = st
	s.stateTick = s.tick
	s.frozen = 0
}

func (s *Scheduler) loseLife() {
	s.logger.Debug("life lost", "lives", s.session.Lives-1, "score", s.session.Score, "tick", s.tick)
	if !s.session.LoseLife() {
		s.endGame()
		return
	}
	s.resetActors()
	s.enter(StateLifeTransition)
}

func (s *Scheduler) endGame() {
	s.session.FinalScore = s.session.Score
	s.session.FinalLevel = s.session.Level
	s.logger.Debug("game over", "score", s.session.FinalScore, "level", s.session.Level, "demo", s.demo)
	if s.demo {
		s.beginAttract()
		return
	}
	s.session.Reset(s.rules.Lives, s.rules.StartLevel)
	s.loadLevel()
	s.enter(StateGameOver)
}

func (s *Scheduler) clearLevel() {
	s.logger.Debug("level clear", "level", s.session.Level, "score", s.session.Score)
	s.endHunt()
	s.session.LevelClearInProgress = true
	s.enter(StateLevelTransition)
}

// ready holds the READY pause until start is pressed or it times out.
func (s *Scheduler) ready(sample InputSample) {
	if s.demo && sample.Pressed(ButtonStart) {
		s.StartGame()
		return
	}
	if !sample.Pressed(ButtonStart) && s.tick-s.stateTick < s.rules.ReadyTicks {
		return
	}
	s.session.PlayerAlive = true
	if s.demo {
		s.enter(StateAttract)
	} else {
		s.enter(StatePlaying)
	}
}

// stageClear flashes the walls, then loads the next level.
func (s *Scheduler) stageClear() {
	if s.tick-s.stateTick < s.rules.StageClearTicks {
		return
	}
	s.session.Level++
	s.session.LevelClearInProgress = false
	s.loadLevel()
	s.enter(StateLifeTransition)
}

func (s *Scheduler) gameOver(sample InputSample) {
	switch {
	case sample.Pressed(ButtonStart):
		s.StartGame()
	case sample.Pressed(ButtonDemo), s.tick-s.stateTick >= s.rules.GameOverTicks:
		s.beginAttract()
	}
}

// State returns the current top-level state.
func (s *Scheduler) State() State { return s.state }

// Demo reports whether the autopilot is playing.
func (s *Scheduler) Demo() bool { return s.demo }

// TickCount returns the number of ticks run so far.
func (s *Scheduler) TickCount() int { return s.tick }

// LifeTick returns the ticks since the current life began.
func (s *Scheduler) LifeTick() int { return s.lifeTick }

// Board returns the live board. Callers must not modify it.
func (s *Scheduler) Board() *Board { return s.board }

// Level returns the current level data.
func (s *Scheduler) Level() Level { return s.level }

// Player returns a copy of the player actor.
func (s *Scheduler) Player() Actor { return s.player }

// Antagonist returns a copy of the antagonist with the given identity.
func (s *Scheduler) Antagonist(id Identity) Antagonist { return s.antagonists[id] }

// Hunt returns a copy of the hunt session.
func (s *Scheduler) Hunt() HuntSession { return s.hunt }

// Session returns a copy of the game session.
func (s *Scheduler) Session() GameSession { return s.session }

// Rules returns the rules the scheduler runs with.
func (s *Scheduler) Rules() Rules { return s.rules }
