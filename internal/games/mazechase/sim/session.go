package sim

// HuntPhase is the stage of a hunt session.
type HuntPhase uint8

const (
	PhaseNone HuntPhase = iota
	PhaseFrightened
	PhaseWarning
)

// String returns the string representation of a hunt phase.
func (p HuntPhase) String() string {
	switch p {
	case PhaseFrightened:
		return "frightened"
	case PhaseWarning:
		return "warning"
	default:
		return "none"
	}
}

// HuntSession is the level-wide window opened by a power item.
type HuntSession struct {
	Active     bool
	Phase      HuntPhase
	PhaseStart int // Tick at which the current phase began
	Kills      int // Antagonists eaten this session
}

// Start opens a session at tick. Kills carry over when restarting a
// session that is still active.
func (h *HuntSession) Start(tick int) {
	if !h.Active {
		h.Kills = 0
	}
	h.Active = true
	h.Phase = PhaseFrightened
	h.PhaseStart = tick
}

// Advance moves the session clock to tick and returns the event due,
// if any: EventHuntWarning after one phase, EventHuntEnd after two.
func (h *HuntSession) Advance(tick, phaseTicks int) (Event, bool) {
	if !h.Active || tick-h.PhaseStart < phaseTicks {
		return 0, false
	}
	switch h.Phase {
	case PhaseFrightened:
		h.Phase = PhaseWarning
		h.PhaseStart = tick
		return EventHuntWarning, true
	case PhaseWarning:
		h.End()
		return EventHuntEnd, true
	}
	return 0, false
}

// KillPoints returns the award for the next kill and counts it.
func (h *HuntSession) KillPoints(base int) (points, index int) {
	index = h.Kills
	h.Kills++
	return base << index, index
}

// End tears the session down.
func (h *HuntSession) End() {
	*h = HuntSession{}
}

// GameSession is the per-game score and progress record. It persists
// across levels and is reset, except for the high score, on game over.
type GameSession struct {
	Score                int
	HighScore            int
	Lives                int
	Level                int
	ConsumablesRemaining int
	PlayerAlive          bool
	LevelClearInProgress bool

	// FinalScore and FinalLevel describe the last finished game.
	FinalScore int
	FinalLevel int

	prevScore        int
	extraLifeAwarded bool
	recordHighScore  bool
}

// NewGameSession starts a game with the given lives and level.
func NewGameSession(lives, level, highScore int) GameSession {
	return GameSession{
		HighScore:       highScore,
		Lives:           lives,
		Level:           level,
		PlayerAlive:     true,
		recordHighScore: true,
	}
}

// BeginTick remembers the score for edge-triggered checks.
func (g *GameSession) BeginTick() {
	g.prevScore = g.Score
}

// AddPoints adds to the score and raises the high score unless the
// session is an attract demo.
func (g *GameSession) AddPoints(n int) {
	g.Score += n
	if g.recordHighScore && g.Score > g.HighScore {
		g.HighScore = g.Score
	}
}

// CheckExtraLife awards one life the first time the score crosses
// threshold from below during a tick. Returns true when a life was added.
func (g *GameSession) CheckExtraLife(threshold int) bool {
	if g.extraLifeAwarded || threshold <= 0 {
		return false
	}
	if g.prevScore < threshold && g.Score >= threshold {
		g.extraLifeAwarded = true
		g.Lives++
		return true
	}
	return false
}

// LoseLife removes a life and reports whether any remain.
func (g *GameSession) LoseLife() bool {
	g.Lives--
	g.PlayerAlive = false
	return g.Lives > 0
}

// Reset prepares a fresh game, keeping the high score and the final
// results of the game that just ended.
func (g *GameSession) Reset(lives, level int) {
	*g = GameSession{
		HighScore:       g.HighScore,
		FinalScore:      g.FinalScore,
		FinalLevel:      g.FinalLevel,
		Lives:           lives,
		Level:           level,
		PlayerAlive:     true,
		recordHighScore: g.recordHighScore,
	}
}
