package sim

// ActorSnapshot captures one actor's position.
type ActorSnapshot struct {
	Pos    Pos `json:"pos"`
	Facing Dir `json:"facing"`
}

// AntagonistSnapshot captures one antagonist.
type AntagonistSnapshot struct {
	Identity Identity `json:"identity"`
	Mode     Mode     `json:"mode"`
	Pos      Pos      `json:"pos"`
}

// Snapshot captures the deterministic game state for testing and for
// spectators.
type Snapshot struct {
	Tick        int                                `json:"tick"`
	LifeTick    int                                `json:"life_tick"`
	State       State                              `json:"state"`
	Demo        bool                               `json:"demo"`
	Score       int                                `json:"score"`
	HighScore   int                                `json:"high_score"`
	Lives       int                                `json:"lives"`
	Level       int                                `json:"level"`
	Remaining   int                                `json:"remaining"`
	Hunt        HuntPhase                          `json:"hunt"`
	Kills       int                                `json:"kills"`
	Frozen      int                                `json:"frozen"` // Ticks left in a kill pause
	Player      ActorSnapshot                      `json:"player"`
	Antagonists [NumAntagonists]AntagonistSnapshot `json:"antagonists"`
	Board       []string                           `json:"board,omitempty"`
}

// Snapshot returns the current state. Board rows are included when
// withBoard is set.
func (s *Scheduler) Snapshot(withBoard bool) Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		LifeTick:  s.lifeTick,
		State:     s.state,
		Demo:      s.demo,
		Score:     s.session.Score,
		HighScore: s.session.HighScore,
		Lives:     s.session.Lives,
		Level:     s.session.Level,
		Remaining: s.board.Remaining(),
		Hunt:      s.hunt.Phase,
		Kills:     s.hunt.Kills,
		Frozen:    s.frozen,
		Player:    ActorSnapshot{Pos: s.player.Pos, Facing: s.player.Facing},
	}
	for i, a := range s.antagonists {
		snap.Antagonists[i] = AntagonistSnapshot{Identity: a.Identity, Mode: a.Mode, Pos: a.Pos}
	}
	if withBoard {
		snap.Board = s.BoardRows()
	}
	return snap
}

// BoardRows renders the live board as text: walls, items and actors.
func (s *Scheduler) BoardRows() []string {
	rows := make([]string, s.board.H)
	line := make([]byte, s.board.W)
	for y := 0; y < s.board.H; y++ {
		for x := 0; x < s.board.W; x++ {
			p := Pos{X: x, Y: y}
			line[x] = ' '
			if !s.board.Open(p) {
				line[x] = '#'
				continue
			}
			switch s.board.Item(p) {
			case ConsumableSmall:
				line[x] = '.'
			case ConsumablePower:
				line[x] = 'o'
			case ConsumableBonus:
				line[x] = '%'
			}
		}
		for i := range s.antagonists {
			a := &s.antagonists[i]
			if a.Pos.Y == y && s.board.InBounds(a.Pos) {
				line[a.Pos.X] = antagonistGlyph(a.Mode)
			}
		}
		if s.player.Pos.Y == y {
			line[s.player.Pos.X] = 'C'
		}
		rows[y] = string(line)
	}
	return rows
}

func antagonistGlyph(m Mode) byte {
	switch m {
	case ModeFrightened, ModeWarning:
		return 'm'
	case ModeReturning:
		return '"'
	default:
		return 'M'
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// MarshalText encodes the identity by name.
func (id Identity) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// MarshalText encodes the direction by name.
func (d Dir) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// MarshalText encodes the phase by name.
func (p HuntPhase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
