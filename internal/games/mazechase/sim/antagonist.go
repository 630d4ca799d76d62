package sim

// NumAntagonists is the number of antagonists on every level.
const NumAntagonists = 4

// Identity selects an antagonist's targeting rule.
type Identity uint8

const (
	IdentityDirect      Identity = iota // Targets the player's cell
	IdentityAmbush                      // Targets one cell ahead of the player
	IdentityAlternating                 // Player or corner, toggled by the tick counter
	IdentityProximity                   // Player when near, otherwise its corner
)

// String returns the string representation of an identity.
func (id Identity) String() string {
	switch id {
	case IdentityDirect:
		return "direct"
	case IdentityAmbush:
		return "ambush"
	case IdentityAlternating:
		return "alternating"
	case IdentityProximity:
		return "proximity"
	default:
		return "unknown"
	}
}

// Color returns the identity's normal sprite tint.
func (id Identity) Color() Color {
	switch id {
	case IdentityAmbush:
		return ColorMagenta
	case IdentityAlternating:
		return ColorCyan
	case IdentityProximity:
		return ColorGreen
	default:
		return ColorRed
	}
}

// Mode is an antagonist's behavioral state.
type Mode uint8

const (
	ModeDormant Mode = iota
	ModeActive
	ModeFrightened
	ModeWarning
	ModeReturning
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case ModeDormant:
		return "dormant"
	case ModeActive:
		return "active"
	case ModeFrightened:
		return "frightened"
	case ModeWarning:
		return "warning"
	case ModeReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// Vulnerable reports whether the player can eat an antagonist in this mode.
func (m Mode) Vulnerable() bool {
	return m == ModeFrightened || m == ModeWarning
}

// Event drives mode transitions.
type Event uint8

const (
	EventRelease     Event = iota // Release tick reached
	EventHuntStart                // Power item consumed
	EventHuntWarning              // First hunt phase elapsed
	EventHuntEnd                  // Hunt session torn down
	EventEaten                    // Caught by the player while vulnerable
	EventReachedBase              // Returning antagonist arrived at the base
	EventReset                    // Life or level restart
)

// String returns the string representation of an event.
func (e Event) String() string {
	switch e {
	case EventRelease:
		return "release"
	case EventHuntStart:
		return "hunt-start"
	case EventHuntWarning:
		return "hunt-warning"
	case EventHuntEnd:
		return "hunt-end"
	case EventEaten:
		return "eaten"
	case EventReachedBase:
		return "reached-base"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Transition is the single mode transition function. It returns the next
// mode and whether (mode, event) is a defined transition; undefined pairs
// leave the mode unchanged.
func Transition(m Mode, e Event) (Mode, bool) {
	switch e {
	case EventReset:
		return ModeDormant, true
	case EventRelease:
		if m == ModeDormant {
			return ModeActive, true
		}
	case EventHuntStart:
		if m == ModeActive || m == ModeWarning {
			return ModeFrightened, true
		}
	case EventHuntWarning:
		if m == ModeFrightened {
			return ModeWarning, true
		}
	case EventHuntEnd:
		if m.Vulnerable() {
			return ModeActive, true
		}
	case EventEaten:
		if m.Vulnerable() {
			return ModeReturning, true
		}
	case EventReachedBase:
		if m == ModeReturning {
			return ModeActive, true
		}
	}
	return m, false
}

// Antagonist is one of the four pursuers.
type Antagonist struct {
	Actor
	Identity    Identity
	Mode        Mode
	ReleaseTick int // Life tick at which a dormant antagonist is released
	Home        Pos // Dormant cell
	Corner      Pos // Fallback target for alternating and proximity

	moveCounter int
}

// Apply feeds an event through Transition and reports whether the mode
// changed.
func (a *Antagonist) Apply(e Event) bool {
	next, ok := Transition(a.Mode, e)
	if !ok || next == a.Mode {
		return false
	}
	a.Mode = next
	return true
}

// due advances the move counter and reports whether the antagonist moves
// this tick. Returning antagonists move every tick.
func (a *Antagonist) due(interval int) bool {
	if a.Mode == ModeReturning {
		a.moveCounter = 0
		return true
	}
	a.moveCounter++
	if a.moveCounter < interval {
		return false
	}
	a.moveCounter = 0
	return true
}

// TargetRules parameterizes identity targeting.
type TargetRules struct {
	Base            Pos // Where returning antagonists head
	AlternatePeriod int // Tick bit selecting player (set) or corner (clear)
	ProximityRange  int // Manhattan distance at which proximity pursues
}

// Target returns the cell the antagonist steers toward on this tick.
// Vulnerable antagonists flee the player whatever their identity.
func (a *Antagonist) Target(player Actor, tick int, r TargetRules) Pos {
	if a.Mode == ModeReturning {
		return r.Base
	}
	if a.Mode.Vulnerable() {
		return player.Pos
	}
	switch a.Identity {
	case IdentityAmbush:
		return player.Pos.Step(player.Facing)
	case IdentityAlternating:
		if tick&r.AlternatePeriod != 0 {
			return player.Pos
		}
		return a.Corner
	case IdentityProximity:
		if a.Pos.Manhattan(player.Pos) <= r.ProximityRange {
			return player.Pos
		}
		return a.Corner
	default:
		return player.Pos
	}
}

// NextStep is the movement driver for every identity: chase while active
// or returning, evade while vulnerable, stay while dormant.
func (a *Antagonist) NextStep(m Maze, target Pos) Pos {
	switch a.Mode {
	case ModeActive, ModeReturning:
		return Chase(m, target, a.Pos, a.Forbidden())
	case ModeFrightened, ModeWarning:
		return Evade(m, target, a.Pos, a.Forbidden())
	default:
		return a.Pos
	}
}
