package core

// Action is a player intent, independent of the key that produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // Steer north
	ActionDown           // Steer south
	ActionLeft           // Steer west
	ActionRight          // Steer east
	ActionStart          // Start a game, or resume after a lost life
	ActionDemo           // Switch to attract mode
	ActionBack           // Leave for the menu
	ActionRestart        // New game after game over
	ActionQuit           // Leave the program
	ActionPause          // Toggle pause

	numActions
)

var actionNames = [numActions]string{
	"None", "Up", "Down", "Left", "Right", "Start",
	"Demo", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a >= numActions {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= numActions {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a < numActions && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear forgets every action.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of f. Frames are values, so this is f itself.
func (f InputFrame) Clone() InputFrame {
	return f
}
