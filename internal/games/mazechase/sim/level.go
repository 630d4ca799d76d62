package sim

import "fmt"

// Level is one playable maze with its spawn points.
type Level struct {
	Name        string
	Layout      Layout
	PlayerStart Pos
	PlayerFace  Dir
	Base        Pos                 // Door cell: release point and return target
	Homes       [NumAntagonists]Pos // Dormant cells, indexed by Identity
	Corners     [NumAntagonists]Pos // Fallback targets, indexed by Identity
	Bonus       Pos                 // Where bonus items appear
}

// Validate builds the layout and checks every spawn point against it.
func (l Level) Validate() (*Board, error) {
	b, err := Build(l.Layout)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", l.Name, err)
	}
	passable := func(what string, p Pos) error {
		if !b.InBounds(p) {
			return fmt.Errorf("level %q: %s %v outside %dx%d board", l.Name, what, p, b.W, b.H)
		}
		if !b.Open(p) {
			return fmt.Errorf("level %q: %s %v is a wall", l.Name, what, p)
		}
		return nil
	}
	if err := passable("player start", l.PlayerStart); err != nil {
		return nil, err
	}
	if err := passable("base", l.Base); err != nil {
		return nil, err
	}
	if err := passable("bonus cell", l.Bonus); err != nil {
		return nil, err
	}
	for i, h := range l.Homes {
		if !b.InBounds(h) {
			return nil, fmt.Errorf("level %q: home %d %v outside board", l.Name, i, h)
		}
	}
	return b, nil
}

// LevelSet is the ordered list of mazes. Levels past the end cycle.
type LevelSet []Level

// Level returns the maze for a 1-based level number.
func (ls LevelSet) Level(n int) Level {
	if len(ls) == 0 {
		panic("sim: empty level set")
	}
	if n < 1 {
		n = 1
	}
	return ls[(n-1)%len(ls)]
}
