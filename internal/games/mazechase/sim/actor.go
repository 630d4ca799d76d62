package sim

// Actor is a board occupant with a short position history.
// Prev is the cell occupied before the last move and Prev2 the one before
// that; both equal Pos right after Place.
type Actor struct {
	Pos    Pos
	Prev   Pos
	Prev2  Pos
	Facing Dir
}

// Place puts the actor on p and forgets its history.
func (a *Actor) Place(p Pos, facing Dir) {
	a.Pos = p
	a.Prev = p
	a.Prev2 = p
	a.Facing = facing
}

// MoveTo shifts the history and moves the actor to next.
// Facing follows the step; staying in place keeps the old facing.
func (a *Actor) MoveTo(next Pos) {
	if d := a.Pos.DirTo(next); d != DirNone {
		a.Facing = d
	}
	a.Prev2 = a.Prev
	a.Prev = a.Pos
	a.Pos = next
}

// Forbidden is the cell a movement heuristic must not step onto next.
// It is the cell just left, which becomes Prev2 once the step is taken.
func (a *Actor) Forbidden() Pos {
	if a.Prev == a.Pos {
		return NoPos
	}
	return a.Prev
}
