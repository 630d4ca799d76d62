package sim

// Maze is the traversal query the movement heuristics need.
type Maze interface {
	CanMove(p Pos, d Dir) bool
}

// fallbackOrder is tried after the target-driven candidates.
var fallbackOrder = [...]Dir{DirWest, DirEast, DirSouth, DirNorth}

// Chase picks the next cell for an actor at from pursuing target.
// Candidates: horizontal toward target, vertical toward target, then
// west, east, south, north. Illegal moves and forbidden are skipped; with
// no candidate left the actor stays.
func Chase(m Maze, target, from, forbidden Pos) Pos {
	var order [6]Dir
	n := 0
	switch {
	case target.X > from.X:
		order[n] = DirEast
		n++
	case target.X < from.X:
		order[n] = DirWest
		n++
	}
	switch {
	case target.Y > from.Y:
		order[n] = DirSouth
		n++
	case target.Y < from.Y:
		order[n] = DirNorth
		n++
	}
	n += copy(order[n:], fallbackOrder[:])

	for _, d := range order[:n] {
		if !m.CanMove(from, d) {
			continue
		}
		if next := from.Step(d); next != forbidden {
			return next
		}
	}
	return from
}

// Evade picks the next cell for an actor at from fleeing target.
// Candidates: directions that increase Manhattan separation (horizontal
// first, then vertical), then west, east, south, north. A non-forbidden
// legal candidate always wins; forbidden is returned only when it is the
// sole legal move.
func Evade(m Maze, target, from, forbidden Pos) Pos {
	var order [8]Dir
	n := 0
	switch {
	case target.X > from.X:
		order[n] = DirWest
		n++
	case target.X < from.X:
		order[n] = DirEast
		n++
	default:
		order[n], order[n+1] = DirWest, DirEast
		n += 2
	}
	switch {
	case target.Y > from.Y:
		order[n] = DirNorth
		n++
	case target.Y < from.Y:
		order[n] = DirSouth
		n++
	default:
		order[n], order[n+1] = DirSouth, DirNorth
		n += 2
	}
	n += copy(order[n:], fallbackOrder[:])

	backtrack := NoPos
	for _, d := range order[:n] {
		if !m.CanMove(from, d) {
			continue
		}
		next := from.Step(d)
		if next == forbidden {
			backtrack = next
			continue
		}
		return next
	}
	if backtrack != NoPos {
		return backtrack
	}
	return from
}

// autopilotOrder is the attract-mode preference.
var autopilotOrder = [...]Dir{DirNorth, DirEast, DirSouth, DirWest}

// Autopilot steers the player without input: north, east, south, west,
// avoiding forbidden. It reverses only out of a dead end.
func Autopilot(m Maze, from, forbidden Pos) Pos {
	for _, d := range autopilotOrder {
		if !m.CanMove(from, d) {
			continue
		}
		if next := from.Step(d); next != forbidden {
			return next
		}
	}
	if forbidden != NoPos && from.Manhattan(forbidden) == 1 && m.CanMove(from, from.DirTo(forbidden)) {
		return forbidden
	}
	return from
}
