// Package sim provides the deterministic simulation core of the maze chase
// game: board model, movement heuristics, antagonist modes, scoring and the
// tick scheduler. This package is UI-agnostic and never blocks.
package sim

import "fmt"

// Dir represents a direction of travel on the board.
type Dir uint8

const (
	DirNone Dir = iota
	DirNorth
	DirSouth
	DirEast
	DirWest
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNorth:
		return "North"
	case DirSouth:
		return "South"
	case DirEast:
		return "East"
	case DirWest:
		return "West"
	default:
		return "None"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// North decreases Y, South increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirSouth:
		return 0, 1
	case DirEast:
		return 1, 0
	case DirWest:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirNorth:
		return DirSouth
	case DirSouth:
		return DirNorth
	case DirEast:
		return DirWest
	case DirWest:
		return DirEast
	default:
		return d
	}
}

// Pos is a cell coordinate. X increases to the east, Y to the south.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NoPos is a sentinel that never matches a board cell.
var NoPos = Pos{X: -1, Y: -1}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the neighboring position in direction d.
func (p Pos) Step(d Dir) Pos {
	dx, dy := d.Delta()
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the Manhattan distance to another position.
func (p Pos) Manhattan(other Pos) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// DirTo returns the direction of a single step from p to next,
// or DirNone if next is not a neighbor.
func (p Pos) DirTo(next Pos) Dir {
	for _, d := range [...]Dir{DirNorth, DirSouth, DirEast, DirWest} {
		if p.Step(d) == next {
			return d
		}
	}
	return DirNone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
