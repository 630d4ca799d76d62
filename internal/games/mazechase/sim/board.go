package sim

import "fmt"

// Cell is the traversal bitmask of one board cell.
type Cell uint8

const (
	CanNorth Cell = 1 << iota
	CanSouth
	CanEast
	CanWest
)

// dirBit maps a direction to its traversal bit.
func dirBit(d Dir) Cell {
	switch d {
	case DirNorth:
		return CanNorth
	case DirSouth:
		return CanSouth
	case DirEast:
		return CanEast
	case DirWest:
		return CanWest
	default:
		return 0
	}
}

// Can reports whether the cell allows leaving in direction d.
func (c Cell) Can(d Dir) bool {
	bit := dirBit(d)
	return bit != 0 && c&bit != 0
}

// Consumable is the item marker of a cell.
type Consumable uint8

const (
	ConsumableNone Consumable = iota
	ConsumableSmall
	ConsumablePower
	ConsumableBonus
)

// String returns the string representation of a consumable.
func (c Consumable) String() string {
	switch c {
	case ConsumableSmall:
		return "small"
	case ConsumablePower:
		return "power"
	case ConsumableBonus:
		return "bonus"
	default:
		return "none"
	}
}

// Board is the traversal and consumable state of one level.
// Cells are stored in row-major order: index = y*W + x.
// Traversal bits never change after Build; only item markers do.
type Board struct {
	W int
	H int

	open      []bool
	cells     []Cell
	items     []Consumable
	remaining int
}

func (b *Board) index(p Pos) int {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("sim: cell %v out of range %dx%d", p, b.W, b.H))
	}
	return p.Y*b.W + p.X
}

// InBounds returns true if the position is within the board.
func (b *Board) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < b.W && p.Y >= 0 && p.Y < b.H
}

// Cell returns the traversal bitmask at p. Panics when p is out of range.
func (b *Board) Cell(p Pos) Cell {
	return b.cells[b.index(p)]
}

// Open reports whether p is a passable cell. Panics when p is out of range.
func (b *Board) Open(p Pos) bool {
	return b.open[b.index(p)]
}

// Item returns the consumable at p. Panics when p is out of range.
func (b *Board) Item(p Pos) Consumable {
	return b.items[b.index(p)]
}

// CanMove reports whether an actor at p may step in direction d.
func (b *Board) CanMove(p Pos, d Dir) bool {
	return b.Cell(p).Can(d)
}

// Remaining returns the number of small and power items left.
func (b *Board) Remaining() int {
	return b.remaining
}

// Consume clears the item at p and returns what was there.
// Bonus items do not count toward the level clear counter.
func (b *Board) Consume(p Pos) Consumable {
	i := b.index(p)
	item := b.items[i]
	if item == ConsumableNone {
		return item
	}
	b.items[i] = ConsumableNone
	if item != ConsumableBonus {
		b.remaining--
	}
	return item
}

// PlaceBonus puts a bonus item on an empty passable cell.
// Returns false if the cell is a wall or already holds an item.
func (b *Board) PlaceBonus(p Pos) bool {
	i := b.index(p)
	if !b.open[i] || b.items[i] != ConsumableNone {
		return false
	}
	b.items[i] = ConsumableBonus
	return true
}

// RemoveBonus clears a bonus item at p, if any.
func (b *Board) RemoveBonus(p Pos) bool {
	i := b.index(p)
	if b.items[i] != ConsumableBonus {
		return false
	}
	b.items[i] = ConsumableNone
	return true
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{W: b.W, H: b.H, remaining: b.remaining}
	c.open = append([]bool(nil), b.open...)
	c.cells = append([]Cell(nil), b.cells...)
	c.items = append([]Consumable(nil), b.items...)
	return c
}

// Item flags used by HexRows, above the four traversal bits.
const (
	hexSmall = 0x10
	hexPower = 0x20
	hexBonus = 0x40
)

// HexRows renders each row as space-separated two-digit hex bytes: the
// traversal bits in the low nibble and the item flag above them.
func (b *Board) HexRows() []string {
	rows := make([]string, b.H)
	buf := make([]byte, 0, b.W*3)
	for y := 0; y < b.H; y++ {
		buf = buf[:0]
		for x := 0; x < b.W; x++ {
			i := y*b.W + x
			v := byte(b.cells[i])
			switch b.items[i] {
			case ConsumableSmall:
				v |= hexSmall
			case ConsumablePower:
				v |= hexPower
			case ConsumableBonus:
				v |= hexBonus
			}
			if x > 0 {
				buf = append(buf, ' ')
			}
			buf = fmt.Appendf(buf, "%02x", v)
		}
		rows[y] = string(buf)
	}
	return rows
}
