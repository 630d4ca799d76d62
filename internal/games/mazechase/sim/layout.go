package sim

import (
	"errors"
	"fmt"
)

// TileClass is what a tile identifier means to the game.
type TileClass uint8

const (
	TileClassWall TileClass = iota
	TileClassOpen
	TileClassSmall
	TileClassPower
)

// Layout is raw level data: rows of tile identifiers plus a legend
// mapping each identifier to its class.
type Layout struct {
	Rows   []string
	Legend map[byte]TileClass
}

// DefaultLegend maps the conventional ASCII tiles.
func DefaultLegend() map[byte]TileClass {
	return map[byte]TileClass{
		'#': TileClassWall,
		' ': TileClassOpen,
		'.': TileClassSmall,
		'o': TileClassPower,
	}
}

// Build derives a Board from layout data. A cell may be left in direction d
// iff both the cell and its neighbor in d are passable, so traversal bits are
// symmetric by construction. Malformed layouts return an error.
func Build(l Layout) (*Board, error) {
	if len(l.Rows) == 0 {
		return nil, errors.New("sim: layout has no rows")
	}
	if len(l.Legend) == 0 {
		return nil, errors.New("sim: layout has no legend")
	}
	w := len(l.Rows[0])
	if w == 0 {
		return nil, errors.New("sim: layout rows are empty")
	}
	h := len(l.Rows)

	b := &Board{
		W:     w,
		H:     h,
		open:  make([]bool, w*h),
		cells: make([]Cell, w*h),
		items: make([]Consumable, w*h),
	}

	for y, row := range l.Rows {
		if len(row) != w {
			return nil, fmt.Errorf("sim: layout row %d has width %d, expected %d", y, len(row), w)
		}
		for x := 0; x < w; x++ {
			class, ok := l.Legend[row[x]]
			if !ok {
				return nil, fmt.Errorf("sim: unknown tile %q at (%d,%d)", row[x], x, y)
			}
			i := y*w + x
			switch class {
			case TileClassWall:
			case TileClassOpen:
				b.open[i] = true
			case TileClassSmall:
				b.open[i] = true
				b.items[i] = ConsumableSmall
				b.remaining++
			case TileClassPower:
				b.open[i] = true
				b.items[i] = ConsumablePower
				b.remaining++
			default:
				return nil, fmt.Errorf("sim: tile %q has invalid class %d", row[x], class)
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := Pos{X: x, Y: y}
			if !b.open[y*w+x] {
				continue
			}
			var c Cell
			for _, d := range [...]Dir{DirNorth, DirSouth, DirEast, DirWest} {
				n := p.Step(d)
				if b.InBounds(n) && b.open[n.Y*w+n.X] {
					c |= dirBit(d)
				}
			}
			b.cells[y*w+x] = c
		}
	}

	return b, nil
}
