package mazechase

import (
	"strconv"

	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/sim"
)

// cellW is the number of screen columns per board cell.
const cellW = 2

// spriteState is what the display remembers about one sprite.
type spriteState struct {
	x, y  int
	img   sim.Image
	color sim.Color
	on    bool
}

// screenDisplay implements sim.Display by keeping a tile grid and sprite
// table that are painted onto a core.Screen at render time.
type screenDisplay struct {
	w, h    int
	tiles   [][]sim.Tile
	sprites [sim.NumSprites]spriteState
}

func newScreenDisplay() *screenDisplay {
	return &screenDisplay{}
}

// grow extends the tile grid so (x, y) is addressable.
func (d *screenDisplay) grow(x, y int) {
	for len(d.tiles) <= y {
		d.tiles = append(d.tiles, nil)
	}
	for row := range d.tiles {
		for len(d.tiles[row]) <= x {
			d.tiles[row] = append(d.tiles[row], sim.TileBlank)
		}
	}
	d.w = max(d.w, x+1)
	d.h = max(d.h, y+1)
}

func (d *screenDisplay) SetTile(x, y int, t sim.Tile) {
	if x < 0 || y < 0 {
		return
	}
	d.grow(x, y)
	d.tiles[y][x] = t
}

func (d *screenDisplay) SetSpritePosition(id sim.Sprite, x, y int) {
	d.sprites[id].x, d.sprites[id].y = x, y
}

func (d *screenDisplay) SetSpriteImage(id sim.Sprite, img sim.Image) {
	d.sprites[id].img = img
}

func (d *screenDisplay) EnableSprite(id sim.Sprite, on bool) {
	d.sprites[id].on = on
}

func (d *screenDisplay) SetSpriteColor(id sim.Sprite, c sim.Color) {
	d.sprites[id].color = c
}

// tile returns the tile at (x, y), blank outside the grid.
func (d *screenDisplay) tile(x, y int) sim.Tile {
	if y < 0 || y >= len(d.tiles) || x < 0 || x >= len(d.tiles[y]) {
		return sim.TileBlank
	}
	return d.tiles[y][x]
}

// draw paints a w x h board with its top-left cell at (ox, oy).
// Antagonists are drawn over the player so a catch is visible.
func (d *screenDisplay) draw(dst *core.Screen, ox, oy, w, h int) {
	for y := range h {
		for x := range w {
			glyph, c := tileGlyph(d.tile(x, y))
			dst.DrawTextColored(ox+x*cellW, oy+y, glyph, c)
		}
	}
	board := core.NewRect(0, 0, w, h)
	for id := sim.SpritePlayer; id < sim.NumSprites; id++ {
		s := d.sprites[id]
		if !s.on || !board.Contains(s.x, s.y) {
			continue
		}
		dst.DrawTextColored(ox+s.x*cellW, oy+s.y, imageGlyph(s.img), screenColor(s.color))
	}
}

// tileGlyph returns the cellW-wide text and color of a tile.
func tileGlyph(t sim.Tile) (string, core.Color) {
	switch t {
	case sim.TileWall:
		return "██", core.ColorBlue
	case sim.TileWallFlash:
		return "██", core.ColorBrightWhite
	case sim.TileSmall:
		return "· ", core.ColorWhite
	case sim.TilePower:
		return "● ", core.ColorBrightWhite
	case sim.TileBlank:
		return "  ", core.ColorDefault
	}
	switch t - sim.TileBonus {
	case 0:
		return "% ", core.ColorBrightRed
	case 1:
		return "% ", core.ColorBrightMagenta
	default:
		return "% ", core.ColorOrange
	}
}

// imageGlyph returns the cellW-wide text of a sprite image.
// Kill images show the points in hundreds for a base of 200.
func imageGlyph(img sim.Image) string {
	switch img {
	case sim.ImagePlayerClosed:
		return "O "
	case sim.ImagePlayerNorth:
		return "V "
	case sim.ImagePlayerSouth:
		return "^ "
	case sim.ImagePlayerEast:
		return "< "
	case sim.ImagePlayerWest:
		return "> "
	case sim.ImageAntagonist:
		return "M "
	case sim.ImageEyes:
		return "\" "
	}
	text := strconv.Itoa(2 << int(img-sim.ImageKill))
	if len(text) < cellW {
		text += " "
	}
	return text
}

func screenColor(c sim.Color) core.Color {
	switch c {
	case sim.ColorRed:
		return core.ColorBrightRed
	case sim.ColorMagenta:
		return core.ColorBrightMagenta
	case sim.ColorCyan:
		return core.ColorBrightCyan
	case sim.ColorGreen:
		return core.ColorBrightGreen
	case sim.ColorYellow:
		return core.ColorBrightYellow
	case sim.ColorBlue:
		return core.ColorBrightBlue
	default:
		return core.ColorBrightWhite
	}
}
