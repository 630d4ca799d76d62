package sim

// Blink periods in ticks.
const (
	powerBlinkTicks   = 8
	warningBlinkTicks = 4
)

// spriteView is the last state sent to the display for one sprite.
type spriteView struct {
	known bool
	x, y  int
	img   Image
	color Color
	on    bool
}

// view tracks what the display has been told so flush emits only deltas.
type view struct {
	full    bool
	dirty   []Pos
	powerOn bool
	flash   bool
	sprites [NumSprites]spriteView
}

func (v *view) invalidate() {
	v.full = true
	v.dirty = v.dirty[:0]
	for i := range v.sprites {
		v.sprites[i].known = false
	}
}

func (v *view) mark(p Pos) {
	v.dirty = append(v.dirty, p)
}

// flush sends the tick's tile and sprite changes to the display.
func (s *Scheduler) flush() {
	v := &s.view
	powerOn := s.powerVisible()
	flash := s.wallFlash()

	if v.full {
		for y := 0; y < s.board.H; y++ {
			for x := 0; x < s.board.W; x++ {
				s.display.SetTile(x, y, s.tileAt(Pos{X: x, Y: y}, powerOn, flash))
			}
		}
		v.full = false
	} else {
		for _, p := range v.dirty {
			s.display.SetTile(p.X, p.Y, s.tileAt(p, powerOn, flash))
		}
		if powerOn != v.powerOn {
			s.redraw(func(p Pos) bool { return s.board.Item(p) == ConsumablePower }, powerOn, flash)
		}
		if flash != v.flash {
			s.redraw(func(p Pos) bool { return !s.board.Open(p) }, powerOn, flash)
		}
	}
	v.dirty = v.dirty[:0]
	v.powerOn = powerOn
	v.flash = flash

	for id := Sprite(0); id < NumSprites; id++ {
		s.flushSprite(id, s.spriteFor(id))
	}
}

func (s *Scheduler) redraw(match func(Pos) bool, powerOn, flash bool) {
	for y := 0; y < s.board.H; y++ {
		for x := 0; x < s.board.W; x++ {
			p := Pos{X: x, Y: y}
			if match(p) {
				s.display.SetTile(x, y, s.tileAt(p, powerOn, flash))
			}
		}
	}
}

func (s *Scheduler) tileAt(p Pos, powerOn, flash bool) Tile {
	if !s.board.Open(p) {
		if flash {
			return TileWallFlash
		}
		return TileWall
	}
	switch s.board.Item(p) {
	case ConsumableSmall:
		return TileSmall
	case ConsumablePower:
		if powerOn {
			return TilePower
		}
	case ConsumableBonus:
		if s.bonusKind >= 0 {
			return BonusTile(s.bonusKind)
		}
	}
	return TileBlank
}

// powerVisible blinks power items while play is running.
func (s *Scheduler) powerVisible() bool {
	if s.state != StatePlaying && s.state != StateAttract {
		return true
	}
	return (s.tick/powerBlinkTicks)%2 == 0
}

// wallFlash alternates the walls every tick of a level clear.
func (s *Scheduler) wallFlash() bool {
	return s.state == StateLevelTransition && (s.tick-s.stateTick)%2 == 1
}

func (s *Scheduler) spriteFor(id Sprite) spriteView {
	hidden := s.state == StateLevelTransition || s.state == StateGameOver
	if id == SpritePlayer {
		img := ImagePlayerClosed
		if s.chomp {
			img = playerImage(s.player.Facing)
		}
		return spriteView{
			x: s.player.Pos.X, y: s.player.Pos.Y,
			img: img, color: ColorYellow, on: !hidden && !s.killed(),
		}
	}

	i := int(id - SpriteAntagonist0)
	a := &s.antagonists[i]
	sv := spriteView{
		x: a.Pos.X, y: a.Pos.Y,
		img: ImageAntagonist, color: a.Identity.Color(), on: !hidden,
	}
	switch {
	case s.kills[i] > 0:
		sv.img = KillImage(s.kills[i] - 1)
		sv.color = ColorWhite
	case a.Mode == ModeReturning:
		sv.img = ImageEyes
		sv.color = ColorWhite
	case a.Mode == ModeFrightened:
		sv.color = ColorBlue
	case a.Mode == ModeWarning:
		sv.color = ColorWhite
		if (s.tick/warningBlinkTicks)%2 == 1 {
			sv.on = false
		}
	}
	return sv
}

func playerImage(d Dir) Image {
	switch d {
	case DirNorth:
		return ImagePlayerNorth
	case DirSouth:
		return ImagePlayerSouth
	case DirWest:
		return ImagePlayerWest
	default:
		return ImagePlayerEast
	}
}

func (s *Scheduler) flushSprite(id Sprite, want spriteView) {
	have := &s.view.sprites[id]
	if !have.known || have.img != want.img {
		s.display.SetSpriteImage(id, want.img)
	}
	if !have.known || have.color != want.color {
		s.display.SetSpriteColor(id, want.color)
	}
	if !have.known || have.x != want.x || have.y != want.y {
		s.display.SetSpritePosition(id, want.x, want.y)
	}
	if !have.known || have.on != want.on {
		s.display.EnableSprite(id, want.on)
	}
	want.known = true
	*have = want
}
