package sim

import (
	"strings"
	"testing"
)

// never is a release tick no test reaches.
const never = 1 << 20

var mazeRows = []string{
	"#########",
	"#o.....o#",
	"#.##.##.#",
	"#.......#",
	"#.##.##.#",
	"#o.....o#",
	"#########",
}

// testMaze is a small closed maze with the antagonist house in the walls.
func testMaze() Level {
	return Level{
		Name:        "test-maze",
		Layout:      Layout{Rows: mazeRows, Legend: DefaultLegend()},
		PlayerStart: P(4, 5),
		PlayerFace:  DirWest,
		Base:        P(4, 3),
		Homes:       [NumAntagonists]Pos{P(3, 2), P(2, 2), P(5, 2), P(6, 2)},
		Corners:     [NumAntagonists]Pos{P(7, 1), P(1, 1), P(7, 5), P(1, 5)},
		Bonus:       P(4, 1),
	}
}

// stripLevel appends a wall row holding every antagonist home, so dormant
// antagonists stay out of the player's way.
func stripLevel(rows []string, start, base Pos) Level {
	w := len(rows[0])
	all := append(append([]string(nil), rows...), strings.Repeat("#", w))
	home := P(0, len(all)-1)
	return Level{
		Name:        "strip",
		Layout:      Layout{Rows: all, Legend: DefaultLegend()},
		PlayerStart: start,
		PlayerFace:  DirEast,
		Base:        base,
		Homes:       [NumAntagonists]Pos{home, home, home, home},
		Corners:     [NumAntagonists]Pos{P(0, 0), P(0, 0), P(0, 0), P(0, 0)},
		Bonus:       base,
	}
}

// quietRules keep antagonists dormant and bonus items away.
func quietRules() Rules {
	r := DefaultRules()
	r.ReleaseTicks = [NumAntagonists]int{never, never, never, never}
	r.BonusTicks = nil
	r.BonusPoints = nil
	return r
}

// newPlaying returns a scheduler already in a scored game.
func newPlaying(t *testing.T, l Level, r Rules, opts ...Option) *Scheduler {
	t.Helper()
	s, err := New(LevelSet{l}, r, opts...)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	s.StartGame()
	return s
}

// run ticks n times with the same input and returns the last state.
func run(s *Scheduler, in Input, n int) State {
	st := s.State()
	for i := 0; i < n; i++ {
		st = s.Tick(in)
	}
	return st
}

// recordingDisplay counts display commands.
type recordingDisplay struct {
	tiles     map[Pos]Tile
	tileCalls int
	positions map[Sprite]Pos
	posCalls  int
	images    map[Sprite]Image
	enabled   map[Sprite]bool
	colors    map[Sprite]Color
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{
		tiles:     make(map[Pos]Tile),
		positions: make(map[Sprite]Pos),
		images:    make(map[Sprite]Image),
		enabled:   make(map[Sprite]bool),
		colors:    make(map[Sprite]Color),
	}
}

func (d *recordingDisplay) SetTile(x, y int, t Tile) {
	d.tiles[P(x, y)] = t
	d.tileCalls++
}

func (d *recordingDisplay) SetSpritePosition(id Sprite, x, y int) {
	d.positions[id] = P(x, y)
	d.posCalls++
}

func (d *recordingDisplay) SetSpriteImage(id Sprite, img Image) { d.images[id] = img }
func (d *recordingDisplay) EnableSprite(id Sprite, on bool)     { d.enabled[id] = on }
func (d *recordingDisplay) SetSpriteColor(id Sprite, c Color)   { d.colors[id] = c }

func (d *recordingDisplay) reset() {
	d.tileCalls = 0
	d.posCalls = 0
}
