package sim

// Stick thresholds on the 8-bit axes. Values between Low and High are
// treated as centered.
const (
	StickLow    uint8 = 0x40
	StickCenter uint8 = 0x80
	StickHigh   uint8 = 0xC0
)

// Buttons is the controller button bitmask.
type Buttons uint8

const (
	ButtonStart Buttons = 1 << iota // Begin a game or leave READY
	ButtonDemo                      // Begin an attract session
)

// InputSample is one controller reading: two stick axes and the buttons.
// StickY grows toward north.
type InputSample struct {
	StickX  uint8
	StickY  uint8
	Buttons Buttons
}

// Centered returns a sample with the stick at rest and no buttons.
func Centered() InputSample {
	return InputSample{StickX: StickCenter, StickY: StickCenter}
}

// Hold returns a sample with the stick pushed fully toward d.
func Hold(d Dir) InputSample {
	s := Centered()
	switch d {
	case DirNorth:
		s.StickY = 0xFF
	case DirSouth:
		s.StickY = 0x00
	case DirEast:
		s.StickX = 0xFF
	case DirWest:
		s.StickX = 0x00
	}
	return s
}

// Press returns a centered sample with buttons held.
func Press(b Buttons) InputSample {
	s := Centered()
	s.Buttons = b
	return s
}

// Sample lets a fixed reading serve as an Input.
func (s InputSample) Sample() InputSample {
	return s
}

// Pressed reports whether every button in b is held.
func (s InputSample) Pressed(b Buttons) bool {
	return b != 0 && s.Buttons&b == b
}

// Intent returns the discrete direction of the stick.
// East and west win over south and north when both axes are deflected.
func (s InputSample) Intent() Dir {
	switch {
	case s.StickX > StickHigh:
		return DirEast
	case s.StickX < StickLow:
		return DirWest
	case s.StickY < StickLow:
		return DirSouth
	case s.StickY > StickHigh:
		return DirNorth
	default:
		return DirNone
	}
}

// Input yields exactly one sample per tick.
type Input interface {
	Sample() InputSample
}

// InputFunc adapts a function to Input.
type InputFunc func() InputSample

// Sample calls f.
func (f InputFunc) Sample() InputSample {
	return f()
}

// Tile is a display tile placed on a board cell.
type Tile uint8

const (
	TileBlank Tile = iota
	TileWall
	TileWallFlash
	TileSmall
	TilePower
	TileBonus // Followed by one tile per bonus kind
)

// BonusTile returns the tile of the bonus item of the given kind.
func BonusTile(kind int) Tile {
	return TileBonus + Tile(kind)
}

// Sprite identifies a movable display object.
type Sprite uint8

const (
	SpritePlayer Sprite = iota
	SpriteAntagonist0
	NumSprites = SpriteAntagonist0 + NumAntagonists
)

// AntagonistSprite returns the sprite id of the antagonist at index i.
func AntagonistSprite(i int) Sprite {
	return SpriteAntagonist0 + Sprite(i)
}

// Image is a sprite picture.
type Image uint8

const (
	ImagePlayerClosed Image = iota
	ImagePlayerNorth
	ImagePlayerSouth
	ImagePlayerEast
	ImagePlayerWest
	ImageAntagonist
	ImageEyes
	ImageKill // Followed by one image per kill index
)

// KillImage returns the score image shown for the k-th kill of a hunt.
func KillImage(k int) Image {
	return ImageKill + Image(k)
}

// Color is a sprite tint.
type Color uint8

const (
	ColorRed Color = iota
	ColorMagenta
	ColorCyan
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
)

// Display accepts tile and sprite commands. The scheduler calls it only
// at the end of a tick and only for what changed.
type Display interface {
	SetTile(x, y int, t Tile)
	SetSpritePosition(id Sprite, x, y int)
	SetSpriteImage(id Sprite, img Image)
	EnableSprite(id Sprite, on bool)
	SetSpriteColor(id Sprite, c Color)
}

type nopDisplay struct{}

func (nopDisplay) SetTile(int, int, Tile)             {}
func (nopDisplay) SetSpritePosition(Sprite, int, int) {}
func (nopDisplay) SetSpriteImage(Sprite, Image)       {}
func (nopDisplay) EnableSprite(Sprite, bool)          {}
func (nopDisplay) SetSpriteColor(Sprite, Color)       {}
