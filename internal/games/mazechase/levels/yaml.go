package levels

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/sim"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Legend      map[string]string `yaml:"legend"`
	Rows        []string          `yaml:"rows"`
	Player      YAMLSpawn         `yaml:"player"`
	Base        YAMLPos           `yaml:"base"`
	Bonus       YAMLPos           `yaml:"bonus"`
	Antagonists []YAMLAntagonist  `yaml:"antagonists"`
}

// YAMLPos represents a cell coordinate.
type YAMLPos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// YAMLSpawn is a coordinate with a facing direction.
type YAMLSpawn struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Facing string `yaml:"facing,omitempty"`
}

// YAMLAntagonist places one antagonist identity.
type YAMLAntagonist struct {
	Identity string  `yaml:"identity"`
	Home     YAMLPos `yaml:"home"`
	Corner   YAMLPos `yaml:"corner"`
}

func (p YAMLPos) pos() sim.Pos {
	return sim.P(p.X, p.Y)
}

// ParseYAML parses a YAML level file into a validated sim level.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	legend, err := parseLegend(yl.Legend)
	if err != nil {
		return Level{}, err
	}
	facing, err := parseDir(yl.Player.Facing)
	if err != nil {
		return Level{}, err
	}

	lvl := sim.Level{
		Name:        yl.Name,
		Layout:      sim.Layout{Rows: yl.Rows, Legend: legend},
		PlayerStart: sim.P(yl.Player.X, yl.Player.Y),
		PlayerFace:  facing,
		Base:        yl.Base.pos(),
		Bonus:       yl.Bonus.pos(),
	}

	seen := make(map[sim.Identity]bool)
	for _, ya := range yl.Antagonists {
		id, err := parseIdentity(ya.Identity)
		if err != nil {
			return Level{}, err
		}
		if seen[id] {
			return Level{}, fmt.Errorf("antagonist %q listed twice", ya.Identity)
		}
		seen[id] = true
		lvl.Homes[id] = ya.Home.pos()
		lvl.Corners[id] = ya.Corner.pos()
	}
	if len(seen) != sim.NumAntagonists {
		return Level{}, fmt.Errorf("want %d antagonists, got %d", sim.NumAntagonists, len(seen))
	}

	if _, err := lvl.Validate(); err != nil {
		return Level{}, err
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}
	lvl.Name = name
	return Level{ID: yl.ID, Name: name, Level: lvl}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func parseLegend(m map[string]string) (map[byte]sim.TileClass, error) {
	if len(m) == 0 {
		return sim.DefaultLegend(), nil
	}
	legend := make(map[byte]sim.TileClass, len(m))
	for tile, class := range m {
		if len(tile) != 1 {
			return nil, fmt.Errorf("legend tile %q must be one byte", tile)
		}
		var tc sim.TileClass
		switch strings.ToLower(class) {
		case "wall":
			tc = sim.TileClassWall
		case "open":
			tc = sim.TileClassOpen
		case "small":
			tc = sim.TileClassSmall
		case "power":
			tc = sim.TileClassPower
		default:
			return nil, fmt.Errorf("legend tile %q has unknown class %q", tile, class)
		}
		legend[tile[0]] = tc
	}
	return legend, nil
}

func parseDir(s string) (sim.Dir, error) {
	switch strings.ToLower(s) {
	case "", "west":
		return sim.DirWest, nil
	case "east":
		return sim.DirEast, nil
	case "north":
		return sim.DirNorth, nil
	case "south":
		return sim.DirSouth, nil
	default:
		return sim.DirNone, fmt.Errorf("unknown facing %q", s)
	}
}

func parseIdentity(s string) (sim.Identity, error) {
	for id := sim.IdentityDirect; id <= sim.IdentityProximity; id++ {
		if strings.EqualFold(s, id.String()) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown antagonist identity %q", s)
}
