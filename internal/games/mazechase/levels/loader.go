// Package levels provides maze loading for the maze chase game.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/sim"
)

//go:embed data/*.yaml
var builtin embed.FS

// Level is a parsed maze with its identity.
type Level struct {
	ID       string
	Name     string
	Level    sim.Level
	FilePath string
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(dir string) *Loader {
	return &Loader{fsys: os.DirFS(dir), root: "."}
}

// Builtin returns a loader over the embedded mazes.
func Builtin() *Loader {
	return &Loader{fsys: builtin, root: "data"}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering. A malformed file
// fails the whole load.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, l.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.root, err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("levels: no level files under %s", l.root)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file relative to the loader's file system.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	if level.ID == "" {
		level.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	level.FilePath = p
	return level, nil
}

// LoadSet loads every level and returns them in play order.
func (l *Loader) LoadSet() (sim.LevelSet, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	set := make(sim.LevelSet, len(levels))
	for i, lvl := range levels {
		set[i] = lvl.Level
	}
	return set, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// Load returns the mazes in dir, or the built-in mazes when dir is empty.
func Load(dir string) (sim.LevelSet, error) {
	if dir == "" {
		return Builtin().LoadSet()
	}
	return NewLoader(dir).LoadSet()
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
