// Package levels provides level loading for drmario.
// This package depends on the engine but the engine does not depend on levels.
package levels

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/drmario/internal/games/drmario"
	"github.com/vovakirdan/drmario/internal/levels/formats"
	"github.com/vovakirdan/drmario/internal/registry"
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Rules    string // Registered variant; empty selects the default
	Contents []string
	Viruses  []formats.Virus
	Metadata map[string]string
	FilePath string
}

// ErrNotFound is returned by LoadByID when no level has the requested ID.
var ErrNotFound = errors.New("levels: level not found")

// Notes renders the metadata as "key: value" pairs sorted by key.
func (l *Level) Notes() string {
	parts := make([]string, 0, len(l.Metadata))
	for _, k := range slices.Sorted(maps.Keys(l.Metadata)) {
		parts = append(parts, k+": "+l.Metadata[k])
	}
	return strings.Join(parts, ", ")
}

// NewGame builds a game from the level using its own rule variant.
func (l *Level) NewGame() (*drmario.Game, error) {
	rules, err := registry.Create(l.Rules)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return l.NewGameWithRules(rules)
}

// NewGameWithRules builds a game from the level, overriding its rules.
func (l *Level) NewGameWithRules(rules drmario.Rules) (*drmario.Game, error) {
	g, err := drmario.NewWithRules(l.Rows, l.Cols, l.Contents, rules)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	for i, v := range l.Viruses {
		if err := g.AddVirus(v.Row, v.Col, v.Color); err != nil {
			return nil, fmt.Errorf("level %s: virus %d: %w", l.ID, i, err)
		}
	}
	return g, nil
}

// Loader reads every level file under a directory.
// Files that fail to parse, and files repeating an ID already seen, are
// recorded in Skipped instead of failing the whole load.
type Loader struct {
	Root    string
	Skipped []error

	fsys fs.FS
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir, fsys: os.DirFS(dir)}
}

// LoadAll walks the directory and returns its levels ordered by ID.
// Skipped is reset on every call.
func (l *Loader) LoadAll() ([]Level, error) {
	l.Skipped = nil
	seen := make(map[string]string)
	var found []Level

	walk := func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !supported(path.Ext(name)) {
			return nil
		}

		file := filepath.Join(l.Root, filepath.FromSlash(name))
		data, err := fs.ReadFile(l.fsys, name)
		if err != nil {
			l.Skipped = append(l.Skipped, fmt.Errorf("levels: %s: %w", file, err))
			return nil
		}
		lvl, err := parse(data, file)
		if err != nil {
			l.Skipped = append(l.Skipped, err)
			return nil
		}
		if first, dup := seen[lvl.ID]; dup {
			l.Skipped = append(l.Skipped,
				fmt.Errorf("levels: %s: id %q already used by %s", file, lvl.ID, first))
			return nil
		}
		seen[lvl.ID] = file
		found = append(found, lvl)
		return nil
	}
	if err := fs.WalkDir(l.fsys, ".", walk); err != nil {
		return nil, fmt.Errorf("levels: scanning %s: %w", l.Root, err)
	}

	slices.SortFunc(found, func(a, b Level) int { return cmp.Compare(a.ID, b.ID) })
	return found, nil
}

// LoadByID returns the level with the given ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	i := slices.IndexFunc(all, func(lvl Level) bool { return lvl.ID == id })
	if i < 0 {
		return Level{}, fmt.Errorf("%w: %q in %s", ErrNotFound, id, l.Root)
	}
	return all[i], nil
}

// LoadFile reads a single level file.
func LoadFile(file string) (Level, error) {
	if !supported(filepath.Ext(file)) {
		return Level{}, fmt.Errorf("levels: %s: unsupported extension %q", file, filepath.Ext(file))
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return Level{}, fmt.Errorf("levels: %w", err)
	}
	return parse(data, file)
}

func supported(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), strings.ToLower(ext))
}

func parse(data []byte, file string) (Level, error) {
	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", file, err)
	}
	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Rows:     parsed.Rows,
		Cols:     parsed.Cols,
		Rules:    parsed.Rules,
		Contents: parsed.Contents,
		Viruses:  parsed.Viruses,
		Metadata: parsed.Metadata,
		FilePath: file,
	}, nil
}
