// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/drmario/internal/games/drmario"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	Rules    string            `yaml:"rules,omitempty"`
	Contents []string          `yaml:"contents,omitempty"`
	Viruses  []YAMLVirus       `yaml:"viruses,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents field dimensions.
type YAMLSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// YAMLVirus represents a single virus in YAML format.
type YAMLVirus struct {
	Row int    `yaml:"row"`
	Col int    `yaml:"col"`
	C   string `yaml:"c"` // Color name or letter
}

// Virus is a parsed virus placement.
type Virus struct {
	Row   int
	Col   int
	Color drmario.Color
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Rules    string
	Contents []string
	Viruses  []Virus
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("missing id")
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Rows:     yl.Size.Rows,
		Cols:     yl.Size.Cols,
		Rules:    yl.Rules,
		Contents: yl.Contents,
		Viruses:  make([]Virus, 0, len(yl.Viruses)),
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	for i, v := range yl.Viruses {
		color, ok := drmario.ParseColor(v.C)
		if !ok {
			return Level{}, fmt.Errorf("virus %d: unknown color %q", i, v.C)
		}
		level.Viruses = append(level.Viruses, Virus{Row: v.Row, Col: v.Col, Color: color})
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
