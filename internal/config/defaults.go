package config

import (
	_ "embed"

	"github.com/vovakirdan/drmario/internal/registry"
)

//go:embed defaults/drmario.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration, used when even the
// embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Rules: RulesConfig{
			Variant: registry.DefaultVariant,
		},
		Play: PlayConfig{
			Rows:    16,
			Cols:    8,
			Viruses: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
