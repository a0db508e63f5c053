// Package config provides YAML-based configuration loading and difficulty
// presets for drmario.
package config

import (
	"fmt"

	"github.com/vovakirdan/drmario/internal/games/drmario"
	"github.com/vovakirdan/drmario/internal/registry"
)

// Config contains all drmario configuration.
type Config struct {
	Rules RulesConfig `yaml:"rules"`
	Play  PlayConfig  `yaml:"play"`
}

// RulesConfig selects the matching rules.
// MinRun and Diagonals override the variant's preset when set.
type RulesConfig struct {
	Variant   string `yaml:"variant"`
	MinRun    *int   `yaml:"min_run,omitempty"`
	Diagonals *bool  `yaml:"diagonals,omitempty"`
}

// PlayConfig defines the interactive session.
type PlayConfig struct {
	Rows    int   `yaml:"rows"`
	Cols    int   `yaml:"cols"`
	Viruses int   `yaml:"viruses"`
	Seed    int64 `yaml:"seed"` // 0 = time-based
}

// Resolve turns the rules section into engine rules.
func (r RulesConfig) Resolve() (drmario.Rules, error) {
	rules, err := registry.Create(r.Variant)
	if err != nil {
		return rules, fmt.Errorf("config: %w", err)
	}
	if r.MinRun != nil {
		rules.MinRun = *r.MinRun
	}
	if r.Diagonals != nil {
		rules.Diagonals = *r.Diagonals
	}
	if err := rules.Validate(); err != nil {
		return rules, fmt.Errorf("config: rules: %w", err)
	}
	return rules, nil
}

// Validate checks the configuration for values the engine would reject.
func (c Config) Validate() error {
	if _, err := c.Rules.Resolve(); err != nil {
		return err
	}
	if err := drmario.ValidateDimensions(c.Play.Rows, c.Play.Cols); err != nil {
		return fmt.Errorf("config: play: %w", err)
	}
	if c.Play.Viruses < 0 {
		return fmt.Errorf("config: play viruses must not be negative, got %d", c.Play.Viruses)
	}
	return nil
}
