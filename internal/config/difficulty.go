package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a preset name to a DifficultyPreset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// VirusFraction returns the share of the field's lower part a preset fills
// with viruses.
func VirusFraction(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.1
	case DifficultyHard:
		return 0.4
	default:
		return 0.2
	}
}

// ApplyPreset sets the virus count for a difficulty preset, scaled to the
// configured field size.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	top := max(cfg.Play.Rows/3, 2)
	area := (cfg.Play.Rows - top) * cfg.Play.Cols
	cfg.Play.Viruses = max(int(float64(area)*VirusFraction(preset)), 1)
}
