package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/drmario/internal/config"
	"github.com/vovakirdan/drmario/internal/core"
	"github.com/vovakirdan/drmario/internal/games/drmario"
	"github.com/vovakirdan/drmario/internal/levels"
	"github.com/vovakirdan/drmario/internal/platform/tui"
)

var (
	flagLevel      string
	flagLevelsDir  string
	flagLevelID    string
	flagDifficulty string
	flagSeed       int64
	flagViruses    int
	flagRows       int
	flagCols       int
	flagSpeed      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start an interactive session in the terminal.

Controls:
  Left/Right, h/l    - Move faller
  Up, a, k           - Rotate clockwise
  b, z               - Rotate counter-clockwise
  Down, j, Enter     - Advance one step
  Space              - Drop the faller
  R                  - Restart
  ?                  - Toggle help
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Few viruses
  normal - Default virus count for the field size
  hard   - Crowded field

Examples:
  drmario play
  drmario play --difficulty hard --seed 42
  drmario play --speed 2
  drmario play --rules nes --rows 12 --cols 6
  drmario play --level ./levels/bridge.yaml
  drmario play --levels ./levels
  drmario play --levels ./levels --level-id bridge`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Play a level file")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Pick a level from a directory")
	playCmd.Flags().StringVar(&flagLevelID, "level-id", "", "With --levels, play this level without the picker")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = time-based)")
	playCmd.Flags().IntVar(&flagViruses, "viruses", 0, "Number of random viruses (overrides config)")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Field rows (overrides config)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Field columns (overrides config)")
	playCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Gravity steps per second (0 = step on key press)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, rules, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSpeed < 0 {
		fmt.Fprintf(os.Stderr, "Error: --speed must not be negative\n")
		os.Exit(1)
	}

	// Get terminal size early for the level picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagSpeed,
		Seed:     cfg.Play.Seed,
	}
	if flagSeed != 0 {
		rcfg.Seed = flagSeed
	}

	var level *levels.Level
	switch {
	case flagLevel != "":
		l, loadErr := levels.LoadFile(flagLevel)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", loadErr)
			os.Exit(1)
		}
		level = &l

	case flagLevelsDir != "" && flagLevelID != "":
		l, loadErr := levels.NewLoader(flagLevelsDir).LoadByID(flagLevelID)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", loadErr)
			fmt.Fprintln(os.Stderr, "Run 'drmario levels <dir>' to see available levels.")
			os.Exit(1)
		}
		level = &l

	case flagLevelID != "":
		fmt.Fprintln(os.Stderr, "Error: --level-id needs --levels <dir>")
		os.Exit(1)

	case flagLevelsDir != "":
		loader := levels.NewLoader(flagLevelsDir)
		list, loadErr := loader.LoadAll()
		for _, skipped := range loader.Skipped {
			logger.Warn("skipping level file", "error", skipped)
		}
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", loadErr)
			os.Exit(1)
		}
		if len(list) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no levels found in %s\n", flagLevelsDir)
			os.Exit(1)
		}

		selected, updatedCfg, selErr := tui.RunMenu(list, rcfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		rcfg = updatedCfg

		// User quit the picker
		if selected == nil {
			return
		}
		level = selected
	}

	var source tui.GameSource
	title := "DR. MARIO"
	if level != nil {
		title = level.Name
		if title == "" {
			title = level.ID
		}
		source = levelSource(level, rules, flagRules != "")
		logger.Debug("playing level", "id", level.ID, "file", level.FilePath)
	} else {
		if err := applyPlayFlags(&cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		source = randomSource(cfg.Play, rules)
		logger.Debug("playing random field",
			"rows", cfg.Play.Rows, "cols", cfg.Play.Cols, "viruses", cfg.Play.Viruses)
	}

	if err := tui.Run(source, title, rcfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyPlayFlags folds the size, difficulty and virus flags into cfg.
// An explicit --viruses wins over --difficulty.
func applyPlayFlags(cfg *config.Config) error {
	if flagRows != 0 {
		cfg.Play.Rows = flagRows
	}
	if flagCols != 0 {
		cfg.Play.Cols = flagCols
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(cfg, preset)
	}
	if flagViruses != 0 {
		cfg.Play.Viruses = flagViruses
	}
	return cfg.Validate()
}

func randomSource(play config.PlayConfig, rules drmario.Rules) tui.GameSource {
	return func(rng *rand.Rand) (*drmario.Game, error) {
		g, err := drmario.NewWithRules(play.Rows, play.Cols, nil, rules)
		if err != nil {
			return nil, err
		}
		g.PlaceRandomViruses(play.Viruses, rng)
		return g, nil
	}
}

// levelSource keeps the level's own variant unless --rules was given.
func levelSource(level *levels.Level, rules drmario.Rules, override bool) tui.GameSource {
	return func(*rand.Rand) (*drmario.Game, error) {
		if override {
			return level.NewGameWithRules(rules)
		}
		return level.NewGame()
	}
}
