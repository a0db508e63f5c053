// drmario is a falling-capsule puzzle engine with a line-protocol driver
// and an interactive terminal front-end.
//
// Usage:
//
//	drmario                  - Read the command protocol from stdin
//	drmario play             - Play interactively
//	drmario rules            - List rule variants
//	drmario levels <dir>     - List level files in a directory
//
// Global flags:
//
//	--rules <variant>  - Rule variant (default from config: classic)
//	--config <path>    - Config file (default: search ~/.drmario, ./configs)
//	--debug            - Log rejected commands to stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/drmario/internal/config"
	"github.com/vovakirdan/drmario/internal/driver"
	"github.com/vovakirdan/drmario/internal/games/drmario"
)

var (
	// Global flags
	flagRules  string
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drmario",
	Short: "Dr. Mario style puzzle engine",
	Long: `drmario runs a falling-capsule puzzle engine. Without a subcommand it
reads a field setup and commands from stdin and prints the field after
every command.

Setup:
  <rows>
  <cols>
  EMPTY | CONTENTS followed by <rows> lines
          (r/b/y virus, R/B/Y capsule, space empty)

Commands:
  F <c1> <c2>         - Create a new faller
  < or >              - Move faller left or right
  A or B              - Rotate faller clockwise / counter-clockwise
  V <row> <col> <c>   - Add a virus
  (empty line)        - Advance one gravity step
  Q                   - Quit

Examples:
  drmario < session.txt
  drmario --rules nes < session.txt
  drmario play --difficulty hard
  drmario rules`,
	Args: cobra.NoArgs,
	Run:  runDriver,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "Rule variant (see 'drmario rules')")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(levelsCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "drmario",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadSettings loads the config and applies the --rules flag.
func loadSettings() (config.Config, drmario.Rules, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, drmario.Rules{}, err
	}
	if flagRules != "" {
		cfg.Rules = config.RulesConfig{Variant: flagRules}
	}
	rules, err := cfg.Rules.Resolve()
	return cfg, rules, err
}

func runDriver(cmd *cobra.Command, args []string) {
	logger := newLogger()

	_, rules, err := loadSettings()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Info("reading commands from the terminal; enter rows, cols and EMPTY to start, Q to quit")
	}

	d := driver.New(os.Stdout, rules, logger)
	if err := d.Run(os.Stdin); err != nil {
		logger.Error("session failed", "error", err)
		os.Exit(1)
	}
}
