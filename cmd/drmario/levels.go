package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/drmario/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels <dir>",
	Short: "List level files in a directory",
	Long: `Scans a directory recursively for YAML level files and lists the ones
that parse. Invalid files and repeated IDs are skipped with a warning.

Examples:
  drmario levels ./levels
  drmario play --level ./levels/bridge.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	loader := levels.NewLoader(args[0])
	list, err := loader.LoadAll()
	for _, skipped := range loader.Skipped {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", skipped)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(list) == 0 {
		fmt.Printf("No levels found in %s.\n", args[0])
		return
	}

	maxIDLen := 2 // "ID" header
	for _, l := range list {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-7s  %-7s  %s\n", maxIDLen, "ID", "Size", "Rules", "Viruses", "Name")
	fmt.Printf("  %-*s  %-7s  %-7s  %-7s  %s\n", maxIDLen, "--", "----", "-----", "-------", "----")
	for _, l := range list {
		rules := l.Rules
		if rules == "" {
			rules = "-"
		}
		size := fmt.Sprintf("%dx%d", l.Rows, l.Cols)
		fmt.Printf("  %-*s  %-7s  %-7s  %-7d  %s\n", maxIDLen, l.ID, size, rules, len(l.Viruses), l.Name)
		if notes := l.Notes(); notes != "" {
			fmt.Printf("  %-*s  %s\n", maxIDLen, "", notes)
		}
	}
}
