package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/drmario/internal/registry"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List rule variants",
	Long:  `Shows the registered rule variants that --rules and the config accept.`,
	Args:  cobra.NoArgs,
	Run:   runRules,
}

func runRules(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No rule variants available.")
		return
	}

	fmt.Println("Available rule variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, v := range variants {
		def := ""
		if v.ID == registry.DefaultVariant {
			def = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, v.ID, v.Title, def)
	}

	fmt.Println()
	fmt.Println("Run 'drmario --rules <id>' or 'drmario play --rules <id>' to use one.")
}
