// =============================================================================
// Purchase Report Engine - Mapping Command
// =============================================================================
//
// The 'mapping' command prints the effective category mapping table: the
// deployment override file when configured, the built-in defaults otherwise.
// Useful for checking what a given config will actually apply before running
// a report.
//
// =============================================================================

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"purchasereport/internal/config"
)

// mappingCmd represents the 'mapping' command.
var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Show the effective category mapping table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMapping()
	},
}

func init() {
	rootCmd.AddCommand(mappingCmd)
}

func runMapping() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	mapping, err := cfg.LoadCategoryMapping()
	if err != nil {
		return err
	}

	source := "built-in defaults"
	if cfg.CategoryMappingFile != "" {
		source = cfg.CategoryMappingFile
	}
	fmt.Printf("Category mapping (%d entries, source: %s)\n", len(mapping), source)

	codes := make([]string, 0, len(mapping))
	for code := range mapping {
		codes = append(codes, code)
	}
	// Numeric-width-aware order: "02" .. "20" before "100".
	sort.Slice(codes, func(i, j int) bool {
		if len(codes[i]) != len(codes[j]) {
			return len(codes[i]) < len(codes[j])
		}
		return codes[i] < codes[j]
	})

	for _, code := range codes {
		fmt.Printf("  %s -> %s\n", code, mapping[code])
	}
	return nil
}
