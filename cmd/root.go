// =============================================================================
// Purchase Report Engine - Root Command
// =============================================================================
//
// COBRA CLI STRUCTURE:
//   rootCmd (purchase-report)
//   ├── processCmd (purchase-report process)
//   ├── analyzeCmd (purchase-report analyze)
//   ├── mappingCmd (purchase-report mapping)
//   └── versionCmd (purchase-report version)
//
// The root command owns the global flags: --config selects the main
// configuration file, --verbose forces debug logging.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"purchasereport/internal/categories"
	"purchasereport/internal/config"
	"purchasereport/internal/pipeline"
)

// cfgFile holds the path to the main configuration file.
var cfgFile string

// verbose enables debug logging when set.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "purchase-report",
	Short: "Purchase Report Engine - turn raw purchasing exports into verifiable rollups",
	Long: `Purchase Report Engine ingests flat purchase exports from the in-house
purchasing system and produces verifiable reports:

  - a sanitized 13-column detail table with category names replaced through
    the configurable mapping table, exported as JSON, CSV, or XLSX
  - flat per-category and per-file summaries
  - a hierarchical category -> supplier -> product rollup for one file
    number, exported as JSON or a standalone HTML report

Column headers in the source files are discovered by keyword, so renamed or
re-encoded exports keep working, and malformed cell values fall back to
typed defaults instead of failing the run.

Example Usage:
  purchase-report process --input export.xlsx --format all
  purchase-report analyze --input export.xlsx --file-no F-1024 --format html
  purchase-report analyze --input export.xlsx --list`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// newRunner loads the configuration and category mapping and builds the
// pipeline runner shared by process and analyze.
func newRunner() (*pipeline.Runner, *config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	mapping, err := cfg.LoadCategoryMapping()
	if err != nil {
		return nil, nil, err
	}

	return pipeline.New(cfg, categories.NewMapper(mapping), nil), cfg, nil
}
