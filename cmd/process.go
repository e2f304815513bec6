// =============================================================================
// Purchase Report Engine - Process Command
// =============================================================================
//
// The 'process' command runs the flat report pipeline: ingest one purchasing
// export, normalize every row, and write the detail table plus the category
// and file summaries in the requested formats.
//
// COMMAND USAGE:
//   purchase-report process --input export.xlsx [--format json|csv|xlsx|all]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"purchasereport/internal/pipeline"
)

// processInput is the source export to process.
var processInput string

// processFormat selects the output formats ("all" writes every format).
var processFormat string

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Generate the flat purchase report and summaries",
	Long: `The process command ingests a purchasing export (.xlsx or .csv), resolves
the semantic columns by keyword, sanitizes every cell, applies the category
mapping table, and writes:

  - the 13-column detail table (JSON includes per-column statistics)
  - the per-category summary (code, canonical name, count, total amount)
  - the per-file summary (file number, count, total amount)

Rows are never dropped: unresolvable columns and malformed values fall back
to their type defaults.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(
		&processInput,
		"input",
		"i",
		"",
		"Path to the source export (.xlsx or .csv)",
	)
	processCmd.Flags().StringVarP(
		&processFormat,
		"format",
		"f",
		"json",
		"Output format: json, csv, xlsx, or all",
	)
	processCmd.MarkFlagRequired("input")
}

func runProcess() error {
	runner, _, err := newRunner()
	if err != nil {
		return err
	}

	formats, err := reportFormats(processFormat)
	if err != nil {
		return err
	}

	result, err := runner.Process(processInput, formats)
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d rows (%d columns, %d file numbers) in %s\n",
		result.Stats.RowsIngested,
		result.Stats.ColumnsDetected,
		result.Stats.FileNumbers,
		result.Stats.ProcessingTime,
	)
	for _, path := range result.OutputFiles {
		fmt.Printf("  wrote %s\n", path)
	}
	return nil
}

// reportFormats expands the --format flag into pipeline formats.
func reportFormats(flag string) ([]string, error) {
	switch flag {
	case "json", "csv", "xlsx":
		return []string{flag}, nil
	case "all":
		return []string{pipeline.FormatJSON, pipeline.FormatCSV, pipeline.FormatXLSX}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want json, csv, xlsx, or all)", flag)
	}
}
