// =============================================================================
// Purchase Report Engine - Analyze Command
// =============================================================================
//
// The 'analyze' command builds the hierarchical rollup for one file number:
// categories ordered by total amount descending, suppliers within each
// category the same way, and product lines by per-line total. Asking for a
// file number that matches nothing is reported as such, not as an empty
// report.
//
// COMMAND USAGE:
//   purchase-report analyze --input export.xlsx --file-no F-1024 [--format json|html|all]
//   purchase-report analyze --input export.xlsx --list
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"purchasereport/internal/aggregate"
	"purchasereport/internal/pipeline"
)

// analyzeInput is the source export to analyze.
var analyzeInput string

// analyzeFileNo selects the file number to roll up.
var analyzeFileNo string

// analyzeFormat selects the output formats.
var analyzeFormat string

// analyzeList lists the available file numbers instead of analyzing.
var analyzeList bool

// analyzeCmd represents the 'analyze' command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Generate the hierarchical rollup for one file number",
	Long: `The analyze command ingests a purchasing export and rolls the records of
one file number up into a category -> supplier -> product tree. Every level
is ordered by total amount descending, with ties keeping their first-seen
order. The result is written as JSON and/or a standalone HTML report.

Use --list to see which file numbers the export contains.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze()
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(
		&analyzeInput,
		"input",
		"i",
		"",
		"Path to the source export (.xlsx or .csv)",
	)
	analyzeCmd.Flags().StringVar(
		&analyzeFileNo,
		"file-no",
		"",
		"File number to analyze",
	)
	analyzeCmd.Flags().StringVarP(
		&analyzeFormat,
		"format",
		"f",
		"html",
		"Output format: json, html, or all",
	)
	analyzeCmd.Flags().BoolVar(
		&analyzeList,
		"list",
		false,
		"List the file numbers present in the input and exit",
	)
	analyzeCmd.MarkFlagRequired("input")
}

func runAnalyze() error {
	runner, _, err := newRunner()
	if err != nil {
		return err
	}

	if analyzeList {
		numbers, err := runner.FileNumbers(analyzeInput)
		if err != nil {
			return err
		}
		if len(numbers) == 0 {
			fmt.Println("No file numbers found in input")
			return nil
		}
		for _, no := range numbers {
			fmt.Println(no)
		}
		return nil
	}

	if analyzeFileNo == "" {
		return fmt.Errorf("--file-no is required (use --list to see available file numbers)")
	}

	formats, err := analysisFormats(analyzeFormat)
	if err != nil {
		return err
	}

	result, err := runner.Analyze(analyzeInput, analyzeFileNo, formats)
	if errors.Is(err, aggregate.ErrNoRecords) {
		return fmt.Errorf("file number %q matches no records (use --list to see available file numbers)", analyzeFileNo)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Analyzed file number %s (%d rows ingested) in %s\n",
		analyzeFileNo,
		result.Stats.RowsIngested,
		result.Stats.ProcessingTime,
	)
	for _, path := range result.OutputFiles {
		fmt.Printf("  wrote %s\n", path)
	}
	return nil
}

// analysisFormats expands the --format flag into pipeline formats.
func analysisFormats(flag string) ([]string, error) {
	switch flag {
	case "json", "html":
		return []string{flag}, nil
	case "all":
		return []string{pipeline.FormatJSON, pipeline.FormatHTML}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want json, html, or all)", flag)
	}
}
