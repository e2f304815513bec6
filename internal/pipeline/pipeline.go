// =============================================================================
// Purchase Report Engine - Pipeline Orchestration
// =============================================================================
//
// This module runs the report pipelines end to end for one input file:
//
//   REPORT PIPELINE (Process):
//     1. Ingest the source export into a table
//     2. Normalize rows (resolve columns, sanitize values, map categories)
//     3. Project the flat detail table and the category/file summaries
//     4. Compute per-column statistics over the raw table
//     5. Write the requested output formats
//
//   ANALYSIS PIPELINE (Analyze):
//     1-2. As above
//     3. Build the hierarchical rollup for one file number
//     4. Project and write it as JSON and/or HTML
//
// The engine stages (2-4) are pure and synchronous; all I/O sits at the two
// ends. Per-value problems never fail a run - they were already absorbed as
// defaults during normalization. The only data-level failure a caller must
// branch on is aggregate.ErrNoRecords from an empty file-number selection.
//
// =============================================================================

package pipeline

import (
	"fmt"
	"time"

	"purchasereport/internal/aggregate"
	"purchasereport/internal/categories"
	"purchasereport/internal/config"
	"purchasereport/internal/export"
	"purchasereport/internal/ingest"
	"purchasereport/internal/normalize"
	"purchasereport/internal/report"
	"purchasereport/internal/stats"
	"purchasereport/pkg/utils"
)

// Output formats accepted by Process and Analyze.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatHTML = "html"
)

// =============================================================================
// RUNNER
// =============================================================================

// Runner executes report pipelines with a fixed configuration and category
// mapping. It is safe to reuse across input files.
type Runner struct {
	cfg    *config.Config
	mapper *categories.Mapper
	files  *utils.FileManager
	logger Logger
}

// New creates a Runner. A nil logger falls back to the config's level.
func New(cfg *config.Config, mapper *categories.Mapper, logger Logger) *Runner {
	if logger == nil {
		logger = NewLogger(cfg.LogLevel)
	}
	return &Runner{
		cfg:    cfg,
		mapper: mapper,
		files:  utils.NewFileManager(cfg.OutputDir, cfg.OutputNameFormat),
		logger: logger,
	}
}

// Result reports what one pipeline run produced.
type Result struct {
	// InputFile is the ingested source file.
	InputFile string

	// OutputFiles are the report files written, in write order.
	OutputFiles []string

	// Stats holds run statistics for the summary line.
	Stats Stats
}

// Stats contains statistics about one run.
type Stats struct {
	// RowsIngested is the number of data rows read from the source.
	RowsIngested int

	// ColumnsDetected is the number of source columns.
	ColumnsDetected int

	// FileNumbers is the number of distinct file numbers seen.
	FileNumbers int

	// ProcessingTime is the wall time of the run.
	ProcessingTime time.Duration
}

// =============================================================================
// REPORT PIPELINE
// =============================================================================

// Process runs the flat report pipeline and writes the requested formats
// ("json" writes both the detail and the summary documents).
func (r *Runner) Process(inputPath string, formats []string) (Result, error) {
	start := time.Now()
	result := Result{InputFile: inputPath}

	r.logger.Info("Processing file: %s", inputPath)

	t, err := ingest.ReadFile(inputPath)
	if err != nil {
		return result, fmt.Errorf("failed to ingest %s: %w", inputPath, err)
	}
	result.Stats.RowsIngested = len(t.Rows)
	result.Stats.ColumnsDetected = len(t.Headers)
	r.logger.Debug("Ingested %d rows, %d columns", len(t.Rows), len(t.Headers))

	records := normalize.Normalize(t, r.mapper)
	result.Stats.FileNumbers = len(aggregate.FileNumbers(records))
	r.logger.Debug("Normalized %d records (%d file numbers)", len(records), result.Stats.FileNumbers)

	rows := report.FlatRows(records)
	catSummary := report.CategorySummary(records)
	fileSummary := report.FileSummary(records)

	if err := r.files.EnsureOutputDir(); err != nil {
		return result, err
	}

	now := time.Now().Format(time.RFC3339)
	for _, format := range formats {
		switch format {
		case FormatJSON:
			detail := export.DetailDocument{
				Metadata: export.DetailMetadata{
					GeneratedAt:  now,
					SourceFile:   inputPath,
					TotalRecords: len(rows),
					Columns:      report.FlatHeaders(),
					FileNo:       firstFileNo(records),
				},
				Statistics: stats.Describe(t),
				Data:       rows,
			}
			path := r.files.OutputPath("purchase_report", "", "json")
			if err := export.WriteDetailJSON(path, detail); err != nil {
				return result, err
			}
			result.OutputFiles = append(result.OutputFiles, path)

			summary := export.SummaryDocument{
				Metadata: export.SummaryMetadata{
					GeneratedAt:   now,
					CategoryCount: len(catSummary),
					FileCount:     len(fileSummary),
				},
				CategorySummary: catSummary,
				FileSummary:     fileSummary,
			}
			path = r.files.OutputPath("purchase_summary", "", "json")
			if err := export.WriteSummaryJSON(path, summary); err != nil {
				return result, err
			}
			result.OutputFiles = append(result.OutputFiles, path)

		case FormatCSV:
			path := r.files.OutputPath("purchase_report", "", "csv")
			if err := export.WriteFlatCSV(path, rows); err != nil {
				return result, err
			}
			result.OutputFiles = append(result.OutputFiles, path)

		case FormatXLSX:
			path := r.files.OutputPath("purchase_report", "", "xlsx")
			if err := export.WriteFlatWorkbook(path, rows); err != nil {
				return result, err
			}
			result.OutputFiles = append(result.OutputFiles, path)

		default:
			return result, fmt.Errorf("unsupported report format: %s", format)
		}
	}

	result.Stats.ProcessingTime = time.Since(start)
	r.logger.Info("Wrote %d output file(s) in %s", len(result.OutputFiles), result.Stats.ProcessingTime)
	return result, nil
}

// =============================================================================
// ANALYSIS PIPELINE
// =============================================================================

// Analyze runs the hierarchical rollup for one file number and writes the
// requested formats. If the file number matches no records, the returned
// error wraps aggregate.ErrNoRecords.
func (r *Runner) Analyze(inputPath, fileNo string, formats []string) (Result, error) {
	start := time.Now()
	result := Result{InputFile: inputPath}

	r.logger.Info("Analyzing file number %s in %s", fileNo, inputPath)

	t, err := ingest.ReadFile(inputPath)
	if err != nil {
		return result, fmt.Errorf("failed to ingest %s: %w", inputPath, err)
	}
	result.Stats.RowsIngested = len(t.Rows)
	result.Stats.ColumnsDetected = len(t.Headers)

	records := normalize.Normalize(t, r.mapper)
	result.Stats.FileNumbers = len(aggregate.FileNumbers(records))

	tree, err := aggregate.Build(records, fileNo)
	if err != nil {
		return result, err
	}
	r.logger.Debug("Rolled up %d records into %d categories", tree.TotalRecords, len(tree.Categories))

	analysis := report.ProjectAnalysis(tree)

	if err := r.files.EnsureOutputDir(); err != nil {
		return result, err
	}

	for _, format := range formats {
		switch format {
		case FormatJSON:
			path := r.files.OutputPath("purchase_analysis", fileNo, "json")
			if err := export.WriteAnalysisJSON(path, analysis); err != nil {
				return result, err
			}
			result.OutputFiles = append(result.OutputFiles, path)

		case FormatHTML:
			path := r.files.OutputPath("purchase_analysis", fileNo, "html")
			if err := export.WriteAnalysisHTML(path, analysis); err != nil {
				return result, err
			}
			result.OutputFiles = append(result.OutputFiles, path)

		default:
			return result, fmt.Errorf("unsupported analysis format: %s", format)
		}
	}

	result.Stats.ProcessingTime = time.Since(start)
	r.logger.Info("Wrote %d output file(s) in %s", len(result.OutputFiles), result.Stats.ProcessingTime)
	return result, nil
}

// FileNumbers ingests the input and lists the distinct file numbers it
// contains, for selection before Analyze.
func (r *Runner) FileNumbers(inputPath string) ([]string, error) {
	t, err := ingest.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to ingest %s: %w", inputPath, err)
	}
	return aggregate.FileNumbers(normalize.Normalize(t, r.mapper)), nil
}

// firstFileNo mirrors the detail export's provenance field: the file number
// of the first record, empty when the table is empty.
func firstFileNo(records []normalize.Record) string {
	if len(records) == 0 {
		return ""
	}
	return records[0].FileNo
}
