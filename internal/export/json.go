// =============================================================================
// Purchase Report Engine - JSON Export
// =============================================================================
//
// JSON writers for the three report documents:
//   - detail   : full flat table with metadata and per-column statistics
//   - summary  : the category and file rollup tables
//   - analysis : the hierarchical per-file rollup
//
// The writers only serialize; document assembly happens in the pipeline.
//
// =============================================================================

package export

import (
	"encoding/json"
	"fmt"
	"os"

	"purchasereport/internal/report"
	"purchasereport/internal/stats"
)

// DetailMetadata describes the provenance of a detail export.
type DetailMetadata struct {
	GeneratedAt  string   `json:"generated_at"`
	SourceFile   string   `json:"source_file"`
	TotalRecords int      `json:"total_records"`
	Columns      []string `json:"columns"`
	FileNo       string   `json:"file_no,omitempty"`
}

// DetailDocument is the analysis-ready detail export: the sanitized flat
// table plus descriptive statistics over the raw columns.
type DetailDocument struct {
	Metadata   DetailMetadata   `json:"metadata"`
	Statistics stats.Summary    `json:"statistics"`
	Data       []report.FlatRow `json:"data"`
}

// SummaryMetadata describes a summary export.
type SummaryMetadata struct {
	GeneratedAt   string `json:"generated_at"`
	CategoryCount int    `json:"category_count"`
	FileCount     int    `json:"file_count"`
}

// SummaryDocument bundles the two flat rollup tables.
type SummaryDocument struct {
	Metadata        SummaryMetadata             `json:"metadata"`
	CategorySummary []report.CategorySummaryRow `json:"category_summary"`
	FileSummary     []report.FileSummaryRow     `json:"file_summary"`
}

// WriteDetailJSON writes the detail document.
func WriteDetailJSON(path string, doc DetailDocument) error {
	return writeJSON(path, doc)
}

// WriteSummaryJSON writes the summary document.
func WriteSummaryJSON(path string, doc SummaryDocument) error {
	return writeJSON(path, doc)
}

// WriteAnalysisJSON writes the hierarchical analysis report.
func WriteAnalysisJSON(path string, analysis report.Analysis) error {
	return writeJSON(path, analysis)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
