// =============================================================================
// Purchase Report Engine - Ingestion
// =============================================================================
//
// This package reads source exports from the in-house purchasing system into
// an in-memory table. Two formats are supported:
//   - .xlsx workbooks (the system's current export format)
//   - .csv files (re-exports, historically Shift-JIS encoded)
//
// Ingestion only materializes the table; all interpretation of the data
// (column meaning, value cleaning, category mapping) happens downstream.
// Cell typing is inferred per value: blank cells are missing, values that
// parse as numbers become numeric cells, everything else stays text.
//
// =============================================================================

package ingest

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"purchasereport/internal/table"
)

// ReadFile ingests a source export, dispatching on the file extension.
func ReadFile(path string) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadWorkbook(path)
	case ".csv":
		return ReadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}

// DetectCell infers the typed cell for one raw textual value. Whole numbers
// become Int cells, other parseable numbers Float cells; empty values are
// missing.
func DetectCell(raw string) table.Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return table.MissingCell
	}

	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return table.IntCell(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return table.FloatCell(f)
	}

	return table.StringCell(trimmed)
}

// cleanHeaders trims header labels and synthesizes a positional name for
// blank ones so every column stays addressable.
func cleanHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		headers[i] = h
	}
	return headers
}

// buildRows converts raw string rows into typed table rows, skipping rows
// that are entirely blank. Short rows leave their trailing columns missing.
func buildRows(raw [][]string, headers []string) []table.Row {
	rows := make([]table.Row, 0, len(raw))

	for _, cells := range raw {
		if isRowEmpty(cells) {
			continue
		}

		row := make(table.Row, len(headers))
		for i, header := range headers {
			if i < len(cells) {
				row[header] = DetectCell(cells[i])
			} else {
				row[header] = table.MissingCell
			}
		}
		rows = append(rows, row)
	}

	return rows
}

func isRowEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
