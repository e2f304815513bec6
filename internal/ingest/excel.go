// =============================================================================
// Purchase Report Engine - Workbook Ingestion
// =============================================================================

package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"purchasereport/internal/table"
)

// ReadWorkbook ingests the first sheet of an .xlsx workbook. The first row
// is the header row; every following row becomes one record.
func ReadWorkbook(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets: %s", path)
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	headers := cleanHeaders(raw[0])
	return &table.Table{
		Headers:    headers,
		Rows:       buildRows(raw[1:], headers),
		SourceFile: path,
	}, nil
}
