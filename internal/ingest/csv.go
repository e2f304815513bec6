// =============================================================================
// Purchase Report Engine - CSV Ingestion
// =============================================================================
//
// CSV re-exports from the legacy system predate its UTF-8 migration and
// frequently arrive Shift-JIS encoded, with half-width katakana headers that
// mangle further if decoded as Latin-1. Files that are not valid UTF-8 are
// therefore re-decoded as Shift-JIS before parsing.
//
// =============================================================================

package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"purchasereport/internal/table"
)

// ReadCSV ingests a CSV export. The first row is the header row.
func ReadCSV(path string) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	data, err = repairEncoding(data)
	if err != nil {
		return nil, fmt.Errorf("failed to repair encoding: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	raw, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("CSV file is empty: %s", path)
	}

	headers := cleanHeaders(raw[0])
	return &table.Table{
		Headers:    headers,
		Rows:       buildRows(raw[1:], headers),
		SourceFile: path,
	}, nil
}

// repairEncoding converts Shift-JIS content to UTF-8. Valid UTF-8 input
// (including a leading BOM, which is stripped) passes through untouched.
func repairEncoding(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(data) {
		return data, nil
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("shift-jis decode: %w", err)
	}
	return decoded, nil
}
