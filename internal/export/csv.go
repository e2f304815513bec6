// =============================================================================
// Purchase Report Engine - CSV Export
// =============================================================================

package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"purchasereport/internal/report"
)

// WriteFlatCSV writes the detail table as CSV. The file starts with a UTF-8
// BOM so Excel opens the multibyte category and supplier names correctly.
func WriteFlatCSV(path string, rows []report.FlatRow) error {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(report.FlatHeaders()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.CategoryCode,
			row.CategoryName,
			row.SupplierCode,
			row.SupplierName,
			row.FileID,
			row.UnitID,
			row.PartNo,
			row.ProductName,
			row.Manufacturer,
			row.MaterialModel,
			strconv.FormatInt(row.Quantity, 10),
			row.ReceiveDate,
			strconv.FormatFloat(row.UnitPrice, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
