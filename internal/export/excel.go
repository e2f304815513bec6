// =============================================================================
// Purchase Report Engine - Workbook Export
// =============================================================================

package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"purchasereport/internal/report"
)

// sheetName is the single sheet the formatted detail table is written to.
const sheetName = "purchase_report"

// WriteFlatWorkbook writes the 13-column detail table as an .xlsx workbook
// laid out the way the purchasing department files it: one header row, one
// line per purchase, numeric quantity and unit price cells.
func WriteFlatWorkbook(path string, rows []report.FlatRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, title := range report.FlatHeaders() {
		if err := setCell(f, col+1, 1, title); err != nil {
			return err
		}
	}

	for i, row := range rows {
		values := []interface{}{
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
			row.Quantity,
			row.ReceiveDate,
			row.UnitPrice,
		}
		for col, v := range values {
			if err := setCell(f, col+1, i+2, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("invalid cell coordinates (%d,%d): %w", col, row, err)
	}
	if err := f.SetCellValue(sheetName, cell, v); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}
