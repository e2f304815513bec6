// =============================================================================
// Purchase Report Engine - Report Assembler (Flat Projections)
// =============================================================================
//
// Flat projections back the top-level summaries and the formatted-sheet
// export. They use the same stable-grouping discipline as the hierarchical
// aggregator (first-seen order of each distinct key) but produce plain
// tables, not trees. The summary amounts come from the received-amount
// column as exported by the source system, not from the recomputed per-line
// totals.
//
// =============================================================================

package report

import "purchasereport/internal/normalize"

// =============================================================================
// FLAT DETAIL TABLE
// =============================================================================

// FlatRow is one line of the fixed 13-column detail sheet. Every field is
// already sanitized; a column missing from the source simply carries its
// type default for the whole table.
type FlatRow struct {
	CategoryCode  string  `json:"category_code"`
	CategoryName  string  `json:"category_name"`
	SupplierCode  string  `json:"supplier_code"`
	SupplierName  string  `json:"supplier_name"`
	FileID        string  `json:"file_id"`
	UnitID        string  `json:"unit_id"`
	PartNo        string  `json:"part_no"`
	ProductName   string  `json:"product_name"`
	Manufacturer  string  `json:"manufacturer"`
	MaterialModel string  `json:"material_model"`
	Quantity      int64   `json:"quantity"`
	ReceiveDate   string  `json:"receive_date"`
	UnitPrice     float64 `json:"unit_price"`
}

// FlatHeaders lists the column titles of the detail sheet, in sheet order.
func FlatHeaders() []string {
	return []string{
		"category_code", "category_name", "supplier_code", "supplier_name",
		"file_id", "unit_id", "part_no", "product_name", "manufacturer",
		"material_model", "quantity", "receive_date", "unit_price",
	}
}

// FlatRows projects the records into the detail sheet shape, preserving
// record order. Quantities render as whole numbers on the sheet.
func FlatRows(records []normalize.Record) []FlatRow {
	rows := make([]FlatRow, len(records))
	for i, rec := range records {
		rows[i] = FlatRow{
			CategoryCode:  rec.CategoryCode,
			CategoryName:  rec.CategoryName,
			SupplierCode:  rec.SupplierCode,
			SupplierName:  rec.SupplierName,
			FileID:        rec.FileNo,
			UnitID:        rec.UnitNo,
			PartNo:        rec.PartNo,
			ProductName:   rec.ProductName,
			Manufacturer:  rec.Manufacturer,
			MaterialModel: rec.MaterialModel,
			Quantity:      int64(rec.Quantity),
			ReceiveDate:   rec.ReceiveDate,
			UnitPrice:     rec.UnitPrice,
		}
	}
	return rows
}

// =============================================================================
// FLAT SUMMARIES
// =============================================================================

// CategorySummaryRow aggregates record count and received amount for one
// (category code, canonical name) pair.
type CategorySummaryRow struct {
	CategoryCode string  `json:"category_code"`
	CategoryName string  `json:"category_name"`
	Count        int     `json:"count"`
	TotalAmount  float64 `json:"total_amount"`
}

// FileSummaryRow aggregates record count and received amount for one file
// number.
type FileSummaryRow struct {
	FileID      string  `json:"file_id"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

// CategorySummary groups records by (category code, canonical name) in
// first-seen order.
func CategorySummary(records []normalize.Record) []CategorySummaryRow {
	type key struct{ code, name string }

	var order []key
	totals := make(map[key]*CategorySummaryRow)

	for _, rec := range records {
		k := key{rec.CategoryCode, rec.CategoryName}
		row, ok := totals[k]
		if !ok {
			row = &CategorySummaryRow{CategoryCode: k.code, CategoryName: k.name}
			totals[k] = row
			order = append(order, k)
		}
		row.Count++
		row.TotalAmount += rec.Amount
	}

	out := make([]CategorySummaryRow, len(order))
	for i, k := range order {
		out[i] = *totals[k]
	}
	return out
}

// FileSummary groups records by file number in first-seen order.
func FileSummary(records []normalize.Record) []FileSummaryRow {
	var order []string
	totals := make(map[string]*FileSummaryRow)

	for _, rec := range records {
		row, ok := totals[rec.FileNo]
		if !ok {
			row = &FileSummaryRow{FileID: rec.FileNo}
			totals[rec.FileNo] = row
			order = append(order, rec.FileNo)
		}
		row.Count++
		row.TotalAmount += rec.Amount
	}

	out := make([]FileSummaryRow, len(order))
	for i, id := range order {
		out[i] = *totals[id]
	}
	return out
}
