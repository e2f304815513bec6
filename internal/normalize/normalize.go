// =============================================================================
// Purchase Report Engine - Record Normalization
// =============================================================================
//
// Normalization turns raw table rows into sanitized records: every semantic
// field resolved to its source column, cleaned to its target type, and the
// category name already replaced through the mapping table. One Record per
// input row; no row is ever dropped for being malformed. A field whose
// source column does not exist in the table simply takes its type default.
//
// PIPELINE POSITION:
//   table.Table -> resolve (locate fields) -> sanitize (clean values)
//               -> categories (canonical name) -> []Record
//
// =============================================================================

package normalize

import (
	"fmt"

	"purchasereport/internal/categories"
	"purchasereport/internal/resolve"
	"purchasereport/internal/sanitize"
	"purchasereport/internal/table"
)

// =============================================================================
// RECORD
// =============================================================================

// Record is one purchase line with all semantic fields coerced to their
// target types. String fields use the "-" placeholder when the source value
// is missing; quantity and unit price default to zero.
type Record struct {
	// CategoryCode is the zero-padded category code string.
	CategoryCode string

	// CategoryName is the canonical category name after mapping, or the
	// record's own raw name when the code has no mapping entry.
	CategoryName string

	SupplierCode string
	SupplierName string

	// FileNo identifies the project file the purchase belongs to.
	FileNo string

	// UnitNo is the formatted unit identifier ("01unit" style for numeric
	// values, raw text otherwise, "-" when absent).
	UnitNo string

	PartNo      string
	ProductName string

	Quantity  float64
	UnitPrice float64

	// Amount is the received amount as exported by the source system. It
	// feeds the flat summaries only; the hierarchical rollup recomputes its
	// own per-line total from quantity and unit price.
	Amount float64

	Manufacturer  string
	MaterialModel string
	ReceiveDate   string
}

// TotalPrice is the per-line purchase total, computed rather than trusted
// from the source: unit price times quantity, zero when either is missing.
func (r Record) TotalPrice() float64 {
	return r.UnitPrice * r.Quantity
}

// =============================================================================
// NORMALIZATION
// =============================================================================

// Normalize builds sanitized records for every row of the table. Columns are
// resolved once against the table headers and reused for all rows.
func Normalize(t *table.Table, mapper *categories.Mapper) []Record {
	cols := resolve.ResolveAll(t.Headers, resolve.DefaultFields())
	records := make([]Record, len(t.Rows))
	for i, row := range t.Rows {
		records[i] = normalizeRow(row, cols, mapper)
	}
	return records
}

func normalizeRow(row table.Row, cols resolve.Columns, mapper *categories.Mapper) Record {
	cell := func(field string) table.Cell {
		label, ok := cols.Label(field)
		if !ok {
			return table.MissingCell
		}
		return row.Get(label)
	}

	codeCell := cell(resolve.FieldCategoryCode)
	rawName := sanitize.CleanString(cell(resolve.FieldCategoryName))

	return Record{
		CategoryCode:  categories.PadCode(codeCell),
		CategoryName:  mapper.Name(codeCell, rawName),
		SupplierCode:  sanitize.CleanString(cell(resolve.FieldSupplierCode)),
		SupplierName:  sanitize.CleanString(cell(resolve.FieldSupplierName)),
		FileNo:        sanitize.CleanString(cell(resolve.FieldFileNo)),
		UnitNo:        FormatUnitNo(cell(resolve.FieldUnitNo)),
		PartNo:        sanitize.CleanString(cell(resolve.FieldPartNo)),
		ProductName:   sanitize.CleanString(cell(resolve.FieldProductName)),
		Quantity:      sanitize.Quantity(cell(resolve.FieldQuantity)),
		UnitPrice:     sanitize.UnitPrice(cell(resolve.FieldUnitPrice)),
		Amount:        sanitize.ToFloat(cell(resolve.FieldAmount), 0),
		Manufacturer:  sanitize.CleanString(cell(resolve.FieldManufacturer)),
		MaterialModel: sanitize.CleanString(cell(resolve.FieldMaterialModel)),
		ReceiveDate:   sanitize.CleanString(cell(resolve.FieldReceiveDate)),
	}
}

// FormatUnitNo renders a unit identifier cell for display. The source system
// exports unit numbers as floats ("3.0"), so numeric values are truncated to
// an integer and rendered as "03unit". Non-numeric text passes through as-is
// and absent values collapse to the placeholder.
func FormatUnitNo(c table.Cell) string {
	text := sanitize.CleanString(c)
	if text == sanitize.Placeholder {
		return sanitize.Placeholder
	}

	if f, ok := sanitize.Numeric(c); ok {
		return fmt.Sprintf("%02dunit", int64(f))
	}
	return text
}
