// =============================================================================
// Purchase Report Engine - Column Resolver
// =============================================================================
//
// Source files come out of the in-house purchasing system with unstable
// headers: columns get renamed between exports, half-width katakana headers
// survive encoding repair in slightly different forms, and column order is
// not guaranteed. This module decouples the engine from exact header text by
// resolving each semantic field through a keyword search:
//
//   Pass 1 - exact match, case-sensitive.
//   Pass 2 - substring match, case-insensitive.
//
// Both passes walk the columns in their original order; within a column the
// keywords are tried in priority order. Resolution is best-effort: a field
// that cannot be found is simply reported as unresolved, and downstream
// consumers substitute the type default for it. Ambiguous header sets (two
// columns matching the same keyword) resolve to the first column; that is a
// documented limitation of keyword discovery, not an error.
//
// =============================================================================

package resolve

import "strings"

// =============================================================================
// SEMANTIC FIELDS
// =============================================================================

// Semantic field names. These are the stable identifiers the rest of the
// engine uses; the raw header text behind each one varies per source file.
const (
	FieldCategoryCode  = "category_code"
	FieldCategoryName  = "category_name"
	FieldSupplierCode  = "supplier_code"
	FieldSupplierName  = "supplier_name"
	FieldFileNo        = "file_no"
	FieldUnitNo        = "unit_no"
	FieldPartNo        = "part_no"
	FieldProductName   = "product_name"
	FieldQuantity      = "quantity"
	FieldUnitPrice     = "unit_price"
	FieldAmount        = "amount"
	FieldManufacturer  = "manufacturer"
	FieldMaterialModel = "material_model"
	FieldReceiveDate   = "receive_date"
)

// Field associates a semantic field name with the header keywords used to
// discover it. Keywords are listed most-specific first.
type Field struct {
	Name     string
	Keywords []string
}

// DefaultFields returns the field definitions for the purchasing exports.
// Keywords cover the system's half-width katakana headers, their full-width
// variants, and the English headers of re-exported files.
func DefaultFields() []Field {
	return []Field{
		{FieldCategoryCode, []string{"分類ｺｰﾄﾞ", "分類コード", "category_code"}},
		{FieldCategoryName, []string{"分類名称", "category_name"}},
		{FieldSupplierCode, []string{"仕入先ｺｰﾄﾞ", "仕入先コード", "supplier_code"}},
		{FieldSupplierName, []string{"仕入先略称", "仕入先", "supplier"}},
		{FieldFileNo, []string{"ﾌｧｲﾙNO", "ファイルNo", "file_no", "file no"}},
		{FieldUnitNo, []string{"ﾕﾆｯﾄNO", "ユニットNo", "unit_no", "unit"}},
		{FieldPartNo, []string{"部品番号", "part_no", "part no"}},
		{FieldProductName, []string{"品目名称", "品名", "product_name"}},
		{FieldQuantity, []string{"受入数量", "数量", "quantity"}},
		{FieldUnitPrice, []string{"受入単価", "単価", "unit_price"}},
		{FieldAmount, []string{"受入金額", "金額", "amount"}},
		{FieldManufacturer, []string{"ﾒｰｶｰ名", "メーカー", "manufacturer"}},
		{FieldMaterialModel, []string{"材質・型式", "材質", "型式", "material"}},
		{FieldReceiveDate, []string{"納入日", "受入日", "receive_date"}},
	}
}

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolve finds the column label matching any of the keywords. It returns
// the label and true on a match, or "" and false when neither pass matches.
func Resolve(headers []string, keywords []string) (string, bool) {
	// Pass 1: exact, case-sensitive.
	for _, header := range headers {
		for _, keyword := range keywords {
			if header == keyword {
				return header, true
			}
		}
	}

	// Pass 2: substring, case-insensitive.
	for _, header := range headers {
		lower := strings.ToLower(header)
		for _, keyword := range keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return header, true
			}
		}
	}

	return "", false
}

// Columns maps semantic field names to the concrete column label found in a
// given table. Fields that could not be resolved are absent from the map.
// Computed once per table and reused for every row.
type Columns map[string]string

// ResolveAll resolves every field against the table headers.
func ResolveAll(headers []string, fields []Field) Columns {
	cols := make(Columns, len(fields))
	for _, field := range fields {
		if label, ok := Resolve(headers, field.Keywords); ok {
			cols[field.Name] = label
		}
	}
	return cols
}

// Label returns the resolved column label for a semantic field, and whether
// the field was resolved at all.
func (c Columns) Label(field string) (string, bool) {
	label, ok := c[field]
	return label, ok
}
