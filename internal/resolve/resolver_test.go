package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveExactBeatsSubstring(t *testing.T) {
	// "amount_note" contains "Amount" case-insensitively and comes first,
	// but the exact pass runs to completion before substring matching.
	headers := []string{"amount_note", "Amount"}

	label, ok := Resolve(headers, []string{"Amount"})
	assert.True(t, ok)
	assert.Equal(t, "Amount", label)
}

func TestResolveSubstringCaseInsensitive(t *testing.T) {
	headers := []string{"納入日", "受入単価(税抜)"}

	label, ok := Resolve(headers, []string{"受入単価"})
	assert.True(t, ok)
	assert.Equal(t, "受入単価(税抜)", label)

	label, ok = Resolve([]string{"Unit_Price_JPY"}, []string{"unit_price"})
	assert.True(t, ok)
	assert.Equal(t, "Unit_Price_JPY", label)
}

func TestResolveColumnOrderWins(t *testing.T) {
	// Two columns match the same keyword: the first column in source order
	// resolves. Documented limitation of keyword discovery.
	headers := []string{"supplier_name_old", "supplier_name"}

	label, ok := Resolve(headers, []string{"supplier"})
	assert.True(t, ok)
	assert.Equal(t, "supplier_name_old", label)
}

func TestResolveNotFound(t *testing.T) {
	label, ok := Resolve([]string{"a", "b"}, []string{"quantity"})
	assert.False(t, ok)
	assert.Equal(t, "", label)
}

func TestResolveAll(t *testing.T) {
	headers := []string{"分類ｺｰﾄﾞ", "分類名称", "仕入先略称", "ﾌｧｲﾙNO", "受入数量", "受入単価"}

	cols := ResolveAll(headers, DefaultFields())

	for field, wantLabel := range map[string]string{
		FieldCategoryCode: "分類ｺｰﾄﾞ",
		FieldCategoryName: "分類名称",
		FieldSupplierName: "仕入先略称",
		FieldFileNo:       "ﾌｧｲﾙNO",
		FieldQuantity:     "受入数量",
		FieldUnitPrice:    "受入単価",
	} {
		label, ok := cols.Label(field)
		assert.True(t, ok, "field %s unresolved", field)
		assert.Equal(t, wantLabel, label, "field %s", field)
	}

	// Fields whose columns are absent stay unresolved instead of failing.
	_, ok := cols.Label(FieldManufacturer)
	assert.False(t, ok)
	_, ok = cols.Label(FieldReceiveDate)
	assert.False(t, ok)
}

func TestDefaultFieldsCoverAllSemanticNames(t *testing.T) {
	want := []string{
		FieldCategoryCode, FieldCategoryName, FieldSupplierCode,
		FieldSupplierName, FieldFileNo, FieldUnitNo, FieldPartNo,
		FieldProductName, FieldQuantity, FieldUnitPrice, FieldAmount,
		FieldManufacturer, FieldMaterialModel, FieldReceiveDate,
	}

	seen := make(map[string]bool)
	for _, f := range DefaultFields() {
		seen[f.Name] = true
		assert.NotEmpty(t, f.Keywords, "field %s has no keywords", f.Name)
	}
	for _, name := range want {
		assert.True(t, seen[name], "field %s missing from defaults", name)
	}
}
