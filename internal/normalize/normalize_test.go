package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"purchasereport/internal/categories"
	"purchasereport/internal/table"
)

func testTable() *table.Table {
	return &table.Table{
		Headers: []string{
			"分類ｺｰﾄﾞ", "分類名称", "仕入先ｺｰﾄﾞ", "仕入先略称", "ﾌｧｲﾙNO",
			"ﾕﾆｯﾄNO", "部品番号", "品目名称", "受入数量", "受入単価",
			"受入金額", "ﾒｰｶｰ名", "材質・型式", "納入日",
		},
		Rows: []table.Row{
			{
				"分類ｺｰﾄﾞ":  table.FloatCell(11.0),
				"分類名称":   table.StringCell("旧名称"),
				"仕入先ｺｰﾄﾞ": table.IntCell(7031),
				"仕入先略称":  table.StringCell("Acme"),
				"ﾌｧｲﾙNO":  table.StringCell("F-1024"),
				"ﾕﾆｯﾄNO":  table.FloatCell(3.0),
				"部品番号":   table.IntCell(112),
				"品目名称":   table.StringCell("Relay"),
				"受入数量":   table.IntCell(2),
				"受入単価":   table.FloatCell(100),
				"受入金額":   table.FloatCell(200),
				"ﾒｰｶｰ名":   table.StringCell("Omron"),
				"材質・型式":  table.StringCell("MY2N"),
				"納入日":    table.StringCell("2025-07-14"),
			},
			{
				"分類ｺｰﾄﾞ": table.StringCell("99"),
				"分類名称":  table.StringCell("Custom"),
				"仕入先略称": table.StringCell("Beta"),
				"ﾌｧｲﾙNO": table.StringCell("F-1024"),
				"ﾕﾆｯﾄNO": table.StringCell("ST-4"),
			},
		},
	}
}

func TestNormalize(t *testing.T) {
	records := Normalize(testTable(), categories.NewMapper(nil))
	require.Len(t, records, 2)

	rec := records[0]
	assert.Equal(t, "11", rec.CategoryCode)
	assert.Equal(t, "E:parts", rec.CategoryName, "code 11 replaces the raw name")
	assert.Equal(t, "7031", rec.SupplierCode)
	assert.Equal(t, "Acme", rec.SupplierName)
	assert.Equal(t, "F-1024", rec.FileNo)
	assert.Equal(t, "03unit", rec.UnitNo)
	assert.Equal(t, "112", rec.PartNo)
	assert.Equal(t, "Relay", rec.ProductName)
	assert.Equal(t, 2.0, rec.Quantity)
	assert.Equal(t, 100.0, rec.UnitPrice)
	assert.Equal(t, 200.0, rec.Amount)
	assert.Equal(t, "Omron", rec.Manufacturer)
	assert.Equal(t, "MY2N", rec.MaterialModel)
	assert.Equal(t, "2025-07-14", rec.ReceiveDate)
	assert.Equal(t, 200.0, rec.TotalPrice())
}

func TestNormalizeDefaults(t *testing.T) {
	records := Normalize(testTable(), categories.NewMapper(nil))
	rec := records[1]

	// Unmapped code keeps the record's own name.
	assert.Equal(t, "99", rec.CategoryCode)
	assert.Equal(t, "Custom", rec.CategoryName)

	// Absent cells take their type defaults.
	assert.Equal(t, "-", rec.SupplierCode)
	assert.Equal(t, "-", rec.ProductName)
	assert.Equal(t, "-", rec.Manufacturer)
	assert.Equal(t, 0.0, rec.Quantity)
	assert.Equal(t, 0.0, rec.UnitPrice)
	assert.Equal(t, 0.0, rec.TotalPrice())

	// Non-numeric unit numbers pass through as text.
	assert.Equal(t, "ST-4", rec.UnitNo)
}

func TestNormalizeMissingColumns(t *testing.T) {
	// A table missing most semantic columns still normalizes: every field
	// carries its type default instead of failing the run.
	tbl := &table.Table{
		Headers: []string{"仕入先略称"},
		Rows: []table.Row{
			{"仕入先略称": table.StringCell("Gamma")},
		},
	}

	records := Normalize(tbl, categories.NewMapper(nil))
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Gamma", rec.SupplierName)
	assert.Equal(t, "00", rec.CategoryCode, "missing code coerces to zero before padding")
	assert.Equal(t, "-", rec.CategoryName)
	assert.Equal(t, "-", rec.FileNo)
	assert.Equal(t, "-", rec.UnitNo)
	assert.Equal(t, 0.0, rec.Quantity)
	assert.Equal(t, 0.0, rec.UnitPrice)
	assert.Equal(t, 0.0, rec.Amount)
}

func TestFormatUnitNo(t *testing.T) {
	tests := []struct {
		name string
		cell table.Cell
		want string
	}{
		{"missing", table.MissingCell, "-"},
		{"empty", table.StringCell(""), "-"},
		{"nan literal", table.StringCell("nan"), "-"},
		{"integer", table.IntCell(3), "03unit"},
		{"float export artifact", table.FloatCell(12.0), "12unit"},
		{"numeric string", table.StringCell("5.0"), "05unit"},
		{"text passes through", table.StringCell("ST-4"), "ST-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUnitNo(tt.cell))
		})
	}
}
