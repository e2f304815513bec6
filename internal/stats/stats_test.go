package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"purchasereport/internal/table"
)

func statsTable() *table.Table {
	return &table.Table{
		Headers: []string{"qty", "supplier", "blank"},
		Rows: []table.Row{
			{"qty": table.IntCell(1), "supplier": table.StringCell("Acme")},
			{"qty": table.IntCell(2), "supplier": table.StringCell("Beta")},
			{"qty": table.IntCell(3), "supplier": table.StringCell("Acme")},
			{"qty": table.IntCell(4), "supplier": table.StringCell("Acme")},
		},
	}
}

func TestDescribeSplitsColumns(t *testing.T) {
	summary := Describe(statsTable())

	assert.Contains(t, summary.Numeric, "qty")
	assert.Contains(t, summary.Categorical, "supplier")
	// An entirely missing column has no numeric evidence.
	assert.Contains(t, summary.Categorical, "blank")
}

func TestDescribeNumericMoments(t *testing.T) {
	summary := Describe(statsTable())

	qty := summary.Numeric["qty"]
	assert.Equal(t, 4, qty.Count)
	require.NotNil(t, qty.Mean)
	assert.InDelta(t, 2.5, *qty.Mean, 1e-9)
	require.NotNil(t, qty.Std)
	assert.InDelta(t, 1.2909944487, *qty.Std, 1e-9)
	require.NotNil(t, qty.Min)
	assert.Equal(t, 1.0, *qty.Min)
	require.NotNil(t, qty.Max)
	assert.Equal(t, 4.0, *qty.Max)
}

func TestDescribeSingleValueHasNoStd(t *testing.T) {
	tab := &table.Table{
		Headers: []string{"price"},
		Rows:    []table.Row{{"price": table.FloatCell(9.5)}},
	}

	price := Describe(tab).Numeric["price"]
	assert.Equal(t, 1, price.Count)
	require.NotNil(t, price.Mean)
	assert.Equal(t, 9.5, *price.Mean)
	assert.Nil(t, price.Std)
}

func TestDescribeMixedColumnIsCategorical(t *testing.T) {
	tab := &table.Table{
		Headers: []string{"code"},
		Rows: []table.Row{
			{"code": table.IntCell(11)},
			{"code": table.StringCell("n/a")},
		},
	}

	summary := Describe(tab)
	assert.NotContains(t, summary.Numeric, "code")
	assert.Contains(t, summary.Categorical, "code")
}

func TestDescribeCategoricalOrdering(t *testing.T) {
	supplier := Describe(statsTable()).Categorical["supplier"]
	assert.Equal(t, 2, supplier.UniqueCount)
	require.Len(t, supplier.TopValues, 2)
	assert.Equal(t, ValueCount{Value: "Acme", Count: 3}, supplier.TopValues[0])
	assert.Equal(t, ValueCount{Value: "Beta", Count: 1}, supplier.TopValues[1])
}

func TestDescribeCategoricalTopTen(t *testing.T) {
	rows := make([]table.Row, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, table.Row{"name": table.StringCell(fmt.Sprintf("v%02d", i))})
	}
	tab := &table.Table{Headers: []string{"name"}, Rows: rows}

	name := Describe(tab).Categorical["name"]
	assert.Equal(t, 12, name.UniqueCount)
	assert.Len(t, name.TopValues, 10)
	// Equal counts fall back to first-seen order.
	assert.Equal(t, "v00", name.TopValues[0].Value)
}
