package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"purchasereport/internal/normalize"
)

// rec builds a minimal sanitized record for rollup tests.
func rec(fileNo, category, supplier, product string, qty, price float64) normalize.Record {
	return normalize.Record{
		FileNo:       fileNo,
		CategoryName: category,
		SupplierName: supplier,
		ProductName:  product,
		Quantity:     qty,
		UnitPrice:    price,
	}
}

func TestBuildEndToEnd(t *testing.T) {
	records := []normalize.Record{
		rec("F-1", "E:parts", "Acme", "relay", 2, 100),
		rec("F-1", "E:parts", "Acme", "fuse", 1, 50),
		rec("F-1", "E:assembly-board", "Beta", "board", 1, 500),
	}

	tree, err := Build(records, "F-1")
	require.NoError(t, err)

	assert.Equal(t, "F-1", tree.FileNo)
	assert.Equal(t, 3, tree.TotalRecords)
	assert.Equal(t, 750.0, tree.TotalAmount)

	// Categories by total descending: assembly-board (500) before parts (250).
	require.Len(t, tree.Categories, 2)
	assert.Equal(t, "E:assembly-board", tree.Categories[0].Name)
	assert.Equal(t, 500.0, tree.Categories[0].TotalAmount)
	assert.Equal(t, "E:parts", tree.Categories[1].Name)
	assert.Equal(t, 250.0, tree.Categories[1].TotalAmount)

	// Acme has two product lines ordered by per-line total: 200 then 50.
	parts := tree.Categories[1]
	require.Len(t, parts.Suppliers, 1)
	acme := parts.Suppliers[0]
	assert.Equal(t, "Acme", acme.Name)
	assert.Equal(t, 2, acme.RecordCount)
	require.Len(t, acme.Products, 2)
	assert.Equal(t, 200.0, acme.Products[0].TotalPrice)
	assert.Equal(t, 50.0, acme.Products[1].TotalPrice)
}

func TestBuildTotalConservation(t *testing.T) {
	records := []normalize.Record{
		rec("F-1", "A", "S1", "p1", 1, 100),
		rec("F-1", "A", "S1", "p2", 2, 30),
		rec("F-1", "A", "S2", "p3", 1, 70),
		rec("F-1", "B", "S3", "p4", 3, 10),
		rec("F-1", "B", "S3", "p5", 1, 0),
	}

	tree, err := Build(records, "F-1")
	require.NoError(t, err)

	var catTotal float64
	var catCount int
	for _, cat := range tree.Categories {
		var supTotal float64
		var supCount int
		for _, sup := range cat.Suppliers {
			var leafTotal float64
			for _, p := range sup.Products {
				leafTotal += p.TotalPrice
			}
			assert.Equal(t, leafTotal, sup.TotalAmount, "supplier %s", sup.Name)
			assert.Equal(t, len(sup.Products), sup.RecordCount, "supplier %s", sup.Name)
			supTotal += sup.TotalAmount
			supCount += sup.RecordCount
		}
		assert.Equal(t, supTotal, cat.TotalAmount, "category %s", cat.Name)
		assert.Equal(t, supCount, cat.RecordCount, "category %s", cat.Name)
		catTotal += cat.TotalAmount
		catCount += cat.RecordCount
	}
	assert.Equal(t, catTotal, tree.TotalAmount)
	assert.Equal(t, catCount, tree.TotalRecords)
}

func TestBuildLeafSortStability(t *testing.T) {
	// Totals [100, 50, 100, 20] in input order: the two equal totals keep
	// their relative order after the descending sort.
	records := []normalize.Record{
		rec("F-1", "A", "S", "first-100", 1, 100),
		rec("F-1", "A", "S", "fifty", 1, 50),
		rec("F-1", "A", "S", "second-100", 1, 100),
		rec("F-1", "A", "S", "twenty", 1, 20),
	}

	tree, err := Build(records, "F-1")
	require.NoError(t, err)

	products := tree.Categories[0].Suppliers[0].Products
	require.Len(t, products, 4)
	assert.Equal(t, "first-100", products[0].ProductName)
	assert.Equal(t, "second-100", products[1].ProductName)
	assert.Equal(t, "fifty", products[2].ProductName)
	assert.Equal(t, "twenty", products[3].ProductName)
}

func TestBuildTieBreakFirstSeen(t *testing.T) {
	// Equal category and supplier totals keep first-seen order.
	records := []normalize.Record{
		rec("F-1", "B-first", "X", "p", 1, 100),
		rec("F-1", "A-second", "Y", "p", 1, 100),
	}

	tree, err := Build(records, "F-1")
	require.NoError(t, err)

	require.Len(t, tree.Categories, 2)
	assert.Equal(t, "B-first", tree.Categories[0].Name)
	assert.Equal(t, "A-second", tree.Categories[1].Name)
}

func TestBuildDescendingInvariant(t *testing.T) {
	records := []normalize.Record{
		rec("F-1", "A", "S1", "p", 1, 10),
		rec("F-1", "B", "S2", "p", 1, 500),
		rec("F-1", "B", "S3", "p", 1, 20),
		rec("F-1", "C", "S4", "p", 1, 200),
		rec("F-1", "A", "S5", "p", 1, 400),
	}

	tree, err := Build(records, "F-1")
	require.NoError(t, err)

	for i := 1; i < len(tree.Categories); i++ {
		assert.GreaterOrEqual(t, tree.Categories[i-1].TotalAmount, tree.Categories[i].TotalAmount)
	}
	for _, cat := range tree.Categories {
		for i := 1; i < len(cat.Suppliers); i++ {
			assert.GreaterOrEqual(t, cat.Suppliers[i-1].TotalAmount, cat.Suppliers[i].TotalAmount)
		}
		for _, sup := range cat.Suppliers {
			for i := 1; i < len(sup.Products); i++ {
				assert.GreaterOrEqual(t, sup.Products[i-1].TotalPrice, sup.Products[i].TotalPrice)
			}
		}
	}
}

func TestBuildFiltersOtherFiles(t *testing.T) {
	records := []normalize.Record{
		rec("F-1", "A", "S", "p", 1, 100),
		rec("F-2", "A", "S", "p", 1, 900),
	}

	tree, err := Build(records, "F-1")
	require.NoError(t, err)
	assert.Equal(t, 1, tree.TotalRecords)
	assert.Equal(t, 100.0, tree.TotalAmount)
}

func TestBuildNoRecords(t *testing.T) {
	records := []normalize.Record{
		rec("F-1", "A", "S", "p", 1, 100),
	}

	tree, err := Build(records, "F-404")
	assert.Nil(t, tree)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestBuildZeroDefaultsProduceZeroTotals(t *testing.T) {
	// Sanitized defaults (quantity or price zero) yield a zero line total,
	// not a dropped record.
	records := []normalize.Record{
		rec("F-1", "A", "S", "no-price", 3, 0),
		rec("F-1", "A", "S", "no-qty", 0, 250),
	}

	tree, err := Build(records, "F-1")
	require.NoError(t, err)
	assert.Equal(t, 2, tree.TotalRecords)
	assert.Equal(t, 0.0, tree.TotalAmount)
}

func TestFileNumbers(t *testing.T) {
	records := []normalize.Record{
		rec("F-2", "A", "S", "p", 1, 1),
		rec("F-1", "A", "S", "p", 1, 1),
		rec("F-2", "A", "S", "p", 1, 1),
		rec("-", "A", "S", "p", 1, 1),
	}

	assert.Equal(t, []string{"F-1", "F-2"}, FileNumbers(records))
}
