// =============================================================================
// Purchase Report Engine - Hierarchical Aggregator
// =============================================================================
//
// This module builds the three-level purchase rollup for one file number:
//
//   category -> supplier -> product line
//
// Grouping is insertion-stable (first-seen order of each distinct key is the
// baseline), every level is then sorted by total amount descending, and ties
// keep their first-seen order. Stability does not lean on an implicit
// container guarantee: each group carries an explicit first-seen sequence
// number that serves as the sort tie-break.
//
// Totals and record counts are computed bottom-up exactly once. A non-leaf
// node's total is the sum over its children; leaves hold the literal
// per-line total (unit price x quantity).
//
// =============================================================================

package aggregate

import (
	"errors"
	"fmt"
	"sort"

	"purchasereport/internal/normalize"
	"purchasereport/internal/sanitize"
)

// ErrNoRecords is returned by Build when the requested file number matches
// no records. Callers must branch on it (errors.Is) rather than treat the
// outcome as an empty-but-valid tree.
var ErrNoRecords = errors.New("no records for file number")

// =============================================================================
// TREE TYPES
// =============================================================================

// Product is a leaf node: one purchased line item.
type Product struct {
	UnitNo        string
	PartNo        string
	ProductName   string
	Quantity      float64
	UnitPrice     float64
	TotalPrice    float64
	Manufacturer  string
	MaterialModel string
	ReceiveDate   string
}

// Supplier groups the product lines bought from one supplier within a
// category. TotalAmount and RecordCount equal the sums over Products.
type Supplier struct {
	Name        string
	RecordCount int
	TotalAmount float64
	Products    []Product
}

// Category groups suppliers under one canonical category name. TotalAmount
// and RecordCount equal the sums over Suppliers.
type Category struct {
	Name        string
	RecordCount int
	TotalAmount float64
	Suppliers   []Supplier
}

// Tree is the finished rollup for one file number. It is a terminal,
// read-only artifact: nothing mutates it after Build returns.
type Tree struct {
	FileNo       string
	TotalRecords int
	TotalAmount  float64
	Categories   []Category
}

// =============================================================================
// BUILD
// =============================================================================

// grouping keys with an explicit first-seen sequence for sort tie-breaks.
type categoryGroup struct {
	seq       int
	name      string
	suppliers []*supplierGroup
	index     map[string]*supplierGroup
}

type supplierGroup struct {
	seq      int
	name     string
	products []Product
}

// Build constructs the rollup tree for one file number over the sanitized
// records. Records belonging to other file numbers are ignored; if none
// match, Build fails with ErrNoRecords.
func Build(records []normalize.Record, fileNo string) (*Tree, error) {
	var groups []*categoryGroup
	index := make(map[string]*categoryGroup)
	matched := 0

	for _, rec := range records {
		if rec.FileNo != fileNo {
			continue
		}
		matched++

		cat, ok := index[rec.CategoryName]
		if !ok {
			cat = &categoryGroup{
				seq:   len(groups),
				name:  rec.CategoryName,
				index: make(map[string]*supplierGroup),
			}
			index[rec.CategoryName] = cat
			groups = append(groups, cat)
		}

		sup, ok := cat.index[rec.SupplierName]
		if !ok {
			sup = &supplierGroup{seq: len(cat.suppliers), name: rec.SupplierName}
			cat.index[rec.SupplierName] = sup
			cat.suppliers = append(cat.suppliers, sup)
		}

		sup.products = append(sup.products, Product{
			UnitNo:        rec.UnitNo,
			PartNo:        rec.PartNo,
			ProductName:   rec.ProductName,
			Quantity:      rec.Quantity,
			UnitPrice:     rec.UnitPrice,
			TotalPrice:    rec.TotalPrice(),
			Manufacturer:  rec.Manufacturer,
			MaterialModel: rec.MaterialModel,
			ReceiveDate:   rec.ReceiveDate,
		})
	}

	if matched == 0 {
		return nil, fmt.Errorf("file %q: %w", fileNo, ErrNoRecords)
	}

	tree := &Tree{FileNo: fileNo, TotalRecords: matched}
	for _, cat := range groups {
		tree.Categories = append(tree.Categories, buildCategory(cat))
	}
	for i := range tree.Categories {
		tree.TotalAmount += tree.Categories[i].TotalAmount
	}

	// Categories by total descending; the first-seen sequence breaks ties
	// explicitly rather than relying on sort stability alone.
	sort.SliceStable(tree.Categories, func(i, j int) bool {
		a, b := tree.Categories[i], tree.Categories[j]
		if a.TotalAmount != b.TotalAmount {
			return a.TotalAmount > b.TotalAmount
		}
		return index[a.Name].seq < index[b.Name].seq
	})

	return tree, nil
}

func buildCategory(cat *categoryGroup) Category {
	out := Category{Name: cat.name}

	for _, sup := range cat.suppliers {
		s := Supplier{Name: sup.name, Products: sup.products}

		// Leaves keep input order as the tie-break: a stable sort on total
		// price descending preserves equal-total lines as ingested.
		sort.SliceStable(s.Products, func(i, j int) bool {
			return s.Products[i].TotalPrice > s.Products[j].TotalPrice
		})

		s.RecordCount = len(s.Products)
		for _, p := range s.Products {
			s.TotalAmount += p.TotalPrice
		}

		out.Suppliers = append(out.Suppliers, s)
		out.RecordCount += s.RecordCount
		out.TotalAmount += s.TotalAmount
	}

	// Suppliers by total descending, first-seen order on ties.
	sort.SliceStable(out.Suppliers, func(i, j int) bool {
		a, b := out.Suppliers[i], out.Suppliers[j]
		if a.TotalAmount != b.TotalAmount {
			return a.TotalAmount > b.TotalAmount
		}
		return cat.index[a.Name].seq < cat.index[b.Name].seq
	})

	return out
}

// FileNumbers returns the distinct file numbers present in the records,
// sorted ascending. Used by callers to offer a selection before Build.
func FileNumbers(records []normalize.Record) []string {
	seen := make(map[string]bool)
	var numbers []string
	for _, rec := range records {
		// Records without a usable file number carry the "-" placeholder.
		if rec.FileNo == "" || rec.FileNo == sanitize.Placeholder || seen[rec.FileNo] {
			continue
		}
		seen[rec.FileNo] = true
		numbers = append(numbers, rec.FileNo)
	}
	sort.Strings(numbers)
	return numbers
}
