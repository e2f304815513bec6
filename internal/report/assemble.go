// =============================================================================
// Purchase Report Engine - Report Assembler (Hierarchical)
// =============================================================================
//
// The assembler projects the finished aggregation tree into the external
// report shape: key-ordered, JSON-taggable structures that the exporters
// write out verbatim. The projection is a pure depth-first walk; the sort
// order established by the aggregator is preserved, never recomputed here.
//
// =============================================================================

package report

import "purchasereport/internal/aggregate"

// Analysis is the hierarchical report for one file number.
type Analysis struct {
	FileNo       string           `json:"file_identifier"`
	TotalRecords int              `json:"total_records"`
	TotalAmount  float64          `json:"total_amount"`
	Categories   []CategoryReport `json:"categories"`
}

// CategoryReport is one category block with its suppliers.
type CategoryReport struct {
	Name        string           `json:"name"`
	RecordCount int              `json:"record_count"`
	TotalAmount float64          `json:"total_amount"`
	Suppliers   []SupplierReport `json:"suppliers"`
}

// SupplierReport is one supplier block with its product lines.
type SupplierReport struct {
	Name        string          `json:"name"`
	RecordCount int             `json:"record_count"`
	TotalAmount float64         `json:"total_amount"`
	Products    []ProductReport `json:"products"`
}

// ProductReport is one purchased line item.
type ProductReport struct {
	UnitID       string  `json:"unit_id"`
	PartID       string  `json:"part_id"`
	ProductName  string  `json:"product_name"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
	Manufacturer string  `json:"manufacturer"`
	Material     string  `json:"material"`
	ReceiveDate  string  `json:"receive_date"`
}

// ProjectAnalysis shapes an aggregation tree for export.
func ProjectAnalysis(tree *aggregate.Tree) Analysis {
	out := Analysis{
		FileNo:       tree.FileNo,
		TotalRecords: tree.TotalRecords,
		TotalAmount:  tree.TotalAmount,
		Categories:   make([]CategoryReport, 0, len(tree.Categories)),
	}

	for _, cat := range tree.Categories {
		cr := CategoryReport{
			Name:        cat.Name,
			RecordCount: cat.RecordCount,
			TotalAmount: cat.TotalAmount,
			Suppliers:   make([]SupplierReport, 0, len(cat.Suppliers)),
		}
		for _, sup := range cat.Suppliers {
			sr := SupplierReport{
				Name:        sup.Name,
				RecordCount: sup.RecordCount,
				TotalAmount: sup.TotalAmount,
				Products:    make([]ProductReport, 0, len(sup.Products)),
			}
			for _, p := range sup.Products {
				sr.Products = append(sr.Products, ProductReport{
					UnitID:       p.UnitNo,
					PartID:       p.PartNo,
					ProductName:  p.ProductName,
					Quantity:     p.Quantity,
					UnitPrice:    p.UnitPrice,
					TotalPrice:   p.TotalPrice,
					Manufacturer: p.Manufacturer,
					Material:     p.MaterialModel,
					ReceiveDate:  p.ReceiveDate,
				})
			}
			cr.Suppliers = append(cr.Suppliers, sr)
		}
		out.Categories = append(out.Categories, cr)
	}

	return out
}
