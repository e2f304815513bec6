// =============================================================================
// Purchase Report Engine - HTML Export
// =============================================================================
//
// Renders the hierarchical analysis as a standalone HTML document the
// purchasing team can open without tooling: summary cards up top, then one
// collapsible-free block per category with its suppliers and product tables.
// Ordering comes straight from the aggregator; the template never re-sorts.
//
// =============================================================================

package export

import (
	"fmt"
	"html/template"
	"os"
	"strconv"
	"strings"
	"time"

	"purchasereport/internal/report"
)

// analysisPage is the template input for one rendered report.
type analysisPage struct {
	report.Analysis
	GeneratedAt string
}

// WriteAnalysisHTML renders the hierarchical analysis report to path.
func WriteAnalysisHTML(path string, analysis report.Analysis) error {
	page := analysisPage{
		Analysis:    analysis,
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
	}

	var sb strings.Builder
	if err := analysisTemplate.Execute(&sb, page); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// money renders an amount as grouped whole yen ("¥1,234,567").
func money(f float64) string {
	return "¥" + groupDigits(int64(f+0.5))
}

// count renders a quantity as a grouped whole number.
func count(f float64) string {
	return groupDigits(int64(f))
}

func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var sb strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}

var analysisTemplate = template.Must(template.New("analysis").Funcs(template.FuncMap{
	"money": money,
	"count": count,
}).Parse(`<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Purchase Analysis - {{.FileNo}}</title>
<style>
  body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 20px; background-color: #f5f5f5; }
  .container { max-width: 1200px; margin: 0 auto; background-color: white; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); overflow: hidden; }
  .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; }
  .header h1 { margin: 0; font-size: 2.5em; font-weight: 300; }
  .header .subtitle { margin-top: 10px; font-size: 1.2em; opacity: 0.9; }
  .summary { padding: 20px; background-color: #f8f9fa; border-bottom: 1px solid #dee2e6; }
  .summary-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin-top: 15px; }
  .summary-item { text-align: center; padding: 15px; background-color: white; border-radius: 6px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
  .summary-item .value { font-size: 2em; font-weight: bold; color: #667eea; }
  .summary-item .label { color: #6c757d; margin-top: 5px; }
  .content { padding: 20px; }
  .category { margin-bottom: 30px; border: 1px solid #dee2e6; border-radius: 8px; overflow: hidden; }
  .category-header { background-color: #e9ecef; padding: 15px 20px; border-bottom: 1px solid #dee2e6; display: flex; justify-content: space-between; align-items: center; }
  .category-title { font-size: 1.3em; font-weight: bold; color: #495057; }
  .category-summary, .supplier-summary { color: #6c757d; font-size: 0.9em; }
  .supplier { margin: 10px; border: 1px solid #dee2e6; border-radius: 6px; overflow: hidden; }
  .supplier-header { background-color: #f8f9fa; padding: 12px 15px; border-bottom: 1px solid #dee2e6; display: flex; justify-content: space-between; align-items: center; }
  .supplier-title { font-weight: bold; color: #495057; }
  .products-table { width: 100%; border-collapse: collapse; }
  .products-table th { background-color: #f8f9fa; padding: 10px; text-align: left; border-bottom: 1px solid #dee2e6; font-weight: bold; color: #495057; }
  .products-table td { padding: 8px 10px; border-bottom: 1px solid #dee2e6; vertical-align: top; }
  .products-table tr:hover { background-color: #f8f9fa; }
  .price { font-weight: bold; color: #dc3545; }
  .quantity, .unit-info { color: #6c757d; }
  .footer { padding: 20px; text-align: center; color: #6c757d; border-top: 1px solid #dee2e6; background-color: #f8f9fa; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>Purchase Analysis</h1>
    <div class="subtitle">File No.: {{.FileNo}}</div>
  </div>
  <div class="summary">
    <h2>Overview</h2>
    <div class="summary-grid">
      <div class="summary-item"><div class="value">{{.TotalRecords}}</div><div class="label">Records</div></div>
      <div class="summary-item"><div class="value">{{money .TotalAmount}}</div><div class="label">Total Amount</div></div>
      <div class="summary-item"><div class="value">{{len .Categories}}</div><div class="label">Categories</div></div>
    </div>
  </div>
  <div class="content">
{{range .Categories}}    <div class="category">
      <div class="category-header">
        <div class="category-title">{{.Name}}</div>
        <div class="category-summary">{{.RecordCount}} items / {{money .TotalAmount}}</div>
      </div>
{{range .Suppliers}}      <div class="supplier">
        <div class="supplier-header">
          <div class="supplier-title">{{.Name}}</div>
          <div class="supplier-summary">{{.RecordCount}} items / {{money .TotalAmount}}</div>
        </div>
        <table class="products-table">
          <thead>
            <tr><th>Unit</th><th>Part No.</th><th>Product</th><th>Manufacturer</th><th>Material / Model</th><th>Qty</th><th>Unit Price</th><th>Amount</th><th>Received</th></tr>
          </thead>
          <tbody>
{{range .Products}}            <tr>
              <td class="unit-info">{{.UnitID}}</td>
              <td class="unit-info">{{.PartID}}</td>
              <td>{{.ProductName}}</td>
              <td>{{.Manufacturer}}</td>
              <td>{{.Material}}</td>
              <td class="quantity">{{count .Quantity}}</td>
              <td class="price">{{money .UnitPrice}}</td>
              <td class="price">{{money .TotalPrice}}</td>
              <td>{{.ReceiveDate}}</td>
            </tr>
{{end}}          </tbody>
        </table>
      </div>
{{end}}    </div>
{{end}}  </div>
  <div class="footer"><p>Generated: {{.GeneratedAt}}</p></div>
</div>
</body>
</html>
`))
