// =============================================================================
// Purchase Report Engine - Descriptive Statistics
// =============================================================================
//
// Per-column descriptive statistics embedded in the detail JSON export so
// downstream analysis can sanity-check a file without re-reading it. A
// column counts as numeric when every present cell is numeric; everything
// else is summarized categorically (distinct count plus most frequent
// values). Columns that are entirely missing report nil moments.
//
// =============================================================================

package stats

import (
	"math"
	"sort"

	"purchasereport/internal/sanitize"
	"purchasereport/internal/table"
)

// topValueLimit caps how many frequent values a categorical summary keeps.
const topValueLimit = 10

// NumericSummary describes one numeric column. The moment fields are nil
// when the column has no usable values.
type NumericSummary struct {
	Mean  *float64 `json:"mean"`
	Std   *float64 `json:"std"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Count int      `json:"count"`
}

// ValueCount is one categorical value with its occurrence count.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CategoricalSummary describes one textual column.
type CategoricalSummary struct {
	UniqueCount int          `json:"unique_count"`
	TopValues   []ValueCount `json:"top_values"`
}

// Summary holds the statistics for every column of a table.
type Summary struct {
	Numeric     map[string]NumericSummary     `json:"numeric_columns"`
	Categorical map[string]CategoricalSummary `json:"categorical_columns"`
}

// Describe computes summaries for all columns of the table.
func Describe(t *table.Table) Summary {
	out := Summary{
		Numeric:     make(map[string]NumericSummary),
		Categorical: make(map[string]CategoricalSummary),
	}

	for _, header := range t.Headers {
		cells := t.Column(header)
		if isNumericColumn(cells) {
			out.Numeric[header] = describeNumeric(cells)
		} else {
			out.Categorical[header] = describeCategorical(cells)
		}
	}

	return out
}

// isNumericColumn reports whether every present cell is numeric and at
// least one value exists.
func isNumericColumn(cells []table.Cell) bool {
	present := 0
	for _, c := range cells {
		if c.IsMissing() {
			continue
		}
		if _, ok := sanitize.Numeric(c); !ok {
			return false
		}
		present++
	}
	return present > 0
}

func describeNumeric(cells []table.Cell) NumericSummary {
	var values []float64
	for _, c := range cells {
		if f, ok := sanitize.Numeric(c); ok {
			values = append(values, f)
		}
	}

	summary := NumericSummary{Count: len(values)}
	if len(values) == 0 {
		return summary
	}

	min, max, sum := values[0], values[0], 0.0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	mean := sum / float64(len(values))

	summary.Mean = &mean
	summary.Min = &min
	summary.Max = &max

	// Sample standard deviation; a single value has no spread to report.
	if len(values) > 1 {
		var sq float64
		for _, v := range values {
			d := v - mean
			sq += d * d
		}
		std := math.Sqrt(sq / float64(len(values)-1))
		summary.Std = &std
	}

	return summary
}

func describeCategorical(cells []table.Cell) CategoricalSummary {
	counts := make(map[string]int)
	var order []string

	for _, c := range cells {
		if c.IsMissing() {
			continue
		}
		text := c.Text()
		if counts[text] == 0 {
			order = append(order, text)
		}
		counts[text]++
	}

	// Most frequent first; first-seen order breaks ties.
	seq := make(map[string]int, len(order))
	for i, v := range order {
		seq[v] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return seq[order[i]] < seq[order[j]]
	})

	summary := CategoricalSummary{UniqueCount: len(order)}
	for _, v := range order {
		if len(summary.TopValues) == topValueLimit {
			break
		}
		summary.TopValues = append(summary.TopValues, ValueCount{Value: v, Count: counts[v]})
	}
	return summary
}
