// =============================================================================
// Purchase Report Engine - Table Types
// =============================================================================
//
// This package defines the in-memory representation of an ingested purchase
// table. Source files come from a legacy in-house system, so cell values are
// loosely typed: a column that is numeric in one export may be blank or hold
// free text in the next. Cells are therefore modeled as a small tagged union
// rather than interface{} values, and every consumer dispatches on the tag.
//
// Types defined here are used by:
//   - ingest     (produces Tables)
//   - resolve    (locates semantic columns among the headers)
//   - sanitize   (coerces Cells to typed fields)
//   - normalize  (builds sanitized records from Rows)
//
// =============================================================================

package table

import "strconv"

// =============================================================================
// CELL
// =============================================================================

// CellKind identifies which variant of the Cell union is populated.
type CellKind int

const (
	// Missing marks an absent, blank, or unparseable-as-anything cell.
	Missing CellKind = iota

	// String marks a textual cell.
	String

	// Int marks an integer cell.
	Int

	// Float marks a floating-point cell.
	Float
)

// Cell is a single table value. Exactly one of the value fields is
// meaningful, selected by Kind.
type Cell struct {
	Kind CellKind
	Str  string
	I    int64
	F    float64
}

// MissingCell is the canonical missing value.
var MissingCell = Cell{Kind: Missing}

// StringCell wraps a string value. An empty string is still a String cell;
// the sanitizer decides whether it counts as missing.
func StringCell(s string) Cell { return Cell{Kind: String, Str: s} }

// IntCell wraps an integer value.
func IntCell(i int64) Cell { return Cell{Kind: Int, I: i} }

// FloatCell wraps a floating-point value.
func FloatCell(f float64) Cell { return Cell{Kind: Float, F: f} }

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool { return c.Kind == Missing }

// Text returns the literal textual form of the cell. Missing cells render as
// the empty string; numeric cells use their shortest round-trip form.
func (c Cell) Text() string {
	switch c.Kind {
	case String:
		return c.Str
	case Int:
		return strconv.FormatInt(c.I, 10)
	case Float:
		return strconv.FormatFloat(c.F, 'f', -1, 64)
	default:
		return ""
	}
}

// =============================================================================
// ROW AND TABLE
// =============================================================================

// Row is one ingested record, keyed by column label. Column order lives on
// the owning Table; the map only carries values.
type Row map[string]Cell

// Get returns the cell for a column label, or MissingCell when the row has
// no such column.
func (r Row) Get(label string) Cell {
	if c, ok := r[label]; ok {
		return c
	}
	return MissingCell
}

// Table is a fully materialized input table. Headers preserve the source
// column order, which matters for column resolution (first match wins).
type Table struct {
	// Headers are the column labels in source order.
	Headers []string

	// Rows are the data rows, in source order.
	Rows []Row

	// SourceFile is the path the table was ingested from, for logs.
	SourceFile string
}

// Column returns every value of one column, in row order. Rows without the
// column yield MissingCell.
func (t *Table) Column(label string) []Cell {
	values := make([]Cell, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row.Get(label)
	}
	return values
}

// UniqueValues returns the distinct non-missing textual values of a column,
// in first-seen order.
func (t *Table) UniqueValues(label string) []string {
	seen := make(map[string]bool)
	var unique []string

	for _, row := range t.Rows {
		cell := row.Get(label)
		if cell.IsMissing() {
			continue
		}
		text := cell.Text()
		if !seen[text] {
			seen[text] = true
			unique = append(unique, text)
		}
	}

	return unique
}
