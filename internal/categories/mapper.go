// =============================================================================
// Purchase Report Engine - Category Code Mapper
// =============================================================================
//
// Purchase lines arrive with a short numeric business category code and a
// free-text category name. The code is authoritative: it is mapped to a
// canonical display name through a replacement table, and only when the code
// has no entry does the record keep its own raw name. The table is plain
// configuration, injected at construction time, so deployments can override
// it without a code change (see config.LoadCategoryMapping).
//
// =============================================================================

package categories

import (
	"fmt"

	"purchasereport/internal/sanitize"
	"purchasereport/internal/table"
)

// DefaultMapping is the built-in replacement table for the purchasing
// system's category codes. Keys are two-digit zero-padded code strings;
// codes of three or more digits (the travel expense range) keep their
// natural width.
func DefaultMapping() map[string]string {
	return map[string]string{
		"02":  "E:assembly-board",
		"03":  "E:wiring",
		"04":  "E:adjustment",
		"05":  "E:wiring",
		"06":  "M:design",
		"07":  "M:fabrication",
		"08":  "M:assembly",
		"09":  "M:assembly",
		"10":  "M:assembly",
		"11":  "E:parts",
		"12":  "E:parts",
		"13":  "E:parts",
		"14":  "M:set",
		"15":  "M:purchase",
		"16":  "M:material",
		"17":  "M:fabrication",
		"18":  "M:set",
		"19":  "-",
		"20":  "Others:",
		"100": "S:travel",
		"101": "E:travel",
		"102": "M:travel",
		"103": "S:travel",
		"104": "S:travel",
	}
}

// Mapper resolves category codes to canonical display names. It is immutable
// after construction and safe for shared use.
type Mapper struct {
	mapping map[string]string
}

// NewMapper builds a Mapper over the given replacement table. A nil table
// falls back to DefaultMapping.
func NewMapper(mapping map[string]string) *Mapper {
	if mapping == nil {
		mapping = DefaultMapping()
	}
	return &Mapper{mapping: mapping}
}

// PadCode normalizes a raw category code cell to its lookup key. The raw
// value may be an integer, a float-like numeric string, or missing; anything
// non-numeric coerces to 0. The integer is left-padded with zeros to width 2.
// Padding only extends: codes of 100 and above pass through at full width.
func PadCode(c table.Cell) string {
	return fmt.Sprintf("%02d", sanitize.ToInt(c, 0))
}

// Name maps a raw code cell to its canonical category name. Codes without an
// entry return fallback unchanged; no input ever fails.
func (m *Mapper) Name(code table.Cell, fallback string) string {
	if name, ok := m.mapping[PadCode(code)]; ok {
		return name
	}
	return fallback
}

// Size returns the number of entries in the replacement table.
func (m *Mapper) Size() int { return len(m.mapping) }

// Entries returns a copy of the replacement table.
func (m *Mapper) Entries() map[string]string {
	out := make(map[string]string, len(m.mapping))
	for code, name := range m.mapping {
		out[code] = name
	}
	return out
}
