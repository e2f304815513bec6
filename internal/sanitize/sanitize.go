// =============================================================================
// Purchase Report Engine - Value Sanitizer
// =============================================================================
//
// This package coerces loosely typed table cells into the typed fields the
// aggregation engine works with. Every coercion is total: malformed or
// missing input yields the documented default instead of an error, so no
// per-value failure can escape into the aggregation path.
//
// DEFAULTS:
//   - integers  : 0
//   - floats    : 0.0
//   - strings   : "-" (display placeholder) via CleanString
//   - quantity / unit price : 0 / 0.0, never the "-" placeholder
//
// =============================================================================

package sanitize

import (
	"math"
	"strconv"
	"strings"

	"purchasereport/internal/table"
)

// Placeholder is the display sentinel substituted for missing or
// unrepresentable string values.
const Placeholder = "-"

// ToInt coerces a cell to an integer. Numeric strings are accepted,
// fractional values are truncated toward zero. Missing, NaN, and
// non-numeric values yield def.
func ToInt(c table.Cell, def int64) int64 {
	switch c.Kind {
	case table.Int:
		return c.I
	case table.Float:
		if math.IsNaN(c.F) || math.IsInf(c.F, 0) {
			return def
		}
		return int64(c.F)
	case table.String:
		f, ok := parseNumeric(c.Str)
		if !ok {
			return def
		}
		return int64(f)
	default:
		return def
	}
}

// ToFloat coerces a cell to a float with the same numeric tolerance as
// ToInt, preserving the fractional part.
func ToFloat(c table.Cell, def float64) float64 {
	switch c.Kind {
	case table.Int:
		return float64(c.I)
	case table.Float:
		if math.IsNaN(c.F) || math.IsInf(c.F, 0) {
			return def
		}
		return c.F
	case table.String:
		f, ok := parseNumeric(c.Str)
		if !ok {
			return def
		}
		return f
	default:
		return def
	}
}

// CleanString returns the display form of a cell. Missing cells, empty
// strings, and the literal text "nan" (any case, a leak from upstream float
// formatting) all collapse to the Placeholder sentinel.
func CleanString(c table.Cell) string {
	if c.IsMissing() {
		return Placeholder
	}
	if c.Kind == table.Float && math.IsNaN(c.F) {
		return Placeholder
	}

	text := strings.TrimSpace(c.Text())
	if text == "" || strings.EqualFold(text, "nan") {
		return Placeholder
	}
	return text
}

// Quantity coerces a received-quantity cell. Quantities are always numeric;
// missing values default to zero rather than a placeholder.
func Quantity(c table.Cell) float64 { return ToFloat(c, 0) }

// UnitPrice coerces a received-unit-price cell, defaulting to zero.
func UnitPrice(c table.Cell) float64 { return ToFloat(c, 0) }

// Numeric reports whether a cell holds a representable numeric value, and
// returns it. Unlike ToFloat it distinguishes "parsed to zero" from
// "unparseable".
func Numeric(c table.Cell) (float64, bool) {
	switch c.Kind {
	case table.Int:
		return float64(c.I), true
	case table.Float:
		if math.IsNaN(c.F) || math.IsInf(c.F, 0) {
			return 0, false
		}
		return c.F, true
	case table.String:
		return parseNumeric(c.Str)
	default:
		return 0, false
	}
}

// parseNumeric parses a numeric string, tolerating surrounding whitespace
// and thousands separators. NaN and infinities are rejected.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
