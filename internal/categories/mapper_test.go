package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"purchasereport/internal/table"
)

func TestPadCode(t *testing.T) {
	tests := []struct {
		name string
		cell table.Cell
		want string
	}{
		{"single digit pads", table.IntCell(2), "02"},
		{"two digits unchanged", table.IntCell(11), "11"},
		{"float truncates then pads", table.FloatCell(2.0), "02"},
		{"numeric string", table.StringCell("02"), "02"},
		{"float-like string", table.StringCell("11.0"), "11"},
		{"wide code passes through", table.IntCell(100), "100"},
		{"wide code string", table.StringCell("104"), "104"},
		{"missing coerces to zero", table.MissingCell, "00"},
		{"garbage coerces to zero", table.StringCell("n/a"), "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PadCode(tt.cell))
		})
	}
}

func TestMapperDeterminism(t *testing.T) {
	m := NewMapper(nil)

	// The same code always maps to the same canonical name, regardless of
	// the raw representation and of the fallback.
	assert.Equal(t, "E:assembly-board", m.Name(table.StringCell("02"), "anything"))
	assert.Equal(t, "E:assembly-board", m.Name(table.FloatCell(2.0), "anything"))
	assert.Equal(t, "E:parts", m.Name(table.IntCell(11), "whatever"))
	assert.Equal(t, "S:travel", m.Name(table.StringCell("100"), "x"))
}

func TestMapperFallback(t *testing.T) {
	m := NewMapper(nil)

	// No entry for "99": the record keeps its own raw name.
	assert.Equal(t, "Custom", m.Name(table.StringCell("99"), "Custom"))

	// Unmapped and no usable raw name either.
	assert.Equal(t, "-", m.Name(table.StringCell("99"), "-"))
}

func TestMapperInjectedTable(t *testing.T) {
	m := NewMapper(map[string]string{"02": "replacement"})

	assert.Equal(t, "replacement", m.Name(table.IntCell(2), "fb"))
	// The injected table fully replaces the defaults.
	assert.Equal(t, "fb", m.Name(table.IntCell(11), "fb"))
	assert.Equal(t, 1, m.Size())
}

func TestDefaultMappingShape(t *testing.T) {
	mapping := DefaultMapping()
	assert.Len(t, mapping, 24)

	for code := range mapping {
		assert.GreaterOrEqual(t, len(code), 2, "code %q shorter than 2", code)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	m := NewMapper(nil)
	entries := m.Entries()
	entries["02"] = "mutated"

	assert.Equal(t, "E:assembly-board", m.Name(table.IntCell(2), "fb"))
}
