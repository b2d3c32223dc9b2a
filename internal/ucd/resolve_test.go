package ucd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableFirstMatchWins(t *testing.T) {
	// Overlapping intervals are legitimate for scripts; the first interval
	// in source-file order owns the codepoint.
	table := NewTable([]Interval{
		{Lo: 0x0300, Hi: 0x036F, Value: "Inherited"},
		{Lo: 0x0300, Hi: 0x0301, Value: "ShouldNeverWin"},
		{Lo: 0x0370, Hi: 0x0373, Value: "Greek"},
	})

	value, ok := table.Resolve(0x0300)
	assert.True(t, ok)
	assert.Equal(t, "Inherited", value)

	value, ok = table.Resolve(0x0370)
	assert.True(t, ok)
	assert.Equal(t, "Greek", value)
}

func TestTableResolveMiss(t *testing.T) {
	table := NewTable([]Interval{{Lo: 0x0041, Hi: 0x005A, Value: "Latin"}})

	_, ok := table.Resolve(0x3042)
	assert.False(t, ok)
	assert.False(t, table.Contains(0x3042))
	assert.True(t, table.Contains(0x0041))
}

func TestTableBoundsInclusive(t *testing.T) {
	table := NewTable([]Interval{{Lo: 0x10, Hi: 0x20, Value: "X"}})

	assert.True(t, table.Contains(0x10))
	assert.True(t, table.Contains(0x20))
	assert.False(t, table.Contains(0x0F))
	assert.False(t, table.Contains(0x21))
}

func TestTableEmpty(t *testing.T) {
	table := NewTable(nil)
	assert.Equal(t, 0, table.Len())
	assert.False(t, table.Contains(0x41))
}
