package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		s       string
		want    bool
	}{
		{"*", "anything", true},
		{"*", "", true},
		{"missing-*", "missing-token", true},
		{"missing-*", "parse-error", false},
		{"*-error", "parse-error", true},
		{"exact", "exact", true},
		{"exact", "other", false},
		{"", "", true},
		{"", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.s, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchGlob(tt.pattern, tt.s))
		})
	}
}

func TestLineTablePosition(t *testing.T) {
	table := NewLineTable([]byte("ab\ncde\n\nf"))
	tests := []struct {
		offset    ByteOffset
		line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{7, 3, 1},
		{8, 4, 1},
	}
	for _, tt := range tests {
		line, col := table.Position(tt.offset)
		assert.Equal(t, tt.line, line, "line for offset %d", tt.offset)
		assert.Equal(t, tt.col, col, "column for offset %d", tt.offset)
	}
	assert.Equal(t, 4, table.Lines())
}

func TestSpanCover(t *testing.T) {
	a := NewSpan(4, 8)
	b := NewSpan(2, 6)
	assert.Equal(t, NewSpan(2, 8), a.Cover(b))
	assert.True(t, NewSpan(0, 10).Contains(a))
	assert.False(t, a.Contains(b))
	assert.Equal(t, ByteOffset(4), a.Len())
	assert.True(t, Synthetic.IsSynthetic())
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Severity: SeverityError, Message: "expected ')'", File: "a.cs", Line: 3, Column: 7}
	assert.Equal(t, "[error] a.cs:3:7: expected ')'", d.String())
	d.File = ""
	assert.Equal(t, "[error] expected ')'", d.String())
}
