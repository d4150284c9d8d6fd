package types

import "sort"

// LineTable maps byte offsets to 1-based line and column numbers.
type LineTable struct {
	starts []ByteOffset
}

// NewLineTable indexes the line starts of source.
func NewLineTable(source []byte) *LineTable {
	starts := make([]ByteOffset, 1, len(source)/32+1)
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	return &LineTable{starts: starts}
}

// Position returns the 1-based line and column of offset.
// Columns count bytes, not runes.
func (t *LineTable) Position(offset ByteOffset) (line, col int) {
	i := sort.Search(len(t.starts), func(i int) bool { return t.starts[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, int(offset-t.starts[i]) + 1
}

// Lines returns the number of lines indexed.
func (t *LineTable) Lines() int {
	return len(t.starts)
}
