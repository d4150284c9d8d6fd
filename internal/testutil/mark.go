package testutil

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/csfmt/unparen/internal/types"
)

// Target markers. A marked source wraps each parenthesized node that is
// expected to be removable in an open and close marker.
const (
	OpenMark  = "⟦"
	CloseMark = "⟧"
)

var errUnbalanced = errors.New("unbalanced target markers")

// Mark strips the target markers from marked and returns the plain source
// with the span each marker pair enclosed, ordered by start offset. Marker
// pairs may nest.
func Mark(marked string) (string, []types.Span, error) {
	var b strings.Builder
	var open []types.ByteOffset
	var spans []types.Span
	for i := 0; i < len(marked); {
		switch {
		case strings.HasPrefix(marked[i:], OpenMark):
			open = append(open, types.ByteOffset(b.Len()))
			i += len(OpenMark)
		case strings.HasPrefix(marked[i:], CloseMark):
			if len(open) == 0 {
				return "", nil, fmt.Errorf("%w: %s at byte %d", errUnbalanced, CloseMark, i)
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			spans = append(spans, types.NewSpan(start, types.ByteOffset(b.Len())))
			i += len(CloseMark)
		default:
			b.WriteByte(marked[i])
			i++
		}
	}
	if len(open) > 0 {
		return "", nil, fmt.Errorf("%w: %d unclosed %s", errUnbalanced, len(open), OpenMark)
	}
	SortSpans(spans)
	return b.String(), spans, nil
}

// MustMark is Mark for tests; it fails t on unbalanced markers.
func MustMark(t testing.TB, marked string) (string, []types.Span) {
	t.Helper()
	src, spans, err := Mark(marked)
	if err != nil {
		t.Fatalf("marking %q: %v", marked, err)
	}
	return src, spans
}

// Render inserts target markers around spans in src. It is the inverse of
// Mark and is used to print readable expectations.
func Render(src string, spans []types.Span) string {
	type edge struct {
		at    types.ByteOffset
		open  bool
		width types.ByteOffset
	}
	var edges []edge
	for _, s := range spans {
		edges = append(edges, edge{s.Start, true, s.Len()}, edge{s.End, false, s.Len()})
	}
	// Close before open at the same offset; outer spans open first and
	// close last.
	slices.SortStableFunc(edges, func(a, b edge) int {
		if a.at != b.at {
			return int(a.at) - int(b.at)
		}
		if a.open != b.open {
			if a.open {
				return 1
			}
			return -1
		}
		if a.open {
			return int(b.width) - int(a.width)
		}
		return int(a.width) - int(b.width)
	})

	var b strings.Builder
	prev := 0
	for _, e := range edges {
		at := min(int(e.at), len(src))
		b.WriteString(src[prev:at])
		prev = at
		if e.open {
			b.WriteString(OpenMark)
		} else {
			b.WriteString(CloseMark)
		}
	}
	b.WriteString(src[prev:])
	return b.String()
}

// SortSpans orders spans by start offset, then by end offset.
func SortSpans(spans []types.Span) {
	slices.SortFunc(spans, func(a, b types.Span) int {
		if a.Start != b.Start {
			return int(a.Start) - int(b.Start)
		}
		return int(a.End) - int(b.End)
	})
}
