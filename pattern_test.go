package unparen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csfmt/unparen/internal/testutil"
	"github.com/csfmt/unparen/syntax"
)

func explainPatternMarked(t *testing.T, marked string) (bool, Reason) {
	t.Helper()
	src, spans := testutil.MustMark(t, marked)
	require.Len(t, spans, 1, "mark exactly one node")
	var found *syntax.ParenthesizedPattern
	syntax.Inspect(parseUnit(t, src), func(n syntax.Node) bool {
		if p, ok := n.(*syntax.ParenthesizedPattern); ok && syntax.SpanOf(p) == spans[0] {
			found = p
		}
		return found == nil
	})
	require.NotNil(t, found, "no parenthesized pattern at %v", spans[0])
	return ExplainPattern(found)
}

func TestPatternParentheses(t *testing.T) {
	tests := []string{
		"b = o is ⟦(> 1 and < 5)⟧;",
		"b = o is ⟦(int)⟧;",
		"b = o is ⟦(string s)⟧;",
		"b = o is ⟦(> 1 and < 5)⟧ or 0;",
		"b = o is ⟦(> 1 and < 5)⟧ and not 3;",
		"b = o is ⟦(> 1 or < 0)⟧ or 3;",
		"b = o is (> 1 or < 0) and not 3;",
		"b = o is not (> 1 and < 5);",
		"b = o is not ⟦(> 1)⟧;",
		"b = o is not ⟦(null)⟧;",
		"b = o is (_);",
		"b = o is ⟦(⟦(> 1)⟧)⟧;",
		"b = o is { P: ⟦(> 1 or < -1)⟧ };",
		"x = o switch { ⟦(> 1 or < -1)⟧ => 1, _ => 0 };",
		"switch (o) { case ⟦(> 1 or < 0)⟧: break; }",
	}
	for _, marked := range tests {
		t.Run(marked, func(t *testing.T) {
			assertMarked(t, marked, nil)
		})
	}
}

func TestExplainPattern(t *testing.T) {
	tests := []struct {
		marked string
		want   bool
		reason Reason
	}{
		{"b = o is ⟦((> 1))⟧;", true, ReasonPatternNested},
		{"b = o is ⟦(_)⟧;", false, ReasonPatternDiscard},
		{"b = o is not ⟦(> 1)⟧;", true, ReasonPatternTight},
		{"b = o is ⟦(> 1 or < 0)⟧;", true, ReasonPatternContext},
		{"b = o is ⟦(> 1 and < 5)⟧ or 0;", true, ReasonPatternPrecedence},
		{"b = o is ⟦(> 1 or < 0)⟧ and 3;", false, ReasonPatternLowerPrecedence},
		{"b = o is not ⟦(> 1 or < 0)⟧;", false, ReasonPatternLowerPrecedence},
		// and binds tighter than or, so the grouping is unchanged.
		{"b = a is ⟦(b and c)⟧ or d;", true, ReasonPatternPrecedence},
		{"b = a is ⟦(b or c)⟧ and d;", false, ReasonPatternLowerPrecedence},
	}
	for _, tt := range tests {
		t.Run(tt.marked, func(t *testing.T) {
			ok, reason := explainPatternMarked(t, tt.marked)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestPatternMissingToken(t *testing.T) {
	pat := &syntax.ParenthesizedPattern{
		OpenParen: syntax.Token{Kind: syntax.TokOpenParen, Text: "("},
		Pattern:   &syntax.DiscardPattern{Underscore: syntax.Token{Kind: syntax.TokIdentifier, Text: "_"}},
		CloseParen: syntax.Token{
			Kind:    syntax.TokCloseParen,
			Missing: true,
		},
	}
	ok, reason := ExplainPattern(pat)
	assert.False(t, ok)
	assert.Equal(t, ReasonMissingToken, reason)
	assert.False(t, CanRemovePatternParentheses(pat))
}
