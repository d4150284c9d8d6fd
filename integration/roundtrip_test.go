package integration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csfmt/unparen"
	"github.com/csfmt/unparen/internal/parser"
	"github.com/csfmt/unparen/syntax"
)

// shape renders the structure of n with every parenthesized expression and
// pattern replaced by its contents. Two trees with the same shape group
// their operands identically.
func shape(n syntax.Node) string {
	var b strings.Builder
	writeShape(&b, n)
	if unit, ok := n.(*syntax.CompilationUnit); ok {
		for _, d := range unit.Directives {
			b.WriteString(" #")
			writeShape(&b, d.Condition)
		}
	}
	return b.String()
}

func writeShape(b *strings.Builder, n syntax.Node) {
	switch n := n.(type) {
	case nil:
		b.WriteString("<nil>")
		return
	case *syntax.ParenthesizedExpression:
		writeShape(b, n.Expression)
		return
	case *syntax.ParenthesizedPattern:
		writeShape(b, n.Pattern)
		return
	}
	b.WriteString(n.Kind().String())
	b.WriteByte('(')
	for _, c := range n.Children() {
		if c.Node != nil {
			writeShape(b, c.Node)
			b.WriteByte(' ')
			continue
		}
		switch c.Token.Kind {
		case syntax.TokIdentifier, syntax.TokNumericLiteral, syntax.TokStringLiteral,
			syntax.TokCharLiteral, syntax.TokInterpolatedStringText:
			b.WriteString(c.Token.Text)
			b.WriteByte(' ')
		}
	}
	b.WriteByte(')')
}

// regroups reports findings whose removal is allowed although the operands
// group differently afterwards.
func regroups(f unparen.Finding) bool {
	switch f.Reason {
	case unparen.ReasonReassociable, unparen.ReasonPatternPrecedence:
		return true
	}
	return f.Kind == syntax.KindParenthesizedPattern
}

// unwrap deletes the delimiters of the parenthesized node at span.
func unwrap(src string, span unparen.Span) string {
	return src[:span.Start] + src[span.Start+1:span.End-1] + src[span.End:]
}

// assertRemovalsPreserveShape replays every allowed removal of fr on src
// and checks that the reparsed tree has the original shape.
func assertRemovalsPreserveShape(t *testing.T, src string, fr unparen.FileReport, opts ...parser.Option) {
	t.Helper()
	unit, _ := parser.Parse([]byte(src), nil, opts...)
	want := shape(unit)

	for _, f := range fr.Findings {
		if !f.Removable || regroups(f) {
			continue
		}
		edited := unwrap(src, f.Span)
		got, diags := parser.Parse([]byte(edited), nil, opts...)
		if len(diags) > 0 {
			t.Errorf("removing %s (%s) breaks parsing:\n%s\n%v", src[f.Span.Start:f.Span.End], f.Reason, edited, diags)
			continue
		}
		if s := shape(got); s != want {
			t.Errorf("removing %s (%s) regroups the code:\n%s\nwant %s\ngot  %s",
				src[f.Span.Start:f.Span.End], f.Reason, edited, want, s)
		}
	}
}

func TestCorpusRemovalsPreserveShape(t *testing.T) {
	for file, cases := range loadCorpus(t) {
		t.Run(file, func(t *testing.T) {
			for _, c := range cases {
				if c.Version != "" {
					continue
				}
				t.Run(c.Name, func(t *testing.T) {
					src, fr, _ := checkCase(t, c)
					assertRemovalsPreserveShape(t, src, fr)
				})
			}
		})
	}
}

func TestShapeIgnoresParentheses(t *testing.T) {
	parse := func(src string) string {
		unit, diags := parser.Parse([]byte(src), nil)
		require.Empty(t, diags)
		return shape(unit)
	}
	require.Equal(t, parse("x = a * b + c;"), parse("x = ((a * b)) + (c);"))
	require.NotEqual(t, parse("x = a - b - c;"), parse("x = a - (b - c);"))
}
