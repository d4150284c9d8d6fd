package unparen

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csfmt/unparen/syntax"
)

func TestScanOrder(t *testing.T) {
	unit := parseUnit(t, "x = ((a + b)) * (c);\nb = o is (> 1 or < 0);\n")
	findings := Scan(unit, nil)
	require.Len(t, findings, 4)

	for i := 1; i < len(findings); i++ {
		assert.Less(t, findings[i-1].Span.Start, findings[i].Span.Start)
	}
	assert.Equal(t, syntax.KindParenthesizedExpression, findings[0].Kind)
	assert.True(t, findings[0].Removable, "outer layer of a double parenthesis")
	assert.True(t, findings[1].Removable, "inner layer of a double parenthesis")
	assert.True(t, findings[2].Removable, "name operand")
	assert.Equal(t, syntax.KindParenthesizedPattern, findings[3].Kind)
	assert.True(t, findings[3].Removable)
	assert.Equal(t, ReasonPatternContext, findings[3].Reason)
}

func TestScanEmpty(t *testing.T) {
	assert.Empty(t, Scan(parseUnit(t, "x = a + b;"), nil))
	assert.Empty(t, Scan(parseUnit(t, ""), nil))
}

func TestFindingString(t *testing.T) {
	f := Finding{Span: Span{Start: 4, End: 9}, Removable: true, Reason: ReasonName}
	assert.Equal(t, "4-9: removable (simple or dotted name)", f.String())

	f.Line, f.Column = 2, 5
	f.File = "a.cs"
	f.Removable = false
	f.Reason = ReasonLowerPrecedence
	assert.Equal(t, "a.cs:2:5: kept ("+ReasonLowerPrecedence.String()+")", f.String())
}

func TestAnalyzerTracesDecisions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	a := NewAnalyzer(WithLogger(logger), WithOracle(NeverReassociate))
	findings := a.Scan(parseUnit(t, "x = (a) + (b + c);"))
	require.Len(t, findings, 2)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "msg=decision"), out)
	assert.Contains(t, out, "component=analyzer")
	assert.Contains(t, out, `reason="simple or dotted name"`)
}

func TestAnalyzerSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	a := NewAnalyzer(WithLogger(logger))
	a.Scan(parseUnit(t, "x = (a) + (b + c);"))
	assert.Empty(t, buf.String())

	// A nil logger is valid.
	assert.NotPanics(t, func() {
		NewAnalyzer().Scan(parseUnit(t, "x = (a);"))
	})
}

func TestAnalyzerMatchesPackageFunctions(t *testing.T) {
	unit := parseUnit(t, "x = a + (b + c) * (d);\nb = o is not (> 1);\n")
	a := NewAnalyzer(WithOracle(NeverReassociate))
	syntax.Inspect(unit, func(n syntax.Node) bool {
		switch n := n.(type) {
		case *syntax.ParenthesizedExpression:
			assert.Equal(t, CanRemoveParentheses(n, NeverReassociate), a.CanRemoveParentheses(n))
		case *syntax.ParenthesizedPattern:
			assert.Equal(t, CanRemovePatternParentheses(n), a.CanRemovePatternParentheses(n))
		}
		return true
	})
}
