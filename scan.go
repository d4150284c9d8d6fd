package unparen

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/csfmt/unparen/syntax"
)

// Finding is the decision for one parenthesized expression or pattern.
type Finding struct {
	File      string // empty outside Check
	Line      int    // 1-based, 0 outside Check
	Column    int    // 1-based byte column, 0 outside Check
	Span      Span
	Kind      syntax.Kind
	Removable bool
	Reason    Reason
}

// String formats the finding as "file:line:col: removable (reason)" with
// location parts omitted when unknown.
func (f Finding) String() string {
	verdict := "kept"
	if f.Removable {
		verdict = "removable"
	}
	loc := fmt.Sprintf("%d-%d", f.Span.Start, f.Span.End)
	if f.Line > 0 {
		loc = fmt.Sprintf("%d:%d", f.Line, f.Column)
	}
	if f.File != "" {
		loc = f.File + ":" + loc
	}
	return fmt.Sprintf("%s: %s (%s)", loc, verdict, f.Reason)
}

// Scan decides every parenthesized expression and pattern under root,
// including #if and #elif conditions, and returns the findings in source
// order.
func Scan(root syntax.Node, oracle Oracle) []Finding {
	return NewAnalyzer(WithOracle(oracle)).Scan(root)
}

// Scan is the package-level Scan using the analyzer's oracle.
func (a *Analyzer) Scan(root syntax.Node) []Finding {
	var out []Finding
	syntax.Inspect(root, func(n syntax.Node) bool {
		var ok bool
		var reason Reason
		switch n := n.(type) {
		case *syntax.ParenthesizedExpression:
			ok, reason = a.Explain(n)
		case *syntax.ParenthesizedPattern:
			ok, reason = a.ExplainPattern(n)
		default:
			return true
		}
		out = append(out, Finding{
			Span:      syntax.SpanOf(n),
			Kind:      n.Kind(),
			Removable: ok,
			Reason:    reason,
		})
		return true
	})
	slices.SortStableFunc(out, func(x, y Finding) int {
		return cmp.Compare(x.Span.Start, y.Span.Start)
	})
	return out
}
