package unparen

import "github.com/csfmt/unparen/syntax"

// structurallySafe applies the checks that hold regardless of context:
// both delimiters must exist, the inner expression must not be stackalloc,
// and removal must not glue the preceding token to the inner expression's
// first token into ++ or --.
func structurallySafe(node *syntax.ParenthesizedExpression) (bool, Reason) {
	if !node.OpenParen.Present() || !node.CloseParen.Present() || node.Expression == nil {
		return false, ReasonMissingToken
	}
	if gluesTokens(node) {
		return false, ReasonTokenGlue
	}
	switch node.Expression.Kind() {
	case syntax.KindStackAllocArrayCreationExpression,
		syntax.KindImplicitStackAllocArrayCreationExpression:
		return false, ReasonStackAlloc
	}
	return true, ReasonNone
}

// gluesTokens reports whether the token before node ends with the same
// + or - that the inner expression's first token starts with, as in
// -(-x) or a+(+b).
func gluesTokens(node *syntax.ParenthesizedExpression) bool {
	prev, ok := syntax.PreviousToken(node)
	if !ok || prev.Text == "" {
		return false
	}
	first, ok := syntax.FirstToken(node.Expression)
	if !ok || first.Text == "" {
		return false
	}
	last := prev.Text[len(prev.Text)-1]
	return (last == '+' || last == '-') && first.Text[0] == last
}
