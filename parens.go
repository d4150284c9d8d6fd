package unparen

import "github.com/csfmt/unparen/syntax"

// CanRemoveParentheses reports whether the parentheses of node can be
// removed without changing how the surrounding code parses or what it
// computes. A false answer means the removal is unsafe or could not be
// proven safe.
//
// oracle decides regrouping of associative operators, as in a + (b + c);
// nil refuses every such regrouping. The tree is not modified.
func CanRemoveParentheses(node *syntax.ParenthesizedExpression, oracle Oracle) bool {
	ok, _ := decide(node, oracle)
	return ok
}

// Explain is CanRemoveParentheses that also returns the rule that decided.
func Explain(node *syntax.ParenthesizedExpression, oracle Oracle) (bool, Reason) {
	return decide(node, oracle)
}

// CanRemovePatternParentheses reports whether the parentheses of a
// parenthesized pattern can be removed without changing what it matches.
func CanRemovePatternParentheses(node *syntax.ParenthesizedPattern) bool {
	ok, _ := decidePattern(node)
	return ok
}

// ExplainPattern is CanRemovePatternParentheses that also returns the rule
// that decided.
func ExplainPattern(node *syntax.ParenthesizedPattern) (bool, Reason) {
	return decidePattern(node)
}

func decide(node *syntax.ParenthesizedExpression, oracle Oracle) (bool, Reason) {
	if ok, reason := structurallySafe(node); !ok {
		return false, reason
	}
	parentExpr := expressionParent(node)

	switch v, reason := classify(node, parentExpr); v {
	case removable:
		return true, reason
	case unsafe:
		return false, reason
	}
	if hit, reason := ambiguous(node); hit {
		return false, reason
	}
	switch v, reason := classifyOperand(node); v {
	case removable:
		return true, reason
	case unsafe:
		return false, reason
	}

	if parentExpr == nil {
		return false, ReasonNoExpressionParent
	}
	changes, reason := changesAssociation(node, parentExpr, oracle)
	return !changes, reason
}

// expressionParent returns the expression node's operands bind to. A
// constant pattern is transparent: for x is (y) it is the is expression.
func expressionParent(node *syntax.ParenthesizedExpression) syntax.Expression {
	parent := node.Parent()
	if kindOf(parent) == syntax.KindConstantPattern {
		parent = parent.Parent()
	}
	e, _ := parent.(syntax.Expression)
	return e
}
