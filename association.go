package unparen

import (
	"github.com/csfmt/unparen/internal/precedence"
	"github.com/csfmt/unparen/syntax"
)

// changesAssociation reports whether removing the parentheses of node,
// whose inner expression sits directly under parentExpr, would make the
// inner expression's operands bind differently.
func changesAssociation(node *syntax.ParenthesizedExpression, parentExpr syntax.Expression, oracle Oracle) (bool, Reason) {
	inner := node.Expression
	innerPrec := precedence.Of(inner)
	parentPrec := precedence.Of(parentExpr)
	if innerPrec == precedence.None || parentPrec == precedence.None {
		return true, ReasonUnknownPrecedence
	}
	switch {
	case innerPrec > parentPrec:
		return false, ReasonHigherPrecedence
	case innerPrec < parentPrec:
		return true, ReasonLowerPrecedence
	case innerPrec == parentPrec:
		return changesEqualPrecedence(node, parentExpr, oracle)
	}
	panic("unreachable: precedence comparison")
}

// changesEqualPrecedence decides an inner expression that binds exactly as
// tightly as its parent. Only operators with two operands can regroup.
func changesEqualPrecedence(node *syntax.ParenthesizedExpression, parentExpr syntax.Expression, oracle Oracle) (bool, Reason) {
	inner := node.Expression
	self := syntax.Expression(node)

	// ?: groups to the right, so only its condition can regroup.
	if p, ok := parentExpr.(*syntax.ConditionalExpression); ok && inner.Kind() == syntax.KindConditionalExpression {
		if p.Condition == self {
			return true, ReasonChangesGrouping
		}
		return false, ReasonOperandSide
	}
	if !inner.Kind().IsBinaryExpression() && !inner.Kind().IsAssignmentExpression() {
		return false, ReasonNotBinary
	}

	switch p := parentExpr.(type) {
	case *syntax.BinaryExpression:
		innerBin, ok := inner.(*syntax.BinaryExpression)
		if ok && innerBin.Kind() == p.Kind() &&
			precedence.IsAssociative(p.Kind()) && p.Right == self {
			if reassociates(oracle, innerBin, p) {
				return false, ReasonReassociable
			}
			return true, ReasonNotReassociable
		}
		// ?? groups to the right; every other binary operator to the left.
		if p.Kind() == syntax.KindCoalesceExpression {
			if p.Left == self {
				return true, ReasonChangesGrouping
			}
			return false, ReasonOperandSide
		}
		if p.Right == self {
			return true, ReasonChangesGrouping
		}
		return false, ReasonOperandSide
	case *syntax.AssignmentExpression:
		// Assignments group to the right.
		if p.Left == self {
			return true, ReasonChangesGrouping
		}
		return false, ReasonOperandSide
	}
	return false, ReasonNotBinary
}
