package unparen

import (
	"github.com/csfmt/unparen/internal/precedence"
	"github.com/csfmt/unparen/syntax"
)

// decidePattern is the pattern counterpart of decide. Pattern removal has
// no lexical ambiguities beyond the discard, and the combinators never
// regroup semantically, so only precedence matters.
func decidePattern(node *syntax.ParenthesizedPattern) (bool, Reason) {
	if !node.OpenParen.Present() || !node.CloseParen.Present() || node.Pattern == nil {
		return false, ReasonMissingToken
	}
	inner := node.Pattern
	parent := node.Parent()

	if inner.Kind() == syntax.KindParenthesizedPattern {
		return true, ReasonPatternNested
	}
	// x is _ would read _ as a type or constant name.
	if inner.Kind() == syntax.KindDiscardPattern && kindOf(parent) == syntax.KindIsPatternExpression {
		return false, ReasonPatternDiscard
	}

	innerPrec := precedence.OfPattern(inner)
	switch innerPrec {
	case precedence.PatternPrimary, precedence.PatternUnary:
		return true, ReasonPatternTight
	}

	switch kindOf(parent) {
	case syntax.KindParenthesizedPattern,
		syntax.KindIsPatternExpression,
		syntax.KindSwitchExpressionArm,
		syntax.KindSubpattern,
		syntax.KindCasePatternSwitchLabel:
		return true, ReasonPatternContext
	}

	outer, ok := parent.(syntax.Pattern)
	if !ok {
		return false, ReasonNotPatternParent
	}
	parentPrec := precedence.OfPattern(outer)
	if innerPrec == precedence.PatternNone || parentPrec == precedence.PatternNone {
		return false, ReasonUnknownPrecedence
	}
	if innerPrec < parentPrec {
		return false, ReasonPatternLowerPrecedence
	}
	return true, ReasonPatternPrecedence
}
