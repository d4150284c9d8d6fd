package unparen

import "github.com/csfmt/unparen/syntax"

// verdict is the outcome of a context rule.
type verdict uint8

const (
	indeterminate verdict = iota
	removable
	unsafe
)

// classify applies the context rules that hold before ambiguity detection:
// contexts in which any expression may stand unparenthesized. Only nesting
// outranks the interpolation format clause check.
func classify(node *syntax.ParenthesizedExpression, parentExpr syntax.Expression) (verdict, Reason) {
	inner := node.Expression
	parent := node.Parent()

	if inner.Kind() == syntax.KindParenthesizedExpression ||
		kindOf(parentExpr) == syntax.KindParenthesizedExpression {
		return removable, ReasonNested
	}
	// A hole ends at the first exposed colon, whatever slot node fills.
	if formatClauseAmbiguity(node, inner) {
		return unsafe, ReasonFormatClauseAmbiguity
	}
	if inner.Kind() == syntax.KindThrowExpression {
		if bin, ok := parent.(*syntax.BinaryExpression); ok &&
			bin.Kind() == syntax.KindCoalesceExpression && bin.Right == syntax.Expression(node) {
			return removable, ReasonThrowOperand
		}
		return removable, ReasonThrow
	}
	if isStatementSlot(node, parent) {
		return removable, ReasonStatement
	}
	switch kindOf(parent) {
	case syntax.KindCheckedExpression, syntax.KindUncheckedExpression:
		return removable, ReasonChecked
	}
	if inner.Kind() == syntax.KindTupleExpression {
		return removable, ReasonTuple
	}
	return indeterminate, ReasonNone
}

// isStatementSlot reports whether node fills a slot that takes a complete
// expression: an expression statement, an expression body, a condition or
// operand of a statement, a variable initializer or the right side of an
// assignment.
func isStatementSlot(node *syntax.ParenthesizedExpression, parent syntax.Node) bool {
	self := syntax.Expression(node)
	switch p := parent.(type) {
	case *syntax.ExpressionStatement, *syntax.ArrowExpressionClause, *syntax.EqualsValueClause:
		return true
	case *syntax.SimpleLambdaExpression:
		return p.Body == syntax.Node(node)
	case *syntax.ParenthesizedLambdaExpression:
		return p.Body == syntax.Node(node)
	case *syntax.AssignmentExpression:
		return p.Right == self
	case *syntax.IfStatement:
		return p.Condition == self
	case *syntax.WhileStatement:
		return p.Condition == self
	case *syntax.DoStatement:
		return p.Condition == self
	case *syntax.ForStatement:
		return p.Condition == self
	case *syntax.ForEachStatement:
		return p.Expression == self
	case *syntax.LockStatement:
		return p.Expression == self
	case *syntax.UsingStatement:
		return p.Expression == self
	case *syntax.SwitchStatement:
		return p.Expression == self
	case *syntax.ReturnStatement:
		return p.Expression == self
	case *syntax.YieldStatement:
		return p.Kind() == syntax.KindYieldReturnStatement && p.Expression == self
	case *syntax.ThrowStatement:
		return p.Expression == self
	case *syntax.CatchFilterClause:
		return p.FilterExpression == self
	}
	return false
}

// classifyOperand applies the context rules that hold once no ambiguity
// was detected.
func classifyOperand(node *syntax.ParenthesizedExpression) (verdict, Reason) {
	inner := node.Expression
	parent := node.Parent()
	self := syntax.Expression(node)

	switch parent.(type) {
	case *syntax.CastExpression:
		if inner.Kind() == syntax.KindThisExpression {
			return removable, ReasonCastOfThis
		}
	case *syntax.Argument:
		return removable, ReasonArgument
	case *syntax.Interpolation:
		return removable, ReasonInterpolation
	}
	if inner.Kind() == syntax.KindInterpolatedStringExpression {
		return removable, ReasonInterpolatedString
	}

	switch p := parent.(type) {
	case *syntax.InitializerExpression:
		if inner.Kind().IsAssignmentExpression() {
			return unsafe, ReasonInitializerAssignment
		}
		return removable, ReasonInitializer
	case *syntax.AnonymousObjectMemberDeclarator:
		if p.NameEquals == nil && inner.Kind().IsAssignmentExpression() {
			return unsafe, ReasonAnonymousMemberAssignment
		}
		return removable, ReasonAnonymousMember
	case *syntax.FromClause, *syntax.LetClause, *syntax.WhereClause:
		return removable, ReasonQueryClause
	}

	switch {
	case isSimpleOrDottedName(inner):
		return removable, ReasonName
	case inner.Kind().IsLiteralExpression():
		return removable, ReasonLiteral
	case inner.Kind() == syntax.KindThisExpression:
		return removable, ReasonThis
	}

	switch p := parent.(type) {
	case *syntax.CaseSwitchLabel:
		return removable, ReasonCaseLabel
	case *syntax.ConstantPattern:
		if kindOf(p.Parent()) == syntax.KindCasePatternSwitchLabel {
			return removable, ReasonCaseLabel
		}
	case *syntax.WhenClause:
		return removable, ReasonWhenClause
	case *syntax.DirectiveTrivia:
		return removable, ReasonDirective
	case *syntax.SwitchExpressionArm:
		if p.Expression == self {
			return removable, ReasonSwitchArm
		}
	case *syntax.ConditionalExpression:
		if p.WhenTrue == self || p.WhenFalse == self {
			return removable, ReasonConditionalArm
		}
	}

	switch p := parent.(type) {
	case *syntax.CastExpression:
		switch inner.Kind() {
		case syntax.KindPreIncrementExpression, syntax.KindPreDecrementExpression:
			return unsafe, ReasonCastOfIncrement
		}
	case *syntax.AssignmentExpression:
		if p.Left == self && inner.Kind() == syntax.KindConditionalExpression {
			return unsafe, ReasonConditionalAssignmentTarget
		}
	}
	if inner.Kind() == syntax.KindConditionalAccessExpression {
		return unsafe, ReasonConditionalAccess
	}
	return indeterminate, ReasonNone
}

// isSimpleOrDottedName reports whether e is an identifier or a chain of
// identifiers joined by dots or ::. Names with type arguments are
// excluded: without parentheses, a following operator could turn the type
// argument list into comparisons.
func isSimpleOrDottedName(e syntax.Expression) bool {
	switch e := e.(type) {
	case *syntax.IdentifierName:
		return true
	case *syntax.QualifiedName:
		return isSimpleOrDottedName(e.Left) && isSimpleOrDottedName(e.Right)
	case *syntax.AliasQualifiedName:
		return isSimpleOrDottedName(e.Name)
	case *syntax.MemberAccessExpression:
		return e.Kind() == syntax.KindSimpleMemberAccessExpression &&
			isSimpleOrDottedName(e.Expression) && isSimpleOrDottedName(e.Name)
	}
	return false
}

func kindOf(n syntax.Node) syntax.Kind {
	if n == nil {
		return syntax.KindNone
	}
	return n.Kind()
}
