// Package precedence maps expression and pattern kinds to operator
// precedence tiers. The tables are total over syntax.Kind: kinds that are
// not operators map to None.
package precedence

import (
	"fmt"

	"github.com/csfmt/unparen/syntax"
)

// Precedence is an expression precedence tier. Larger values bind tighter.
type Precedence int

const (
	None Precedence = iota
	AssignmentAndLambda
	Conditional
	NullCoalescing
	ConditionalOr
	ConditionalAnd
	LogicalOr
	LogicalXor
	LogicalAnd
	Equality
	RelationalAndTypeTesting
	Shift
	Additive
	Multiplicative
	Switch
	Range
	Unary
	Primary
)

var names = [...]string{
	None:                     "None",
	AssignmentAndLambda:      "AssignmentAndLambda",
	Conditional:              "Conditional",
	NullCoalescing:           "NullCoalescing",
	ConditionalOr:            "ConditionalOr",
	ConditionalAnd:           "ConditionalAnd",
	LogicalOr:                "LogicalOr",
	LogicalXor:               "LogicalXor",
	LogicalAnd:               "LogicalAnd",
	Equality:                 "Equality",
	RelationalAndTypeTesting: "RelationalAndTypeTesting",
	Shift:                    "Shift",
	Additive:                 "Additive",
	Multiplicative:           "Multiplicative",
	Switch:                   "Switch",
	Range:                    "Range",
	Unary:                    "Unary",
	Primary:                  "Primary",
}

func (p Precedence) String() string {
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return fmt.Sprintf("Precedence(%d)", int(p))
}

var table [syntax.KindCount]Precedence

func init() {
	set := func(p Precedence, kinds ...syntax.Kind) {
		for _, k := range kinds {
			table[k] = p
		}
	}
	set(Primary,
		syntax.KindMemberBindingExpression,
		syntax.KindSimpleMemberAccessExpression,
		syntax.KindPointerMemberAccessExpression,
		syntax.KindConditionalAccessExpression,
		syntax.KindInvocationExpression,
		syntax.KindElementAccessExpression,
		syntax.KindPostIncrementExpression,
		syntax.KindPostDecrementExpression,
		syntax.KindSuppressNullableWarningExpression,
		syntax.KindObjectCreationExpression,
		syntax.KindTypeOfExpression,
		syntax.KindSizeOfExpression,
		syntax.KindDefaultExpression,
		syntax.KindCheckedExpression,
		syntax.KindUncheckedExpression)
	set(Unary,
		syntax.KindUnaryPlusExpression,
		syntax.KindUnaryMinusExpression,
		syntax.KindLogicalNotExpression,
		syntax.KindBitwiseNotExpression,
		syntax.KindPreIncrementExpression,
		syntax.KindPreDecrementExpression,
		syntax.KindPointerIndirectionExpression,
		syntax.KindAddressOfExpression,
		syntax.KindIndexExpression,
		syntax.KindCastExpression,
		syntax.KindAwaitExpression)
	set(Range, syntax.KindRangeExpression)
	set(Switch, syntax.KindSwitchExpression)
	set(Multiplicative,
		syntax.KindMultiplyExpression,
		syntax.KindDivideExpression,
		syntax.KindModuloExpression)
	set(Additive,
		syntax.KindAddExpression,
		syntax.KindSubtractExpression)
	set(Shift,
		syntax.KindLeftShiftExpression,
		syntax.KindRightShiftExpression,
		syntax.KindUnsignedRightShiftExpression)
	set(RelationalAndTypeTesting,
		syntax.KindLessThanExpression,
		syntax.KindLessThanOrEqualExpression,
		syntax.KindGreaterThanExpression,
		syntax.KindGreaterThanOrEqualExpression,
		syntax.KindIsExpression,
		syntax.KindAsExpression,
		syntax.KindIsPatternExpression)
	set(Equality,
		syntax.KindEqualsExpression,
		syntax.KindNotEqualsExpression)
	set(LogicalAnd, syntax.KindBitwiseAndExpression)
	set(LogicalXor, syntax.KindExclusiveOrExpression)
	set(LogicalOr, syntax.KindBitwiseOrExpression)
	set(ConditionalAnd, syntax.KindLogicalAndExpression)
	set(ConditionalOr, syntax.KindLogicalOrExpression)
	set(NullCoalescing, syntax.KindCoalesceExpression)
	set(Conditional, syntax.KindConditionalExpression)
	set(AssignmentAndLambda,
		syntax.KindSimpleAssignmentExpression,
		syntax.KindAddAssignmentExpression,
		syntax.KindSubtractAssignmentExpression,
		syntax.KindMultiplyAssignmentExpression,
		syntax.KindDivideAssignmentExpression,
		syntax.KindModuloAssignmentExpression,
		syntax.KindAndAssignmentExpression,
		syntax.KindExclusiveOrAssignmentExpression,
		syntax.KindOrAssignmentExpression,
		syntax.KindLeftShiftAssignmentExpression,
		syntax.KindRightShiftAssignmentExpression,
		syntax.KindUnsignedRightShiftAssignmentExpression,
		syntax.KindCoalesceAssignmentExpression,
		syntax.KindSimpleLambdaExpression,
		syntax.KindParenthesizedLambdaExpression)
}

// OfKind returns the expression precedence of kind k.
func OfKind(k syntax.Kind) Precedence {
	if k >= syntax.KindCount {
		return None
	}
	return table[k]
}

// Of returns the expression precedence of n, or None for a nil node.
func Of(n syntax.Node) Precedence {
	if n == nil {
		return None
	}
	return OfKind(n.Kind())
}

// IsAssociative reports whether a binary kind satisfies (a op b) op c ==
// a op (b op c) for built-in operands.
func IsAssociative(k syntax.Kind) bool {
	switch k {
	case syntax.KindAddExpression,
		syntax.KindMultiplyExpression,
		syntax.KindBitwiseOrExpression,
		syntax.KindExclusiveOrExpression,
		syntax.KindBitwiseAndExpression,
		syntax.KindLogicalOrExpression,
		syntax.KindLogicalAndExpression:
		return true
	}
	return false
}

// PatternPrecedence is a pattern precedence tier. Larger values bind
// tighter.
type PatternPrecedence int

const (
	PatternNone PatternPrecedence = iota
	PatternConditionalOr
	PatternConditionalAnd
	PatternUnary
	PatternPrimary
)

func (p PatternPrecedence) String() string {
	switch p {
	case PatternNone:
		return "None"
	case PatternConditionalOr:
		return "ConditionalOr"
	case PatternConditionalAnd:
		return "ConditionalAnd"
	case PatternUnary:
		return "Unary"
	case PatternPrimary:
		return "Primary"
	}
	return fmt.Sprintf("PatternPrecedence(%d)", int(p))
}

// OfPatternKind returns the pattern precedence of kind k.
func OfPatternKind(k syntax.Kind) PatternPrecedence {
	switch k {
	case syntax.KindConstantPattern,
		syntax.KindDiscardPattern,
		syntax.KindDeclarationPattern,
		syntax.KindRecursivePattern,
		syntax.KindTypePattern,
		syntax.KindVarPattern:
		return PatternPrimary
	case syntax.KindNotPattern, syntax.KindRelationalPattern:
		return PatternUnary
	case syntax.KindAndPattern:
		return PatternConditionalAnd
	case syntax.KindOrPattern:
		return PatternConditionalOr
	}
	return PatternNone
}

// OfPattern returns the pattern precedence of n, or PatternNone for nil.
func OfPattern(n syntax.Node) PatternPrecedence {
	if n == nil {
		return PatternNone
	}
	return OfPatternKind(n.Kind())
}
