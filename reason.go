package unparen

import "fmt"

// Reason names the rule that decided whether a pair of parentheses can be
// removed. Explain and ExplainPattern return it with the decision.
type Reason uint8

const (
	ReasonNone Reason = iota

	// structural
	ReasonMissingToken
	ReasonTokenGlue
	ReasonStackAlloc

	// context
	ReasonNested
	ReasonThrow
	ReasonThrowOperand
	ReasonStatement
	ReasonChecked
	ReasonTuple
	ReasonCastOfThis
	ReasonArgument
	ReasonInterpolation
	ReasonInterpolatedString
	ReasonInitializer
	ReasonInitializerAssignment
	ReasonAnonymousMember
	ReasonAnonymousMemberAssignment
	ReasonQueryClause
	ReasonName
	ReasonLiteral
	ReasonThis
	ReasonCaseLabel
	ReasonWhenClause
	ReasonDirective
	ReasonSwitchArm
	ReasonConditionalArm
	ReasonCastOfIncrement
	ReasonConditionalAssignmentTarget
	ReasonConditionalAccess
	ReasonNoExpressionParent

	// ambiguity
	ReasonCastAmbiguity
	ReasonGenericAmbiguity
	ReasonFormatClauseAmbiguity

	// association
	ReasonUnknownPrecedence
	ReasonHigherPrecedence
	ReasonLowerPrecedence
	ReasonNotBinary
	ReasonReassociable
	ReasonNotReassociable
	ReasonOperandSide
	ReasonChangesGrouping

	// patterns
	ReasonPatternNested
	ReasonPatternDiscard
	ReasonPatternTight
	ReasonPatternContext
	ReasonPatternPrecedence
	ReasonPatternLowerPrecedence
	ReasonNotPatternParent

	reasonCount
)

var reasonNames = [reasonCount]string{
	ReasonNone:                        "none",
	ReasonMissingToken:                "missing parenthesis token",
	ReasonTokenGlue:                   "removal would join + or - tokens",
	ReasonStackAlloc:                  "stackalloc operand",
	ReasonNested:                      "nested parentheses",
	ReasonThrow:                       "throw expression",
	ReasonThrowOperand:                "throw expression right of ??",
	ReasonStatement:                   "statement or clause slot",
	ReasonChecked:                     "checked or unchecked operand",
	ReasonTuple:                       "tuple",
	ReasonCastOfThis:                  "cast of this",
	ReasonArgument:                    "argument",
	ReasonInterpolation:               "interpolation hole",
	ReasonInterpolatedString:          "interpolated string",
	ReasonInitializer:                 "initializer element",
	ReasonInitializerAssignment:       "assignment in initializer element",
	ReasonAnonymousMember:             "anonymous object member",
	ReasonAnonymousMemberAssignment:   "assignment in unnamed anonymous object member",
	ReasonQueryClause:                 "query clause",
	ReasonName:                        "simple or dotted name",
	ReasonLiteral:                     "literal",
	ReasonThis:                        "this",
	ReasonCaseLabel:                   "case label",
	ReasonWhenClause:                  "when clause",
	ReasonDirective:                   "preprocessor condition",
	ReasonSwitchArm:                   "switch expression arm",
	ReasonConditionalArm:              "conditional expression arm",
	ReasonCastOfIncrement:             "cast of prefix increment or decrement",
	ReasonConditionalAssignmentTarget: "conditional on the left of an assignment",
	ReasonConditionalAccess:           "conditional access",
	ReasonNoExpressionParent:          "parent is not an expression",
	ReasonCastAmbiguity:               "removal would read as a binary operator after a parenthesized name",
	ReasonGenericAmbiguity:            "removal would read as generic arguments",
	ReasonFormatClauseAmbiguity:       "colon would end the interpolation hole",
	ReasonUnknownPrecedence:           "operator precedence unknown",
	ReasonHigherPrecedence:            "inner binds tighter",
	ReasonLowerPrecedence:             "inner binds looser",
	ReasonNotBinary:                   "equal precedence, not a binary operator",
	ReasonReassociable:                "associative regrouping is safe",
	ReasonNotReassociable:             "associative regrouping not proven safe",
	ReasonOperandSide:                 "operand on the associating side",
	ReasonChangesGrouping:             "removal would regroup operands",
	ReasonPatternNested:               "nested pattern parentheses",
	ReasonPatternDiscard:              "discard pattern under is",
	ReasonPatternTight:                "primary or unary pattern",
	ReasonPatternContext:              "pattern slot",
	ReasonPatternPrecedence:           "pattern binds at least as tight",
	ReasonPatternLowerPrecedence:      "pattern binds looser",
	ReasonNotPatternParent:            "parent is not a pattern",
}

func (r Reason) String() string {
	if r < reasonCount {
		return reasonNames[r]
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}
