package syntax

import "fmt"

// Kind identifies the syntactic category of a node. The set is closed.
type Kind uint16

const (
	KindNone Kind = iota

	// names and types
	KindIdentifierName
	KindGenericName
	KindQualifiedName
	KindAliasQualifiedName
	KindPredefinedType
	KindArrayType
	KindPointerType
	KindNullableType
	KindTypeArgumentList
	KindArrayRankSpecifier

	// primary expressions
	KindNumericLiteralExpression
	KindStringLiteralExpression
	KindCharacterLiteralExpression
	KindTrueLiteralExpression
	KindFalseLiteralExpression
	KindNullLiteralExpression
	KindDefaultLiteralExpression
	KindInterpolatedStringExpression
	KindInterpolatedStringText
	KindInterpolation
	KindInterpolationAlignmentClause
	KindInterpolationFormatClause
	KindThisExpression
	KindBaseExpression
	KindParenthesizedExpression
	KindTupleExpression
	KindSimpleMemberAccessExpression
	KindPointerMemberAccessExpression
	KindConditionalAccessExpression
	KindMemberBindingExpression
	KindElementBindingExpression
	KindInvocationExpression
	KindElementAccessExpression
	KindArgumentList
	KindBracketedArgumentList
	KindArgument
	KindNameColon
	KindNameEquals
	KindPostIncrementExpression
	KindPostDecrementExpression
	KindSuppressNullableWarningExpression
	KindObjectCreationExpression
	KindArrayCreationExpression
	KindImplicitArrayCreationExpression
	KindAnonymousObjectCreationExpression
	KindAnonymousObjectMemberDeclarator
	KindStackAllocArrayCreationExpression
	KindImplicitStackAllocArrayCreationExpression
	KindInitializerExpression
	KindTypeOfExpression
	KindSizeOfExpression
	KindDefaultExpression
	KindCheckedExpression
	KindUncheckedExpression

	// unary expressions
	KindUnaryPlusExpression
	KindUnaryMinusExpression
	KindBitwiseNotExpression
	KindLogicalNotExpression
	KindPreIncrementExpression
	KindPreDecrementExpression
	KindPointerIndirectionExpression
	KindAddressOfExpression
	KindIndexExpression
	KindCastExpression
	KindAwaitExpression
	KindRangeExpression

	// binary expressions
	KindMultiplyExpression
	KindDivideExpression
	KindModuloExpression
	KindAddExpression
	KindSubtractExpression
	KindLeftShiftExpression
	KindRightShiftExpression
	KindUnsignedRightShiftExpression
	KindLessThanExpression
	KindLessThanOrEqualExpression
	KindGreaterThanExpression
	KindGreaterThanOrEqualExpression
	KindIsExpression
	KindAsExpression
	KindEqualsExpression
	KindNotEqualsExpression
	KindBitwiseAndExpression
	KindExclusiveOrExpression
	KindBitwiseOrExpression
	KindLogicalAndExpression
	KindLogicalOrExpression
	KindCoalesceExpression

	// other expressions
	KindIsPatternExpression
	KindSwitchExpression
	KindSwitchExpressionArm
	KindConditionalExpression
	KindRefExpression
	KindThrowExpression

	// assignments
	KindSimpleAssignmentExpression
	KindAddAssignmentExpression
	KindSubtractAssignmentExpression
	KindMultiplyAssignmentExpression
	KindDivideAssignmentExpression
	KindModuloAssignmentExpression
	KindAndAssignmentExpression
	KindExclusiveOrAssignmentExpression
	KindOrAssignmentExpression
	KindLeftShiftAssignmentExpression
	KindRightShiftAssignmentExpression
	KindUnsignedRightShiftAssignmentExpression
	KindCoalesceAssignmentExpression

	// lambdas and queries
	KindSimpleLambdaExpression
	KindParenthesizedLambdaExpression
	KindParameter
	KindParameterList
	KindQueryExpression
	KindQueryBody
	KindFromClause
	KindLetClause
	KindWhereClause
	KindSelectClause
	KindDeclarationExpression
	KindSingleVariableDesignation
	KindParenthesizedVariableDesignation
	KindDiscardDesignation

	// patterns
	KindParenthesizedPattern
	KindConstantPattern
	KindDiscardPattern
	KindDeclarationPattern
	KindVarPattern
	KindTypePattern
	KindRecursivePattern
	KindPositionalPatternClause
	KindPropertyPatternClause
	KindSubpattern
	KindNotPattern
	KindRelationalPattern
	KindAndPattern
	KindOrPattern

	// clauses
	KindWhenClause
	KindArrowExpressionClause
	KindEqualsValueClause
	KindVariableDeclarator
	KindVariableDeclaration
	KindCatchClause
	KindCatchDeclaration
	KindCatchFilterClause
	KindFinallyClause
	KindElseClause
	KindSwitchSection
	KindCaseSwitchLabel
	KindCasePatternSwitchLabel
	KindDefaultSwitchLabel

	// statements
	KindBlock
	KindEmptyStatement
	KindExpressionStatement
	KindLocalDeclarationStatement
	KindLocalFunctionStatement
	KindIfStatement
	KindWhileStatement
	KindDoStatement
	KindForStatement
	KindForEachStatement
	KindLockStatement
	KindUsingStatement
	KindSwitchStatement
	KindReturnStatement
	KindYieldReturnStatement
	KindYieldBreakStatement
	KindThrowStatement
	KindTryStatement
	KindBreakStatement
	KindContinueStatement
	KindCheckedStatement
	KindUncheckedStatement

	// directives
	KindIfDirectiveTrivia
	KindElifDirectiveTrivia

	// root
	KindCompilationUnit

	// KindCount is the number of node kinds.
	KindCount
)

var kindNames = [KindCount]string{
	KindNone:                                      "None",
	KindIdentifierName:                            "IdentifierName",
	KindGenericName:                               "GenericName",
	KindQualifiedName:                             "QualifiedName",
	KindAliasQualifiedName:                        "AliasQualifiedName",
	KindPredefinedType:                            "PredefinedType",
	KindArrayType:                                 "ArrayType",
	KindPointerType:                               "PointerType",
	KindNullableType:                              "NullableType",
	KindTypeArgumentList:                          "TypeArgumentList",
	KindArrayRankSpecifier:                        "ArrayRankSpecifier",
	KindNumericLiteralExpression:                  "NumericLiteralExpression",
	KindStringLiteralExpression:                   "StringLiteralExpression",
	KindCharacterLiteralExpression:                "CharacterLiteralExpression",
	KindTrueLiteralExpression:                     "TrueLiteralExpression",
	KindFalseLiteralExpression:                    "FalseLiteralExpression",
	KindNullLiteralExpression:                     "NullLiteralExpression",
	KindDefaultLiteralExpression:                  "DefaultLiteralExpression",
	KindInterpolatedStringExpression:              "InterpolatedStringExpression",
	KindInterpolatedStringText:                    "InterpolatedStringText",
	KindInterpolation:                             "Interpolation",
	KindInterpolationAlignmentClause:              "InterpolationAlignmentClause",
	KindInterpolationFormatClause:                 "InterpolationFormatClause",
	KindThisExpression:                            "ThisExpression",
	KindBaseExpression:                            "BaseExpression",
	KindParenthesizedExpression:                   "ParenthesizedExpression",
	KindTupleExpression:                           "TupleExpression",
	KindSimpleMemberAccessExpression:              "SimpleMemberAccessExpression",
	KindPointerMemberAccessExpression:             "PointerMemberAccessExpression",
	KindConditionalAccessExpression:               "ConditionalAccessExpression",
	KindMemberBindingExpression:                   "MemberBindingExpression",
	KindElementBindingExpression:                  "ElementBindingExpression",
	KindInvocationExpression:                      "InvocationExpression",
	KindElementAccessExpression:                   "ElementAccessExpression",
	KindArgumentList:                              "ArgumentList",
	KindBracketedArgumentList:                     "BracketedArgumentList",
	KindArgument:                                  "Argument",
	KindNameColon:                                 "NameColon",
	KindNameEquals:                                "NameEquals",
	KindPostIncrementExpression:                   "PostIncrementExpression",
	KindPostDecrementExpression:                   "PostDecrementExpression",
	KindSuppressNullableWarningExpression:         "SuppressNullableWarningExpression",
	KindObjectCreationExpression:                  "ObjectCreationExpression",
	KindArrayCreationExpression:                   "ArrayCreationExpression",
	KindImplicitArrayCreationExpression:           "ImplicitArrayCreationExpression",
	KindAnonymousObjectCreationExpression:         "AnonymousObjectCreationExpression",
	KindAnonymousObjectMemberDeclarator:           "AnonymousObjectMemberDeclarator",
	KindStackAllocArrayCreationExpression:         "StackAllocArrayCreationExpression",
	KindImplicitStackAllocArrayCreationExpression: "ImplicitStackAllocArrayCreationExpression",
	KindInitializerExpression:                     "InitializerExpression",
	KindTypeOfExpression:                          "TypeOfExpression",
	KindSizeOfExpression:                          "SizeOfExpression",
	KindDefaultExpression:                         "DefaultExpression",
	KindCheckedExpression:                         "CheckedExpression",
	KindUncheckedExpression:                       "UncheckedExpression",
	KindUnaryPlusExpression:                       "UnaryPlusExpression",
	KindUnaryMinusExpression:                      "UnaryMinusExpression",
	KindBitwiseNotExpression:                      "BitwiseNotExpression",
	KindLogicalNotExpression:                      "LogicalNotExpression",
	KindPreIncrementExpression:                    "PreIncrementExpression",
	KindPreDecrementExpression:                    "PreDecrementExpression",
	KindPointerIndirectionExpression:              "PointerIndirectionExpression",
	KindAddressOfExpression:                       "AddressOfExpression",
	KindIndexExpression:                           "IndexExpression",
	KindCastExpression:                            "CastExpression",
	KindAwaitExpression:                           "AwaitExpression",
	KindRangeExpression:                           "RangeExpression",
	KindMultiplyExpression:                        "MultiplyExpression",
	KindDivideExpression:                          "DivideExpression",
	KindModuloExpression:                          "ModuloExpression",
	KindAddExpression:                             "AddExpression",
	KindSubtractExpression:                        "SubtractExpression",
	KindLeftShiftExpression:                       "LeftShiftExpression",
	KindRightShiftExpression:                      "RightShiftExpression",
	KindUnsignedRightShiftExpression:              "UnsignedRightShiftExpression",
	KindLessThanExpression:                        "LessThanExpression",
	KindLessThanOrEqualExpression:                 "LessThanOrEqualExpression",
	KindGreaterThanExpression:                     "GreaterThanExpression",
	KindGreaterThanOrEqualExpression:              "GreaterThanOrEqualExpression",
	KindIsExpression:                              "IsExpression",
	KindAsExpression:                              "AsExpression",
	KindEqualsExpression:                          "EqualsExpression",
	KindNotEqualsExpression:                       "NotEqualsExpression",
	KindBitwiseAndExpression:                      "BitwiseAndExpression",
	KindExclusiveOrExpression:                     "ExclusiveOrExpression",
	KindBitwiseOrExpression:                       "BitwiseOrExpression",
	KindLogicalAndExpression:                      "LogicalAndExpression",
	KindLogicalOrExpression:                       "LogicalOrExpression",
	KindCoalesceExpression:                        "CoalesceExpression",
	KindIsPatternExpression:                       "IsPatternExpression",
	KindSwitchExpression:                          "SwitchExpression",
	KindSwitchExpressionArm:                       "SwitchExpressionArm",
	KindConditionalExpression:                     "ConditionalExpression",
	KindRefExpression:                             "RefExpression",
	KindThrowExpression:                           "ThrowExpression",
	KindSimpleAssignmentExpression:                "SimpleAssignmentExpression",
	KindAddAssignmentExpression:                   "AddAssignmentExpression",
	KindSubtractAssignmentExpression:              "SubtractAssignmentExpression",
	KindMultiplyAssignmentExpression:              "MultiplyAssignmentExpression",
	KindDivideAssignmentExpression:                "DivideAssignmentExpression",
	KindModuloAssignmentExpression:                "ModuloAssignmentExpression",
	KindAndAssignmentExpression:                   "AndAssignmentExpression",
	KindExclusiveOrAssignmentExpression:           "ExclusiveOrAssignmentExpression",
	KindOrAssignmentExpression:                    "OrAssignmentExpression",
	KindLeftShiftAssignmentExpression:             "LeftShiftAssignmentExpression",
	KindRightShiftAssignmentExpression:            "RightShiftAssignmentExpression",
	KindUnsignedRightShiftAssignmentExpression:    "UnsignedRightShiftAssignmentExpression",
	KindCoalesceAssignmentExpression:              "CoalesceAssignmentExpression",
	KindSimpleLambdaExpression:                    "SimpleLambdaExpression",
	KindParenthesizedLambdaExpression:             "ParenthesizedLambdaExpression",
	KindParameter:                                 "Parameter",
	KindParameterList:                             "ParameterList",
	KindQueryExpression:                           "QueryExpression",
	KindQueryBody:                                 "QueryBody",
	KindFromClause:                                "FromClause",
	KindLetClause:                                 "LetClause",
	KindWhereClause:                               "WhereClause",
	KindSelectClause:                              "SelectClause",
	KindDeclarationExpression:                     "DeclarationExpression",
	KindSingleVariableDesignation:                 "SingleVariableDesignation",
	KindParenthesizedVariableDesignation:          "ParenthesizedVariableDesignation",
	KindDiscardDesignation:                        "DiscardDesignation",
	KindParenthesizedPattern:                      "ParenthesizedPattern",
	KindConstantPattern:                           "ConstantPattern",
	KindDiscardPattern:                            "DiscardPattern",
	KindDeclarationPattern:                        "DeclarationPattern",
	KindVarPattern:                                "VarPattern",
	KindTypePattern:                               "TypePattern",
	KindRecursivePattern:                          "RecursivePattern",
	KindPositionalPatternClause:                   "PositionalPatternClause",
	KindPropertyPatternClause:                     "PropertyPatternClause",
	KindSubpattern:                                "Subpattern",
	KindNotPattern:                                "NotPattern",
	KindRelationalPattern:                         "RelationalPattern",
	KindAndPattern:                                "AndPattern",
	KindOrPattern:                                 "OrPattern",
	KindWhenClause:                                "WhenClause",
	KindArrowExpressionClause:                     "ArrowExpressionClause",
	KindEqualsValueClause:                         "EqualsValueClause",
	KindVariableDeclarator:                        "VariableDeclarator",
	KindVariableDeclaration:                       "VariableDeclaration",
	KindCatchClause:                               "CatchClause",
	KindCatchDeclaration:                          "CatchDeclaration",
	KindCatchFilterClause:                         "CatchFilterClause",
	KindFinallyClause:                             "FinallyClause",
	KindElseClause:                                "ElseClause",
	KindSwitchSection:                             "SwitchSection",
	KindCaseSwitchLabel:                           "CaseSwitchLabel",
	KindCasePatternSwitchLabel:                    "CasePatternSwitchLabel",
	KindDefaultSwitchLabel:                        "DefaultSwitchLabel",
	KindBlock:                                     "Block",
	KindEmptyStatement:                            "EmptyStatement",
	KindExpressionStatement:                       "ExpressionStatement",
	KindLocalDeclarationStatement:                 "LocalDeclarationStatement",
	KindLocalFunctionStatement:                    "LocalFunctionStatement",
	KindIfStatement:                               "IfStatement",
	KindWhileStatement:                            "WhileStatement",
	KindDoStatement:                               "DoStatement",
	KindForStatement:                              "ForStatement",
	KindForEachStatement:                          "ForEachStatement",
	KindLockStatement:                             "LockStatement",
	KindUsingStatement:                            "UsingStatement",
	KindSwitchStatement:                           "SwitchStatement",
	KindReturnStatement:                           "ReturnStatement",
	KindYieldReturnStatement:                      "YieldReturnStatement",
	KindYieldBreakStatement:                       "YieldBreakStatement",
	KindThrowStatement:                            "ThrowStatement",
	KindTryStatement:                              "TryStatement",
	KindBreakStatement:                            "BreakStatement",
	KindContinueStatement:                         "ContinueStatement",
	KindCheckedStatement:                          "CheckedStatement",
	KindUncheckedStatement:                        "UncheckedStatement",
	KindIfDirectiveTrivia:                         "IfDirectiveTrivia",
	KindElifDirectiveTrivia:                       "ElifDirectiveTrivia",
	KindCompilationUnit:                           "CompilationUnit",
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindFromString resolves a kind name as printed by String.
func KindFromString(s string) (Kind, bool) {
	for k := KindNone; k < KindCount; k++ {
		if kindNames[k] == s {
			return k, true
		}
	}
	return KindNone, false
}

// IsBinaryExpression reports whether k is a binary operator expression.
func (k Kind) IsBinaryExpression() bool {
	return k >= KindMultiplyExpression && k <= KindCoalesceExpression
}

// IsAssignmentExpression reports whether k is a simple or compound
// assignment.
func (k Kind) IsAssignmentExpression() bool {
	return k >= KindSimpleAssignmentExpression && k <= KindCoalesceAssignmentExpression
}

// IsLiteralExpression reports whether k is a literal.
func (k Kind) IsLiteralExpression() bool {
	return k >= KindNumericLiteralExpression && k <= KindDefaultLiteralExpression
}

// IsPattern reports whether k is a pattern.
func (k Kind) IsPattern() bool {
	switch k {
	case KindParenthesizedPattern, KindConstantPattern, KindDiscardPattern,
		KindDeclarationPattern, KindVarPattern, KindTypePattern, KindRecursivePattern,
		KindNotPattern, KindRelationalPattern, KindAndPattern, KindOrPattern:
		return true
	}
	return false
}

// binaryKinds maps an operator token to the binary expression it forms.
var binaryKinds = map[TokenKind]Kind{
	TokAsterisk:                          KindMultiplyExpression,
	TokSlash:                             KindDivideExpression,
	TokPercent:                           KindModuloExpression,
	TokPlus:                              KindAddExpression,
	TokMinus:                             KindSubtractExpression,
	TokLessThanLessThan:                  KindLeftShiftExpression,
	TokGreaterThanGreaterThan:            KindRightShiftExpression,
	TokGreaterThanGreaterThanGreaterThan: KindUnsignedRightShiftExpression,
	TokLessThan:                          KindLessThanExpression,
	TokLessThanEquals:                    KindLessThanOrEqualExpression,
	TokGreaterThan:                       KindGreaterThanExpression,
	TokGreaterThanEquals:                 KindGreaterThanOrEqualExpression,
	TokKwIs:                              KindIsExpression,
	TokKwAs:                              KindAsExpression,
	TokEqualsEquals:                      KindEqualsExpression,
	TokExclamationEquals:                 KindNotEqualsExpression,
	TokAmpersand:                         KindBitwiseAndExpression,
	TokCaret:                             KindExclusiveOrExpression,
	TokBar:                               KindBitwiseOrExpression,
	TokAmpersandAmpersand:                KindLogicalAndExpression,
	TokBarBar:                            KindLogicalOrExpression,
	TokQuestionQuestion:                  KindCoalesceExpression,
}

var assignmentKinds = map[TokenKind]Kind{
	TokEquals:                                  KindSimpleAssignmentExpression,
	TokPlusEquals:                              KindAddAssignmentExpression,
	TokMinusEquals:                             KindSubtractAssignmentExpression,
	TokAsteriskEquals:                          KindMultiplyAssignmentExpression,
	TokSlashEquals:                             KindDivideAssignmentExpression,
	TokPercentEquals:                           KindModuloAssignmentExpression,
	TokAmpersandEquals:                         KindAndAssignmentExpression,
	TokCaretEquals:                             KindExclusiveOrAssignmentExpression,
	TokBarEquals:                               KindOrAssignmentExpression,
	TokLessThanLessThanEquals:                  KindLeftShiftAssignmentExpression,
	TokGreaterThanGreaterThanEquals:            KindRightShiftAssignmentExpression,
	TokGreaterThanGreaterThanGreaterThanEquals: KindUnsignedRightShiftAssignmentExpression,
	TokQuestionQuestionEquals:                  KindCoalesceAssignmentExpression,
}

var prefixKinds = map[TokenKind]Kind{
	TokPlus:        KindUnaryPlusExpression,
	TokMinus:       KindUnaryMinusExpression,
	TokTilde:       KindBitwiseNotExpression,
	TokExclamation: KindLogicalNotExpression,
	TokPlusPlus:    KindPreIncrementExpression,
	TokMinusMinus:  KindPreDecrementExpression,
	TokAsterisk:    KindPointerIndirectionExpression,
	TokAmpersand:   KindAddressOfExpression,
	TokCaret:       KindIndexExpression,
}

// BinaryKind returns the binary expression kind formed by op.
func BinaryKind(op TokenKind) (Kind, bool) {
	k, ok := binaryKinds[op]
	return k, ok
}

// AssignmentKind returns the assignment kind formed by op.
func AssignmentKind(op TokenKind) (Kind, bool) {
	k, ok := assignmentKinds[op]
	return k, ok
}

// PrefixUnaryKind returns the prefix unary kind formed by op.
func PrefixUnaryKind(op TokenKind) (Kind, bool) {
	k, ok := prefixKinds[op]
	return k, ok
}
