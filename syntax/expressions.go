package syntax

// LiteralExpression is a numeric, string, character, boolean, null or
// default literal. Its kind follows from the token.
type LiteralExpression struct {
	parentLink
	Token Token
}

func (n *LiteralExpression) Kind() Kind {
	switch n.Token.Kind {
	case TokNumericLiteral:
		return KindNumericLiteralExpression
	case TokStringLiteral:
		return KindStringLiteralExpression
	case TokCharLiteral:
		return KindCharacterLiteralExpression
	case TokKwTrue:
		return KindTrueLiteralExpression
	case TokKwFalse:
		return KindFalseLiteralExpression
	case TokKwNull:
		return KindNullLiteralExpression
	case TokKwDefault:
		return KindDefaultLiteralExpression
	}
	return KindNone
}

func (n *LiteralExpression) Children() []Child { return []Child{{Token: n.Token}} }

// InterpolatedStringExpression is $"...{expr}...".
type InterpolatedStringExpression struct {
	parentLink
	StringStart Token
	Contents    []InterpolatedStringContent
	StringEnd   Token
}

// InterpolatedStringContent is a text run or an interpolation hole.
type InterpolatedStringContent interface {
	Node
	interpolatedStringContent()
}

// InterpolatedStringText is a literal run inside an interpolated string.
type InterpolatedStringText struct {
	parentLink
	TextToken Token
}

// Interpolation is one {expression[,alignment][:format]} hole.
type Interpolation struct {
	parentLink
	OpenBrace  Token
	Expression Expression
	Alignment  *InterpolationAlignmentClause
	Format     *InterpolationFormatClause
	CloseBrace Token
}

// InterpolationAlignmentClause is the ,alignment part of a hole.
type InterpolationAlignmentClause struct {
	parentLink
	Comma Token
	Value Expression
}

// InterpolationFormatClause is the :format part of a hole.
type InterpolationFormatClause struct {
	parentLink
	Colon        Token
	FormatString Token
}

func (*InterpolatedStringExpression) Kind() Kind { return KindInterpolatedStringExpression }
func (*InterpolatedStringText) Kind() Kind       { return KindInterpolatedStringText }
func (*Interpolation) Kind() Kind                { return KindInterpolation }
func (*InterpolationAlignmentClause) Kind() Kind { return KindInterpolationAlignmentClause }
func (*InterpolationFormatClause) Kind() Kind    { return KindInterpolationFormatClause }

func (*InterpolatedStringText) interpolatedStringContent() {}
func (*Interpolation) interpolatedStringContent()          {}

func (n *InterpolatedStringExpression) Children() []Child {
	var l childList
	l.tok(n.StringStart)
	for _, c := range n.Contents {
		l.node(c)
	}
	l.tok(n.StringEnd)
	return l
}

func (n *InterpolatedStringText) Children() []Child { return []Child{{Token: n.TextToken}} }

func (n *Interpolation) Children() []Child {
	var l childList
	l.tok(n.OpenBrace)
	l.node(n.Expression)
	if n.Alignment != nil {
		l.node(n.Alignment)
	}
	if n.Format != nil {
		l.node(n.Format)
	}
	l.tok(n.CloseBrace)
	return l
}

func (n *InterpolationAlignmentClause) Children() []Child {
	var l childList
	l.tok(n.Comma)
	l.node(n.Value)
	return l
}

func (n *InterpolationFormatClause) Children() []Child {
	var l childList
	l.tok(n.Colon)
	l.tok(n.FormatString)
	return l
}

// ThisExpression is the this keyword.
type ThisExpression struct {
	parentLink
	Token Token
}

// BaseExpression is the base keyword.
type BaseExpression struct {
	parentLink
	Token Token
}

func (*ThisExpression) Kind() Kind          { return KindThisExpression }
func (*BaseExpression) Kind() Kind          { return KindBaseExpression }
func (n *ThisExpression) Children() []Child { return []Child{{Token: n.Token}} }
func (n *BaseExpression) Children() []Child { return []Child{{Token: n.Token}} }

// ParenthesizedExpression is ( expression ).
type ParenthesizedExpression struct {
	parentLink
	OpenParen  Token
	Expression Expression
	CloseParen Token
}

func (*ParenthesizedExpression) Kind() Kind { return KindParenthesizedExpression }

func (n *ParenthesizedExpression) Children() []Child {
	var l childList
	l.tok(n.OpenParen)
	l.node(n.Expression)
	l.tok(n.CloseParen)
	return l
}

// TupleExpression is (a, b, ...).
type TupleExpression struct {
	parentLink
	OpenParen  Token
	Arguments  []*Argument
	Commas     []Token
	CloseParen Token
}

func (*TupleExpression) Kind() Kind { return KindTupleExpression }

func (n *TupleExpression) Children() []Child {
	var l childList
	l.tok(n.OpenParen)
	separated(&l, n.Arguments, n.Commas)
	l.tok(n.CloseParen)
	return l
}

// MemberAccessExpression is expr.Name or expr->Name.
type MemberAccessExpression struct {
	parentLink
	Expression    Expression
	OperatorToken Token
	Name          SimpleName
}

func (n *MemberAccessExpression) Kind() Kind {
	if n.OperatorToken.Kind == TokMinusGreaterThan {
		return KindPointerMemberAccessExpression
	}
	return KindSimpleMemberAccessExpression
}

func (n *MemberAccessExpression) Children() []Child {
	var l childList
	l.node(n.Expression)
	l.tok(n.OperatorToken)
	l.node(n.Name)
	return l
}

// ConditionalAccessExpression is expr?.Member or expr?[index]. The
// accessed part is rooted at a MemberBindingExpression or
// ElementBindingExpression.
type ConditionalAccessExpression struct {
	parentLink
	Expression    Expression
	OperatorToken Token
	WhenNotNull   Expression
}

// MemberBindingExpression is the .Name following ?.
type MemberBindingExpression struct {
	parentLink
	OperatorToken Token
	Name          SimpleName
}

// ElementBindingExpression is the [args] following ?.
type ElementBindingExpression struct {
	parentLink
	ArgumentList *ArgumentList
}

func (*ConditionalAccessExpression) Kind() Kind { return KindConditionalAccessExpression }
func (*MemberBindingExpression) Kind() Kind     { return KindMemberBindingExpression }
func (*ElementBindingExpression) Kind() Kind    { return KindElementBindingExpression }

func (n *ConditionalAccessExpression) Children() []Child {
	var l childList
	l.node(n.Expression)
	l.tok(n.OperatorToken)
	l.node(n.WhenNotNull)
	return l
}

func (n *MemberBindingExpression) Children() []Child {
	var l childList
	l.tok(n.OperatorToken)
	l.node(n.Name)
	return l
}

func (n *ElementBindingExpression) Children() []Child {
	var l childList
	if n.ArgumentList != nil {
		l.node(n.ArgumentList)
	}
	return l
}

// InvocationExpression is expr(args).
type InvocationExpression struct {
	parentLink
	Expression   Expression
	ArgumentList *ArgumentList
}

// ElementAccessExpression is expr[args].
type ElementAccessExpression struct {
	parentLink
	Expression   Expression
	ArgumentList *ArgumentList
}

func (*InvocationExpression) Kind() Kind    { return KindInvocationExpression }
func (*ElementAccessExpression) Kind() Kind { return KindElementAccessExpression }

func (n *InvocationExpression) Children() []Child {
	var l childList
	l.node(n.Expression)
	if n.ArgumentList != nil {
		l.node(n.ArgumentList)
	}
	return l
}

func (n *ElementAccessExpression) Children() []Child {
	var l childList
	l.node(n.Expression)
	if n.ArgumentList != nil {
		l.node(n.ArgumentList)
	}
	return l
}

// ArgumentList is (args) or [args]; the open token decides which.
type ArgumentList struct {
	parentLink
	OpenToken  Token
	Arguments  []*Argument
	Commas     []Token
	CloseToken Token
}

func (n *ArgumentList) Kind() Kind {
	if n.OpenToken.Kind == TokOpenBracket {
		return KindBracketedArgumentList
	}
	return KindArgumentList
}

func (n *ArgumentList) Children() []Child {
	var l childList
	l.tok(n.OpenToken)
	separated(&l, n.Arguments, n.Commas)
	l.tok(n.CloseToken)
	return l
}

// Argument is one argument: [name:] [ref|out|in] expression.
type Argument struct {
	parentLink
	NameColon      *NameColon
	RefKindKeyword Token
	Expression     Expression
}

// NameColon is name: in a named argument or subpattern.
type NameColon struct {
	parentLink
	Name  *IdentifierName
	Colon Token
}

// NameEquals is name = in an anonymous object member.
type NameEquals struct {
	parentLink
	Name        *IdentifierName
	EqualsToken Token
}

func (*Argument) Kind() Kind   { return KindArgument }
func (*NameColon) Kind() Kind  { return KindNameColon }
func (*NameEquals) Kind() Kind { return KindNameEquals }

func (n *Argument) Children() []Child {
	var l childList
	if n.NameColon != nil {
		l.node(n.NameColon)
	}
	l.tok(n.RefKindKeyword)
	l.node(n.Expression)
	return l
}

func (n *NameColon) Children() []Child {
	var l childList
	if n.Name != nil {
		l.node(n.Name)
	}
	l.tok(n.Colon)
	return l
}

func (n *NameEquals) Children() []Child {
	var l childList
	if n.Name != nil {
		l.node(n.Name)
	}
	l.tok(n.EqualsToken)
	return l
}

// PostfixUnaryExpression is x++, x-- or x!.
type PostfixUnaryExpression struct {
	parentLink
	Operand       Expression
	OperatorToken Token
}

func (n *PostfixUnaryExpression) Kind() Kind {
	switch n.OperatorToken.Kind {
	case TokPlusPlus:
		return KindPostIncrementExpression
	case TokMinusMinus:
		return KindPostDecrementExpression
	case TokExclamation:
		return KindSuppressNullableWarningExpression
	}
	return KindNone
}

func (n *PostfixUnaryExpression) Children() []Child {
	var l childList
	l.node(n.Operand)
	l.tok(n.OperatorToken)
	return l
}

// PrefixUnaryExpression is op x for +, -, !, ~, ++, --, *, & and ^.
type PrefixUnaryExpression struct {
	parentLink
	OperatorToken Token
	Operand       Expression
}

func (n *PrefixUnaryExpression) Kind() Kind {
	k, _ := PrefixUnaryKind(n.OperatorToken.Kind)
	return k
}

func (n *PrefixUnaryExpression) Children() []Child {
	var l childList
	l.tok(n.OperatorToken)
	l.node(n.Operand)
	return l
}

// ObjectCreationExpression is new T(args) { initializer }.
type ObjectCreationExpression struct {
	parentLink
	NewKeyword   Token
	Type         TypeSyntax
	ArgumentList *ArgumentList
	Initializer  *InitializerExpression
}

// ArrayCreationExpression is new T[n] { initializer }.
type ArrayCreationExpression struct {
	parentLink
	NewKeyword  Token
	Type        *ArrayType
	Initializer *InitializerExpression
}

// ImplicitArrayCreationExpression is new[] { ... }.
type ImplicitArrayCreationExpression struct {
	parentLink
	NewKeyword   Token
	OpenBracket  Token
	Commas       []Token
	CloseBracket Token
	Initializer  *InitializerExpression
}

// AnonymousObjectCreationExpression is new { A = x, y.B }.
type AnonymousObjectCreationExpression struct {
	parentLink
	NewKeyword   Token
	OpenBrace    Token
	Initializers []*AnonymousObjectMemberDeclarator
	Commas       []Token
	CloseBrace   Token
}

// AnonymousObjectMemberDeclarator is one member of an anonymous object.
// NameEquals is nil when the member name is inferred.
type AnonymousObjectMemberDeclarator struct {
	parentLink
	NameEquals *NameEquals
	Expression Expression
}

// StackAllocArrayCreationExpression is stackalloc T[n] { ... }.
type StackAllocArrayCreationExpression struct {
	parentLink
	StackAllocKeyword Token
	Type              TypeSyntax
	Initializer       *InitializerExpression
}

// ImplicitStackAllocArrayCreationExpression is stackalloc[] { ... }.
type ImplicitStackAllocArrayCreationExpression struct {
	parentLink
	StackAllocKeyword Token
	OpenBracket       Token
	CloseBracket      Token
	Initializer       *InitializerExpression
}

// InitializerExpression is { a, b } in an object, collection or array
// initializer.
type InitializerExpression struct {
	parentLink
	OpenBrace   Token
	Expressions []Expression
	Commas      []Token
	CloseBrace  Token
}

func (*ObjectCreationExpression) Kind() Kind          { return KindObjectCreationExpression }
func (*ArrayCreationExpression) Kind() Kind           { return KindArrayCreationExpression }
func (*ImplicitArrayCreationExpression) Kind() Kind   { return KindImplicitArrayCreationExpression }
func (*AnonymousObjectCreationExpression) Kind() Kind { return KindAnonymousObjectCreationExpression }
func (*AnonymousObjectMemberDeclarator) Kind() Kind   { return KindAnonymousObjectMemberDeclarator }
func (*StackAllocArrayCreationExpression) Kind() Kind { return KindStackAllocArrayCreationExpression }
func (*ImplicitStackAllocArrayCreationExpression) Kind() Kind {
	return KindImplicitStackAllocArrayCreationExpression
}
func (*InitializerExpression) Kind() Kind { return KindInitializerExpression }

func (n *ObjectCreationExpression) Children() []Child {
	var l childList
	l.tok(n.NewKeyword)
	l.node(n.Type)
	if n.ArgumentList != nil {
		l.node(n.ArgumentList)
	}
	if n.Initializer != nil {
		l.node(n.Initializer)
	}
	return l
}

func (n *ArrayCreationExpression) Children() []Child {
	var l childList
	l.tok(n.NewKeyword)
	if n.Type != nil {
		l.node(n.Type)
	}
	if n.Initializer != nil {
		l.node(n.Initializer)
	}
	return l
}

func (n *ImplicitArrayCreationExpression) Children() []Child {
	var l childList
	l.tok(n.NewKeyword)
	l.tok(n.OpenBracket)
	for _, c := range n.Commas {
		l.tok(c)
	}
	l.tok(n.CloseBracket)
	if n.Initializer != nil {
		l.node(n.Initializer)
	}
	return l
}

func (n *AnonymousObjectCreationExpression) Children() []Child {
	var l childList
	l.tok(n.NewKeyword)
	l.tok(n.OpenBrace)
	separated(&l, n.Initializers, n.Commas)
	l.tok(n.CloseBrace)
	return l
}

func (n *AnonymousObjectMemberDeclarator) Children() []Child {
	var l childList
	if n.NameEquals != nil {
		l.node(n.NameEquals)
	}
	l.node(n.Expression)
	return l
}

func (n *StackAllocArrayCreationExpression) Children() []Child {
	var l childList
	l.tok(n.StackAllocKeyword)
	l.node(n.Type)
	if n.Initializer != nil {
		l.node(n.Initializer)
	}
	return l
}

func (n *ImplicitStackAllocArrayCreationExpression) Children() []Child {
	var l childList
	l.tok(n.StackAllocKeyword)
	l.tok(n.OpenBracket)
	l.tok(n.CloseBracket)
	if n.Initializer != nil {
		l.node(n.Initializer)
	}
	return l
}

func (n *InitializerExpression) Children() []Child {
	var l childList
	l.tok(n.OpenBrace)
	separated(&l, n.Expressions, n.Commas)
	l.tok(n.CloseBrace)
	return l
}

// TypeKeywordExpression is typeof(T), sizeof(T) or default(T).
type TypeKeywordExpression struct {
	parentLink
	Keyword    Token
	OpenParen  Token
	Type       TypeSyntax
	CloseParen Token
}

func (n *TypeKeywordExpression) Kind() Kind {
	switch n.Keyword.Kind {
	case TokKwTypeof:
		return KindTypeOfExpression
	case TokKwSizeof:
		return KindSizeOfExpression
	case TokKwDefault:
		return KindDefaultExpression
	}
	return KindNone
}

func (n *TypeKeywordExpression) Children() []Child {
	var l childList
	l.tok(n.Keyword)
	l.tok(n.OpenParen)
	l.node(n.Type)
	l.tok(n.CloseParen)
	return l
}

// CheckedExpression is checked(expr) or unchecked(expr).
type CheckedExpression struct {
	parentLink
	Keyword    Token
	OpenParen  Token
	Expression Expression
	CloseParen Token
}

func (n *CheckedExpression) Kind() Kind {
	if n.Keyword.Kind == TokKwUnchecked {
		return KindUncheckedExpression
	}
	return KindCheckedExpression
}

func (n *CheckedExpression) Children() []Child {
	var l childList
	l.tok(n.Keyword)
	l.tok(n.OpenParen)
	l.node(n.Expression)
	l.tok(n.CloseParen)
	return l
}

// CastExpression is (T)expr.
type CastExpression struct {
	parentLink
	OpenParen  Token
	Type       TypeSyntax
	CloseParen Token
	Expression Expression
}

func (*CastExpression) Kind() Kind { return KindCastExpression }

func (n *CastExpression) Children() []Child {
	var l childList
	l.tok(n.OpenParen)
	l.node(n.Type)
	l.tok(n.CloseParen)
	l.node(n.Expression)
	return l
}

// AwaitExpression is await expr.
type AwaitExpression struct {
	parentLink
	AwaitKeyword Token
	Expression   Expression
}

func (*AwaitExpression) Kind() Kind { return KindAwaitExpression }

func (n *AwaitExpression) Children() []Child {
	var l childList
	l.tok(n.AwaitKeyword)
	l.node(n.Expression)
	return l
}

// RangeExpression is [left]..[right]; either operand may be nil.
type RangeExpression struct {
	parentLink
	LeftOperand   Expression
	OperatorToken Token
	RightOperand  Expression
}

func (*RangeExpression) Kind() Kind { return KindRangeExpression }

func (n *RangeExpression) Children() []Child {
	var l childList
	l.node(n.LeftOperand)
	l.tok(n.OperatorToken)
	l.node(n.RightOperand)
	return l
}

// BinaryExpression is left op right. For is and as, Right is a type.
type BinaryExpression struct {
	parentLink
	Left          Expression
	OperatorToken Token
	Right         Expression
}

func (n *BinaryExpression) Kind() Kind {
	k, _ := BinaryKind(n.OperatorToken.Kind)
	return k
}

func (n *BinaryExpression) Children() []Child {
	var l childList
	l.node(n.Left)
	l.tok(n.OperatorToken)
	l.node(n.Right)
	return l
}

// IsPatternExpression is expr is pattern.
type IsPatternExpression struct {
	parentLink
	Expression Expression
	IsKeyword  Token
	Pattern    Pattern
}

func (*IsPatternExpression) Kind() Kind { return KindIsPatternExpression }

func (n *IsPatternExpression) Children() []Child {
	var l childList
	l.node(n.Expression)
	l.tok(n.IsKeyword)
	l.node(n.Pattern)
	return l
}

// SwitchExpression is expr switch { arms }.
type SwitchExpression struct {
	parentLink
	GoverningExpression Expression
	SwitchKeyword       Token
	OpenBrace           Token
	Arms                []*SwitchExpressionArm
	Commas              []Token
	CloseBrace          Token
}

// SwitchExpressionArm is pattern [when cond] => expr.
type SwitchExpressionArm struct {
	parentLink
	Pattern           Pattern
	WhenClause        *WhenClause
	EqualsGreaterThan Token
	Expression        Expression
}

func (*SwitchExpression) Kind() Kind    { return KindSwitchExpression }
func (*SwitchExpressionArm) Kind() Kind { return KindSwitchExpressionArm }

func (n *SwitchExpression) Children() []Child {
	var l childList
	l.node(n.GoverningExpression)
	l.tok(n.SwitchKeyword)
	l.tok(n.OpenBrace)
	separated(&l, n.Arms, n.Commas)
	l.tok(n.CloseBrace)
	return l
}

func (n *SwitchExpressionArm) Children() []Child {
	var l childList
	l.node(n.Pattern)
	if n.WhenClause != nil {
		l.node(n.WhenClause)
	}
	l.tok(n.EqualsGreaterThan)
	l.node(n.Expression)
	return l
}

// ConditionalExpression is cond ? whenTrue : whenFalse.
type ConditionalExpression struct {
	parentLink
	Condition     Expression
	QuestionToken Token
	WhenTrue      Expression
	ColonToken    Token
	WhenFalse     Expression
}

func (*ConditionalExpression) Kind() Kind { return KindConditionalExpression }

func (n *ConditionalExpression) Children() []Child {
	var l childList
	l.node(n.Condition)
	l.tok(n.QuestionToken)
	l.node(n.WhenTrue)
	l.tok(n.ColonToken)
	l.node(n.WhenFalse)
	return l
}

// RefExpression is ref expr.
type RefExpression struct {
	parentLink
	RefKeyword Token
	Expression Expression
}

// ThrowExpression is throw expr in expression position.
type ThrowExpression struct {
	parentLink
	ThrowKeyword Token
	Expression   Expression
}

func (*RefExpression) Kind() Kind   { return KindRefExpression }
func (*ThrowExpression) Kind() Kind { return KindThrowExpression }

func (n *RefExpression) Children() []Child {
	var l childList
	l.tok(n.RefKeyword)
	l.node(n.Expression)
	return l
}

func (n *ThrowExpression) Children() []Child {
	var l childList
	l.tok(n.ThrowKeyword)
	l.node(n.Expression)
	return l
}

// AssignmentExpression is left op= right.
type AssignmentExpression struct {
	parentLink
	Left          Expression
	OperatorToken Token
	Right         Expression
}

func (n *AssignmentExpression) Kind() Kind {
	k, _ := AssignmentKind(n.OperatorToken.Kind)
	return k
}

func (n *AssignmentExpression) Children() []Child {
	var l childList
	l.node(n.Left)
	l.tok(n.OperatorToken)
	l.node(n.Right)
	return l
}

// SimpleLambdaExpression is x => body. Body is an Expression or a *Block.
type SimpleLambdaExpression struct {
	parentLink
	Parameter *Parameter
	Arrow     Token
	Body      Node
}

// ParenthesizedLambdaExpression is (params) => body.
type ParenthesizedLambdaExpression struct {
	parentLink
	ParameterList *ParameterList
	Arrow         Token
	Body          Node
}

// Parameter is [type] name.
type Parameter struct {
	parentLink
	Type  TypeSyntax
	Ident Token
}

// ParameterList is (params).
type ParameterList struct {
	parentLink
	OpenParen  Token
	Parameters []*Parameter
	Commas     []Token
	CloseParen Token
}

func (*SimpleLambdaExpression) Kind() Kind        { return KindSimpleLambdaExpression }
func (*ParenthesizedLambdaExpression) Kind() Kind { return KindParenthesizedLambdaExpression }
func (*Parameter) Kind() Kind                     { return KindParameter }
func (*ParameterList) Kind() Kind                 { return KindParameterList }

func (n *SimpleLambdaExpression) Children() []Child {
	var l childList
	if n.Parameter != nil {
		l.node(n.Parameter)
	}
	l.tok(n.Arrow)
	l.node(n.Body)
	return l
}

func (n *ParenthesizedLambdaExpression) Children() []Child {
	var l childList
	if n.ParameterList != nil {
		l.node(n.ParameterList)
	}
	l.tok(n.Arrow)
	l.node(n.Body)
	return l
}

func (n *Parameter) Children() []Child {
	var l childList
	l.node(n.Type)
	l.tok(n.Ident)
	return l
}

func (n *ParameterList) Children() []Child {
	var l childList
	l.tok(n.OpenParen)
	separated(&l, n.Parameters, n.Commas)
	l.tok(n.CloseParen)
	return l
}

// DeclarationExpression is T designation, as in out var x or var (a, b).
type DeclarationExpression struct {
	parentLink
	Type        TypeSyntax
	Designation VariableDesignation
}

func (*DeclarationExpression) Kind() Kind { return KindDeclarationExpression }

func (n *DeclarationExpression) Children() []Child {
	var l childList
	l.node(n.Type)
	l.node(n.Designation)
	return l
}

// VariableDesignation names the variables a declaration introduces.
type VariableDesignation interface {
	Node
	variableDesignation()
}

// SingleVariableDesignation introduces one variable.
type SingleVariableDesignation struct {
	parentLink
	Ident Token
}

// ParenthesizedVariableDesignation is (a, b) in a deconstruction.
type ParenthesizedVariableDesignation struct {
	parentLink
	OpenParen  Token
	Variables  []VariableDesignation
	Commas     []Token
	CloseParen Token
}

// DiscardDesignation is _.
type DiscardDesignation struct {
	parentLink
	Underscore Token
}

func (*SingleVariableDesignation) Kind() Kind        { return KindSingleVariableDesignation }
func (*ParenthesizedVariableDesignation) Kind() Kind { return KindParenthesizedVariableDesignation }
func (*DiscardDesignation) Kind() Kind               { return KindDiscardDesignation }

func (*SingleVariableDesignation) variableDesignation()        {}
func (*ParenthesizedVariableDesignation) variableDesignation() {}
func (*DiscardDesignation) variableDesignation()               {}

func (n *SingleVariableDesignation) Children() []Child { return []Child{{Token: n.Ident}} }
func (n *DiscardDesignation) Children() []Child        { return []Child{{Token: n.Underscore}} }

func (n *ParenthesizedVariableDesignation) Children() []Child {
	var l childList
	l.tok(n.OpenParen)
	separated(&l, n.Variables, n.Commas)
	l.tok(n.CloseParen)
	return l
}

func (*LiteralExpression) expression()                         {}
func (*InterpolatedStringExpression) expression()              {}
func (*ThisExpression) expression()                            {}
func (*BaseExpression) expression()                            {}
func (*ParenthesizedExpression) expression()                   {}
func (*TupleExpression) expression()                           {}
func (*MemberAccessExpression) expression()                    {}
func (*ConditionalAccessExpression) expression()               {}
func (*MemberBindingExpression) expression()                   {}
func (*ElementBindingExpression) expression()                  {}
func (*InvocationExpression) expression()                      {}
func (*ElementAccessExpression) expression()                   {}
func (*PostfixUnaryExpression) expression()                    {}
func (*PrefixUnaryExpression) expression()                     {}
func (*ObjectCreationExpression) expression()                  {}
func (*ArrayCreationExpression) expression()                   {}
func (*ImplicitArrayCreationExpression) expression()           {}
func (*AnonymousObjectCreationExpression) expression()         {}
func (*StackAllocArrayCreationExpression) expression()         {}
func (*ImplicitStackAllocArrayCreationExpression) expression() {}
func (*InitializerExpression) expression()                     {}
func (*TypeKeywordExpression) expression()                     {}
func (*CheckedExpression) expression()                         {}
func (*CastExpression) expression()                            {}
func (*AwaitExpression) expression()                           {}
func (*RangeExpression) expression()                           {}
func (*BinaryExpression) expression()                          {}
func (*IsPatternExpression) expression()                       {}
func (*SwitchExpression) expression()                          {}
func (*ConditionalExpression) expression()                     {}
func (*RefExpression) expression()                             {}
func (*ThrowExpression) expression()                           {}
func (*AssignmentExpression) expression()                      {}
func (*SimpleLambdaExpression) expression()                    {}
func (*ParenthesizedLambdaExpression) expression()             {}
func (*DeclarationExpression) expression()                     {}
func (*QueryExpression) expression()                           {}
