package syntax

// WhenClause is when condition on a case label or switch arm.
type WhenClause struct {
	parentLink
	WhenKeyword Token
	Condition   Expression
}

// ArrowExpressionClause is => expression on an expression-bodied member.
type ArrowExpressionClause struct {
	parentLink
	Arrow      Token
	Expression Expression
}

// EqualsValueClause is = value in a variable declarator.
type EqualsValueClause struct {
	parentLink
	EqualsToken Token
	Value       Expression
}

// VariableDeclarator is name [= value].
type VariableDeclarator struct {
	parentLink
	Ident       Token
	Initializer *EqualsValueClause
}

// VariableDeclaration is T a = x, b = y.
type VariableDeclaration struct {
	parentLink
	Type      TypeSyntax
	Variables []*VariableDeclarator
	Commas    []Token
}

// CatchClause is catch [(T [name])] [when (filter)] block.
type CatchClause struct {
	parentLink
	CatchKeyword Token
	Declaration  *CatchDeclaration
	Filter       *CatchFilterClause
	Block        *Block
}

// CatchDeclaration is (T [name]) after catch.
type CatchDeclaration struct {
	parentLink
	OpenParen  Token
	Type       TypeSyntax
	Ident      Token
	CloseParen Token
}

// CatchFilterClause is when (filter) after a catch declaration.
type CatchFilterClause struct {
	parentLink
	WhenKeyword      Token
	OpenParen        Token
	FilterExpression Expression
	CloseParen       Token
}

// FinallyClause is finally block.
type FinallyClause struct {
	parentLink
	FinallyKeyword Token
	Block          *Block
}

// ElseClause is else statement.
type ElseClause struct {
	parentLink
	ElseKeyword Token
	Statement   Statement
}

// SwitchSection is a group of labels followed by statements.
type SwitchSection struct {
	parentLink
	Labels     []SwitchLabel
	Statements []Statement
}

// SwitchLabel is a case or default label.
type SwitchLabel interface {
	Node
	switchLabel()
}

// CaseSwitchLabel is case constant:.
type CaseSwitchLabel struct {
	parentLink
	CaseKeyword Token
	Value       Expression
	Colon       Token
}

// CasePatternSwitchLabel is case pattern [when cond]:.
type CasePatternSwitchLabel struct {
	parentLink
	CaseKeyword Token
	Pattern     Pattern
	WhenClause  *WhenClause
	Colon       Token
}

// DefaultSwitchLabel is default:.
type DefaultSwitchLabel struct {
	parentLink
	DefaultKeyword Token
	Colon          Token
}

func (*WhenClause) Kind() Kind             { return KindWhenClause }
func (*ArrowExpressionClause) Kind() Kind  { return KindArrowExpressionClause }
func (*EqualsValueClause) Kind() Kind      { return KindEqualsValueClause }
func (*VariableDeclarator) Kind() Kind     { return KindVariableDeclarator }
func (*VariableDeclaration) Kind() Kind    { return KindVariableDeclaration }
func (*CatchClause) Kind() Kind            { return KindCatchClause }
func (*CatchDeclaration) Kind() Kind       { return KindCatchDeclaration }
func (*CatchFilterClause) Kind() Kind      { return KindCatchFilterClause }
func (*FinallyClause) Kind() Kind          { return KindFinallyClause }
func (*ElseClause) Kind() Kind             { return KindElseClause }
func (*SwitchSection) Kind() Kind          { return KindSwitchSection }
func (*CaseSwitchLabel) Kind() Kind        { return KindCaseSwitchLabel }
func (*CasePatternSwitchLabel) Kind() Kind { return KindCasePatternSwitchLabel }
func (*DefaultSwitchLabel) Kind() Kind     { return KindDefaultSwitchLabel }

func (*CaseSwitchLabel) switchLabel()        {}
func (*CasePatternSwitchLabel) switchLabel() {}
func (*DefaultSwitchLabel) switchLabel()     {}

func (n *WhenClause) Children() []Child {
	var l childList
	l.tok(n.WhenKeyword)
	l.node(n.Condition)
	return l
}

func (n *ArrowExpressionClause) Children() []Child {
	var l childList
	l.tok(n.Arrow)
	l.node(n.Expression)
	return l
}

func (n *EqualsValueClause) Children() []Child {
	var l childList
	l.tok(n.EqualsToken)
	l.node(n.Value)
	return l
}

func (n *VariableDeclarator) Children() []Child {
	var l childList
	l.tok(n.Ident)
	if n.Initializer != nil {
		l.node(n.Initializer)
	}
	return l
}

func (n *VariableDeclaration) Children() []Child {
	var l childList
	l.node(n.Type)
	separated(&l, n.Variables, n.Commas)
	return l
}

func (n *CatchClause) Children() []Child {
	var l childList
	l.tok(n.CatchKeyword)
	if n.Declaration != nil {
		l.node(n.Declaration)
	}
	if n.Filter != nil {
		l.node(n.Filter)
	}
	if n.Block != nil {
		l.node(n.Block)
	}
	return l
}

func (n *CatchDeclaration) Children() []Child {
	var l childList
	l.tok(n.OpenParen)
	l.node(n.Type)
	l.tok(n.Ident)
	l.tok(n.CloseParen)
	return l
}

func (n *CatchFilterClause) Children() []Child {
	var l childList
	l.tok(n.WhenKeyword)
	l.tok(n.OpenParen)
	l.node(n.FilterExpression)
	l.tok(n.CloseParen)
	return l
}

func (n *FinallyClause) Children() []Child {
	var l childList
	l.tok(n.FinallyKeyword)
	if n.Block != nil {
		l.node(n.Block)
	}
	return l
}

func (n *ElseClause) Children() []Child {
	var l childList
	l.tok(n.ElseKeyword)
	l.node(n.Statement)
	return l
}

func (n *SwitchSection) Children() []Child {
	var l childList
	for _, lb := range n.Labels {
		l.node(lb)
	}
	for _, s := range n.Statements {
		l.node(s)
	}
	return l
}

func (n *CaseSwitchLabel) Children() []Child {
	var l childList
	l.tok(n.CaseKeyword)
	l.node(n.Value)
	l.tok(n.Colon)
	return l
}

func (n *CasePatternSwitchLabel) Children() []Child {
	var l childList
	l.tok(n.CaseKeyword)
	l.node(n.Pattern)
	if n.WhenClause != nil {
		l.node(n.WhenClause)
	}
	l.tok(n.Colon)
	return l
}

func (n *DefaultSwitchLabel) Children() []Child {
	var l childList
	l.tok(n.DefaultKeyword)
	l.tok(n.Colon)
	return l
}

// QueryExpression is from ... select ....
type QueryExpression struct {
	parentLink
	FromClause *FromClause
	Body       *QueryBody
}

// QueryBody holds the clauses following the initial from.
type QueryBody struct {
	parentLink
	Clauses []QueryClause
	Select  *SelectClause
}

// QueryClause is a from, let or where clause inside a query body.
type QueryClause interface {
	Node
	queryClause()
}

// FromClause is from [T] x in source.
type FromClause struct {
	parentLink
	FromKeyword Token
	Type        TypeSyntax
	Ident       Token
	InKeyword   Token
	Expression  Expression
}

// LetClause is let x = value.
type LetClause struct {
	parentLink
	LetKeyword  Token
	Ident       Token
	EqualsToken Token
	Expression  Expression
}

// WhereClause is where condition.
type WhereClause struct {
	parentLink
	WhereKeyword Token
	Condition    Expression
}

// SelectClause is select expression.
type SelectClause struct {
	parentLink
	SelectKeyword Token
	Expression    Expression
}

func (*QueryExpression) Kind() Kind { return KindQueryExpression }
func (*QueryBody) Kind() Kind       { return KindQueryBody }
func (*FromClause) Kind() Kind      { return KindFromClause }
func (*LetClause) Kind() Kind       { return KindLetClause }
func (*WhereClause) Kind() Kind     { return KindWhereClause }
func (*SelectClause) Kind() Kind    { return KindSelectClause }

func (*FromClause) queryClause()  {}
func (*LetClause) queryClause()   {}
func (*WhereClause) queryClause() {}

func (n *QueryExpression) Children() []Child {
	var l childList
	if n.FromClause != nil {
		l.node(n.FromClause)
	}
	if n.Body != nil {
		l.node(n.Body)
	}
	return l
}

func (n *QueryBody) Children() []Child {
	var l childList
	for _, c := range n.Clauses {
		l.node(c)
	}
	if n.Select != nil {
		l.node(n.Select)
	}
	return l
}

func (n *FromClause) Children() []Child {
	var l childList
	l.tok(n.FromKeyword)
	l.node(n.Type)
	l.tok(n.Ident)
	l.tok(n.InKeyword)
	l.node(n.Expression)
	return l
}

func (n *LetClause) Children() []Child {
	var l childList
	l.tok(n.LetKeyword)
	l.tok(n.Ident)
	l.tok(n.EqualsToken)
	l.node(n.Expression)
	return l
}

func (n *WhereClause) Children() []Child {
	var l childList
	l.tok(n.WhereKeyword)
	l.node(n.Condition)
	return l
}

func (n *SelectClause) Children() []Child {
	var l childList
	l.tok(n.SelectKeyword)
	l.node(n.Expression)
	return l
}
