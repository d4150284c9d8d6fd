package syntax

// ParenthesizedPattern is ( pattern ).
type ParenthesizedPattern struct {
	parentLink
	OpenParen  Token
	Pattern    Pattern
	CloseParen Token
}

// ConstantPattern wraps an expression compared for equality.
type ConstantPattern struct {
	parentLink
	Expression Expression
}

// DiscardPattern is _.
type DiscardPattern struct {
	parentLink
	Underscore Token
}

// DeclarationPattern is T name.
type DeclarationPattern struct {
	parentLink
	Type        TypeSyntax
	Designation VariableDesignation
}

// VarPattern is var designation.
type VarPattern struct {
	parentLink
	VarKeyword  Token
	Designation VariableDesignation
}

// TypePattern is a bare type.
type TypePattern struct {
	parentLink
	Type TypeSyntax
}

// RecursivePattern is [T] [(positional)] [{ properties }] [name].
type RecursivePattern struct {
	parentLink
	Type        TypeSyntax
	Positional  *PositionalPatternClause
	Property    *PropertyPatternClause
	Designation VariableDesignation
}

// PositionalPatternClause is (subpatterns).
type PositionalPatternClause struct {
	parentLink
	OpenParen   Token
	Subpatterns []*Subpattern
	Commas      []Token
	CloseParen  Token
}

// PropertyPatternClause is { subpatterns }.
type PropertyPatternClause struct {
	parentLink
	OpenBrace   Token
	Subpatterns []*Subpattern
	Commas      []Token
	CloseBrace  Token
}

// Subpattern is [name:] pattern.
type Subpattern struct {
	parentLink
	NameColon *NameColon
	Pattern   Pattern
}

// UnaryPattern is not pattern.
type UnaryPattern struct {
	parentLink
	OperatorToken Token
	Pattern       Pattern
}

// RelationalPattern is op constant, for <, <=, > and >=.
type RelationalPattern struct {
	parentLink
	OperatorToken Token
	Expression    Expression
}

// BinaryPattern is left and right or left or right. The combinator is an
// identifier token spelled and or or.
type BinaryPattern struct {
	parentLink
	Left          Pattern
	OperatorToken Token
	Right         Pattern
}

func (*ParenthesizedPattern) Kind() Kind    { return KindParenthesizedPattern }
func (*ConstantPattern) Kind() Kind         { return KindConstantPattern }
func (*DiscardPattern) Kind() Kind          { return KindDiscardPattern }
func (*DeclarationPattern) Kind() Kind      { return KindDeclarationPattern }
func (*VarPattern) Kind() Kind              { return KindVarPattern }
func (*TypePattern) Kind() Kind             { return KindTypePattern }
func (*RecursivePattern) Kind() Kind        { return KindRecursivePattern }
func (*PositionalPatternClause) Kind() Kind { return KindPositionalPatternClause }
func (*PropertyPatternClause) Kind() Kind   { return KindPropertyPatternClause }
func (*Subpattern) Kind() Kind              { return KindSubpattern }
func (*UnaryPattern) Kind() Kind            { return KindNotPattern }
func (*RelationalPattern) Kind() Kind       { return KindRelationalPattern }

func (n *BinaryPattern) Kind() Kind {
	if n.OperatorToken.Text == "or" {
		return KindOrPattern
	}
	return KindAndPattern
}

func (n *ParenthesizedPattern) Children() []Child {
	var l childList
	l.tok(n.OpenParen)
	l.node(n.Pattern)
	l.tok(n.CloseParen)
	return l
}

func (n *ConstantPattern) Children() []Child {
	var l childList
	l.node(n.Expression)
	return l
}

func (n *DiscardPattern) Children() []Child { return []Child{{Token: n.Underscore}} }

func (n *DeclarationPattern) Children() []Child {
	var l childList
	l.node(n.Type)
	l.node(n.Designation)
	return l
}

func (n *VarPattern) Children() []Child {
	var l childList
	l.tok(n.VarKeyword)
	l.node(n.Designation)
	return l
}

func (n *TypePattern) Children() []Child {
	var l childList
	l.node(n.Type)
	return l
}

func (n *RecursivePattern) Children() []Child {
	var l childList
	l.node(n.Type)
	if n.Positional != nil {
		l.node(n.Positional)
	}
	if n.Property != nil {
		l.node(n.Property)
	}
	l.node(n.Designation)
	return l
}

func (n *PositionalPatternClause) Children() []Child {
	var l childList
	l.tok(n.OpenParen)
	separated(&l, n.Subpatterns, n.Commas)
	l.tok(n.CloseParen)
	return l
}

func (n *PropertyPatternClause) Children() []Child {
	var l childList
	l.tok(n.OpenBrace)
	separated(&l, n.Subpatterns, n.Commas)
	l.tok(n.CloseBrace)
	return l
}

func (n *Subpattern) Children() []Child {
	var l childList
	if n.NameColon != nil {
		l.node(n.NameColon)
	}
	l.node(n.Pattern)
	return l
}

func (n *UnaryPattern) Children() []Child {
	var l childList
	l.tok(n.OperatorToken)
	l.node(n.Pattern)
	return l
}

func (n *RelationalPattern) Children() []Child {
	var l childList
	l.tok(n.OperatorToken)
	l.node(n.Expression)
	return l
}

func (n *BinaryPattern) Children() []Child {
	var l childList
	l.node(n.Left)
	l.tok(n.OperatorToken)
	l.node(n.Right)
	return l
}

func (*ParenthesizedPattern) pattern() {}
func (*ConstantPattern) pattern()      {}
func (*DiscardPattern) pattern()       {}
func (*DeclarationPattern) pattern()   {}
func (*VarPattern) pattern()           {}
func (*TypePattern) pattern()          {}
func (*RecursivePattern) pattern()     {}
func (*UnaryPattern) pattern()         {}
func (*RelationalPattern) pattern()    {}
func (*BinaryPattern) pattern()        {}
