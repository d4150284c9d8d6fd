package syntax

// IdentifierName is a simple identifier used as an expression or type.
type IdentifierName struct {
	parentLink
	Ident Token
}

// GenericName is an identifier with a type argument list: List<int>.
type GenericName struct {
	parentLink
	Ident         Token
	TypeArguments *TypeArgumentList
}

// TypeArgumentList is the <...> part of a generic name.
type TypeArgumentList struct {
	parentLink
	LessThan    Token
	Arguments   []TypeSyntax
	Commas      []Token
	GreaterThan Token
}

// QualifiedName is a dotted type name: System.Text.
type QualifiedName struct {
	parentLink
	Left  Name
	Dot   Token
	Right SimpleName
}

// AliasQualifiedName is alias::Name.
type AliasQualifiedName struct {
	parentLink
	Alias      *IdentifierName
	ColonColon Token
	Name       SimpleName
}

// PredefinedType is a built-in type keyword such as int or string.
type PredefinedType struct {
	parentLink
	Keyword Token
}

// ArrayType is an element type followed by rank specifiers.
type ArrayType struct {
	parentLink
	ElementType    TypeSyntax
	RankSpecifiers []*ArrayRankSpecifier
}

// ArrayRankSpecifier is [ ] or [size, ...] after an array element type.
type ArrayRankSpecifier struct {
	parentLink
	OpenBracket  Token
	Sizes        []Expression
	Commas       []Token
	CloseBracket Token
}

// PointerType is T*.
type PointerType struct {
	parentLink
	ElementType TypeSyntax
	Asterisk    Token
}

// NullableType is T?.
type NullableType struct {
	parentLink
	ElementType TypeSyntax
	Question    Token
}

func (*IdentifierName) Kind() Kind     { return KindIdentifierName }
func (*GenericName) Kind() Kind        { return KindGenericName }
func (*TypeArgumentList) Kind() Kind   { return KindTypeArgumentList }
func (*QualifiedName) Kind() Kind      { return KindQualifiedName }
func (*AliasQualifiedName) Kind() Kind { return KindAliasQualifiedName }
func (*PredefinedType) Kind() Kind     { return KindPredefinedType }
func (*ArrayType) Kind() Kind          { return KindArrayType }
func (*ArrayRankSpecifier) Kind() Kind { return KindArrayRankSpecifier }
func (*PointerType) Kind() Kind        { return KindPointerType }
func (*NullableType) Kind() Kind       { return KindNullableType }

func (n *IdentifierName) Identifier() Token { return n.Ident }
func (n *GenericName) Identifier() Token    { return n.Ident }

func (n *IdentifierName) Children() []Child {
	return []Child{{Token: n.Ident}}
}

func (n *GenericName) Children() []Child {
	var l childList
	l.tok(n.Ident)
	if n.TypeArguments != nil {
		l.node(n.TypeArguments)
	}
	return l
}

func (n *TypeArgumentList) Children() []Child {
	var l childList
	l.tok(n.LessThan)
	separated(&l, n.Arguments, n.Commas)
	l.tok(n.GreaterThan)
	return l
}

func (n *QualifiedName) Children() []Child {
	var l childList
	l.node(n.Left)
	l.tok(n.Dot)
	l.node(n.Right)
	return l
}

func (n *AliasQualifiedName) Children() []Child {
	var l childList
	if n.Alias != nil {
		l.node(n.Alias)
	}
	l.tok(n.ColonColon)
	l.node(n.Name)
	return l
}

func (n *PredefinedType) Children() []Child {
	return []Child{{Token: n.Keyword}}
}

func (n *ArrayType) Children() []Child {
	var l childList
	l.node(n.ElementType)
	for _, r := range n.RankSpecifiers {
		l.node(r)
	}
	return l
}

func (n *ArrayRankSpecifier) Children() []Child {
	var l childList
	l.tok(n.OpenBracket)
	separated(&l, n.Sizes, n.Commas)
	l.tok(n.CloseBracket)
	return l
}

func (n *PointerType) Children() []Child {
	var l childList
	l.node(n.ElementType)
	l.tok(n.Asterisk)
	return l
}

func (n *NullableType) Children() []Child {
	var l childList
	l.node(n.ElementType)
	l.tok(n.Question)
	return l
}

func (*IdentifierName) expression()     {}
func (*GenericName) expression()        {}
func (*QualifiedName) expression()      {}
func (*AliasQualifiedName) expression() {}
func (*PredefinedType) expression()     {}
func (*ArrayType) expression()          {}
func (*PointerType) expression()        {}
func (*NullableType) expression()       {}

func (*IdentifierName) typeSyntax()     {}
func (*GenericName) typeSyntax()        {}
func (*QualifiedName) typeSyntax()      {}
func (*AliasQualifiedName) typeSyntax() {}
func (*PredefinedType) typeSyntax()     {}
func (*ArrayType) typeSyntax()          {}
func (*PointerType) typeSyntax()        {}
func (*NullableType) typeSyntax()       {}

func (*IdentifierName) name()     {}
func (*GenericName) name()        {}
func (*QualifiedName) name()      {}
func (*AliasQualifiedName) name() {}

func (*IdentifierName) simpleName() {}
func (*GenericName) simpleName()    {}
