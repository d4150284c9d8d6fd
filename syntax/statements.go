package syntax

// Block is { statements }.
type Block struct {
	parentLink
	OpenBrace  Token
	Statements []Statement
	CloseBrace Token
}

// EmptyStatement is a lone semicolon.
type EmptyStatement struct {
	parentLink
	Semicolon Token
}

// ExpressionStatement is expression;.
type ExpressionStatement struct {
	parentLink
	Expression Expression
	Semicolon  Token
}

// LocalDeclarationStatement is T a = x;.
type LocalDeclarationStatement struct {
	parentLink
	Declaration *VariableDeclaration
	Semicolon   Token
}

// LocalFunctionStatement is T Name(params) block, or T Name(params) => e;.
type LocalFunctionStatement struct {
	parentLink
	ReturnType     TypeSyntax
	Ident          Token
	ParameterList  *ParameterList
	Body           *Block
	ExpressionBody *ArrowExpressionClause
	Semicolon      Token
}

// IfStatement is if (cond) stmt [else stmt].
type IfStatement struct {
	parentLink
	IfKeyword  Token
	OpenParen  Token
	Condition  Expression
	CloseParen Token
	Statement  Statement
	Else       *ElseClause
}

// WhileStatement is while (cond) stmt.
type WhileStatement struct {
	parentLink
	WhileKeyword Token
	OpenParen    Token
	Condition    Expression
	CloseParen   Token
	Statement    Statement
}

// DoStatement is do stmt while (cond);.
type DoStatement struct {
	parentLink
	DoKeyword    Token
	Statement    Statement
	WhileKeyword Token
	OpenParen    Token
	Condition    Expression
	CloseParen   Token
	Semicolon    Token
}

// ForStatement is for (init; cond; incr) stmt.
type ForStatement struct {
	parentLink
	ForKeyword       Token
	OpenParen        Token
	Declaration      *VariableDeclaration
	Initializers     []Expression
	InitializerComma []Token
	FirstSemicolon   Token
	Condition        Expression
	SecondSemicolon  Token
	Incrementors     []Expression
	IncrementorComma []Token
	CloseParen       Token
	Statement        Statement
}

// ForEachStatement is foreach (T x in source) stmt.
type ForEachStatement struct {
	parentLink
	ForEachKeyword Token
	OpenParen      Token
	Type           TypeSyntax
	Ident          Token
	InKeyword      Token
	Expression     Expression
	CloseParen     Token
	Statement      Statement
}

// LockStatement is lock (expr) stmt.
type LockStatement struct {
	parentLink
	LockKeyword Token
	OpenParen   Token
	Expression  Expression
	CloseParen  Token
	Statement   Statement
}

// UsingStatement is using (decl or expr) stmt.
type UsingStatement struct {
	parentLink
	UsingKeyword Token
	OpenParen    Token
	Declaration  *VariableDeclaration
	Expression   Expression
	CloseParen   Token
	Statement    Statement
}

// SwitchStatement is switch (expr) { sections }.
type SwitchStatement struct {
	parentLink
	SwitchKeyword Token
	OpenParen     Token
	Expression    Expression
	CloseParen    Token
	OpenBrace     Token
	Sections      []*SwitchSection
	CloseBrace    Token
}

// ReturnStatement is return [expr];.
type ReturnStatement struct {
	parentLink
	ReturnKeyword Token
	Expression    Expression
	Semicolon     Token
}

// YieldStatement is yield return expr; or yield break;.
type YieldStatement struct {
	parentLink
	YieldKeyword         Token
	ReturnOrBreakKeyword Token
	Expression           Expression
	Semicolon            Token
}

// ThrowStatement is throw [expr];.
type ThrowStatement struct {
	parentLink
	ThrowKeyword Token
	Expression   Expression
	Semicolon    Token
}

// TryStatement is try block catches [finally].
type TryStatement struct {
	parentLink
	TryKeyword Token
	Block      *Block
	Catches    []*CatchClause
	Finally    *FinallyClause
}

// JumpStatement is break; or continue;.
type JumpStatement struct {
	parentLink
	Keyword   Token
	Semicolon Token
}

// CheckedStatement is checked block or unchecked block.
type CheckedStatement struct {
	parentLink
	Keyword Token
	Block   *Block
}

func (*Block) Kind() Kind                     { return KindBlock }
func (*EmptyStatement) Kind() Kind            { return KindEmptyStatement }
func (*ExpressionStatement) Kind() Kind       { return KindExpressionStatement }
func (*LocalDeclarationStatement) Kind() Kind { return KindLocalDeclarationStatement }
func (*LocalFunctionStatement) Kind() Kind    { return KindLocalFunctionStatement }
func (*IfStatement) Kind() Kind               { return KindIfStatement }
func (*WhileStatement) Kind() Kind            { return KindWhileStatement }
func (*DoStatement) Kind() Kind               { return KindDoStatement }
func (*ForStatement) Kind() Kind              { return KindForStatement }
func (*ForEachStatement) Kind() Kind          { return KindForEachStatement }
func (*LockStatement) Kind() Kind             { return KindLockStatement }
func (*UsingStatement) Kind() Kind            { return KindUsingStatement }
func (*SwitchStatement) Kind() Kind           { return KindSwitchStatement }
func (*ReturnStatement) Kind() Kind           { return KindReturnStatement }
func (*ThrowStatement) Kind() Kind            { return KindThrowStatement }
func (*TryStatement) Kind() Kind              { return KindTryStatement }

func (n *YieldStatement) Kind() Kind {
	if n.ReturnOrBreakKeyword.Kind == TokKwBreak {
		return KindYieldBreakStatement
	}
	return KindYieldReturnStatement
}

func (n *JumpStatement) Kind() Kind {
	if n.Keyword.Kind == TokKwContinue {
		return KindContinueStatement
	}
	return KindBreakStatement
}

func (n *CheckedStatement) Kind() Kind {
	if n.Keyword.Kind == TokKwUnchecked {
		return KindUncheckedStatement
	}
	return KindCheckedStatement
}

func (n *Block) Children() []Child {
	var l childList
	l.tok(n.OpenBrace)
	for _, s := range n.Statements {
		l.node(s)
	}
	l.tok(n.CloseBrace)
	return l
}

func (n *EmptyStatement) Children() []Child { return []Child{{Token: n.Semicolon}} }

func (n *ExpressionStatement) Children() []Child {
	var l childList
	l.node(n.Expression)
	l.tok(n.Semicolon)
	return l
}

func (n *LocalDeclarationStatement) Children() []Child {
	var l childList
	if n.Declaration != nil {
		l.node(n.Declaration)
	}
	l.tok(n.Semicolon)
	return l
}

func (n *LocalFunctionStatement) Children() []Child {
	var l childList
	l.node(n.ReturnType)
	l.tok(n.Ident)
	if n.ParameterList != nil {
		l.node(n.ParameterList)
	}
	if n.Body != nil {
		l.node(n.Body)
	}
	if n.ExpressionBody != nil {
		l.node(n.ExpressionBody)
	}
	l.tok(n.Semicolon)
	return l
}

func (n *IfStatement) Children() []Child {
	var l childList
	l.tok(n.IfKeyword)
	l.tok(n.OpenParen)
	l.node(n.Condition)
	l.tok(n.CloseParen)
	l.node(n.Statement)
	if n.Else != nil {
		l.node(n.Else)
	}
	return l
}

func (n *WhileStatement) Children() []Child {
	var l childList
	l.tok(n.WhileKeyword)
	l.tok(n.OpenParen)
	l.node(n.Condition)
	l.tok(n.CloseParen)
	l.node(n.Statement)
	return l
}

func (n *DoStatement) Children() []Child {
	var l childList
	l.tok(n.DoKeyword)
	l.node(n.Statement)
	l.tok(n.WhileKeyword)
	l.tok(n.OpenParen)
	l.node(n.Condition)
	l.tok(n.CloseParen)
	l.tok(n.Semicolon)
	return l
}

func (n *ForStatement) Children() []Child {
	var l childList
	l.tok(n.ForKeyword)
	l.tok(n.OpenParen)
	if n.Declaration != nil {
		l.node(n.Declaration)
	}
	separated(&l, n.Initializers, n.InitializerComma)
	l.tok(n.FirstSemicolon)
	l.node(n.Condition)
	l.tok(n.SecondSemicolon)
	separated(&l, n.Incrementors, n.IncrementorComma)
	l.tok(n.CloseParen)
	l.node(n.Statement)
	return l
}

func (n *ForEachStatement) Children() []Child {
	var l childList
	l.tok(n.ForEachKeyword)
	l.tok(n.OpenParen)
	l.node(n.Type)
	l.tok(n.Ident)
	l.tok(n.InKeyword)
	l.node(n.Expression)
	l.tok(n.CloseParen)
	l.node(n.Statement)
	return l
}

func (n *LockStatement) Children() []Child {
	var l childList
	l.tok(n.LockKeyword)
	l.tok(n.OpenParen)
	l.node(n.Expression)
	l.tok(n.CloseParen)
	l.node(n.Statement)
	return l
}

func (n *UsingStatement) Children() []Child {
	var l childList
	l.tok(n.UsingKeyword)
	l.tok(n.OpenParen)
	if n.Declaration != nil {
		l.node(n.Declaration)
	}
	l.node(n.Expression)
	l.tok(n.CloseParen)
	l.node(n.Statement)
	return l
}

func (n *SwitchStatement) Children() []Child {
	var l childList
	l.tok(n.SwitchKeyword)
	l.tok(n.OpenParen)
	l.node(n.Expression)
	l.tok(n.CloseParen)
	l.tok(n.OpenBrace)
	for _, s := range n.Sections {
		l.node(s)
	}
	l.tok(n.CloseBrace)
	return l
}

func (n *ReturnStatement) Children() []Child {
	var l childList
	l.tok(n.ReturnKeyword)
	l.node(n.Expression)
	l.tok(n.Semicolon)
	return l
}

func (n *YieldStatement) Children() []Child {
	var l childList
	l.tok(n.YieldKeyword)
	l.tok(n.ReturnOrBreakKeyword)
	l.node(n.Expression)
	l.tok(n.Semicolon)
	return l
}

func (n *ThrowStatement) Children() []Child {
	var l childList
	l.tok(n.ThrowKeyword)
	l.node(n.Expression)
	l.tok(n.Semicolon)
	return l
}

func (n *TryStatement) Children() []Child {
	var l childList
	l.tok(n.TryKeyword)
	if n.Block != nil {
		l.node(n.Block)
	}
	for _, c := range n.Catches {
		l.node(c)
	}
	if n.Finally != nil {
		l.node(n.Finally)
	}
	return l
}

func (n *JumpStatement) Children() []Child {
	var l childList
	l.tok(n.Keyword)
	l.tok(n.Semicolon)
	return l
}

func (n *CheckedStatement) Children() []Child {
	var l childList
	l.tok(n.Keyword)
	if n.Block != nil {
		l.node(n.Block)
	}
	return l
}

func (*Block) statement()                     {}
func (*EmptyStatement) statement()            {}
func (*ExpressionStatement) statement()       {}
func (*LocalDeclarationStatement) statement() {}
func (*LocalFunctionStatement) statement()    {}
func (*IfStatement) statement()               {}
func (*WhileStatement) statement()            {}
func (*DoStatement) statement()               {}
func (*ForStatement) statement()              {}
func (*ForEachStatement) statement()          {}
func (*LockStatement) statement()             {}
func (*UsingStatement) statement()            {}
func (*SwitchStatement) statement()           {}
func (*ReturnStatement) statement()           {}
func (*YieldStatement) statement()            {}
func (*ThrowStatement) statement()            {}
func (*TryStatement) statement()              {}
func (*JumpStatement) statement()             {}
func (*CheckedStatement) statement()          {}

// DirectiveTrivia is a #if or #elif preprocessor line. The directive name
// is an identifier token.
type DirectiveTrivia struct {
	parentLink
	Hash      Token
	Keyword   Token
	Condition Expression
}

func (n *DirectiveTrivia) Kind() Kind {
	if n.Keyword.Text == "elif" {
		return KindElifDirectiveTrivia
	}
	return KindIfDirectiveTrivia
}

func (n *DirectiveTrivia) Children() []Child {
	var l childList
	l.tok(n.Hash)
	l.tok(n.Keyword)
	l.node(n.Condition)
	return l
}

// CompilationUnit is the root of a parsed source file. Directives are held
// apart from the statement list and are not part of Children.
type CompilationUnit struct {
	parentLink
	Statements []Statement
	Directives []*DirectiveTrivia
	EndOfFile  Token
}

func (*CompilationUnit) Kind() Kind { return KindCompilationUnit }

func (n *CompilationUnit) Children() []Child {
	var l childList
	for _, s := range n.Statements {
		l.node(s)
	}
	l.tok(n.EndOfFile)
	return l
}
