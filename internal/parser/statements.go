package parser

import (
	"fmt"
	"log/slog"

	"github.com/csfmt/unparen/syntax"
)

// parseStatement parses one statement. It returns nil only when the current
// token cannot begin a statement, in which case a diagnostic is recorded and
// nothing is consumed.
func (p *Parser) parseStatement() syntax.Statement {
	tok := p.peek()
	p.Trace("statement", slog.String("token", tok.String()))

	switch tok.Kind {
	case syntax.TokOpenBrace:
		return p.parseBlock()
	case syntax.TokSemicolon:
		return &syntax.EmptyStatement{Semicolon: p.advance()}
	case syntax.TokKwIf:
		return p.parseIf()
	case syntax.TokKwWhile:
		return &syntax.WhileStatement{
			WhileKeyword: p.advance(),
			OpenParen:    p.expect(syntax.TokOpenParen),
			Condition:    p.parseExpression(),
			CloseParen:   p.expect(syntax.TokCloseParen),
			Statement:    p.parseEmbeddedStatement(),
		}
	case syntax.TokKwDo:
		return &syntax.DoStatement{
			DoKeyword:    p.advance(),
			Statement:    p.parseEmbeddedStatement(),
			WhileKeyword: p.expect(syntax.TokKwWhile),
			OpenParen:    p.expect(syntax.TokOpenParen),
			Condition:    p.parseExpression(),
			CloseParen:   p.expect(syntax.TokCloseParen),
			Semicolon:    p.expect(syntax.TokSemicolon),
		}
	case syntax.TokKwFor:
		return p.parseFor()
	case syntax.TokKwForeach:
		return p.parseForEach()
	case syntax.TokKwLock:
		return &syntax.LockStatement{
			LockKeyword: p.advance(),
			OpenParen:   p.expect(syntax.TokOpenParen),
			Expression:  p.parseExpression(),
			CloseParen:  p.expect(syntax.TokCloseParen),
			Statement:   p.parseEmbeddedStatement(),
		}
	case syntax.TokKwUsing:
		return p.parseUsing()
	case syntax.TokKwSwitch:
		return p.parseSwitchStatement()
	case syntax.TokKwReturn:
		ret := &syntax.ReturnStatement{ReturnKeyword: p.advance()}
		if !p.check(syntax.TokSemicolon) {
			ret.Expression = p.parseExpression()
		}
		ret.Semicolon = p.expect(syntax.TokSemicolon)
		return ret
	case syntax.TokKwThrow:
		th := &syntax.ThrowStatement{ThrowKeyword: p.advance()}
		if !p.check(syntax.TokSemicolon) {
			th.Expression = p.parseExpression()
		}
		th.Semicolon = p.expect(syntax.TokSemicolon)
		return th
	case syntax.TokKwTry:
		return p.parseTry()
	case syntax.TokKwBreak, syntax.TokKwContinue:
		return &syntax.JumpStatement{
			Keyword:   p.advance(),
			Semicolon: p.expect(syntax.TokSemicolon),
		}
	case syntax.TokKwChecked, syntax.TokKwUnchecked:
		if p.peekNth(1).Kind == syntax.TokOpenBrace {
			return &syntax.CheckedStatement{Keyword: p.advance(), Block: p.parseBlock()}
		}
	case syntax.TokCloseBrace, syntax.TokEOF:
		return nil
	case syntax.TokIdentifier:
		if tok.Text == "yield" {
			if k := p.peekNth(1).Kind; k == syntax.TokKwReturn || k == syntax.TokKwBreak {
				return p.parseYield()
			}
		}
	}

	if stmt := p.tryParseLocalDeclaration(); stmt != nil {
		return stmt
	}
	return p.parseExpressionStatement()
}

// parseEmbeddedStatement parses the body of an if, loop, lock or using.
// A missing statement is replaced by an empty statement.
func (p *Parser) parseEmbeddedStatement() syntax.Statement {
	if stmt := p.parseStatement(); stmt != nil {
		return stmt
	}
	p.recordParseError(p.makeError("expected statement, found " + p.describe(p.peek())))
	return &syntax.EmptyStatement{Semicolon: syntax.Token{
		Kind:    syntax.TokSemicolon,
		Span:    p.missingSpan(),
		Missing: true,
	}}
}

func (p *Parser) parseBlock() *syntax.Block {
	b := &syntax.Block{OpenBrace: p.expect(syntax.TokOpenBrace)}
	b.Statements = p.parseStatementList(func() bool { return p.check(syntax.TokCloseBrace) })
	b.CloseBrace = p.expect(syntax.TokCloseBrace)
	return b
}

// parseStatementList parses statements until done reports true or the
// input ends. Tokens that cannot start a statement are skipped.
func (p *Parser) parseStatementList(done func() bool) []syntax.Statement {
	var stmts []syntax.Statement
	for !done() && !p.isEOF() {
		start := p.pos
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.pos == start {
			p.recordParseError(p.makeError(fmt.Sprintf("unexpected %s", p.peek().Kind)))
			p.advance()
		}
	}
	return stmts
}

func (p *Parser) parseExpressionStatement() syntax.Statement {
	start := p.pos
	stmt := &syntax.ExpressionStatement{Expression: p.parseExpression()}
	if p.pos == start {
		p.recoverToStatement()
	}
	stmt.Semicolon = p.expect(syntax.TokSemicolon)
	return stmt
}

func (p *Parser) parseIf() syntax.Statement {
	stmt := &syntax.IfStatement{
		IfKeyword:  p.advance(),
		OpenParen:  p.expect(syntax.TokOpenParen),
		Condition:  p.parseExpression(),
		CloseParen: p.expect(syntax.TokCloseParen),
		Statement:  p.parseEmbeddedStatement(),
	}
	if p.check(syntax.TokKwElse) {
		stmt.Else = &syntax.ElseClause{
			ElseKeyword: p.advance(),
			Statement:   p.parseEmbeddedStatement(),
		}
	}
	return stmt
}

func (p *Parser) parseFor() syntax.Statement {
	stmt := &syntax.ForStatement{
		ForKeyword: p.advance(),
		OpenParen:  p.expect(syntax.TokOpenParen),
	}
	if !p.check(syntax.TokSemicolon) {
		if decl := p.tryParseVariableDeclaration(); decl != nil {
			stmt.Declaration = decl
		} else {
			stmt.Initializers, stmt.InitializerComma = p.parseExpressionList()
		}
	}
	stmt.FirstSemicolon = p.expect(syntax.TokSemicolon)
	if !p.check(syntax.TokSemicolon) {
		stmt.Condition = p.parseExpression()
	}
	stmt.SecondSemicolon = p.expect(syntax.TokSemicolon)
	if !p.check(syntax.TokCloseParen) {
		stmt.Incrementors, stmt.IncrementorComma = p.parseExpressionList()
	}
	stmt.CloseParen = p.expect(syntax.TokCloseParen)
	stmt.Statement = p.parseEmbeddedStatement()
	return stmt
}

func (p *Parser) parseExpressionList() ([]syntax.Expression, []syntax.Token) {
	var exprs []syntax.Expression
	var commas []syntax.Token
	for {
		exprs = append(exprs, p.parseExpression())
		if !p.check(syntax.TokComma) {
			return exprs, commas
		}
		commas = append(commas, p.advance())
	}
}

func (p *Parser) parseForEach() syntax.Statement {
	return &syntax.ForEachStatement{
		ForEachKeyword: p.advance(),
		OpenParen:      p.expect(syntax.TokOpenParen),
		Type:           p.parseType(typeNormal),
		Ident:          p.expectIdentifier(),
		InKeyword:      p.expect(syntax.TokKwIn),
		Expression:     p.parseExpression(),
		CloseParen:     p.expect(syntax.TokCloseParen),
		Statement:      p.parseEmbeddedStatement(),
	}
}

func (p *Parser) parseUsing() syntax.Statement {
	stmt := &syntax.UsingStatement{
		UsingKeyword: p.advance(),
		OpenParen:    p.expect(syntax.TokOpenParen),
	}
	if decl := p.tryParseVariableDeclaration(); decl != nil {
		stmt.Declaration = decl
	} else {
		stmt.Expression = p.parseExpression()
	}
	stmt.CloseParen = p.expect(syntax.TokCloseParen)
	stmt.Statement = p.parseEmbeddedStatement()
	return stmt
}

func (p *Parser) parseSwitchStatement() syntax.Statement {
	stmt := &syntax.SwitchStatement{
		SwitchKeyword: p.advance(),
		OpenParen:     p.expect(syntax.TokOpenParen),
		Expression:    p.parseExpression(),
		CloseParen:    p.expect(syntax.TokCloseParen),
		OpenBrace:     p.expect(syntax.TokOpenBrace),
	}
	for p.check(syntax.TokKwCase) || p.check(syntax.TokKwDefault) {
		section := &syntax.SwitchSection{}
		for p.check(syntax.TokKwCase) || p.check(syntax.TokKwDefault) && p.peekNth(1).Kind == syntax.TokColon {
			section.Labels = append(section.Labels, p.parseSwitchLabel())
		}
		if len(section.Labels) == 0 {
			break
		}
		section.Statements = p.parseStatementList(func() bool {
			return p.check(syntax.TokCloseBrace) || p.check(syntax.TokKwCase) ||
				p.check(syntax.TokKwDefault) && p.peekNth(1).Kind == syntax.TokColon
		})
		stmt.Sections = append(stmt.Sections, section)
	}
	stmt.CloseBrace = p.expect(syntax.TokCloseBrace)
	return stmt
}

// parseSwitchLabel parses a case or default label. A case whose pattern is
// a constant and has no when clause is a constant label.
func (p *Parser) parseSwitchLabel() syntax.SwitchLabel {
	if p.check(syntax.TokKwDefault) {
		return &syntax.DefaultSwitchLabel{
			DefaultKeyword: p.advance(),
			Colon:          p.expect(syntax.TokColon),
		}
	}
	caseKw := p.advance()
	pat := p.parsePattern()
	if p.checkContextual("when") {
		return &syntax.CasePatternSwitchLabel{
			CaseKeyword: caseKw,
			Pattern:     pat,
			WhenClause: &syntax.WhenClause{
				WhenKeyword: p.advance(),
				Condition:   p.parseExpression(),
			},
			Colon: p.expect(syntax.TokColon),
		}
	}
	if cp, ok := pat.(*syntax.ConstantPattern); ok {
		return &syntax.CaseSwitchLabel{
			CaseKeyword: caseKw,
			Value:       cp.Expression,
			Colon:       p.expect(syntax.TokColon),
		}
	}
	return &syntax.CasePatternSwitchLabel{
		CaseKeyword: caseKw,
		Pattern:     pat,
		Colon:       p.expect(syntax.TokColon),
	}
}

func (p *Parser) parseYield() syntax.Statement {
	stmt := &syntax.YieldStatement{
		YieldKeyword:         p.advance(),
		ReturnOrBreakKeyword: p.advance(),
	}
	if stmt.ReturnOrBreakKeyword.Kind == syntax.TokKwReturn {
		stmt.Expression = p.parseExpression()
	}
	stmt.Semicolon = p.expect(syntax.TokSemicolon)
	return stmt
}

func (p *Parser) parseTry() syntax.Statement {
	stmt := &syntax.TryStatement{
		TryKeyword: p.advance(),
		Block:      p.parseBlock(),
	}
	for p.check(syntax.TokKwCatch) {
		c := &syntax.CatchClause{CatchKeyword: p.advance()}
		if p.check(syntax.TokOpenParen) {
			decl := &syntax.CatchDeclaration{
				OpenParen: p.advance(),
				Type:      p.parseType(typeNormal),
			}
			if p.check(syntax.TokIdentifier) {
				decl.Ident = p.advance()
			}
			decl.CloseParen = p.expect(syntax.TokCloseParen)
			c.Declaration = decl
		}
		if p.checkContextual("when") {
			c.Filter = &syntax.CatchFilterClause{
				WhenKeyword:      p.advance(),
				OpenParen:        p.expect(syntax.TokOpenParen),
				FilterExpression: p.parseExpression(),
				CloseParen:       p.expect(syntax.TokCloseParen),
			}
		}
		c.Block = p.parseBlock()
		stmt.Catches = append(stmt.Catches, c)
	}
	if p.check(syntax.TokKwFinally) {
		stmt.Finally = &syntax.FinallyClause{
			FinallyKeyword: p.advance(),
			Block:          p.parseBlock(),
		}
	}
	if len(stmt.Catches) == 0 && stmt.Finally == nil {
		p.recordParseError(p.makeError("expected catch or finally"))
	}
	return stmt
}

// tryParseLocalDeclaration recognizes a local variable declaration, a
// local function, or a var deconstruction at the current position.
func (p *Parser) tryParseLocalDeclaration() syntax.Statement {
	if p.checkContextual("var") && p.peekNth(1).Kind == syntax.TokOpenParen {
		s := p.mark()
		if decl := p.tryParseDeclarationExpression(); decl != nil && p.check(syntax.TokEquals) {
			assign := &syntax.AssignmentExpression{
				Left:          decl,
				OperatorToken: p.advance(),
				Right:         p.parseExpression(),
			}
			return &syntax.ExpressionStatement{
				Expression: assign,
				Semicolon:  p.expect(syntax.TokSemicolon),
			}
		}
		p.reset(s)
		return nil
	}

	s := p.mark()
	typ, ok := p.tryParseType(typeNormal)
	if !ok || !p.check(syntax.TokIdentifier) {
		p.reset(s)
		return nil
	}
	if name, ok := typ.(*syntax.IdentifierName); ok && name.Ident.Text == "await" {
		p.reset(s)
		return nil
	}
	switch p.peekNth(1).Kind {
	case syntax.TokOpenParen:
		return p.parseLocalFunction(typ)
	case syntax.TokEquals, syntax.TokSemicolon, syntax.TokComma:
		decl := p.parseDeclarators(typ)
		return &syntax.LocalDeclarationStatement{
			Declaration: decl,
			Semicolon:   p.expect(syntax.TokSemicolon),
		}
	}
	p.reset(s)
	return nil
}

// tryParseVariableDeclaration parses 'T a = x, ...' in a for or using
// header when the tokens form one.
func (p *Parser) tryParseVariableDeclaration() *syntax.VariableDeclaration {
	s := p.mark()
	typ, ok := p.tryParseType(typeNormal)
	if !ok || !p.check(syntax.TokIdentifier) {
		p.reset(s)
		return nil
	}
	switch p.peekNth(1).Kind {
	case syntax.TokEquals, syntax.TokSemicolon, syntax.TokComma, syntax.TokCloseParen:
		return p.parseDeclarators(typ)
	}
	p.reset(s)
	return nil
}

func (p *Parser) parseDeclarators(typ syntax.TypeSyntax) *syntax.VariableDeclaration {
	decl := &syntax.VariableDeclaration{Type: typ}
	for {
		v := &syntax.VariableDeclarator{Ident: p.expectIdentifier()}
		if p.check(syntax.TokEquals) {
			eq := p.advance()
			var value syntax.Expression
			if p.check(syntax.TokOpenBrace) {
				value = p.parseInitializer()
			} else {
				value = p.parseExpression()
			}
			v.Initializer = &syntax.EqualsValueClause{EqualsToken: eq, Value: value}
		}
		decl.Variables = append(decl.Variables, v)
		if !p.check(syntax.TokComma) {
			return decl
		}
		decl.Commas = append(decl.Commas, p.advance())
	}
}

func (p *Parser) parseLocalFunction(returnType syntax.TypeSyntax) syntax.Statement {
	fn := &syntax.LocalFunctionStatement{
		ReturnType:    returnType,
		Ident:         p.advance(),
		ParameterList: p.parseParameterList(),
	}
	if p.check(syntax.TokEqualsGreaterThan) {
		fn.ExpressionBody = &syntax.ArrowExpressionClause{
			Arrow:      p.advance(),
			Expression: p.parseExpression(),
		}
		fn.Semicolon = p.expect(syntax.TokSemicolon)
		return fn
	}
	fn.Body = p.parseBlock()
	return fn
}

// isQueryStart reports whether 'from' at the current position begins a
// query expression: from x in, or from T x in.
func (p *Parser) isQueryStart() bool {
	if p.peekNth(1).Kind == syntax.TokIdentifier && p.peekNth(2).Kind == syntax.TokKwIn {
		return true
	}
	s := p.mark()
	defer p.reset(s)
	p.advance()
	if _, ok := p.tryParseType(typeNormal); !ok {
		return false
	}
	return p.check(syntax.TokIdentifier) && p.peekNth(1).Kind == syntax.TokKwIn
}

func (p *Parser) parseQuery() syntax.Expression {
	q := &syntax.QueryExpression{FromClause: p.parseFromClause()}
	body := &syntax.QueryBody{}
	for {
		tok := p.peek()
		switch {
		case tok.IsContextual("from"):
			body.Clauses = append(body.Clauses, p.parseFromClause())
			continue
		case tok.IsContextual("let"):
			body.Clauses = append(body.Clauses, &syntax.LetClause{
				LetKeyword:  p.advance(),
				Ident:       p.expectIdentifier(),
				EqualsToken: p.expect(syntax.TokEquals),
				Expression:  p.parseExpression(),
			})
			continue
		case tok.IsContextual("where"):
			body.Clauses = append(body.Clauses, &syntax.WhereClause{
				WhereKeyword: p.advance(),
				Condition:    p.parseExpression(),
			})
			continue
		}
		break
	}
	sel := &syntax.SelectClause{}
	if p.checkContextual("select") {
		sel.SelectKeyword = p.advance()
	} else {
		p.recordParseError(p.makeError("expected select, found " + p.describe(p.peek())))
		sel.SelectKeyword = syntax.Token{Kind: syntax.TokIdentifier, Span: p.missingSpan(), Missing: true}
	}
	sel.Expression = p.parseExpression()
	body.Select = sel
	q.Body = body
	return q
}

func (p *Parser) parseFromClause() *syntax.FromClause {
	from := &syntax.FromClause{FromKeyword: p.advance()}
	if !(p.check(syntax.TokIdentifier) && p.peekNth(1).Kind == syntax.TokKwIn) {
		from.Type = p.parseType(typeNormal)
	}
	from.Ident = p.expectIdentifier()
	from.InKeyword = p.expect(syntax.TokKwIn)
	from.Expression = p.parseExpression()
	return from
}
