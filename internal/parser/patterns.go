package parser

import (
	"github.com/csfmt/unparen/internal/precedence"
	"github.com/csfmt/unparen/syntax"
)

// parsePattern parses a pattern including 'or', 'and' and 'not'
// combinators.
func (p *Parser) parsePattern() syntax.Pattern {
	return p.parseDisjunctivePattern()
}

func (p *Parser) parseDisjunctivePattern() syntax.Pattern {
	left := p.parseConjunctivePattern()
	for p.checkContextual("or") && p.canStartPattern(p.peekNth(1)) {
		op := p.advance()
		p.requireVersion(9, "pattern combinator", op.Span)
		left = &syntax.BinaryPattern{Left: left, OperatorToken: op, Right: p.parseConjunctivePattern()}
	}
	return left
}

func (p *Parser) parseConjunctivePattern() syntax.Pattern {
	left := p.parseNegatedPattern()
	for p.checkContextual("and") && p.canStartPattern(p.peekNth(1)) {
		op := p.advance()
		p.requireVersion(9, "pattern combinator", op.Span)
		left = &syntax.BinaryPattern{Left: left, OperatorToken: op, Right: p.parseNegatedPattern()}
	}
	return left
}

func (p *Parser) parseNegatedPattern() syntax.Pattern {
	if p.checkContextual("not") && p.canStartPattern(p.peekNth(1)) {
		op := p.advance()
		p.requireVersion(9, "pattern combinator", op.Span)
		return &syntax.UnaryPattern{OperatorToken: op, Pattern: p.parseNegatedPattern()}
	}
	return p.parsePrimaryPattern()
}

// canStartPattern reports whether tok can begin the operand of a pattern
// combinator.
func (p *Parser) canStartPattern(tok syntax.Token) bool {
	switch tok.Kind {
	case syntax.TokCloseParen, syntax.TokCloseBracket, syntax.TokCloseBrace,
		syntax.TokComma, syntax.TokSemicolon, syntax.TokColon,
		syntax.TokEqualsGreaterThan, syntax.TokEOF, syntax.TokQuestion:
		return false
	case syntax.TokOpenBrace, syntax.TokLessThan, syntax.TokLessThanEquals,
		syntax.TokGreaterThan, syntax.TokGreaterThanEquals:
		return true
	}
	if isPatternKeyword(tok) {
		return false
	}
	return p.canStartExpression(tok)
}

func (p *Parser) parsePrimaryPattern() syntax.Pattern {
	tok := p.peek()
	switch tok.Kind {
	case syntax.TokOpenParen:
		if p.atLeast(8) {
			return p.parseParenthesizedPattern()
		}
	case syntax.TokOpenBrace:
		return p.parseRecursivePatternRest(&syntax.RecursivePattern{})
	case syntax.TokLessThan, syntax.TokLessThanEquals,
		syntax.TokGreaterThan, syntax.TokGreaterThanEquals:
		op := p.advance()
		p.requireVersion(9, "relational pattern", op.Span)
		return &syntax.RelationalPattern{
			OperatorToken: op,
			Expression:    p.parseSubExpression(precedence.Shift),
		}
	case syntax.TokIdentifier:
		next := p.peekNth(1)
		if tok.Text == "_" && !p.continuesExpression(next) {
			return &syntax.DiscardPattern{Underscore: p.advance()}
		}
		if tok.Text == "var" && (next.Kind == syntax.TokIdentifier || next.Kind == syntax.TokOpenParen) {
			return &syntax.VarPattern{VarKeyword: p.advance(), Designation: p.parseDesignation()}
		}
	}

	s := p.mark()
	if typ, ok := p.tryParseType(typeAfterOperator); ok {
		switch {
		case p.check(syntax.TokOpenParen), p.check(syntax.TokOpenBrace):
			return p.parseRecursivePatternRest(&syntax.RecursivePattern{Type: typ})
		case p.startsDesignation():
			return &syntax.DeclarationPattern{Type: typ, Designation: p.parseDesignation()}
		case isTypeOnly(typ) && !p.continuesExpression(p.peek()):
			return &syntax.TypePattern{Type: typ}
		}
		p.reset(s)
	}
	return &syntax.ConstantPattern{Expression: p.parseSubExpression(precedence.Shift)}
}

// continuesExpression reports whether tok continues an expression operand
// rather than ending a pattern.
func (p *Parser) continuesExpression(tok syntax.Token) bool {
	switch tok.Kind {
	case syntax.TokDot, syntax.TokOpenParen, syntax.TokOpenBracket,
		syntax.TokPlusPlus, syntax.TokMinusMinus, syntax.TokMinusGreaterThan:
		return true
	}
	if kind, ok := syntax.BinaryKind(tok.Kind); ok {
		return precedence.OfKind(kind) >= precedence.Shift
	}
	return false
}

// startsDesignation reports whether the current token names a variable
// after a pattern type.
func (p *Parser) startsDesignation() bool {
	tok := p.peek()
	if tok.Kind != syntax.TokIdentifier || isPatternKeyword(tok) {
		return false
	}
	return true
}

// parseParenthesizedPattern parses a pattern that begins with '('. A single
// constant inside the parentheses is a parenthesized constant expression,
// which may continue with binary operators. A list or a following
// designation or property clause makes a positional pattern.
func (p *Parser) parseParenthesizedPattern() syntax.Pattern {
	s := p.mark()
	open := p.advance()
	clause := &syntax.PositionalPatternClause{OpenParen: open}
	for !p.check(syntax.TokCloseParen) && !p.isEOF() {
		clause.Subpatterns = append(clause.Subpatterns, p.parseSubpattern())
		if !p.check(syntax.TokComma) {
			break
		}
		clause.Commas = append(clause.Commas, p.advance())
	}
	clause.CloseParen = p.expect(syntax.TokCloseParen)

	positional := len(clause.Subpatterns) != 1 || len(clause.Commas) > 0 ||
		clause.Subpatterns[0].NameColon != nil ||
		p.check(syntax.TokOpenBrace) || p.startsDesignation()
	if positional {
		return p.parseRecursivePatternRest(&syntax.RecursivePattern{Positional: clause})
	}

	inner := clause.Subpatterns[0].Pattern
	if cp, ok := inner.(*syntax.ConstantPattern); ok {
		paren := &syntax.ParenthesizedExpression{
			OpenParen:  open,
			Expression: cp.Expression,
			CloseParen: clause.CloseParen,
		}
		return &syntax.ConstantPattern{
			Expression: p.parseBinaryTail(p.parsePostfix(paren), precedence.Shift),
		}
	}
	if !p.atLeast(9) {
		p.reset(s)
		return &syntax.ConstantPattern{Expression: p.parseSubExpression(precedence.Shift)}
	}
	return &syntax.ParenthesizedPattern{
		OpenParen:  open,
		Pattern:    inner,
		CloseParen: clause.CloseParen,
	}
}

// parseRecursivePatternRest parses the optional positional clause, property
// clause and designation that follow a recursive pattern's type.
func (p *Parser) parseRecursivePatternRest(rp *syntax.RecursivePattern) syntax.Pattern {
	if rp.Positional == nil && p.check(syntax.TokOpenParen) {
		rp.Positional = p.parsePositionalClause()
	}
	if p.check(syntax.TokOpenBrace) {
		rp.Property = p.parsePropertyClause()
	}
	if p.startsDesignation() {
		rp.Designation = p.parseDesignation()
	}
	return rp
}

func (p *Parser) parsePositionalClause() *syntax.PositionalPatternClause {
	c := &syntax.PositionalPatternClause{OpenParen: p.expect(syntax.TokOpenParen)}
	for !p.check(syntax.TokCloseParen) && !p.isEOF() {
		c.Subpatterns = append(c.Subpatterns, p.parseSubpattern())
		if !p.check(syntax.TokComma) {
			break
		}
		c.Commas = append(c.Commas, p.advance())
	}
	c.CloseParen = p.expect(syntax.TokCloseParen)
	return c
}

func (p *Parser) parsePropertyClause() *syntax.PropertyPatternClause {
	c := &syntax.PropertyPatternClause{OpenBrace: p.expect(syntax.TokOpenBrace)}
	for !p.check(syntax.TokCloseBrace) && !p.isEOF() {
		c.Subpatterns = append(c.Subpatterns, p.parseSubpattern())
		if !p.check(syntax.TokComma) {
			break
		}
		c.Commas = append(c.Commas, p.advance())
	}
	c.CloseBrace = p.expect(syntax.TokCloseBrace)
	return c
}

func (p *Parser) parseSubpattern() *syntax.Subpattern {
	sp := &syntax.Subpattern{}
	if p.check(syntax.TokIdentifier) && p.peekNth(1).Kind == syntax.TokColon {
		sp.NameColon = &syntax.NameColon{
			Name:  &syntax.IdentifierName{Ident: p.advance()},
			Colon: p.advance(),
		}
	}
	sp.Pattern = p.parsePattern()
	return sp
}
