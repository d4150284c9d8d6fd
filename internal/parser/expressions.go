package parser

import (
	"github.com/csfmt/unparen/internal/precedence"
	"github.com/csfmt/unparen/syntax"
)

func (p *Parser) parseExpression() syntax.Expression {
	return p.parseSubExpression(precedence.AssignmentAndLambda)
}

// parseSubExpression parses an expression whose operators all bind at
// least as tightly as minPrec.
func (p *Parser) parseSubExpression(minPrec precedence.Precedence) syntax.Expression {
	return p.parseBinaryTail(p.parseUnary(minPrec), minPrec)
}

// parseUnary parses a prefix form or a primary expression with its
// postfix chain.
func (p *Parser) parseUnary(minPrec precedence.Precedence) syntax.Expression {
	tok := p.peek()
	switch {
	case tok.Kind == syntax.TokKwThrow:
		throwKw := p.advance()
		p.requireVersion(7, "throw expression", throwKw.Span)
		return &syntax.ThrowExpression{
			ThrowKeyword: throwKw,
			Expression:   p.parseSubExpression(precedence.NullCoalescing),
		}
	case tok.Kind == syntax.TokKwRef:
		return &syntax.RefExpression{
			RefKeyword: p.advance(),
			Expression: p.parseExpression(),
		}
	case minPrec <= precedence.AssignmentAndLambda && p.isLambdaStart():
		return p.parseLambda()
	case tok.IsContextual("await") && p.canStartExpression(p.peekNth(1)) && !isBinaryOperatorToken(p.peekNth(1)):
		return &syntax.AwaitExpression{
			AwaitKeyword: p.advance(),
			Expression:   p.parseSubExpression(precedence.Unary),
		}
	case tok.Kind == syntax.TokDotDot:
		op := p.advance()
		p.requireVersion(8, "range expression", op.Span)
		r := &syntax.RangeExpression{OperatorToken: op}
		if p.canStartExpression(p.peek()) {
			r.RightOperand = p.parseSubExpression(precedence.Range + 1)
		}
		return r
	case tok.Kind == syntax.TokOpenParen:
		if cast := p.tryParseCast(); cast != nil {
			return cast
		}
	}
	if _, ok := syntax.PrefixUnaryKind(tok.Kind); ok {
		return &syntax.PrefixUnaryExpression{
			OperatorToken: p.advance(),
			Operand:       p.parseSubExpression(precedence.Unary),
		}
	}
	return p.parsePostfix(p.parsePrimary())
}

// parseBinaryTail folds binary, assignment, conditional, range, is, as and
// switch operators onto left while they bind at least as tightly as
// minPrec.
func (p *Parser) parseBinaryTail(left syntax.Expression, minPrec precedence.Precedence) syntax.Expression {
	for {
		op, n := p.peekOperator()

		if kind, ok := syntax.AssignmentKind(op.Kind); ok {
			if precedence.OfKind(kind) < minPrec {
				return left
			}
			p.pos += n
			left = &syntax.AssignmentExpression{
				Left:          left,
				OperatorToken: op,
				Right:         p.parseSubExpression(precedence.AssignmentAndLambda),
			}
			continue
		}

		switch op.Kind {
		case syntax.TokQuestion:
			if precedence.Conditional < minPrec {
				return left
			}
			question := p.advance()
			whenTrue := p.parseExpression()
			colon := p.expect(syntax.TokColon)
			left = &syntax.ConditionalExpression{
				Condition:     left,
				QuestionToken: question,
				WhenTrue:      whenTrue,
				ColonToken:    colon,
				WhenFalse:     p.parseExpression(),
			}
			continue

		case syntax.TokDotDot:
			if precedence.Range < minPrec {
				return left
			}
			rangeOp := p.advance()
			p.requireVersion(8, "range expression", rangeOp.Span)
			r := &syntax.RangeExpression{LeftOperand: left, OperatorToken: rangeOp}
			if p.canStartExpression(p.peek()) {
				r.RightOperand = p.parseSubExpression(precedence.Range + 1)
			}
			left = r
			continue

		case syntax.TokKwSwitch:
			if precedence.Switch < minPrec {
				return left
			}
			left = p.parseSwitchExpression(left)
			continue

		case syntax.TokKwIs:
			if precedence.RelationalAndTypeTesting < minPrec {
				return left
			}
			left = p.parseIsExpression(left)
			continue

		case syntax.TokKwAs:
			if precedence.RelationalAndTypeTesting < minPrec {
				return left
			}
			asKw := p.advance()
			left = &syntax.BinaryExpression{
				Left:          left,
				OperatorToken: asKw,
				Right:         p.parseType(typeAfterOperator),
			}
			continue
		}

		kind, ok := syntax.BinaryKind(op.Kind)
		if !ok {
			return left
		}
		prec := precedence.OfKind(kind)
		if prec < minPrec {
			return left
		}
		p.pos += n
		rightMin := prec + 1
		if kind == syntax.KindCoalesceExpression {
			rightMin = prec
		}
		left = &syntax.BinaryExpression{
			Left:          left,
			OperatorToken: op,
			Right:         p.parseSubExpression(rightMin),
		}
	}
}

// parseIsExpression parses the operand of 'is'. A bare type becomes an
// is-type binary expression; anything else is a pattern.
func (p *Parser) parseIsExpression(left syntax.Expression) syntax.Expression {
	isKw := p.advance()
	pat := p.parsePattern()
	switch pt := pat.(type) {
	case *syntax.TypePattern:
		return &syntax.BinaryExpression{Left: left, OperatorToken: isKw, Right: pt.Type}
	case *syntax.ConstantPattern:
		if isTypeLikeName(pt.Expression) {
			return &syntax.BinaryExpression{Left: left, OperatorToken: isKw, Right: pt.Expression}
		}
	}
	return &syntax.IsPatternExpression{Expression: left, IsKeyword: isKw, Pattern: pat}
}

// isTypeLikeName reports whether e is a plain or dotted name that 'is'
// treats as a type.
func isTypeLikeName(e syntax.Expression) bool {
	switch n := e.(type) {
	case *syntax.IdentifierName, *syntax.GenericName, *syntax.QualifiedName,
		*syntax.AliasQualifiedName, *syntax.PredefinedType:
		return true
	case *syntax.MemberAccessExpression:
		return n.Kind() == syntax.KindSimpleMemberAccessExpression && isTypeLikeName(n.Expression)
	}
	return false
}

func (p *Parser) parseSwitchExpression(governing syntax.Expression) syntax.Expression {
	switchKw := p.advance()
	p.requireVersion(8, "switch expression", switchKw.Span)
	sw := &syntax.SwitchExpression{
		GoverningExpression: governing,
		SwitchKeyword:       switchKw,
		OpenBrace:           p.expect(syntax.TokOpenBrace),
	}
	for !p.check(syntax.TokCloseBrace) && !p.isEOF() {
		start := p.pos
		arm := &syntax.SwitchExpressionArm{Pattern: p.parsePattern()}
		if p.checkContextual("when") {
			arm.WhenClause = &syntax.WhenClause{
				WhenKeyword: p.advance(),
				Condition:   p.parseExpression(),
			}
		}
		arm.EqualsGreaterThan = p.expect(syntax.TokEqualsGreaterThan)
		arm.Expression = p.parseExpression()
		sw.Arms = append(sw.Arms, arm)
		if !p.check(syntax.TokComma) {
			break
		}
		sw.Commas = append(sw.Commas, p.advance())
		if p.pos == start {
			break
		}
	}
	sw.CloseBrace = p.expect(syntax.TokCloseBrace)
	return sw
}

// parsePrimary parses a primary expression without its postfix chain.
func (p *Parser) parsePrimary() syntax.Expression {
	tok := p.peek()
	switch tok.Kind {
	case syntax.TokIdentifier:
		if tok.Text == "from" && p.isQueryStart() {
			return p.parseQuery()
		}
		if p.peekNth(1).Kind == syntax.TokColonColon {
			return p.parseAliasQualified(true)
		}
		return p.parseSimpleNameInExpression()

	case syntax.TokNumericLiteral, syntax.TokStringLiteral, syntax.TokCharLiteral,
		syntax.TokKwTrue, syntax.TokKwFalse, syntax.TokKwNull:
		return &syntax.LiteralExpression{Token: p.advance()}

	case syntax.TokKwDefault:
		if p.peekNth(1).Kind == syntax.TokOpenParen {
			return p.parseTypeKeywordExpression()
		}
		return &syntax.LiteralExpression{Token: p.advance()}

	case syntax.TokKwTypeof, syntax.TokKwSizeof:
		return p.parseTypeKeywordExpression()

	case syntax.TokKwChecked, syntax.TokKwUnchecked:
		return &syntax.CheckedExpression{
			Keyword:    p.advance(),
			OpenParen:  p.expect(syntax.TokOpenParen),
			Expression: p.parseExpression(),
			CloseParen: p.expect(syntax.TokCloseParen),
		}

	case syntax.TokInterpolatedStringStart:
		return p.parseInterpolatedString()

	case syntax.TokKwThis:
		return &syntax.ThisExpression{Token: p.advance()}

	case syntax.TokKwBase:
		return &syntax.BaseExpression{Token: p.advance()}

	case syntax.TokOpenParen:
		return p.parseParenthesizedOrTuple()

	case syntax.TokKwNew:
		return p.parseNew()

	case syntax.TokKwStackalloc:
		return p.parseStackAlloc()
	}

	if tok.Kind.IsPredefinedType() {
		return &syntax.PredefinedType{Keyword: p.advance()}
	}

	p.recordParseError(p.makeError("expected expression, found " + p.describe(tok)))
	return &syntax.IdentifierName{Ident: syntax.Token{
		Kind:    syntax.TokIdentifier,
		Span:    p.missingSpan(),
		Missing: true,
	}}
}

func (p *Parser) missingSpan() syntax.Span {
	at := p.currentSpan().Start
	return syntax.Span{Start: at, End: at}
}

func (p *Parser) parseTypeKeywordExpression() syntax.Expression {
	return &syntax.TypeKeywordExpression{
		Keyword:    p.advance(),
		OpenParen:  p.expect(syntax.TokOpenParen),
		Type:       p.parseType(typeNormal),
		CloseParen: p.expect(syntax.TokCloseParen),
	}
}

// parseSimpleNameInExpression parses an identifier in expression position.
// It becomes a generic name only if a type argument list parses and is
// followed by a token that cannot continue a relational expression.
func (p *Parser) parseSimpleNameInExpression() syntax.SimpleName {
	ident := p.advance()
	if p.check(syntax.TokLessThan) {
		s := p.mark()
		args := p.parseTypeArgumentList()
		if !p.failedSince(s) && genericFollower(p.peek().Kind) {
			return &syntax.GenericName{Ident: ident, TypeArguments: args}
		}
		p.reset(s)
	}
	return &syntax.IdentifierName{Ident: ident}
}

// genericFollower reports whether kind, following a closing '>', makes the
// preceding '<...>' a type argument list.
func genericFollower(kind syntax.TokenKind) bool {
	switch kind {
	case syntax.TokOpenParen, syntax.TokCloseParen, syntax.TokCloseBracket,
		syntax.TokCloseBrace, syntax.TokColon, syntax.TokSemicolon,
		syntax.TokComma, syntax.TokDot, syntax.TokQuestion,
		syntax.TokEqualsEquals, syntax.TokExclamationEquals,
		syntax.TokBar, syntax.TokCaret, syntax.TokAmpersandAmpersand,
		syntax.TokBarBar, syntax.TokAmpersand, syntax.TokOpenBracket,
		syntax.TokEOF:
		return true
	}
	return false
}

// parsePostfix applies member access, invocation, element access, postfix
// operators and conditional access to expr.
func (p *Parser) parsePostfix(expr syntax.Expression) syntax.Expression {
	for {
		switch p.peek().Kind {
		case syntax.TokDot, syntax.TokMinusGreaterThan:
			expr = &syntax.MemberAccessExpression{
				Expression:    expr,
				OperatorToken: p.advance(),
				Name:          p.parseMemberName(),
			}
		case syntax.TokOpenParen:
			expr = &syntax.InvocationExpression{
				Expression:   expr,
				ArgumentList: p.parseArgumentList(syntax.TokOpenParen, syntax.TokCloseParen),
			}
		case syntax.TokOpenBracket:
			expr = &syntax.ElementAccessExpression{
				Expression:   expr,
				ArgumentList: p.parseArgumentList(syntax.TokOpenBracket, syntax.TokCloseBracket),
			}
		case syntax.TokPlusPlus, syntax.TokMinusMinus, syntax.TokExclamation:
			expr = &syntax.PostfixUnaryExpression{
				Operand:       expr,
				OperatorToken: p.advance(),
			}
		case syntax.TokQuestion:
			next := p.peekNth(1).Kind
			if next != syntax.TokDot && next != syntax.TokOpenBracket {
				return expr
			}
			question := p.advance()
			return &syntax.ConditionalAccessExpression{
				Expression:    expr,
				OperatorToken: question,
				WhenNotNull:   p.parsePostfix(p.parseBinding()),
			}
		default:
			return expr
		}
	}
}

// parseBinding parses the member or element binding that follows '?'.
func (p *Parser) parseBinding() syntax.Expression {
	if p.check(syntax.TokOpenBracket) {
		return &syntax.ElementBindingExpression{
			ArgumentList: p.parseArgumentList(syntax.TokOpenBracket, syntax.TokCloseBracket),
		}
	}
	return &syntax.MemberBindingExpression{
		OperatorToken: p.expect(syntax.TokDot),
		Name:          p.parseMemberName(),
	}
}

// parseMemberName parses the name after '.', where '<' always opens type
// arguments when they parse.
func (p *Parser) parseMemberName() syntax.SimpleName {
	if !p.check(syntax.TokIdentifier) {
		return &syntax.IdentifierName{Ident: p.expectIdentifier()}
	}
	return p.parseSimpleNameInExpression()
}

func (p *Parser) parseArgumentList(open, close syntax.TokenKind) *syntax.ArgumentList {
	list := &syntax.ArgumentList{OpenToken: p.expect(open)}
	if !p.check(close) {
		for {
			list.Arguments = append(list.Arguments, p.parseArgument())
			if !p.check(syntax.TokComma) {
				break
			}
			list.Commas = append(list.Commas, p.advance())
		}
	}
	list.CloseToken = p.expect(close)
	return list
}

func (p *Parser) parseArgument() *syntax.Argument {
	arg := &syntax.Argument{}
	if p.check(syntax.TokIdentifier) && p.peekNth(1).Kind == syntax.TokColon {
		arg.NameColon = &syntax.NameColon{
			Name:  &syntax.IdentifierName{Ident: p.advance()},
			Colon: p.advance(),
		}
	}
	switch p.peek().Kind {
	case syntax.TokKwRef, syntax.TokKwIn:
		arg.RefKindKeyword = p.advance()
	case syntax.TokKwOut:
		arg.RefKindKeyword = p.advance()
		if decl := p.tryParseDeclarationExpression(); decl != nil {
			arg.Expression = decl
			return arg
		}
	}
	arg.Expression = p.parseExpression()
	return arg
}

// tryParseDeclarationExpression parses 'T name' or 'var (a, b)' when the
// tokens form one, as in out arguments and tuple deconstruction.
func (p *Parser) tryParseDeclarationExpression() syntax.Expression {
	s := p.mark()
	if p.checkContextual("var") && p.peekNth(1).Kind == syntax.TokOpenParen {
		varTok := p.advance()
		desig := p.parseDesignation()
		if !p.failedSince(s) {
			return &syntax.DeclarationExpression{
				Type:        &syntax.IdentifierName{Ident: varTok},
				Designation: desig,
			}
		}
		p.reset(s)
		return nil
	}
	typ, ok := p.tryParseType(typeNormal)
	if !ok || !p.check(syntax.TokIdentifier) || isPatternKeyword(p.peek()) {
		p.reset(s)
		return nil
	}
	return &syntax.DeclarationExpression{Type: typ, Designation: p.parseDesignation()}
}

// parseParenthesizedOrTuple parses '(' expr ')' or a tuple literal.
func (p *Parser) parseParenthesizedOrTuple() syntax.Expression {
	open := p.advance()

	first := p.parseTupleElement()
	if first.NameColon == nil && !isDeclaration(first.Expression) && !p.check(syntax.TokComma) {
		return &syntax.ParenthesizedExpression{
			OpenParen:  open,
			Expression: first.Expression,
			CloseParen: p.expect(syntax.TokCloseParen),
		}
	}

	tuple := &syntax.TupleExpression{OpenParen: open, Arguments: []*syntax.Argument{first}}
	for p.check(syntax.TokComma) {
		tuple.Commas = append(tuple.Commas, p.advance())
		tuple.Arguments = append(tuple.Arguments, p.parseTupleElement())
	}
	tuple.CloseParen = p.expect(syntax.TokCloseParen)
	return tuple
}

func isDeclaration(e syntax.Expression) bool {
	_, ok := e.(*syntax.DeclarationExpression)
	return ok
}

func (p *Parser) parseTupleElement() *syntax.Argument {
	arg := &syntax.Argument{}
	if p.check(syntax.TokIdentifier) && p.peekNth(1).Kind == syntax.TokColon {
		arg.NameColon = &syntax.NameColon{
			Name:  &syntax.IdentifierName{Ident: p.advance()},
			Colon: p.advance(),
		}
	}
	if decl := p.tryParseTupleDeclaration(); decl != nil {
		arg.Expression = decl
		return arg
	}
	arg.Expression = p.parseExpression()
	return arg
}

// tryParseTupleDeclaration parses a declaration expression inside a tuple
// only when it is immediately followed by ',' or ')'.
func (p *Parser) tryParseTupleDeclaration() syntax.Expression {
	s := p.mark()
	decl := p.tryParseDeclarationExpression()
	if decl == nil {
		return nil
	}
	if k := p.peek().Kind; k != syntax.TokComma && k != syntax.TokCloseParen {
		p.reset(s)
		return nil
	}
	return decl
}

// tryParseCast parses '(' type ')' operand when the tokens form a cast.
// A parenthesized type is a cast if the type cannot be an expression, or if
// the token after ')' can only begin an operand.
func (p *Parser) tryParseCast() syntax.Expression {
	s := p.mark()
	open := p.advance()
	typ, ok := p.tryParseType(typeNormal)
	if !ok || !p.check(syntax.TokCloseParen) {
		p.reset(s)
		return nil
	}
	close := p.advance()
	next := p.peek()
	if isTypeOnly(typ) {
		if !p.canStartExpression(next) {
			p.reset(s)
			return nil
		}
	} else if !canFollowCast(next) {
		p.reset(s)
		return nil
	}
	return &syntax.CastExpression{
		OpenParen:  open,
		Type:       typ,
		CloseParen: close,
		Expression: p.parseSubExpression(precedence.Unary),
	}
}

// canFollowCast reports whether tok, after '(' name ')', forces a cast
// reading: an identifier, a literal, '(', '~', '!' or a keyword other than
// as, is and switch.
func canFollowCast(tok syntax.Token) bool {
	switch tok.Kind {
	case syntax.TokIdentifier:
		return !isPatternKeyword(tok) && !tok.IsContextual("with")
	case syntax.TokNumericLiteral, syntax.TokStringLiteral, syntax.TokCharLiteral,
		syntax.TokInterpolatedStringStart,
		syntax.TokOpenParen, syntax.TokTilde, syntax.TokExclamation:
		return true
	case syntax.TokKwAs, syntax.TokKwIs, syntax.TokKwSwitch:
		return false
	}
	return tok.Kind.IsKeyword()
}

// isPatternKeyword reports contextual keywords that continue a pattern or
// clause rather than start an operand.
func isPatternKeyword(tok syntax.Token) bool {
	return tok.IsContextual("when") || tok.IsContextual("and") || tok.IsContextual("or")
}

func isBinaryOperatorToken(tok syntax.Token) bool {
	if _, ok := syntax.BinaryKind(tok.Kind); ok {
		return true
	}
	_, ok := syntax.AssignmentKind(tok.Kind)
	return ok
}

// canStartExpression reports whether tok can begin an expression.
func (p *Parser) canStartExpression(tok syntax.Token) bool {
	switch tok.Kind {
	case syntax.TokIdentifier, syntax.TokNumericLiteral, syntax.TokStringLiteral,
		syntax.TokCharLiteral, syntax.TokInterpolatedStringStart,
		syntax.TokOpenParen, syntax.TokExclamation, syntax.TokTilde,
		syntax.TokPlus, syntax.TokMinus, syntax.TokPlusPlus, syntax.TokMinusMinus,
		syntax.TokAsterisk, syntax.TokAmpersand, syntax.TokCaret, syntax.TokDotDot,
		syntax.TokKwThis, syntax.TokKwBase, syntax.TokKwNew, syntax.TokKwTypeof,
		syntax.TokKwSizeof, syntax.TokKwDefault, syntax.TokKwChecked,
		syntax.TokKwUnchecked, syntax.TokKwTrue, syntax.TokKwFalse, syntax.TokKwNull,
		syntax.TokKwStackalloc, syntax.TokKwThrow, syntax.TokKwRef, syntax.TokKwDelegate:
		return true
	}
	return tok.Kind.IsPredefinedType()
}

// isLambdaStart reports whether the current tokens begin a lambda:
// 'x =>' or a balanced parameter list followed by '=>'.
func (p *Parser) isLambdaStart() bool {
	switch p.peek().Kind {
	case syntax.TokIdentifier:
		return p.peekNth(1).Kind == syntax.TokEqualsGreaterThan
	case syntax.TokOpenParen:
		depth := 0
		for i := 0; ; i++ {
			switch p.peekNth(i).Kind {
			case syntax.TokOpenParen:
				depth++
			case syntax.TokCloseParen:
				depth--
				if depth == 0 {
					return p.peekNth(i+1).Kind == syntax.TokEqualsGreaterThan
				}
			case syntax.TokEOF, syntax.TokSemicolon, syntax.TokOpenBrace, syntax.TokCloseBrace:
				return false
			}
		}
	}
	return false
}

func (p *Parser) parseLambda() syntax.Expression {
	if p.check(syntax.TokIdentifier) {
		return &syntax.SimpleLambdaExpression{
			Parameter: &syntax.Parameter{Ident: p.advance()},
			Arrow:     p.advance(),
			Body:      p.parseLambdaBody(),
		}
	}
	return &syntax.ParenthesizedLambdaExpression{
		ParameterList: p.parseParameterList(),
		Arrow:         p.expect(syntax.TokEqualsGreaterThan),
		Body:          p.parseLambdaBody(),
	}
}

func (p *Parser) parseLambdaBody() syntax.Node {
	if p.check(syntax.TokOpenBrace) {
		return p.parseBlock()
	}
	return p.parseExpression()
}

func (p *Parser) parseParameterList() *syntax.ParameterList {
	list := &syntax.ParameterList{OpenParen: p.expect(syntax.TokOpenParen)}
	if !p.check(syntax.TokCloseParen) {
		for {
			list.Parameters = append(list.Parameters, p.parseParameter())
			if !p.check(syntax.TokComma) {
				break
			}
			list.Commas = append(list.Commas, p.advance())
		}
	}
	list.CloseParen = p.expect(syntax.TokCloseParen)
	return list
}

func (p *Parser) parseParameter() *syntax.Parameter {
	if p.check(syntax.TokIdentifier) {
		if k := p.peekNth(1).Kind; k == syntax.TokComma || k == syntax.TokCloseParen {
			return &syntax.Parameter{Ident: p.advance()}
		}
	}
	return &syntax.Parameter{
		Type:  p.parseType(typeNormal),
		Ident: p.expectIdentifier(),
	}
}

// parseNew parses object, array, implicit array and anonymous object
// creation.
func (p *Parser) parseNew() syntax.Expression {
	newKw := p.advance()
	switch p.peek().Kind {
	case syntax.TokOpenBrace:
		return p.parseAnonymousObject(newKw)
	case syntax.TokOpenBracket:
		n := &syntax.ImplicitArrayCreationExpression{
			NewKeyword:  newKw,
			OpenBracket: p.advance(),
		}
		for p.check(syntax.TokComma) {
			n.Commas = append(n.Commas, p.advance())
		}
		n.CloseBracket = p.expect(syntax.TokCloseBracket)
		n.Initializer = p.parseInitializer()
		return n
	case syntax.TokOpenParen:
		// target-typed new()
		n := &syntax.ObjectCreationExpression{
			NewKeyword:   newKw,
			ArgumentList: p.parseArgumentList(syntax.TokOpenParen, syntax.TokCloseParen),
		}
		if p.check(syntax.TokOpenBrace) {
			n.Initializer = p.parseInitializer()
		}
		return n
	}

	elem := p.parseType(typeNoArray)
	if p.check(syntax.TokOpenBracket) {
		arr := &syntax.ArrayType{ElementType: elem}
		arr.RankSpecifiers = append(arr.RankSpecifiers, p.parseRankSpecifier(true))
		for p.check(syntax.TokOpenBracket) {
			arr.RankSpecifiers = append(arr.RankSpecifiers, p.parseRankSpecifier(false))
		}
		n := &syntax.ArrayCreationExpression{NewKeyword: newKw, Type: arr}
		if p.check(syntax.TokOpenBrace) {
			n.Initializer = p.parseInitializer()
		}
		return n
	}

	n := &syntax.ObjectCreationExpression{NewKeyword: newKw, Type: elem}
	if p.check(syntax.TokOpenParen) {
		n.ArgumentList = p.parseArgumentList(syntax.TokOpenParen, syntax.TokCloseParen)
	}
	if p.check(syntax.TokOpenBrace) {
		n.Initializer = p.parseInitializer()
	}
	if n.ArgumentList == nil && n.Initializer == nil {
		n.ArgumentList = &syntax.ArgumentList{
			OpenToken:  p.missing(syntax.TokOpenParen),
			CloseToken: syntax.Token{Kind: syntax.TokCloseParen, Span: p.missingSpan(), Missing: true},
		}
	}
	return n
}

func (p *Parser) parseAnonymousObject(newKw syntax.Token) syntax.Expression {
	n := &syntax.AnonymousObjectCreationExpression{
		NewKeyword: newKw,
		OpenBrace:  p.advance(),
	}
	for !p.check(syntax.TokCloseBrace) && !p.isEOF() {
		m := &syntax.AnonymousObjectMemberDeclarator{}
		if p.check(syntax.TokIdentifier) && p.peekNth(1).Kind == syntax.TokEquals {
			m.NameEquals = &syntax.NameEquals{
				Name:        &syntax.IdentifierName{Ident: p.advance()},
				EqualsToken: p.advance(),
			}
		}
		m.Expression = p.parseExpression()
		n.Initializers = append(n.Initializers, m)
		if !p.check(syntax.TokComma) {
			break
		}
		n.Commas = append(n.Commas, p.advance())
	}
	n.CloseBrace = p.expect(syntax.TokCloseBrace)
	return n
}

// parseInitializer parses '{' elements '}' where an element is an
// expression or a nested initializer.
func (p *Parser) parseInitializer() *syntax.InitializerExpression {
	init := &syntax.InitializerExpression{OpenBrace: p.expect(syntax.TokOpenBrace)}
	for !p.check(syntax.TokCloseBrace) && !p.isEOF() {
		start := p.pos
		if p.check(syntax.TokOpenBrace) {
			init.Expressions = append(init.Expressions, p.parseInitializer())
		} else {
			init.Expressions = append(init.Expressions, p.parseExpression())
		}
		if !p.check(syntax.TokComma) || p.pos == start {
			break
		}
		init.Commas = append(init.Commas, p.advance())
	}
	init.CloseBrace = p.expect(syntax.TokCloseBrace)
	return init
}

func (p *Parser) parseStackAlloc() syntax.Expression {
	kw := p.advance()
	if p.check(syntax.TokOpenBracket) {
		return &syntax.ImplicitStackAllocArrayCreationExpression{
			StackAllocKeyword: kw,
			OpenBracket:       p.advance(),
			CloseBracket:      p.expect(syntax.TokCloseBracket),
			Initializer:       p.parseInitializer(),
		}
	}
	elem := p.parseType(typeNoArray)
	arr := &syntax.ArrayType{ElementType: elem}
	arr.RankSpecifiers = append(arr.RankSpecifiers, p.parseRankSpecifier(true))
	n := &syntax.StackAllocArrayCreationExpression{StackAllocKeyword: kw, Type: arr}
	if p.check(syntax.TokOpenBrace) {
		n.Initializer = p.parseInitializer()
	}
	return n
}

// parseInterpolatedString parses $"..." from its start token to its end
// token.
func (p *Parser) parseInterpolatedString() syntax.Expression {
	s := &syntax.InterpolatedStringExpression{StringStart: p.advance()}
	for {
		switch p.peek().Kind {
		case syntax.TokInterpolatedStringText:
			s.Contents = append(s.Contents, &syntax.InterpolatedStringText{TextToken: p.advance()})
			continue
		case syntax.TokOpenBrace:
			s.Contents = append(s.Contents, p.parseInterpolation())
			continue
		}
		break
	}
	s.StringEnd = p.expect(syntax.TokInterpolatedStringEnd)
	return s
}

func (p *Parser) parseInterpolation() *syntax.Interpolation {
	in := &syntax.Interpolation{
		OpenBrace:  p.advance(),
		Expression: p.parseExpression(),
	}
	if p.check(syntax.TokComma) {
		in.Alignment = &syntax.InterpolationAlignmentClause{
			Comma: p.advance(),
			Value: p.parseExpression(),
		}
	}
	if p.check(syntax.TokColon) {
		f := &syntax.InterpolationFormatClause{Colon: p.advance()}
		if p.check(syntax.TokInterpolatedStringText) {
			f.FormatString = p.advance()
		}
		in.Format = f
	}
	in.CloseBrace = p.expect(syntax.TokCloseBrace)
	return in
}
