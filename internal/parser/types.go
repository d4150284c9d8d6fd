package parser

import (
	"github.com/csfmt/unparen/syntax"
)

// typeMode controls which type suffixes parseType accepts.
type typeMode uint8

const (
	typeNormal typeMode = iota
	// typeNoArray stops before '[', which belongs to an array creation.
	typeNoArray
	// typeAfterOperator is the type after 'is' or 'as' or in a pattern. A
	// trailing '?' is a nullable suffix only when no expression follows it,
	// and '*' is an operator.
	typeAfterOperator
)

// tryParseType parses a type speculatively. On failure the position and
// diagnostics are restored and ok is false.
func (p *Parser) tryParseType(mode typeMode) (syntax.TypeSyntax, bool) {
	tok := p.peek()
	if tok.Kind != syntax.TokIdentifier && !tok.Kind.IsPredefinedType() {
		return nil, false
	}
	s := p.mark()
	typ := p.parseType(mode)
	if p.failedSince(s) {
		p.reset(s)
		return nil, false
	}
	return typ, true
}

func (p *Parser) parseType(mode typeMode) syntax.TypeSyntax {
	var typ syntax.TypeSyntax
	tok := p.peek()
	switch {
	case tok.Kind.IsPredefinedType():
		typ = &syntax.PredefinedType{Keyword: p.advance()}
	case tok.Kind == syntax.TokIdentifier:
		typ = p.parseQualifiedName()
	default:
		p.recordParseError(p.makeError("expected type, found " + p.describe(tok)))
		return &syntax.IdentifierName{Ident: syntax.Token{
			Kind:    syntax.TokIdentifier,
			Span:    p.missingSpan(),
			Missing: true,
		}}
	}

	for {
		switch p.peek().Kind {
		case syntax.TokQuestion:
			if _, ok := typ.(*syntax.NullableType); ok {
				return typ
			}
			if mode == typeAfterOperator && p.canStartExpression(p.peekNth(1)) {
				return typ
			}
			typ = &syntax.NullableType{ElementType: typ, Question: p.advance()}
		case syntax.TokAsterisk:
			if mode == typeAfterOperator {
				return typ
			}
			typ = &syntax.PointerType{ElementType: typ, Asterisk: p.advance()}
		case syntax.TokOpenBracket:
			if mode == typeNoArray {
				return typ
			}
			if k := p.peekNth(1).Kind; k != syntax.TokCloseBracket && k != syntax.TokComma {
				return typ
			}
			arr := &syntax.ArrayType{ElementType: typ}
			for p.check(syntax.TokOpenBracket) {
				if k := p.peekNth(1).Kind; k != syntax.TokCloseBracket && k != syntax.TokComma {
					break
				}
				arr.RankSpecifiers = append(arr.RankSpecifiers, p.parseRankSpecifier(false))
			}
			typ = arr
		default:
			return typ
		}
	}
}

// parseQualifiedName parses a possibly alias-qualified, dotted, generic
// name in type position.
func (p *Parser) parseQualifiedName() syntax.Name {
	var name syntax.Name
	if p.peekNth(1).Kind == syntax.TokColonColon {
		name = p.parseAliasQualified(false)
	} else {
		name = p.parseSimpleNameInType()
	}
	for p.check(syntax.TokDot) && p.peekNth(1).Kind == syntax.TokIdentifier {
		name = &syntax.QualifiedName{
			Left:  name,
			Dot:   p.advance(),
			Right: p.parseSimpleNameInType(),
		}
	}
	return name
}

// parseAliasQualified parses alias::name. In expression position the name
// follows the generic disambiguation rules for expressions.
func (p *Parser) parseAliasQualified(inExpression bool) *syntax.AliasQualifiedName {
	n := &syntax.AliasQualifiedName{
		Alias:      &syntax.IdentifierName{Ident: p.advance()},
		ColonColon: p.advance(),
	}
	if inExpression && p.check(syntax.TokIdentifier) {
		n.Name = p.parseSimpleNameInExpression()
	} else {
		n.Name = p.parseSimpleNameInType()
	}
	return n
}

func (p *Parser) parseSimpleNameInType() syntax.SimpleName {
	ident := p.expectIdentifier()
	if p.check(syntax.TokLessThan) {
		return &syntax.GenericName{Ident: ident, TypeArguments: p.parseTypeArgumentList()}
	}
	return &syntax.IdentifierName{Ident: ident}
}

func (p *Parser) parseTypeArgumentList() *syntax.TypeArgumentList {
	list := &syntax.TypeArgumentList{LessThan: p.expect(syntax.TokLessThan)}
	for {
		list.Arguments = append(list.Arguments, p.parseType(typeNormal))
		if !p.check(syntax.TokComma) {
			break
		}
		list.Commas = append(list.Commas, p.advance())
	}
	list.GreaterThan = p.expect(syntax.TokGreaterThan)
	return list
}

// parseRankSpecifier parses '[' ... ']'. Sizes are accepted only in the
// first rank of an array creation.
func (p *Parser) parseRankSpecifier(allowSizes bool) *syntax.ArrayRankSpecifier {
	r := &syntax.ArrayRankSpecifier{OpenBracket: p.expect(syntax.TokOpenBracket)}
	for !p.check(syntax.TokCloseBracket) && !p.isEOF() {
		if p.check(syntax.TokComma) {
			r.Commas = append(r.Commas, p.advance())
			continue
		}
		if !allowSizes || len(r.Sizes) > len(r.Commas) {
			break
		}
		r.Sizes = append(r.Sizes, p.parseExpression())
	}
	r.CloseBracket = p.expect(syntax.TokCloseBracket)
	return r
}

// isTypeOnly reports whether typ can only be read as a type, never as an
// expression.
func isTypeOnly(typ syntax.TypeSyntax) bool {
	switch t := typ.(type) {
	case *syntax.PredefinedType, *syntax.ArrayType, *syntax.PointerType, *syntax.NullableType:
		return true
	case *syntax.AliasQualifiedName:
		return true
	case *syntax.QualifiedName:
		return isTypeOnly(t.Left)
	}
	return false
}

// parseDesignation parses a single, discard or parenthesized variable
// designation.
func (p *Parser) parseDesignation() syntax.VariableDesignation {
	switch {
	case p.check(syntax.TokOpenParen):
		d := &syntax.ParenthesizedVariableDesignation{OpenParen: p.advance()}
		for !p.check(syntax.TokCloseParen) && !p.isEOF() {
			d.Variables = append(d.Variables, p.parseDesignation())
			if !p.check(syntax.TokComma) {
				break
			}
			d.Commas = append(d.Commas, p.advance())
		}
		d.CloseParen = p.expect(syntax.TokCloseParen)
		return d
	case p.checkContextual("_"):
		return &syntax.DiscardDesignation{Underscore: p.advance()}
	}
	return &syntax.SingleVariableDesignation{Ident: p.expectIdentifier()}
}
