// Package parser builds syntax trees from C# source text.
//
// The parser covers the statement and expression grammar that the
// parenthesis analysis needs, with C#-accurate disambiguation of casts,
// generic type arguments and lambdas. It never fails: malformed input is
// reported as diagnostics, and required tokens that are absent are
// synthesized with Missing set so the tree shape is always complete.
package parser

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/Masterminds/semver/v3"

	"github.com/csfmt/unparen/internal/lexer"
	"github.com/csfmt/unparen/internal/types"
	"github.com/csfmt/unparen/syntax"
)

// LatestVersion is the language version assumed when none is configured.
var LatestVersion = semver.MustParse("12.0")

// Option configures a Parser.
type Option func(*config)

type config struct {
	version *semver.Version
}

// WithLanguageVersion sets the language version that gates version
// dependent syntax. A nil version selects LatestVersion.
func WithLanguageVersion(v *semver.Version) Option {
	return func(c *config) {
		if v != nil {
			c.version = v
		}
	}
}

// Parser converts a token stream into a syntax tree with diagnostics.
type Parser struct {
	source      []byte
	tokens      []syntax.Token
	pos         int
	version     *semver.Version
	directives  [][]syntax.Token
	lexDiags    []types.SpanDiagnostic
	diagnostics []types.SpanDiagnostic
	types.Logger
}

// New returns a Parser that lexes the source and prepares for parsing.
// Pass nil for logger to disable logging.
func New(source []byte, logger *slog.Logger, opts ...Option) *Parser {
	cfg := config{version: LatestVersion}
	for _, opt := range opts {
		opt(&cfg)
	}

	lex := lexer.New(source, types.Component(logger, "lexer"))
	tokens, lexDiags := lex.Tokenize()

	p := &Parser{
		source:     source,
		tokens:     tokens,
		version:    cfg.version,
		directives: lex.Directives(),
		lexDiags:   lexDiags,
		Logger:     types.Logger{L: logger},
	}
	p.Log(slog.LevelDebug, "parser initialized",
		slog.Int("tokens", len(tokens)),
		slog.String("version", cfg.version.String()))
	return p
}

// Parse lexes and parses source as a compilation unit.
func Parse(source []byte, logger *slog.Logger, opts ...Option) (*syntax.CompilationUnit, []types.SpanDiagnostic) {
	p := New(source, logger, opts...)
	unit := p.ParseCompilationUnit()
	return unit, p.Diagnostics()
}

// Diagnostics returns lexer and parser diagnostics in that order.
func (p *Parser) Diagnostics() []types.SpanDiagnostic {
	out := slices.Clone(p.lexDiags)
	return append(out, p.diagnostics...)
}

// ParseCompilationUnit parses a sequence of top-level statements and the
// conditions of any #if and #elif directives. Parent links are set on the
// returned tree.
func (p *Parser) ParseCompilationUnit() *syntax.CompilationUnit {
	unit := &syntax.CompilationUnit{}
	for !p.isEOF() {
		start := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			unit.Statements = append(unit.Statements, stmt)
		}
		if p.pos == start {
			p.recordParseError(p.makeError(fmt.Sprintf("unexpected %s", p.peek().Kind)))
			p.advance()
		}
	}
	unit.EndOfFile = p.peek()

	for _, stream := range p.directives {
		unit.Directives = append(unit.Directives, p.parseDirective(stream))
	}
	syntax.SetParents(unit)

	p.Log(slog.LevelDebug, "parsing complete",
		slog.Int("statements", len(unit.Statements)),
		slog.Int("directives", len(unit.Directives)),
		slog.Int("diagnostics", len(p.diagnostics)))
	return unit
}

// ParseExpression parses the whole input as a single expression. Parent
// links are set on the returned tree.
func (p *Parser) ParseExpression() syntax.Expression {
	expr := p.parseExpression()
	if !p.isEOF() {
		p.recordParseError(p.makeError(fmt.Sprintf("unexpected %s after expression", p.peek().Kind)))
	}
	syntax.SetParents(expr)
	p.Log(slog.LevelDebug, "expression parsed",
		slog.String("kind", expr.Kind().String()),
		slog.Int("diagnostics", len(p.diagnostics)))
	return expr
}

// parseDirective parses the condition of one #if or #elif line using a
// parser over that line's tokens.
func (p *Parser) parseDirective(stream []syntax.Token) *syntax.DirectiveTrivia {
	sub := &Parser{
		source:  p.source,
		tokens:  stream[2:],
		version: p.version,
		Logger:  p.Logger,
	}
	d := &syntax.DirectiveTrivia{
		Hash:      stream[0],
		Keyword:   stream[1],
		Condition: sub.parseExpression(),
	}
	if !sub.isEOF() {
		sub.recordParseError(sub.makeError("unexpected tokens after directive condition"))
	}
	p.diagnostics = append(p.diagnostics, sub.diagnostics...)
	return d
}

func (p *Parser) isEOF() bool {
	return p.peek().Kind == syntax.TokEOF
}

func (p *Parser) peek() syntax.Token {
	return p.peekNth(0)
}

func (p *Parser) peekNth(n int) syntax.Token {
	if p.pos+n < len(p.tokens) {
		return p.tokens[p.pos+n]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() syntax.Token {
	tok := p.peek()
	if tok.Kind != syntax.TokEOF {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind syntax.TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) checkContextual(text string) bool {
	return p.peek().IsContextual(text)
}

// expect consumes a token of the given kind. When the current token does
// not match, it records a diagnostic and returns a missing token positioned
// at the current token.
func (p *Parser) expect(kind syntax.TokenKind) syntax.Token {
	if p.check(kind) {
		return p.advance()
	}
	return p.missing(kind)
}

func (p *Parser) missing(kind syntax.TokenKind) syntax.Token {
	at := p.currentSpan().Start
	diag := p.makeError(fmt.Sprintf("expected %s, found %s", kind, p.describe(p.peek())))
	diag.Code = types.DiagMissingToken
	p.recordParseError(diag)
	return syntax.Token{
		Kind:    kind,
		Span:    types.NewSpan(at, at),
		Missing: true,
	}
}

// expectIdentifier consumes an identifier token, synthesizing a missing one
// if the current token is not an identifier.
func (p *Parser) expectIdentifier() syntax.Token {
	return p.expect(syntax.TokIdentifier)
}

func (p *Parser) describe(tok syntax.Token) string {
	if tok.Kind == syntax.TokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Text)
}

func (p *Parser) currentSpan() types.Span {
	return p.peek().Span
}

func (p *Parser) recordParseError(diag types.SpanDiagnostic) {
	p.diagnostics = append(p.diagnostics, diag)
}

func (p *Parser) makeError(message string) types.SpanDiagnostic {
	return types.SpanDiagnostic{
		Severity: types.SeverityError,
		Code:     types.DiagParseError,
		Span:     p.currentSpan(),
		Message:  message,
	}
}

// requireVersion reports a construct that the configured language version
// does not support. Parsing continues as if it were supported.
func (p *Parser) requireVersion(major uint64, feature string, span types.Span) {
	if p.version.Major() >= major {
		return
	}
	p.recordParseError(types.SpanDiagnostic{
		Severity: types.SeverityWarning,
		Code:     types.DiagLanguageVersion,
		Span:     span,
		Message:  fmt.Sprintf("%s requires language version %d.0 or later (configured %s)", feature, major, p.version),
	})
}

func (p *Parser) atLeast(major uint64) bool {
	return p.version.Major() >= major
}

// state captures the parser position for speculative parsing.
type state struct {
	pos   int
	diags int
}

func (p *Parser) mark() state {
	return state{pos: p.pos, diags: len(p.diagnostics)}
}

func (p *Parser) reset(s state) {
	p.pos = s.pos
	p.diagnostics = p.diagnostics[:s.diags]
}

// failedSince reports whether any diagnostic was recorded after s.
func (p *Parser) failedSince(s state) bool {
	return len(p.diagnostics) > s.diags
}

// adjacent reports whether b starts exactly where a ends.
func adjacent(a, b syntax.Token) bool {
	return a.Span.End == b.Span.Start && a.Kind != syntax.TokEOF && b.Kind != syntax.TokEOF
}

func glue(kind syntax.TokenKind, toks ...syntax.Token) syntax.Token {
	out := syntax.Token{Kind: kind, Span: toks[0].Span}
	for _, t := range toks {
		out.Text += t.Text
		out.Span = out.Span.Cover(t.Span)
	}
	return out
}

// peekOperator returns the operator at the current position and the number
// of lexer tokens it spans. Adjacent '>' tokens are combined into shift
// operators here because the lexer keeps them apart for type argument lists.
func (p *Parser) peekOperator() (syntax.Token, int) {
	tok := p.peek()
	if tok.Kind != syntax.TokGreaterThan {
		return tok, 1
	}
	n1 := p.peekNth(1)
	if !adjacent(tok, n1) {
		return tok, 1
	}
	switch n1.Kind {
	case syntax.TokGreaterThanEquals:
		return glue(syntax.TokGreaterThanGreaterThanEquals, tok, n1), 2
	case syntax.TokGreaterThan:
		n2 := p.peekNth(2)
		if adjacent(n1, n2) {
			switch n2.Kind {
			case syntax.TokGreaterThan:
				return glue(syntax.TokGreaterThanGreaterThanGreaterThan, tok, n1, n2), 3
			case syntax.TokGreaterThanEquals:
				return glue(syntax.TokGreaterThanGreaterThanGreaterThanEquals, tok, n1, n2), 3
			}
		}
		return glue(syntax.TokGreaterThanGreaterThan, tok, n1), 2
	}
	return tok, 1
}

// recoverToStatement skips tokens up to and including the next ';', or up
// to a '}' that may close the enclosing block.
func (p *Parser) recoverToStatement() {
	for !p.isEOF() {
		switch p.peek().Kind {
		case syntax.TokSemicolon:
			p.advance()
			return
		case syntax.TokCloseBrace:
			return
		}
		p.advance()
	}
}
