// Package lexer tokenizes C# source text for the parenthesis analysis.
package lexer

import (
	"fmt"
	"log/slog"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/csfmt/unparen/internal/types"
	"github.com/csfmt/unparen/syntax"
)

type modeKind int

const (
	modeNormal modeKind = iota
	// text between holes of an interpolated string
	modeInterpText
	// expression inside an interpolation hole
	modeInterpHole
	// format specifier after a hole's top-level ':'
	modeInterpFormat
)

type mode struct {
	kind     modeKind
	verbatim bool
	depth    int // open (, [ and { inside a hole
}

// Lexer tokenizes C# source text. Preprocessor #if and #elif lines are
// tokenized into separate streams, available from Directives after
// Tokenize returns.
type Lexer struct {
	source      []byte
	pos         int
	modes       []mode
	lineStart   bool
	directives  [][]syntax.Token
	diagnostics []types.SpanDiagnostic
	types.Logger
}

// New returns a Lexer that tokenizes the given source bytes.
func New(source []byte, logger *slog.Logger) *Lexer {
	l := &Lexer{
		source:    source,
		modes:     []mode{{kind: modeNormal}},
		lineStart: true,
		Logger:    types.Logger{L: logger},
	}
	l.Log(slog.LevelDebug, "lexer initialized", slog.Int("bytes", len(source)))
	return l
}

// Diagnostics returns a copy of all collected diagnostics.
func (l *Lexer) Diagnostics() []types.SpanDiagnostic {
	return slices.Clone(l.diagnostics)
}

// Directives returns the token streams of #if and #elif lines in source
// order. Each stream starts with the '#' token and ends with TokEOF.
func (l *Lexer) Directives() [][]syntax.Token {
	return l.directives
}

func (l *Lexer) traceToken(tok syntax.Token) {
	if l.TraceEnabled() {
		l.Trace("token",
			slog.String("kind", tok.Kind.String()),
			slog.Int("start", int(tok.Span.Start)),
			slog.Int("end", int(tok.Span.End)))
	}
}

// Tokenize consumes all source text and returns the token stream
// along with any diagnostics generated during lexing.
func (l *Lexer) Tokenize() ([]syntax.Token, []types.SpanDiagnostic) {
	estimatedTokens := max(len(l.source)/4, 64)
	tokens := make([]syntax.Token, 0, estimatedTokens)
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == syntax.TokEOF {
			break
		}
	}
	l.Log(slog.LevelDebug, "tokenization complete",
		slog.Int("tokens", len(tokens)),
		slog.Int("directives", len(l.directives)),
		slog.Int("diagnostics", len(l.diagnostics)))
	return tokens, l.diagnostics
}

// NextToken advances the lexer and returns the next token.
// Returns TokEOF when all input is consumed.
func (l *Lexer) NextToken() syntax.Token {
	for {
		var (
			tok   syntax.Token
			retry bool
		)
		switch l.top().kind {
		case modeInterpText:
			tok, retry = l.scanInterpolatedText()
		case modeInterpFormat:
			tok, retry = l.scanFormatText()
		default:
			tok, retry = l.nextNormalToken()
		}
		if !retry {
			return tok
		}
	}
}

func (l *Lexer) top() *mode {
	return &l.modes[len(l.modes)-1]
}

func (l *Lexer) push(m mode) {
	l.modes = append(l.modes, m)
}

func (l *Lexer) pop() {
	if len(l.modes) > 1 {
		l.modes = l.modes[:len(l.modes)-1]
	}
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	return l.source[l.pos], true
}

func (l *Lexer) peekAt(offset int) (byte, bool) {
	idx := l.pos + offset
	if idx >= len(l.source) {
		return 0, false
	}
	return l.source[idx], true
}

func (l *Lexer) peekAtEquals(offset int, expected byte) bool {
	b, ok := l.peekAt(offset)
	return ok && b == expected
}

func (l *Lexer) advance() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	b := l.source[l.pos]
	l.pos++
	return b, true
}

func (l *Lexer) error(code string, span types.Span, message string) {
	l.diagnostics = append(l.diagnostics, types.SpanDiagnostic{
		Severity: types.SeverityError,
		Code:     code,
		Span:     span,
		Message:  message,
	})
}

func (l *Lexer) spanFrom(start int) types.Span {
	return types.Span{
		Start: types.ByteOffset(start),
		End:   types.ByteOffset(l.pos),
	}
}

func (l *Lexer) token(kind syntax.TokenKind, start int) syntax.Token {
	tok := syntax.Token{
		Kind: kind,
		Text: string(l.source[start:l.pos]),
		Span: l.spanFrom(start),
	}
	l.lineStart = false
	l.traceToken(tok)
	return tok
}

// skipTrivia skips whitespace and comments.
func (l *Lexer) skipTrivia() {
	for {
		b, ok := l.peek()
		if !ok {
			return
		}
		switch {
		case b == '\n':
			l.advance()
			l.lineStart = true
		case b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v':
			l.advance()
		case b == '/' && l.peekAtEquals(1, '/'):
			l.skipToEOL()
		case b == '/' && l.peekAtEquals(1, '*'):
			l.skipBlockComment()
		default:
			return
		}
	}
}

// skipToEOL advances to the next newline without consuming it.
func (l *Lexer) skipToEOL() {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			return
		}
		l.advance()
	}
}

func (l *Lexer) skipBlockComment() {
	start := l.pos
	l.pos += 2
	for {
		b, ok := l.advance()
		if !ok {
			l.error(types.DiagUnterminatedComment, l.spanFrom(start), "unterminated block comment")
			return
		}
		if b == '\n' {
			l.lineStart = true
		}
		if b == '*' && l.peekAtEquals(0, '/') {
			l.advance()
			return
		}
	}
}

// nextNormalToken scans the next token outside interpolated string text.
// Returns (token, retry) where retry=true means the caller should loop.
func (l *Lexer) nextNormalToken() (syntax.Token, bool) {
	l.skipTrivia()

	start := l.pos
	b, ok := l.peek()
	if !ok {
		if len(l.modes) > 1 {
			l.error(types.DiagUnterminatedString, l.spanFrom(start), "unterminated interpolated string")
			l.modes = l.modes[:1]
		}
		return l.token(syntax.TokEOF, start), false
	}

	if b == '#' && l.lineStart && len(l.modes) == 1 {
		l.scanDirective()
		return syntax.Token{}, true
	}

	switch {
	case b == '"':
		return l.scanString(false), false
	case b == '\'':
		return l.scanChar(), false
	case b == '@' && l.peekAtEquals(1, '"'):
		l.advance()
		return l.scanString(true), false
	case b == '$' && l.peekAtEquals(1, '"'):
		l.pos += 2
		return l.startInterpolated(start, false), false
	case (b == '$' && l.peekAtEquals(1, '@') || b == '@' && l.peekAtEquals(1, '$')) && l.peekAtEquals(2, '"'):
		l.pos += 3
		return l.startInterpolated(start, true), false
	case b == '@' && l.isIdentStartAt(1):
		l.advance()
		return l.scanIdentifier(start), false
	case isDigit(b) || b == '.' && l.isDigitAt(1):
		return l.scanNumber(), false
	case l.isIdentStartAt(0):
		return l.scanIdentifier(start), false
	}

	if kind, n := l.matchPunctuation(); n > 0 {
		l.pos += n
		tok := l.token(kind, start)
		if m := l.top(); m.kind == modeInterpHole {
			return l.trackHole(m, tok), false
		}
		return tok, false
	}

	_, size := utf8.DecodeRune(l.source[l.pos:])
	l.pos += size
	l.error(types.DiagUnexpectedChar, l.spanFrom(start),
		fmt.Sprintf("unexpected character: %q", l.source[start:l.pos]))
	return syntax.Token{}, true
}

// trackHole updates hole nesting for a punctuation token scanned inside an
// interpolation. A top-level '}' closes the hole and a top-level ':'
// switches to format-specifier text.
func (l *Lexer) trackHole(m *mode, tok syntax.Token) syntax.Token {
	switch tok.Kind {
	case syntax.TokOpenParen, syntax.TokOpenBracket, syntax.TokOpenBrace:
		m.depth++
	case syntax.TokCloseParen, syntax.TokCloseBracket:
		if m.depth > 0 {
			m.depth--
		}
	case syntax.TokCloseBrace:
		if m.depth == 0 {
			l.pop()
		} else {
			m.depth--
		}
	case syntax.TokColon:
		if m.depth == 0 {
			m.kind = modeInterpFormat
		}
	}
	return tok
}

// punctuation lists operator spellings, longest first within each leading
// byte. '>' is never combined with a following '>' here.
var punctuation = []struct {
	text string
	kind syntax.TokenKind
}{
	{"??=", syntax.TokQuestionQuestionEquals},
	{"<<=", syntax.TokLessThanLessThanEquals},
	{"??", syntax.TokQuestionQuestion},
	{"=>", syntax.TokEqualsGreaterThan},
	{"->", syntax.TokMinusGreaterThan},
	{"==", syntax.TokEqualsEquals},
	{"!=", syntax.TokExclamationEquals},
	{"<=", syntax.TokLessThanEquals},
	{">=", syntax.TokGreaterThanEquals},
	{"<<", syntax.TokLessThanLessThan},
	{"++", syntax.TokPlusPlus},
	{"--", syntax.TokMinusMinus},
	{"&&", syntax.TokAmpersandAmpersand},
	{"||", syntax.TokBarBar},
	{"+=", syntax.TokPlusEquals},
	{"-=", syntax.TokMinusEquals},
	{"*=", syntax.TokAsteriskEquals},
	{"/=", syntax.TokSlashEquals},
	{"%=", syntax.TokPercentEquals},
	{"&=", syntax.TokAmpersandEquals},
	{"|=", syntax.TokBarEquals},
	{"^=", syntax.TokCaretEquals},
	{"::", syntax.TokColonColon},
	{"..", syntax.TokDotDot},
	{"(", syntax.TokOpenParen},
	{")", syntax.TokCloseParen},
	{"[", syntax.TokOpenBracket},
	{"]", syntax.TokCloseBracket},
	{"{", syntax.TokOpenBrace},
	{"}", syntax.TokCloseBrace},
	{".", syntax.TokDot},
	{",", syntax.TokComma},
	{";", syntax.TokSemicolon},
	{":", syntax.TokColon},
	{"?", syntax.TokQuestion},
	{"#", syntax.TokHash},
	{"=", syntax.TokEquals},
	{"<", syntax.TokLessThan},
	{">", syntax.TokGreaterThan},
	{"+", syntax.TokPlus},
	{"-", syntax.TokMinus},
	{"*", syntax.TokAsterisk},
	{"/", syntax.TokSlash},
	{"%", syntax.TokPercent},
	{"&", syntax.TokAmpersand},
	{"|", syntax.TokBar},
	{"^", syntax.TokCaret},
	{"!", syntax.TokExclamation},
	{"~", syntax.TokTilde},
}

func (l *Lexer) matchPunctuation() (syntax.TokenKind, int) {
	rest := l.source[l.pos:]
	for _, p := range punctuation {
		if len(rest) >= len(p.text) && string(rest[:len(p.text)]) == p.text {
			return p.kind, len(p.text)
		}
	}
	return syntax.TokNone, 0
}

func (l *Lexer) isIdentStartAt(offset int) bool {
	if l.pos+offset >= len(l.source) {
		return false
	}
	r, _ := utf8.DecodeRune(l.source[l.pos+offset:])
	return r == '_' || unicode.IsLetter(r)
}

func (l *Lexer) isDigitAt(offset int) bool {
	b, ok := l.peekAt(offset)
	return ok && isDigit(b)
}

// scanIdentifier scans an identifier or reserved keyword. A leading '@'
// has already been consumed when start < l.pos; such identifiers are never
// keywords.
func (l *Lexer) scanIdentifier(start int) syntax.Token {
	verbatim := l.pos > start
	for l.pos < len(l.source) {
		r, size := utf8.DecodeRune(l.source[l.pos:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.pos += size
	}
	if !verbatim {
		if kind, ok := LookupKeyword(string(l.source[start:l.pos])); ok {
			return l.token(kind, start)
		}
	}
	return l.token(syntax.TokIdentifier, start)
}

func (l *Lexer) scanNumber() syntax.Token {
	start := l.pos
	b, _ := l.peek()
	next, _ := l.peekAt(1)

	switch {
	case b == '0' && (next == 'x' || next == 'X'):
		l.pos += 2
		l.consumeWhile(isHexDigit)
		l.consumeWhile(isIntegerSuffix)
		return l.token(syntax.TokNumericLiteral, start)
	case b == '0' && (next == 'b' || next == 'B'):
		l.pos += 2
		l.consumeWhile(func(c byte) bool { return c == '0' || c == '1' || c == '_' })
		l.consumeWhile(isIntegerSuffix)
		return l.token(syntax.TokNumericLiteral, start)
	}

	l.consumeWhile(isDecimalDigit)
	if l.peekAtEquals(0, '.') && l.isDigitAt(1) {
		l.advance()
		l.consumeWhile(isDecimalDigit)
	}
	if c, ok := l.peek(); ok && (c == 'e' || c == 'E') {
		sign, _ := l.peekAt(1)
		switch {
		case isDigit(sign):
			l.advance()
			l.consumeWhile(isDecimalDigit)
		case (sign == '+' || sign == '-') && l.isDigitAt(2):
			l.pos += 2
			l.consumeWhile(isDecimalDigit)
		}
	}
	l.consumeWhile(isRealSuffix)
	return l.token(syntax.TokNumericLiteral, start)
}

func (l *Lexer) consumeWhile(pred func(byte) bool) {
	for {
		b, ok := l.peek()
		if !ok || !pred(b) {
			return
		}
		l.advance()
	}
}

// scanString scans a regular or verbatim string literal. For verbatim
// strings the '@' has already been consumed.
func (l *Lexer) scanString(verbatim bool) syntax.Token {
	start := l.pos
	if verbatim {
		start--
	}
	l.advance() // opening quote
	for {
		b, ok := l.peek()
		if !ok || (!verbatim && b == '\n') {
			l.error(types.DiagUnterminatedString, l.spanFrom(start), "unterminated string literal")
			return l.token(syntax.TokStringLiteral, start)
		}
		l.advance()
		switch {
		case b == '\\' && !verbatim:
			l.advance()
		case b == '"' && verbatim && l.peekAtEquals(0, '"'):
			l.advance()
		case b == '"':
			return l.token(syntax.TokStringLiteral, start)
		}
	}
}

func (l *Lexer) scanChar() syntax.Token {
	start := l.pos
	l.advance() // opening quote
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			l.error(types.DiagUnterminatedString, l.spanFrom(start), "unterminated character literal")
			return l.token(syntax.TokCharLiteral, start)
		}
		l.advance()
		switch b {
		case '\\':
			l.advance()
		case '\'':
			return l.token(syntax.TokCharLiteral, start)
		}
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isDecimalDigit(b byte) bool {
	return isDigit(b) || b == '_'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') || b == '_'
}

func isIntegerSuffix(b byte) bool {
	return b == 'u' || b == 'U' || b == 'l' || b == 'L'
}

func isRealSuffix(b byte) bool {
	switch b {
	case 'u', 'U', 'l', 'L', 'f', 'F', 'd', 'D', 'm', 'M':
		return true
	}
	return false
}
