package lexer

import (
	"github.com/csfmt/unparen/internal/types"
	"github.com/csfmt/unparen/syntax"
)

// startInterpolated emits the $" (or $@") start token and enters
// interpolated text mode. The opening characters are already consumed.
func (l *Lexer) startInterpolated(start int, verbatim bool) syntax.Token {
	tok := l.token(syntax.TokInterpolatedStringStart, start)
	l.push(mode{kind: modeInterpText, verbatim: verbatim})
	return tok
}

// scanInterpolatedText scans literal text up to the next hole or the
// closing quote. Doubled braces are literal.
func (l *Lexer) scanInterpolatedText() (syntax.Token, bool) {
	start := l.pos
	verbatim := l.top().verbatim
	for {
		b, ok := l.peek()
		if !ok || (!verbatim && b == '\n') {
			l.error(types.DiagUnterminatedString, l.spanFrom(start), "unterminated interpolated string")
			l.pop()
			if l.pos > start {
				return l.token(syntax.TokInterpolatedStringText, start), false
			}
			return syntax.Token{}, true
		}
		switch {
		case b == '"' && verbatim && l.peekAtEquals(1, '"'):
			l.pos += 2
		case b == '"':
			if l.pos > start {
				return l.token(syntax.TokInterpolatedStringText, start), false
			}
			l.advance()
			l.pop()
			return l.token(syntax.TokInterpolatedStringEnd, start), false
		case b == '{' && l.peekAtEquals(1, '{'), b == '}' && l.peekAtEquals(1, '}'):
			l.pos += 2
		case b == '{':
			if l.pos > start {
				return l.token(syntax.TokInterpolatedStringText, start), false
			}
			l.advance()
			l.push(mode{kind: modeInterpHole, verbatim: verbatim})
			return l.token(syntax.TokOpenBrace, start), false
		case b == '\\' && !verbatim:
			l.pos += 2
			if l.pos > len(l.source) {
				l.pos = len(l.source)
			}
		default:
			l.advance()
		}
	}
}

// scanFormatText scans a format specifier up to the closing brace of its
// hole, then emits the closing brace and returns to text mode.
func (l *Lexer) scanFormatText() (syntax.Token, bool) {
	start := l.pos
	for {
		b, ok := l.peek()
		if !ok || b == '"' || b == '\n' {
			l.error(types.DiagUnterminatedString, l.spanFrom(start), "unterminated interpolation format")
			l.pop()
			if l.pos > start {
				return l.token(syntax.TokInterpolatedStringText, start), false
			}
			return syntax.Token{}, true
		}
		if b == '}' {
			if l.pos > start {
				return l.token(syntax.TokInterpolatedStringText, start), false
			}
			l.advance()
			l.pop()
			return l.token(syntax.TokCloseBrace, start), false
		}
		l.advance()
	}
}
