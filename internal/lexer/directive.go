package lexer

import (
	"log/slog"

	"github.com/csfmt/unparen/syntax"
)

// scanDirective consumes one preprocessor line starting at '#'. The
// condition of #if and #elif is tokenized into its own stream; every other
// directive is skipped.
func (l *Lexer) scanDirective() {
	start := l.pos
	eol := len(l.source)
	for i := l.pos; i < len(l.source); i++ {
		if l.source[i] == '\n' {
			eol = i
			break
		}
	}

	sub := &Lexer{
		source: l.source[:eol],
		pos:    l.pos,
		modes:  []mode{{kind: modeNormal}},
		Logger: l.Logger,
	}
	hash := sub.NextToken()
	name := sub.NextToken()
	if name.Kind == syntax.TokKwIf || name.IsContextual("elif") {
		if name.Kind == syntax.TokKwIf {
			name.Kind = syntax.TokIdentifier
		}
		stream := []syntax.Token{hash, name}
		for {
			tok := sub.NextToken()
			stream = append(stream, tok)
			if tok.Kind == syntax.TokEOF {
				break
			}
		}
		l.directives = append(l.directives, stream)
		l.diagnostics = append(l.diagnostics, sub.diagnostics...)
		l.Log(slog.LevelDebug, "directive",
			slog.String("name", name.Text),
			slog.Int("offset", start),
			slog.Int("tokens", len(stream)))
	}
	l.pos = eol
}
