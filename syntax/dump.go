package syntax

import "strings"

// Dump renders n in a compact nested form for tests and diagnostics.
// Names, literals and this/base print their token text and generic names
// print as name<args>. Other nodes print their kind, without any
// Expression suffix, followed by their child nodes in parentheses. A node
// with no child nodes prints its identifier, literal and keyword tokens
// instead. Missing leaf tokens print as <missing>.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n)
	return b.String()
}

func dump(b *strings.Builder, n Node) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	switch leaf := n.(type) {
	case *IdentifierName:
		writeLeaf(b, leaf.Ident)
		return
	case *LiteralExpression:
		writeLeaf(b, leaf.Token)
		return
	case *PredefinedType:
		writeLeaf(b, leaf.Keyword)
		return
	case *ThisExpression:
		writeLeaf(b, leaf.Token)
		return
	case *BaseExpression:
		writeLeaf(b, leaf.Token)
		return
	case *GenericName:
		writeLeaf(b, leaf.Ident)
		b.WriteByte('<')
		if leaf.TypeArguments != nil {
			for i, arg := range leaf.TypeArguments.Arguments {
				if i > 0 {
					b.WriteString(", ")
				}
				dump(b, arg)
			}
		}
		b.WriteByte('>')
		return
	}

	b.WriteString(strings.TrimSuffix(n.Kind().String(), "Expression"))
	b.WriteByte('(')
	children := n.Children()
	if !hasNodeChild(children) {
		writeWords(b, children)
		b.WriteByte(')')
		return
	}
	first := true
	for _, c := range children {
		if c.Node == nil {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		dump(b, c.Node)
	}
	b.WriteByte(')')
}

func writeLeaf(b *strings.Builder, t Token) {
	if t.Missing {
		b.WriteString("<missing>")
		return
	}
	b.WriteString(t.Text)
}

func hasNodeChild(children []Child) bool {
	for _, c := range children {
		if c.Node != nil {
			return true
		}
	}
	return false
}

func writeWords(b *strings.Builder, children []Child) {
	first := true
	for _, c := range children {
		t := c.Token
		if !t.Present() {
			continue
		}
		switch {
		case t.Kind == TokIdentifier, t.Kind == TokNumericLiteral, t.Kind == TokStringLiteral,
			t.Kind == TokCharLiteral, t.Kind == TokInterpolatedStringText, t.Kind.IsKeyword():
		default:
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(t.Text)
	}
}
