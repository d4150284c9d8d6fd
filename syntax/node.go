// Package syntax defines the immutable, parent-linked syntax tree the
// parenthesis analysis runs over.
//
// Trees are produced by the parser in internal/parser or built by hand.
// After construction, call SetParents on the root so that navigation
// (Parent, PreviousToken, Ancestors) works.
package syntax

import (
	"iter"

	"github.com/csfmt/unparen/internal/types"
)

// Span is a half-open byte range into the source text.
type Span = types.Span

// Node is a syntax tree node. The set of implementations is closed.
type Node interface {
	Kind() Kind
	Parent() Node
	// Children returns the node's tokens and child nodes in source order.
	// Absent optional children are omitted.
	Children() []Child
	setParent(Node)
}

// Expression is a node that can appear in expression position.
type Expression interface {
	Node
	expression()
}

// TypeSyntax is an expression that names a type.
type TypeSyntax interface {
	Expression
	typeSyntax()
}

// Name is a possibly qualified name.
type Name interface {
	TypeSyntax
	name()
}

// SimpleName is an identifier with optional type arguments.
type SimpleName interface {
	Name
	simpleName()
	Identifier() Token
}

// Pattern is a node that can appear in pattern position.
type Pattern interface {
	Node
	pattern()
}

// Statement is a node that can appear in a statement list.
type Statement interface {
	Node
	statement()
}

// Child is one element of a node's child list: either a token or a node.
type Child struct {
	Node  Node
	Token Token
}

// IsToken reports whether c holds a token.
func (c Child) IsToken() bool { return c.Node == nil }

type parentLink struct {
	parent Node
}

func (p *parentLink) Parent() Node { return p.parent }
func (p *parentLink) setParent(parent Node) { p.parent = parent }

type childList []Child

func (l *childList) tok(t Token) {
	if t.Kind != TokNone {
		*l = append(*l, Child{Token: t})
	}
}

// node appends n. Callers must not pass typed nil pointers; optional
// pointer fields are checked at the call site.
func (l *childList) node(n Node) {
	if n != nil {
		*l = append(*l, Child{Node: n})
	}
}

// separated interleaves items with their separator tokens.
func separated[T Node](l *childList, items []T, seps []Token) {
	for i, it := range items {
		l.node(it)
		if i < len(seps) {
			l.tok(seps[i])
		}
	}
	for i := len(items); i < len(seps); i++ {
		l.tok(seps[i])
	}
}

// SetParents links every node under root to its parent. The root's own
// parent is left unchanged.
func SetParents(root Node) {
	for _, c := range root.Children() {
		if c.Node != nil {
			c.Node.setParent(root)
			SetParents(c.Node)
		}
	}
	if cu, ok := root.(*CompilationUnit); ok {
		for _, d := range cu.Directives {
			d.setParent(cu)
			SetParents(d)
		}
	}
}

// Inspect traverses the tree rooted at n in depth-first order, calling f
// for each node. If f returns false, the children of that node are skipped.
// Directive trivia attached to a compilation unit are visited after its
// statements.
func Inspect(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	for _, c := range n.Children() {
		if c.Node != nil {
			Inspect(c.Node, f)
		}
	}
	if cu, ok := n.(*CompilationUnit); ok {
		for _, d := range cu.Directives {
			Inspect(d, f)
		}
	}
}

// Ancestors yields the parents of n from nearest to root.
func Ancestors(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for p := n.Parent(); p != nil; p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}

// LogicalParent returns n's parent, looking through a ConstantPattern
// wrapper so that an expression used as a constant pattern sees the
// construct holding the pattern.
func LogicalParent(n Node) Node {
	p := n.Parent()
	if p != nil && p.Kind() == KindConstantPattern {
		return p.Parent()
	}
	return p
}

// FirstToken returns the first token under n that exists in source text.
func FirstToken(n Node) (Token, bool) {
	for _, c := range n.Children() {
		if c.Node == nil {
			if c.Token.Present() {
				return c.Token, true
			}
			continue
		}
		if t, ok := FirstToken(c.Node); ok {
			return t, true
		}
	}
	return Token{}, false
}

// LastToken returns the last token under n that exists in source text.
func LastToken(n Node) (Token, bool) {
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if c.Node == nil {
			if c.Token.Present() {
				return c.Token, true
			}
			continue
		}
		if t, ok := LastToken(c.Node); ok {
			return t, true
		}
	}
	return Token{}, false
}

// PreviousToken returns the source token immediately preceding n, skipping
// missing tokens. Navigation does not leave directive trivia.
func PreviousToken(n Node) (Token, bool) {
	cur := n
	for p := cur.Parent(); p != nil; cur, p = p, p.Parent() {
		children := p.Children()
		idx := -1
		for i, c := range children {
			if c.Node == cur {
				idx = i
				break
			}
		}
		if idx < 0 {
			return Token{}, false
		}
		for i := idx - 1; i >= 0; i-- {
			c := children[i]
			if c.Node == nil {
				if c.Token.Present() {
					return c.Token, true
				}
				continue
			}
			if t, ok := LastToken(c.Node); ok {
				return t, true
			}
		}
	}
	return Token{}, false
}

// SpanOf returns the span covering n's source tokens. A node made only of
// missing tokens yields an empty span.
func SpanOf(n Node) Span {
	first, ok := FirstToken(n)
	if !ok {
		return Span{}
	}
	last, _ := LastToken(n)
	return first.Span.Cover(last.Span)
}

// IndexInParent returns n's position among its parent's node children,
// or -1 if n has no parent.
func IndexInParent(n Node) int {
	p := n.Parent()
	if p == nil {
		return -1
	}
	idx := 0
	for _, c := range p.Children() {
		if c.Node == nil {
			continue
		}
		if c.Node == n {
			return idx
		}
		idx++
	}
	return -1
}

// Siblings returns the node children of n's parent, in order.
func Siblings(n Node) []Node {
	p := n.Parent()
	if p == nil {
		return nil
	}
	var out []Node
	for _, c := range p.Children() {
		if c.Node != nil {
			out = append(out, c.Node)
		}
	}
	return out
}
