// Package semantic assigns built-in types to expressions and answers the
// reassociation question the parenthesis engine asks about binary
// operators of equal precedence.
//
// The model is flow-insensitive. A name's type is recorded
// from every declaration of that name in the tree; a name declared with
// two different types, or never declared, is Unknown. Unknown operands
// never resolve to a built-in operator, so every question about them is
// answered conservatively.
package semantic

import (
	"log/slog"

	"github.com/csfmt/unparen/internal/types"
	"github.com/csfmt/unparen/syntax"
)

// Model holds the declared types of the names in one tree.
type Model struct {
	types.Logger
	names   map[string]Type
	checked bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used while building the model.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.L = logger }
}

// WithCheckedArithmetic makes checked the default overflow context, as the
// compiler's -checked switch does. checked and unchecked blocks and
// expressions still override it.
func WithCheckedArithmetic(checked bool) Option {
	return func(m *Model) { m.checked = checked }
}

// New records the declarations found under root. Parent links must
// already be set.
func New(root syntax.Node, opts ...Option) *Model {
	m := &Model{names: make(map[string]Type)}
	for _, opt := range opts {
		opt(m)
	}
	syntax.Inspect(root, func(n syntax.Node) bool {
		m.collect(n)
		return true
	})
	m.Log(slog.LevelDebug, "semantic model built", slog.Int("names", len(m.names)))
	return m
}

func (m *Model) declare(name string, t Type) {
	if name == "" {
		return
	}
	if prev, ok := m.names[name]; ok && prev != t {
		t = Unknown
	}
	m.names[name] = t
	if m.TraceEnabled() {
		m.Trace("declare", slog.String("name", name), slog.String("type", t.String()))
	}
}

// declareDesignation records every variable a designation introduces.
// Only a single designation can carry the declared type.
func (m *Model) declareDesignation(d syntax.VariableDesignation, t Type) {
	switch d := d.(type) {
	case *syntax.SingleVariableDesignation:
		m.declare(d.Ident.Text, t)
	case *syntax.ParenthesizedVariableDesignation:
		for _, v := range d.Variables {
			m.declareDesignation(v, Unknown)
		}
	}
}

func (m *Model) collect(n syntax.Node) {
	switch n := n.(type) {
	case *syntax.VariableDeclaration:
		implicit := isVar(n.Type)
		declared := FromSyntax(n.Type)
		for _, v := range n.Variables {
			t := declared
			if implicit {
				t = Unknown
				if v.Initializer != nil {
					t = m.TypeOf(v.Initializer.Value)
				}
			}
			m.declare(v.Ident.Text, t)
		}
	case *syntax.ForEachStatement:
		m.declare(n.Ident.Text, FromSyntax(n.Type))
	case *syntax.Parameter:
		t := Unknown
		if n.Type != nil {
			t = FromSyntax(n.Type)
		}
		m.declare(n.Ident.Text, t)
	case *syntax.DeclarationExpression:
		t := FromSyntax(n.Type)
		if _, ok := n.Designation.(*syntax.ParenthesizedVariableDesignation); ok {
			t = Unknown
		}
		m.declareDesignation(n.Designation, t)
	case *syntax.DeclarationPattern:
		m.declareDesignation(n.Designation, FromSyntax(n.Type))
	case *syntax.VarPattern:
		m.declareDesignation(n.Designation, Unknown)
	case *syntax.RecursivePattern:
		if n.Designation != nil {
			m.declareDesignation(n.Designation, Unknown)
		}
	case *syntax.CatchDeclaration:
		m.declare(n.Ident.Text, Unknown)
	case *syntax.LocalFunctionStatement:
		m.declare(n.Ident.Text, Unknown)
	case *syntax.FromClause:
		t := Unknown
		if n.Type != nil {
			t = FromSyntax(n.Type)
		}
		m.declare(n.Ident.Text, t)
	case *syntax.LetClause:
		m.declare(n.Ident.Text, m.TypeOf(n.Expression))
	}
}

func isVar(t syntax.TypeSyntax) bool {
	id, ok := t.(*syntax.IdentifierName)
	return ok && id.Ident.Text == "var"
}

// Lookup returns the recorded type of a name.
func (m *Model) Lookup(name string) Type {
	return m.names[name]
}

// TypeOf returns the static type of e, or Unknown.
func (m *Model) TypeOf(e syntax.Expression) Type {
	switch e := e.(type) {
	case nil:
		return Unknown
	case *syntax.LiteralExpression:
		return literalType(e.Token)
	case *syntax.IdentifierName:
		return m.names[e.Ident.Text]
	case *syntax.ParenthesizedExpression:
		return m.TypeOf(e.Expression)
	case *syntax.CheckedExpression:
		return m.TypeOf(e.Expression)
	case *syntax.CastExpression:
		return FromSyntax(e.Type)
	case *syntax.InterpolatedStringExpression:
		return String
	case *syntax.MemberAccessExpression:
		return memberType(e)
	case *syntax.PrefixUnaryExpression:
		return m.unaryType(e)
	case *syntax.PostfixUnaryExpression:
		switch e.Kind() {
		case syntax.KindPostIncrementExpression, syntax.KindPostDecrementExpression:
			if t := m.TypeOf(e.Operand); t.IsNumeric() {
				return t
			}
		}
		return Unknown
	case *syntax.BinaryExpression:
		if e.Kind() == syntax.KindIsExpression {
			return Bool
		}
		if op, ok := m.Operator(e); ok {
			return op.Result
		}
		return Unknown
	case *syntax.AssignmentExpression:
		return m.TypeOf(e.Left)
	case *syntax.ConditionalExpression:
		if t := m.TypeOf(e.WhenTrue); t != Unknown && t == m.TypeOf(e.WhenFalse) {
			return t
		}
		return Unknown
	case *syntax.IsPatternExpression:
		return Bool
	case *syntax.TypeKeywordExpression:
		switch e.Kind() {
		case syntax.KindDefaultExpression:
			return FromSyntax(e.Type)
		case syntax.KindSizeOfExpression:
			return Int
		}
	}
	return Unknown
}

// memberType resolves the MinValue and MaxValue constants of the built-in
// numeric types.
func memberType(e *syntax.MemberAccessExpression) Type {
	if e.Kind() != syntax.KindSimpleMemberAccessExpression {
		return Unknown
	}
	owner := FromSyntax(asType(e.Expression))
	if !owner.IsNumeric() {
		return Unknown
	}
	switch e.Name.Identifier().Text {
	case "MinValue", "MaxValue":
		return owner
	}
	return Unknown
}

func asType(e syntax.Expression) syntax.TypeSyntax {
	t, _ := e.(syntax.TypeSyntax)
	return t
}

func (m *Model) unaryType(e *syntax.PrefixUnaryExpression) Type {
	operand := m.TypeOf(e.Operand)
	switch e.Kind() {
	case syntax.KindUnaryPlusExpression, syntax.KindUnaryMinusExpression:
		t := promoteUnary(operand)
		if e.Kind() == syntax.KindUnaryMinusExpression {
			switch t {
			case UInt:
				return Long
			case ULong:
				return Unknown
			}
		}
		return t
	case syntax.KindBitwiseNotExpression:
		if t := promoteUnary(operand); t.IsIntegral() {
			return t
		}
	case syntax.KindLogicalNotExpression:
		if operand == Bool {
			return Bool
		}
	case syntax.KindPreIncrementExpression, syntax.KindPreDecrementExpression:
		if operand.IsNumeric() {
			return operand
		}
	}
	return Unknown
}

// InCheckedContext reports whether arithmetic at n is evaluated with
// overflow checking. The nearest enclosing checked or unchecked
// expression or block decides; without one the model's default applies.
func (m *Model) InCheckedContext(n syntax.Node) bool {
	for a := range syntax.Ancestors(n) {
		switch a.Kind() {
		case syntax.KindCheckedExpression, syntax.KindCheckedStatement:
			return true
		case syntax.KindUncheckedExpression, syntax.KindUncheckedStatement:
			return false
		}
	}
	return m.checked
}
