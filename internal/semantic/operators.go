package semantic

import (
	"log/slog"

	"github.com/csfmt/unparen/syntax"
)

// Operator is a resolved built-in binary operator.
type Operator struct {
	Kind    syntax.Kind
	Operand Type // type both operands convert to
	Result  Type
}

// Operator resolves the built-in operator a binary expression binds to.
// It reports false when an operand type is unknown or when no built-in
// operator applies, in which case a user-defined operator may be chosen.
func (m *Model) Operator(b *syntax.BinaryExpression) (Operator, bool) {
	k := b.Kind()
	l, r := m.TypeOf(b.Left), m.TypeOf(b.Right)
	if l == Unknown || r == Unknown {
		return Operator{}, false
	}
	op := Operator{Kind: k}

	switch k {
	case syntax.KindAddExpression:
		if l == String || r == String {
			// string concatenation accepts any operand, but only built-in
			// types are known not to overload +
			op.Operand, op.Result = String, String
			return op, true
		}
		fallthrough
	case syntax.KindSubtractExpression, syntax.KindMultiplyExpression,
		syntax.KindDivideExpression, syntax.KindModuloExpression:
		t := promote(l, r)
		op.Operand, op.Result = t, t

	case syntax.KindLeftShiftExpression, syntax.KindRightShiftExpression,
		syntax.KindUnsignedRightShiftExpression:
		t := promoteUnary(l)
		if !t.IsIntegral() || promoteUnary(r) != Int {
			return Operator{}, false
		}
		op.Operand, op.Result = t, t

	case syntax.KindLessThanExpression, syntax.KindLessThanOrEqualExpression,
		syntax.KindGreaterThanExpression, syntax.KindGreaterThanOrEqualExpression:
		op.Operand, op.Result = promote(l, r), Bool

	case syntax.KindEqualsExpression, syntax.KindNotEqualsExpression:
		switch {
		case l == Bool && r == Bool:
			op.Operand = Bool
		case l == String && r == String:
			op.Operand = String
		default:
			op.Operand = promote(l, r)
		}
		op.Result = Bool

	case syntax.KindBitwiseAndExpression, syntax.KindBitwiseOrExpression,
		syntax.KindExclusiveOrExpression:
		if l == Bool && r == Bool {
			op.Operand, op.Result = Bool, Bool
			return op, true
		}
		t := promote(l, r)
		if !t.IsIntegral() {
			return Operator{}, false
		}
		op.Operand, op.Result = t, t

	case syntax.KindLogicalAndExpression, syntax.KindLogicalOrExpression:
		if l != Bool || r != Bool {
			return Operator{}, false
		}
		op.Operand, op.Result = Bool, Bool

	default:
		return Operator{}, false
	}

	if op.Operand == Unknown {
		return Operator{}, false
	}
	return op, true
}

// IsSafeToReassociate reports whether a op (b op c), with inner being
// (b op c) and parent the whole expression, may be rewritten as
// a op b op c, which parses as (a op b) op c.
//
// Both expressions must bind the same built-in operator and every operand
// must already have the operator's type. Floating-point and decimal
// operators are never regrouped, nor is integral addition or
// multiplication in a checked context.
func (m *Model) IsSafeToReassociate(inner, parent *syntax.BinaryExpression) bool {
	safe := m.isSafeToReassociate(inner, parent)
	if m.TraceEnabled() {
		m.Trace("reassociate",
			slog.String("operator", parent.OperatorToken.Text),
			slog.Bool("safe", safe))
	}
	return safe
}

func (m *Model) isSafeToReassociate(inner, parent *syntax.BinaryExpression) bool {
	if inner == nil || parent == nil || inner.Kind() != parent.Kind() {
		return false
	}
	outer, ok := m.Operator(parent)
	if !ok {
		return false
	}
	in, ok := m.Operator(inner)
	if !ok || in != outer {
		return false
	}
	if outer.Operand != outer.Result {
		return false
	}
	for _, e := range []syntax.Expression{parent.Left, inner.Left, inner.Right} {
		if m.TypeOf(e) != outer.Operand {
			return false
		}
	}

	t := outer.Result
	if t.IsFloatingPoint() || t == Decimal {
		return false
	}
	switch outer.Kind {
	case syntax.KindAddExpression, syntax.KindMultiplyExpression:
		if t.IsIntegral() && m.InCheckedContext(parent) {
			return false
		}
	}
	return true
}
