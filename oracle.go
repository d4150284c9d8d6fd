package unparen

import "github.com/csfmt/unparen/syntax"

// Oracle answers whether regrouping two applications of the same
// associative operator preserves meaning. inner is the parenthesized right
// operand of parent: parent is a op (b op c) and inner is b op c.
//
// Reassociation is sound only when the operator is associative for the
// operand types involved and evaluating the operands has no observable
// side effects that reordering could expose. Implementations answer false
// whenever they cannot establish both.
type Oracle interface {
	IsSafeToReassociate(inner, parent *syntax.BinaryExpression) bool
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(inner, parent *syntax.BinaryExpression) bool

// IsSafeToReassociate calls f(inner, parent).
func (f OracleFunc) IsSafeToReassociate(inner, parent *syntax.BinaryExpression) bool {
	return f(inner, parent)
}

// NeverReassociate is an Oracle that refuses every regrouping. With it,
// parentheses around an associative right operand are always kept.
var NeverReassociate Oracle = OracleFunc(func(_, _ *syntax.BinaryExpression) bool { return false })

// reassociates asks oracle about inner and parent. A nil oracle refuses.
func reassociates(oracle Oracle, inner, parent *syntax.BinaryExpression) bool {
	if oracle == nil {
		return false
	}
	return oracle.IsSafeToReassociate(inner, parent)
}
