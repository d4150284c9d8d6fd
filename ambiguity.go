package unparen

import "github.com/csfmt/unparen/syntax"

// ambiguous runs the detectors for removals that would make the parser
// read the surrounding text differently. Any hit refuses the removal. The
// format clause detector runs earlier, from classify.
func ambiguous(node *syntax.ParenthesizedExpression) (bool, Reason) {
	inner := node.Expression
	if castAmbiguity(node, inner) {
		return true, ReasonCastAmbiguity
	}
	if commaListAmbiguity(node, inner) {
		return true, ReasonGenericAmbiguity
	}
	return false, ReasonNone
}

// castAmbiguity detects (T)(-x) where T is a name: without the inner
// parentheses the parser reads (T) as a parenthesized expression and the
// operator as binary. Keyword, array, pointer and nullable types and names
// rooted in an alias always read as casts.
func castAmbiguity(node *syntax.ParenthesizedExpression, inner syntax.Expression) bool {
	cast, ok := node.Parent().(*syntax.CastExpression)
	if !ok || cast.Expression != syntax.Expression(node) {
		return false
	}
	if alwaysCastType(cast.Type) {
		return false
	}
	switch inner.Kind() {
	case syntax.KindUnaryPlusExpression,
		syntax.KindUnaryMinusExpression,
		syntax.KindPointerIndirectionExpression,
		syntax.KindAddressOfExpression,
		syntax.KindIndexExpression:
		return true
	}
	return false
}

func alwaysCastType(t syntax.TypeSyntax) bool {
	switch t := t.(type) {
	case *syntax.PredefinedType, *syntax.ArrayType, *syntax.PointerType, *syntax.NullableType:
		return true
	case *syntax.AliasQualifiedName:
		return true
	case *syntax.QualifiedName:
		return alwaysCastType(t.Left)
	}
	return false
}

// commaListAmbiguity detects removals inside an argument list, tuple or
// initializer that would let a < in one element and a > in the next read
// as a generic argument list, as in F((a < b), c > (d)).
func commaListAmbiguity(node *syntax.ParenthesizedExpression, inner syntax.Expression) bool {
	if isSimpleOrDottedName(inner) {
		if bin, ok := node.Parent().(*syntax.BinaryExpression); ok && isListElement(bin) {
			self := syntax.Expression(node)
			switch bin.Kind() {
			case syntax.KindLessThanExpression:
				if (bin.Left == self && isListOperandName(bin.Right)) ||
					(bin.Right == self && isListOperandName(bin.Left)) {
					if nextElementAmbiguous(bin) {
						return true
					}
				}
			case syntax.KindGreaterThanExpression:
				if bin.Left == self && opensWithParen(bin.Right) {
					if previousElementAmbiguous(bin) {
						return true
					}
				}
			}
		}
	}

	switch inner.Kind() {
	case syntax.KindLessThanExpression:
		return nextElementAmbiguous(node)
	case syntax.KindGreaterThanExpression:
		return previousElementAmbiguous(node)
	}
	return false
}

// previousElementAmbiguous reports whether the element before e has the
// shape a < b that could open a generic argument list.
func previousElementAmbiguous(e syntax.Expression) bool {
	prev, ok := siblingElement(e, -1).(*syntax.BinaryExpression)
	if !ok || prev.Kind() != syntax.KindLessThanExpression {
		return false
	}
	left := isListOperandName(prev.Left) || prev.Left.Kind() == syntax.KindCastExpression
	return left && isListOperandName(prev.Right)
}

// nextElementAmbiguous reports whether the element after e has the shape
// c > (d) that could close a generic argument list before a call.
func nextElementAmbiguous(e syntax.Expression) bool {
	next, ok := siblingElement(e, 1).(*syntax.BinaryExpression)
	if !ok || next.Kind() != syntax.KindGreaterThanExpression {
		return false
	}
	return isListOperandName(next.Left) && opensWithParen(next.Right)
}

func opensWithParen(e syntax.Expression) bool {
	switch e.Kind() {
	case syntax.KindParenthesizedExpression, syntax.KindCastExpression:
		return true
	}
	return false
}

func isListElement(e syntax.Expression) bool {
	switch e.Parent().(type) {
	case *syntax.Argument, *syntax.InitializerExpression:
		return true
	}
	return false
}

// siblingElement returns the element offset places from e in the argument
// list, tuple or initializer holding it, or nil.
func siblingElement(e syntax.Expression, offset int) syntax.Expression {
	switch p := e.Parent().(type) {
	case *syntax.Argument:
		var args []*syntax.Argument
		switch list := p.Parent().(type) {
		case *syntax.ArgumentList:
			args = list.Arguments
		case *syntax.TupleExpression:
			args = list.Arguments
		default:
			return nil
		}
		for i, a := range args {
			if a == p {
				if j := i + offset; j >= 0 && j < len(args) {
					return args[j].Expression
				}
				return nil
			}
		}
	case *syntax.InitializerExpression:
		for i, x := range p.Expressions {
			if x == e {
				if j := i + offset; j >= 0 && j < len(p.Expressions) {
					return p.Expressions[j]
				}
				return nil
			}
		}
	}
	return nil
}

// isListOperandName reports whether e can stand on either side of a
// generic argument list: a simple or dotted name, or a generic name.
func isListOperandName(e syntax.Expression) bool {
	return e.Kind() == syntax.KindGenericName || isSimpleOrDottedName(e)
}

// formatClauseAmbiguity detects removals inside an interpolation hole that
// would expose a colon, which ends the hole and starts a format clause.
// A parenthesized expression between node and the hole already shields
// it.
func formatClauseAmbiguity(node *syntax.ParenthesizedExpression, inner syntax.Expression) bool {
	inHole := false
	for a := range syntax.Ancestors(node) {
		if a.Kind() == syntax.KindParenthesizedExpression {
			return false
		}
		if a.Kind() == syntax.KindInterpolation {
			inHole = true
			break
		}
	}
	if !inHole {
		return false
	}

	stack, put := getNodeStack()
	defer put()
	*stack = append(*stack, inner)
	for len(*stack) > 0 {
		n := (*stack)[len(*stack)-1]
		*stack = (*stack)[:len(*stack)-1]
		if n.Kind() == syntax.KindParenthesizedExpression {
			continue
		}
		for _, c := range n.Children() {
			if c.Node != nil {
				*stack = append(*stack, c.Node)
				continue
			}
			switch c.Token.Kind {
			case syntax.TokColon, syntax.TokColonColon:
				return true
			}
		}
	}
	return false
}
