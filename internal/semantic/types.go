package semantic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/csfmt/unparen/syntax"
)

// Type is the static type the model assigns to an expression. Only the
// built-in types take part in operator resolution; everything else is
// Unknown.
type Type uint8

const (
	Unknown Type = iota
	Bool
	Char
	SByte
	Byte
	Short
	UShort
	Int
	UInt
	Long
	ULong
	Float
	Double
	Decimal
	String
	Object
	// Null is the type of the null literal.
	Null
)

var typeNames = [...]string{
	Unknown: "unknown",
	Bool:    "bool",
	Char:    "char",
	SByte:   "sbyte",
	Byte:    "byte",
	Short:   "short",
	UShort:  "ushort",
	Int:     "int",
	UInt:    "uint",
	Long:    "long",
	ULong:   "ulong",
	Float:   "float",
	Double:  "double",
	Decimal: "decimal",
	String:  "string",
	Object:  "object",
	Null:    "null",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsIntegral reports whether t is an integral type, including char.
func (t Type) IsIntegral() bool {
	return t >= Char && t <= ULong
}

// IsFloatingPoint reports whether t is float or double.
func (t Type) IsFloatingPoint() bool {
	return t == Float || t == Double
}

// IsNumeric reports whether t takes part in numeric promotion.
func (t Type) IsNumeric() bool {
	return t.IsIntegral() || t.IsFloatingPoint() || t == Decimal
}

func (t Type) isSigned() bool {
	switch t {
	case SByte, Short, Int, Long:
		return true
	}
	return false
}

var predefinedTypes = map[syntax.TokenKind]Type{
	syntax.TokKwBool:    Bool,
	syntax.TokKwChar:    Char,
	syntax.TokKwSbyte:   SByte,
	syntax.TokKwByte:    Byte,
	syntax.TokKwShort:   Short,
	syntax.TokKwUshort:  UShort,
	syntax.TokKwInt:     Int,
	syntax.TokKwUint:    UInt,
	syntax.TokKwLong:    Long,
	syntax.TokKwUlong:   ULong,
	syntax.TokKwFloat:   Float,
	syntax.TokKwDouble:  Double,
	syntax.TokKwDecimal: Decimal,
	syntax.TokKwString:  String,
	syntax.TokKwObject:  Object,
}

// FromSyntax returns the built-in type named by typ, or Unknown.
func FromSyntax(typ syntax.TypeSyntax) Type {
	if p, ok := typ.(*syntax.PredefinedType); ok {
		return predefinedTypes[p.Keyword.Kind]
	}
	return Unknown
}

// promote applies binary numeric promotion. It returns Unknown when the
// operands have no common built-in numeric type.
func promote(a, b Type) Type {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Unknown
	}
	switch {
	case a == Decimal || b == Decimal:
		if a.IsFloatingPoint() || b.IsFloatingPoint() {
			return Unknown
		}
		return Decimal
	case a == Double || b == Double:
		return Double
	case a == Float || b == Float:
		return Float
	case a == ULong || b == ULong:
		if a.isSigned() || b.isSigned() {
			return Unknown
		}
		return ULong
	case a == Long || b == Long:
		return Long
	case a == UInt && b.isSigned(), b == UInt && a.isSigned():
		return Long
	case a == UInt || b == UInt:
		return UInt
	}
	return Int
}

// promoteUnary applies unary numeric promotion.
func promoteUnary(t Type) Type {
	switch t {
	case Char, SByte, Byte, Short, UShort:
		return Int
	}
	if t.IsNumeric() {
		return t
	}
	return Unknown
}

// literalType returns the type of a literal token.
func literalType(tok syntax.Token) Type {
	switch tok.Kind {
	case syntax.TokKwTrue, syntax.TokKwFalse:
		return Bool
	case syntax.TokKwNull:
		return Null
	case syntax.TokCharLiteral:
		return Char
	case syntax.TokStringLiteral:
		return String
	case syntax.TokNumericLiteral:
		return numericLiteralType(tok.Text)
	}
	return Unknown
}

// numericLiteralType types a numeric literal from its suffix and, for
// unsuffixed integers, from the smallest of int, uint, long and ulong that
// holds its value.
func numericLiteralType(text string) Type {
	s := strings.ToLower(strings.ReplaceAll(text, "_", ""))
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0b"):
		base, s = 2, s[2:]
	}

	switch {
	case strings.HasSuffix(s, "ul"), strings.HasSuffix(s, "lu"):
		return ULong
	case strings.HasSuffix(s, "u"):
		if v, err := strconv.ParseUint(s[:len(s)-1], base, 64); err == nil && v > 1<<32-1 {
			return ULong
		}
		return UInt
	case strings.HasSuffix(s, "l"):
		if v, err := strconv.ParseUint(s[:len(s)-1], base, 64); err == nil && v > 1<<63-1 {
			return ULong
		}
		return Long
	case strings.HasSuffix(s, "m"):
		return Decimal
	}
	if base == 10 {
		switch {
		case strings.HasSuffix(s, "f"):
			return Float
		case strings.HasSuffix(s, "d"), strings.ContainsAny(s, ".e"):
			return Double
		}
	}

	v, err := strconv.ParseUint(s, base, 64)
	switch {
	case err != nil:
		return Unknown
	case v <= 1<<31-1:
		return Int
	case v <= 1<<32-1:
		return UInt
	case v <= 1<<63-1:
		return Long
	}
	return ULong
}
