package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csfmt/unparen/internal/parser"
	"github.com/csfmt/unparen/syntax"
)

func TestNumericLiteralType(t *testing.T) {
	tests := []struct {
		text string
		want Type
	}{
		{"1", Int},
		{"1_000", Int},
		{"2147483647", Int},
		{"2147483648", UInt},
		{"4294967296", Long},
		{"9223372036854775808", ULong},
		{"1u", UInt},
		{"1U", UInt},
		{"4294967296u", ULong},
		{"1L", Long},
		{"1UL", ULong},
		{"1lu", ULong},
		{"1.5", Double},
		{"1e3", Double},
		{"1d", Double},
		{"1f", Float},
		{"1.5F", Float},
		{"1m", Decimal},
		{"0xFF", Int},
		{"0x1F", Int},
		{"0xFFFFFFFF", UInt},
		{"0xFFFFFFFFFFFFFFFF", ULong},
		{"0b1010", Int},
		{"0x10L", Long},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, numericLiteralType(tt.text), tt.text)
	}
}

func TestPromote(t *testing.T) {
	tests := []struct {
		a, b Type
		want Type
	}{
		{Byte, Short, Int},
		{Char, Char, Int},
		{Int, Int, Int},
		{UInt, Int, Long},
		{UInt, Byte, UInt},
		{UInt, UInt, UInt},
		{Long, UInt, Long},
		{ULong, Int, Unknown},
		{ULong, UInt, ULong},
		{Float, Int, Float},
		{Float, Double, Double},
		{Decimal, Long, Decimal},
		{Decimal, Double, Unknown},
		{Bool, Int, Unknown},
		{String, Int, Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, promote(tt.a, tt.b), "%s, %s", tt.a, tt.b)
		assert.Equal(t, tt.want, promote(tt.b, tt.a), "%s, %s", tt.b, tt.a)
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		src  string
		want Type
	}{
		{"1 + 2L", Long},
		{"1 + 2.0", Double},
		{"1.0 + 1m", Unknown},
		{`"a" + 1`, String},
		{`$"a{1}"`, String},
		{"'a' + 'b'", Int},
		{"1 < 2", Bool},
		{"1 == 2 & true", Bool},
		{"true ^ false", Bool},
		{"true && 1", Unknown},
		{"-1u", Long},
		{"-(1)", Int},
		{"~(byte)1", Int},
		{"!true", Bool},
		{"(long)x", Long},
		{"int.MaxValue + 1", Int},
		{"ulong.MinValue", ULong},
		{"x", Unknown},
		{"x + 1", Unknown},
		{"1 << 2", Int},
		{"1L >> 2", Long},
		{"1 << 2L", Unknown},
		{"checked(1 * 2)", Int},
		{"true ? 1 : 2", Int},
		{"true ? 1 : 2L", Unknown},
		{"null", Null},
		{"sizeof(int)", Int},
		{"default(short)", Short},
		{"x is int", Bool},
		{"x as string", Unknown},
		{"x is > 1", Bool},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p := parser.New([]byte(tt.src), nil)
			expr := p.ParseExpression()
			require.Empty(t, p.Diagnostics())
			m := New(expr)
			assert.Equal(t, tt.want, m.TypeOf(expr))
		})
	}
}

func TestDeclarations(t *testing.T) {
	src := `
int a = 0, b;
var c = 1L;
var d = a + c;
foreach (uint u in items) { }
if (o is short s) { }
Run(out byte o2);
{ int twice = 0; }
{ long twice = 0; }
Func<int, int> f = (double p) => p;
var q = from char ch in text let n = ch + 1 select n;
int Local(sbyte z) => z;
`
	unit, diags := parser.Parse([]byte(src), nil)
	require.Empty(t, diags)
	m := New(unit)

	tests := []struct {
		name string
		want Type
	}{
		{"a", Int},
		{"b", Int},
		{"c", Long},
		{"d", Long},
		{"u", UInt},
		{"s", Short},
		{"o2", Byte},
		{"twice", Unknown},
		{"f", Unknown},
		{"p", Double},
		{"ch", Char},
		{"n", Int},
		{"z", SByte},
		{"Local", Unknown},
		{"undeclared", Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Lookup(tt.name), tt.name)
	}
}

// reassociation returns the outermost binary expression whose right
// operand is a parenthesized binary expression, and that inner expression.
func reassociation(t *testing.T, root syntax.Node) (inner, parent *syntax.BinaryExpression) {
	t.Helper()
	syntax.Inspect(root, func(n syntax.Node) bool {
		if parent != nil {
			return false
		}
		b, ok := n.(*syntax.BinaryExpression)
		if !ok {
			return true
		}
		paren, ok := b.Right.(*syntax.ParenthesizedExpression)
		if !ok {
			return true
		}
		if in, ok := paren.Expression.(*syntax.BinaryExpression); ok {
			inner, parent = in, b
			return false
		}
		return true
	})
	require.NotNil(t, parent, "no reassociation candidate")
	return inner, parent
}

func TestIsSafeToReassociate(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		checked bool
		want    bool
	}{
		{"int add", "int a, b, c; var r = a + (b + c);", false, true},
		{"int add checked option", "int a, b, c; var r = a + (b + c);", true, false},
		{"int add checked expression", "int a, b, c; var r = checked(a + (b + c));", false, false},
		{"int add checked block", "int a, b, c; checked { var r = a + (b + c); }", false, false},
		{"int multiply unchecked override", "int a, b, c; var r = unchecked(a * (b * c));", true, true},
		{"int or checked", "int a, b, c; var r = a | (b | c);", true, true},
		{"long xor", "long a, b, c; var r = a ^ (b ^ c);", false, true},
		{"double add", "double a, b, c; var r = a + (b + c);", false, false},
		{"float multiply", "float a, b, c; var r = a * (b * c);", false, false},
		{"decimal add", "decimal a, b, c; var r = a + (b + c);", false, false},
		{"bool and also", "bool a, b, c; var r = a && (b && c);", false, true},
		{"bool or", "bool a, b, c; var r = a | (b | c);", false, true},
		{"string concat", "string a, b, c; var r = a + (b + c);", false, true},
		{"string then int add", "string a; int b, c; var r = a + (b + c);", false, false},
		{"byte operands", "byte a, b, c; var r = a + (b + c);", false, false},
		{"mixed widths", "long a; int b, c; var r = a + (b + c);", false, false},
		{"user type", "Money a, b, c; var r = a + (b + c);", false, false},
		{"undeclared", "var r = a + (b + c);", false, false},
		{"conflicting declarations", "{ int a = 0; } { long a = 0; } int b, c; var r = a + (b + c);", false, false},
		{"int literals", "int a; var r = a + (1 + 2);", false, true},
		{"long literal", "int a; var r = a + (1 + 2L);", false, false},
		{"inferred local", "var a = 1; int b, c; var r = a * (b * c);", false, true},
		{"foreach variable", "foreach (uint u in xs) { var r = u & (u & u); }", false, true},
		{"typed lambda parameters", "F f = (int x, int y) => x * (y * x);", false, true},
		{"untyped lambda parameters", "F f = (x, y) => x * (y * x);", false, false},
		{"different operators", "int a, b, c; var r = a + (b * c);", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, diags := parser.Parse([]byte(tt.src), nil)
			require.Empty(t, diags)
			m := New(unit, WithCheckedArithmetic(tt.checked))
			inner, parent := reassociation(t, unit)
			assert.Equal(t, tt.want, m.IsSafeToReassociate(inner, parent))
		})
	}
}

func TestIsSafeToReassociateNil(t *testing.T) {
	m := New(&syntax.CompilationUnit{})
	assert.False(t, m.IsSafeToReassociate(nil, nil))
}
