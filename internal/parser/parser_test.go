package parser

import (
	"testing"

	"github.com/Masterminds/semver/v3"

	"github.com/csfmt/unparen/internal/testutil"
	"github.com/csfmt/unparen/internal/types"
	"github.com/csfmt/unparen/syntax"
)

func parseExpr(t *testing.T, src string, opts ...Option) (syntax.Expression, []types.SpanDiagnostic) {
	t.Helper()
	p := New([]byte(src), nil, opts...)
	expr := p.ParseExpression()
	return expr, p.Diagnostics()
}

func parseUnit(t *testing.T, src string, opts ...Option) (*syntax.CompilationUnit, []types.SpanDiagnostic) {
	t.Helper()
	return Parse([]byte(src), nil, opts...)
}

func diagCodes(diags []types.SpanDiagnostic) []string {
	var codes []string
	for _, d := range diags {
		codes = append(codes, d.Code)
	}
	return codes
}

func TestExpressionShapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a + b * c", "Add(a, Multiply(b, c))"},
		{"(a + b) * c", "Multiply(Parenthesized(Add(a, b)), c)"},
		{"a - b - c", "Subtract(Subtract(a, b), c)"},
		{"a ?? b ?? c", "Coalesce(a, Coalesce(b, c))"},
		{"a = b = c", "SimpleAssignment(a, SimpleAssignment(b, c))"},
		{"a ? b : c ? d : e", "Conditional(a, b, Conditional(c, d, e))"},
		{"a || b && c", "LogicalOr(a, LogicalAnd(b, c))"},
		{"a | b ^ c & d", "BitwiseOr(a, ExclusiveOr(b, BitwiseAnd(c, d)))"},
		{"x >> 2", "RightShift(x, 2)"},
		{"x >>> 2", "UnsignedRightShift(x, 2)"},
		{"x >>= 1", "RightShiftAssignment(x, 1)"},
		{"-(-x)", "UnaryMinus(Parenthesized(UnaryMinus(x)))"},
		{"!a == b", "Equals(LogicalNot(a), b)"},
		{"^1", "Index(1)"},
		{"a..b", "Range(a, b)"},
		{"..b", "Range(b)"},
		{"x ?? throw e", "Coalesce(x, Throw(e))"},
		{"await t", "Await(t)"},
		{"x!", "SuppressNullableWarning(x)"},
		{"i++ + ++i", "Add(PostIncrement(i), PreIncrement(i))"},
		{"a?.b.c", "ConditionalAccess(a, SimpleMemberAccess(MemberBinding(b), c))"},
		{"a?[0]", "ConditionalAccess(a, ElementBinding(BracketedArgumentList(Argument(0))))"},
		{"p->x", "PointerMemberAccess(p, x)"},
		{"typeof(int)", "TypeOf(int)"},
		{"default(T)", "Default(T)"},
		{"default", "default"},
		{"checked(a + b)", "Checked(Add(a, b))"},
		{"this.x", "SimpleMemberAccess(this, x)"},
		{"global::System.Math", "SimpleMemberAccess(AliasQualifiedName(global, System), Math)"},
		{"stackalloc int[3]", "StackAllocArrayCreation(ArrayType(int, ArrayRankSpecifier(3)))"},
		{"(a, b)", "Tuple(Argument(a), Argument(b))"},
		{"(x: 1, y: 2)", "Tuple(Argument(NameColon(x), 1), Argument(NameColon(y), 2))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expr, _ := parseExpr(t, tt.src)
			testutil.Equal(t, tt.want, syntax.Dump(expr))
		})
	}
}

func TestCastDisambiguation(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"(int)-x", "Cast(int, UnaryMinus(x))"},
		{"(x)-y", "Subtract(Parenthesized(x), y)"},
		{"(x)(-y)", "Cast(x, Parenthesized(UnaryMinus(y)))"},
		{"(x)y", "Cast(x, y)"},
		{"(int)(-y)", "Cast(int, Parenthesized(UnaryMinus(y)))"},
		{"(global::X)(-y)", "Cast(AliasQualifiedName(global, X), Parenthesized(UnaryMinus(y)))"},
		{"(int?)x", "Cast(NullableType(int), x)"},
		{"(T[])x", "Cast(ArrayType(T, ArrayRankSpecifier()), x)"},
		{"(C)this", "Cast(C, this)"},
		{"(a) + b", "Add(Parenthesized(a), b)"},
		{"(a)", "Parenthesized(a)"},
		{"(a.b)c", "Cast(QualifiedName(a, b), c)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expr, diags := parseExpr(t, tt.src)
			testutil.Len(t, diags, 0, "diagnostics for %q", tt.src)
			testutil.Equal(t, tt.want, syntax.Dump(expr))
		})
	}
}

func TestGenericDisambiguation(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"f(a < b, c > d)", "Invocation(f, ArgumentList(Argument(LessThan(a, b)), Argument(GreaterThan(c, d))))"},
		{"f(a<b, c>(d))", "Invocation(f, ArgumentList(Argument(Invocation(a<b, c>, ArgumentList(Argument(d))))))"},
		{"a < b", "LessThan(a, b)"},
		{"List<int>.Empty", "SimpleMemberAccess(List<int>, Empty)"},
		{"x.Cast<T>()", "Invocation(SimpleMemberAccess(x, Cast<T>), ArgumentList())"},
		{"new List<int> { 1, 2 }", "ObjectCreation(List<int>, Initializer(1, 2))"},
		{"new Dictionary<string, List<int>>()", "ObjectCreation(Dictionary<string, List<int>>, ArgumentList())"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expr, diags := parseExpr(t, tt.src)
			testutil.Len(t, diags, 0, "diagnostics for %q", tt.src)
			testutil.Equal(t, tt.want, syntax.Dump(expr))
		})
	}
}

func TestPatterns(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x is int", "Is(x, int)"},
		{"x is Foo", "Is(x, Foo)"},
		{"x is int i", "IsPattern(x, DeclarationPattern(int, SingleVariableDesignation(i)))"},
		{"x is not null", "IsPattern(x, NotPattern(ConstantPattern(null)))"},
		{"x is (y)", "IsPattern(x, ConstantPattern(Parenthesized(y)))"},
		{"x is (1) + 2", "IsPattern(x, ConstantPattern(Add(Parenthesized(1), 2)))"},
		{"x is (1 or 2) and > 0", "IsPattern(x, AndPattern(ParenthesizedPattern(OrPattern(ConstantPattern(1), ConstantPattern(2))), RelationalPattern(0)))"},
		{"x is (not null)", "IsPattern(x, ParenthesizedPattern(NotPattern(ConstantPattern(null))))"},
		{"x is _", "IsPattern(x, DiscardPattern(_))"},
		{"x is var v", "IsPattern(x, VarPattern(SingleVariableDesignation(v)))"},
		{"x is { Length: > 0 }", "IsPattern(x, RecursivePattern(PropertyPatternClause(Subpattern(NameColon(Length), RelationalPattern(0)))))"},
		{"x is Point(0, 0) p", "IsPattern(x, RecursivePattern(Point, PositionalPatternClause(Subpattern(ConstantPattern(0)), Subpattern(ConstantPattern(0))), SingleVariableDesignation(p)))"},
		{"x is (a, b)", "IsPattern(x, RecursivePattern(PositionalPatternClause(Subpattern(ConstantPattern(a)), Subpattern(ConstantPattern(b)))))"},
		{"x is A ? b : c", "Conditional(Is(x, A), b, c)"},
		{"x is int? ? b : c", "Conditional(Is(x, NullableType(int)), b, c)"},
		{"x as T ?? y", "Coalesce(As(x, T), y)"},
		{"x switch { 1 => a, _ => b }", "Switch(x, SwitchExpressionArm(ConstantPattern(1), a), SwitchExpressionArm(DiscardPattern(_), b))"},
		{"x switch { int i when i > 0 => i, }", "Switch(x, SwitchExpressionArm(DeclarationPattern(int, SingleVariableDesignation(i)), WhenClause(GreaterThan(i, 0)), i))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expr, diags := parseExpr(t, tt.src)
			testutil.Len(t, diags, 0, "diagnostics for %q", tt.src)
			testutil.Equal(t, tt.want, syntax.Dump(expr))
		})
	}
}

func TestLambdasAndQueries(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x => x + 1", "SimpleLambda(Parameter(x), Add(x, 1))"},
		{"(a, b) => a", "ParenthesizedLambda(ParameterList(Parameter(a), Parameter(b)), a)"},
		{"(int a) => { return a; }", "ParenthesizedLambda(ParameterList(Parameter(int)), Block(ReturnStatement(a)))"},
		{"from x in xs where x > 1 select x", "Query(FromClause(xs), QueryBody(WhereClause(GreaterThan(x, 1)), SelectClause(x)))"},
		{"from int x in xs let y = x * 2 select y", "Query(FromClause(int, xs), QueryBody(LetClause(Multiply(x, 2)), SelectClause(y)))"},
		{"new { A = 1, b }", "AnonymousObjectCreation(AnonymousObjectMemberDeclarator(NameEquals(A), 1), AnonymousObjectMemberDeclarator(b))"},
		{"new[] { 1, 2 }", "ImplicitArrayCreation(Initializer(1, 2))"},
		{"new int[] { 1 }", "ArrayCreation(ArrayType(int, ArrayRankSpecifier()), Initializer(1))"},
		{"new int[2, 3]", "ArrayCreation(ArrayType(int, ArrayRankSpecifier(2, 3)))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expr, diags := parseExpr(t, tt.src)
			testutil.Len(t, diags, 0, "diagnostics for %q", tt.src)
			testutil.Equal(t, tt.want, syntax.Dump(expr))
		})
	}
}

func TestInterpolatedString(t *testing.T) {
	expr, diags := parseExpr(t, `$"{a}:{b:N2} {(c ? d : e),5}"`)
	testutil.Len(t, diags, 0)
	testutil.Equal(t,
		"InterpolatedString(Interpolation(a), InterpolatedStringText(:), "+
			"Interpolation(b, InterpolationFormatClause(N2)), InterpolatedStringText( ), "+
			"Interpolation(Parenthesized(Conditional(c, d, e)), InterpolationAlignmentClause(5)))",
		syntax.Dump(expr))
}

func TestStatements(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"var y = (x);", "LocalDeclarationStatement(VariableDeclaration(var, VariableDeclarator(EqualsValueClause(Parenthesized(x)))))"},
		{"int[] a = { 1 };", "LocalDeclarationStatement(VariableDeclaration(ArrayType(int, ArrayRankSpecifier()), VariableDeclarator(EqualsValueClause(Initializer(1)))))"},
		{"a = b;", "ExpressionStatement(SimpleAssignment(a, b))"},
		{"f(out var v);", "ExpressionStatement(Invocation(f, ArgumentList(Argument(Declaration(var, SingleVariableDesignation(v))))))"},
		{"var (a, b) = (1, 2);", "ExpressionStatement(SimpleAssignment(Declaration(var, ParenthesizedVariableDesignation(SingleVariableDesignation(a), SingleVariableDesignation(b))), Tuple(Argument(1), Argument(2))))"},
		{"(var a, var b) = t;", "ExpressionStatement(SimpleAssignment(Tuple(Argument(Declaration(var, SingleVariableDesignation(a))), Argument(Declaration(var, SingleVariableDesignation(b)))), t))"},
		{"if (a) b(); else c();", "IfStatement(a, ExpressionStatement(Invocation(b, ArgumentList())), ElseClause(ExpressionStatement(Invocation(c, ArgumentList()))))"},
		{"while ((x)) ;", "WhileStatement(Parenthesized(x), EmptyStatement())"},
		{"do { } while (x);", "DoStatement(Block(), x)"},
		{"for (int i = 0; i < n; i++) { }", "ForStatement(VariableDeclaration(int, VariableDeclarator(EqualsValueClause(0))), LessThan(i, n), PostIncrement(i), Block())"},
		{"foreach (var x in (xs)) { }", "ForEachStatement(var, Parenthesized(xs), Block())"},
		{"lock (o) { }", "LockStatement(o, Block())"},
		{"using (var r = Open()) { }", "UsingStatement(VariableDeclaration(var, VariableDeclarator(EqualsValueClause(Invocation(Open, ArgumentList())))), Block())"},
		{"return (x);", "ReturnStatement(Parenthesized(x))"},
		{"yield return (x);", "YieldReturnStatement(Parenthesized(x))"},
		{"yield break;", "YieldBreakStatement(yield break)"},
		{"throw (e);", "ThrowStatement(Parenthesized(e))"},
		{"try { } catch (E e) when ((x)) { } finally { }", "TryStatement(Block(), CatchClause(CatchDeclaration(E), CatchFilterClause(Parenthesized(x)), Block()), FinallyClause(Block()))"},
		{"checked { x++; }", "CheckedStatement(Block(ExpressionStatement(PostIncrement(x))))"},
		{"int Sq(int v) => v * v;", "LocalFunctionStatement(int, ParameterList(Parameter(int)), ArrowExpressionClause(Multiply(v, v)))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			unit, diags := parseUnit(t, tt.src)
			testutil.Len(t, diags, 0, "diagnostics for %q: %v", tt.src, diags)
			testutil.Len(t, unit.Statements, 1)
			testutil.Equal(t, tt.want, syntax.Dump(unit.Statements[0]))
		})
	}
}

func TestSwitchStatement(t *testing.T) {
	unit, diags := parseUnit(t, `
switch (x)
{
    case (1):
    case int i when (i > 0):
        break;
    case > 10 or < -10:
        return;
    default:
        break;
}`)
	testutil.Len(t, diags, 0)
	sw, ok := unit.Statements[0].(*syntax.SwitchStatement)
	testutil.True(t, ok, "want switch statement, got %T", unit.Statements[0])
	testutil.Len(t, sw.Sections, 3)

	first := sw.Sections[0]
	testutil.Len(t, first.Labels, 2)
	testutil.Equal(t, "CaseSwitchLabel(Parenthesized(1))", syntax.Dump(first.Labels[0]))
	testutil.Equal(t,
		"CasePatternSwitchLabel(DeclarationPattern(int, SingleVariableDesignation(i)), WhenClause(Parenthesized(GreaterThan(i, 0))))",
		syntax.Dump(first.Labels[1]))
	testutil.Equal(t,
		"CasePatternSwitchLabel(OrPattern(RelationalPattern(10), RelationalPattern(UnaryMinus(10))))",
		syntax.Dump(sw.Sections[1].Labels[0]))
	testutil.Equal(t, syntax.KindDefaultSwitchLabel, sw.Sections[2].Labels[0].Kind())
}

func TestDirectives(t *testing.T) {
	unit, diags := parseUnit(t, "#if (A || B)\nx();\n#elif !C\ny();\n#endif\n")
	testutil.Len(t, diags, 0)
	testutil.Len(t, unit.Statements, 2)
	testutil.Len(t, unit.Directives, 2)

	testutil.Equal(t, syntax.KindIfDirectiveTrivia, unit.Directives[0].Kind())
	testutil.Equal(t, "Parenthesized(LogicalOr(A, B))", syntax.Dump(unit.Directives[0].Condition))
	testutil.Equal(t, syntax.KindElifDirectiveTrivia, unit.Directives[1].Kind())
	testutil.Equal(t, "LogicalNot(C)", syntax.Dump(unit.Directives[1].Condition))

	testutil.True(t, unit.Directives[0].Parent() == syntax.Node(unit), "directive parent")
	paren := unit.Directives[0].Condition
	_, ok := syntax.PreviousToken(paren)
	testutil.True(t, ok, "the directive keyword precedes the condition")
}

func TestMissingTokens(t *testing.T) {
	expr, diags := parseExpr(t, "(a + b")
	paren, ok := expr.(*syntax.ParenthesizedExpression)
	testutil.True(t, ok, "want parenthesized expression, got %T", expr)
	testutil.False(t, paren.OpenParen.Missing)
	testutil.True(t, paren.CloseParen.Missing)
	testutil.SliceEqual(t, []string{types.DiagMissingToken}, diagCodes(diags))

	call, diags := parseExpr(t, "f(a")
	inv, ok := call.(*syntax.InvocationExpression)
	testutil.True(t, ok, "want invocation, got %T", call)
	testutil.True(t, inv.ArgumentList.CloseToken.Missing)
	testutil.Len(t, diags, 1)
}

func TestRecovery(t *testing.T) {
	unit, diags := parseUnit(t, "a = ;\n} b();\nc()")
	testutil.NotEmpty(t, diags)
	testutil.Len(t, unit.Statements, 3)
	testutil.Equal(t, "ExpressionStatement(Invocation(b, ArgumentList()))", syntax.Dump(unit.Statements[1]))
	for _, d := range diags {
		testutil.True(t, d.Severity == types.SeverityError, "severity of %q", d.Message)
	}
}

func TestLanguageVersion(t *testing.T) {
	v8 := WithLanguageVersion(semver.MustParse("8.0"))

	_, diags := parseExpr(t, "x is not null", v8)
	testutil.SliceEqual(t, []string{types.DiagLanguageVersion}, diagCodes(diags))
	testutil.True(t, diags[0].Severity == types.SeverityWarning)

	expr, diags := parseExpr(t, "x is (y)", v8)
	testutil.Len(t, diags, 0)
	testutil.Equal(t, "IsPattern(x, ConstantPattern(Parenthesized(y)))", syntax.Dump(expr))

	_, diags = parseExpr(t, "x switch { _ => 1 }", WithLanguageVersion(semver.MustParse("7.3")))
	testutil.SliceEqual(t, []string{types.DiagLanguageVersion}, diagCodes(diags))

	_, diags = parseExpr(t, "x is not null", WithLanguageVersion(nil))
	testutil.Len(t, diags, 0)
}

func TestParentLinks(t *testing.T) {
	unit, _ := parseUnit(t, "var r = f(a, (b + c) * d) ? x is (1 or 2) : $\"{(e)}\";")
	count := 0
	syntax.Inspect(unit, func(n syntax.Node) bool {
		for _, c := range n.Children() {
			if c.Node != nil {
				count++
				testutil.True(t, c.Node.Parent() == n, "parent of %s is not %s", c.Node.Kind(), n.Kind())
			}
		}
		return true
	})
	testutil.Greater(t, count, 20)
}

func TestPreviousToken(t *testing.T) {
	expr, _ := parseExpr(t, "a + (b)")
	bin := expr.(*syntax.BinaryExpression)
	prev, ok := syntax.PreviousToken(bin.Right)
	testutil.True(t, ok)
	testutil.Equal(t, "+", prev.Text)

	_, ok = syntax.PreviousToken(bin.Left)
	testutil.False(t, ok, "no token precedes the first operand")
}
