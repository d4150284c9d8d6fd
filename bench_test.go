package unparen

import (
	"strings"
	"testing"

	"github.com/csfmt/unparen/internal/parser"
	"github.com/csfmt/unparen/internal/semantic"
)

const benchSource = `int a = 1, b = 2, c = 3;
var x = (a * b) + (c - (a + b));
var s = $"{(a + b)} and {(a > b ? a : b)}";
F((a) < b, c > (a));
switch (a) { case (1): break; case (> 2 and < 9): break; }
var t = o is (> 1 or < 0) and not (3);
var o = new C { (a), (b = c) };
x = (T)(-a) + (int)(-b);
`

func BenchmarkScan(b *testing.B) {
	src := []byte(strings.Repeat(benchSource, 50))
	unit, _ := parser.Parse(src, nil)
	oracle := semantic.New(unit)
	a := NewAnalyzer(WithOracle(oracle))

	b.ReportAllocs()
	for b.Loop() {
		a.Scan(unit)
	}
}

func BenchmarkCheckSource(b *testing.B) {
	src := []byte(strings.Repeat(benchSource, 50))

	b.ReportAllocs()
	for b.Loop() {
		if _, err := CheckSource("bench.cs", src); err != nil {
			b.Fatal(err)
		}
	}
}
