package testutil

import (
	"testing"

	"github.com/csfmt/unparen/internal/types"
)

func TestMark(t *testing.T) {
	src, spans, err := Mark("var x = ⟦(a)⟧ + ⟦(⟦(b)⟧)⟧;")
	NoError(t, err)
	Equal(t, "var x = (a) + ((b));", src)
	SliceEqual(t, []types.Span{
		types.NewSpan(8, 11),
		types.NewSpan(14, 19),
		types.NewSpan(15, 18),
	}, spans)
}

func TestMarkUnbalanced(t *testing.T) {
	for _, in := range []string{"⟦(a)", "(a)⟧", "⟦⟦(a)⟧"} {
		_, _, err := Mark(in)
		Error(t, err, "input %q", in)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	for _, in := range []string{
		"f(⟦(a)⟧, (b))",
		"⟦(⟦(x)⟧)⟧",
		"x is ⟦(not null)⟧",
		"no markers",
	} {
		src, spans := MustMark(t, in)
		Equal(t, in, Render(src, spans))
	}
}
