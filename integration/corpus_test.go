// Package integration runs the analyzer against the case corpus under
// testdata/cases and the sample programs under testdata/sources.
//
// # Adding Test Cases
//
//  1. Pick the file under testdata/cases that matches the rule being tested
//  2. Write the source with every removable parenthesis wrapped in ⟦ and ⟧
//  3. Leave parentheses that must be kept unmarked
//
// Every removal the analyzer allows is also replayed: the parentheses are
// deleted from the text, the result is parsed again, and its structure must
// match the original.
//
// # File Organization
//
//   - corpus_test.go: case loading and the marker comparison
//   - roundtrip_test.go: replaying removals and comparing structure
//   - sources_test.go: whole programs checked through a Source
package integration

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/csfmt/unparen"
	"github.com/csfmt/unparen/internal/testutil"
)

var (
	corpusCases map[string][]testutil.Case
	corpusOnce  sync.Once
)

// casesPath returns the path to the case corpus.
func casesPath() string {
	return filepath.Join("..", "testdata", "cases")
}

// loadCorpus reads every case file once.
func loadCorpus(t *testing.T) map[string][]testutil.Case {
	t.Helper()
	if _, err := os.Stat(casesPath()); os.IsNotExist(err) {
		t.Skipf("case corpus not found at %s", casesPath())
	}
	corpusOnce.Do(func() {
		corpusCases = testutil.LoadCaseDir(t, casesPath())
	})
	require.NotEmpty(t, corpusCases)
	return corpusCases
}

// caseOptions maps a case's settings onto Check options.
func caseOptions(t *testing.T, c testutil.Case) []unparen.Option {
	t.Helper()
	opts := []unparen.Option{
		unparen.WithLanguageVersion(c.Version),
		unparen.WithCheckedArithmetic(c.Checked),
	}
	switch c.Oracle {
	case "", "semantic":
	case "never":
		opts = append(opts, unparen.WithOracle(unparen.NeverReassociate))
	default:
		t.Fatalf("case %q: unknown oracle %q", c.Name, c.Oracle)
	}
	return opts
}

// checkCase marks up the case source, checks it, and returns the plain
// source with its report.
func checkCase(t *testing.T, c testutil.Case) (string, unparen.FileReport, []unparen.Span) {
	t.Helper()
	src, want := testutil.MustMark(t, c.Source)
	fr, err := unparen.CheckSource(c.Name+".cs", []byte(src), caseOptions(t, c)...)
	require.NoError(t, err)
	require.Empty(t, fr.Diagnostics, "case %q should parse cleanly", c.Name)
	return src, fr, want
}

func TestCorpusCases(t *testing.T) {
	for file, cases := range loadCorpus(t) {
		t.Run(file, func(t *testing.T) {
			for _, c := range cases {
				t.Run(c.Name, func(t *testing.T) {
					src, fr, want := checkCase(t, c)

					var got []unparen.Span
					for _, f := range fr.Findings {
						if f.Removable {
							got = append(got, f.Span)
						}
					}
					testutil.SortSpans(got)
					if diff := cmp.Diff(testutil.Render(src, want), testutil.Render(src, got)); diff != "" {
						t.Errorf("removable parentheses mismatch (-want +got):\n%s", diff)
						for _, f := range fr.Findings {
							t.Logf("%s", f)
						}
					}
				})
			}
		})
	}
}
