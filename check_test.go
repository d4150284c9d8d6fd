package unparen

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckNoSource(t *testing.T) {
	_, err := Check(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoSources)
}

func TestCheckBadLanguageVersion(t *testing.T) {
	src := FS("mem", fstest.MapFS{"a.cs": {Data: []byte("x = (a);")}})
	_, err := Check(context.Background(), src, WithLanguageVersion("latest-ish"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `language version "latest-ish"`)

	_, err = CheckSource("a.cs", []byte("x = (a);"), WithLanguageVersion("x.y"))
	assert.Error(t, err)
}

func TestCheckDirectory(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b.cs":        "int a = 1, b = 2, c = 3;\nvar x = a + (b + c);\n",
		"a.cs":        "var y = (a * b) + c;\nvar z = (a + b) * c;\n",
		"obj/gen.cs":  "var w = (a);\n",
		"notes.txt":   "(not code)\n",
		"sub/c.cs":    "if (((done))) return;\n",
		"sub/bin.csx": "x = (a\x00);\n",
	})
	src, err := DirTree(root)
	require.NoError(t, err)

	report, err := Check(context.Background(), src, WithConcurrency(2))
	require.NoError(t, err)
	require.Len(t, report.Files, 4)

	var paths []string
	for _, f := range report.Files {
		paths = append(paths, f.Path)
	}
	assert.IsIncreasing(t, paths)

	byName := map[string]FileReport{}
	for _, f := range report.Files {
		rel, err := filepath.Rel(root, f.Path)
		require.NoError(t, err)
		byName[filepath.ToSlash(rel)] = f
	}

	a := byName["a.cs"]
	require.Len(t, a.Findings, 2)
	assert.True(t, a.Findings[0].Removable)
	assert.Equal(t, 1, a.Findings[0].Line)
	assert.Equal(t, 9, a.Findings[0].Column)
	assert.False(t, a.Findings[1].Removable)
	assert.Equal(t, 2, a.Findings[1].Line)
	assert.Equal(t, a.Path, a.Findings[0].File)

	// Declared ints regroup freely outside a checked context.
	b := byName["b.cs"]
	require.Len(t, b.Findings, 1)
	assert.True(t, b.Findings[0].Removable)
	assert.Equal(t, ReasonReassociable, b.Findings[0].Reason)

	c := byName["sub/c.cs"]
	require.Len(t, c.Findings, 2)
	assert.True(t, c.Findings[0].Removable)
	assert.True(t, c.Findings[1].Removable)

	assert.True(t, byName["sub/bin.csx"].Skipped)
	assert.Empty(t, byName["sub/bin.csx"].Findings)

	assert.Len(t, report.Findings(), 5)
	assert.Len(t, report.Removable(), 4)
	assert.False(t, report.HasErrors())
}

func TestCheckCheckedArithmetic(t *testing.T) {
	code := []byte("int a = 1, b = 2, c = 3;\nvar x = a + (b + c);\nvar y = unchecked(a * (b * c));\n")

	fr, err := CheckSource("a.cs", code)
	require.NoError(t, err)
	require.Len(t, fr.Findings, 2)
	assert.True(t, fr.Findings[0].Removable)
	assert.True(t, fr.Findings[1].Removable)

	fr, err = CheckSource("a.cs", code, WithCheckedArithmetic(true))
	require.NoError(t, err)
	require.Len(t, fr.Findings, 2)
	assert.False(t, fr.Findings[0].Removable, "overflow checks make regrouping observable")
	assert.True(t, fr.Findings[1].Removable, "unchecked overrides the default")
}

func TestCheckExplicitOracle(t *testing.T) {
	code := []byte("int a = 1, b = 2, c = 3;\nvar x = a + (b + c);\n")
	fr, err := CheckSource("a.cs", code, WithOracle(NeverReassociate))
	require.NoError(t, err)
	require.Len(t, fr.Findings, 1)
	assert.False(t, fr.Findings[0].Removable)
	assert.Equal(t, ReasonNotReassociable, fr.Findings[0].Reason)
}

func TestCheckFloatingPointNotRegrouped(t *testing.T) {
	code := []byte("double a = 1, b = 2, c = 3;\nvar x = a + (b + c);\n")
	fr, err := CheckSource("a.cs", code)
	require.NoError(t, err)
	require.Len(t, fr.Findings, 1)
	assert.False(t, fr.Findings[0].Removable)
}

func TestCheckReportsDiagnostics(t *testing.T) {
	fr, err := CheckSource("broken.cs", []byte("x = (a + b;\ny = (c);\n"))
	require.NoError(t, err, "malformed code is reported, not returned")
	require.NotEmpty(t, fr.Diagnostics)
	d := fr.Diagnostics[0]
	assert.Equal(t, "broken.cs", d.File)
	assert.Equal(t, 1, d.Line)
	assert.LessOrEqual(t, d.Severity, SeverityError)

	report := &Report{Files: []FileReport{fr}}
	assert.True(t, report.HasErrors())
	for _, f := range fr.Findings {
		if f.Line == 1 {
			assert.False(t, f.Removable, "unterminated parentheses are kept")
		}
	}
}

func TestCheckLanguageVersion(t *testing.T) {
	code := []byte("b = o is (> 1 or < 0);\n")

	fr, err := CheckSource("a.cs", code)
	require.NoError(t, err)
	assert.Empty(t, fr.Diagnostics)

	fr, err = CheckSource("a.cs", code, WithLanguageVersion("8.0"))
	require.NoError(t, err)
	assert.NotEmpty(t, fr.Diagnostics, "pattern combinators need C# 9")
}

type failingSource struct {
	files []string
	err   error
}

func (s failingSource) Open(string) (io.ReadCloser, error) { return nil, s.err }
func (s failingSource) ListFiles() ([]string, error)      { return s.files, nil }

func TestCheckReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Check(context.Background(), failingSource{files: []string{"a.cs"}, err: boom})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "reading a.cs")
}

func TestCheckCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := FS("mem", fstest.MapFS{"a.cs": {Data: []byte("x = (a);")}})
	_, err := Check(ctx, src)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	src := FS("mem", fstest.MapFS{"a.cs": {Data: []byte("x = (a);")}})

	_, err := Check(context.Background(), src, WithLogger(logger))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "msg=checking")
	assert.Contains(t, out, `msg="file checked"`)
	assert.Contains(t, out, `msg="check complete"`)
	assert.Equal(t, 0, strings.Count(out, "msg=decision"), "decisions log at trace level")
}

func TestParse(t *testing.T) {
	unit, diags, err := Parse("a.cs", []byte("x = (a);\ny = (b;\n"))
	require.NoError(t, err)
	require.NotNil(t, unit)
	require.NotEmpty(t, diags)
	assert.Equal(t, "a.cs", diags[0].File)
	assert.Equal(t, 2, diags[0].Line)

	_, _, err = Parse("a.cs", nil, WithLanguageVersion("seven"))
	assert.Error(t, err)
}

func TestNewSemanticOracle(t *testing.T) {
	unit, diags, err := Parse("a.cs", []byte("int a = 1, b = 2, c = 3;\nvar x = a + (b + c);\n"))
	require.NoError(t, err)
	require.Empty(t, diags)

	findings := Scan(unit, NewSemanticOracle(unit))
	require.Len(t, findings, 1)
	assert.True(t, findings[0].Removable)

	findings = Scan(unit, NewSemanticOracle(unit, WithCheckedArithmetic(true)))
	require.Len(t, findings, 1)
	assert.False(t, findings[0].Removable)
}
