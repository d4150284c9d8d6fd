package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csfmt/unparen"
	"github.com/csfmt/unparen/cmd/internal/cliutil"
	"github.com/csfmt/unparen/internal/types"
)

func newCheck() *checkConfig {
	return &checkConfig{color: cliutil.ColorNever, stderr: io.Discard}
}

func newExplain() *explainConfig {
	return &explainConfig{color: cliutil.ColorNever, stderr: io.Discard}
}

func spanOf(start, end int) unparen.Span {
	return unparen.Span{Start: types.ByteOffset(start), End: types.ByteOffset(end)}
}

func runCheck(t *testing.T, cfg *checkConfig, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := cfg.exec(context.Background(), strings.NewReader(stdin), &out, args)
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRootBuilds(t *testing.T) {
	root := Root()
	require.NotNil(t, root)
}

func TestCheckStdin(t *testing.T) {
	out, err := runCheck(t, newCheck(), "x = (a) + b;\n", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "<stdin>:1:5: removable (simple or dotted name)")
	assert.Contains(t, out, "1 files, 1 parenthesized, 1 removable")
}

func TestCheckAll(t *testing.T) {
	src := "x = (a + b) * (c);\n"

	out, err := runCheck(t, newCheck(), src, "-")
	require.NoError(t, err)
	assert.NotContains(t, out, "kept")

	cfg := newCheck()
	cfg.All = true
	out, err = runCheck(t, cfg, src, "-")
	require.NoError(t, err)
	assert.Contains(t, out, "<stdin>:1:5: kept (")
	assert.Contains(t, out, "<stdin>:1:15: removable (")
}

func TestCheckFail(t *testing.T) {
	cfg := newCheck()
	cfg.Fail = true

	_, err := runCheck(t, cfg, "x = (a);\n", "-")
	assert.ErrorIs(t, err, errRemovable)

	_, err = runCheck(t, cfg, "x = a * (b + c);\n", "-")
	assert.NoError(t, err)

	_, err = runCheck(t, cfg, "x = a * (b + c;\n", "-")
	assert.ErrorIs(t, err, errParse)
}

func TestCheckJSON(t *testing.T) {
	cfg := newCheck()
	cfg.JSON = true
	out, err := runCheck(t, cfg, "x = (a) + (b + c) * d;\n", "-")
	require.NoError(t, err)

	var report ReportJSON
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Files, 1)
	assert.Equal(t, "<stdin>", report.Files[0].Path)
	assert.Equal(t, 2, report.Summary.Findings)
	assert.Equal(t, 1, report.Summary.Removable)
	require.Len(t, report.Files[0].Findings, 1, "kept findings need -all")
	f := report.Files[0].Findings[0]
	assert.Equal(t, FindingJSON{
		Line: 1, Column: 5, Start: 4, End: 7,
		Kind: "ParenthesizedExpression", Removable: true, Reason: "simple or dotted name",
	}, f)
}

func TestCheckSummaryAndQuiet(t *testing.T) {
	cfg := newCheck()
	cfg.Summary = true
	out, err := runCheck(t, cfg, "x = (a);\n", "-")
	require.NoError(t, err)
	assert.Equal(t, "1 files, 1 parenthesized, 1 removable\n", out)

	cfg = newCheck()
	cfg.Quiet = true
	cfg.Fail = true
	out, err = runCheck(t, cfg, "x = (a);\n", "-")
	assert.ErrorIs(t, err, errRemovable)
	assert.Empty(t, out)
}

func TestCheckIgnoreDiagnostics(t *testing.T) {
	src := "x = (a + b;\n"
	out, err := runCheck(t, newCheck(), src, "-")
	require.NoError(t, err)
	assert.Contains(t, out, "<stdin>:1:")
	assert.Contains(t, out, "[")

	cfg := newCheck()
	cfg.Ignore = "*"
	out, err = runCheck(t, cfg, src, "-")
	require.NoError(t, err)
	assert.NotContains(t, out, "[")
}

func TestCheckPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "a.cs"), "x = (a);\n")
	writeFile(t, filepath.Join(dir, "src", "obj", "gen.cs"), "x = (a);\n")
	writeFile(t, filepath.Join(dir, "b.cs"), "y = (b);\n")

	out, err := runCheck(t, newCheck(), "", filepath.Join(dir, "src"), filepath.Join(dir, "b.cs"))
	require.NoError(t, err)
	assert.Contains(t, out, "a.cs:1:5: removable")
	assert.Contains(t, out, "b.cs:1:5: removable")
	assert.NotContains(t, out, "gen.cs")
	assert.Contains(t, out, "2 files, 2 parenthesized, 2 removable")
}

func TestCheckUsageErrors(t *testing.T) {
	cfg := newCheck()
	cfg.Oracle = "sometimes"
	_, err := runCheck(t, cfg, "", "-")
	assert.ErrorIs(t, err, cli.ErrUsage)

	_, err = runCheck(t, newCheck(), "", "a.cs", "-")
	assert.ErrorIs(t, err, cli.ErrUsage)

	cfg = newCheck()
	cfg.Watch = true
	_, err = runCheck(t, cfg, "", "-")
	assert.ErrorIs(t, err, cli.ErrUsage)

	_, err = runCheck(t, newCheck(), "", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheckOracleNever(t *testing.T) {
	src := "int a = 1, b = 2, c = 3;\nvar x = a + (b + c);\n"
	out, err := runCheck(t, newCheck(), src, "-")
	require.NoError(t, err)
	assert.Contains(t, out, "1 removable")

	cfg := newCheck()
	cfg.Oracle = "never"
	out, err = runCheck(t, cfg, src, "-")
	require.NoError(t, err)
	assert.Contains(t, out, "0 removable")
}

func TestCheckVerboseLogs(t *testing.T) {
	var logs bytes.Buffer
	cfg := newCheck()
	cfg.stderr = &logs
	cfg.Trace = true
	_, err := runCheck(t, cfg, "x = (a);\n", "-")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "msg=decision")
	assert.Contains(t, logs.String(), "component=analyzer")
}

func TestColorOption(t *testing.T) {
	cfg := newCheck()
	_, err := cfg.colorOpt(nil, "always")
	require.NoError(t, err)
	out, err := runCheck(t, cfg, "x = (a);\n", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	_, err = cfg.colorOpt(nil, "rainbow")
	assert.ErrorIs(t, err, cli.ErrUsage)
}

func TestExplain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.cs")
	writeFile(t, path, "x = (a * b) + c;\n")

	var out bytes.Buffer
	require.NoError(t, newExplain().exec(nil, &out, []string{path}))
	assert.Contains(t, out.String(), "1:5 (a * b) removable (")
	assert.Contains(t, out.String(), "    in Add(")
}

func TestExplainTree(t *testing.T) {
	cfg := newExplain()
	cfg.Tree = true
	var out bytes.Buffer
	require.NoError(t, cfg.exec(strings.NewReader("x = (a);\ny = b;\n"), &out, []string{"-"}))
	assert.Contains(t, out.String(), "1: ExpressionStatement(")
	assert.Contains(t, out.String(), "2: ExpressionStatement(")
}

func TestExplainErrors(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, newExplain().exec(nil, &out, nil), cli.ErrUsage)

	cfg := newExplain()
	cfg.LangVersion = "x.y"
	err := cfg.exec(strings.NewReader("x = (a);"), &out, []string{"-"})
	assert.ErrorIs(t, err, cli.ErrUsage)

	err = newExplain().exec(nil, &out, []string{filepath.Join(t.TempDir(), "missing.cs")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSnippet(t *testing.T) {
	content := []byte("x = (a +\n     b);")
	assert.Equal(t, "(a + b)", snippet(content, spanOf(4, len(content)-1)))

	long := []byte("(" + strings.Repeat("a + ", 30) + "a)")
	s := snippet(long, spanOf(0, len(long)))
	assert.Len(t, s, maxSnippet)
	assert.True(t, strings.HasSuffix(s, "..."))
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	printVersion(&out)
	assert.True(t, strings.HasPrefix(out.String(), "unparen "))
}

func TestIsSourceFile(t *testing.T) {
	assert.True(t, isSourceFile("a/b.cs"))
	assert.True(t, isSourceFile("script.csx"))
	assert.False(t, isSourceFile("a.cs.swp"))
	assert.False(t, isSourceFile("dir"))
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.cs")
	writeFile(t, path, "x = (a);\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := newCheck()
	cfg.Watch = true
	var out syncBuffer
	done := make(chan error, 1)
	go func() { done <- cfg.exec(ctx, nil, &out, []string{dir}) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "1 removable")
	}, 5*time.Second, 10*time.Millisecond)

	writeFile(t, path, "x = (a) + (b);\n")
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "2 removable")
	}, 5*time.Second, 10*time.Millisecond)
	assert.Contains(t, out.String(), "\n--- ")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
