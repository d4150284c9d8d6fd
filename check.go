package unparen

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"

	"github.com/csfmt/unparen/internal/parser"
	"github.com/csfmt/unparen/internal/semantic"
	"github.com/csfmt/unparen/internal/types"
	"github.com/csfmt/unparen/syntax"
)

// FileReport holds the findings and parse diagnostics for one file.
type FileReport struct {
	Path        string
	Findings    []Finding
	Diagnostics []Diagnostic
	// Skipped is set for files that look binary. They are not parsed.
	Skipped bool
}

// Report is the result of Check, with files ordered by path.
type Report struct {
	Files []FileReport
}

// Findings returns every finding of every file.
func (r *Report) Findings() []Finding {
	var out []Finding
	for _, f := range r.Files {
		out = append(out, f.Findings...)
	}
	return out
}

// Removable returns the findings whose parentheses can be removed.
func (r *Report) Removable() []Finding {
	var out []Finding
	for _, f := range r.Files {
		for _, finding := range f.Findings {
			if finding.Removable {
				out = append(out, finding)
			}
		}
	}
	return out
}

// Diagnostics returns the parse diagnostics of every file.
func (r *Report) Diagnostics() []Diagnostic {
	var out []Diagnostic
	for _, f := range r.Files {
		out = append(out, f.Diagnostics...)
	}
	return out
}

// HasErrors reports whether any file has an error or fatal diagnostic.
func (r *Report) HasErrors() bool {
	for _, d := range r.Diagnostics() {
		if d.Severity <= SeverityError {
			return true
		}
	}
	return false
}

// Check parses every file of source and decides each parenthesized
// expression and pattern in it. Files are analyzed concurrently. Unless
// WithOracle is given, associative regrouping is decided by a model of
// the types declared in each file.
//
// Malformed code is not an error: the parser recovers and its diagnostics
// are reported per file. Check fails only when the source cannot be
// listed or read, the language version is invalid or ctx is done.
func Check(ctx context.Context, source Source, opts ...Option) (*Report, error) {
	if source == nil {
		return nil, ErrNoSources
	}
	cfg := newConfig(opts)
	parseOpts, err := cfg.parserOptions()
	if err != nil {
		return nil, err
	}
	logger := cfg.logger

	files, err := source.ListFiles()
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}
	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(ctx, slog.LevelInfo, "checking",
			slog.Int("files", len(files)))
	}

	limit := cfg.concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	reports := make([]FileReport, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := readFile(source, path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			reports[i] = checkFile(path, content, cfg, parseOpts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(reports, func(a, b FileReport) int {
		return cmp.Compare(a.Path, b.Path)
	})
	report := &Report{Files: reports}

	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(ctx, slog.LevelInfo, "check complete",
			slog.Int("files", len(reports)),
			slog.Int("findings", len(report.Findings())),
			slog.Int("removable", len(report.Removable())),
			slog.Int("diagnostics", len(report.Diagnostics())))
	}
	return report, nil
}

// CheckSource is Check for a single in-memory file. name is used only for
// reporting.
func CheckSource(name string, content []byte, opts ...Option) (FileReport, error) {
	cfg := newConfig(opts)
	parseOpts, err := cfg.parserOptions()
	if err != nil {
		return FileReport{}, err
	}
	return checkFile(name, content, cfg, parseOpts), nil
}

func (c *config) parserOptions() ([]parser.Option, error) {
	switch c.version {
	case "", "latest", "default":
		return nil, nil
	}
	v, err := semver.NewVersion(c.version)
	if err != nil {
		return nil, fmt.Errorf("language version %q: %w", c.version, err)
	}
	return []parser.Option{parser.WithLanguageVersion(v)}, nil
}

func readFile(source Source, path string) ([]byte, error) {
	r, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return io.ReadAll(r)
}

// Parse parses content as a C# compilation unit with the language version
// set by WithLanguageVersion. Parent links are set on the tree. Malformed
// code still yields a tree; its problems are returned as diagnostics
// located in a file called name. The error is reserved for bad options.
func Parse(name string, content []byte, opts ...Option) (*syntax.CompilationUnit, []Diagnostic, error) {
	cfg := newConfig(opts)
	parseOpts, err := cfg.parserOptions()
	if err != nil {
		return nil, nil, err
	}
	unit, spanDiags := parser.Parse(content, types.Component(cfg.logger, "parser"), parseOpts...)
	return unit, locateDiagnostics(name, types.NewLineTable(content), spanDiags), nil
}

// NewSemanticOracle returns the oracle Check uses when WithOracle is not
// given: a model of the types declared in unit. It honors
// WithCheckedArithmetic and WithLogger.
func NewSemanticOracle(unit *syntax.CompilationUnit, opts ...Option) Oracle {
	cfg := newConfig(opts)
	return newSemanticOracle(unit, cfg)
}

func newSemanticOracle(unit *syntax.CompilationUnit, cfg config) Oracle {
	return semantic.New(unit,
		semantic.WithCheckedArithmetic(cfg.checked),
		semantic.WithLogger(types.Component(cfg.logger, "semantic")))
}

func checkFile(path string, content []byte, cfg config, parseOpts []parser.Option) FileReport {
	logger := cfg.logger
	if looksBinary(content) {
		if logEnabled(logger, slog.LevelDebug) {
			logger.LogAttrs(context.Background(), slog.LevelDebug, "skipping binary file",
				slog.String("path", path))
		}
		return FileReport{Path: path, Skipped: true}
	}

	unit, spanDiags := parser.Parse(content, types.Component(logger, "parser"), parseOpts...)
	oracle := cfg.oracle
	if oracle == nil {
		oracle = newSemanticOracle(unit, cfg)
	}
	findings := NewAnalyzer(WithOracle(oracle), WithLogger(logger)).Scan(unit)

	lines := types.NewLineTable(content)
	for i := range findings {
		f := &findings[i]
		f.File = path
		f.Line, f.Column = lines.Position(f.Span.Start)
	}
	diags := locateDiagnostics(path, lines, spanDiags)

	if logEnabled(logger, slog.LevelDebug) {
		logger.LogAttrs(context.Background(), slog.LevelDebug, "file checked",
			slog.String("path", path),
			slog.Int("findings", len(findings)),
			slog.Int("diagnostics", len(diags)))
	}
	return FileReport{Path: path, Findings: findings, Diagnostics: diags}
}

func locateDiagnostics(path string, lines *types.LineTable, spanDiags []types.SpanDiagnostic) []Diagnostic {
	diags := make([]Diagnostic, 0, len(spanDiags))
	for _, sd := range spanDiags {
		line, col := lines.Position(sd.Span.Start)
		diags = append(diags, Diagnostic{
			Severity: sd.Severity,
			Code:     sd.Code,
			Message:  sd.Message,
			File:     path,
			Line:     line,
			Column:   col,
		})
	}
	return diags
}

// looksBinary reports whether content has a NUL byte in its first
// kilobyte.
func looksBinary(content []byte) bool {
	return bytes.IndexByte(content[:min(len(content), 1024)], 0) >= 0
}

// logEnabled returns true if logging is enabled at the given level.
func logEnabled(logger *slog.Logger, level slog.Level) bool {
	return logger != nil && logger.Enabled(context.Background(), level)
}
