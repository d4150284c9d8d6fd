package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/csfmt/unparen"
	"github.com/csfmt/unparen/cmd/internal/cliutil"
	"github.com/csfmt/unparen/internal/types"
)

// errRemovable reports that -fail found removable parentheses.
var errRemovable = errors.New("removable parentheses found")

// errParse reports that -fail found files that do not parse.
var errParse = errors.New("parse errors found")

const checkDescription = `Check parses every .cs and .csx file under the given paths and reports
each parenthesized expression and pattern whose parentheses can be removed.
Directories are walked recursively, skipping bin, obj and .git
directories. A single "-" reads one file from standard input. Without
arguments the current directory is checked.

Output is one line per finding:

  path:line:col: removable (reason)

Diagnostics codes given to -ignore may end or start with *, as in
"language-*".`

type checkConfig struct {
	*cli.Command

	JSON        bool   `cli:"name=json desc='write the report as JSON'"`
	All         bool   `cli:"name=all aliases=a desc='also list parentheses that must be kept'"`
	Summary     bool   `cli:"name=summary desc='print counts only'"`
	Quiet       bool   `cli:"name=quiet aliases=q desc='no output, exit code only'"`
	Fail        bool   `cli:"name=fail desc='exit with status 2 if parentheses can be removed'"`
	Watch       bool   `cli:"name=watch aliases=w desc='check again whenever a file changes'"`
	LangVersion string `cli:"name=langversion desc='C# language version to parse with (default latest)'"`
	Checked     bool   `cli:"name=checked desc='treat integral arithmetic as checked'"`
	Oracle      string `cli:"name=oracle desc='regrouping oracle: semantic or never' default=semantic"`
	Jobs        int    `cli:"name=j aliases=jobs desc='files to analyze at once (default GOMAXPROCS)'"`
	Ignore      string `cli:"name=ignore desc='comma separated diagnostic codes to hide'"`
	Output      string `cli:"name=o aliases=output desc='output file (default stdout)'"`
	Verbose     bool   `cli:"name=v aliases=verbose desc='enable debug logging'"`
	Trace       bool   `cli:"name=vv desc='enable trace logging (implies -v)'"`

	color  string
	stderr io.Writer
}

// CheckCommand returns the check subcommand.
func CheckCommand() *cli.Command {
	cfg := &checkConfig{color: cliutil.ColorAuto, stderr: os.Stderr}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "color",
		Description: "color output: auto, always or never",
		Type:        cli.NamedFuncOpt(cfg.colorOpt, "(mode)"),
	})
	return cli.NewCommandAt(&cfg.Command, "check").
		WithAliases("c").
		WithSynopsis("check [options] [paths...] - Report removable parentheses").
		WithDescription(checkDescription).
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *checkConfig) colorOpt(_ *cli.Context, v string) (any, error) {
	mode, err := cliutil.ParseColorMode(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.color = mode
	return mode, nil
}

func (cfg *checkConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(exitError)
	}

	out := cc.Out
	if cfg.Output != "" {
		f, done, err := cliutil.GetOutput(cfg.Output)
		if err != nil {
			return err
		}
		defer done()
		out = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = cfg.exec(ctx, cc.In, out, args)
	switch {
	case errors.Is(err, errRemovable):
		return cli.ExitCodeErr(exitRemovable)
	case errors.Is(err, errParse):
		return cli.ExitCodeErr(exitError)
	case errors.Is(err, cli.ErrUsage):
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(exitError)
	}
	return err
}

// exec checks args and writes the report to out.
func (cfg *checkConfig) exec(ctx context.Context, in io.Reader, out io.Writer, args []string) error {
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	if cfg.Watch {
		if isStdin(args) {
			return fmt.Errorf("%w: -watch cannot read standard input", cli.ErrUsage)
		}
		return cfg.watch(ctx, out, args, opts)
	}

	report, err := cfg.check(ctx, in, args, opts)
	if err != nil {
		return err
	}
	if err := cfg.print(out, report); err != nil {
		return err
	}
	if !cfg.Fail {
		return nil
	}
	if len(report.Removable()) > 0 {
		return errRemovable
	}
	if report.HasErrors() {
		return errParse
	}
	return nil
}

func (cfg *checkConfig) options() ([]unparen.Option, error) {
	opts := []unparen.Option{
		unparen.WithLanguageVersion(cfg.LangVersion),
		unparen.WithCheckedArithmetic(cfg.Checked),
		unparen.WithConcurrency(cfg.Jobs),
	}
	switch cfg.Oracle {
	case "", "semantic":
	case "never":
		opts = append(opts, unparen.WithOracle(unparen.NeverReassociate))
	default:
		return nil, fmt.Errorf("%w: unknown oracle %q (want semantic or never)", cli.ErrUsage, cfg.Oracle)
	}
	if logger := setupLogger(cfg.stderr, cfg.Verbose, cfg.Trace); logger != nil {
		opts = append(opts, unparen.WithLogger(logger))
	}
	return opts, nil
}

// check runs one pass over args.
func (cfg *checkConfig) check(ctx context.Context, in io.Reader, args []string, opts []unparen.Option) (*unparen.Report, error) {
	if isStdin(args) {
		content, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		fr, err := unparen.CheckSource("<stdin>", content, opts...)
		if err != nil {
			return nil, err
		}
		return &unparen.Report{Files: []unparen.FileReport{fr}}, nil
	}
	src, err := buildSource(args)
	if err != nil {
		return nil, err
	}
	return unparen.Check(ctx, src, opts...)
}

func isStdin(args []string) bool {
	return len(args) == 1 && args[0] == "-"
}

// buildSource composes a Source from path arguments: directories are
// walked, files are taken as given.
func buildSource(args []string) (unparen.Source, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	if slices.Contains(args, "-") {
		return nil, fmt.Errorf("%w: \"-\" must be the only path", cli.ErrUsage)
	}
	var sources []unparen.Source
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		src, err := unparen.DirTree(arg)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	if len(files) > 0 {
		sources = append(sources, unparen.Files(files...))
	}
	if len(sources) == 1 {
		return sources[0], nil
	}
	return unparen.Multi(sources...), nil
}

// keepDiagnostic returns the filter built from -ignore.
func (cfg *checkConfig) keepDiagnostic() func(unparen.Diagnostic) bool {
	var patterns []string
	for _, p := range strings.Split(cfg.Ignore, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return func(d unparen.Diagnostic) bool {
		for _, p := range patterns {
			if types.MatchGlob(p, d.Code) {
				return false
			}
		}
		return true
	}
}

func (cfg *checkConfig) print(w io.Writer, report *unparen.Report) error {
	if cfg.Quiet {
		return nil
	}
	keep := cfg.keepDiagnostic()
	if cfg.JSON {
		return printJSON(w, buildReportJSON(report, cfg.All, keep))
	}
	pal := cliutil.NewPalette(cliutil.UseColor(w, cfg.color))
	if !cfg.Summary {
		for _, fr := range report.Files {
			for _, d := range fr.Diagnostics {
				if keep(d) {
					printDiagnostic(w, pal, d)
				}
			}
			for _, f := range fr.Findings {
				if f.Removable || cfg.All {
					printFinding(w, pal, f)
				}
			}
		}
	}
	printSummary(w, report)
	return nil
}

func printFinding(w io.Writer, pal cliutil.Palette, f unparen.Finding) {
	verdict := pal.Kept("kept")
	if f.Removable {
		verdict = pal.Removable("removable")
	}
	_, _ = fmt.Fprintf(w, "%s: %s (%s)\n",
		pal.Location("%s:%d:%d", f.File, f.Line, f.Column), verdict, pal.Reason("%s", f.Reason))
}

func printDiagnostic(w io.Writer, pal cliutil.Palette, d unparen.Diagnostic) {
	sev := pal.Warning("%s", d.Severity)
	if d.Severity <= unparen.SeverityError {
		sev = pal.Error("%s", d.Severity)
	}
	_, _ = fmt.Fprintf(w, "%s: %s: [%s] %s\n",
		pal.Location("%s:%d:%d", d.File, d.Line, d.Column), sev, d.Code, d.Message)
}

func printSummary(w io.Writer, report *unparen.Report) {
	skipped := 0
	for _, fr := range report.Files {
		if fr.Skipped {
			skipped++
		}
	}
	_, _ = fmt.Fprintf(w, "%d files, %d parenthesized, %d removable",
		len(report.Files), len(report.Findings()), len(report.Removable()))
	if n := len(report.Diagnostics()); n > 0 {
		_, _ = fmt.Fprintf(w, ", %d diagnostics", n)
	}
	if skipped > 0 {
		_, _ = fmt.Fprintf(w, ", %d skipped", skipped)
	}
	_, _ = fmt.Fprintln(w)
}
