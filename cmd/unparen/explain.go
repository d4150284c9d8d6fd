package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/csfmt/unparen"
	"github.com/csfmt/unparen/cmd/internal/cliutil"
	"github.com/csfmt/unparen/internal/types"
	"github.com/csfmt/unparen/syntax"
)

const explainDescription = `Explain parses one file, or standard input when the path is "-", and
prints every parenthesized expression and pattern with the decision, the
reason for it and the construct that holds it. With -tree the syntax tree
of each statement is printed first.`

// maxSnippet bounds how much source text is echoed per finding.
const maxSnippet = 60

type explainConfig struct {
	*cli.Command

	Tree        bool   `cli:"name=tree aliases=t desc='print the syntax tree of each statement'"`
	LangVersion string `cli:"name=langversion desc='C# language version to parse with (default latest)'"`
	Checked     bool   `cli:"name=checked desc='treat integral arithmetic as checked'"`
	Oracle      string `cli:"name=oracle desc='regrouping oracle: semantic or never' default=semantic"`
	Verbose     bool   `cli:"name=v aliases=verbose desc='enable debug logging'"`
	Trace       bool   `cli:"name=vv desc='enable trace logging (implies -v)'"`

	color  string
	stderr io.Writer
}

// ExplainCommand returns the explain subcommand.
func ExplainCommand() *cli.Command {
	cfg := &explainConfig{color: cliutil.ColorAuto, stderr: os.Stderr}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "color",
		Description: "color output: auto, always or never",
		Type:        cli.NamedFuncOpt(cfg.colorOpt, "(mode)"),
	})
	return cli.NewCommandAt(&cfg.Command, "explain").
		WithAliases("e").
		WithSynopsis("explain [options] <file|-> - Show every decision with its reason").
		WithDescription(explainDescription).
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *explainConfig) colorOpt(_ *cli.Context, v string) (any, error) {
	mode, err := cliutil.ParseColorMode(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.color = mode
	return mode, nil
}

func (cfg *explainConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(exitError)
	}
	if err := cfg.exec(cc.In, cc.Out, args); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			cfg.Usage(cc, err)
			return cli.ExitCodeErr(exitError)
		}
		return err
	}
	return nil
}

func (cfg *explainConfig) exec(in io.Reader, out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: explain takes exactly one file", cli.ErrUsage)
	}
	name := args[0]
	var content []byte
	var err error
	if name == "-" {
		name = "<stdin>"
		content, err = io.ReadAll(in)
	} else {
		content, err = os.ReadFile(name)
	}
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.stderr, cfg.Verbose, cfg.Trace)
	opts := []unparen.Option{
		unparen.WithLanguageVersion(cfg.LangVersion),
		unparen.WithCheckedArithmetic(cfg.Checked),
		unparen.WithLogger(logger),
	}
	unit, diags, err := unparen.Parse(name, content, opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	var oracle unparen.Oracle
	switch cfg.Oracle {
	case "", "semantic":
		oracle = unparen.NewSemanticOracle(unit, opts...)
	case "never":
		oracle = unparen.NeverReassociate
	default:
		return fmt.Errorf("%w: unknown oracle %q (want semantic or never)", cli.ErrUsage, cfg.Oracle)
	}

	pal := cliutil.NewPalette(cliutil.UseColor(out, cfg.color))
	lines := types.NewLineTable(content)

	for _, d := range diags {
		printDiagnostic(out, pal, d)
	}
	if cfg.Tree {
		for _, s := range unit.Statements {
			line, _ := lines.Position(syntax.SpanOf(s).Start)
			_, _ = fmt.Fprintf(out, "%s %s\n", pal.Location("%d:", line), syntax.Dump(s))
		}
		_, _ = fmt.Fprintln(out)
	}

	a := unparen.NewAnalyzer(append(opts, unparen.WithOracle(oracle))...)
	syntax.Inspect(unit, func(n syntax.Node) bool {
		var ok bool
		var reason unparen.Reason
		switch n := n.(type) {
		case *syntax.ParenthesizedExpression:
			ok, reason = a.Explain(n)
		case *syntax.ParenthesizedPattern:
			ok, reason = a.ExplainPattern(n)
		default:
			return true
		}
		span := syntax.SpanOf(n)
		line, col := lines.Position(span.Start)
		verdict := pal.Kept("kept")
		if ok {
			verdict = pal.Removable("removable")
		}
		_, _ = fmt.Fprintf(out, "%s %s %s (%s)\n", pal.Location("%d:%d", line, col),
			snippet(content, span), verdict, pal.Reason("%s", reason))
		if p := syntax.LogicalParent(n); p != nil && p.Kind() != syntax.KindCompilationUnit {
			_, _ = fmt.Fprintf(out, "    in %s\n", syntax.Dump(p))
		}
		return true
	})
	return nil
}

// snippet returns the source text of span on one line, shortened to
// maxSnippet bytes.
func snippet(content []byte, span unparen.Span) string {
	end := min(int(span.End), len(content))
	s := strings.Join(strings.Fields(string(content[span.Start:end])), " ")
	if len(s) > maxSnippet {
		s = s[:maxSnippet-3] + "..."
	}
	return s
}
