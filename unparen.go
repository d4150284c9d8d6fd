// Package unparen decides whether the parentheses around a C# expression
// or pattern can be removed without changing how the code parses or what
// it computes.
//
// The decision functions work on trees from the syntax package and never
// modify them:
//
//	ok := unparen.CanRemoveParentheses(node, oracle)
//	ok, reason := unparen.Explain(node, oracle)
//	ok = unparen.CanRemovePatternParentheses(pattern)
//
// Scan applies them to every parenthesized node of a tree, and Check parses
// and scans every file of a Source:
//
//	src, err := unparen.DirTree("./src")
//	report, err := unparen.Check(ctx, src, unparen.WithLogger(slog.Default()))
//	for _, f := range report.Removable() {
//	    fmt.Println(f)
//	}
package unparen

import (
	"errors"
	"log/slog"

	"github.com/csfmt/unparen/internal/types"
	"github.com/csfmt/unparen/syntax"
)

// ErrNoSources is returned when Check is called without a source.
var ErrNoSources = errors.New("no sources provided")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (tokens, nodes, decisions).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// Option configures an Analyzer, Scan and Check.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	oracle      Oracle
	version     string
	checked     bool
	concurrency int
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithOracle sets the oracle consulted about associative regrouping. Check
// otherwise builds a declared-type model of each file and asks it.
func WithOracle(oracle Oracle) Option {
	return func(c *config) { c.oracle = oracle }
}

// WithLanguageVersion sets the C# language version Check parses with,
// such as "8.0" or "12". The default is the latest supported version.
func WithLanguageVersion(version string) Option {
	return func(c *config) { c.version = version }
}

// WithCheckedArithmetic makes Check treat integral arithmetic as checked
// unless an unchecked context says otherwise, as the compiler's -checked
// switch does.
func WithCheckedArithmetic(checked bool) Option {
	return func(c *config) { c.checked = checked }
}

// WithConcurrency bounds the number of files Check analyzes at once.
// Zero or less means GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(c *config) { c.concurrency = n }
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Analyzer applies the decision functions with a fixed oracle and logs
// each decision at trace level.
type Analyzer struct {
	types.Logger
	oracle Oracle
}

// NewAnalyzer returns an Analyzer configured by opts. Without WithOracle
// it refuses every associative regrouping.
func NewAnalyzer(opts ...Option) *Analyzer {
	cfg := newConfig(opts)
	return &Analyzer{
		Logger: types.Logger{L: types.Component(cfg.logger, "analyzer")},
		oracle: cfg.oracle,
	}
}

// CanRemoveParentheses is the package-level CanRemoveParentheses using the
// analyzer's oracle.
func (a *Analyzer) CanRemoveParentheses(node *syntax.ParenthesizedExpression) bool {
	ok, _ := a.Explain(node)
	return ok
}

// Explain is the package-level Explain using the analyzer's oracle.
func (a *Analyzer) Explain(node *syntax.ParenthesizedExpression) (bool, Reason) {
	ok, reason := decide(node, a.oracle)
	a.trace(node, ok, reason)
	return ok, reason
}

// CanRemovePatternParentheses is the package-level function of that name.
func (a *Analyzer) CanRemovePatternParentheses(node *syntax.ParenthesizedPattern) bool {
	ok, _ := a.ExplainPattern(node)
	return ok
}

// ExplainPattern is the package-level function of that name.
func (a *Analyzer) ExplainPattern(node *syntax.ParenthesizedPattern) (bool, Reason) {
	ok, reason := decidePattern(node)
	a.trace(node, ok, reason)
	return ok, reason
}

func (a *Analyzer) trace(node syntax.Node, ok bool, reason Reason) {
	if !a.TraceEnabled() {
		return
	}
	span := syntax.SpanOf(node)
	a.Trace("decision",
		slog.String("kind", node.Kind().String()),
		slog.Bool("removable", ok),
		slog.String("reason", reason.String()),
		slog.Int("start", int(span.Start)),
		slog.Int("end", int(span.End)))
}
