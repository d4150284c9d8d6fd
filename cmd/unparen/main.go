// Command unparen reports parentheses in C# code that can be removed
// without changing how the code parses or what it computes.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/scott-cotton/cli"

	"github.com/csfmt/unparen"
)

// Exit codes.
const (
	exitOK        = 0 // success
	exitError     = 1 // usage error or processing failure
	exitRemovable = 2 // -fail found removable parentheses
)

const usage = `unparen - redundant parenthesis checker for C#

Usage:
  unparen <command> [options] [arguments]

Commands:
  check    Report parenthesized expressions and patterns in files
  explain  Show the syntax tree and every decision for one file
  version  Show version

Common options:
  -v       Enable debug logging
  -vv      Enable trace logging (implies -v)

Examples:
  unparen check ./src
  unparen check -all -color=always Program.cs
  unparen check -json -fail ./src
  unparen check -watch ./src
  echo 'x = (a * b) + c;' | unparen explain -
`

func main() {
	cli.MainContext(context.Background(), Root())
}

// Root returns the root command.
func Root() *cli.Command {
	return cli.NewCommand("unparen").
		WithSynopsis("unparen <command> [options] [arguments]").
		WithDescription(usage).
		WithSubs(
			CheckCommand(),
			ExplainCommand(),
			VersionCommand())
}

// setupLogger returns a text logger on w for -v and -vv, or nil.
func setupLogger(w io.Writer, verbose, trace bool) *slog.Logger {
	if !verbose && !trace {
		return nil
	}
	level := slog.LevelDebug
	if trace {
		level = unparen.LevelTrace
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// VersionCommand returns the version subcommand.
func VersionCommand() *cli.Command {
	return cli.NewCommand("version").
		WithSynopsis("version - Show version").
		WithRun(func(cc *cli.Context, _ []string) error {
			printVersion(cc.Out)
			return nil
		})
}

func printVersion(w io.Writer) {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	_, _ = fmt.Fprintf(w, "unparen %s\n", version)
}
