// Package cliutil provides shared output helpers for the unparen command.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by ParseColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ParseColorMode validates a -color argument. The empty string means auto.
func ParseColorMode(s string) (string, error) {
	switch s {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return s, nil
	}
	return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
}

// UseColor reports whether output to w should be colored under mode. In
// auto mode only terminals get color, and NO_COLOR turns it off.
func UseColor(w io.Writer, mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Palette formats the parts of a report line.
type Palette struct {
	Removable func(string, ...any) string
	Kept      func(string, ...any) string
	Reason    func(string, ...any) string
	Location  func(string, ...any) string
	Error     func(string, ...any) string
	Warning   func(string, ...any) string
}

// NewPalette returns a colored palette, or a plain one when enabled is
// false.
func NewPalette(enabled bool) Palette {
	if !enabled {
		return Palette{
			Removable: fmt.Sprintf,
			Kept:      fmt.Sprintf,
			Reason:    fmt.Sprintf,
			Location:  fmt.Sprintf,
			Error:     fmt.Sprintf,
			Warning:   fmt.Sprintf,
		}
	}
	return Palette{
		Removable: sprintf(color.FgGreen, color.Bold),
		Kept:      sprintf(color.Faint),
		Reason:    sprintf(color.FgCyan),
		Location:  sprintf(color.Bold),
		Error:     sprintf(color.FgRed, color.Bold),
		Warning:   sprintf(color.FgYellow),
	}
}

// sprintf builds a formatter that colors regardless of where the text
// ends up. UseColor has already made that decision.
func sprintf(attrs ...color.Attribute) func(string, ...any) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintfFunc()
}

// GetOutput opens the output file or returns stdout.
func GetOutput(outputFile string) (*os.File, func(), error) {
	if outputFile == "" || outputFile == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// PrintError writes a formatted error message to w.
func PrintError(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "error: "+format+"\n", args...)
}
