package main

import (
	"encoding/json"
	"io"

	"github.com/csfmt/unparen"
)

// ReportJSON is the top-level JSON output of the check command.
type ReportJSON struct {
	Files       []FileJSON       `json:"files"`
	Diagnostics []DiagnosticJSON `json:"diagnostics,omitempty"`
	Summary     SummaryJSON      `json:"summary"`
}

// FileJSON holds the findings of one file.
type FileJSON struct {
	Path     string        `json:"path"`
	Skipped  bool          `json:"skipped,omitempty"`
	Findings []FindingJSON `json:"findings,omitempty"`
}

// FindingJSON is one parenthesized expression or pattern.
type FindingJSON struct {
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Kind      string `json:"kind"`
	Removable bool   `json:"removable"`
	Reason    string `json:"reason"`
}

// DiagnosticJSON is a parse diagnostic.
type DiagnosticJSON struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// SummaryJSON counts the report.
type SummaryJSON struct {
	Files       int `json:"files"`
	Findings    int `json:"findings"`
	Removable   int `json:"removable"`
	Diagnostics int `json:"diagnostics"`
}

func buildReportJSON(report *unparen.Report, all bool, keep func(unparen.Diagnostic) bool) ReportJSON {
	out := ReportJSON{Files: []FileJSON{}}
	for _, fr := range report.Files {
		fj := FileJSON{Path: fr.Path, Skipped: fr.Skipped}
		for _, f := range fr.Findings {
			out.Summary.Findings++
			if f.Removable {
				out.Summary.Removable++
			} else if !all {
				continue
			}
			fj.Findings = append(fj.Findings, FindingJSON{
				Line:      f.Line,
				Column:    f.Column,
				Start:     int(f.Span.Start),
				End:       int(f.Span.End),
				Kind:      f.Kind.String(),
				Removable: f.Removable,
				Reason:    f.Reason.String(),
			})
		}
		for _, d := range fr.Diagnostics {
			if !keep(d) {
				continue
			}
			out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
				Severity: d.Severity.String(),
				Code:     d.Code,
				Message:  d.Message,
				File:     d.File,
				Line:     d.Line,
				Column:   d.Column,
			})
		}
		out.Files = append(out.Files, fj)
	}
	out.Summary.Files = len(report.Files)
	out.Summary.Diagnostics = len(out.Diagnostics)
	return out
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
