package unparen

import "github.com/csfmt/unparen/internal/types"

// Type aliases for the public API. The types live in internal/types so the
// lexer and parser can share them.

// Diagnostic is a parse issue with its file position.
type Diagnostic = types.Diagnostic

// Severity for diagnostics. Lower is more severe.
type Severity = types.Severity

// Span is a byte range in source text.
type Span = types.Span

// Severity levels.
const (
	SeverityFatal   = types.SeverityFatal
	SeverityError   = types.SeverityError
	SeverityWarning = types.SeverityWarning
	SeverityInfo    = types.SeverityInfo
)
