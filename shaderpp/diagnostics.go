package shaderpp

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Severity distinguishes a hard syntax error (aborts the enclosing pass)
// from an informational note (e.g. an @insertpiece that resolved to empty).
type Severity int

const (
	SeverityError Severity = iota
	SeverityInfo
)

func (s Severity) String() string {
	if s == SeverityInfo {
		return "info"
	}
	return "error"
}

// Diagnostic is one reported condition from a single pass. Errors always
// abort the pass that raised them; infos never do.
type Diagnostic struct {
	Severity Severity
	Pass     string
	Line     int
	Message  string
}

// calculateLineCount returns the 1-based line number of offset idx into
// buffer: one more than the number of '\n' bytes in buffer[0:idx].
func calculateLineCount(buffer string, idx int) int {
	return 1 + strings.Count(buffer[:idx], "\n")
}

// lineOf returns the 1-based line number of a SubString's start within its
// own buffer.
func lineOf(s SubString) int {
	return calculateLineCount(*s.buffer, s.start)
}

var (
	defaultLoggerOnce sync.Once
	defaultLoggerVal  *slog.Logger
)

// defaultLogger builds the package default logger lazily. Setting
// SHADERPP_DEBUG_LOG raises the level to Debug.
func defaultLogger() *slog.Logger {
	defaultLoggerOnce.Do(func() {
		level := slog.LevelInfo
		if os.Getenv("SHADERPP_DEBUG_LOG") != "" {
			level = slog.LevelDebug
		}
		defaultLoggerVal = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
	})
	return defaultLoggerVal
}

// logDiagnostic emits d through logger, or the package default if logger
// is nil.
func logDiagnostic(logger *slog.Logger, d Diagnostic) {
	if logger == nil {
		logger = defaultLogger()
	}
	attrs := []any{
		slog.String("pass", d.Pass),
		slog.Int("line", d.Line),
	}
	if d.Severity == SeverityError {
		logger.Error(d.Message, attrs...)
	} else {
		logger.Info(d.Message, attrs...)
	}
}

// reportError records and logs a pass-aborting diagnostic.
func reportError(diags *[]Diagnostic, logger *slog.Logger, pass string, line int, message string) {
	d := Diagnostic{Severity: SeverityError, Pass: pass, Line: line, Message: message}
	*diags = append(*diags, d)
	logDiagnostic(logger, d)
}

// reportInfo records and logs a non-fatal diagnostic.
func reportInfo(diags *[]Diagnostic, logger *slog.Logger, pass string, line int, message string) {
	d := Diagnostic{Severity: SeverityInfo, Pass: pass, Line: line, Message: message}
	*diags = append(*diags, d)
	logDiagnostic(logger, d)
}
