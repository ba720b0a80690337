package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     os.Stderr,
	}
}

// WithOutput redirects user-facing diagnostics (stderr by default).
func (a *CLIErrorAdapter) WithOutput(w io.Writer) *CLIErrorAdapter {
	a.out = w
	return a
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if vpe, ok := As(err); ok {
		return a.exitCodeFromViewpack(vpe)
	}

	return 1
}

// exitCodeFromViewpack maps ViewpackError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromViewpack(err *ViewpackError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid input
	case CategoryFileSystem, CategoryArchive:
		return 11 // Materialization error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if vpe, ok := As(err); ok {
		return a.formatViewpack(vpe)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatViewpack formats a ViewpackError for display.
func (a *CLIErrorAdapter) formatViewpack(err *ViewpackError) string {
	if a.verbose {
		return err.Error()
	}

	msg := fmt.Sprintf("%s: %s", err.Category, err.Message)
	for _, key := range []string{"path", "directory", "entry"} {
		if v, ok := err.Context[key]; ok {
			msg = fmt.Sprintf("%s (%s: %v)", msg, key, v)
			break
		}
	}
	if err.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, err.Cause)
	}
	return msg
}

// Report logs the error, prints the diagnostic and returns the exit code.
// The caller decides when to exit.
func (a *CLIErrorAdapter) Report(err error) int {
	if err == nil {
		return 0
	}

	a.logError(err)
	_, _ = fmt.Fprintf(a.out, "%s\n", a.FormatError(err))
	return a.ExitCodeFor(err)
}

// logError logs an error with its classification and context.
func (a *CLIErrorAdapter) logError(err error) {
	if vpe, ok := As(err); ok {
		attrs := []slog.Attr{
			slog.String("category", string(vpe.Category)),
			slog.String("severity", string(vpe.Severity)),
		}
		for k, v := range vpe.Context {
			attrs = append(attrs, slog.Any(k, v))
		}
		if vpe.Cause != nil {
			attrs = append(attrs, slog.String("error", vpe.Cause.Error()))
		}

		a.logger.LogAttrs(context.Background(), slog.LevelError, vpe.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}
