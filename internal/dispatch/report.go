// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cmdseq/cmdseq/internal/registry"
)

// Synopsis is the one-line grammar shown with usage guidance.
const Synopsis = "Run a sequence of ordered commands --<command> [--<command> ...] [-<argKey> <argValue> ...]"

// UsageNotes are the caveats printed after the command list.
var UsageNotes = []string{
	"argValues can have spaces. Dashes in argValues can cause problems, and are not recommended.",
	"Quotes are part of the argKey or argValue when the shell passes them through; they are not parsed as tokens.",
}

type (
	// Reporter receives the human-readable diagnostics of a run. The output
	// is advisory; the run's result code is the machine-readable outcome.
	Reporter interface {
		// Report is called with a *UsageError, *MissingArgumentsError or
		// *CommandFailedError.
		Report(err error)
		// Usage is called after a usage error with the registered commands.
		Usage(entries []registry.Entry)
	}

	// TextReporter writes plain, unstyled lines.
	TextReporter struct {
		w io.Writer
	}
)

// NewTextReporter creates a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Report implements Reporter.
func (r *TextReporter) Report(err error) {
	for _, line := range Lines(err) {
		fmt.Fprintln(r.w, line)
	}
}

// Usage implements Reporter.
func (r *TextReporter) Usage(entries []registry.Entry) {
	fmt.Fprintln(r.w, Synopsis)
	fmt.Fprintln(r.w, "Valid commands:")
	for _, e := range entries {
		fmt.Fprintln(r.w, "  "+CommandLine(e))
	}
	for _, note := range UsageNotes {
		fmt.Fprintln(r.w, note)
	}
}

// Lines renders a dispatch error as the diagnostic lines users see: one line
// per unknown command, one line per missing argument key prefixed by the
// command's primary alias, and one line for a failed command's code.
func Lines(err error) []string {
	var (
		usage   *UsageError
		missing *MissingArgumentsError
		failed  *CommandFailedError
	)
	switch {
	case errors.As(err, &usage):
		return usageLines(usage)
	case errors.As(err, &missing):
		lines := make([]string, 0, len(missing.Keys))
		for _, key := range missing.Keys {
			lines = append(lines, missing.Command+" - Missing argument: "+key)
		}
		return lines
	case errors.As(err, &failed):
		return []string{failed.Error()}
	case err != nil:
		return []string{err.Error()}
	}
	return nil
}

func usageLines(e *UsageError) []string {
	switch e.Reason {
	case ReasonUnknownCommand:
		lines := make([]string, 0, len(e.Unknown))
		for _, name := range e.Unknown {
			line := "Unexpected command: " + name
			if s := e.Suggestions[name]; len(s) > 0 {
				line += " (did you mean: " + strings.Join(s, ", ") + "?)"
			}
			lines = append(lines, line)
		}
		return lines
	case ReasonNoCommands:
		return []string{"No commands given, no work will be done"}
	default:
		if e.Cause != nil {
			return []string{e.Cause.Error()}
		}
		return []string{e.Error()}
	}
}

// CommandLine describes one registry entry: its aliases and mandatory keys.
func CommandLine(e registry.Entry) string {
	line := strings.Join(e.Aliases, ", ")
	if req := e.Command.MandatoryArgs(); len(req) > 0 {
		keys := make([]string, len(req))
		for i, k := range req {
			keys[i] = "-" + strings.ToLower(k)
		}
		line += " (requires " + strings.Join(keys, " ") + ")"
	}
	return line
}
