// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/cmdseq/cmdseq/internal/dispatch"
	"github.com/cmdseq/cmdseq/internal/issue"
	"github.com/cmdseq/cmdseq/internal/registry"

	"github.com/charmbracelet/log"
)

// styledReporter prints dispatch diagnostics with the CLI palette. In
// verbose mode the first diagnostic of a run is followed by its Markdown
// guide from the issue catalog.
type styledReporter struct {
	w       io.Writer
	verbose bool
	logger  *log.Logger
	guided  bool
}

func newStyledReporter(w io.Writer, verbose bool, logger *log.Logger) *styledReporter {
	return &styledReporter{w: w, verbose: verbose, logger: logger}
}

// Report implements dispatch.Reporter.
func (r *styledReporter) Report(err error) {
	style := ErrorStyle
	var missing *dispatch.MissingArgumentsError
	if errors.As(err, &missing) {
		style = WarningStyle
	}
	for _, line := range dispatch.Lines(err) {
		fmt.Fprintln(r.w, style.Render(line))
	}

	if r.verbose && !r.guided {
		r.guided = true
		r.guide(issueFor(err))
	}
}

// Usage implements dispatch.Reporter.
func (r *styledReporter) Usage(entries []registry.Entry) {
	fmt.Fprintln(r.w, TitleStyle.Render(dispatch.Synopsis))
	fmt.Fprintln(r.w, SubtitleStyle.Render("Valid commands:"))
	for _, e := range entries {
		fmt.Fprintln(r.w, "  "+CmdStyle.Render(dispatch.CommandLine(e)))
	}
	for _, note := range dispatch.UsageNotes {
		fmt.Fprintln(r.w, SubtitleStyle.Render(note))
	}
}

func (r *styledReporter) guide(id issue.Id) {
	iss := issue.Get(id)
	if iss == nil {
		return
	}
	out, err := iss.Render("notty")
	if err != nil {
		r.logger.Debug("failed to render issue guide", "id", id, "error", err)
		return
	}
	fmt.Fprint(r.w, out)
}

// issueFor maps a dispatch diagnostic to its catalog entry.
func issueFor(err error) issue.Id {
	var (
		usage   *dispatch.UsageError
		missing *dispatch.MissingArgumentsError
		failed  *dispatch.CommandFailedError
	)
	switch {
	case errors.As(err, &usage):
		switch usage.Reason {
		case dispatch.ReasonUnknownCommand:
			return issue.UnknownCommandId
		case dispatch.ReasonNoCommands:
			return issue.NoCommandsId
		case dispatch.ReasonUnexpectedToken:
			return issue.UnexpectedTokenId
		}
	case errors.As(err, &missing):
		return issue.MissingArgumentId
	case errors.As(err, &failed):
		return issue.CommandFailedId
	}
	return 0
}
