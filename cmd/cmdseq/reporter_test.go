// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cmdseq/cmdseq/internal/commands"
	"github.com/cmdseq/cmdseq/internal/dispatch"
	"github.com/cmdseq/cmdseq/internal/issue"
	"github.com/cmdseq/cmdseq/internal/logging"
	"github.com/cmdseq/cmdseq/internal/registry"

	"github.com/charmbracelet/fang"
)

func TestIssueFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{"unknown", &dispatch.UsageError{Reason: dispatch.ReasonUnknownCommand}, issue.UnknownCommandId},
		{"no commands", &dispatch.UsageError{Reason: dispatch.ReasonNoCommands}, issue.NoCommandsId},
		{"token", &dispatch.UsageError{Reason: dispatch.ReasonUnexpectedToken}, issue.UnexpectedTokenId},
		{"missing", &dispatch.MissingArgumentsError{Command: "echo", Keys: []string{"msg"}}, issue.MissingArgumentId},
		{"failed", &dispatch.CommandFailedError{Command: "exit", Code: 2}, issue.CommandFailedId},
		{"other", errors.New("x"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := issueFor(tt.err); got != tt.want {
				t.Errorf("issueFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStyledReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := newStyledReporter(&buf, false, logging.Discard())
	r.Report(&dispatch.MissingArgumentsError{Command: "tomlget", Keys: []string{"file", "key"}})
	r.Report(&dispatch.CommandFailedError{Command: "toml", Code: 2})

	out := buf.String()
	for _, want := range []string{
		"tomlget - Missing argument: file",
		"tomlget - Missing argument: key",
		"toml command returned error code: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Missing argument!") {
		t.Error("guide must only be shown in verbose mode")
	}
}

func TestStyledReporter_VerboseGuidesOnce(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := newStyledReporter(&buf, true, logging.Discard())
	r.Report(&dispatch.MissingArgumentsError{Command: "echo", Keys: []string{"msg"}})
	r.Report(&dispatch.CommandFailedError{Command: "echo", Code: 1})

	out := buf.String()
	if !strings.Contains(out, "Missing argument!") {
		t.Errorf("expected the missing-argument guide:\n%s", out)
	}
	if strings.Contains(out, "Command failed!") {
		t.Error("only the first diagnostic of a run gets a guide")
	}
}

func TestStyledReporter_Usage(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	if err := commands.Register(reg); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	newStyledReporter(&buf, false, logging.Discard()).Usage(reg.Entries())

	out := buf.String()
	if !strings.Contains(out, dispatch.Synopsis) || !strings.Contains(out, "Valid commands:") {
		t.Errorf("usage header missing:\n%s", out)
	}
	if !strings.Contains(out, "printvar, getvar (requires -key)") {
		t.Errorf("command line missing:\n%s", out)
	}
}

func TestExitStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"dispatch code", &ExitError{Code: 42}, 42},
		{"max status", &ExitError{Code: 255}, 255},
		{"wraps to zero", &ExitError{Code: 256}, 1},
		{"wraps to zero twice", &ExitError{Code: 512}, 1},
		{"negative", &ExitError{Code: -1}, 1},
		{"wrapped exit error", fmt.Errorf("run: %w", &ExitError{Code: 3}), 3},
		{"other error", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			logger := logging.New(&logs, "debug", false)
			if got := exitStatus(tt.err, logger); got != tt.want {
				t.Errorf("exitStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
			var exitErr *ExitError
			clamped := errors.As(tt.err, &exitErr) && int(exitErr.Code) != tt.want
			if logged := strings.Contains(logs.String(), "exit code out of process range"); logged != clamped {
				t.Errorf("debug log written = %v, want %v: %q", logged, clamped, logs.String())
			}
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()

	app := NewApp(Dependencies{})

	var buf bytes.Buffer
	app.handleError(&buf, fang.Styles{}, &ExitError{Code: 3})
	if buf.Len() != 0 {
		t.Errorf("ExitError should print nothing, got %q", buf.String())
	}

	buf.Reset()
	err := issue.NewErrorContext().
		WithOperation("load env file").
		WithResource(".env").
		WithSuggestion("Append '?' to the path to make the file optional").
		BuildError()
	app.handleError(&buf, fang.Styles{}, err)
	out := buf.String()
	if !strings.Contains(out, "failed to load env file: .env") || !strings.Contains(out, "Append '?'") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "Env file not found!") {
		t.Error("guide must only be shown in verbose mode")
	}

	buf.Reset()
	app.verbose = true
	app.handleError(&buf, fang.Styles{}, err)
	if !strings.Contains(buf.String(), "Env file not found!") {
		t.Errorf("verbose output should include the guide:\n%s", buf.String())
	}
}
