// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the cmdseq command-line interface.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cmdseq/cmdseq/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the cmdseq command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cmdseq",
		Short: "Run a sequence of commands from one argument list",
		Long: TitleStyle.Render("cmdseq") + SubtitleStyle.Render(" - run a sequence of commands from one argument list") + `

cmdseq reads an argument vector of --command markers and -key value
arguments, checks that every command exists and has its mandatory
arguments, and runs the commands in order until one fails.

` + SubtitleStyle.Render("Examples:") + `
  cmdseq run --echo -msg hello         Print "hello"
  cmdseq run --printvar -key HOME      Print $HOME (matched case-insensitively)
  cmdseq list                          List commands and required arguments
  cmdseq config show                   Show the effective configuration`,
		// Root flags are parsed before `run` so its raw tokens stay intact.
		TraverseChildren: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfigAnnotation] == "true" {
				return nil
			}
			return app.load(cmd.Context())
		},
	}

	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output and debug logging")
	root.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/cmdseq/config.cue)")

	// Traverse scans root flags before cobra merges persistent flags into
	// the local set; merge them now so "-v run ..." is not misread.
	root.InitDefaultHelpFlag()

	root.AddCommand(
		newRunCommand(app),
		newListCommand(app),
		newConfigCommand(app),
	)
	return root
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits with its status. It is called by main.main.
func Execute() {
	os.Exit(Main())
}

// Main runs the CLI against os.Args and returns the process exit status:
// the dispatch result for `run`, 1 for any other error.
func Main() int {
	app := NewApp(Dependencies{})
	err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	)
	return exitStatus(err, app.logger)
}

// exitStatus maps the error returned by fang to a process status. Dispatch
// codes outside 0-255 become 1 so a failure can never exit as success.
func exitStatus(err error, logger *log.Logger) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		return 1
	}
	status := exitErr.Code.ProcessStatus()
	if status != int(exitErr.Code) && logger != nil {
		logger.Debug("exit code out of process range", "code", exitErr.Code, "status", status)
	}
	return status
}

// handleError prints errors that reach fang. Dispatch failures were already
// reported line by line, so an ExitError prints nothing.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		fang.DefaultErrorHandler(w, styles, err)
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+ae.Format(a.verbose))
	if !a.verbose {
		return
	}
	if iss := issue.Get(guideFor(ae)); iss != nil {
		if out, renderErr := iss.Render("notty"); renderErr == nil {
			fmt.Fprint(w, out)
		}
	}
}

// guideFor maps an actionable error to its catalog entry by operation.
func guideFor(ae *issue.ActionableError) issue.Id {
	switch ae.Operation {
	case "load configuration", "validate configuration":
		return issue.ConfigLoadFailedId
	case "load env file":
		return issue.EnvFileNotFoundId
	}
	return 0
}
