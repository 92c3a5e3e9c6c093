// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"github.com/cmdseq/cmdseq/internal/dispatch"

	"github.com/spf13/cobra"
)

func newRunCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run --<command> [--<command> ...] [-<argKey> <argValue> ...]",
		Short: "Run a sequence of commands",
		Long: `Run a sequence of commands in order.

Every --name token selects a command; every -key token starts an argument
whose value is the following bare tokens joined by spaces. Arguments are
shared by all commands of the run. Mandatory arguments may also come from
the environment (matched case-insensitively) or from dotenv files listed in
dispatch.env_files.

The run stops at the first command that fails, and cmdseq exits with that
command's code.`,
		Example: `  cmdseq run --echo -msg hello world
  cmdseq run --printvar -key HOME --exit -code 0
  cmdseq run --shell -script 'echo $CMDSEQ_ARG_TARGET' -target prod`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd.Context(), args)
		},
	}
}

// run dispatches tokens and converts a non-zero result into an ExitError.
func (a *App) run(ctx context.Context, tokens []string) error {
	reg, err := a.buildRegistry()
	if err != nil {
		return err
	}
	env, err := a.buildEnv()
	if err != nil {
		return err
	}

	d := dispatch.New(reg,
		dispatch.WithEnv(env),
		dispatch.WithReporter(newStyledReporter(a.stderr, a.verbose, a.logger)),
		dispatch.WithLogger(a.logger),
		dispatch.WithStdin(a.stdin),
		dispatch.WithStdio(a.stdout, a.stderr),
		dispatch.WithUsageExitCode(a.cfg.Dispatch.UsageExitCode),
	)

	if code := d.RunContext(ctx, tokens); !code.IsSuccess() {
		return &ExitError{Code: code}
	}
	return nil
}
