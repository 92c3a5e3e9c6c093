// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"context"
	"io"
	"os"

	"github.com/cmdseq/cmdseq/internal/argv"
	"github.com/cmdseq/cmdseq/internal/envvar"
	"github.com/cmdseq/cmdseq/internal/logging"
	"github.com/cmdseq/cmdseq/internal/registry"
	"github.com/cmdseq/cmdseq/pkg/types"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/maps"
)

type (
	// Dispatcher runs argument vectors against a registry.
	// It holds no per-run state; Run may be called repeatedly.
	Dispatcher struct {
		registry  *registry.Registry
		env       *envvar.Resolver
		reporter  Reporter
		logger    *log.Logger
		stdin     io.Reader
		stdout    io.Writer
		stderr    io.Writer
		usageCode types.ExitCode
	}

	// Option configures a Dispatcher.
	Option func(*Dispatcher)
)

// WithEnv sets the environment resolver used for verification and handed to
// commands. Default: the live process environment.
func WithEnv(env *envvar.Resolver) Option {
	return func(d *Dispatcher) { d.env = env }
}

// WithReporter sets where diagnostics go. Default: a TextReporter on stderr.
func WithReporter(r Reporter) Option {
	return func(d *Dispatcher) { d.reporter = r }
}

// WithLogger sets the debug logger. Default: discards everything.
func WithLogger(l *log.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithStdin sets the input stream handed to commands. Default: os.Stdin.
func WithStdin(stdin io.Reader) Option {
	return func(d *Dispatcher) { d.stdin = stdin }
}

// WithStdio sets the output streams handed to commands.
func WithStdio(stdout, stderr io.Writer) Option {
	return func(d *Dispatcher) {
		d.stdout = stdout
		d.stderr = stderr
	}
}

// WithUsageExitCode sets the result code for usage errors. Default: 1.
func WithUsageExitCode(code types.ExitCode) Option {
	return func(d *Dispatcher) { d.usageCode = code }
}

// New creates a Dispatcher over reg.
func New(reg *registry.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry:  reg,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		usageCode: types.ExitUsage,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.env == nil {
		d.env = envvar.New()
	}
	if d.reporter == nil {
		d.reporter = NewTextReporter(d.stderr)
	}
	if d.logger == nil {
		d.logger = logging.Discard()
	}
	return d
}

// Run tokenizes tokens, checks that every command resolves, then executes
// the commands in order. It returns 0 only if every command returned 0.
//
// A usage error returns the usage exit code before anything runs. Missing
// mandatory arguments end the run with the number of missing keys as the
// code. A non-zero command result ends the run with that code verbatim.
func (d *Dispatcher) Run(tokens []string) types.ExitCode {
	return d.RunContext(context.Background(), tokens)
}

// RunContext is Run with a context handed to every command. Commands that
// block (such as shell scripts) stop when ctx is canceled.
func (d *Dispatcher) RunContext(ctx context.Context, tokens []string) types.ExitCode {
	inv, err := d.Validate(tokens)
	if err != nil {
		d.logger.Debug("usage error", "error", err)
		d.reporter.Report(err)
		d.reporter.Usage(d.registry.Entries())
		return d.usageCode
	}

	for _, name := range inv.Commands {
		cmd, _ := d.registry.Lookup(name)

		if missing := Missing(cmd, inv.Args, d.env); len(missing) > 0 {
			code := types.ExitCode(len(missing))
			d.logger.Debug("verification failed", "command", name, "missing", missing)
			d.reporter.Report(&MissingArgumentsError{Command: registry.Primary(cmd), Keys: missing})
			d.reporter.Report(&CommandFailedError{Command: name, Code: code})
			return code
		}

		// Each command gets its own copy so the parsed maps stay read-only.
		d.logger.Debug("executing", "command", name)
		code := cmd.Execute(&registry.Context{
			Context:   ctx,
			Args:      maps.Clone(inv.Args),
			CasedArgs: maps.Clone(inv.CasedArgs),
			Env:       d.env,
			Stdin:     d.stdin,
			Stdout:    d.stdout,
			Stderr:    d.stderr,
			Logger:    d.logger.WithPrefix(name),
		})
		if !code.IsSuccess() {
			d.logger.Debug("command failed", "command", name, "code", code)
			d.reporter.Report(&CommandFailedError{Command: name, Code: code})
			return code
		}
	}

	d.logger.Debug("all commands succeeded", "count", len(inv.Commands))
	return types.ExitSuccess
}

// Validate runs the parsing and validating states without executing
// anything. Every unknown command name is collected before failing.
func (d *Dispatcher) Validate(tokens []string) (*argv.Invocation, error) {
	inv, err := argv.Parse(tokens)
	if err != nil {
		return nil, &UsageError{Reason: ReasonUnexpectedToken, Cause: err}
	}
	d.logger.Debug("parsed", "commands", inv.Commands, "keys", inv.Args.Keys())

	var unknown []string
	suggestions := make(map[string][]string)
	for _, name := range inv.Commands {
		if _, ok := d.registry.Lookup(name); ok {
			continue
		}
		unknown = append(unknown, name)
		if s := suggest(name, d.registry.Aliases()); len(s) > 0 {
			suggestions[name] = s
		}
	}
	if len(unknown) > 0 {
		return nil, &UsageError{Reason: ReasonUnknownCommand, Unknown: unknown, Suggestions: suggestions}
	}

	if len(inv.Commands) == 0 {
		return nil, &UsageError{Reason: ReasonNoCommands}
	}
	return inv, nil
}
