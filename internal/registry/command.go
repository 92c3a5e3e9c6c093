// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"context"
	"io"

	"github.com/cmdseq/cmdseq/internal/argv"
	"github.com/cmdseq/cmdseq/internal/envvar"
	"github.com/cmdseq/cmdseq/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// Command is a pluggable unit the dispatcher can run.
	Command interface {
		// Aliases lists the names the command answers to. The first one is
		// its primary alias, used in diagnostics. Must be non-empty.
		Aliases() []string
		// MandatoryArgs lists argument keys that must resolve, from the parsed
		// arguments or from the environment, before Execute is called.
		MandatoryArgs() []string
		// Execute runs the command. A non-zero result stops the sequence and
		// becomes the process exit status.
		Execute(c *Context) types.ExitCode
	}

	// Describer is implemented by commands that provide a one-line summary
	// for listings.
	Describer interface {
		Description() string
	}

	// Context is what a command receives when it runs.
	Context struct {
		// Context is canceled when the run is interrupted.
		Context context.Context
		// Args is the lowercase argument map. Args and CasedArgs are copies
		// made for this command; changes are not seen by later commands.
		Args argv.Args
		// CasedArgs keeps the original case of keys and values.
		CasedArgs argv.Args
		// Env resolves environment fallbacks the same way verification did.
		Env *envvar.Resolver

		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
		Logger *log.Logger
	}

	// Func adapts a plain function into a Command.
	Func struct {
		Names    []string
		Required []string
		Summary  string
		Run      func(c *Context) types.ExitCode
	}
)

// Aliases implements Command.
func (f *Func) Aliases() []string { return f.Names }

// MandatoryArgs implements Command.
func (f *Func) MandatoryArgs() []string { return f.Required }

// Description implements Describer.
func (f *Func) Description() string { return f.Summary }

// Execute implements Command. A Func without Run succeeds.
func (f *Func) Execute(c *Context) types.ExitCode {
	if f.Run == nil {
		return types.ExitSuccess
	}
	return f.Run(c)
}

// Value returns the cased value of key, falling back to the environment.
//
// Keys that differ only in case ("-Msg a -MSG b") are separate entries in
// CasedArgs but one merged entry ("a b") in Args. Value returns a single
// cased entry, picked by argv.Args.Lookup; read Args to get the merged text.
func (c *Context) Value(key string) (string, bool) {
	return c.Env.ArgVar(c.CasedArgs, key)
}

// ValueOr is Value with a default for the not-found case.
func (c *Context) ValueOr(key, def string) string {
	return c.Env.ArgVarOr(c.CasedArgs, key, def)
}
