// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"context"
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/cmdseq/cmdseq/internal/registry"
	"github.com/cmdseq/cmdseq/pkg/types"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ArgEnvPrefix prefixes the environment variables through which a shell
// script sees the parsed arguments (-target prod becomes
// CMDSEQ_ARG_TARGET=prod).
const ArgEnvPrefix = "CMDSEQ_ARG_"

// Shell runs the -script value with the embedded POSIX shell interpreter,
// so scripts behave the same on every platform.
type Shell struct {
	// Dir is the working directory; empty means the process working directory.
	Dir string
}

func (s *Shell) Aliases() []string       { return []string{"shell", "sh"} }
func (s *Shell) MandatoryArgs() []string { return []string{"script"} }
func (s *Shell) Description() string     { return "Run -script with the built-in POSIX shell" }

// Execute implements registry.Command. The result is the script's exit
// status; parse and interpreter errors return 1.
func (s *Shell) Execute(c *registry.Context) types.ExitCode {
	script := value(c, "script")

	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "script")
	if err != nil {
		return fail(c, "shell", types.ExitUsage, "failed to parse script: %v", err)
	}

	dir := s.Dir
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return fail(c, "shell", types.ExitUsage, "failed to get working directory: %v", err)
		}
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(scriptEnv(c)...)),
		interp.StdIO(c.Stdin, c.Stdout, c.Stderr),
	)
	if err != nil {
		return fail(c, "shell", types.ExitUsage, "failed to create interpreter: %v", err)
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	c.Logger.Debug("running script", "dir", dir)
	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return types.ExitCode(status)
		}
		return fail(c, "shell", types.ExitUsage, "script execution failed: %v", err)
	}
	return types.ExitSuccess
}

// scriptEnv is the inherited environment plus one CMDSEQ_ARG_ variable per
// parsed argument. Arguments are appended last so they win over inherited
// variables of the same name.
func scriptEnv(c *registry.Context) []string {
	env := c.Env.Environ()
	for _, key := range c.CasedArgs.Keys() {
		name := argEnvName(key)
		if name == ArgEnvPrefix {
			continue
		}
		env = append(env, name+"="+c.CasedArgs[key])
	}
	return env
}

// argEnvName upper-cases key and replaces anything that is not a letter,
// digit or underscore with an underscore.
func argEnvName(key string) string {
	mapped := strings.Map(func(r rune) rune {
		if r == '_' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, key)
	return ArgEnvPrefix + mapped
}
