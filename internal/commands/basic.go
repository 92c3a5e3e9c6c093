// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"fmt"

	"github.com/cmdseq/cmdseq/internal/registry"
	"github.com/cmdseq/cmdseq/pkg/types"
)

// Echo writes the -msg value followed by a newline.
func Echo() *registry.Func {
	return &registry.Func{
		Names:    []string{"echo", "print"},
		Required: []string{"msg"},
		Summary:  "Print the -msg value",
		Run: func(c *registry.Context) types.ExitCode {
			fmt.Fprintln(c.Stdout, value(c, "msg"))
			return types.ExitSuccess
		},
	}
}

// PrintVar prints the variable named by -key, looked up among the arguments
// and then the environment. -default is printed when the variable is
// undefined; without it the command fails. A variable set to the empty
// string is defined.
func PrintVar() *registry.Func {
	return &registry.Func{
		Names:    []string{"printvar", "getvar"},
		Required: []string{"key"},
		Summary:  "Print the argument or environment variable named by -key",
		Run: func(c *registry.Context) types.ExitCode {
			name := value(c, "key")
			if name == "" {
				return fail(c, "printvar", types.ExitUsage, "-key must name a variable")
			}
			if v, ok := c.Value(name); ok {
				fmt.Fprintln(c.Stdout, v)
				return types.ExitSuccess
			}
			if def, ok := c.CasedArgs.Lookup("default"); ok {
				c.Logger.Debug("using default", "key", name)
				fmt.Fprintln(c.Stdout, def)
				return types.ExitSuccess
			}
			return fail(c, "printvar", types.ExitUsage, "%s is not defined", name)
		},
	}
}

// Exit returns the -code value as its result, which stops the sequence
// when non-zero.
func Exit() *registry.Func {
	return &registry.Func{
		Names:    []string{"exit", "fail"},
		Required: []string{"code"},
		Summary:  "Return -code as the result",
		Run: func(c *registry.Context) types.ExitCode {
			code, err := types.ParseExitCode(value(c, "code"))
			if err != nil {
				return fail(c, "exit", types.ExitUsage, "%v", err)
			}
			if err := code.Validate(); err != nil {
				return fail(c, "exit", types.ExitUsage, "%v", err)
			}
			return code
		},
	}
}
