// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"fmt"

	"github.com/cmdseq/cmdseq/internal/registry"
	"github.com/cmdseq/cmdseq/pkg/types"
)

// All returns a fresh instance of every built-in command in listing order.
func All() []registry.Command {
	return []registry.Command{
		Echo(),
		PrintVar(),
		Exit(),
		&Shell{},
		&Markdown{},
		CueEval(),
		TOMLGet(),
	}
}

// Register adds every built-in command to reg. It stops at the first
// registration error, which only happens when reg already holds a
// conflicting alias.
func Register(reg *registry.Registry) error {
	for _, cmd := range All() {
		if err := reg.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// fail writes "<command>: <message>" to stderr and returns code.
func fail(c *registry.Context, name string, code types.ExitCode, format string, args ...any) types.ExitCode {
	fmt.Fprintf(c.Stderr, "%s: %s\n", name, fmt.Sprintf(format, args...))
	return code
}

// value returns an argument that verification already guaranteed to exist.
func value(c *registry.Context, key string) string {
	v, _ := c.Value(key)
	return v
}
