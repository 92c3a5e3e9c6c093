// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cmdseq/cmdseq/internal/registry"
	"github.com/cmdseq/cmdseq/pkg/cueutil"
	"github.com/cmdseq/cmdseq/pkg/types"

	"github.com/pelletier/go-toml/v2"
)

// CueEval evaluates the CUE -file and prints the value at -expr (the whole
// document when -expr is absent) as JSON.
func CueEval() *registry.Func {
	return &registry.Func{
		Names:    []string{"cueeval", "cue"},
		Required: []string{"file"},
		Summary:  "Evaluate the CUE -file and print -expr as JSON",
		Run: func(c *registry.Context) types.ExitCode {
			path := value(c, "file")
			data, err := os.ReadFile(path)
			if err != nil {
				return fail(c, "cueeval", types.ExitUsage, "%v", err)
			}

			expr, _ := c.CasedArgs.Lookup("expr")
			out, err := cueutil.EvalJSON(data, cueutil.CUEPath(expr), cueutil.WithFilename(path))
			if err != nil {
				return fail(c, "cueeval", types.ExitUsage, "%v", err)
			}
			fmt.Fprintln(c.Stdout, string(out))
			return types.ExitSuccess
		},
	}
}

// TOMLGet reads the dotted -key (server.port) from the TOML -file. Scalars
// print as plain text, tables as TOML and arrays as JSON.
func TOMLGet() *registry.Func {
	return &registry.Func{
		Names:    []string{"tomlget", "toml"},
		Required: []string{"file", "key"},
		Summary:  "Print the dotted -key of the TOML -file",
		Run: func(c *registry.Context) types.ExitCode {
			path := value(c, "file")
			data, err := os.ReadFile(path)
			if err != nil {
				return fail(c, "tomlget", types.ExitUsage, "%v", err)
			}

			var doc map[string]any
			if err := toml.Unmarshal(data, &doc); err != nil {
				return fail(c, "tomlget", types.ExitUsage, "%s: %v", path, err)
			}

			key := value(c, "key")
			v, ok := lookupDotted(doc, key)
			if !ok {
				return fail(c, "tomlget", types.ExitUsage, "%s: key %q not found", path, key)
			}

			out, err := formatTOMLValue(v)
			if err != nil {
				return fail(c, "tomlget", types.ExitUsage, "%v", err)
			}
			fmt.Fprintln(c.Stdout, out)
			return types.ExitSuccess
		},
	}
}

// lookupDotted walks nested tables along the dot-separated key.
func lookupDotted(doc map[string]any, key string) (any, bool) {
	var cur any = doc
	for part := range strings.SplitSeq(key, ".") {
		table, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = table[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func formatTOMLValue(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case map[string]any:
		out, err := toml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to encode table: %w", err)
		}
		return strings.TrimRight(string(out), "\n"), nil
	case []any:
		out, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to encode array: %w", err)
		}
		return string(out), nil
	default:
		return fmt.Sprint(v), nil
	}
}
