// SPDX-License-Identifier: MPL-2.0

package envvar

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cmdseq/cmdseq/internal/issue"

	"github.com/subosito/gotenv"
	"golang.org/x/exp/maps"
)

// OptionalSuffix marks a dotenv path whose absence is not an error.
const OptionalSuffix = "?"

// LoadFiles reads dotenv files in order and merges them into one map; later
// files override earlier ones. Relative paths resolve against baseDir (the
// working directory when baseDir is empty). Paths ending in OptionalSuffix
// may be missing.
func LoadFiles(baseDir string, paths ...string) (map[string]string, error) {
	env := make(map[string]string)
	for _, path := range paths {
		if err := LoadFile(env, path, baseDir); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// LoadFile parses one dotenv file and merges its variables into env.
func LoadFile(env map[string]string, path, baseDir string) error {
	optional := strings.HasSuffix(path, OptionalSuffix)
	path = strings.TrimSuffix(path, OptionalSuffix)

	fullPath := filepath.FromSlash(path)
	if !filepath.IsAbs(fullPath) {
		if baseDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current working directory: %w", err)
			}
			baseDir = wd
		}
		fullPath = filepath.Join(baseDir, fullPath)
	}

	f, err := os.Open(fullPath)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return nil
		}
		return issue.NewErrorContext().
			WithOperation("load env file").
			WithResource(path).
			WithSuggestion("Append '" + OptionalSuffix + "' to the path to make the file optional").
			Wrap(err).
			BuildError()
	}
	defer f.Close()

	parsed, err := gotenv.StrictParse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for k, v := range parsed {
		env[k] = v
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
