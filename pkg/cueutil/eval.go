// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ErrInvalidCUEPath is returned when a CUEPath is blank.
var ErrInvalidCUEPath = errors.New("invalid CUE path")

// CUEPath is a CUE selector path such as "services.web.port" or "items[0]".
// The empty path selects the whole document.
type CUEPath string

// Validate rejects whitespace-only paths. The empty path is valid for
// EvalJSON but not as a standalone selector, so it is rejected here too.
func (p CUEPath) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return fmt.Errorf("%w: path must not be empty", ErrInvalidCUEPath)
	}
	return nil
}

// String returns the string representation of the CUEPath.
func (p CUEPath) String() string { return string(p) }

// EvalJSON compiles a standalone CUE document, selects path (the whole
// document when path is empty) and exports it as indented JSON.
// The selected value must be concrete.
func EvalJSON(data []byte, path CUEPath, opts ...Option) ([]byte, error) {
	options := applyOptions(opts)
	filename := options.displayName()

	if err := CheckFileSize(data, options.maxFileSize, filename); err != nil {
		return nil, err
	}

	value := cuecontext.New().CompileBytes(data, cue.Filename(filename))
	if value.Err() != nil {
		return nil, FormatError(value.Err(), filename)
	}

	if path != "" {
		if err := path.Validate(); err != nil {
			return nil, err
		}
		selector := cue.ParsePath(string(path))
		if selector.Err() != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidCUEPath, path, selector.Err())
		}
		value = value.LookupPath(selector)
		if !value.Exists() {
			return nil, fmt.Errorf("%s: %s: field not found", filename, path)
		}
	}

	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, FormatError(err, filename)
	}

	raw, err := value.MarshalJSON()
	if err != nil {
		return nil, FormatError(err, filename)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return out.Bytes(), nil
}
