// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// FormatError flattens a CUE error into "<file>: <path>: <message>" lines.
// Several CUE errors are joined under a "validation failed" header:
//
//	config.cue: dispatch.usage_exit_code: invalid value 300 (out of bound <=255)
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	list := errors.Errors(err)
	switch len(list) {
	case 0:
		return fmt.Errorf("%s: %w", filePath, err)
	case 1:
		return fmt.Errorf("%s: %s", filePath, diagnostic(list[0]))
	}

	lines := make([]string, 0, len(list))
	for _, e := range list {
		lines = append(lines, diagnostic(e))
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// diagnostic renders one CUE error as "path: message", dropping the path
// CUE sometimes repeats at the start of the message.
func diagnostic(e errors.Error) string {
	path := formatPath(errors.Path(e))
	msg := e.Error()
	if path == "" {
		return msg
	}
	if rest, ok := strings.CutPrefix(msg, path); ok {
		msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
	}
	return path + ": " + msg
}

// formatPath renders ["dispatch", "env_files", "0"] as
// dispatch.env_files[0]. A leading numeric element stays a plain segment.
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isIndex(part):
			fmt.Fprintf(&b, "[%s]", part)
		case i > 0:
			b.WriteByte('.')
			b.WriteString(part)
		default:
			b.WriteString(part)
		}
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize rejects data larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", filename, size, maxSize)
	}
	return nil
}
