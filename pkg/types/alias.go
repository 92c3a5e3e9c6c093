// SPDX-License-Identifier: MPL-2.0

// Package types defines small value types shared by the dispatcher packages.
// It imports only the standard library.
package types

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidAlias is the sentinel error wrapped by InvalidAliasError.
var ErrInvalidAlias = errors.New("invalid command alias")

type (
	// Alias is a name a command handler answers to. Aliases are matched
	// case-insensitively; Fold returns the registry key form.
	Alias string

	// InvalidAliasError is returned when an Alias is empty, contains
	// whitespace, or starts with a dash (which the tokenizer would read as a
	// marker instead of a name).
	InvalidAliasError struct {
		Value  Alias
		Reason string
	}
)

// String returns the string representation of the Alias.
func (a Alias) String() string { return string(a) }

// Fold returns the lowercase form used as the registry key.
func (a Alias) Fold() string { return strings.ToLower(string(a)) }

// Validate returns an error if the alias cannot be produced by a command marker.
func (a Alias) Validate() error {
	switch {
	case a == "":
		return &InvalidAliasError{Value: a, Reason: "must be non-empty"}
	case strings.HasPrefix(string(a), "-"):
		return &InvalidAliasError{Value: a, Reason: "must not start with '-'"}
	case strings.IndexFunc(string(a), unicode.IsSpace) >= 0:
		return &InvalidAliasError{Value: a, Reason: "must not contain whitespace"}
	}
	return nil
}

// Error implements the error interface for InvalidAliasError.
func (e *InvalidAliasError) Error() string {
	return fmt.Sprintf("invalid command alias %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidAlias for errors.Is() compatibility.
func (e *InvalidAliasError) Unwrap() error { return ErrInvalidAlias }
