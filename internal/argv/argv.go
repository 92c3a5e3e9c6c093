// SPDX-License-Identifier: MPL-2.0

package argv

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

const (
	// CommandPrefix marks a token as a command name.
	CommandPrefix = "--"
	// FlagPrefix marks a token as an argument key.
	FlagPrefix = "-"
)

// ErrUnexpectedToken is the sentinel error wrapped by UnexpectedTokenError.
var ErrUnexpectedToken = errors.New("unexpected token")

type (
	// Args maps an argument key to its accumulated value. A key that was given
	// without any value maps to the empty string, which is distinct from the
	// key being absent.
	Args map[string]string

	// Invocation is the tokenized form of one argument vector.
	// It is built once by Parse and is read-only afterwards.
	Invocation struct {
		// Commands lists lowercase command names in the order they appeared.
		// Duplicates are kept.
		Commands []string
		// Args is keyed and valued in lowercase.
		Args Args
		// CasedArgs keeps the original text of keys and values.
		CasedArgs Args
	}

	// UnexpectedTokenError is returned when a value token appears before any
	// command or flag marker.
	UnexpectedTokenError struct {
		Token string
		Index int
	}
)

// Error implements the error interface.
func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %q at position %d", e.Token, e.Index)
}

// Unwrap returns ErrUnexpectedToken so callers can use errors.Is.
func (e *UnexpectedTokenError) Unwrap() error { return ErrUnexpectedToken }

// Parse tokenizes an argument vector. It never returns a partial result:
// on error the Invocation is nil.
//
// A repeated flag keeps accumulating into the same key. Value tokens that
// follow a command marker accumulate under the command's own name; a command
// marker by itself adds no argument key.
func Parse(tokens []string) (*Invocation, error) {
	inv := &Invocation{
		Commands:  []string{},
		Args:      Args{},
		CasedArgs: Args{},
	}

	var activeLower, activeCased string
	active := false

	for i, tok := range tokens {
		switch {
		case strings.HasPrefix(tok, CommandPrefix):
			activeCased = tok[len(CommandPrefix):]
			activeLower = strings.ToLower(activeCased)
			active = true
			inv.Commands = append(inv.Commands, activeLower)

		case strings.HasPrefix(tok, FlagPrefix):
			activeCased = tok[len(FlagPrefix):]
			activeLower = strings.ToLower(activeCased)
			active = true
			if _, ok := inv.Args[activeLower]; !ok {
				inv.Args[activeLower] = ""
			}
			if _, ok := inv.CasedArgs[activeCased]; !ok {
				inv.CasedArgs[activeCased] = ""
			}

		case !active:
			return nil, &UnexpectedTokenError{Token: tok, Index: i}

		default:
			inv.Args[activeLower] = joinValue(inv.Args[activeLower], strings.ToLower(tok))
			inv.CasedArgs[activeCased] = joinValue(inv.CasedArgs[activeCased], tok)
		}
	}

	return inv, nil
}

func joinValue(acc, tok string) string {
	return strings.TrimSpace(acc + " " + tok)
}

// Get returns the value stored under exactly key.
func (a Args) Get(key string) (string, bool) {
	v, ok := a[key]
	return v, ok
}

// Has reports whether key is present, even with an empty value.
func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Lookup finds key case-insensitively. When several keys fold to the same
// text (only possible in a cased map), the lexically last one wins so the
// result does not depend on map iteration order.
func (a Args) Lookup(key string) (string, bool) {
	if v, ok := a[key]; ok {
		return v, true
	}
	want := strings.ToLower(key)
	var (
		value string
		found bool
	)
	for _, k := range a.Keys() {
		if strings.ToLower(k) == want {
			value, found = a[k], true
		}
	}
	return value, found
}

// Keys returns the argument keys in sorted order.
func (a Args) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}
