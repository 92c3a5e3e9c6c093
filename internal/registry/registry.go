// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cmdseq/cmdseq/pkg/types"

	"golang.org/x/exp/maps"
)

var (
	// ErrDuplicateAlias is the sentinel error wrapped by DuplicateAliasError.
	ErrDuplicateAlias = errors.New("duplicate command alias")
	// ErrNoAliases is returned when a command declares no aliases.
	ErrNoAliases = errors.New("command has no aliases")
	// ErrUnknownTarget is returned by Alias when the target is not registered.
	ErrUnknownTarget = errors.New("alias target is not a registered command")
)

type (
	// Registry maps lowercase aliases to commands.
	// Registration is all-or-nothing per command, and an alias can be
	// claimed only once: a second claim fails instead of replacing the first.
	Registry struct {
		byAlias map[string]int
		entries []Entry
	}

	// Entry is one registered command with every alias that resolves to it:
	// its own aliases in declaration order, then any added with Alias.
	Entry struct {
		Command Command
		Aliases []string
	}

	// DuplicateAliasError is returned when an alias is already claimed.
	DuplicateAliasError struct {
		Alias string
		// Existing is the primary alias of the command holding Alias.
		Existing string
	}
)

// Error implements the error interface.
func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("alias %q is already registered by command %q", e.Alias, e.Existing)
}

// Unwrap returns ErrDuplicateAlias so callers can use errors.Is.
func (e *DuplicateAliasError) Unwrap() error { return ErrDuplicateAlias }

// New creates an empty registry.
func New() *Registry {
	return &Registry{byAlias: make(map[string]int)}
}

// Register adds cmd under every one of its aliases (lowercased). Nothing is
// registered if any alias is invalid or already claimed.
func (r *Registry) Register(cmd Command) error {
	aliases := cmd.Aliases()
	if len(aliases) == 0 {
		return fmt.Errorf("register %T: %w", cmd, ErrNoAliases)
	}

	keys := make([]string, 0, len(aliases))
	for _, a := range aliases {
		alias := types.Alias(a)
		if err := alias.Validate(); err != nil {
			return err
		}
		key := alias.Fold()
		if idx, ok := r.byAlias[key]; ok {
			return &DuplicateAliasError{Alias: key, Existing: r.entries[idx].Aliases[0]}
		}
		if slices.Contains(keys, key) {
			return &DuplicateAliasError{Alias: key, Existing: types.Alias(aliases[0]).Fold()}
		}
		keys = append(keys, key)
	}

	idx := len(r.entries)
	for _, key := range keys {
		r.byAlias[key] = idx
	}
	r.entries = append(r.entries, Entry{Command: cmd, Aliases: keys})
	return nil
}

// MustRegister is Register that panics on error. Use it for the static
// built-in list, where a collision is a programming error.
func (r *Registry) MustRegister(cmds ...Command) {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
}

// Alias makes alias resolve to the command already registered as target.
func (r *Registry) Alias(alias, target string) error {
	a := types.Alias(alias)
	if err := a.Validate(); err != nil {
		return err
	}
	idx, ok := r.byAlias[types.Alias(target).Fold()]
	if !ok {
		return fmt.Errorf("alias %q -> %q: %w", alias, target, ErrUnknownTarget)
	}
	key := a.Fold()
	if existing, ok := r.byAlias[key]; ok {
		return &DuplicateAliasError{Alias: key, Existing: r.entries[existing].Aliases[0]}
	}
	r.byAlias[key] = idx
	r.entries[idx].Aliases = append(r.entries[idx].Aliases, key)
	return nil
}

// Lookup returns the command registered under name. Name is folded to
// lowercase first.
func (r *Registry) Lookup(name string) (Command, bool) {
	idx, ok := r.byAlias[types.Alias(name).Fold()]
	if !ok {
		return nil, false
	}
	return r.entries[idx].Command, true
}

// Aliases returns every registered alias in sorted order.
func (r *Registry) Aliases() []string {
	return slices.Sorted(maps.Keys(r.byAlias))
}

// Entries returns the distinct registered commands in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = Entry{Command: e.Command, Aliases: slices.Clone(e.Aliases)}
	}
	return out
}

// Len returns the number of distinct registered commands.
func (r *Registry) Len() int { return len(r.entries) }

// Primary returns the primary alias of cmd as declared, case included.
func Primary(cmd Command) string {
	aliases := cmd.Aliases()
	if len(aliases) == 0 {
		return ""
	}
	return aliases[0]
}
