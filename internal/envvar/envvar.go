// SPDX-License-Identifier: MPL-2.0

package envvar

import (
	"maps"
	"os"
	"strings"

	"github.com/cmdseq/cmdseq/internal/argv"
)

type (
	// Resolver looks up environment variables case-insensitively.
	//
	// The process environment is consulted first. The overlay (usually
	// loaded from dotenv files) is only consulted when the process
	// environment has no matching key. A Resolver with fallback disabled
	// reports every key as not found.
	Resolver struct {
		environ  func() []string
		overlay  map[string]string
		disabled bool
	}

	// Option configures a Resolver.
	Option func(*Resolver)
)

// WithEnviron replaces the process environment with a fixed KEY=VALUE list.
func WithEnviron(environ []string) Option {
	snapshot := append([]string(nil), environ...)
	return func(r *Resolver) {
		r.environ = func() []string { return snapshot }
	}
}

// WithOverlay adds lower-priority variables, such as those read from
// dotenv files. Later calls override earlier ones key by key.
func WithOverlay(vars map[string]string) Option {
	return func(r *Resolver) {
		if r.overlay == nil {
			r.overlay = make(map[string]string, len(vars))
		}
		maps.Copy(r.overlay, vars)
	}
}

// WithFallback enables or disables environment lookups entirely.
func WithFallback(enabled bool) Option {
	return func(r *Resolver) {
		r.disabled = !enabled
	}
}

// New creates a Resolver reading the live process environment.
func New(opts ...Option) *Resolver {
	r := &Resolver{environ: os.Environ}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the value of the environment variable whose name matches key
// case-insensitively. If the environment holds several matching names, the
// last one wins. A variable set to the empty string is found.
func (r *Resolver) Lookup(key string) (string, bool) {
	if r == nil || r.disabled {
		return "", false
	}

	want := strings.ToLower(key)
	var (
		value string
		found bool
	)
	for _, kv := range r.environ() {
		name, v, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		if strings.ToLower(name) == want {
			value, found = v, true
		}
	}
	if found {
		return value, true
	}

	for _, name := range sortedKeys(r.overlay) {
		if strings.ToLower(name) == want {
			value, found = r.overlay[name], true
		}
	}
	return value, found
}

// Has reports whether key resolves to any value, including the empty string.
func (r *Resolver) Has(key string) bool {
	_, ok := r.Lookup(key)
	return ok
}

// ArgVar looks key up in args (case-insensitively) and then in the
// environment. An empty value counts as found.
func (r *Resolver) ArgVar(args argv.Args, key string) (string, bool) {
	if v, ok := args.Lookup(key); ok {
		return v, true
	}
	return r.Lookup(key)
}

// ArgVarOr is ArgVar with a default for the not-found case.
func (r *Resolver) ArgVarOr(args argv.Args, key, def string) string {
	if v, ok := r.ArgVar(args, key); ok {
		return v
	}
	return def
}

// Environ returns the process environment followed by the overlay variables
// whose names the process environment does not already define (compared
// case-insensitively). It ignores the fallback setting: child processes
// always inherit the environment.
func (r *Resolver) Environ() []string {
	if r == nil {
		return os.Environ()
	}

	base := r.environ()
	seen := make(map[string]struct{}, len(base))
	for _, kv := range base {
		if name, _, ok := strings.Cut(kv, "="); ok {
			seen[strings.ToLower(name)] = struct{}{}
		}
	}

	out := append([]string(nil), base...)
	for _, name := range sortedKeys(r.overlay) {
		if _, ok := seen[strings.ToLower(name)]; ok {
			continue
		}
		out = append(out, name+"="+r.overlay[name])
	}
	return out
}
