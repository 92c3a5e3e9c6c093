// SPDX-License-Identifier: MPL-2.0

package envvar

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/cmdseq/cmdseq/internal/argv"
	"github.com/cmdseq/cmdseq/internal/issue"
)

func TestResolverLookup(t *testing.T) {
	t.Parallel()

	r := New(WithEnviron([]string{
		"PATH=/usr/bin",
		"Api_Token=abc",
		"EMPTY=",
		"=C:=C:\\",
		"broken",
		"DUP=first",
		"dup=second",
	}))

	tests := []struct {
		key       string
		wantValue string
		wantFound bool
	}{
		{key: "path", wantValue: "/usr/bin", wantFound: true},
		{key: "API_TOKEN", wantValue: "abc", wantFound: true},
		{key: "empty", wantValue: "", wantFound: true},
		{key: "Dup", wantValue: "second", wantFound: true},
		{key: "missing", wantValue: "", wantFound: false},
		{key: "broken", wantValue: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			got, ok := r.Lookup(tt.key)
			if ok != tt.wantFound || got != tt.wantValue {
				t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.wantValue, tt.wantFound)
			}
		})
	}
}

func TestResolverLookup_ProcessEnvironment(t *testing.T) {
	t.Setenv("CMDSEQ_TEST_MiXeD", "value")

	if got, ok := New().Lookup("cmdseq_test_mixed"); !ok || got != "value" {
		t.Errorf("Lookup() = %q, %v; want %q, true", got, ok, "value")
	}
}

func TestResolverLookup_Overlay(t *testing.T) {
	t.Parallel()

	r := New(
		WithEnviron([]string{"SHARED=process"}),
		WithOverlay(map[string]string{"shared": "file", "ONLY_FILE": "x"}),
	)

	if got, _ := r.Lookup("SHARED"); got != "process" {
		t.Errorf("process environment must win over overlay, got %q", got)
	}
	if got, ok := r.Lookup("only_file"); !ok || got != "x" {
		t.Errorf("Lookup(only_file) = %q, %v", got, ok)
	}
}

func TestResolverLookup_Disabled(t *testing.T) {
	t.Parallel()

	r := New(WithEnviron([]string{"HOME=/root"}), WithFallback(false))
	if r.Has("HOME") {
		t.Error("disabled resolver must not find anything")
	}

	var nilResolver *Resolver
	if nilResolver.Has("HOME") {
		t.Error("nil resolver must not find anything")
	}
}

func TestResolverArgVar(t *testing.T) {
	t.Parallel()

	r := New(WithEnviron([]string{"REGION=eu", "BLANK="}))
	args := argv.Args{"Region": "us", "flag": ""}

	if got, ok := r.ArgVar(args, "region"); !ok || got != "us" {
		t.Errorf("arguments must win over environment, got %q, %v", got, ok)
	}
	if got, ok := r.ArgVar(argv.Args{}, "REGION"); !ok || got != "eu" {
		t.Errorf("ArgVar() environment fallback = %q, %v", got, ok)
	}
	if got := r.ArgVarOr(args, "flag", "default"); got != "" {
		t.Errorf("empty argument must not fall through to default, got %q", got)
	}
	if got := r.ArgVarOr(args, "blank", "default"); got != "" {
		t.Errorf("empty env var must not fall through to default, got %q", got)
	}
	if got := r.ArgVarOr(args, "nothing", "default"); got != "default" {
		t.Errorf("ArgVarOr() = %q, want default", got)
	}
}

func TestResolverEnviron(t *testing.T) {
	t.Parallel()

	r := New(
		WithEnviron([]string{"HOME=/root", "Path=/bin"}),
		WithOverlay(map[string]string{"PATH": "/shadowed", "TOKEN": "t", "A": "1"}),
		WithFallback(false),
	)

	got := r.Environ()
	want := []string{"HOME=/root", "Path=/bin", "A=1", "TOKEN=t"}
	if !slices.Equal(got, want) {
		t.Errorf("Environ() = %v, want %v", got, want)
	}
}

func TestLoadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.env"), "# comment\nA=1\nB=\"two words\"\nexport C=3\n")
	writeFile(t, filepath.Join(dir, "override.env"), "A=override\n")

	env, err := LoadFiles(dir, "base.env", "override.env", "missing.env?")
	if err != nil {
		t.Fatalf("LoadFiles() error = %v", err)
	}

	want := map[string]string{"A": "override", "B": "two words", "C": "3"}
	for k, v := range want {
		if env[k] != v {
			t.Errorf("env[%q] = %q, want %q", k, env[k], v)
		}
	}

	_, err = LoadFiles(dir, "missing.env")
	if err == nil {
		t.Fatal("LoadFiles() with a required missing file returned nil error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got: %v", err)
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Resource != "missing.env" {
		t.Errorf("expected actionable error naming missing.env, got: %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
