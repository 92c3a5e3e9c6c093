// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

func TestFormatError_Nil(t *testing.T) {
	t.Parallel()

	if err := FormatError(nil, "config.cue"); err != nil {
		t.Errorf("FormatError(nil) = %v, want nil", err)
	}
}

func TestFormatError_PlainError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := FormatError(cause, "config.cue")
	if !errors.Is(err, cause) {
		t.Fatalf("FormatError() = %v, want it to wrap the cause", err)
	}
	if got, want := err.Error(), "config.cue: boom"; got != want {
		t.Errorf("FormatError() = %q, want %q", got, want)
	}
}

func TestFormatError_CUEPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		want  []string
		multi bool
	}{
		{
			name: "single violation",
			src:  "dispatch: code: int & <=255\ndispatch: code: 300",
			want: []string{"config.cue: dispatch.code:"},
		},
		{
			name:  "two violations",
			src:   "a: int & 1\na: 2\nb: string & \"x\"\nb: \"y\"",
			want:  []string{"config.cue: validation failed:", "\n  a:", "\n  b:"},
			multi: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := cuecontext.New().CompileString(tt.src)
			verr := v.Validate(cue.Concrete(true))
			if verr == nil {
				verr = v.Err()
			}
			if verr == nil {
				t.Fatal("expected CUE to report a conflict")
			}

			msg := FormatError(verr, "config.cue").Error()
			for _, w := range tt.want {
				if !strings.Contains(msg, w) {
					t.Errorf("FormatError() = %q, want it to contain %q", msg, w)
				}
			}
			if !tt.multi && strings.Contains(msg, "validation failed") {
				t.Errorf("single error should not use the multi-line form: %q", msg)
			}
		})
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"ui"}, "ui"},
		{[]string{"dispatch", "env_fallback"}, "dispatch.env_fallback"},
		{[]string{"dispatch", "env_files", "0"}, "dispatch.env_files[0]"},
		{[]string{"aliases", "b", "2", "x"}, "aliases.b[2].x"},
		{[]string{"0", "name"}, "0.name"},
	}

	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, false},
		{"under limit", 10, false},
		{"at limit", 100, false},
		{"over limit", 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFileSize(make([]byte, tt.size), 100, "big.cue")
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFileSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "big.cue: file size 101 bytes exceeds maximum 100 bytes") {
				t.Errorf("unexpected message: %v", err)
			}
		})
	}
}
