// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

const evalDoc = `
name: "web"
port: 8000 + 80
tags: ["a", "b"]
nested: inner: true
`

func TestEvalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path CUEPath
		want string
	}{
		{name: "scalar", path: "port", want: "8080"},
		{name: "string", path: "name", want: `"web"`},
		{name: "list", path: "tags", want: "[\n  \"a\",\n  \"b\"\n]"},
		{name: "nested", path: "nested.inner", want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := EvalJSON([]byte(evalDoc), tt.path)
			if err != nil {
				t.Fatalf("EvalJSON() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("EvalJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvalJSON_WholeDocument(t *testing.T) {
	t.Parallel()

	got, err := EvalJSON([]byte(`a: 1`), "")
	if err != nil {
		t.Fatalf("EvalJSON() error = %v", err)
	}
	if string(got) != "{\n  \"a\": 1\n}" {
		t.Errorf("EvalJSON() = %q", got)
	}
}

func TestEvalJSON_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing field", func(t *testing.T) {
		t.Parallel()
		_, err := EvalJSON([]byte(evalDoc), "nope", WithFilename("doc.cue"))
		if err == nil || !strings.Contains(err.Error(), "doc.cue: nope: field not found") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("blank path", func(t *testing.T) {
		t.Parallel()
		_, err := EvalJSON([]byte(evalDoc), "  ")
		if !errors.Is(err, ErrInvalidCUEPath) {
			t.Errorf("error = %v, want ErrInvalidCUEPath", err)
		}
	})

	t.Run("not concrete", func(t *testing.T) {
		t.Parallel()
		_, err := EvalJSON([]byte(`x: int`), "x")
		if err == nil {
			t.Error("expected an error for a non-concrete value")
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		_, err := EvalJSON([]byte(`x: {`), "", WithFilename("bad.cue"))
		if err == nil || !strings.Contains(err.Error(), "bad.cue") {
			t.Errorf("error = %v, want mention of bad.cue", err)
		}
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()
		_, err := EvalJSON([]byte(evalDoc), "", WithMaxFileSize(4))
		if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
			t.Errorf("error = %v", err)
		}
	})
}
