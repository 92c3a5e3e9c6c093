// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCodeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     ExitCode
		wantValid bool
	}{
		{name: "zero is valid", value: 0, wantValid: true},
		{name: "usage code is valid", value: ExitUsage, wantValid: true},
		{name: "255 is valid", value: 255, wantValid: true},
		{name: "negative is invalid", value: -1, wantValid: false},
		{name: "256 is invalid", value: 256, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if (err == nil) != tt.wantValid {
				t.Fatalf("ExitCode(%d).Validate() error = %v, wantValid %v", tt.value, err, tt.wantValid)
			}
			if !tt.wantValid && !errors.Is(err, ErrInvalidExitCode) {
				t.Errorf("error does not wrap ErrInvalidExitCode: %v", err)
			}
		})
	}
}

func TestExitCodeIsSuccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code ExitCode
		want bool
	}{
		{0, true},
		{1, false},
		{3, false},
		{255, false},
	}

	for _, tt := range tests {
		if got := tt.code.IsSuccess(); got != tt.want {
			t.Errorf("ExitCode(%d).IsSuccess() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestParseExitCode(t *testing.T) {
	t.Parallel()

	got, err := ParseExitCode("42")
	if err != nil {
		t.Fatalf("ParseExitCode() error = %v", err)
	}
	if got != 42 || got.String() != "42" {
		t.Errorf("ParseExitCode(\"42\") = %v, want 42", got)
	}

	if _, err := ParseExitCode("nope"); err == nil {
		t.Error("ParseExitCode(\"nope\") returned nil error")
	}
}

func TestExitCodeProcessStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code ExitCode
		want int
	}{
		{0, 0},
		{7, 7},
		{255, 255},
		{256, 1},
		{512, 1},
		{-1, 1},
	}

	for _, tt := range tests {
		if got := tt.code.ProcessStatus(); got != tt.want {
			t.Errorf("ExitCode(%d).ProcessStatus() = %d, want %d", tt.code, got, tt.want)
		}
	}
}
