// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/cmdseq/cmdseq/pkg/types"
)

func TestColorMode_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode    ColorMode
		wantErr bool
	}{
		{ColorAuto, false},
		{ColorAlways, false},
		{ColorNever, false},
		{"", true},
		{"AUTO", true},
		{"sometimes", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()
			err := tt.mode.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ColorMode(%q).Validate() error = %v, wantErr %v", tt.mode, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidColorMode) {
				t.Errorf("error should wrap ErrInvalidColorMode, got: %v", err)
			}
		})
	}
}

func TestLogLevel_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   LogLevel
		wantErr bool
	}{
		{LevelDebug, false},
		{LevelInfo, false},
		{LevelWarn, false},
		{LevelError, false},
		{"", true},
		{"trace", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			t.Parallel()
			err := tt.level.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LogLevel(%q).Validate() error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidLogLevel) {
				t.Errorf("error should wrap ErrInvalidLogLevel, got: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "zero usage code",
			mutate:  func(c *Config) { c.Dispatch.UsageExitCode = types.ExitSuccess },
			wantErr: "must be non-zero",
		},
		{
			name:    "usage code out of range",
			mutate:  func(c *Config) { c.Dispatch.UsageExitCode = 256 },
			wantErr: "dispatch.usage_exit_code",
		},
		{
			name:    "blank env file",
			mutate:  func(c *Config) { c.Dispatch.EnvFiles = []string{" "} },
			wantErr: "dispatch.env_files",
		},
		{
			name:    "alias with whitespace",
			mutate:  func(c *Config) { c.Aliases = map[string]string{"a b": "echo"} },
			wantErr: "aliases",
		},
		{
			name:    "alias with empty target",
			mutate:  func(c *Config) { c.Aliases = map[string]string{"say": ""} },
			wantErr: "empty target",
		},
		{
			name: "several problems reported together",
			mutate: func(c *Config) {
				c.UI.Color = "pink"
				c.Log.Level = "loud"
			},
			wantErr: "2 field error(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
