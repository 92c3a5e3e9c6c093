// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cmdseq/cmdseq/pkg/types"
)

const (
	// ColorAuto styles output only when writing to a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces styled output.
	ColorAlways ColorMode = "always"
	// ColorNever disables styling.
	ColorNever ColorMode = "never"

	// LevelDebug logs dispatcher state transitions.
	LevelDebug LogLevel = "debug"
	// LevelInfo is the default log level.
	LevelInfo LogLevel = "info"
	// LevelWarn logs warnings and errors only.
	LevelWarn LogLevel = "warn"
	// LevelError logs errors only.
	LevelError LogLevel = "error"
)

var (
	// ErrInvalidColorMode is returned when a ColorMode value is not recognized.
	ErrInvalidColorMode = errors.New("invalid color mode")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorMode selects when output is styled.
	ColorMode string

	// LogLevel is the minimum level the logger writes.
	LogLevel string

	// InvalidConfigError collects every field-level problem of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the full cmdseq configuration.
	Config struct {
		UI       UIConfig       `json:"ui" mapstructure:"ui"`
		Log      LogConfig      `json:"log" mapstructure:"log"`
		Dispatch DispatchConfig `json:"dispatch" mapstructure:"dispatch"`
		// Aliases adds extra names for registered commands (alias -> command).
		Aliases map[string]string `json:"aliases" mapstructure:"aliases"`
	}

	// UIConfig controls terminal output.
	UIConfig struct {
		Verbose bool      `json:"verbose" mapstructure:"verbose"`
		Color   ColorMode `json:"color" mapstructure:"color"`
	}

	// LogConfig controls the logger.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}

	// DispatchConfig controls the dispatch pipeline.
	DispatchConfig struct {
		// UsageExitCode is returned for usage errors (bad tokens, unknown or
		// missing commands).
		UsageExitCode types.ExitCode `json:"usage_exit_code" mapstructure:"usage_exit_code"`
		// EnvFallback lets mandatory arguments resolve from the environment.
		EnvFallback bool `json:"env_fallback" mapstructure:"env_fallback"`
		// EnvFiles are dotenv files consulted after the process environment.
		// A trailing '?' marks a file as optional.
		EnvFiles []string `json:"env_files" mapstructure:"env_files"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Verbose: false,
			Color:   ColorAuto,
		},
		Log: LogConfig{
			Level: LevelInfo,
		},
		Dispatch: DispatchConfig{
			UsageExitCode: types.ExitUsage,
			EnvFallback:   true,
			EnvFiles:      []string{},
		},
		Aliases: map[string]string{},
	}
}

// Validate returns ErrInvalidColorMode if the mode is not recognized.
func (m ColorMode) Validate() error {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: auto, always, never)", ErrInvalidColorMode, string(m))
	}
}

// String returns the string representation of the ColorMode.
func (m ColorMode) String() string { return string(m) }

// Validate returns ErrInvalidLogLevel if the level is not recognized.
func (l LogLevel) Validate() error {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: debug, info, warn, error)", ErrInvalidLogLevel, string(l))
	}
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// Validate checks the fields CUE cannot check on its own, which matters for
// values that arrived through CMDSEQ_* environment overrides.
func (c *Config) Validate() error {
	var errs []error
	if err := c.UI.Color.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Log.Level.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Dispatch.UsageExitCode.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("dispatch.usage_exit_code: %w", err))
	} else if c.Dispatch.UsageExitCode.IsSuccess() {
		errs = append(errs, errors.New("dispatch.usage_exit_code: must be non-zero"))
	}
	for _, f := range c.Dispatch.EnvFiles {
		if strings.TrimSpace(f) == "" {
			errs = append(errs, errors.New("dispatch.env_files: entries must be non-empty"))
		}
	}
	for alias, target := range c.Aliases {
		if err := types.Alias(alias).Validate(); err != nil {
			errs = append(errs, fmt.Errorf("aliases: %w", err))
		}
		if strings.TrimSpace(target) == "" {
			errs = append(errs, fmt.Errorf("aliases: %q has an empty target", alias))
		}
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %d field error(s): %s", len(e.FieldErrors), strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig so callers can use errors.Is.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
