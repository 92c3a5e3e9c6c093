// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitSuccess is the result code of a command or pipeline that completed.
	ExitSuccess ExitCode = 0
	// ExitUsage is the default result code for a usage or parse failure
	// detected before any command ran.
	ExitUsage ExitCode = 1
	// ExitFailure is the process status used for a failure whose own code
	// cannot be represented as a process status.
	ExitFailure ExitCode = 1
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode is the integer result of a command handler or of a whole
	// dispatch run. The zero value (0) means success; any other value is
	// propagated as the process exit status (see ProcessStatus).
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode cannot be represented
	// as a POSIX process status (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside the POSIX range (0-255).
// Handler codes outside the range are still propagated; Validate only tells
// callers (such as config validation) whether a value is portable.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// ProcessStatus returns the status to hand to os.Exit. Codes outside 0-255
// would be truncated by the OS (256 reads as 0), so any such failure maps to
// ExitFailure.
func (c ExitCode) ProcessStatus() int {
	if c.Validate() != nil {
		return int(ExitFailure)
	}
	return int(c)
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

// ParseExitCode converts a decimal string into an ExitCode.
func ParseExitCode(s string) (ExitCode, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse exit code %q: %w", s, err)
	}
	return ExitCode(n), nil
}
