// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cmdseq/cmdseq/pkg/types"
)

const (
	// ReasonUnexpectedToken means a value token came before any marker.
	ReasonUnexpectedToken UsageReason = "unexpected_token"
	// ReasonUnknownCommand means at least one command name did not resolve.
	ReasonUnknownCommand UsageReason = "unknown_command"
	// ReasonNoCommands means the argument vector named no command at all.
	ReasonNoCommands UsageReason = "no_commands"
)

var (
	// ErrUsage is the sentinel error wrapped by UsageError.
	ErrUsage = errors.New("commands not input correctly")
	// ErrMissingArguments is the sentinel error wrapped by MissingArgumentsError.
	ErrMissingArguments = errors.New("missing mandatory arguments")
	// ErrCommandFailed is the sentinel error wrapped by CommandFailedError.
	ErrCommandFailed = errors.New("command failed")
)

type (
	// UsageReason categorizes a UsageError.
	UsageReason string

	// UsageError is reported when the argument vector cannot be run at all.
	// No command has executed when it is reported.
	UsageError struct {
		Reason UsageReason
		// Unknown lists unresolved command names in input order.
		Unknown []string
		// Suggestions maps an unknown name to close registered aliases.
		Suggestions map[string][]string
		Cause       error
	}

	// MissingArgumentsError is reported when mandatory argument keys resolve
	// neither from the parsed arguments nor from the environment.
	MissingArgumentsError struct {
		// Command is the primary alias of the command that was about to run,
		// in the case it was declared with.
		Command string
		Keys    []string
	}

	// CommandFailedError is reported when a command ends the run with a
	// non-zero result, either from Execute or from failed verification.
	CommandFailedError struct {
		Command string
		Code    types.ExitCode
	}
)

// Error implements the error interface.
func (e *UsageError) Error() string {
	switch e.Reason {
	case ReasonUnknownCommand:
		return fmt.Sprintf("%s: unknown command(s): %s", ErrUsage, strings.Join(e.Unknown, ", "))
	case ReasonNoCommands:
		return fmt.Sprintf("%s: no commands given", ErrUsage)
	default:
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", ErrUsage, e.Cause)
		}
		return ErrUsage.Error()
	}
}

// Unwrap returns both ErrUsage and the cause so errors.Is matches either.
func (e *UsageError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrUsage}
	}
	return []error{ErrUsage, e.Cause}
}

// Error implements the error interface.
func (e *MissingArgumentsError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Command, ErrMissingArguments, strings.Join(e.Keys, ", "))
}

// Unwrap returns ErrMissingArguments so callers can use errors.Is.
func (e *MissingArgumentsError) Unwrap() error { return ErrMissingArguments }

// Error implements the error interface.
func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("%s command returned error code: %d", e.Command, e.Code)
}

// Unwrap returns ErrCommandFailed so callers can use errors.Is.
func (e *CommandFailedError) Unwrap() error { return ErrCommandFailed }
