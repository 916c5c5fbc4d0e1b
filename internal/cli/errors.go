// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/jeranaias/slashdoc/internal/build"
	"github.com/jeranaias/slashdoc/internal/config"
	"github.com/jeranaias/slashdoc/internal/script"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general error, including failed expectations
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a configuration file or settings error
	ExitConfigError = 3
	// ExitNotFoundError indicates a file or key was not found
	ExitNotFoundError = 7
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "exec", "config")
	Action  string // Action being performed (e.g., "set", "watch")
	Err     error
}

func (e *CommandError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Command, e.Action, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UsageError represents invalid command line usage.
type UsageError struct {
	Message string
	Usage   string
}

func (e *UsageError) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return fmt.Sprintf("%s\nUsage: %s", e.Message, e.Usage)
}

// NewCommandError wraps err with the failing command and action.
func NewCommandError(command, action string, err error) error {
	return &CommandError{Command: command, Action: action, Err: err}
}

// ErrMissingArgument returns a usage error for a missing argument.
func ErrMissingArgument(argName, usage string) error {
	return &UsageError{Message: "missing required argument: " + argName, Usage: usage}
}

// =============================================================================
// DISPLAY
// =============================================================================

// DisplayError writes err to w as text or as JSON.
func DisplayError(w io.Writer, err error, jsonMode bool) {
	if err == nil {
		return
	}
	if jsonMode {
		DisplayErrorJSON(w, err)
		return
	}
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("[ERROR]"), err.Error())
}

// DisplayErrorJSON writes err as a JSON object.
func DisplayErrorJSON(w io.Writer, err error) {
	output := map[string]any{
		"error":     err.Error(),
		"success":   false,
		"exit_code": GetExitCode(err),
	}

	var cmdErr *CommandError
	var scriptErr *script.Error
	var validateErrs config.ValidateErrors
	switch {
	case errors.As(err, &scriptErr):
		output["error_type"] = "script_error"
		output["line"] = scriptErr.Line
		output["directive"] = scriptErr.Directive
	case errors.As(err, &validateErrs):
		output["error_type"] = "config_error"
		fields := make([]string, len(validateErrs))
		for i, ve := range validateErrs {
			fields[i] = ve.Field
		}
		output["fields"] = fields
	case errors.As(err, &cmdErr):
		output["error_type"] = "command_error"
		output["command"] = cmdErr.Command
		output["action"] = cmdErr.Action
	default:
		output["error_type"] = "generic_error"
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(output)
}

// GetExitCode determines the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	var validateErrs config.ValidateErrors
	switch {
	case errors.As(err, &usageErr),
		errors.Is(err, script.ErrUsage),
		errors.Is(err, script.ErrUnknownDirective),
		errors.Is(err, script.ErrUnterminatedQuote),
		errors.Is(err, build.ErrUnknownVariant):
		return ExitUsageError
	case errors.As(err, &validateErrs),
		errors.Is(err, config.ErrUnknownKey):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist):
		return ExitNotFoundError
	}
	return ExitGeneralError
}
