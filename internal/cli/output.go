// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes of synctl.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the operation ran and failed, e.g. a sync with failed actions
	ExitCommandError = 2 // bad flags or the control API is unreachable
)

// ExitError carries the exit code of a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError without an underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from err, ExitFailure for plain errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter prints command results as styled text or JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Print writes data as JSON in json format and text otherwise.
func (f *OutputFormatter) Print(data any, text string) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	_, err := fmt.Fprintln(f.Writer, text)
	return err
}

// requestError classifies a control API failure: an answer from the API is
// a failure of the operation, anything else a command error.
func requestError(message string, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return WrapExitError(ExitFailure, message, err)
	}
	return WrapExitError(ExitCommandError, message, err)
}
