package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/utm/internal/engine"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // successful execution
	ExitFailure      = 1 // outcome failure (non-deterministic replay, divergence)
	ExitCommandError = 2 // command error (decode errors, missing runs, bad paths)
)

// ExitError represents an error with a specific exit code.
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

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure for non-ExitError errors.
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

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON envelope for command output.
type CLIResponse struct {
	Status string      `json:"status"` // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`
	Error  *CLIError   `json:"error,omitempty"`
}

// CLIError is the error structure inside a JSON response.
type CLIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success emits a successful result. In text mode the caller is expected
// to have rendered already; Success only handles the JSON envelope.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format != "json" {
		return nil
	}
	return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
}

// Error emits an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message, Details: details},
		})
	}
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	return nil
}

// writeSnapshot renders one configuration snapshot in the classic console
// layout: the tape window, a caret marking the head, the instantaneous
// description, and the step count.
func writeSnapshot(w io.Writer, snap engine.Snapshot) {
	fmt.Fprintf(w, "State: %s\n", snap.State)
	fmt.Fprintf(w, "Tape:  %s\n", snap.Window())
	fmt.Fprintf(w, "Head:  %s^ (position %d)\n", strings.Repeat(" ", len(snap.Before)), snap.Head)
	fmt.Fprintf(w, "Configuration: %s\n", snap.Configuration())
	fmt.Fprintf(w, "Steps: %d\n", snap.Steps)
}

// writeVerdict renders the terminal outcome line.
func writeVerdict(w io.Writer, accepted bool) {
	if accepted {
		fmt.Fprintln(w, "Result: ACCEPTED")
	} else {
		fmt.Fprintln(w, "Result: REJECTED")
	}
}
