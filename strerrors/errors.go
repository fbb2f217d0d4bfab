package strerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrArgumentArity indicates a command was invoked with too few arguments.
	ErrArgumentArity = errors.New("argument arity error")

	// ErrExit indicates a command requested a specific exit status.
	ErrExit = errors.New("exit requested")

	// ErrConfig indicates an invalid option value.
	ErrConfig = errors.New("configuration error")
)

// ArgumentArityError reports a command invoked without its required arguments.
type ArgumentArityError struct {
	// Command is the resolved command name
	Command string
	// Required lists the names of the arguments the command requires
	Required []string
	// Given is the number of arguments actually supplied
	Given int
}

// Error returns a human-readable error message.
func (e *ArgumentArityError) Error() string {
	want := len(e.Required)
	noun := "arguments"
	if want == 1 {
		noun = "argument"
	}
	msg := fmt.Sprintf("too few arguments to command '%s': %d passed and exactly %d %s expected", e.Command, e.Given, want, noun)
	if want > 0 {
		msg += " (" + strings.Join(e.Required, ", ") + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ArgumentArityError) Is(target error) bool {
	return target == ErrArgumentArity
}

// ExitError carries a command-selected process exit status.
// A Code of 0 is a successful exit that prints nothing.
type ExitError struct {
	// Code is the requested exit status
	Code int
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ExitError) Error() string {
	msg := fmt.Sprintf("exit status %d", e.Code)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ExitError) Is(target error) bool {
	return target == ErrExit
}

// ConfigError represents an invalid option value.
type ConfigError struct {
	// Option is the name of the problematic option
	Option string
	// Value is the invalid value that was provided
	Value string
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" (value: %s)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
