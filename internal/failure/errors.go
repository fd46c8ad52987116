package failure

import (
	"errors"
	"fmt"
)

// ConfigError reports invalid or missing configuration. It is never retried.
type ConfigError struct {
	Msg string
	Err error
}

// Configf builds a ConfigError with a formatted message.
func Configf(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// Error returns the error message for ConfigError.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap returns the underlying error, if any.
func (e *ConfigError) Unwrap() error { return e.Err }

// LinkError reports that a directory could not be materialized at Target.
// Chained methods treat it as retryable.
type LinkError struct {
	Op     string
	Source string
	Target string
	Err    error
}

// Error returns the error message for LinkError.
func (e *LinkError) Error() string {
	msg := fmt.Sprintf("%s %s -> %s", e.Op, e.Target, e.Source)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error, if any.
func (e *LinkError) Unwrap() error { return e.Err }

// Link wraps err as a LinkError for the given operation.
func Link(op, source, target string, err error) *LinkError {
	return &LinkError{Op: op, Source: source, Target: target, Err: err}
}

// NotFoundError reports a missing descriptor, lock file or package.
// Callers usually fall back to a default instead of surfacing it.
type NotFoundError struct {
	What string
	Path string
	Err  error
}

// Error returns the error message for NotFoundError.
func (e *NotFoundError) Error() string {
	msg := e.What + " not found"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error, if any.
func (e *NotFoundError) Unwrap() error { return e.Err }

// IsConfig reports whether err wraps a ConfigError.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsLink reports whether err wraps a LinkError.
func IsLink(err error) bool {
	var le *LinkError
	return errors.As(err, &le)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Exit codes returned by the CLI.
const (
	ExitSuccess     = 0
	ExitFailure     = 1
	ExitConfigError = 2
)

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case IsConfig(err):
		return ExitConfigError
	default:
		return ExitFailure
	}
}
