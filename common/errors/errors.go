// Package errors attaches process exit codes to errors.
package errors

import (
	"github.com/pkg/errors"
)

type ExitCodeError struct {
	code ExitCode
	error
}

func NewError(err error, exitCode ExitCode) *ExitCodeError {
	if err == nil {
		return nil
	}
	return &ExitCodeError{exitCode, err}
}

func (e *ExitCodeError) GetExitCode() ExitCode {
	if e == nil {
		return 0
	}
	return e.code
}

// Cause returns the wrapped error so callers can keep unwrapping past the exit code.
func (e *ExitCodeError) Cause() error {
	if e == nil {
		return nil
	}
	return e.error
}

// GetExitCode returns the exit code carried by err or by any error it wraps.
// A nil error maps to 0; an error without a code maps to 1.
func GetExitCode(err error) ExitCode {
	if err == nil {
		return 0
	}
	for err != nil {
		if e, ok := err.(*ExitCodeError); ok {
			return e.GetExitCode()
		}
		c, ok := err.(interface{ Cause() error })
		if !ok {
			break
		}
		err = c.Cause()
	}
	return OperationFailureExitCode
}

// Wrap annotates err with msg and an exit code.
func Wrap(err error, exitCode ExitCode, msg string) error {
	if err == nil {
		return nil
	}
	return NewError(errors.Wrap(err, msg), exitCode)
}
