// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the tollview CLI.
const (
	ExitOK              = 0 // Complete report written.
	ExitInvalidArgs     = 1 // Invalid arguments, config or output path.
	ExitDataUnavailable = 2 // Summary table missing or malformed; only the abort message was written.
)

// exitCodeError carries a process exit code through cobra's error return.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitDataUnavailable:
			msg = "tollview: summary data unavailable"
		default:
			msg = "tollview: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
